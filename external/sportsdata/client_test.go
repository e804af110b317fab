package sportsdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/team-report/internal/domain/game"
	"github.com/riskibarqy/team-report/internal/platform/resilience"
	"github.com/riskibarqy/team-report/internal/usecase"
)

const testCredential = "0123456789abcdef"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/v3/nba/",
		Credential: testCredential,
		Timeout:    2 * time.Second,
	})
}

func TestFetchPlayers_SendsCredentialAndMapsRows(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/nba/scores/json/Players/BOS" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		if got := r.Header.Get("Ocp-Apim-Subscription-Key"); got != testCredential {
			t.Errorf("expected subscription key header, got=%q", got)
		}
		_, _ = w.Write([]byte(`[
			{"PlayerID":20000452,"FirstName":"Jayson","LastName":"Tatum","Position":"SF","Height":79,"Weight":210,
			 "BirthDate":"1998-03-03T00:00:00","BirthCountry":"USA","College":"Duke","Salary":30351780},
			{"PlayerID":20000453,"FirstName":"Rookie","LastName":"Player","Position":"G","Height":null,"Weight":null,
			 "BirthDate":null,"BirthCountry":null,"College":null,"Salary":null}
		]`))
	})

	got, err := client.FetchPlayers(context.Background(), "bos")
	if err != nil {
		t.Fatalf("fetch players: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got=%d", len(got))
	}
	if got[0].HeightLabel() != "200.7 cm" {
		t.Fatalf("expected height label=200.7 cm, got=%s", got[0].HeightLabel())
	}
	if got[0].BirthDay() != "1998-03-03" {
		t.Fatalf("expected birth day=1998-03-03, got=%s", got[0].BirthDay())
	}
	if got[1].Salary != nil || got[1].SalaryLabel() != "-" {
		t.Fatalf("expected missing salary to map to nil, got=%v", got[1].Salary)
	}
}

func TestFetchGames_KeepsTiedFinalWithoutWinner(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"GameID":1,"Season":2022,"Status":"Final","HomeTeam":"LAL","AwayTeam":"GSW","HomeTeamScore":100,"AwayTeamScore":100}
		]`))
	})

	got, err := client.FetchGames(context.Background(), 2022)
	if err != nil {
		t.Fatalf("expected league schedule with a tied row to load, got %v", err)
	}
	if len(got) != 1 || got[0].Decided() {
		t.Fatalf("expected one undecided game, got=%+v", got)
	}
	if err := got[0].Validate(); !errors.Is(err, game.ErrTiedScore) {
		t.Fatalf("expected tied row to fail validation, got %v", err)
	}
}

func TestFetchGames_MapsWinner(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/nba/scores/json/Games/2022" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"GameID":1,"Season":2022,"Status":"Final","DateTime":"2022-10-18T19:30:00","HomeTeam":"BOS","AwayTeam":"PHI","HomeTeamScore":126,"AwayTeamScore":117},
			{"GameID":2,"Season":2022,"Status":"Scheduled","DateTime":"2023-04-09T13:00:00","HomeTeam":"ATL","AwayTeam":"BOS","HomeTeamScore":null,"AwayTeamScore":null}
		]`))
	})

	got, err := client.FetchGames(context.Background(), 2022)
	if err != nil {
		t.Fatalf("fetch games: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got=%d", len(got))
	}
	if got[0].Winner() != "BOS" {
		t.Fatalf("expected winner=BOS, got=%s", got[0].Winner())
	}
	if got[1].Decided() {
		t.Fatalf("expected scheduled game to be undecided")
	}
}

func TestFetchPlayerSeasonStats_RejectsMadeAboveAttempts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/nba/stats/json/PlayerSeasonStatsByTeam/2022/BOS" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"PlayerID":1,"Name":"A","Minutes":10,"TwoPointersMade":5,"TwoPointersAttempted":4}]`))
	})

	_, err := client.FetchPlayerSeasonStats(context.Background(), 2022, "BOS")
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestFetchTeams_MissingNameIsMalformed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"TeamID":9,"Key":"BOS","City":"Boston","Name":""}]`))
	})

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestFetchTeams_BlankNameFailsDomainValidation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"TeamID":9,"Key":"BOS","City":"Boston","Name":"   "}]`))
	})

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload for blank team name, got %v", err)
	}
}

func TestFetchPlayerSeasonStats_BlankNameFailsDomainValidation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"PlayerID":1,"Name":"  ","Minutes":10,"Points":4}]`))
	})

	_, err := client.FetchPlayerSeasonStats(context.Background(), 2022, "BOS")
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload for blank player name, got %v", err)
	}
}

func TestFetchTeams_DecodeFailureIsMalformed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"not a list"`))
	})

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestExecuteRequest_UnauthorizedIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid key ` + testCredential + `"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Credential: testCredential,
		MaxRetries: 3,
	})

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if strings.Contains(err.Error(), testCredential) {
		t.Fatalf("expected credential to be redacted, got %q", err.Error())
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one call, got=%d", calls.Load())
	}
}

func TestDoJSON_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Credential: testCredential,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchTeams(context.Background()); err == nil {
			t.Fatalf("attempt %d: expected transient error", i)
		}
	}

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once circuit is open, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected circuit to short-circuit third call, got calls=%d", calls.Load())
	}
}
