package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNew_WinnerHasStrictlyGreaterScore(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(20221018))
	for i := 0; i < 500; i++ {
		home := rng.Intn(40) + 80
		away := rng.Intn(40) + 80

		g, err := New(Record{
			GameID:    int64(i + 1),
			Status:    "Final",
			HomeTeam:  "BOS",
			AwayTeam:  "MIA",
			HomeScore: &home,
			AwayScore: &away,
		})

		if err != nil {
			t.Fatalf("scores %d-%d: unexpected error %v", home, away, err)
		}
		if home == away {
			if g.Decided() {
				t.Fatalf("scores %d-%d: expected tied game to have no winner, got=%s", home, away, g.Winner())
			}
			if err := g.Validate(); !errors.Is(err, ErrTiedScore) {
				t.Fatalf("scores %d-%d: expected ErrTiedScore, got %v", home, away, err)
			}
			continue
		}
		if err := g.Validate(); err != nil {
			t.Fatalf("scores %d-%d: unexpected validation error %v", home, away, err)
		}

		want := "MIA"
		if home > away {
			want = "BOS"
		}
		if g.Winner() != want {
			t.Fatalf("scores %d-%d: expected winner=%s, got=%s", home, away, want, g.Winner())
		}
	}
}

func TestNew_UnplayedGameHasNoWinner(t *testing.T) {
	t.Parallel()

	g, err := New(Record{GameID: 1, Status: "Scheduled", HomeTeam: "bos", AwayTeam: "nyk"})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if g.Decided() {
		t.Fatalf("expected scheduled game to be undecided, winner=%q", g.Winner())
	}
	if g.HomeTeam != "BOS" || g.AwayTeam != "NYK" {
		t.Fatalf("expected normalised team keys, got home=%s away=%s", g.HomeTeam, g.AwayTeam)
	}
}

func TestNew_InProgressTieIsAccepted(t *testing.T) {
	t.Parallel()

	score := 50
	g, err := New(Record{GameID: 2, Status: "InProgress", HomeTeam: "BOS", AwayTeam: "NYK", HomeScore: &score, AwayScore: &score})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("expected in-progress tie to be valid, got %v", err)
	}
	if g.Decided() {
		t.Fatalf("expected in-progress game to be undecided")
	}
}

func TestIsFinishedStatus(t *testing.T) {
	t.Parallel()

	finished := []string{"Final", "F/OT", "f/2ot", "Closed"}
	for _, s := range finished {
		if !IsFinishedStatus(s) {
			t.Fatalf("expected %q to be finished", s)
		}
	}
	for _, s := range []string{"", "Scheduled", "InProgress", "Postponed"} {
		if IsFinishedStatus(s) {
			t.Fatalf("expected %q to be unfinished", s)
		}
	}
}

func TestFilterByTeam(t *testing.T) {
	t.Parallel()

	games := []Record{
		mustGame(t, 1, "BOS", "MIA", 100, 90),
		mustGame(t, 2, "LAL", "MIA", 100, 90),
		mustGame(t, 3, "NYK", "BOS", 100, 90),
	}
	got := FilterByTeam(games, "bos")
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got=%d", len(got))
	}
	if got[0].GameID != 1 || got[1].GameID != 3 {
		t.Fatalf("expected games 1 and 3 in input order, got=%d,%d", got[0].GameID, got[1].GameID)
	}
}

func mustGame(t *testing.T, id int64, home, away string, homeScore, awayScore int) Record {
	t.Helper()

	g, err := New(Record{
		GameID:    id,
		Status:    "Final",
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: &homeScore,
		AwayScore: &awayScore,
	})
	if err != nil {
		t.Fatalf("new game %d: %v", id, err)
	}
	return g
}
