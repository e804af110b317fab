package loodibee

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/team-report/internal/platform/resilience"
)

const galleryPage = `<html><body>
<div class="logos-layout column-3">
  <figure><img alt="Boston Celtics Transparent Logo"
    src="/wp-content/celtics-150.png"
    srcset="/wp-content/celtics-150.png 150w, /wp-content/celtics-500.png 500w, /wp-content/celtics-300.png 300w"></figure>
  <figure><img alt="Los Angeles Lakers Transparent Logo" src="/wp-content/lakers.png"></figure>
  <figure><img alt="Philadelphia 76ers Transparent Logo" srcset="/wp-content/sixers-a.png, /wp-content/sixers-b.png"></figure>
</div>
</body></html>`

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake")

func newGalleryServer(t *testing.T, pageHits *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/nba/", func(w http.ResponseWriter, r *http.Request) {
		if pageHits != nil {
			pageHits.Add(1)
		}
		_, _ = w.Write([]byte(galleryPage))
	})
	mux.HandleFunc("/wp-content/celtics-500.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngBytes)
	})
	mux.HandleFunc("/wp-content/lakers.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngBytes)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchLogo_PicksLargestSrcsetCandidate(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := newGalleryServer(t, &hits)
	client := NewClient(ClientConfig{HTTPClient: server.Client(), PageURL: server.URL + "/nba/"})

	got, err := client.FetchLogo(context.Background(), "Boston Celtics")
	if err != nil {
		t.Fatalf("fetch logo: %v", err)
	}
	if !bytes.Equal(got, pngBytes) {
		t.Fatalf("unexpected logo bytes: %q", got)
	}

	if _, err := client.FetchLogo(context.Background(), "Los Angeles Lakers"); err != nil {
		t.Fatalf("fetch second logo: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected gallery page to be loaded once, got=%d", hits.Load())
	}
}

func TestFetchLogo_FuzzyMatchesNearbyName(t *testing.T) {
	t.Parallel()

	server := newGalleryServer(t, nil)
	client := NewClient(ClientConfig{HTTPClient: server.Client(), PageURL: server.URL + "/nba/"})

	if _, err := client.FetchLogo(context.Background(), "boston celtic"); err != nil {
		t.Fatalf("expected fuzzy match, got %v", err)
	}
}

func TestFetchLogo_UnknownTeamIsNotFound(t *testing.T) {
	t.Parallel()

	server := newGalleryServer(t, nil)
	client := NewClient(ClientConfig{HTTPClient: server.Client(), PageURL: server.URL + "/nba/"})

	_, err := client.FetchLogo(context.Background(), "Seattle SuperSonics")
	if !errors.Is(err, ErrLogoNotFound) {
		t.Fatalf("expected ErrLogoNotFound, got %v", err)
	}
}

func TestFetchLogo_PageWithoutLogoWall(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="redesigned"><img alt="Boston Celtics Transparent Logo" src="/x.png"></div></body></html>`))
	}))
	t.Cleanup(server.Close)
	client := NewClient(ClientConfig{HTTPClient: server.Client(), PageURL: server.URL})

	_, err := client.FetchLogo(context.Background(), "Boston Celtics")
	if !errors.Is(err, ErrLogoNotFound) {
		t.Fatalf("expected ErrLogoNotFound, got %v", err)
	}
}

func TestFetchLogo_NonPNGBodyIsNotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/nba/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(galleryPage))
	})
	mux.HandleFunc("/wp-content/celtics-500.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>Access denied</body></html>"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := NewClient(ClientConfig{HTTPClient: server.Client(), PageURL: server.URL + "/nba/"})

	got, err := client.FetchLogo(context.Background(), "Boston Celtics")
	if !errors.Is(err, ErrLogoNotFound) {
		t.Fatalf("expected ErrLogoNotFound for html body, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no logo bytes, got=%q", got)
	}
}

func TestFetchLogo_CircuitOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		PageURL:    server.URL + "/nba/",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchLogo(context.Background(), "Boston Celtics"); !errors.Is(err, ErrLogoNotFound) {
			t.Fatalf("attempt %d: expected ErrLogoNotFound, got %v", i, err)
		}
	}
	if hits.Load() != 1 {
		t.Fatalf("expected open circuit to skip the second request, got hits=%d", hits.Load())
	}
}

func TestLargestCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		srcset string
		want   string
	}{
		{srcset: "a.png 150w, b.png 500w, c.png 300w", want: "b.png"},
		{srcset: "a.png, b.png", want: "b.png"},
		{srcset: "", want: ""},
	}
	for _, tc := range tests {
		if got := largestCandidate(tc.srcset); got != tc.want {
			t.Fatalf("srcset %q: expected=%q, got=%q", tc.srcset, tc.want, got)
		}
	}
}
