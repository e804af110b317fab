package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	var calls atomic.Int32
	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("upstream down")
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	got, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	})
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected value=7, got=%d", got)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected loader to run twice, got=%d", calls.Load())
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2023, 4, 9, 18, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "logo", "a.png")
	if v, ok := store.Get(context.Background(), "logo"); !ok || v != "a.png" {
		t.Fatalf("expected cached value, got=%q ok=%v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "logo"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_ZeroTTLKeepsEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	now := time.Date(2023, 4, 9, 18, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "gallery", "page")
	now = now.Add(24 * time.Hour)
	if _, ok := store.Get(context.Background(), "gallery"); !ok {
		t.Fatalf("expected entry without ttl to persist")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
