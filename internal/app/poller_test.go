package app

import (
	"context"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/storedash/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, 5 * time.Minute}, // Would be 8m, capped to 5m
		{"many failures capped", 40, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingRequester struct {
	calls atomic.Int64
}

func (c *countingRequester) Get(context.Context, string, url.Values, any) error {
	c.calls.Add(1)
	return nil
}

func TestStartRefresher_RefreshesActiveDomain(t *testing.T) {
	fake := &countingRequester{}
	session := state.NewSession(fake, nil, state.Options{StoreID: 1})
	session.SetActive(state.DomainStores)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	StartRefresher(ctx, session, 10*time.Millisecond, nil)

	deadline := time.After(2 * time.Second)
	for fake.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("calls = %d, want at least 2 refreshes", fake.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}
