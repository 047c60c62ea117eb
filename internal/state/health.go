package state

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/five82/storedash/internal/api"
)

// Health describes API reachability as seen by the latest requests.
type Health struct {
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has failed several requests in a row.
func (h Health) IsOffline() bool {
	return h.ConsecutiveFailures >= 2
}

// Tracker wraps a Requester and records transport health. Status and decode
// errors count as reachable: the server answered.
type Tracker struct {
	next api.Requester
	now  func() time.Time

	mu     sync.RWMutex
	health Health
}

// NewTracker wraps next.
func NewTracker(next api.Requester) *Tracker {
	return &Tracker{next: next, now: time.Now}
}

// Get forwards to the wrapped Requester and records the outcome.
func (t *Tracker) Get(ctx context.Context, path string, query url.Values, dest any) error {
	err := t.next.Get(ctx, path, query, dest)
	t.record(err)
	return err
}

func (t *Tracker) record(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.health.LastUpdated = t.now()
	var statusErr *api.StatusError
	if err != nil && !errors.As(err, &statusErr) && !errors.Is(err, api.ErrDecode) {
		t.health.LastError = err
		t.health.ConsecutiveFailures++
		return
	}
	t.health.LastError = nil
	t.health.ConsecutiveFailures = 0
}

// Health returns a copy of the current health.
func (t *Tracker) Health() Health {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h := t.health
	if t.health.LastError != nil {
		h.LastError = fmt.Errorf("%w", t.health.LastError)
	}
	return h
}
