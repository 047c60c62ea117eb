package stores

import (
	"context"
	"log/slog"
	"sync"

	"github.com/five82/storedash/internal/api"
)

// Status is the busy flag and error slot owned by one operation group.
// Error is empty when the last operation succeeded.
type Status struct {
	Busy  bool
	Error string
}

// HasError reports whether the last operation left a message.
func (s Status) HasError() bool {
	return s.Error != ""
}

func (s *Status) begin() {
	s.Busy = true
	s.Error = ""
}

func (s *Status) succeed() {
	s.Busy = false
}

func (s *Status) fail(message string) {
	s.Busy = false
	s.Error = message
}

// base carries what every domain store shares. The mutex guards memory only;
// it does not serialise operations, so overlapping fetches of the same data
// still race and the last response to arrive wins.
type base struct {
	mu     sync.RWMutex
	client api.Requester
	logger *slog.Logger
}

func newBase(client api.Requester, logger *slog.Logger, domain string) base {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return base{client: client, logger: logger.With(slog.String("store", domain))}
}

// start marks status busy under the store lock.
func (b *base) start(status *Status) {
	b.mu.Lock()
	status.begin()
	b.mu.Unlock()
}

// get performs one request and logs the underlying failure. Callers surface
// only their fixed message.
func (b *base) get(ctx context.Context, op, path string, query *api.Query, dest any) error {
	values := query.Values()
	err := b.client.Get(ctx, path, values, dest)
	if err != nil {
		b.logger.Warn("fetch failed",
			slog.String("op", op),
			slog.String("path", path),
			slog.String("query", values.Encode()),
			slog.Any("error", err),
		)
		return err
	}
	b.logger.Debug("fetch ok", slog.String("op", op), slog.String("path", path))
	return nil
}

// cloneSlice copies s and never returns nil, so empty results stay an
// explicit empty list.
func cloneSlice[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
