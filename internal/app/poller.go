package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/storedash/internal/state"
)

const (
	defaultRefreshInterval = 30 * time.Second
	maxBackoff             = 5 * time.Minute
)

// StartRefresher launches a background goroutine that refreshes the active
// domain of session. After transport failures the delay doubles per
// consecutive failure up to maxBackoff. It returns immediately.
func StartRefresher(ctx context.Context, session *state.Session, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			domain := session.Active()
			session.Refresh(ctx, domain)

			health := session.Health()
			delay := calculateBackoff(health.ConsecutiveFailures, interval)
			if health.ConsecutiveFailures > 0 {
				logger.Warn("refresh failed, backing off",
					slog.String("domain", domain.String()),
					slog.Int("failures", health.ConsecutiveFailures),
					slog.Duration("next", delay),
					slog.Any("error", health.LastError))
			}
			timer.Reset(delay)
		}
	}()
}

// calculateBackoff returns base doubled once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}
