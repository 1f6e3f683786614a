package memstore

import (
	"context"
	"log/slog"
	"time"

	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/usecase/shared"
)

// Sweeper periodically evicts expired sessions and clears the replay
// cache wholesale. Expiry itself is a data-level property of each
// session; the sweeper only reclaims memory that lazy eviction on
// access has not reached yet.
type Sweeper struct {
	sessions shared.SessionStore
	replays  shared.ReplayStore
	clock    clock.Clock
	logger   *slog.Logger

	sweepEvery time.Duration
	clearEvery time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(
	sessions shared.SessionStore,
	replays shared.ReplayStore,
	clk clock.Clock,
	sessionCfg config.SessionConfig,
	idempotencyCfg config.IdempotencyConfig,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		sessions:   sessions,
		replays:    replays,
		clock:      clk,
		logger:     logger,
		sweepEvery: sessionCfg.SweepInterval,
		clearEvery: idempotencyCfg.ClearInterval,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (w *Sweeper) Start() {
	go w.run()
}

func (w *Sweeper) Stop() {
	close(w.stop)
	<-w.done
}

func (w *Sweeper) run() {
	defer close(w.done)

	sweepTicker := time.NewTicker(w.sweepEvery)
	defer sweepTicker.Stop()
	clearTicker := time.NewTicker(w.clearEvery)
	defer clearTicker.Stop()

	for {
		select {
		case <-sweepTicker.C:
			if evicted := w.sessions.Sweep(context.Background(), w.clock.Now()); evicted > 0 {
				w.logger.Info("swept expired checkout sessions", "evicted", evicted)
			}
		case <-clearTicker.C:
			if cleared := w.replays.Clear(context.Background()); cleared > 0 {
				w.logger.Info("cleared idempotency replay cache", "entries", cleared)
			}
		case <-w.stop:
			return
		}
	}
}
