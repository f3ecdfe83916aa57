package blackjack

import (
	"context"
	"time"
)

// Sweeper periodically force-resolves games that sat idle past their
// deadline. Deadlines slide: every accepted action pushes them out again,
// so only abandoned games ever reach the sweep.
type Sweeper struct {
	service  *Service
	interval time.Duration
}

func NewSweeper(service *Service, interval time.Duration) *Sweeper {
	return &Sweeper{service: service, interval: interval}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.service.SweepExpired(now)
		}
	}
}
