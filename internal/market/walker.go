package market

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bj-platform/internal/logger"
)

// Walker drives the price random walk on a fixed interval.
type Walker struct {
	service  *Service
	interval time.Duration
}

func NewWalker(service *Service, interval time.Duration) *Walker {
	return &Walker{service: service, interval: interval}
}

func (w *Walker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.service.Tick(); err != nil {
				logger.Log.Error("market tick failed", zap.Error(err))
			}
		}
	}
}
