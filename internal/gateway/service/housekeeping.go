package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/store"
)

// HousekeepingService periodically purges expired denylist rows so the
// database doesn't grow forever.
type HousekeepingService struct {
	Denylist store.DeniedTokens
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the service. A non-positive interval
// defaults to one hour.
func NewHousekeepingService(denylist store.DeniedTokens, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Denylist: denylist,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop shuts down the worker, blocking until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once at startup so a long-stopped instance catches up.
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	removed, err := s.Denylist.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		s.Logger.Error("denylist sweep failed", "err", err)
		return
	}
	if removed > 0 {
		s.Logger.Info("denylist sweep completed", "removed", removed)
	}
}
