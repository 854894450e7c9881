package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

// HousekeepingService periodically drops sessions that have expired or been
// revoked so the sessions table does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Revoked sessions are kept this long after revocation before going.
	Retention time.Duration

	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. A zero or negative interval defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the first cleanup straight away and then one per interval.
// Call Stop to shut the worker down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes dead sessions once and returns how many went.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	n, err := s.Store.Sessions().DeleteExpiredSessions(ctx, now.Add(-s.Retention))
	if err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
		return 0
	}
	s.Logger.Info("housekeeping cleanup completed", "sessions_deleted", n)
	return n
}
