package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/benavides/historial/internal/historial/store"
)

// HousekeepingService periodically repairs persisted state: it enforces the
// audit retention cap and removes values that no longer decode.
type HousekeepingService struct {
	Store    store.Store
	Audit    *AuditLog
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour.
func NewHousekeepingService(st store.Store, audit *AuditLog, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:    st,
		Audit:    audit,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs cleanup immediately and then every Interval. Non-blocking.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress cleanup has finished.
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

// Cleanup performs one pass. Each step is independent.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	s.Logger.Debug("starting housekeeping cleanup")

	removed, err := s.removeUnreadable(ctx)
	if err != nil {
		s.Logger.Error("failed to scan stored values", "error", err)
	}

	dropped, err := s.Audit.Trim(ctx)
	if err != nil {
		s.Logger.Error("failed to trim audit log", "error", err)
	}

	s.Logger.Info("housekeeping cleanup completed", "unreadable_removed", removed, "audit_dropped", dropped)
}

func (s *HousekeepingService) removeUnreadable(ctx context.Context) (int, error) {
	keys, err := s.Store.KV().Keys(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		raw, err := s.Store.KV().Get(ctx, key)
		if err != nil {
			continue
		}
		if json.Valid([]byte(raw)) {
			continue
		}
		if err := s.Store.KV().Delete(ctx, key); err != nil {
			s.Logger.Error("failed to delete unreadable value", "key", key, "error", err)
			continue
		}
		s.Logger.Warn("removed unreadable value", "key", key)
		removed++
	}
	return removed, nil
}
