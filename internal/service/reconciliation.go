// internal/service/reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marchkeep/marchkeep/internal/repository"
)

// ReconciliationService periodically re-syncs stale payment snapshots so
// users who have not hit a read endpoint recently still converge on the
// provider's view.
type ReconciliationService struct {
	userRepo     repository.UserRepositoryIface
	cacheRepo    repository.StripeCacheRepositoryIface
	syncer       Syncer
	syncInterval time.Duration
	staleAfter   time.Duration
	batchSize    int
	dryRun       bool // If true, don't sync, just log what would be synced
	logger       *slog.Logger
	stopChan     chan struct{}
	stoppedChan  chan struct{}
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	userRepo repository.UserRepositoryIface,
	cacheRepo repository.StripeCacheRepositoryIface,
	syncer Syncer,
	syncInterval time.Duration,
	logger *slog.Logger,
) *ReconciliationService {
	if syncInterval == 0 {
		syncInterval = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReconciliationService{
		userRepo:     userRepo,
		cacheRepo:    cacheRepo,
		syncer:       syncer,
		syncInterval: syncInterval,
		staleAfter:   time.Hour,
		batchSize:    100,
		dryRun:       false,
		logger:       logger,
		stopChan:     make(chan struct{}),
		stoppedChan:  make(chan struct{}),
	}
}

// Start begins the periodic reconciliation process
func (s *ReconciliationService) Start() {
	go func() {
		ticker := time.NewTicker(s.syncInterval)
		defer ticker.Stop()
		defer close(s.stoppedChan)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				if err := s.reconcile(ctx); err != nil {
					s.logger.Error("reconciliation failed", "error", err)
				}
				cancel()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts the reconciliation process
func (s *ReconciliationService) Stop() {
	close(s.stopChan)
	<-s.stoppedChan
}

// ReconcileAll runs a one-time reconciliation pass. This can be called
// on-demand to refresh existing snapshots.
func (s *ReconciliationService) ReconcileAll(ctx context.Context) error {
	return s.reconcile(ctx)
}

// SetBatchSize sets the number of snapshots to refresh per pass
func (s *ReconciliationService) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// SetStaleAfter sets the age past which a snapshot is considered stale
func (s *ReconciliationService) SetStaleAfter(d time.Duration) {
	if d > 0 {
		s.staleAfter = d
	}
}

// SetDryRun sets whether to actually sync or just log what would be done
func (s *ReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

func (s *ReconciliationService) reconcile(ctx context.Context) error {
	cutoff := time.Now().Add(-s.staleAfter)
	stale, err := s.cacheRepo.FindStale(ctx, cutoff, s.batchSize)
	if err != nil {
		return fmt.Errorf("finding stale snapshots: %w", err)
	}
	if len(stale) == 0 {
		s.logger.Debug("no stale snapshots to reconcile")
		return nil
	}

	s.logger.Info("reconciling stale payment snapshots", "count", len(stale), "older_than", cutoff)

	var failed int
	for _, row := range stale {
		if s.dryRun {
			s.logger.Info("would re-sync snapshot", "user_id", row.UserID.String(), "updated_at", row.UpdatedAt)
			continue
		}
		if _, err := s.syncer.SyncStripeDataToUser(ctx, row.UserID); err != nil {
			failed++
			s.logger.Error("snapshot re-sync failed", "user_id", row.UserID.String(), "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("re-sync failed for %d of %d snapshots", failed, len(stale))
	}
	s.logger.Info("completed snapshot reconciliation", "count", len(stale))
	return nil
}
