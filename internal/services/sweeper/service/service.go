// Package service provides snapshot cache retention
package service

import (
	"context"
	"time"

	"skythread/internal/platform/logger"
	dom "skythread/internal/services/sweeper/domain"
)

// Config controls retention behavior
type Config struct {
	// Retention is how long snapshots stay before the sweep removes them
	Retention time.Duration

	// Interval is the pause between sweeps in loop mode
	Interval time.Duration
}

// Service runs retention sweeps against the snapshot store
type Service struct {
	Pruner dom.PrunerPort
	Cfg    Config

	now func() time.Time
}

// New constructs the sweeper service
func New(p dom.PrunerPort, cfg Config) *Service {
	if p == nil {
		panic("sweeper.Service requires a non nil PrunerPort")
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 7 * 24 * time.Hour
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Service{Pruner: p, Cfg: cfg, now: time.Now}
}

// SweepOnce deletes everything past retention and reports the count
func (s *Service) SweepOnce(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.Cfg.Retention).UTC()
	n, err := s.Pruner.Prune(ctx, cutoff)
	if err != nil {
		logger.C(ctx).Error().Err(err).Time("cutoff", cutoff).Msg("sweeper: prune failed")
		return 0, err
	}
	logger.C(ctx).Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("sweeper: sweep complete")
	return n, nil
}

// Run sweeps on the configured interval until ctx is done.
// Individual sweep failures are logged and the loop keeps going
func (s *Service) Run(ctx context.Context) error {
	t := time.NewTicker(s.Cfg.Interval)
	defer t.Stop()

	if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}
