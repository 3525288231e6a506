// Package service provides the views service implementation
package service

import (
	"context"
	"time"

	dom "skythread/internal/services/views/domain"
	"skythread/internal/services/views/repo"
)

// Config for the views service
type Config struct {
	HardLimit int
}

// Service implements domain.WriterPort and domain.QueryPort directly against the CH repo
type Service struct {
	Storage *repo.CH
	Cfg     Config
}

// New constructs a views service with a required CH repo
func New(storage *repo.CH, cfg Config) *Service {
	if storage == nil {
		panic("views.Service requires a non nil CH repo")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 20
	}
	return &Service{Storage: storage, Cfg: cfg}
}

// RecordLoad implements domain.WriterPort
func (s *Service) RecordLoad(ctx context.Context, x dom.LoadWrite) error {
	if x.At.IsZero() {
		x.At = time.Now().UTC()
	}
	return s.Storage.WriteLoads(ctx, []dom.LoadWrite{x})
}

// Summary implements domain.QueryPort
func (s *Service) Summary(ctx context.Context, in dom.SummaryInput) ([]dom.SummaryRow, error) {
	start, end, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	return s.Storage.Summary(ctx, start, end)
}

// Top implements domain.QueryPort
func (s *Service) Top(ctx context.Context, in dom.TopInput) ([]dom.TopPostRow, error) {
	start, end, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	return s.Storage.Top(ctx, start, end, limit)
}

// window turns an inclusive day range into a half-open time window
func window(r dom.TimeRange) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endIncl, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, endIncl.Add(24 * time.Hour), nil
}
