package dashboard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"goat-tracker/internal/domain/alerts"
	"goat-tracker/internal/domain/analytics"
	"goat-tracker/internal/domain/breeding"
	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
	"goat-tracker/internal/platform/logger"
)

type GoatLister interface {
	ListByOwner(ctx context.Context, ownerUserID string, filter goats.ListFilter) ([]goats.Goat, error)
}

type HealthLister interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]health.Record, error)
}

type BreedingLister interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.Record, error)
}

// Service vuelve a leer los registros en cada llamada y delega en
// alerts/analytics. Las reglas se pueden reemplazar en caliente (config.Watch).
type Service struct {
	goats    GoatLister
	health   HealthLister
	breeding BreedingLister

	rules  atomic.Pointer[alerts.Rules]
	window atomic.Int64

	log logger.Logger
	now func() time.Time
}

func NewService(g GoatLister, h HealthLister, b BreedingLister, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		goats:    g,
		health:   h,
		breeding: b,
		log:      log.With(map[string]any{"component": "dashboard"}),
		now:      time.Now,
	}
	s.SetRules(alerts.DefaultRules)
	s.SetRecentWindow(analytics.DefaultRecentWindow)
	return s
}

func (s *Service) SetRules(r alerts.Rules) {
	s.rules.Store(&r)
}

func (s *Service) Rules() alerts.Rules {
	return *s.rules.Load()
}

func (s *Service) SetRecentWindow(d time.Duration) {
	s.window.Store(int64(d))
}

type AlertReport struct {
	Summary     alerts.Summary
	Alerts      []alerts.Alert
	GeneratedAt time.Time
}

func (s *Service) Alerts(ctx context.Context, userID string) (AlertReport, error) {
	herd, err := s.goats.ListByOwner(ctx, userID, goats.ListFilter{})
	if err != nil {
		return AlertReport{}, fmt.Errorf("list goats: %w", err)
	}
	healthRecords, err := s.health.ListByOwner(ctx, userID)
	if err != nil {
		return AlertReport{}, fmt.Errorf("list health records: %w", err)
	}
	breedingRecords, err := s.breeding.ListByOwner(ctx, userID)
	if err != nil {
		return AlertReport{}, fmt.Errorf("list breeding records: %w", err)
	}

	now := s.now()
	list := alerts.Generator{Rules: s.Rules()}.Generate(herd, healthRecords, breedingRecords, now)
	summary := alerts.Summarize(list)

	s.log.Debug("alerts generated", map[string]any{
		"user_id": userID,
		"total":   summary.Total,
		"urgent":  summary.Urgent,
	})

	return AlertReport{
		Summary:     summary,
		Alerts:      list,
		GeneratedAt: now,
	}, nil
}

func (s *Service) Analytics(ctx context.Context, userID string) (analytics.Snapshot, error) {
	herd, err := s.goats.ListByOwner(ctx, userID, goats.ListFilter{})
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("list goats: %w", err)
	}
	healthRecords, err := s.health.ListByOwner(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("list health records: %w", err)
	}

	agg := analytics.Aggregator{RecentWindow: time.Duration(s.window.Load())}
	return agg.Compute(herd, healthRecords, s.now()), nil
}
