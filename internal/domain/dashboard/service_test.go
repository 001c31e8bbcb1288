package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"goat-tracker/internal/domain/alerts"
	"goat-tracker/internal/domain/breeding"
	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
)

type fakeGoats struct {
	items []goats.Goat
	err   error
}

func (f fakeGoats) ListByOwner(ctx context.Context, owner string, _ goats.ListFilter) ([]goats.Goat, error) {
	return f.items, f.err
}

type fakeHealth struct{ items []health.Record }

func (f fakeHealth) ListByOwner(ctx context.Context, owner string) ([]health.Record, error) {
	return f.items, nil
}

type fakeBreeding struct{ items []breeding.Record }

func (f fakeBreeding) ListByOwner(ctx context.Context, owner string) ([]breeding.Record, error) {
	return f.items, nil
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixture() *Service {
	due := fixedNow.Add(5 * 24 * time.Hour)
	weight := 50.0
	svc := NewService(
		fakeGoats{items: []goats.Goat{
			{ID: "doe", TagNumber: "D-1", Gender: goats.GenderFemale, BreedingStatus: goats.BreedingPregnant, Weight: &weight},
		}},
		fakeHealth{items: []health.Record{
			{ID: "h1", GoatID: "doe", Type: health.RecordTypeCheckup, Date: fixedNow.AddDate(0, 0, -3)},
		}},
		fakeBreeding{items: []breeding.Record{
			{ID: "b1", DoeID: "doe", Status: breeding.StatusConfirmed, BreedingDate: due.AddDate(0, 0, -150), ExpectedDueDate: &due},
		}},
		nil,
	)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAlerts_UsesCurrentRules(t *testing.T) {
	svc := fixture()
	ctx := context.Background()

	report, err := svc.Alerts(ctx, "u1")
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if len(report.Alerts) != 1 || report.Alerts[0].Priority != alerts.PriorityMedium {
		t.Fatalf("expected one medium alert with default rules, got %+v", report.Alerts)
	}
	if report.Summary.Total != 1 || report.Summary.Medium != 1 {
		t.Fatalf("unexpected summary %+v", report.Summary)
	}
	if !report.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("expected GeneratedAt = now, got %v", report.GeneratedAt)
	}

	rules := alerts.DefaultRules
	rules.BirthHighDays = 5
	svc.SetRules(rules)

	report, _ = svc.Alerts(ctx, "u1")
	if report.Alerts[0].Priority != alerts.PriorityHigh {
		t.Fatalf("expected high after rules swap, got %s", report.Alerts[0].Priority)
	}
	if svc.Rules() != rules {
		t.Fatalf("Rules() must return the swapped rules")
	}
}

func TestAlerts_PropagatesListErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(fakeGoats{err: boom}, fakeHealth{}, fakeBreeding{}, nil)

	if _, err := svc.Alerts(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if _, err := svc.Analytics(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestAnalytics_RecentWindow(t *testing.T) {
	svc := fixture()

	snap, err := svc.Analytics(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if snap.Total != 1 || snap.Pregnant != 1 || snap.RecentRecords != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.AverageWeight == nil || *snap.AverageWeight != 50 {
		t.Fatalf("expected average 50, got %v", snap.AverageWeight)
	}

	svc.SetRecentWindow(2 * 24 * time.Hour)
	snap, _ = svc.Analytics(context.Background(), "u1")
	if snap.RecentRecords != 0 {
		t.Fatalf("expected 0 recent records with 2-day window, got %d", snap.RecentRecords)
	}
}
