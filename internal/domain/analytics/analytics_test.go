package analytics

import (
	"math"
	"testing"
	"time"

	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestCompute_EmptyHerd(t *testing.T) {
	s := Compute(nil, nil, now)

	if s.Total != 0 || s.Male != 0 || s.Female != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if s.AverageWeight != nil {
		t.Fatalf("expected undefined average weight, got %v", *s.AverageWeight)
	}
	if s.Percent != (Percentages{}) {
		t.Fatalf("expected all percentages 0, got %+v", s.Percent)
	}
	for _, v := range []float64{s.Percent.Male, s.Percent.Female, s.Percent.Healthy, s.Percent.Sick} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("percentage must be finite, got %v", v)
		}
	}
	if s.TotalHealthCost != 0 || s.RecentRecords != 0 {
		t.Fatalf("expected zero health aggregates, got %+v", s)
	}
}

func TestCompute_AverageWeight_OnlyWeighed(t *testing.T) {
	herd := []goats.Goat{
		{ID: "1", Gender: goats.GenderFemale, Weight: ptr(50.0)},
		{ID: "2", Gender: goats.GenderMale, Weight: ptr(70.0)},
		{ID: "3", Gender: goats.GenderMale},
	}

	s := Compute(herd, nil, now)

	if s.AverageWeight == nil || *s.AverageWeight != 60.0 {
		t.Fatalf("expected average 60.0, got %v", s.AverageWeight)
	}
	if s.WeighedCount != 2 {
		t.Fatalf("expected 2 recorded weights, got %d", s.WeighedCount)
	}
	if s.Male != 2 || s.Female != 1 || s.Total != 3 {
		t.Fatalf("unexpected gender counts %+v", s)
	}
}

func TestCompute_StatusDistributions_DefaultUnset(t *testing.T) {
	herd := []goats.Goat{
		{ID: "1", Gender: goats.GenderFemale},
		{ID: "2", Gender: goats.GenderFemale, HealthStatus: goats.HealthHealthy, BreedingStatus: goats.BreedingPregnant},
		{ID: "3", Gender: goats.GenderFemale, HealthStatus: goats.HealthSick, BreedingStatus: goats.BreedingNursing},
		{ID: "4", Gender: goats.GenderMale, HealthStatus: goats.HealthUnderTreatment, BreedingStatus: goats.BreedingAvailable},
		{ID: "5", Gender: goats.GenderMale, HealthStatus: goats.HealthQuarantine, BreedingStatus: goats.BreedingRetired},
	}

	s := Compute(herd, nil, now)

	if s.Healthy != 2 || s.Sick != 1 || s.UnderTreatment != 1 || s.Quarantine != 1 {
		t.Fatalf("unexpected health distribution %+v", s)
	}
	if s.Available != 2 || s.Pregnant != 1 || s.Nursing != 1 || s.Retired != 1 {
		t.Fatalf("unexpected breeding distribution %+v", s)
	}
	if s.Percent.Female != 60 || s.Percent.Male != 40 {
		t.Fatalf("unexpected gender percentages %+v", s.Percent)
	}
	if s.Percent.Healthy != 40 {
		t.Fatalf("expected 40%% healthy, got %v", s.Percent.Healthy)
	}
}

func TestCompute_HealthCostsAndRecentActivity(t *testing.T) {
	records := []health.Record{
		{ID: "a", Date: now.AddDate(0, 0, -1), Cost: ptr(12.5)},
		{ID: "b", Date: now.AddDate(0, 0, -29)},
		{ID: "c", Date: now.AddDate(0, 0, -30), Cost: ptr(7.5)},
		{ID: "d", Date: now.AddDate(0, -3, 0), Cost: ptr(30.0)},
		{ID: "e", Cost: ptr(1.0)},
		{ID: "f", Date: now.AddDate(0, 0, 2)},
	}

	s := Compute(nil, records, now)

	if s.TotalHealthCost != 51.0 {
		t.Fatalf("expected total cost 51.0, got %v", s.TotalHealthCost)
	}
	// c cae justo en el borde (exclusivo), e sin fecha, f en el futuro
	if s.RecentRecords != 2 {
		t.Fatalf("expected 2 recent records, got %d", s.RecentRecords)
	}
}

func TestAggregator_CustomWindow(t *testing.T) {
	records := []health.Record{
		{ID: "a", Date: now.AddDate(0, 0, -5)},
		{ID: "b", Date: now.AddDate(0, 0, -10)},
	}
	s := Aggregator{RecentWindow: 7 * 24 * time.Hour}.Compute(nil, records, now)
	if s.RecentRecords != 1 {
		t.Fatalf("expected 1 record in 7-day window, got %d", s.RecentRecords)
	}
}

func TestPercent_GuardsZeroTotal(t *testing.T) {
	if got := Percent(3, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Percent(1, 4); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}
