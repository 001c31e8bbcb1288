// Package analytics calcula el resumen estadístico del panel a partir del
// rebaño y de los registros sanitarios. Se recalcula completo en cada llamada.
package analytics

import (
	"time"

	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
)

// DefaultRecentWindow es la ventana de "actividad reciente".
const DefaultRecentWindow = 30 * 24 * time.Hour

type Snapshot struct {
	Total  int
	Male   int
	Female int

	Healthy        int
	Sick           int
	UnderTreatment int
	Quarantine     int

	Pregnant  int
	Nursing   int
	Available int
	Retired   int

	// AverageWeight es nil si ningún animal tiene peso registrado.
	AverageWeight *float64
	WeighedCount  int

	TotalHealthCost float64
	RecentRecords   int

	Percent Percentages
}

// Percentages alimenta las barras de distribución (0..100). Con Total == 0 todo queda en 0.
type Percentages struct {
	Male           float64
	Female         float64
	Healthy        float64
	Sick           float64
	UnderTreatment float64
	Pregnant       float64
	Nursing        float64
	Available      float64
}

type Aggregator struct {
	RecentWindow time.Duration
}

func Compute(herd []goats.Goat, records []health.Record, now time.Time) Snapshot {
	return Aggregator{RecentWindow: DefaultRecentWindow}.Compute(herd, records, now)
}

func (a Aggregator) Compute(herd []goats.Goat, records []health.Record, now time.Time) Snapshot {
	window := a.RecentWindow
	if window <= 0 {
		window = DefaultRecentWindow
	}

	s := Snapshot{Total: len(herd)}

	var weightSum float64
	for _, g := range herd {
		switch g.Gender {
		case goats.GenderMale:
			s.Male++
		case goats.GenderFemale:
			s.Female++
		}

		switch g.HealthStatus {
		case goats.HealthHealthy, "":
			s.Healthy++
		case goats.HealthSick:
			s.Sick++
		case goats.HealthUnderTreatment:
			s.UnderTreatment++
		case goats.HealthQuarantine:
			s.Quarantine++
		}

		switch g.BreedingStatus {
		case goats.BreedingAvailable, "":
			s.Available++
		case goats.BreedingPregnant:
			s.Pregnant++
		case goats.BreedingNursing:
			s.Nursing++
		case goats.BreedingRetired:
			s.Retired++
		}

		if g.Weight != nil && *g.Weight > 0 {
			weightSum += *g.Weight
			s.WeighedCount++
		}
	}

	if s.WeighedCount > 0 {
		avg := weightSum / float64(s.WeighedCount)
		s.AverageWeight = &avg
	}

	cutoff := now.Add(-window)
	for _, r := range records {
		if r.Cost != nil {
			s.TotalHealthCost += *r.Cost
		}
		if r.Date.IsZero() {
			continue
		}
		if r.Date.After(cutoff) && !r.Date.After(now) {
			s.RecentRecords++
		}
	}

	s.Percent = Percentages{
		Male:           Percent(s.Male, s.Total),
		Female:         Percent(s.Female, s.Total),
		Healthy:        Percent(s.Healthy, s.Total),
		Sick:           Percent(s.Sick, s.Total),
		UnderTreatment: Percent(s.UnderTreatment, s.Total),
		Pregnant:       Percent(s.Pregnant, s.Total),
		Nursing:        Percent(s.Nursing, s.Total),
		Available:      Percent(s.Available, s.Total),
	}

	return s
}

// Percent devuelve n/total*100, o 0 si total <= 0.
func Percent(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
