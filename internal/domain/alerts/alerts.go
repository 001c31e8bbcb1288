// Package alerts deriva avisos con fecha (partos, chequeos de preñez y
// seguimientos sanitarios) a partir de los registros del rebaño.
//
// Todo es función pura de los registros y de "now": no hay estado, no hay
// persistencia y se recalcula en cada lectura.
package alerts

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"goat-tracker/internal/domain/breeding"
	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
)

// Category identifica la regla que generó el aviso.
// @Enum breeding_due, pregnancy_check, health_due
type Category string

const (
	CategoryBreedingDue    Category = "breeding_due"
	CategoryPregnancyCheck Category = "pregnancy_check"
	CategoryHealthDue      Category = "health_due"
)

// Priority ordena la visualización: urgent > high > medium > low.
// @Enum urgent, high, medium, low
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank devuelve el peso ordinal de la prioridad (mayor = más severa).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// UnknownTag se muestra cuando el animal referenciado ya no existe.
const UnknownTag = "unknown"

const day = 24 * time.Hour

type Alert struct {
	ID       string
	Category Category
	Priority Priority

	Title        string
	Message      string
	ActionNeeded string

	GoatID           string
	GoatTag          string
	HealthRecordID   string
	BreedingRecordID string

	DueDate      time.Time
	DaysUntilDue int
}

// Rules son las ventanas (en días) que deciden prioridad y corte.
type Rules struct {
	BirthHighDays      int `yaml:"birth_high_days"`
	BirthMediumDays    int `yaml:"birth_medium_days"`
	HealthHighDays     int `yaml:"health_high_days"`
	PregnancyCheckDays int `yaml:"pregnancy_check_days"`
}

var DefaultRules = Rules{
	BirthHighDays:      3,
	BirthMediumDays:    7,
	HealthHighDays:     7,
	PregnancyCheckDays: 30,
}

// Validate exige ventanas positivas y high <= medium para partos.
func (r Rules) Validate() error {
	if r.BirthHighDays < 1 || r.BirthMediumDays < 1 || r.HealthHighDays < 1 || r.PregnancyCheckDays < 1 {
		return fmt.Errorf("alert windows must be >= 1 day: %+v", r)
	}
	if r.BirthHighDays > r.BirthMediumDays {
		return fmt.Errorf("birth_high_days (%d) must not exceed birth_medium_days (%d)", r.BirthHighDays, r.BirthMediumDays)
	}
	return nil
}

type Generator struct {
	Rules Rules
}

// Generate usa DefaultRules.
func Generate(herd []goats.Goat, healthRecords []health.Record, breedingRecords []breeding.Record, now time.Time) []Alert {
	return Generator{Rules: DefaultRules}.Generate(herd, healthRecords, breedingRecords, now)
}

// Generate evalúa cada registro por separado (a lo sumo un aviso por registro)
// y devuelve la lista ordenada con compareAlerts.
func (g Generator) Generate(herd []goats.Goat, healthRecords []health.Record, breedingRecords []breeding.Record, now time.Time) []Alert {
	tags := make(map[string]string, len(herd))
	for _, goat := range herd {
		tags[goat.ID] = goat.TagNumber
	}

	out := make([]Alert, 0)

	for _, rec := range breedingRecords {
		if a, ok := g.breedingDue(rec, tags, now); ok {
			out = append(out, a)
		}
	}
	for _, rec := range breedingRecords {
		if a, ok := g.pregnancyCheck(rec, tags, now); ok {
			out = append(out, a)
		}
	}
	for _, rec := range healthRecords {
		if a, ok := g.healthDue(rec, tags, now); ok {
			out = append(out, a)
		}
	}

	slices.SortStableFunc(out, compareAlerts)
	return out
}

func (g Generator) breedingDue(rec breeding.Record, tags map[string]string, now time.Time) (Alert, bool) {
	if rec.Status != breeding.StatusConfirmed || rec.ExpectedDueDate == nil || rec.ExpectedDueDate.IsZero() {
		return Alert{}, false
	}
	due := *rec.ExpectedDueDate
	days := daysUntil(due, now)
	tag := doeTag(rec, tags)

	a := Alert{
		Category:         CategoryBreedingDue,
		GoatID:           rec.DoeID,
		GoatTag:          tag,
		BreedingRecordID: rec.ID,
		DueDate:          due,
		DaysUntilDue:     days,
	}

	switch {
	case days <= 0:
		a.ID = "breeding-overdue-" + rec.ID
		a.Priority = PriorityUrgent
		a.Title = "Birth Overdue!"
		a.Message = fmt.Sprintf("%s was due %d days ago", tag, -days)
		a.ActionNeeded = "Check goat immediately and consider veterinary assistance"
	case days <= g.Rules.BirthHighDays:
		a.ID = "breeding-due-" + rec.ID
		a.Priority = PriorityHigh
		a.Title = "Birth Due Soon"
		a.Message = fmt.Sprintf("%s due in %d days", tag, days)
		a.ActionNeeded = "Prepare birthing area and monitor closely"
	case days <= g.Rules.BirthMediumDays:
		a.ID = "breeding-week-" + rec.ID
		a.Priority = PriorityMedium
		a.Title = "Birth Due This Week"
		a.Message = fmt.Sprintf("%s due in %d days", tag, days)
		a.ActionNeeded = "Monitor daily and prepare for birth"
	default:
		return Alert{}, false
	}
	return a, true
}

func (g Generator) pregnancyCheck(rec breeding.Record, tags map[string]string, now time.Time) (Alert, bool) {
	if rec.Status != breeding.StatusBred || rec.BreedingDate.IsZero() {
		return Alert{}, false
	}
	checkDate := rec.BreedingDate.AddDate(0, 0, g.Rules.PregnancyCheckDays)
	if now.Before(checkDate) {
		return Alert{}, false
	}

	days := daysUntil(checkDate, now)
	tag := doeTag(rec, tags)
	return Alert{
		ID:               "pregnancy-check-" + rec.ID,
		Category:         CategoryPregnancyCheck,
		Priority:         PriorityHigh,
		Title:            "Pregnancy Check Due",
		Message:          fmt.Sprintf("%s - Confirm pregnancy (bred %d days ago)", tag, daysSince(rec.BreedingDate, now)),
		ActionNeeded:     "Confirm pregnancy status",
		GoatID:           rec.DoeID,
		GoatTag:          tag,
		BreedingRecordID: rec.ID,
		DueDate:          checkDate,
		DaysUntilDue:     days,
	}, true
}

func (g Generator) healthDue(rec health.Record, tags map[string]string, now time.Time) (Alert, bool) {
	if rec.NextDueDate == nil || rec.NextDueDate.IsZero() {
		return Alert{}, false
	}
	due := *rec.NextDueDate
	days := daysUntil(due, now)
	tag := lookupTag(tags, rec.GoatID, "")
	kind := strings.ToLower(string(rec.Type))

	a := Alert{
		Category:       CategoryHealthDue,
		GoatID:         rec.GoatID,
		GoatTag:        tag,
		HealthRecordID: rec.ID,
		DueDate:        due,
		DaysUntilDue:   days,
	}

	switch {
	case days <= 0:
		a.ID = "health-overdue-" + rec.ID
		a.Priority = PriorityUrgent
		a.Title = fmt.Sprintf("%s Overdue!", rec.Type)
		a.Message = fmt.Sprintf("%s - %s was due %d days ago", tag, rec.Title, -days)
		a.ActionNeeded = fmt.Sprintf("Schedule %s immediately", kind)
	case days <= g.Rules.HealthHighDays:
		a.ID = "health-due-" + rec.ID
		a.Priority = PriorityHigh
		a.Title = fmt.Sprintf("%s Due Soon", rec.Type)
		a.Message = fmt.Sprintf("%s - %s due in %d days", tag, rec.Title, days)
		a.ActionNeeded = fmt.Sprintf("Schedule %s", kind)
	default:
		return Alert{}, false
	}
	return a, true
}

// compareAlerts: prioridad descendente y, a igual prioridad, vencimiento más próximo primero.
func compareAlerts(a, b Alert) int {
	if c := cmp.Compare(b.Priority.Rank(), a.Priority.Rank()); c != 0 {
		return c
	}
	return a.DueDate.Compare(b.DueDate)
}

// daysUntil = ceil((due - now) / 1 día). Negativo si ya venció.
func daysUntil(due, now time.Time) int {
	return int(math.Ceil(float64(due.Sub(now)) / float64(day)))
}

// daysSince = ceil((now - from) / 1 día).
func daysSince(from, now time.Time) int {
	return int(math.Ceil(float64(now.Sub(from)) / float64(day)))
}

func doeTag(rec breeding.Record, tags map[string]string) string {
	fallback := ""
	if rec.Doe != nil {
		fallback = rec.Doe.TagNumber
	}
	return lookupTag(tags, rec.DoeID, fallback)
}

func lookupTag(tags map[string]string, goatID, fallback string) string {
	if tag := strings.TrimSpace(tags[goatID]); tag != "" {
		return tag
	}
	if tag := strings.TrimSpace(fallback); tag != "" {
		return tag
	}
	return UnknownTag
}
