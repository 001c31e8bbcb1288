package alerts

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"goat-tracker/internal/domain/breeding"
	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysFromNow(n int) *time.Time {
	t := testNow.AddDate(0, 0, n)
	return &t
}

func testHerd() []goats.Goat {
	return []goats.Goat{
		{ID: "doe-1", TagNumber: "D-001", Gender: goats.GenderFemale},
		{ID: "doe-2", TagNumber: "D-002", Gender: goats.GenderFemale},
		{ID: "buck-1", TagNumber: "B-001", Gender: goats.GenderMale},
	}
}

func confirmed(id string, due *time.Time) breeding.Record {
	return breeding.Record{
		ID:              id,
		DoeID:           "doe-1",
		BuckID:          "buck-1",
		BreedingDate:    due.AddDate(0, 0, -breeding.GestationDays),
		ExpectedDueDate: due,
		Status:          breeding.StatusConfirmed,
	}
}

func TestGenerate_BreedingDue_Boundaries(t *testing.T) {
	cases := []struct {
		name     string
		offset   int
		want     Priority
		wantNone bool
	}{
		{name: "due now", offset: 0, want: PriorityUrgent},
		{name: "overdue", offset: -2, want: PriorityUrgent},
		{name: "in 1 day", offset: 1, want: PriorityHigh},
		{name: "in 3 days", offset: 3, want: PriorityHigh},
		{name: "in 4 days", offset: 4, want: PriorityMedium},
		{name: "in 7 days", offset: 7, want: PriorityMedium},
		{name: "in 8 days", offset: 8, wantNone: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(testHerd(), nil, []breeding.Record{confirmed("br-1", daysFromNow(tc.offset))}, testNow)
			if tc.wantNone {
				if len(got) != 0 {
					t.Fatalf("expected no alerts, got %#v", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 alert, got %d", len(got))
			}
			if got[0].Priority != tc.want {
				t.Fatalf("priority: got %s, want %s", got[0].Priority, tc.want)
			}
			if got[0].Category != CategoryBreedingDue {
				t.Fatalf("category: got %s", got[0].Category)
			}
			if got[0].DaysUntilDue != tc.offset {
				t.Fatalf("days until due: got %d, want %d", got[0].DaysUntilDue, tc.offset)
			}
		})
	}
}

func TestGenerate_BreedingDueToday_ZeroDaysOverdue(t *testing.T) {
	got := Generate(testHerd(), nil, []breeding.Record{confirmed("br-1", daysFromNow(0))}, testNow)
	if len(got) != 1 || got[0].Priority != PriorityUrgent {
		t.Fatalf("expected one urgent alert, got %#v", got)
	}
	if got[0].Message != "D-001 was due 0 days ago" {
		t.Fatalf("unexpected message %q", got[0].Message)
	}
}

func TestGenerate_ConfirmedTwoDaysOverdue(t *testing.T) {
	got := Generate(testHerd(), nil, []breeding.Record{confirmed("br-1", daysFromNow(-2))}, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got))
	}
	a := got[0]
	if a.Priority != PriorityUrgent || a.Category != CategoryBreedingDue {
		t.Fatalf("unexpected alert %#v", a)
	}
	if !strings.Contains(a.Message, "2 days ago") {
		t.Fatalf("expected message to state 2 days ago, got %q", a.Message)
	}
	if a.BreedingRecordID != "br-1" || a.GoatTag != "D-001" {
		t.Fatalf("unexpected references %#v", a)
	}
}

func TestGenerate_MidnightDueDate_AgainstMiddayNow(t *testing.T) {
	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		now      time.Time
		want     Priority
		wantDays int
	}{
		{name: "same day at noon", now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), want: PriorityUrgent, wantDays: 0},
		{name: "day before at noon", now: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC), want: PriorityHigh, wantDays: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(testHerd(), nil, []breeding.Record{confirmed("br-1", &due)}, tc.now)
			if len(got) != 1 {
				t.Fatalf("expected 1 alert, got %d", len(got))
			}
			if got[0].Priority != tc.want || got[0].DaysUntilDue != tc.wantDays {
				t.Fatalf("expected %s %d, got %s %d", tc.want, tc.wantDays, got[0].Priority, got[0].DaysUntilDue)
			}

			h := health.Record{ID: "hr-1", GoatID: "doe-1", Type: health.RecordTypeVaccination, Title: "CDT", Date: due.AddDate(0, -6, 0), NextDueDate: &due}
			got = Generate(testHerd(), []health.Record{h}, nil, tc.now)
			if len(got) != 1 || got[0].Priority != tc.want || got[0].DaysUntilDue != tc.wantDays {
				t.Fatalf("health: expected %s %d, got %#v", tc.want, tc.wantDays, got)
			}
		})
	}
}

func TestGenerate_OnlyConfirmedProducesBreedingDue(t *testing.T) {
	for _, st := range []breeding.PregnancyStatus{breeding.StatusFailed, breeding.StatusBirthed} {
		rec := confirmed("br-1", daysFromNow(1))
		rec.Status = st
		if got := Generate(testHerd(), nil, []breeding.Record{rec}, testNow); len(got) != 0 {
			t.Fatalf("status %s: expected no alerts, got %#v", st, got)
		}
	}
}

func TestGenerate_PregnancyCheck(t *testing.T) {
	bred := breeding.Record{
		ID:           "br-bred",
		DoeID:        "doe-2",
		BreedingDate: testNow.AddDate(0, 0, -35),
		Status:       breeding.StatusBred,
	}
	due := breeding.ExpectedDueDate(bred.BreedingDate)
	bred.ExpectedDueDate = &due

	got := Generate(testHerd(), nil, []breeding.Record{bred}, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got))
	}
	a := got[0]
	if a.Category != CategoryPregnancyCheck || a.Priority != PriorityHigh {
		t.Fatalf("unexpected alert %#v", a)
	}
	if !strings.Contains(a.Message, "bred 35 days ago") {
		t.Fatalf("unexpected message %q", a.Message)
	}
	wantCheck := bred.BreedingDate.AddDate(0, 0, 30)
	if !a.DueDate.Equal(wantCheck) {
		t.Fatalf("due date: got %v, want %v", a.DueDate, wantCheck)
	}
}

func TestGenerate_PregnancyCheck_PartialDayRoundsUp(t *testing.T) {
	bred := breeding.Record{
		ID:           "br-bred",
		DoeID:        "doe-2",
		BreedingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       breeding.StatusBred,
	}
	now := time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC)

	got := Generate(testHerd(), nil, []breeding.Record{bred}, now)
	if len(got) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got))
	}
	if !strings.Contains(got[0].Message, "bred 36 days ago") {
		t.Fatalf("unexpected message %q", got[0].Message)
	}
}

func TestGenerate_PregnancyCheck_NotYet(t *testing.T) {
	bred := breeding.Record{
		ID:           "br-bred",
		DoeID:        "doe-2",
		BreedingDate: testNow.AddDate(0, 0, -29),
		Status:       breeding.StatusBred,
	}
	if got := Generate(testHerd(), nil, []breeding.Record{bred}, testNow); len(got) != 0 {
		t.Fatalf("expected no alerts before day 30, got %#v", got)
	}

	bred.BreedingDate = testNow.AddDate(0, 0, -30)
	if got := Generate(testHerd(), nil, []breeding.Record{bred}, testNow); len(got) != 1 {
		t.Fatalf("expected alert exactly at day 30, got %d", len(got))
	}
}

func TestGenerate_HealthDue(t *testing.T) {
	cases := []struct {
		offset   int
		want     Priority
		wantNone bool
	}{
		{offset: -10, want: PriorityUrgent},
		{offset: 0, want: PriorityUrgent},
		{offset: 1, want: PriorityHigh},
		{offset: 7, want: PriorityHigh},
		{offset: 8, wantNone: true},
	}

	for _, tc := range cases {
		rec := health.Record{
			ID:          "hr-1",
			GoatID:      "doe-1",
			Type:        health.RecordTypeVaccination,
			Title:       "CDT booster",
			Date:        testNow.AddDate(0, -6, 0),
			NextDueDate: daysFromNow(tc.offset),
		}
		got := Generate(testHerd(), []health.Record{rec}, nil, testNow)
		if tc.wantNone {
			if len(got) != 0 {
				t.Fatalf("offset %d: expected no alerts, got %#v", tc.offset, got)
			}
			continue
		}
		if len(got) != 1 || got[0].Priority != tc.want || got[0].Category != CategoryHealthDue {
			t.Fatalf("offset %d: unexpected alerts %#v", tc.offset, got)
		}
		if !strings.HasPrefix(got[0].Message, "D-001 - CDT booster") {
			t.Fatalf("offset %d: unexpected message %q", tc.offset, got[0].Message)
		}
	}
}

func TestGenerate_HealthOverdue_Idempotent(t *testing.T) {
	healthRecords := []health.Record{
		{ID: "hr-1", GoatID: "doe-1", Type: health.RecordTypeCheckup, Title: "Hooves", NextDueDate: daysFromNow(-1)},
		{ID: "hr-2", GoatID: "doe-2", Type: health.RecordTypeTreatment, Title: "Deworm", NextDueDate: daysFromNow(2)},
	}
	breedingRecords := []breeding.Record{confirmed("br-1", daysFromNow(5))}

	first := Generate(testHerd(), healthRecords, breedingRecords, testNow)
	second := Generate(testHerd(), healthRecords, breedingRecords, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output\nfirst:  %#v\nsecond: %#v", first, second)
	}
	if first[0].HealthRecordID != "hr-1" || first[0].Priority != PriorityUrgent {
		t.Fatalf("expected overdue health alert first, got %#v", first[0])
	}
}

func TestGenerate_DanglingReference_RendersUnknown(t *testing.T) {
	rec := health.Record{
		ID:          "hr-1",
		GoatID:      "deleted-goat",
		Type:        health.RecordTypeVaccination,
		Title:       "Rabies",
		NextDueDate: daysFromNow(-3),
	}
	got := Generate(testHerd(), []health.Record{rec}, nil, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got))
	}
	if got[0].GoatTag != UnknownTag || !strings.HasPrefix(got[0].Message, UnknownTag+" - ") {
		t.Fatalf("expected unknown tag, got %#v", got[0])
	}
}

func TestGenerate_BreedingTag_FallsBackToDenormalizedDoe(t *testing.T) {
	rec := confirmed("br-1", daysFromNow(2))
	rec.DoeID = "gone"
	rec.Doe = &breeding.Party{TagNumber: "D-OLD", OwnerName: "Ana"}

	got := Generate(testHerd(), nil, []breeding.Record{rec}, testNow)
	if len(got) != 1 || got[0].GoatTag != "D-OLD" {
		t.Fatalf("expected denormalized tag, got %#v", got)
	}
}

func TestGenerate_MissingDates_AreSkipped(t *testing.T) {
	breedingRecords := []breeding.Record{
		{ID: "no-due", DoeID: "doe-1", Status: breeding.StatusConfirmed},
		{ID: "zero-due", DoeID: "doe-1", Status: breeding.StatusConfirmed, ExpectedDueDate: &time.Time{}},
		{ID: "no-bred-date", DoeID: "doe-1", Status: breeding.StatusBred},
		confirmed("ok", daysFromNow(1)),
	}
	healthRecords := []health.Record{
		{ID: "no-next", GoatID: "doe-1", Type: health.RecordTypeOther},
		{ID: "zero-next", GoatID: "doe-1", Type: health.RecordTypeOther, NextDueDate: &time.Time{}},
	}

	got := Generate(testHerd(), healthRecords, breedingRecords, testNow)
	if len(got) != 1 || got[0].BreedingRecordID != "ok" {
		t.Fatalf("expected only the valid record to alert, got %#v", got)
	}
}

func TestGenerate_EmptyInputs(t *testing.T) {
	got := Generate(nil, nil, nil, testNow)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGenerate_Ordering_TotalAndStable(t *testing.T) {
	breedingRecords := []breeding.Record{
		confirmed("medium-5", daysFromNow(5)),
		confirmed("high-2", daysFromNow(2)),
		confirmed("urgent-0", daysFromNow(0)),
		confirmed("tie-a", daysFromNow(4)),
		confirmed("tie-b", daysFromNow(4)),
		{ID: "check", DoeID: "doe-2", BreedingDate: testNow.AddDate(0, 0, -40), Status: breeding.StatusBred},
	}
	healthRecords := []health.Record{
		{ID: "h-urgent", GoatID: "doe-1", Type: health.RecordTypeVaccination, Title: "x", NextDueDate: daysFromNow(-5)},
		{ID: "h-high", GoatID: "doe-2", Type: health.RecordTypeCheckup, Title: "y", NextDueDate: daysFromNow(6)},
	}

	got := Generate(testHerd(), healthRecords, breedingRecords, testNow)
	if len(got) != 8 {
		t.Fatalf("expected 8 alerts, got %d", len(got))
	}

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Priority.Rank() < cur.Priority.Rank() {
			t.Fatalf("priority order broken at %d: %s before %s", i, prev.Priority, cur.Priority)
		}
		if prev.Priority == cur.Priority && prev.DueDate.After(cur.DueDate) {
			t.Fatalf("due date order broken at %d: %v before %v", i, prev.DueDate, cur.DueDate)
		}
	}

	if got[0].HealthRecordID != "h-urgent" || got[1].BreedingRecordID != "urgent-0" {
		t.Fatalf("unexpected urgent order: %s, %s", got[0].ID, got[1].ID)
	}

	// a igualdad de ambas claves se respeta el orden de entrada
	var ties []string
	for _, a := range got {
		if a.BreedingRecordID == "tie-a" || a.BreedingRecordID == "tie-b" {
			ties = append(ties, a.BreedingRecordID)
		}
	}
	if !reflect.DeepEqual(ties, []string{"tie-a", "tie-b"}) {
		t.Fatalf("expected stable tie order, got %v", ties)
	}
}

func TestGenerator_CustomRules(t *testing.T) {
	g := Generator{Rules: Rules{BirthHighDays: 1, BirthMediumDays: 14, HealthHighDays: 3, PregnancyCheckDays: 21}}

	got := g.Generate(testHerd(), nil, []breeding.Record{confirmed("br-1", daysFromNow(10))}, testNow)
	if len(got) != 1 || got[0].Priority != PriorityMedium {
		t.Fatalf("expected medium with 14-day window, got %#v", got)
	}
}

func TestRules_Validate(t *testing.T) {
	if err := DefaultRules.Validate(); err != nil {
		t.Fatalf("default rules should be valid: %v", err)
	}
	bad := DefaultRules
	bad.BirthHighDays = 10
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error when high window exceeds medium window")
	}
	bad = DefaultRules
	bad.PregnancyCheckDays = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero window")
	}
}

func TestSummarize(t *testing.T) {
	list := []Alert{
		{Priority: PriorityUrgent},
		{Priority: PriorityUrgent},
		{Priority: PriorityHigh},
		{Priority: PriorityMedium},
	}
	s := Summarize(list)
	want := Summary{Total: 4, Urgent: 2, High: 1, Medium: 1}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}
