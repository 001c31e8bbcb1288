package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"goat-tracker/internal/domain/breeding"
	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/domain/health"

	"github.com/google/uuid"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./internal/adapters/storage/postgres
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestRepos_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := "it-" + uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	w := 42.5

	goatRepo := NewGoatsRepo(db)
	doe := goats.Goat{ID: uuid.NewString(), TagNumber: "DOE-IT", OwnerName: "Ana", Gender: goats.GenderFemale, Weight: &w, CreatedAt: now, CreatedBy: user}
	buck := goats.Goat{ID: uuid.NewString(), TagNumber: "BUCK-IT", OwnerName: "Ana", Gender: goats.GenderMale, CreatedAt: now.Add(time.Second), CreatedBy: user}
	for _, g := range []goats.Goat{doe, buck} {
		if err := goatRepo.Create(ctx, g); err != nil {
			t.Fatalf("create goat: %v", err)
		}
	}
	t.Cleanup(func() {
		_ = goatRepo.Delete(ctx, doe.ID)
		_ = goatRepo.Delete(ctx, buck.ID)
	})

	got, err := goatRepo.GetByID(ctx, doe.ID)
	if err != nil {
		t.Fatalf("get goat: %v", err)
	}
	if got.Weight == nil || *got.Weight != w || got.BirthDate != nil {
		t.Fatalf("unexpected goat %+v", got)
	}

	females, err := goatRepo.ListByOwner(ctx, user, goats.ListFilter{Gender: goats.GenderFemale, Tag: "doe"})
	if err != nil || len(females) != 1 || females[0].ID != doe.ID {
		t.Fatalf("filter list: %v %+v", err, females)
	}

	if _, err := goatRepo.GetByID(ctx, uuid.NewString()); !errors.Is(err, goats.ErrNotFound) {
		t.Fatalf("expected goats.ErrNotFound, got %v", err)
	}

	healthRepo := NewHealthRepo(db)
	next := day.AddDate(0, 0, 30)
	cost := 12.0
	hr := health.Record{ID: uuid.NewString(), GoatID: doe.ID, Type: health.RecordTypeVaccination, Title: "CDT", Date: day, NextDueDate: &next, Cost: &cost, CreatedAt: now, CreatedBy: user}
	if err := healthRepo.Create(ctx, hr); err != nil {
		t.Fatalf("create health record: %v", err)
	}
	records, err := healthRepo.ListByGoat(ctx, doe.ID)
	if err != nil || len(records) != 1 || records[0].NextDueDate == nil || !records[0].NextDueDate.Equal(next) {
		t.Fatalf("list health: %v %+v", err, records)
	}

	breedingRepo := NewBreedingRepo(db)
	due := breeding.ExpectedDueDate(day)
	br := breeding.Record{ID: uuid.NewString(), DoeID: doe.ID, BuckID: buck.ID, BreedingDate: day, ExpectedDueDate: &due, Status: breeding.StatusBred, CreatedAt: now, CreatedBy: user}
	if err := breedingRepo.Create(ctx, br); err != nil {
		t.Fatalf("create breeding: %v", err)
	}

	kids := 2
	br.Status = breeding.StatusConfirmed
	br.NumberOfKids = &kids
	if err := breedingRepo.Update(ctx, br); err != nil {
		t.Fatalf("update breeding: %v", err)
	}

	list, err := breedingRepo.ListByOwner(ctx, user)
	if err != nil || len(list) != 1 {
		t.Fatalf("list breeding: %v %+v", err, list)
	}
	if list[0].Doe == nil || list[0].Doe.TagNumber != "DOE-IT" || list[0].Status != breeding.StatusConfirmed {
		t.Fatalf("unexpected breeding record %+v", list[0])
	}

	if err := breedingRepo.Delete(ctx, br.ID); err != nil {
		t.Fatalf("delete breeding: %v", err)
	}
	if _, err := breedingRepo.GetByID(ctx, br.ID); !errors.Is(err, breeding.ErrNotFound) {
		t.Fatalf("expected breeding.ErrNotFound, got %v", err)
	}
}
