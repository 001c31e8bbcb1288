package goats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Goat
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Goat{}}
}

func (r *testRepo) Create(ctx context.Context, g Goat) error {
	if _, ok := r.byID[g.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Update(ctx context.Context, g Goat) error {
	if _, ok := r.byID[g.ID]; !ok {
		return fmt.Errorf("repo: %w", ErrNotFound)
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("repo: %w", ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Goat, error) {
	g, ok := r.byID[id]
	if !ok {
		return Goat{}, fmt.Errorf("repo: %w", ErrNotFound)
	}
	return g, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, owner string, f ListFilter) ([]Goat, error) {
	out := make([]Goat, 0)
	for _, g := range r.byID {
		if g.CreatedBy == owner && f.Match(g) {
			out = append(out, g)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func ptr[T any](v T) *T { return &v }

func TestRegister_SetsOwnerAndTimestamps(t *testing.T) {
	svc, repo := newTestService()

	g, err := svc.Register(context.Background(), "u1", CreateInput{
		TagNumber: "  T-001 ",
		OwnerName: "Ana",
		Gender:    GenderFemale,
		Weight:    ptr(40.0),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if g.ID == "" || g.CreatedBy != "u1" || !g.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected goat %+v", g)
	}
	if g.TagNumber != "T-001" {
		t.Fatalf("expected trimmed tag, got %q", g.TagNumber)
	}
	if _, ok := repo.byID[g.ID]; !ok {
		t.Fatalf("goat not persisted")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing tag", CreateInput{OwnerName: "Ana", Gender: GenderMale}},
		{"missing owner", CreateInput{TagNumber: "T", Gender: GenderMale}},
		{"bad gender", CreateInput{TagNumber: "T", OwnerName: "Ana", Gender: "Other"}},
		{"bad health", CreateInput{TagNumber: "T", OwnerName: "Ana", Gender: GenderMale, HealthStatus: "Dead"}},
		{"bad breeding", CreateInput{TagNumber: "T", OwnerName: "Ana", Gender: GenderMale, BreedingStatus: "Busy"}},
		{"zero weight", CreateInput{TagNumber: "T", OwnerName: "Ana", Gender: GenderMale, Weight: ptr(0.0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, "u1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if _, err := svc.Register(ctx, " ", CreateInput{TagNumber: "T", OwnerName: "Ana", Gender: GenderMale}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without owner, got %v", err)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g, _ := svc.Register(ctx, "u1", CreateInput{TagNumber: "T-1", OwnerName: "Ana", Gender: GenderFemale, Notes: "keep"})

	sick := HealthSick
	updated, err := svc.Update(ctx, g.ID, UpdateInput{HealthStatus: &sick, Weight: ptr(55.5)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.HealthStatus != HealthSick || *updated.Weight != 55.5 || updated.Notes != "keep" || updated.TagNumber != "T-1" {
		t.Fatalf("unexpected patch result %+v", updated)
	}

	if _, err := svc.Update(ctx, g.ID, UpdateInput{TagNumber: ptr("  ")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty tag, got %v", err)
	}
	if _, err := svc.Update(ctx, "missing", UpdateInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetBreedingStatus_AndOwnerOf(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g, _ := svc.Register(ctx, "u1", CreateInput{TagNumber: "D-1", OwnerName: "Ana", Gender: GenderFemale})

	got, err := svc.SetBreedingStatus(ctx, g.ID, BreedingPregnant)
	if err != nil || got.BreedingStatus != BreedingPregnant {
		t.Fatalf("SetBreedingStatus: %v %+v", err, got)
	}
	if _, err := svc.SetBreedingStatus(ctx, g.ID, "Busy"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	owner, err := svc.OwnerOf(ctx, g.ID)
	if err != nil || owner != "u1" {
		t.Fatalf("OwnerOf: %v %q", err, owner)
	}

	if err := svc.Delete(ctx, g.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.OwnerOf(ctx, g.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListFilter_Match(t *testing.T) {
	g := Goat{TagNumber: "ABC-12", Gender: GenderFemale, HealthStatus: HealthHealthy, BreedingStatus: BreedingPregnant}

	if !(ListFilter{}).Match(g) {
		t.Fatalf("empty filter must match")
	}
	if !(ListFilter{Tag: "bc-1"}).Match(g) {
		t.Fatalf("tag match must be partial and case-insensitive")
	}
	if (ListFilter{Gender: GenderMale}).Match(g) {
		t.Fatalf("gender mismatch must not match")
	}
	if (ListFilter{BreedingStatus: BreedingNursing}).Match(g) {
		t.Fatalf("breeding status mismatch must not match")
	}
}
