package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"goat-tracker/internal/domain/breeding"
)

type breedingRepo struct {
	mu   sync.RWMutex
	byID map[string]breeding.Record
}

func NewBreedingRepo() breeding.Repository {
	return &breedingRepo{
		byID: make(map[string]breeding.Record),
	}
}

func (r *breedingRepo) Create(ctx context.Context, rec breeding.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("breeding record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("breeding record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *breedingRepo) Update(ctx context.Context, rec breeding.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[rec.ID]
	if !exists {
		return fmt.Errorf("%w: %s", breeding.ErrNotFound, rec.ID)
	}
	// Doe/Buck se fijan al crear; un update sin ellos no los borra.
	if rec.Doe == nil {
		rec.Doe = prev.Doe
	}
	if rec.Buck == nil {
		rec.Buck = prev.Buck
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *breedingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("%w: %s", breeding.ErrNotFound, id)
	}
	delete(r.byID, id)
	return nil
}

func (r *breedingRepo) GetByID(ctx context.Context, id string) (breeding.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return breeding.Record{}, fmt.Errorf("%w: %s", breeding.ErrNotFound, id)
	}
	return rec, nil
}

func (r *breedingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeding.Record, 0)
	for _, rec := range r.byID {
		if rec.CreatedBy == ownerUserID {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].BreedingDate.Equal(out[j].BreedingDate) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].BreedingDate.After(out[j].BreedingDate)
	})

	return out, nil
}
