package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"goat-tracker/internal/domain/goats"
)

type goatRepo struct {
	mu   sync.RWMutex
	byID map[string]goats.Goat
}

func NewGoatRepo() goats.Repository {
	return &goatRepo{
		byID: make(map[string]goats.Goat),
	}
}

func (r *goatRepo) Create(ctx context.Context, g goats.Goat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(g.ID) == "" {
		return errors.New("goat id required")
	}
	if _, exists := r.byID[g.ID]; exists {
		return errors.New("goat already exists")
	}
	r.byID[g.ID] = g
	return nil
}

func (r *goatRepo) Update(ctx context.Context, g goats.Goat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[g.ID]; !exists {
		return fmt.Errorf("%w: %s", goats.ErrNotFound, g.ID)
	}
	r.byID[g.ID] = g
	return nil
}

func (r *goatRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("%w: %s", goats.ErrNotFound, id)
	}
	delete(r.byID, id)
	return nil
}

func (r *goatRepo) GetByID(ctx context.Context, id string) (goats.Goat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return goats.Goat{}, fmt.Errorf("%w: %s", goats.ErrNotFound, id)
	}
	return g, nil
}

func (r *goatRepo) ListByOwner(ctx context.Context, ownerUserID string, filter goats.ListFilter) ([]goats.Goat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goats.Goat, 0)
	for _, g := range r.byID {
		if g.CreatedBy == ownerUserID && filter.Match(g) {
			out = append(out, g)
		}
	}

	// Más recientes primero, igual que postgres
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
