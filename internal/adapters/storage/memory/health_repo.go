package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"goat-tracker/internal/domain/health"
)

type healthRepo struct {
	mu   sync.RWMutex
	byID map[string]health.Record
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID: make(map[string]health.Record),
	}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("health record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("health record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *healthRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]health.Record, error) {
	return r.list(func(rec health.Record) bool { return rec.CreatedBy == ownerUserID }), nil
}

func (r *healthRepo) ListByGoat(ctx context.Context, goatID string) ([]health.Record, error) {
	return r.list(func(rec health.Record) bool { return rec.GoatID == goatID }), nil
}

func (r *healthRepo) list(keep func(health.Record) bool) []health.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.Record, 0)
	for _, rec := range r.byID {
		if keep(rec) {
			out = append(out, rec)
		}
	}

	// date desc
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}
