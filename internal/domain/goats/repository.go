package goats

import (
	"context"
	"strings"
)

type Repository interface {
	Create(ctx context.Context, g Goat) error
	Update(ctx context.Context, g Goat) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Goat, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Goat, error)
}

// Match aplica el filtro en memoria (lo usan el repo in-memory y los tests).
func (f ListFilter) Match(g Goat) bool {
	if tag := strings.TrimSpace(f.Tag); tag != "" {
		if !strings.Contains(strings.ToLower(g.TagNumber), strings.ToLower(tag)) {
			return false
		}
	}
	if f.Gender != "" && g.Gender != f.Gender {
		return false
	}
	if f.HealthStatus != "" && g.HealthStatus != f.HealthStatus {
		return false
	}
	if f.BreedingStatus != "" && g.BreedingStatus != f.BreedingStatus {
		return false
	}
	return true
}
