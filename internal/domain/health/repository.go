package health

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error)
	ListByGoat(ctx context.Context, goatID string) ([]Record, error)
}
