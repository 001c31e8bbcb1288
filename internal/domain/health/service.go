package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type         RecordType
	Title        string
	Description  string
	Date         time.Time
	NextDueDate  *time.Time
	Cost         *float64
	Veterinarian string
}

func (s *Service) Create(ctx context.Context, goatID, userID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(goatID) == "" || strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	if !ValidRecordType(in.Type) {
		return Record{}, fmt.Errorf("%w: unknown record_type %q", ErrInvalidInput, in.Type)
	}
	if strings.TrimSpace(in.Title) == "" {
		return Record{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return Record{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if in.Cost != nil && *in.Cost < 0 {
		return Record{}, fmt.Errorf("%w: cost cannot be negative", ErrInvalidInput)
	}

	r := Record{
		ID:           uuid.NewString(),
		GoatID:       goatID,
		Type:         in.Type,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Date:         in.Date,
		NextDueDate:  in.NextDueDate,
		Cost:         in.Cost,
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		CreatedAt:    s.now(),
		CreatedBy:    userID,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ListByGoat(ctx context.Context, goatID string) ([]Record, error) {
	return s.repo.ListByGoat(ctx, goatID)
}
