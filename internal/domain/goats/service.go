package goats

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
	ErrNotFound     = errors.New("goat not found")
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
	TagNumber      string
	OwnerName      string
	Gender         Gender
	GoatPhotoURL   string
	TagPhotoURL    string
	BirthDate      *time.Time
	Weight         *float64
	HealthStatus   HealthStatus
	BreedingStatus BreedingStatus
	SireID         string
	DamID          string
	Notes          string
}

func (s *Service) Register(ctx context.Context, ownerUserID string, in CreateInput) (Goat, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Goat{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.TagNumber) == "" || strings.TrimSpace(in.OwnerName) == "" {
		return Goat{}, fmt.Errorf("%w: tag_number and owner_name are required", ErrInvalidInput)
	}
	if !ValidGender(in.Gender) {
		return Goat{}, fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
	}
	if in.HealthStatus != "" && !ValidHealthStatus(in.HealthStatus) {
		return Goat{}, fmt.Errorf("%w: unknown health_status %q", ErrInvalidInput, in.HealthStatus)
	}
	if in.BreedingStatus != "" && !ValidBreedingStatus(in.BreedingStatus) {
		return Goat{}, fmt.Errorf("%w: unknown breeding_status %q", ErrInvalidInput, in.BreedingStatus)
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return Goat{}, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}

	g := Goat{
		ID:             uuid.NewString(),
		TagNumber:      strings.TrimSpace(in.TagNumber),
		OwnerName:      strings.TrimSpace(in.OwnerName),
		Gender:         in.Gender,
		GoatPhotoURL:   strings.TrimSpace(in.GoatPhotoURL),
		TagPhotoURL:    strings.TrimSpace(in.TagPhotoURL),
		BirthDate:      in.BirthDate,
		Weight:         in.Weight,
		HealthStatus:   in.HealthStatus,
		BreedingStatus: in.BreedingStatus,
		SireID:         strings.TrimSpace(in.SireID),
		DamID:          strings.TrimSpace(in.DamID),
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      s.now(),
		CreatedBy:      ownerUserID,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return Goat{}, err
	}
	return g, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Goat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Goat{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Goat, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	TagNumber      *string
	OwnerName      *string
	Weight         *float64
	HealthStatus   *HealthStatus
	BreedingStatus *BreedingStatus
	GoatPhotoURL   *string
	TagPhotoURL    *string
	Notes          *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Goat, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return Goat{}, err
	}

	if in.TagNumber != nil {
		v := strings.TrimSpace(*in.TagNumber)
		if v == "" {
			return Goat{}, fmt.Errorf("%w: tag_number cannot be empty", ErrInvalidInput)
		}
		g.TagNumber = v
	}
	if in.OwnerName != nil {
		v := strings.TrimSpace(*in.OwnerName)
		if v == "" {
			return Goat{}, fmt.Errorf("%w: owner_name cannot be empty", ErrInvalidInput)
		}
		g.OwnerName = v
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return Goat{}, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
		}
		w := *in.Weight
		g.Weight = &w
	}
	if in.HealthStatus != nil {
		if !ValidHealthStatus(*in.HealthStatus) {
			return Goat{}, fmt.Errorf("%w: unknown health_status %q", ErrInvalidInput, *in.HealthStatus)
		}
		g.HealthStatus = *in.HealthStatus
	}
	if in.BreedingStatus != nil {
		if !ValidBreedingStatus(*in.BreedingStatus) {
			return Goat{}, fmt.Errorf("%w: unknown breeding_status %q", ErrInvalidInput, *in.BreedingStatus)
		}
		g.BreedingStatus = *in.BreedingStatus
	}
	if in.GoatPhotoURL != nil {
		g.GoatPhotoURL = strings.TrimSpace(*in.GoatPhotoURL)
	}
	if in.TagPhotoURL != nil {
		g.TagPhotoURL = strings.TrimSpace(*in.TagPhotoURL)
	}
	if in.Notes != nil {
		g.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return Goat{}, err
	}
	return g, nil
}

// SetBreedingStatus lo usa breeding para el segundo paso de sus transiciones.
func (s *Service) SetBreedingStatus(ctx context.Context, id string, status BreedingStatus) (Goat, error) {
	return s.Update(ctx, id, UpdateInput{BreedingStatus: &status})
}

func (s *Service) SetHealthStatus(ctx context.Context, id string, status HealthStatus) (Goat, error) {
	return s.Update(ctx, id, UpdateInput{HealthStatus: &status})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// OwnerOf expone el created_by de un animal.
// Se usa para autorizar en health/breeding sin importar handlers de goats.
func (s *Service) OwnerOf(ctx context.Context, id string) (string, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return g.CreatedBy, nil
}
