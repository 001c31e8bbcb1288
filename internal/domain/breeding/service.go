package breeding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("breeding record not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid pregnancy status transition")
)

// Herd es lo que breeding necesita de goats (lectura + cambio de estado reproductivo).
type Herd interface {
	GetByID(ctx context.Context, id string) (goats.Goat, error)
	SetBreedingStatus(ctx context.Context, id string, status goats.BreedingStatus) (goats.Goat, error)
}

type Service struct {
	repo Repository
	herd Herd
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, herd Herd, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		herd: herd,
		log:  log.With(map[string]any{"component": "breeding"}),
		now:  time.Now,
	}
}

type CreateInput struct {
	DoeID        string
	BuckID       string
	BreedingDate time.Time
	Notes        string
}

// Create registra la monta en dos pasos explícitos:
//  1. inserta el registro (status Bred, fecha esperada = monta + 150 días)
//  2. pasa la hembra a Pregnant
//
// Si el paso 2 falla se borra el registro del paso 1.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Record, error) {
	userID = strings.TrimSpace(userID)
	doeID := strings.TrimSpace(in.DoeID)
	buckID := strings.TrimSpace(in.BuckID)

	if userID == "" || doeID == "" || buckID == "" {
		return Record{}, ErrInvalidInput
	}
	if doeID == buckID {
		return Record{}, fmt.Errorf("%w: doe and buck must differ", ErrInvalidInput)
	}
	if in.BreedingDate.IsZero() {
		return Record{}, fmt.Errorf("%w: breeding_date is required", ErrInvalidInput)
	}

	doe, err := s.herd.GetByID(ctx, doeID)
	if err != nil {
		if errors.Is(err, goats.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: doe not found", ErrInvalidInput)
		}
		return Record{}, err
	}
	if doe.CreatedBy != userID {
		return Record{}, ErrForbidden
	}
	if doe.Gender != goats.GenderFemale {
		return Record{}, fmt.Errorf("%w: doe must be Female", ErrInvalidInput)
	}

	buck, err := s.herd.GetByID(ctx, buckID)
	if err != nil {
		if errors.Is(err, goats.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: buck not found", ErrInvalidInput)
		}
		return Record{}, err
	}
	if buck.Gender != goats.GenderMale {
		return Record{}, fmt.Errorf("%w: buck must be Male", ErrInvalidInput)
	}

	due := ExpectedDueDate(in.BreedingDate)
	rec := Record{
		ID:              uuid.NewString(),
		DoeID:           doeID,
		BuckID:          buckID,
		BreedingDate:    in.BreedingDate,
		ExpectedDueDate: &due,
		Status:          StatusBred,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       s.now(),
		CreatedBy:       userID,
		Doe:             &Party{TagNumber: doe.TagNumber, OwnerName: doe.OwnerName},
		Buck:            &Party{TagNumber: buck.TagNumber, OwnerName: buck.OwnerName},
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}

	if _, err := s.herd.SetBreedingStatus(ctx, doeID, goats.BreedingPregnant); err != nil {
		if delErr := s.repo.Delete(ctx, rec.ID); delErr != nil {
			s.log.Error("compensation failed, orphan breeding record", map[string]any{
				"breeding_record_id": rec.ID,
				"doe_id":             doeID,
				"err":                delErr,
			})
		}
		return Record{}, fmt.Errorf("set doe pregnant: %w", err)
	}

	s.log.Info("breeding recorded", map[string]any{
		"breeding_record_id": rec.ID,
		"doe_id":             doeID,
		"expected_due_date":  due.Format(time.DateOnly),
	})
	return rec, nil
}

type StatusInput struct {
	Status          PregnancyStatus
	ActualBirthDate *time.Time
	NumberOfKids    *int
}

// UpdateStatus avanza el ciclo de preñez. Birthed deja a la hembra en Nursing
// y Failed la devuelve a Available; si ese segundo paso falla se restaura el registro.
func (s *Service) UpdateStatus(ctx context.Context, id, userID string, in StatusInput) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}

	prev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if prev.CreatedBy != userID {
		return Record{}, ErrForbidden
	}
	if !CanTransition(prev.Status, in.Status) {
		return Record{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prev.Status, in.Status)
	}

	next := prev
	next.Status = in.Status

	if in.Status == StatusBirthed {
		born := s.now()
		if in.ActualBirthDate != nil {
			born = *in.ActualBirthDate
		}
		next.ActualBirthDate = &born
		if in.NumberOfKids != nil {
			if *in.NumberOfKids < 0 {
				return Record{}, fmt.Errorf("%w: number_of_kids cannot be negative", ErrInvalidInput)
			}
			n := *in.NumberOfKids
			next.NumberOfKids = &n
		}
	}

	if err := s.repo.Update(ctx, next); err != nil {
		return Record{}, err
	}

	var doeStatus goats.BreedingStatus
	switch in.Status {
	case StatusBirthed:
		doeStatus = goats.BreedingNursing
	case StatusFailed:
		doeStatus = goats.BreedingAvailable
	}
	if doeStatus != "" {
		if _, err := s.herd.SetBreedingStatus(ctx, next.DoeID, doeStatus); err != nil && !errors.Is(err, goats.ErrNotFound) {
			if rbErr := s.repo.Update(ctx, prev); rbErr != nil {
				s.log.Error("compensation failed, breeding record left updated", map[string]any{
					"breeding_record_id": id,
					"err":                rbErr,
				})
			}
			return Record{}, fmt.Errorf("set doe %s: %w", doeStatus, err)
		}
	}

	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}
