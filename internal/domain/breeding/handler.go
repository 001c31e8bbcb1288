package breeding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"goat-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeding", func(br chi.Router) {
		br.Post("/", createBreedingHandler(svc))
		br.Get("/", listBreedingHandler(svc))

		br.Get("/{recordID}", getBreedingHandler(svc))
		br.Post("/{recordID}/status", updateStatusHandler(svc))
	})
}

type createBreedingRequest struct {
	DoeID        string `json:"doe_id"`
	BuckID       string `json:"buck_id"`
	BreedingDate string `json:"breeding_date"` // YYYY-MM-DD
	Notes        string `json:"notes"`
}

type updateStatusRequest struct {
	Status          PregnancyStatus `json:"pregnancy_status" enums:"Confirmed,Failed,Birthed"`
	ActualBirthDate string          `json:"actual_birth_date"` // YYYY-MM-DD, solo Birthed
	NumberOfKids    *int            `json:"number_of_kids"`
}

type partyResponse struct {
	TagNumber string `json:"tag_number"`
	OwnerName string `json:"owner_name"`
}

type breedingResponse struct {
	ID              string          `json:"id"`
	DoeID           string          `json:"doe_id"`
	BuckID          string          `json:"buck_id"`
	BreedingDate    string          `json:"breeding_date"`
	ExpectedDueDate *string         `json:"expected_due_date,omitempty"`
	ActualBirthDate *string         `json:"actual_birth_date,omitempty"`
	Status          PregnancyStatus `json:"pregnancy_status"`
	NumberOfKids    *int            `json:"number_of_kids,omitempty"`
	Notes           string          `json:"notes"`
	Doe             *partyResponse  `json:"doe,omitempty"`
	Buck            *partyResponse  `json:"buck,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by"`
}

// createBreedingHandler godoc
// @Summary Registrar monta
// @Description Registra la monta (status Bred, parto esperado = monta + 150 días) y pasa la hembra a Pregnant. La hembra debe ser del usuario.
// @Tags breeding
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createBreedingRequest true "Datos de la monta; breeding_date YYYY-MM-DD"
// @Success 201 {object} breedingResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /breeding [post]
func createBreedingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createBreedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bred, err := time.Parse("2006-01-02", strings.TrimSpace(req.BreedingDate))
		if err != nil {
			http.Error(w, "breeding_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), userID, CreateInput{
			DoeID:        req.DoeID,
			BuckID:       req.BuckID,
			BreedingDate: bred,
			Notes:        req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBreedingResponse(rec))
	}
}

// listBreedingHandler godoc
// @Summary Listar montas
// @Description Registros de monta del usuario, más recientes primero, con arete y dueño de hembra y macho.
// @Tags breeding
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} breedingResponse
// @Failure 401 {string} string "unauthorized"
// @Router /breeding [get]
func listBreedingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]breedingResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toBreedingResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getBreedingHandler godoc
// @Summary Ver monta
// @Tags breeding
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param recordID path string true "ID del registro de monta"
// @Success 200 {object} breedingResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "breeding record not found"
// @Router /breeding/{recordID} [get]
func getBreedingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if rec.CreatedBy != userID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		writeJSON(w, http.StatusOK, toBreedingResponse(rec))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de preñez
// @Description Transiciones válidas: Bred -> Confirmed | Failed, Confirmed -> Birthed. Birthed pasa la hembra a Nursing y Failed a Available.
// @Tags breeding
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param recordID path string true "ID del registro de monta"
// @Param payload body updateStatusRequest true "Nuevo estado"
// @Success 200 {object} breedingResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "breeding record not found"
// @Failure 409 {string} string "transición inválida"
// @Router /breeding/{recordID}/status [post]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := StatusInput{Status: req.Status, NumberOfKids: req.NumberOfKids}
		if strings.TrimSpace(req.ActualBirthDate) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.ActualBirthDate))
			if err != nil {
				http.Error(w, "actual_birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.ActualBirthDate = &t
		}

		rec, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "recordID"), userID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBreedingResponse(rec))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "breeding record not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func dateOnly(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func toBreedingResponse(rec Record) breedingResponse {
	out := breedingResponse{
		ID:              rec.ID,
		DoeID:           rec.DoeID,
		BuckID:          rec.BuckID,
		BreedingDate:    rec.BreedingDate.Format(time.DateOnly),
		ExpectedDueDate: dateOnly(rec.ExpectedDueDate),
		ActualBirthDate: dateOnly(rec.ActualBirthDate),
		Status:          rec.Status,
		NumberOfKids:    rec.NumberOfKids,
		Notes:           rec.Notes,
		CreatedAt:       rec.CreatedAt,
		CreatedBy:       rec.CreatedBy,
	}
	if rec.Doe != nil {
		out.Doe = &partyResponse{TagNumber: rec.Doe.TagNumber, OwnerName: rec.Doe.OwnerName}
	}
	if rec.Buck != nil {
		out.Buck = &partyResponse{TagNumber: rec.Buck.TagNumber, OwnerName: rec.Buck.OwnerName}
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
