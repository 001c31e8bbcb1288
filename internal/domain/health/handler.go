package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"goat-tracker/internal/domain/goats"
	"goat-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// GoatOwners resuelve quién registró un animal (lo implementa goats.Service).
type GoatOwners interface {
	OwnerOf(ctx context.Context, goatID string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, owners GoatOwners) {
	r.Route("/goats/{goatID}/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc, owners))
		hr.Get("/", listGoatRecordsHandler(svc, owners))
	})

	r.Get("/health-records", listRecordsHandler(svc))
}

type createRecordRequest struct {
	RecordType   RecordType `json:"record_type" enums:"Vaccination,Treatment,Checkup,Weight,Other"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Date         string     `json:"date"`          // YYYY-MM-DD
	NextDueDate  string     `json:"next_due_date"` // YYYY-MM-DD opcional
	Cost         *float64   `json:"cost"`
	Veterinarian string     `json:"veterinarian"`
}

type recordResponse struct {
	ID           string     `json:"id"`
	GoatID       string     `json:"goat_id"`
	RecordType   RecordType `json:"record_type"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Date         string     `json:"date"`
	NextDueDate  *string    `json:"next_due_date,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	Veterinarian string     `json:"veterinarian,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `json:"created_by"`
}

// createRecordHandler godoc
// @Summary Registrar evento sanitario
// @Description Agrega un registro sanitario (vacuna, tratamiento, control...) al animal. Si trae next_due_date se generan avisos de seguimiento.
// @Tags health
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param goatID path string true "ID del animal"
// @Param payload body createRecordRequest true "Datos del registro; fechas YYYY-MM-DD"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / fecha inválida / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "goat not found"
// @Router /goats/{goatID}/health-records [post]
func createRecordHandler(svc *Service, owners GoatOwners) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, goatID, ok := authorizeGoat(w, r, owners)
		if !ok {
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		var next *time.Time
		if strings.TrimSpace(req.NextDueDate) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.NextDueDate))
			if err != nil {
				http.Error(w, "next_due_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			next = &t
		}

		rec, err := svc.Create(r.Context(), goatID, userID, CreateInput{
			Type:         req.RecordType,
			Title:        req.Title,
			Description:  req.Description,
			Date:         date,
			NextDueDate:  next,
			Cost:         req.Cost,
			Veterinarian: req.Veterinarian,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listGoatRecordsHandler godoc
// @Summary Historial sanitario de una cabra
// @Tags health
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param goatID path string true "ID del animal"
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "goat not found"
// @Router /goats/{goatID}/health-records [get]
func listGoatRecordsHandler(svc *Service, owners GoatOwners) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, goatID, ok := authorizeGoat(w, r, owners)
		if !ok {
			return
		}

		items, err := svc.ListByGoat(r.Context(), goatID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponses(items))
	}
}

// listRecordsHandler godoc
// @Summary Registros sanitarios del usuario
// @Description Todos los registros sanitarios creados por el usuario, más recientes primero.
// @Tags health
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Router /health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, toRecordResponses(items))
	}
}

func authorizeGoat(w http.ResponseWriter, r *http.Request, owners GoatOwners) (userID, goatID string, ok bool) {
	userID, ok = middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	goatID = chi.URLParam(r, "goatID")
	owner, err := owners.OwnerOf(r.Context(), goatID)
	if err != nil {
		if errors.Is(err, goats.ErrNotFound) || errors.Is(err, goats.ErrInvalidInput) {
			http.Error(w, "goat not found", http.StatusNotFound)
			return "", "", false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", "", false
	}
	if owner != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", "", false
	}
	return userID, goatID, true
}

func toRecordResponses(items []Record) []recordResponse {
	out := make([]recordResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

func toRecordResponse(rec Record) recordResponse {
	out := recordResponse{
		ID:           rec.ID,
		GoatID:       rec.GoatID,
		RecordType:   rec.Type,
		Title:        rec.Title,
		Description:  rec.Description,
		Date:         rec.Date.Format(time.DateOnly),
		Cost:         rec.Cost,
		Veterinarian: rec.Veterinarian,
		CreatedAt:    rec.CreatedAt,
		CreatedBy:    rec.CreatedBy,
	}
	if rec.NextDueDate != nil {
		s := rec.NextDueDate.Format(time.DateOnly)
		out.NextDueDate = &s
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
