package goats

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
	r.Route("/goats", func(gr chi.Router) {
		gr.Post("/", createGoatHandler(svc))
		gr.Get("/", listGoatsHandler(svc))

		gr.Get("/{goatID}", getGoatHandler(svc))
		gr.Patch("/{goatID}", updateGoatHandler(svc))
		gr.Delete("/{goatID}", deleteGoatHandler(svc))
	})
}

// createGoatRequest es el cuerpo para registrar un animal.
type createGoatRequest struct {
	TagNumber      string         `json:"tag_number"`
	OwnerName      string         `json:"owner_name"`
	Gender         Gender         `json:"gender" enums:"Male,Female"`
	GoatPhotoURL   string         `json:"goat_photo_url"`
	TagPhotoURL    string         `json:"tag_photo_url"`
	BirthDate      string         `json:"birth_date"` // YYYY-MM-DD opcional
	Weight         *float64       `json:"weight"`
	HealthStatus   HealthStatus   `json:"health_status" enums:"Healthy,Sick,Under Treatment,Quarantine"`
	BreedingStatus BreedingStatus `json:"breeding_status" enums:"Available,Pregnant,Nursing,Retired"`
	SireID         string         `json:"sire_id"`
	DamID          string         `json:"dam_id"`
	Notes          string         `json:"notes"`
}

// updateGoatRequest: punteros para PATCH real, nil = no tocar.
type updateGoatRequest struct {
	TagNumber      *string         `json:"tag_number"`
	OwnerName      *string         `json:"owner_name"`
	Weight         *float64        `json:"weight"`
	HealthStatus   *HealthStatus   `json:"health_status"`
	BreedingStatus *BreedingStatus `json:"breeding_status"`
	GoatPhotoURL   *string         `json:"goat_photo_url"`
	TagPhotoURL    *string         `json:"tag_photo_url"`
	Notes          *string         `json:"notes"`
}

type goatResponse struct {
	ID             string         `json:"id"`
	TagNumber      string         `json:"tag_number"`
	OwnerName      string         `json:"owner_name"`
	Gender         Gender         `json:"gender"`
	GoatPhotoURL   string         `json:"goat_photo_url,omitempty"`
	TagPhotoURL    string         `json:"tag_photo_url,omitempty"`
	BirthDate      *string        `json:"birth_date,omitempty"`
	Weight         *float64       `json:"weight,omitempty"`
	HealthStatus   HealthStatus   `json:"health_status,omitempty"`
	BreedingStatus BreedingStatus `json:"breeding_status,omitempty"`
	SireID         string         `json:"sire_id,omitempty"`
	DamID          string         `json:"dam_id,omitempty"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	CreatedBy      string         `json:"created_by"`
}

// createGoatHandler godoc
// @Summary Registrar cabra
// @Description Registra un animal en el rebaño del usuario autenticado. birth_date en formato YYYY-MM-DD.
// @Tags goats
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createGoatRequest true "Datos del animal"
// @Success 201 {object} goatResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /goats [post]
func createGoatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createGoatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		g, err := svc.Register(r.Context(), userID, CreateInput{
			TagNumber:      req.TagNumber,
			OwnerName:      req.OwnerName,
			Gender:         req.Gender,
			GoatPhotoURL:   req.GoatPhotoURL,
			TagPhotoURL:    req.TagPhotoURL,
			BirthDate:      bd,
			Weight:         req.Weight,
			HealthStatus:   req.HealthStatus,
			BreedingStatus: req.BreedingStatus,
			SireID:         req.SireID,
			DamID:          req.DamID,
			Notes:          req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toGoatResponse(g))
	}
}

// listGoatsHandler godoc
// @Summary Listar cabras
// @Description Lista el rebaño del usuario, más recientes primero. Filtros opcionales: tag parcial y estados exactos.
// @Tags goats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tag query string false "Búsqueda parcial por número de arete"
// @Param gender query string false "Male o Female"
// @Param health_status query string false "Healthy, Sick, Under Treatment, Quarantine"
// @Param breeding_status query string false "Available, Pregnant, Nursing, Retired"
// @Success 200 {array} goatResponse
// @Failure 400 {string} string "filtro inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /goats [get]
func listGoatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		filter := ListFilter{
			Tag:            q.Get("tag"),
			Gender:         Gender(q.Get("gender")),
			HealthStatus:   HealthStatus(q.Get("health_status")),
			BreedingStatus: BreedingStatus(q.Get("breeding_status")),
		}
		if filter.Gender != "" && !ValidGender(filter.Gender) {
			http.Error(w, "invalid gender", http.StatusBadRequest)
			return
		}
		if filter.HealthStatus != "" && !ValidHealthStatus(filter.HealthStatus) {
			http.Error(w, "invalid health_status", http.StatusBadRequest)
			return
		}
		if filter.BreedingStatus != "" && !ValidBreedingStatus(filter.BreedingStatus) {
			http.Error(w, "invalid breeding_status", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]goatResponse, 0, len(items))
		for _, g := range items {
			out = append(out, toGoatResponse(g))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getGoatHandler godoc
// @Summary Ver cabra
// @Tags goats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param goatID path string true "ID del animal"
// @Success 200 {object} goatResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "goat not found"
// @Router /goats/{goatID} [get]
func getGoatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := loadOwnedGoat(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toGoatResponse(g))
	}
}

// updateGoatHandler godoc
// @Summary Actualizar cabra
// @Description Actualización parcial. Solo el usuario que registró el animal puede modificarlo.
// @Tags goats
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param goatID path string true "ID del animal"
// @Param payload body updateGoatRequest true "Campos a modificar"
// @Success 200 {object} goatResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "goat not found"
// @Router /goats/{goatID} [patch]
func updateGoatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwnedGoat(w, r, svc)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateGoatRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			TagNumber:      req.TagNumber,
			OwnerName:      req.OwnerName,
			Weight:         req.Weight,
			HealthStatus:   req.HealthStatus,
			BreedingStatus: req.BreedingStatus,
			GoatPhotoURL:   req.GoatPhotoURL,
			TagPhotoURL:    req.TagPhotoURL,
			Notes:          req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toGoatResponse(updated))
	}
}

// deleteGoatHandler godoc
// @Summary Eliminar cabra
// @Description Elimina el animal. En Postgres sus registros sanitarios y de monta se borran en cascada.
// @Tags goats
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param goatID path string true "ID del animal"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "goat not found"
// @Router /goats/{goatID} [delete]
func deleteGoatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwnedGoat(w, r, svc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), current.ID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadOwnedGoat resuelve {goatID} y exige que el usuario sea quien lo registró.
// Si devuelve false ya escribió la respuesta.
func loadOwnedGoat(w http.ResponseWriter, r *http.Request, svc *Service) (Goat, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Goat{}, false
	}

	g, err := svc.GetByID(r.Context(), chi.URLParam(r, "goatID"))
	if err != nil {
		writeServiceError(w, err)
		return Goat{}, false
	}
	if g.CreatedBy != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Goat{}, false
	}
	return g, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "goat not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toGoatResponse(g Goat) goatResponse {
	out := goatResponse{
		ID:             g.ID,
		TagNumber:      g.TagNumber,
		OwnerName:      g.OwnerName,
		Gender:         g.Gender,
		GoatPhotoURL:   g.GoatPhotoURL,
		TagPhotoURL:    g.TagPhotoURL,
		Weight:         g.Weight,
		HealthStatus:   g.HealthStatus,
		BreedingStatus: g.BreedingStatus,
		SireID:         g.SireID,
		DamID:          g.DamID,
		Notes:          g.Notes,
		CreatedAt:      g.CreatedAt,
		CreatedBy:      g.CreatedBy,
	}
	if g.BirthDate != nil {
		s := g.BirthDate.Format(time.DateOnly)
		out.BirthDate = &s
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
