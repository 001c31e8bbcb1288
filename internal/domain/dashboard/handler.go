package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"goat-tracker/internal/domain/alerts"
	"goat-tracker/internal/domain/analytics"
	"goat-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/alerts", listAlertsHandler(svc))
	r.Get("/analytics", analyticsHandler(svc))
}

type alertResponse struct {
	ID               string          `json:"id"`
	Category         alerts.Category `json:"category" enums:"breeding_due,pregnancy_check,health_due"`
	Priority         alerts.Priority `json:"priority" enums:"urgent,high,medium,low"`
	Title            string          `json:"title"`
	Message          string          `json:"message"`
	ActionNeeded     string          `json:"action_needed"`
	GoatID           string          `json:"goat_id,omitempty"`
	GoatTag          string          `json:"goat_tag"`
	HealthRecordID   string          `json:"health_record_id,omitempty"`
	BreedingRecordID string          `json:"breeding_record_id,omitempty"`
	DueDate          string          `json:"due_date"` // YYYY-MM-DD
	DaysUntilDue     int             `json:"days_until_due"`
}

type alertSummaryResponse struct {
	Total  int `json:"total"`
	Urgent int `json:"urgent"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type alertsResponse struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Summary     alertSummaryResponse `json:"summary"`
	Alerts      []alertResponse      `json:"alerts"`
}

type percentagesResponse struct {
	Male           float64 `json:"male"`
	Female         float64 `json:"female"`
	Healthy        float64 `json:"healthy"`
	Sick           float64 `json:"sick"`
	UnderTreatment float64 `json:"under_treatment"`
	Pregnant       float64 `json:"pregnant"`
	Nursing        float64 `json:"nursing"`
	Available      float64 `json:"available"`
}

type analyticsResponse struct {
	Total           int                 `json:"total"`
	Male            int                 `json:"male"`
	Female          int                 `json:"female"`
	Healthy         int                 `json:"healthy"`
	Sick            int                 `json:"sick"`
	UnderTreatment  int                 `json:"under_treatment"`
	Quarantine      int                 `json:"quarantine"`
	Pregnant        int                 `json:"pregnant"`
	Nursing         int                 `json:"nursing"`
	Available       int                 `json:"available"`
	Retired         int                 `json:"retired"`
	AverageWeight   *float64            `json:"average_weight"` // null = N/A
	WeighedCount    int                 `json:"weighed_count"`
	TotalHealthCost float64             `json:"total_health_cost"`
	RecentRecords   int                 `json:"recent_records"`
	Percent         percentagesResponse `json:"percent"`
}

// listAlertsHandler godoc
// @Summary Avisos del rebaño
// @Description Genera los avisos de partos, chequeos de preñez y seguimientos sanitarios del usuario, ordenados por prioridad y fecha. Se recalculan en cada request.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param priority query string false "Filtra por prioridad (urgent, high, medium, low)"
// @Param limit query int false "Máximo de avisos a devolver"
// @Success 200 {object} alertsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /alerts [get]
func listAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		report, err := svc.Alerts(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// El summary siempre refleja la lista completa; los filtros solo recortan "alerts".
		list := report.Alerts
		if p := alerts.Priority(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("priority")))); p != "" {
			filtered := make([]alerts.Alert, 0, len(list))
			for _, a := range list {
				if a.Priority == p {
					filtered = append(filtered, a)
				}
			}
			list = filtered
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n < len(list) {
				list = list[:n]
			}
		}

		out := alertsResponse{
			GeneratedAt: report.GeneratedAt,
			Summary: alertSummaryResponse{
				Total:  report.Summary.Total,
				Urgent: report.Summary.Urgent,
				High:   report.Summary.High,
				Medium: report.Summary.Medium,
				Low:    report.Summary.Low,
			},
			Alerts: make([]alertResponse, 0, len(list)),
		}
		for _, a := range list {
			out.Alerts = append(out.Alerts, toAlertResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// analyticsHandler godoc
// @Summary Estadísticas del rebaño
// @Description Conteos por sexo, estado sanitario y reproductivo, peso promedio, costos sanitarios y actividad de los últimos 30 días.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} analyticsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /analytics [get]
func analyticsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		snap, err := svc.Analytics(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAnalyticsResponse(snap))
	}
}

func toAlertResponse(a alerts.Alert) alertResponse {
	return alertResponse{
		ID:               a.ID,
		Category:         a.Category,
		Priority:         a.Priority,
		Title:            a.Title,
		Message:          a.Message,
		ActionNeeded:     a.ActionNeeded,
		GoatID:           a.GoatID,
		GoatTag:          a.GoatTag,
		HealthRecordID:   a.HealthRecordID,
		BreedingRecordID: a.BreedingRecordID,
		DueDate:          a.DueDate.Format(time.DateOnly),
		DaysUntilDue:     a.DaysUntilDue,
	}
}

func toAnalyticsResponse(s analytics.Snapshot) analyticsResponse {
	return analyticsResponse{
		Total:           s.Total,
		Male:            s.Male,
		Female:          s.Female,
		Healthy:         s.Healthy,
		Sick:            s.Sick,
		UnderTreatment:  s.UnderTreatment,
		Quarantine:      s.Quarantine,
		Pregnant:        s.Pregnant,
		Nursing:         s.Nursing,
		Available:       s.Available,
		Retired:         s.Retired,
		AverageWeight:   s.AverageWeight,
		WeighedCount:    s.WeighedCount,
		TotalHealthCost: s.TotalHealthCost,
		RecentRecords:   s.RecentRecords,
		Percent: percentagesResponse{
			Male:           s.Percent.Male,
			Female:         s.Percent.Female,
			Healthy:        s.Percent.Healthy,
			Sick:           s.Percent.Sick,
			UnderTreatment: s.Percent.UnderTreatment,
			Pregnant:       s.Percent.Pregnant,
			Nursing:        s.Percent.Nursing,
			Available:      s.Percent.Available,
		},
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
