package http

import (
	"net/http"
	"strconv"

	"github.com/mpancino/myAssetPlace-sub004/internal/service"
)

// ProjectionHandler exposes the projection and dashboard read models plus
// per-loan schedule queries.
type ProjectionHandler struct {
	projections *service.ProjectionService
	dashboard   *service.DashboardService
	loans       *service.LoanService
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(
	projections *service.ProjectionService,
	dashboard *service.DashboardService,
	loans *service.LoanService,
) *ProjectionHandler {
	return &ProjectionHandler{
		projections: projections,
		dashboard:   dashboard,
		loans:       loans,
	}
}

// queryInt parses an integer query parameter, returning fallback when absent
// or malformed. Malformed numbers degrade to the default rather than erroring,
// matching the engines' posture toward bad numeric input.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// Project handles GET /api/v1/projection?years=N&periodsPerYear=M.
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	years := queryInt(r, "years", 10)
	periodsPerYear := queryInt(r, "periodsPerYear", service.DefaultPeriodsPerYear)

	result, err := h.projections.Project(r.Context(), userIDFrom(r), years, periodsPerYear)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Dashboard handles GET /api/v1/dashboard.
func (h *ProjectionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Schedule handles GET /api/v1/loans/{assetId}/schedule.
func (h *ProjectionHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.loans.Schedule(r.Context(), userIDFrom(r), r.PathValue("assetId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

// Summary handles GET /api/v1/loans/{assetId}/summary.
func (h *ProjectionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.loans.Summary(r.Context(), userIDFrom(r), r.PathValue("assetId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
