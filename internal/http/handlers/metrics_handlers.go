package handlers

import (
	"net/http"

	repo "github.com/rogerio-castellano/inventory-form/internal/repo"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Summary
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func (h *Handlers) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := repo.Summarize(r.Context(), h.productRepo)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to fetch metrics", "error", err)
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	h.respond(w, r, http.StatusOK, m)
}
