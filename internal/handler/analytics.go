package handler

import (
	"net/http"

	"leo-furniture-api/internal/middleware"
	"leo-furniture-api/internal/service"
	"leo-furniture-api/pkg/apierror"
	"leo-furniture-api/pkg/response"
)

// AnalyticsHandler handles profit summary HTTP requests.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary handles GET /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	summary, err := h.analyticsService.Summary(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, summary)
}
