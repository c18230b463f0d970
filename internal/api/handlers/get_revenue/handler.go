package get_revenue

import (
	"net/http"

	"github.com/padelplus/booking-service/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Revenue(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/revenue - Failed to compute revenue: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/revenue - Total=%.2f over %d bookings", result.TotalRevenue, result.Bookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
