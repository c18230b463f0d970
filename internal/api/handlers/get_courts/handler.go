package get_courts

import (
	"net/http"

	"github.com/padelplus/booking-service/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
// Каталог статичен, но формат ответа - список: клуб может вырасти
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := CourtListResponse{
		Courts: []CourtResponse{FromDomainCourt(h.catalog.Court())},
	}

	h.logger.Info("GET /courts - Returned %d courts", len(response.Courts))
	handlers.RespondJSON(w, http.StatusOK, response)
}
