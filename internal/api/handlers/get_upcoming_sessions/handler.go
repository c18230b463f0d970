package get_upcoming_sessions

import (
	"net/http"

	"github.com/padelplus/booking-service/internal/api/handlers"
)

type Handler struct {
	useCase GetUpcomingSessionsUseCase
	logger  Logger
}

func NewHandler(useCase GetUpcomingSessionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /sessions/upcoming - Failed to resolve sessions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /sessions/upcoming - Resolved %d sessions", len(response.Sessions))
	handlers.RespondJSON(w, http.StatusOK, response)
}
