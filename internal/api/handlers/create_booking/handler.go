package create_booking

import (
	"errors"
	"net/http"

	"github.com/padelplus/booking-service/internal/api/handlers"
	createBooking "github.com/padelplus/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgMissingContactInfo = "le nom et le téléphone sont obligatoires"
	msgPackageNotFound    = "session introuvable"
	msgSessionFull        = "la session est complète"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: package=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgMissingContactInfo)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrSessionFull):
			h.logger.Warn("POST /bookings - Session full: package=%s", req.PackageID)
			handlers.RespondError(w, http.StatusConflict, msgSessionFull)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: package=%s, error=%v",
				req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, package=%s, date=%s",
		result.ID, result.PackageID, response.SessionDate)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
