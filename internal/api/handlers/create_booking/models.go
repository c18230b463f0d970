package create_booking

import (
	"time"

	"github.com/padelplus/booking-service/internal/domain"
	createBooking "github.com/padelplus/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PackageID string `json:"packageId"`
	UserName  string `json:"userName"`
	UserPhone string `json:"userPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	CourtID     string  `json:"courtId"`
	CourtName   string  `json:"courtName"`
	PackageID   string  `json:"packageId"`
	SessionDate string  `json:"sessionDate"`
	UserName    string  `json:"userName"`
	UserPhone   string  `json:"userPhone"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		PackageID: r.PackageID,
		UserName:  r.UserName,
		UserPhone: r.UserPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		CourtID:     resp.CourtID,
		CourtName:   resp.CourtName,
		PackageID:   resp.PackageID,
		SessionDate: resp.SessionDate.Format(domain.DateFormat),
		UserName:    resp.UserName,
		UserPhone:   resp.UserPhone,
		Date:        resp.DateDisplay,
		Time:        resp.TimeRange,
		TotalPrice:  resp.TotalPrice,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
