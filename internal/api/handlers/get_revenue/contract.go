package get_revenue

import (
	"context"

	"github.com/padelplus/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Revenue(ctx context.Context) (*models.RevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
