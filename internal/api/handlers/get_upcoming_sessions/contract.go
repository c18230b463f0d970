package get_upcoming_sessions

import (
	"context"

	getUpcomingSessions "github.com/padelplus/booking-service/internal/usecase/get_upcoming_sessions"
)

type GetUpcomingSessionsUseCase interface {
	Execute(ctx context.Context) (*getUpcomingSessions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
