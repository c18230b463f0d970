package get_upcoming_sessions

import (
	"context"
	"time"

	"github.com/padelplus/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListFromDate получает бронирования, чья сессия не раньше указанной даты
	ListFromDate(ctx context.Context, from time.Time) ([]*domain.Booking, error)
}

// Catalog интерфейс каталога пакетов
type Catalog interface {
	Court() domain.Court
	Packages() []domain.SessionPackage
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
