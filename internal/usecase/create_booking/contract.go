package create_booking

import (
	"context"
	"time"

	"github.com/padelplus/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// ListBySession получает бронирования одной сессии; внутри транзакции - с блокировкой
	ListBySession(ctx context.Context, packageID string, sessionDate time.Time) ([]*domain.Booking, error)
}

// Catalog интерфейс каталога пакетов
type Catalog interface {
	Court() domain.Court
	PackageByID(id string) (domain.SessionPackage, bool)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
