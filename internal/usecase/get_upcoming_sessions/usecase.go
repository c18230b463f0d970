package get_upcoming_sessions

import (
	"context"
	"fmt"

	"github.com/padelplus/booking-service/internal/domain"
)

// UseCase use case для получения ближайших сессий с их занятостью
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет ближайшее вхождение каждого пакета каталога и его занятость
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Фиксируем время один раз, чтобы все даты считались от одного "сейчас"
	now := uc.timeProvider.Now()

	court := uc.catalog.Court()
	packages := uc.catalog.Packages()

	uc.logger.Info("GetUpcomingSessions: resolving %d packages for court=%s, now=%s",
		len(packages), court.ID, now.Format(domain.DateFormat))

	// 2. Один снимок бронирований на все пакеты
	bookings, err := uc.bookingRepo.ListFromDate(ctx, now)
	if err != nil {
		uc.logger.Error("GetUpcomingSessions: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Разрешаем дату и считаем занятость каждого пакета
	sessions := make([]Session, 0, len(packages))
	for _, pkg := range packages {
		sessionDate := domain.NextOccurrence(now, pkg)
		spotsLeft := domain.RemainingSpots(bookings, pkg.ID, sessionDate, pkg.MaxPlayers)

		sessions = append(sessions, Session{
			PackageID:      pkg.ID,
			Name:           pkg.Name,
			Description:    pkg.Description,
			TimeRange:      pkg.TimeRange,
			PricePerPerson: pkg.PricePerPerson,
			Quorum:         pkg.Quorum,
			SessionDate:    sessionDate,
			DateDisplay:    domain.FormatDateFR(sessionDate),
			SpotsLeft:      spotsLeft,
			TotalSpots:     pkg.MaxPlayers,
		})
	}

	uc.logger.Info("GetUpcomingSessions: resolved %d sessions", len(sessions))

	return &Response{
		CourtID:   court.ID,
		CourtName: court.Name,
		Sessions:  sessions,
	}, nil
}
