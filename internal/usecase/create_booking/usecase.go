package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/padelplus/booking-service/internal/domain"
)

// UseCase use case для создания бронирования.
// Проверка вместимости и вставка выполняются в одной SERIALIZABLE транзакции
// с блокировкой строк сессии: два одновременных клиента не могут оба занять
// последнее место. Клиентский подсчёт занятости - только подсказка интерфейсу.
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      Catalog
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog Catalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: package=%s, user=%s", req.PackageID, req.UserName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Пакет должен существовать в каталоге
	pkg, ok := uc.catalog.PackageByID(req.PackageID)
	if !ok {
		uc.logger.Warn("CreateBooking: package %s not found in catalog", req.PackageID)
		return nil, ErrPackageNotFound
	}

	// 3. Разрешаем дату вхождения на сервере: клиент не может забронировать
	// произвольную или уже закрытую дату
	now := uc.timeProvider.Now()
	sessionDate := domain.NextOccurrence(now, pkg)

	court := uc.catalog.Court()

	var result *domain.Booking

	// 4. Проверка вместимости и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Бронирования сессии с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.ListBySession(txCtx, pkg.ID, sessionDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list session bookings: %v", err)
			return fmt.Errorf("%w: failed to list session bookings: %v", ErrInternal, err)
		}

		taken := 0
		for _, b := range existing {
			if b.CountsTowardCapacity() {
				taken++
			}
		}

		if taken >= pkg.MaxPlayers {
			uc.logger.Warn("CreateBooking: session full, %d/%d spots taken (package=%s, date=%s)",
				taken, pkg.MaxPlayers, pkg.ID, sessionDate.Format(domain.DateFormat))
			return ErrSessionFull
		}

		uc.logger.Info("CreateBooking: session available, %d/%d spots taken", taken, pkg.MaxPlayers)

		// 4.2. Собираем запись с денормализацией данных пакета и корта
		booking := &domain.Booking{
			CourtID:     court.ID,
			CourtName:   court.Name,
			PackageID:   pkg.ID,
			SessionDate: sessionDate,
			UserName:    strings.TrimSpace(req.UserName),
			UserPhone:   strings.TrimSpace(req.UserPhone),
			DateDisplay: domain.FormatDateFR(sessionDate),
			TimeRange:   pkg.TimeRange,
			TotalPrice:  pkg.PricePerPerson,
			Status:      domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (package=%s, date=%s)",
		result.ID, result.PackageID, result.SessionDate.Format(domain.DateFormat))

	return &Response{
		ID:          result.ID,
		CourtID:     result.CourtID,
		CourtName:   result.CourtName,
		PackageID:   result.PackageID,
		SessionDate: result.SessionDate,
		UserName:    result.UserName,
		UserPhone:   result.UserPhone,
		DateDisplay: result.DateDisplay,
		TimeRange:   result.TimeRange,
		TotalPrice:  result.TotalPrice,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
	}, nil
}
