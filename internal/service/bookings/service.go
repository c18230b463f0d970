package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/padelplus/booking-service/internal/infra/storage/booking"
	"github.com/padelplus/booking-service/internal/service/bookings/models"
)

// Service сервис для работы со снимком бронирований: список, удаление, выручка
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает полный снимок бронирований, новые первыми
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование, освобождая место немедленно.
// Удаление уже исчезнувшего ID считается успехом: повторная отмена
// с точки зрения клиента идемпотентна
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d already gone", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Revenue возвращает суммарную выручку по всем бронированиям
// Используется админ-консолью ("Total Encaissé")
func (s *Service) Revenue(ctx context.Context) (*models.RevenueResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Revenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Revenue - repository error: %v", ErrInternal, err)
	}

	var total float64
	for _, b := range bookings {
		total += b.TotalPrice
	}

	s.logger.Info("Revenue: total=%.2f over %d bookings", total, len(bookings))
	return &models.RevenueResponse{
		TotalRevenue: total,
		Bookings:     len(bookings),
	}, nil
}
