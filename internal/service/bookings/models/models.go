package models

import (
	"time"

	"github.com/padelplus/booking-service/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64     `json:"id"`
	CourtID     string    `json:"courtId"`
	CourtName   string    `json:"courtName"`
	PackageID   string    `json:"packageId"`
	SessionDate string    `json:"sessionDate"` // "2026-09-03"
	UserName    string    `json:"userName"`
	UserPhone   string    `json:"userPhone"`
	Date        string    `json:"date"` // французская длинная форма, для отображения
	Time        string    `json:"time"`
	TotalPrice  float64   `json:"totalPrice"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RevenueResponse ответ с итоговой выручкой по всем бронированиям
type RevenueResponse struct {
	TotalRevenue float64 `json:"totalRevenue"`
	Bookings     int     `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		CourtID:     b.CourtID,
		CourtName:   b.CourtName,
		PackageID:   b.PackageID,
		SessionDate: b.SessionDate.Format(domain.DateFormat),
		UserName:    b.UserName,
		UserPhone:   b.UserPhone,
		Date:        b.DateDisplay,
		Time:        b.TimeRange,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
