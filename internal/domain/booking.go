package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
)

// Booking represents one reserved spot in a weekly group session.
// The store assigns ID and CreatedAt; everything else is denormalized at
// booking time and never mutated afterwards.
type Booking struct {
	ID        int64
	CourtID   string
	CourtName string

	// Канонический ключ сессии: вместимость считается по (PackageID, SessionDate),
	// а не по отформатированной дате
	PackageID   string
	SessionDate time.Time

	UserName  string
	UserPhone string

	// Денормализованные данные для отображения, фиксируются в момент бронирования
	DateDisplay string
	TimeRange   string
	TotalPrice  float64

	Status    BookingStatus
	CreatedAt time.Time
}

// CountsTowardCapacity returns true if the booking occupies a spot in its session
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}

// IsForSession returns true if the booking belongs to the given session occurrence
func (b *Booking) IsForSession(packageID string, sessionDate time.Time) bool {
	return b.PackageID == packageID && SameDate(b.SessionDate, sessionDate)
}

// ValidStatus returns true if the status belongs to the allowed set
func ValidStatus(s BookingStatus) bool {
	return s == StatusConfirmed || s == StatusPending
}
