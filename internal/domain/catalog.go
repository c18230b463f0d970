package domain

import "time"

// CourtType represents the kind of court offered by the club
type CourtType string

const (
	CourtIndoor    CourtType = "indoor"
	CourtOutdoor   CourtType = "outdoor"
	CourtPanoramic CourtType = "panoramic"
)

// Court represents the (single) venue of the club
type Court struct {
	ID           string
	Name         string
	Type         CourtType
	PricePerHour float64
	Rating       float64
	Features     []string
}

// SessionPackage is a recurring weekly offering: a fixed weekday, time range,
// capacity ceiling and per-person price. Packages are defined at process start
// and never persisted.
type SessionPackage struct {
	ID             string
	Name           string
	Description    string
	TimeRange      string // отображаемый диапазон, например "10:00 - 11:00"
	MaxPlayers     int
	PricePerPerson float64
	TargetWeekday  time.Weekday
	Quorum         int // информационный минимум участников, программно не проверяется
}

// IsSaturday returns true if the package recurs on Saturday and thus falls
// under the Friday-noon cutoff
func (p *SessionPackage) IsSaturday() bool {
	return p.TargetWeekday == time.Saturday
}
