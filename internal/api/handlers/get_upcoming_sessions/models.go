package get_upcoming_sessions

import (
	"github.com/padelplus/booking-service/internal/domain"
	getUpcomingSessions "github.com/padelplus/booking-service/internal/usecase/get_upcoming_sessions"
)

// SessionsResponse HTTP response model
type SessionsResponse struct {
	CourtID   string            `json:"courtId"`
	CourtName string            `json:"courtName"`
	Sessions  []SessionResponse `json:"sessions"`
}

// SessionResponse одно разрешённое вхождение пакета
type SessionResponse struct {
	PackageID      string  `json:"packageId"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	TimeRange      string  `json:"timeRange"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Quorum         int     `json:"quorum,omitempty"`
	SessionDate    string  `json:"sessionDate"` // "2026-09-03"
	DateDisplay    string  `json:"dateDisplay"` // "jeudi 3 septembre"
	SpotsLeft      int     `json:"spotsLeft"`
	TotalSpots     int     `json:"totalSpots"`
	Full           bool    `json:"full"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getUpcomingSessions.Response) *SessionsResponse {
	sessions := make([]SessionResponse, 0, len(resp.Sessions))
	for i := range resp.Sessions {
		s := &resp.Sessions[i]
		sessions = append(sessions, SessionResponse{
			PackageID:      s.PackageID,
			Name:           s.Name,
			Description:    s.Description,
			TimeRange:      s.TimeRange,
			PricePerPerson: s.PricePerPerson,
			Quorum:         s.Quorum,
			SessionDate:    s.SessionDate.Format(domain.DateFormat),
			DateDisplay:    s.DateDisplay,
			SpotsLeft:      s.SpotsLeft,
			TotalSpots:     s.TotalSpots,
			Full:           s.IsFull(),
		})
	}

	return &SessionsResponse{
		CourtID:   resp.CourtID,
		CourtName: resp.CourtName,
		Sessions:  sessions,
	}
}
