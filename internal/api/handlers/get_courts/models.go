package get_courts

import "github.com/padelplus/booking-service/internal/domain"

// CourtResponse HTTP response model
type CourtResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	PricePerHour float64  `json:"pricePerHour"`
	Rating       float64  `json:"rating"`
	Features     []string `json:"features"`
}

// CourtListResponse список кортов клуба
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourt конвертирует domain модель в HTTP response
func FromDomainCourt(c domain.Court) CourtResponse {
	return CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Type:         string(c.Type),
		PricePerHour: c.PricePerHour,
		Rating:       c.Rating,
		Features:     c.Features,
	}
}
