package get_upcoming_sessions

import "time"

// Response модель ответа со списком ближайших сессий
type Response struct {
	CourtID   string    // ID корта
	CourtName string    // Название корта
	Sessions  []Session // Ближайшее вхождение каждого пакета каталога
}

// Session модель одного разрешённого вхождения пакета
type Session struct {
	PackageID      string    // ID пакета
	Name           string    // Название сессии
	Description    string    // Описание
	TimeRange      string    // Временной диапазон, например "10:00 - 11:00"
	PricePerPerson float64   // Цена за игрока
	Quorum         int       // Информационный минимум участников
	SessionDate    time.Time // Канонический ключ вхождения (полночь)
	DateDisplay    string    // Французская длинная форма даты
	SpotsLeft      int       // Свободные места
	TotalSpots     int       // Всего мест
}

// IsFull returns true if the session has no remaining spots
func (s *Session) IsFull() bool {
	return s.SpotsLeft <= 0
}
