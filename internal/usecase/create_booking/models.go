package create_booking

import "time"

// Request модель запроса на создание бронирования
// Клиент указывает только пакет и контактные данные: дату вхождения,
// цену и название корта сервер определяет сам
type Request struct {
	PackageID string // ID пакета из каталога
	UserName  string // Имя игрока, обязательно непустое
	UserPhone string // Телефон (WhatsApp), обязательно непустой
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	CourtID     string    // ID корта
	CourtName   string    // Название корта
	PackageID   string    // ID пакета
	SessionDate time.Time // Дата сессии (канонический ключ)
	UserName    string    // Имя игрока
	UserPhone   string    // Телефон
	DateDisplay string    // Отформатированная дата сессии
	TimeRange   string    // Временной диапазон
	TotalPrice  float64   // Цена на момент бронирования
	Status      string    // Статус бронирования
	CreatedAt   time.Time // Время создания
}
