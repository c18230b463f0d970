package create_booking

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет отсутствует в каталоге
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrSessionFull возвращается, когда в сессии не осталось мест
	ErrSessionFull = errors.New("create_booking: session is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
