package get_upcoming_sessions

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_upcoming_sessions: internal error")
)
