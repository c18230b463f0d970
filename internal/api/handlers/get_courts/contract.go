package get_courts

import "github.com/padelplus/booking-service/internal/domain"

type Catalog interface {
	Court() domain.Court
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
