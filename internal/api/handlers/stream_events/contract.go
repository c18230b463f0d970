package stream_events

import "github.com/padelplus/booking-service/internal/infra/notify"

type ChangeFeed interface {
	Subscribe() *notify.Subscription
}

type Metrics interface {
	SubscriberConnected()
	SubscriberDisconnected()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// noopMetrics используется, когда метрики выключены
type noopMetrics struct{}

func (noopMetrics) SubscriberConnected()    {}
func (noopMetrics) SubscriberDisconnected() {}
