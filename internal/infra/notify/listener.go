package notify

import (
	"context"
	"time"

	"github.com/lib/pq"
)

// Канал PostgreSQL, в который триггер таблицы bookings шлёт NOTIFY
const bookingsChannel = "bookings_changed"

const (
	minReconnectInterval = 5 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Listener слушает канал bookings_changed и транслирует события в Hub
// Сбой подписки деградирует только доставку уведомлений: бронирования
// продолжают работать, клиенты просто не получают push и обновляются вручную
type Listener struct {
	pq     *pq.Listener
	hub    *Hub
	logger Logger
}

// NewListener создает listener поверх существующего DSN
func NewListener(dsn string, hub *Hub, logger Logger) *Listener {
	pqListener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			switch event {
			case pq.ListenerEventConnected:
				logger.Info("notify: connected to postgres notification channel")
			case pq.ListenerEventReconnected:
				logger.Info("notify: reconnected to postgres notification channel")
			case pq.ListenerEventDisconnected:
				logger.Warn("notify: disconnected from postgres: %v", err)
			case pq.ListenerEventConnectionAttemptFailed:
				logger.Error("notify: connection attempt failed: %v", err)
			}
		})

	return &Listener{
		pq:     pqListener,
		hub:    hub,
		logger: logger,
	}
}

// Run подписывается на канал и обрабатывает уведомления до отмены контекста
func (l *Listener) Run(ctx context.Context) error {
	if err := l.pq.Listen(bookingsChannel); err != nil {
		return err
	}

	l.logger.Info("notify: listening on channel %q", bookingsChannel)

	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("notify: shutting down listener")
			return l.pq.Close()

		case n := <-l.pq.Notify:
			// n == nil приходит после переподключения: за время разрыва
			// могли потеряться уведомления, рассылаем сигнал на всякий случай
			if n != nil {
				l.logger.Info("notify: bookings changed (op=%s)", n.Extra)
			} else {
				l.logger.Warn("notify: reconnect marker received, broadcasting catch-up signal")
			}
			l.hub.Broadcast()

		case <-pingTicker.C:
			if err := l.pq.Ping(); err != nil {
				l.logger.Error("notify: ping failed: %v", err)
			}
		}
	}
}
