package stream_events

import (
	"fmt"
	"net/http"
	"time"

	"github.com/padelplus/booking-service/internal/api/handlers"
)

const (
	msgStreamingUnsupported = "le streaming n'est pas supporté"

	heartbeatInterval = 30 * time.Second
)

// Handler отдаёт поток изменений коллекции бронирований через Server-Sent Events.
// Каждое событие - сигнал без полезной нагрузки: клиент в ответ перезагружает
// полный снимок через GET /bookings, инкрементальных обновлений нет.
type Handler struct {
	feed    ChangeFeed
	metrics Metrics
	logger  Logger
}

func NewHandler(feed ChangeFeed, metrics Metrics, logger Logger) *Handler {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Handler{
		feed:    feed,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle GET /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /events - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Подписка освобождается при любом выходе из обработчика
	sub := h.feed.Subscribe()
	defer sub.Unsubscribe()

	h.metrics.SubscriberConnected()
	defer h.metrics.SubscriberDisconnected()

	h.logger.Info("GET /events - Subscriber connected")

	// Сразу подтверждаем поток, чтобы клиент знал, что канал живой
	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events - Subscriber disconnected")
			return

		case <-sub.C:
			fmt.Fprint(w, "event: bookings\ndata: {}\n\n")
			flusher.Flush()

		case <-heartbeat.C:
			// Комментарий SSE удерживает соединение через прокси
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
