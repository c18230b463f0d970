package stream_events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelplus/booking-service/internal/infra/notify"
)

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

// countingMetrics потокобезопасен: обработчик пишет из своей горутины
type countingMetrics struct {
	mu           sync.Mutex
	connected    int
	disconnected int
}

func (c *countingMetrics) SubscriberConnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected++
}

func (c *countingMetrics) SubscriberDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected++
}

func (c *countingMetrics) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected, c.disconnected
}

func TestHandler_Handle_StreamsChanges(t *testing.T) {
	hub := notify.NewHub()
	metrics := &countingMetrics{}
	handler := NewHandler(hub, metrics, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Handle(rec, req)
		close(done)
	}()

	// Ждём регистрации подписчика, затем шлём изменение и закрываем поток
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	hub.Broadcast()

	// Даём обработчику время записать событие перед отменой контекста
	require.Eventually(t, func() bool {
		connected, _ := metrics.counts()
		return connected == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: bookings")

	// Подписка снята, метрики сбалансированы
	assert.Equal(t, 0, hub.SubscriberCount())
	connected, disconnected := metrics.counts()
	assert.Equal(t, 1, connected)
	assert.Equal(t, 1, disconnected)
}

func TestHandler_Handle_SubscriberRemovedOnDisconnect(t *testing.T) {
	hub := notify.NewHub()
	handler := NewHandler(hub, nil, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Handle(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, 0, hub.SubscriberCount())
}
