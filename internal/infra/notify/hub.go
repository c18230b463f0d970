// Package notify delivers change notifications for the bookings collection.
// Postgres raises NOTIFY on every insert/update/delete (see migrations); the
// Listener forwards each notification to the Hub, which fans it out to
// subscribers. Subscribers are expected to refetch the full snapshot on every
// signal - notifications carry no payload and are never merged incrementally.
package notify

import "sync"

// Hub рассылает сигналы об изменениях всем подписчикам
type Hub struct {
	mu     sync.Mutex
	nextID int64
	subs   map[int64]chan struct{}
}

// NewHub создает новый hub без подписчиков
func NewHub() *Hub {
	return &Hub{
		subs: make(map[int64]chan struct{}),
	}
}

// Subscription одна подписка на изменения
// C получает пустой сигнал на каждое изменение; подписчик обязан вызвать
// Unsubscribe при завершении, иначе канал останется в hub навсегда
type Subscription struct {
	C   <-chan struct{}
	id  int64
	hub *Hub
}

// Subscribe регистрирует нового подписчика
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	// Буфер в один сигнал: повторные уведомления во время обработки
	// схлопываются в одно, подписчику всё равно нужен полный refetch
	ch := make(chan struct{}, 1)
	h.subs[h.nextID] = ch

	return &Subscription{C: ch, id: h.nextID, hub: h}
}

// Unsubscribe снимает подписку и освобождает канал
func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	delete(s.hub.subs, s.id)
}

// Broadcast отправляет сигнал всем подписчикам, не блокируясь на медленных
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
			// Сигнал уже в очереди - подписчик и так сделает refetch
		}
	}
}

// SubscriberCount возвращает текущее количество подписчиков
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
