// internal/event/event.go
package event

import "sync"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий. Подписчики могут подписываться и
// отписываться прямо из OnEvent: рассылка идёт по снимку списка.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	old := d.listeners[eventType]
	next := make([]Listener, len(old), len(old)+1)
	copy(next, old)
	d.listeners[eventType] = append(next, listener)
}

// Unsubscribe — отписка от события. Удаляет первое вхождение.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	old, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range old {
		if l != listener {
			continue
		}
		next := make([]Listener, 0, len(old)-1)
		next = append(next, old[:i]...)
		next = append(next, old[i+1:]...)
		if len(next) == 0 {
			delete(d.listeners, eventType)
		} else {
			d.listeners[eventType] = next
		}
		return
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	snapshot := d.listeners[event.Type]
	d.mu.RUnlock()
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}

// ListenerCount returns how many listeners are subscribed to eventType.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[eventType])
}

// Close drops every subscription.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = make(map[EventType][]Listener)
}
