package events

import (
	"sync"
)

// Broker fans events out to buffered subscriber channels.
// Publish never blocks; a full subscriber misses the event.
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  16,
	}
}

// Subscribe creates a subscription to specific event types.
// With no types the subscriber receives everything.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{wildcard}
	}

	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}

	return ch
}

// Unsubscribe removes a subscription and closes its channel
func (b *Broker) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var found chan Event
	for eventType, subscribers := range b.subscribers {
		kept := subscribers[:0]
		for _, sub := range subscribers {
			if sub == ch {
				found = sub
				continue
			}
			kept = append(kept, sub)
		}
		if len(kept) == 0 {
			delete(b.subscribers, eventType)
		} else {
			b.subscribers[eventType] = kept
		}
	}

	// a channel subscribed to several types is closed once
	if found != nil {
		close(found)
	}
}

// Publish sends an event to all matching subscribers
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.Type] {
		select {
		case ch <- event:
		default:
		}
	}

	for _, ch := range b.subscribers[wildcard] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Status publishes a status bar message
func (b *Broker) Status(message, kind string) {
	b.Publish(Event{
		Type:    StatusMessageEvent,
		Payload: StatusMessagePayload{Message: message, Type: kind},
	})
}

// Error publishes an error for the status bar
func (b *Broker) Error(err error) {
	if err == nil {
		return
	}
	b.Publish(Event{
		Type:    ErrorMessageEvent,
		Payload: StatusMessagePayload{Message: err.Error(), Type: "error"},
	})
}

// Clear removes all subscriptions
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]bool)
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
	}

	b.subscribers = make(map[EventType][]chan Event)
}
