// Package events provides the in-process event bus shared by the browser
// state containers.
package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/mexm/mydmam-browser/internal/constants"
)

// EventType defines the types of events that can be emitted
type EventType string

const (
	EventError             EventType = "error"
	EventRealmsChanged     EventType = "realms_changed"
	EventRealmSelected     EventType = "realm_selected"
	EventPreferenceChanged EventType = "preference_changed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// ErrorEvent reports a failed server call or a rejected mutation. The view
// keeps whatever it showed before.
type ErrorEvent struct {
	BaseEvent
	Operation string // "list", "search", "realms", "storages", "constraints"
	Error     error
}

// RealmsEvent carries the realm list as last fetched.
type RealmsEvent struct {
	BaseEvent
	Realms []string
}

// RealmSelectedEvent is published when the session realm changes. Realm is
// empty when the selection was cleared.
type RealmSelectedEvent struct {
	BaseEvent
	Realm string
}

// PreferenceEvent is published after a preference write.
type PreferenceEvent struct {
	BaseEvent
	Key   string // "date_style", "page_size", "realm"
	Value string
}

// EventBus manages event subscriptions and publishing
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event // Subscribers to all events
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64 // Count of dropped events due to full buffers
}

// NewEventBus creates a new event bus with specified buffer size
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = constants.EventBusDefaultBuffer
	}
	if bufferSize > constants.EventBusMaxBuffer {
		bufferSize = constants.EventBusMaxBuffer
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		all:         make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to a specific event type
func (eb *EventBus) Subscribe(eventType EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

// SubscribeAll creates a subscription to all events
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.all = append(eb.all, ch)
	return ch
}

// Publish sends an event to all subscribers without blocking. Events that
// do not fit a subscriber's buffer are dropped and counted.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	for _, ch := range eb.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}

	for _, ch := range eb.all {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
}

// Close shuts down the event bus and closes all channels
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	eb.closed = true

	for _, channels := range eb.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}

	for _, ch := range eb.all {
		close(ch)
	}
}

// PublishError is a convenience method for publishing error events
func (eb *EventBus) PublishError(operation string, err error) {
	eb.Publish(&ErrorEvent{
		BaseEvent: BaseEvent{EventType: EventError, Time: time.Now()},
		Operation: operation,
		Error:     err,
	})
}

// PublishRealms is a convenience method for publishing realm list updates
func (eb *EventBus) PublishRealms(realms []string) {
	cp := make([]string, len(realms))
	copy(cp, realms)
	eb.Publish(&RealmsEvent{
		BaseEvent: BaseEvent{EventType: EventRealmsChanged, Time: time.Now()},
		Realms:    cp,
	})
}

// PublishRealmSelected is a convenience method for realm selection changes
func (eb *EventBus) PublishRealmSelected(realm string) {
	eb.Publish(&RealmSelectedEvent{
		BaseEvent: BaseEvent{EventType: EventRealmSelected, Time: time.Now()},
		Realm:     realm,
	})
}

// PublishPreference is a convenience method for preference writes
func (eb *EventBus) PublishPreference(key, value string) {
	eb.Publish(&PreferenceEvent{
		BaseEvent: BaseEvent{EventType: EventPreferenceChanged, Time: time.Now()},
		Key:       key,
		Value:     value,
	})
}

// GetDroppedEventCount returns the total number of events dropped due to full buffers
func (eb *EventBus) GetDroppedEventCount() int64 {
	return eb.droppedEvents.Load()
}
