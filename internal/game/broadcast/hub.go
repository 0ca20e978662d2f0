// Package broadcast provides bounded fan-out of events to streaming
// subscribers. The global chat stream and per-room state streams are both
// built on the same hub.
package broadcast

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Subscriber routes published events to a Go channel, bridging the game
// state to a gRPC streaming goroutine.
type Subscriber[T any] struct {
	id     string
	events chan T
	mu     sync.Mutex
	closed bool
}

// ID returns the subscriber's unique identifier.
func (s *Subscriber[T]) ID() string {
	return s.id
}

// Push enqueues an event without blocking.
//
// Postcondition: The event is enqueued, or an error if the subscriber is
// closed or its buffer is full.
func (s *Subscriber[T]) Push(event T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("subscriber %s is closed", s.id)
	}
	select {
	case s.events <- event:
		return nil
	default:
		return fmt.Errorf("subscriber %s event buffer full", s.id)
	}
}

// Events returns the read-only events channel. The gRPC stream goroutine
// reads from this channel until it is closed.
func (s *Subscriber[T]) Events() <-chan T {
	return s.events
}

// Close marks the subscriber as closed and closes the events channel.
//
// Postcondition: The events channel is closed. Further Push calls return an error.
func (s *Subscriber[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.events)
	}
}

// IsClosed reports whether the subscriber has been closed.
func (s *Subscriber[T]) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Hub fans events out to a set of subscribers. Publish never blocks: a
// subscriber whose buffer is full is detached and closed so one slow
// client cannot stall the rest.
type Hub[T any] struct {
	logger *zap.Logger
	buffer int

	mu   sync.RWMutex
	subs map[string]*Subscriber[T]
}

// NewHub creates a Hub whose subscribers each get a channel of the given depth.
//
// Precondition: logger must be non-nil.
func NewHub[T any](logger *zap.Logger, bufferSize int) *Hub[T] {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Hub[T]{
		logger: logger,
		buffer: bufferSize,
		subs:   make(map[string]*Subscriber[T]),
	}
}

// Subscribe registers a subscriber under the given id. A previous
// subscriber with the same id is closed and replaced.
//
// Precondition: id must be non-empty.
func (h *Hub[T]) Subscribe(id string) *Subscriber[T] {
	sub := &Subscriber[T]{
		id:     id,
		events: make(chan T, h.buffer),
	}

	h.mu.Lock()
	prev := h.subs[id]
	h.subs[id] = sub
	h.mu.Unlock()

	if prev != nil {
		prev.Close()
		h.logger.Debug("replaced existing subscriber", zap.String("subscriber", id))
	}
	return sub
}

// Unsubscribe removes and closes the subscriber with the given id, if it is
// still the registered one.
func (h *Hub[T]) Unsubscribe(sub *Subscriber[T]) {
	h.mu.Lock()
	if h.subs[sub.id] == sub {
		delete(h.subs, sub.id)
	}
	h.mu.Unlock()
	sub.Close()
}

// IsCurrent reports whether sub is still the registered subscriber for its
// id. A subscriber replaced by a later Subscribe with the same id is stale.
func (h *Hub[T]) IsCurrent(sub *Subscriber[T]) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.subs[sub.id] == sub
}

// Publish delivers the event to every subscriber. Subscribers that cannot
// accept the event are detached and closed.
//
// Postcondition: Returns the number of subscribers the event was delivered to.
func (h *Hub[T]) Publish(event T) int {
	h.mu.RLock()
	snapshot := make([]*Subscriber[T], 0, len(h.subs))
	for _, sub := range h.subs {
		snapshot = append(snapshot, sub)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range snapshot {
		if err := sub.Push(event); err != nil {
			h.logger.Warn("dropping slow subscriber",
				zap.String("subscriber", sub.id),
				zap.Error(err),
			)
			h.Unsubscribe(sub)
			continue
		}
		delivered++
	}
	return delivered
}

// Count returns the number of active subscribers.
func (h *Hub[T]) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close detaches and closes all subscribers.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]*Subscriber[T])
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}
