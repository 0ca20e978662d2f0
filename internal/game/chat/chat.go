// Package chat implements the global chat channel: a bounded history of
// recent messages plus live fan-out to connected streams.
package chat

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/deadshot465/demo-game/internal/game/broadcast"
)

// Message is a single chat line as seen by clients.
type Message struct {
	// Seq is the message's position in the global append order, assigned
	// by Publish. Strictly increasing across the life of the Log.
	Seq uint64 `json:"seq"`
	// Author is the display name of the sender.
	Author string `json:"author"`
	// Body is the message text.
	Body string `json:"body"`
}

// Store persists chat history across restarts. Implementations must retain
// at least the most recent messages up to the log's history size.
type Store interface {
	// Append records a message at the tail of the history.
	Append(ctx context.Context, msg Message) error
	// Recent returns up to limit messages, oldest first.
	Recent(ctx context.Context, limit int) ([]Message, error)
}

// Log is the in-memory chat channel. The newest historySize messages are
// retained for clients that connect later; every message is also fanned out
// to live subscribers. An optional Store receives a write-behind copy.
type Log struct {
	logger      *zap.Logger
	historySize int
	store       Store
	hub         *broadcast.Hub[Message]

	mu   sync.RWMutex
	seq  uint64
	ring []Message
}

// NewLog creates a chat Log retaining historySize messages. store may be nil.
//
// Precondition: logger must be non-nil; historySize and bufferSize must be positive.
func NewLog(logger *zap.Logger, historySize, bufferSize int, store Store) *Log {
	return &Log{
		logger:      logger,
		historySize: historySize,
		store:       store,
		hub:         broadcast.NewHub[Message](logger.Named("chat"), bufferSize),
	}
}

// Warm loads persisted history into the in-memory ring. Called once at
// startup, before the server accepts connections.
func (l *Log) Warm(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	msgs, err := l.store.Recent(ctx, l.historySize)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.ring = msgs
	l.trimLocked()
	if n := len(l.ring); n > 0 {
		l.seq = l.ring[n-1].Seq
	}
	l.mu.Unlock()
	l.logger.Info("chat history warmed", zap.Int("messages", len(msgs)))
	return nil
}

// Publish assigns the message its sequence number, appends it to the
// history, and fans it out to all subscribers. Returns the assigned
// sequence number. A store failure is logged but does not reject the
// message.
//
// The hub publish happens while l.mu is held: hub delivery never blocks,
// and the lock is what makes every subscriber observe messages in ring
// (append) order.
//
// Postcondition: The message is in History and delivered to every
// subscriber that can accept it.
func (l *Log) Publish(ctx context.Context, msg Message) uint64 {
	l.mu.Lock()
	l.seq++
	msg.Seq = l.seq
	l.ring = append(l.ring, msg)
	l.trimLocked()
	l.hub.Publish(msg)
	l.mu.Unlock()

	if l.store != nil {
		if err := l.store.Append(ctx, msg); err != nil {
			l.logger.Warn("persisting chat message failed",
				zap.String("author", msg.Author),
				zap.Error(err),
			)
		}
	}
	return msg.Seq
}

// trimLocked drops messages beyond historySize. Caller holds l.mu.
func (l *Log) trimLocked() {
	if excess := len(l.ring) - l.historySize; excess > 0 {
		l.ring = append(l.ring[:0:0], l.ring[excess:]...)
	}
}

// History returns a copy of the retained messages, oldest first.
func (l *Log) History() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Message, len(l.ring))
	copy(out, l.ring)
	return out
}

// Subscribe attaches a live subscriber under the given id.
func (l *Log) Subscribe(id string) *broadcast.Subscriber[Message] {
	return l.hub.Subscribe(id)
}

// Unsubscribe detaches a live subscriber.
func (l *Log) Unsubscribe(sub *broadcast.Subscriber[Message]) {
	l.hub.Unsubscribe(sub)
}

// Subscribers returns the number of attached live subscribers.
func (l *Log) Subscribers() int {
	return l.hub.Count()
}

// Close detaches all subscribers.
func (l *Log) Close() {
	l.hub.Close()
}
