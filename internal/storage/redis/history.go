// Package redis provides the Redis-backed chat history store.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deadshot465/demo-game/internal/config"
	"github.com/deadshot465/demo-game/internal/game/chat"
)

const historyKey = "chat:history"

// History persists chat messages in a capped Redis list. The newest maxLen
// entries are retained; older entries are trimmed on every append.
type History struct {
	client *redis.Client
	maxLen int
}

// New connects to Redis and returns a History retaining maxLen messages.
//
// Precondition: maxLen must be positive.
// Postcondition: Returns a connected History or a non-nil error.
func New(ctx context.Context, cfg config.RedisConfig, maxLen int) (*History, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	return &History{client: client, maxLen: maxLen}, nil
}

// NewWithClient creates a History with an existing client (for testing).
func NewWithClient(client *redis.Client, maxLen int) *History {
	return &History{client: client, maxLen: maxLen}
}

var _ chat.Store = (*History)(nil)

// Append records a message at the tail of the history list and trims the
// list to maxLen. The push and trim run in one pipeline.
func (h *History) Append(ctx context.Context, msg chat.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding chat message: %w", err)
	}

	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, int64(-h.maxLen), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("appending chat message: %w", err)
	}
	return nil
}

// Recent returns up to limit messages, oldest first.
func (h *History) Recent(ctx context.Context, limit int) ([]chat.Message, error) {
	raw, err := h.client.LRange(ctx, historyKey, int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading chat history: %w", err)
	}

	msgs := make([]chat.Message, 0, len(raw))
	for _, item := range raw {
		var msg chat.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("decoding chat message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// Close closes the Redis connection.
func (h *History) Close() error {
	return h.client.Close()
}
