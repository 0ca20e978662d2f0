package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

type memStore struct {
	msgs    []Message
	failing bool
}

func (s *memStore) Append(_ context.Context, msg Message) error {
	if s.failing {
		return fmt.Errorf("store down")
	}
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *memStore) Recent(_ context.Context, limit int) ([]Message, error) {
	if s.failing {
		return nil, fmt.Errorf("store down")
	}
	if len(s.msgs) > limit {
		return s.msgs[len(s.msgs)-limit:], nil
	}
	return s.msgs, nil
}

func TestLogPublishAndHistory(t *testing.T) {
	log := NewLog(zaptest.NewLogger(t), 50, 8, nil)
	log.Publish(context.Background(), Message{Author: "alice", Body: "hi"})
	log.Publish(context.Background(), Message{Author: "bob", Body: "yo"})

	hist := log.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "alice", hist[0].Author)
	assert.Equal(t, "yo", hist[1].Body)
}

func TestLogHistoryBounded(t *testing.T) {
	log := NewLog(zaptest.NewLogger(t), 50, 8, nil)
	for i := 0; i < 75; i++ {
		log.Publish(context.Background(), Message{Author: "alice", Body: fmt.Sprintf("m%d", i)})
	}

	hist := log.History()
	require.Len(t, hist, 50)
	// Oldest retained message is m25; newest is m74.
	assert.Equal(t, "m25", hist[0].Body)
	assert.Equal(t, "m74", hist[49].Body)
}

func TestLogFanOut(t *testing.T) {
	log := NewLog(zaptest.NewLogger(t), 50, 8, nil)
	a := log.Subscribe("a")
	b := log.Subscribe("b")

	log.Publish(context.Background(), Message{Author: "alice", Body: "hi"})

	assert.Equal(t, "hi", (<-a.Events()).Body)
	assert.Equal(t, "hi", (<-b.Events()).Body)
}

func TestLogSenderReceivesOwnMessage(t *testing.T) {
	log := NewLog(zaptest.NewLogger(t), 50, 8, nil)
	self := log.Subscribe("alice")

	log.Publish(context.Background(), Message{Author: "alice", Body: "echo"})
	got := <-self.Events()
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, "echo", got.Body)
}

func TestLogWritesThroughToStore(t *testing.T) {
	store := &memStore{}
	log := NewLog(zaptest.NewLogger(t), 50, 8, store)

	log.Publish(context.Background(), Message{Author: "alice", Body: "hi"})
	require.Len(t, store.msgs, 1)
	assert.Equal(t, "hi", store.msgs[0].Body)
}

func TestLogStoreFailureDoesNotRejectMessage(t *testing.T) {
	store := &memStore{failing: true}
	log := NewLog(zaptest.NewLogger(t), 50, 8, store)

	log.Publish(context.Background(), Message{Author: "alice", Body: "hi"})
	assert.Len(t, log.History(), 1)
}

func TestLogWarm(t *testing.T) {
	store := &memStore{}
	for i := 0; i < 60; i++ {
		store.msgs = append(store.msgs, Message{Author: "a", Body: fmt.Sprintf("m%d", i)})
	}

	log := NewLog(zaptest.NewLogger(t), 50, 8, store)
	require.NoError(t, log.Warm(context.Background()))

	hist := log.History()
	require.Len(t, hist, 50)
	assert.Equal(t, "m10", hist[0].Body)
	assert.Equal(t, "m59", hist[49].Body)
}

func TestLogWarmWithoutStore(t *testing.T) {
	log := NewLog(zaptest.NewLogger(t), 50, 8, nil)
	assert.NoError(t, log.Warm(context.Background()))
}

func TestLogPublishAssignsSequence(t *testing.T) {
	log := NewLog(zaptest.NewLogger(t), 50, 8, nil)

	assert.Equal(t, uint64(1), log.Publish(context.Background(), Message{Author: "alice", Body: "one"}))
	assert.Equal(t, uint64(2), log.Publish(context.Background(), Message{Author: "bob", Body: "two"}))

	hist := log.History()
	require.Len(t, hist, 2)
	assert.Equal(t, uint64(1), hist[0].Seq)
	assert.Equal(t, uint64(2), hist[1].Seq)
}

func TestLogWarmResumesSequence(t *testing.T) {
	store := &memStore{}
	for i := 1; i <= 3; i++ {
		store.msgs = append(store.msgs, Message{Seq: uint64(i), Author: "a", Body: fmt.Sprintf("m%d", i)})
	}

	log := NewLog(zaptest.NewLogger(t), 50, 8, store)
	require.NoError(t, log.Warm(context.Background()))

	assert.Equal(t, uint64(4), log.Publish(context.Background(), Message{Author: "a", Body: "m4"}))
}

// blockingStore parks every Append until the gate opens, modeling a slow
// or stalled persistence layer.
type blockingStore struct {
	gate chan struct{}
}

func (s *blockingStore) Append(_ context.Context, _ Message) error {
	<-s.gate
	return nil
}

func (s *blockingStore) Recent(_ context.Context, _ int) ([]Message, error) {
	return nil, nil
}

func TestLogFanOutNotDelayedByStore(t *testing.T) {
	store := &blockingStore{gate: make(chan struct{})}
	log := NewLog(zaptest.NewLogger(t), 50, 8, store)
	sub := log.Subscribe("watcher")

	done := make(chan struct{}, 2)
	go func() {
		log.Publish(context.Background(), Message{Author: "alice", Body: "first"})
		done <- struct{}{}
	}()

	// Fan-out precedes the store write, so the subscriber sees the message
	// while the store call is still parked.
	select {
	case got := <-sub.Events():
		assert.Equal(t, "first", got.Body)
		assert.Equal(t, uint64(1), got.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("fan-out blocked behind the store write")
	}

	go func() {
		log.Publish(context.Background(), Message{Author: "bob", Body: "second"})
		done <- struct{}{}
	}()
	select {
	case got := <-sub.Events():
		assert.Equal(t, "second", got.Body)
		assert.Equal(t, uint64(2), got.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("second publish blocked behind the parked store write")
	}

	close(store.gate)
	<-done
	<-done

	hist := log.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "first", hist[0].Body)
	assert.Equal(t, "second", hist[1].Body)
}

func TestLogConcurrentPublishersDeliverInAppendOrder(t *testing.T) {
	const writers, perWriter = 8, 20

	log := NewLog(zaptest.NewLogger(t), writers*perWriter, writers*perWriter, nil)
	sub := log.Subscribe("watcher")

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Publish(context.Background(), Message{
					Author: fmt.Sprintf("writer-%d", w),
					Body:   fmt.Sprintf("m%d", i),
				})
			}
		}(w)
	}
	wg.Wait()

	// Every subscriber observes messages in ring (append) order: the
	// delivered sequence numbers are strictly increasing.
	var prev uint64
	for i := 0; i < writers*perWriter; i++ {
		got := <-sub.Events()
		if got.Seq <= prev {
			t.Fatalf("delivery out of append order: seq %d after %d", got.Seq, prev)
		}
		prev = got.Seq
	}

	hist := log.History()
	require.Len(t, hist, writers*perWriter)
	for i := 1; i < len(hist); i++ {
		require.Greater(t, hist[i].Seq, hist[i-1].Seq)
	}
}

func TestPropertyHistoryNeverExceedsSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 50).Draw(t, "size")
		count := rapid.IntRange(0, 120).Draw(t, "count")

		log := NewLog(zaptest.NewLogger(t), size, 8, nil)
		for i := 0; i < count; i++ {
			log.Publish(context.Background(), Message{Author: "a", Body: fmt.Sprintf("m%d", i)})
		}

		hist := log.History()
		if len(hist) > size {
			t.Fatalf("history %d exceeds size %d", len(hist), size)
		}
		// Retained suffix preserves publish order.
		for i := 1; i < len(hist); i++ {
			prev := hist[i-1].Body
			cur := hist[i].Body
			if prev >= cur && len(prev) == len(cur) {
				t.Fatalf("history out of order: %s before %s", prev, cur)
			}
		}
	})
}
