package broadcast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

func TestHubPublishDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub[string](zaptest.NewLogger(t), 8)
	a := hub.Subscribe("a")
	b := hub.Subscribe("b")

	delivered := hub.Publish("hello")
	assert.Equal(t, 2, delivered)

	assert.Equal(t, "hello", <-a.Events())
	assert.Equal(t, "hello", <-b.Events())
}

func TestHubSubscribeReplacesExisting(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 8)
	old := hub.Subscribe("p1")
	repl := hub.Subscribe("p1")

	assert.True(t, old.IsClosed())
	assert.False(t, repl.IsClosed())
	assert.Equal(t, 1, hub.Count())

	hub.Publish(42)
	assert.Equal(t, 42, <-repl.Events())
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 2)
	slow := hub.Subscribe("slow")
	fast := hub.Subscribe("fast")

	// Fill the slow subscriber's buffer without draining it.
	hub.Publish(1)
	hub.Publish(2)
	// Drain only the fast subscriber.
	<-fast.Events()
	<-fast.Events()

	// Third publish overflows the slow subscriber and detaches it.
	delivered := hub.Publish(3)
	assert.Equal(t, 1, delivered)
	assert.Equal(t, 1, hub.Count())
	assert.True(t, slow.IsClosed())

	assert.Equal(t, 3, <-fast.Events())
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 4)
	sub := hub.Subscribe("p1")
	hub.Unsubscribe(sub)

	assert.True(t, sub.IsClosed())
	assert.Equal(t, 0, hub.Count())

	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestHubUnsubscribeStaleDoesNotRemoveReplacement(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 4)
	old := hub.Subscribe("p1")
	hub.Subscribe("p1")

	// Unsubscribing the replaced subscriber must not evict the new one.
	hub.Unsubscribe(old)
	assert.Equal(t, 1, hub.Count())
}

func TestHubIsCurrent(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 4)
	old := hub.Subscribe("p1")
	assert.True(t, hub.IsCurrent(old))

	fresh := hub.Subscribe("p1")
	assert.False(t, hub.IsCurrent(old))
	assert.True(t, hub.IsCurrent(fresh))

	hub.Unsubscribe(fresh)
	assert.False(t, hub.IsCurrent(fresh))
}

func TestSubscriberPushAfterClose(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 4)
	sub := hub.Subscribe("p1")
	sub.Close()

	err := sub.Push(1)
	require.Error(t, err)
}

func TestHubClose(t *testing.T) {
	hub := NewHub[int](zaptest.NewLogger(t), 4)
	a := hub.Subscribe("a")
	b := hub.Subscribe("b")

	hub.Close()
	assert.True(t, a.IsClosed())
	assert.True(t, b.IsClosed())
	assert.Equal(t, 0, hub.Count())
}

func TestPropertyPublishNeverBlocks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buffer := rapid.IntRange(1, 8).Draw(t, "buffer")
		subs := rapid.IntRange(0, 5).Draw(t, "subs")
		publishes := rapid.IntRange(0, 30).Draw(t, "publishes")

		hub := NewHub[int](zaptest.NewLogger(t), buffer)
		for i := 0; i < subs; i++ {
			hub.Subscribe(fmt.Sprintf("s%d", i))
		}

		// No subscriber drains; every publish must still return.
		for i := 0; i < publishes; i++ {
			hub.Publish(i)
		}

		// Undrained subscribers survive only while their buffers last.
		if publishes > buffer {
			if hub.Count() != 0 {
				t.Fatalf("expected all slow subscribers dropped, %d remain", hub.Count())
			}
		}
	})
}
