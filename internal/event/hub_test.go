package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_FanOutInOrder(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	ch2, cancel2 := hub.Subscribe()
	defer cancel1()
	defer cancel2()

	hub.Publish(MoneyUpdated(10), TaskDeleted(3))

	for _, ch := range []<-chan Event{ch1, ch2} {
		ev := <-ch
		assert.Equal(t, TypeMoneyUpdated, ev.Type)
		assert.Equal(t, 10, ev.Data)

		ev = <-ch
		assert.Equal(t, TypeTaskDeleted, ev.Type)
	}
}

func TestHub_SlowSubscriberDropsFramesWithoutBlocking(t *testing.T) {
	hub := NewHub()

	slow, cancelSlow := hub.Subscribe()
	defer cancelSlow()

	// fill the slow subscriber's buffer and then some; Publish must return
	for i := 0; i < defaultBuffer+5; i++ {
		hub.Publish(MoneyUpdated(i))
	}

	fast, cancelFast := hub.Subscribe()
	defer cancelFast()
	hub.Publish(MoneyUpdated(99))

	// the slow subscriber kept the first defaultBuffer frames only
	assert.Len(t, slow, defaultBuffer)

	ev := <-fast
	assert.Equal(t, 99, ev.Data)
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cancel()
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())

	// publishing after the last unsubscribe is a no-op
	hub.Publish(MoneyUpdated(1))
}

func TestHub_LateSubscriberGetsNoReplay(t *testing.T) {
	hub := NewHub()
	hub.Publish(MoneyUpdated(1))

	ch, cancel := hub.Subscribe()
	defer cancel()
	assert.Len(t, ch, 0)
}
