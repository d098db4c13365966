package hsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueFIFOOrder(t *testing.T) {
	q := NewEventQueue(4)
	require.True(t, q.Push(Event{Signal: SignalUser}))
	require.True(t, q.Push(Event{Signal: SignalUser + 1}))
	require.True(t, q.Push(Event{Signal: SignalUser + 2}))

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, SignalUser, first.Signal)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, SignalUser+1, second.Signal)

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, SignalUser+2, third.Signal)

	_, ok = q.Pop()
	assert.False(t, ok, "queue should be empty after draining everything pushed")
}

func TestEventQueueDefaultCapacity(t *testing.T) {
	q := NewEventQueue(0)
	for i := 0; i < DefaultQueueCapacity; i++ {
		require.True(t, q.Push(Event{Signal: SignalUser}), "push %d should fit default capacity", i)
	}
	assert.True(t, q.IsFull())
	assert.False(t, q.Push(Event{Signal: SignalUser}), "push beyond default capacity should fail")
}

func TestEventQueueOverflowDropsNewest(t *testing.T) {
	const capacity = 16
	q := NewEventQueue(capacity)

	for i := 0; i < capacity; i++ {
		require.True(t, q.Push(Event{Signal: SignalUser, Payload: i}))
	}
	assert.True(t, q.IsFull())
	assert.Equal(t, capacity, q.Size())

	// One more push than the queue can hold: dropped, queue state unchanged.
	ok := q.Push(Event{Signal: SignalUser, Payload: "overflow"})
	assert.False(t, ok)
	assert.Equal(t, capacity, q.Size())

	// The surviving events are still the original ones in original order,
	// not the dropped arrival.
	e, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, e.Payload)
}

func TestEventQueueEmptyPop(t *testing.T) {
	q := NewEventQueue(4)
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}
