// Package observable holds a latest value and notifies subscribers of changes.
package observable

import (
	"slices"
	"sync"
)

// Value holds the most recent value of T. Subscribers receive the current
// value immediately on subscription and then every later update in order.
// Subscriber callbacks run on the publishing goroutine and must not call Set
// on the same Value.
type Value[T any] struct {
	publish sync.Mutex

	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

func (v *Value[T]) Set(value T) {
	v.publish.Lock()
	defer v.publish.Unlock()

	v.mu.Lock()
	v.value = value
	subs := slices.Clone(v.subs)
	v.mu.Unlock()

	for _, sub := range subs {
		sub.fn(value)
	}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is safe.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.publish.Lock()
	defer v.publish.Unlock()

	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	current := v.value
	v.mu.Unlock()

	fn(current)

	return func() {
		v.mu.Lock()
		v.subs = slices.DeleteFunc(v.subs, func(sub subscriber[T]) bool { return sub.id == id })
		v.mu.Unlock()
	}
}

// Channel bridges the value to a buffered channel for consumers on other
// goroutines. Updates are dropped when the channel is full, so a slow reader
// sees the latest values it had room for. The channel is closed by cancel.
func (v *Value[T]) Channel(buffer int) (<-chan T, func()) {
	ch := make(chan T, buffer)
	var (
		mu     sync.Mutex
		closed bool
	)

	unsubscribe := v.Subscribe(func(value T) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- value:
		default:
		}
	})

	cancel := func() {
		unsubscribe()
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			closed = true
			close(ch)
		}
	}

	return ch, cancel
}

func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
