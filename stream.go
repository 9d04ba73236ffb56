package finance

import "sync"

// Stream is a broadcast primitive with replay-latest-on-subscribe semantics:
// a new subscriber immediately receives the most recent published value, then
// every subsequent one. Subscribers are notified synchronously in registration
// order. A single mutex serializes all access, which is enough to preserve the
// single-threaded mutation ordering the stores rely on.
type Stream[T any] struct {
	mu   sync.Mutex
	last T
	subs map[int]func(T)
	keys []int // registration order
	next int
}

// NewStream creates a stream holding the given initial value.
func NewStream[T any](initial T) *Stream[T] {
	return &Stream[T]{last: initial, subs: make(map[int]func(T))}
}

// Latest returns the most recently published value.
func (s *Stream[T]) Latest() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Publish replaces the stream's value and notifies all current subscribers.
func (s *Stream[T]) Publish(v T) {
	s.mu.Lock()
	s.last = v
	fns := make([]func(T), 0, len(s.keys))
	for _, k := range s.keys {
		fns = append(fns, s.subs[k])
	}
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may query the owning store.
	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn and immediately invokes it with the latest value.
// The returned function cancels the subscription; cancelling twice is a no-op.
func (s *Stream[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	key := s.next
	s.next++
	s.subs[key] = fn
	s.keys = append(s.keys, key)
	last := s.last
	s.mu.Unlock()

	fn(last)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[key]; !ok {
			return
		}
		delete(s.subs, key)
		for i, k := range s.keys {
			if k == key {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
	}
}
