package finance

import (
	"slices"
	"testing"
)

func TestStream_ReplaysLatestOnSubscribe(t *testing.T) {
	s := NewStream(1)
	s.Publish(2)
	s.Publish(3)

	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })

	if !slices.Equal(got, []int{3}) {
		t.Errorf("subscriber received %v, want [3]", got)
	}
	if s.Latest() != 3 {
		t.Errorf("Latest() = %d, want 3", s.Latest())
	}
}

func TestStream_NotifiesInRegistrationOrder(t *testing.T) {
	s := NewStream(0)

	var order []string
	s.Subscribe(func(int) { order = append(order, "a") })
	s.Subscribe(func(int) { order = append(order, "b") })
	s.Subscribe(func(int) { order = append(order, "c") })

	order = order[:0]
	s.Publish(1)

	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("notification order = %v", order)
	}
}

func TestStream_Cancel(t *testing.T) {
	s := NewStream(0)

	var got []int
	cancel := s.Subscribe(func(v int) { got = append(got, v) })
	s.Publish(1)
	cancel()
	s.Publish(2)
	cancel() // cancelling twice is a no-op

	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("subscriber received %v, want [0 1]", got)
	}
}

func TestStream_SubscriberSequence(t *testing.T) {
	s := NewStream([]string{})

	var seen [][]string
	s.Subscribe(func(v []string) { seen = append(seen, v) })
	s.Publish([]string{"a"})
	s.Publish([]string{"a", "b"})

	want := [][]string{{}, {"a"}, {"a", "b"}}
	if len(seen) != len(want) {
		t.Fatalf("received %d values, want %d", len(seen), len(want))
	}
	for i := range want {
		if !slices.Equal(seen[i], want[i]) {
			t.Errorf("value %d = %v, want %v", i, seen[i], want[i])
		}
	}
}
