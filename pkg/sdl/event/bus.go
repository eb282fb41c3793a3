package event

import (
	"sync"
	"sync/atomic"
)

// Handler receives a published event.
type Handler func(Event)

// Subscription is a handler registered on a Bus.
type Subscription struct {
	bus    *Bus
	name   Name
	all    bool
	h      Handler
	active atomic.Bool
}

// Unsubscribe removes the subscription from its bus. Calling it more than
// once has no effect.
func (s *Subscription) Unsubscribe() {
	if !s.active.Swap(false) {
		return
	}
	s.bus.remove(s)
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool {
	return s.active.Load() && !s.bus.Closed()
}

// Bus delivers events synchronously to subscribers in the order they
// subscribed. Subscribers may subscribe or unsubscribe from inside a
// handler; such changes apply from the next Publish, except that a
// subscription removed with Unsubscribe is never called again.
type Bus struct {
	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

// NewBus returns an open bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for events with the given name.
func (b *Bus) Subscribe(name Name, h Handler) *Subscription {
	return b.add(&Subscription{bus: b, name: name, h: h})
}

// SubscribeAll registers h for every event regardless of name.
func (b *Bus) SubscribeAll(h Handler) *Subscription {
	return b.add(&Subscription{bus: b, all: true, h: h})
}

func (b *Bus) add(s *Subscription) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	// a closed bus hands back an inert subscription
	if b.closed {
		return s
	}
	s.active.Store(true)
	b.subs = append(b.subs, s)
	return s
}

func (b *Bus) remove(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub == s {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every matching subscriber and returns how many
// handlers were called. Publishing on a closed bus is a no-op.
func (b *Bus) Publish(ev Event) int {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return 0
	}
	subs := b.subs
	b.mu.Unlock()

	name := ev.Name()
	n := 0
	for _, s := range subs {
		if !s.all && s.name != name {
			continue
		}
		if !s.active.Load() {
			continue
		}
		s.h(ev)
		n++
	}
	return n
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close removes every subscription and rejects further publishing. A
// Publish already in progress finishes delivering its event, so every quit
// subscriber observes the quit event that triggered the teardown.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = nil
}

// Closed reports whether Close has been called.
func (b *Bus) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
