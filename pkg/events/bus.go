// Package events provides an in-memory publish/subscribe bus for progress
// and lifecycle notifications. The scanner itself is synchronous and pure;
// the bus exists so long-running operations around it (catalog walks, hub
// syncs) can report progress to the CLI and the inspector without coupling
// to either.
package events

import (
	"sync"
	"time"
)

// EventBus is the publish/subscribe surface components depend on.
type EventBus interface {
	Publish(event Event)
	Subscribe(filter ...EventType) <-chan Event
	Unsubscribe(ch <-chan Event)
	History(since time.Time) []Event
	Counts() map[EventType]int
}

type subscriber struct {
	ch     chan Event
	filter map[EventType]bool // empty means all events
}

// MemoryBus is an in-memory EventBus. Publishing never blocks: events are
// dropped for subscribers that fall behind.
type MemoryBus struct {
	mu          sync.RWMutex
	subscribers []subscriber
	history     []Event
	counts      map[EventType]int
}

// NewMemoryBus creates an empty in-memory event bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		history: make([]Event, 0, 128),
		counts:  make(map[EventType]int),
	}
}

func (b *MemoryBus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.Lock()
	b.history = append(b.history, event)
	b.counts[event.Type]++
	subs := make([]subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, sub := range subs {
		if len(sub.filter) > 0 && !sub.filter[event.Type] {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Slow subscriber; drop rather than block the publisher.
		}
	}
}

func (b *MemoryBus) Subscribe(filter ...EventType) <-chan Event {
	sub := subscriber{ch: make(chan Event, 64)}
	if len(filter) > 0 {
		sub.filter = make(map[EventType]bool, len(filter))
		for _, f := range filter {
			sub.filter[f] = true
		}
	}

	b.mu.Lock()
	b.subscribers = append(b.subscribers, sub)
	b.mu.Unlock()

	return sub.ch
}

func (b *MemoryBus) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub.ch == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			close(sub.ch)
			return
		}
	}
}

func (b *MemoryBus) History(since time.Time) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var result []Event
	for _, e := range b.history {
		if !e.Timestamp.Before(since) {
			result = append(result, e)
		}
	}
	return result
}

// Counts returns the number of published events per type, for status
// reporting.
func (b *MemoryBus) Counts() map[EventType]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	counts := make(map[EventType]int, len(b.counts))
	for k, v := range b.counts {
		counts[k] = v
	}
	return counts
}
