package events

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// listenBuffer is the channel capacity handed out by Listen
const listenBuffer = 64

// Bus is an in-process event publisher. Handlers run synchronously in
// subscription order; Listen channels never block the publisher and drop
// events when full.
type Bus struct {
	mu       sync.Mutex
	handlers map[int]Handler
	nextID   int
	sequence int64
	now      func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[int]Handler),
		now:      time.Now,
	}
}

// Publish assigns the next sequence number and a timestamp to event and
// delivers it to every subscriber. The stamped event is returned.
func (b *Bus) Publish(event Event) Event {
	b.mu.Lock()
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	handlers := b.snapshot()
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(event)
	}
	return event
}

// Subscribe registers fn. Handlers may subscribe or unsubscribe while an
// event is being delivered; changes apply from the next Publish.
func (b *Bus) Subscribe(fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Listen returns a channel receiving every event published until ctx is
// done, at which point the channel is closed.
func (b *Bus) Listen(ctx context.Context) <-chan Event {
	ch := make(chan Event, listenBuffer)

	var mu sync.Mutex
	closed := false

	unsubscribe := b.Subscribe(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- e:
		default:
			slog.Warn("event listener full, dropping event",
				"event_type", e.Type,
				"sequence", e.SequenceID)
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

// Sequence returns the sequence number of the last published event
func (b *Bus) Sequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sequence
}

// snapshot returns the handlers in subscription order. Caller holds mu.
func (b *Bus) snapshot() []Handler {
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	handlers := make([]Handler, len(ids))
	for i, id := range ids {
		handlers[i] = b.handlers[id]
	}
	return handlers
}
