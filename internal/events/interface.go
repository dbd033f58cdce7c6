package events

import "context"

// EventPublisher defines the interface for sending and receiving board events.
// Depending on behavior rather than the concrete Bus keeps the engine easy to
// test with a recording publisher.
type EventPublisher interface {
	// Publish stamps the event and delivers it to every subscriber
	Publish(event Event) Event

	// Subscribe registers a handler and returns a function that removes it
	Subscribe(fn Handler) (unsubscribe func())

	// Listen delivers events on a channel until ctx is done
	Listen(ctx context.Context) <-chan Event
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
