package events

import (
	"log/slog"
)

// Send publishes event when a publisher is configured.
// Event delivery is fire-and-forget: a missing publisher is not an error.
func Send(p EventPublisher, event Event) {
	if p == nil {
		return // Silently skip if no publisher (e.g., in tests or headless runs)
	}

	stamped := p.Publish(event)
	slog.Debug("board event published",
		"event_type", stamped.Type,
		"sequence", stamped.SequenceID,
		"columns", len(stamped.Columns))
}
