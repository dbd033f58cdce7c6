package notifications

import "github.com/thenoetrevino/swimlane/internal/tui/state"

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

// severityOf maps a stored notification level to its banner severity
func severityOf(level state.NotificationLevel) Severity {
	if level == state.LevelError {
		return Error
	}
	return Info
}
