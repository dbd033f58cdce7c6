package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo is used for completed board operations
	LevelInfo NotificationLevel = iota
	// LevelError is used for failed saves and rejected actions
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the messages shown in the status bar. Only the
// most recent notifications are kept.
type NotificationState struct {
	notifications []Notification
	limit         int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{limit: 3}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
	if len(s.notifications) > s.limit {
		s.notifications = s.notifications[len(s.notifications)-s.limit:]
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the most recent notification
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
