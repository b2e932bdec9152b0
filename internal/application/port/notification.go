package port

import "context"

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
	// NotificationWarning is for warning messages.
	NotificationWarning
)

// Default display durations, in milliseconds.
const (
	NotificationShortMs  = 2000
	NotificationMediumMs = 3000
	NotificationLongMs   = 4000
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationInfo:
		return "info"
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notification shows transient user-visible messages for user-initiated actions.
type Notification interface {
	// Show displays a message. Duration is in milliseconds; 0 means the default.
	Show(ctx context.Context, message string, notifType NotificationType, durationMs int)
}
