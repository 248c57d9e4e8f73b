package models

// NotificationKind classifies a transient notification.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient user-facing message. At most one is pending
// at a time; a newer one replaces the older.
type Notification struct {
	Message string
	Kind    NotificationKind
}
