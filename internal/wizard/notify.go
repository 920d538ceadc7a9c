package wizard

// NotificationKind styles a toast.
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifySuccess
	NotifyWarning
	NotifyError
)

// Notification is a toast shown by the UI.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

// maxPending bounds the toast queue; the oldest toast is dropped first.
const maxPending = 16
