package notify

import (
	"time"
)

// NoticeType represents the type of notice
type NoticeType string

const (
	NoticeTypeGuardrail     NoticeType = "guardrail"
	NoticeTypeSyncStatus    NoticeType = "sync_status"
	NoticeTypeSnapshotSaved NoticeType = "snapshot_saved"
	NoticeTypeError         NoticeType = "error"
	NoticeTypeInfo          NoticeType = "info"
)

// Notice represents a notice to be delivered to the reviewer
type Notice struct {
	Type      NoticeType
	Title     string
	Message   string
	Timestamp time.Time
}

// Notifier is the interface for notice backends
type Notifier interface {
	// Notify delivers a notice
	Notify(notice Notice) error
	// Close cleans up resources
	Close() error
}

// Manager fans notices out to multiple backends
type Manager struct {
	notifiers []Notifier
}

// NewManager creates a new notice manager
func NewManager(notifiers ...Notifier) *Manager {
	return &Manager{
		notifiers: notifiers,
	}
}

// Notify delivers a notice to all registered backends
func (m *Manager) Notify(notice Notice) error {
	if notice.Timestamp.IsZero() {
		notice.Timestamp = time.Now()
	}

	var lastErr error
	for _, notifier := range m.notifiers {
		if err := notifier.Notify(notice); err != nil {
			lastErr = err
			// Continue to other notifiers even if one fails
		}
	}
	return lastErr
}

// Close closes all notifiers
func (m *Manager) Close() error {
	var lastErr error
	for _, notifier := range m.notifiers {
		if err := notifier.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
