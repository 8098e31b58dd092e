package notify

import (
	"log"
)

// LogNotifier writes notices to a standard logger
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(notice Notice) error {
	n.logger.Printf("[%s] %s: %s", notice.Type, notice.Title, notice.Message)
	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}
