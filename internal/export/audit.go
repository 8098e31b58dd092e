package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabe/scrub/internal/eventlog"
)

// AuditLog appends committed events to a JSONL file as they happen, so a
// crashed session still leaves a usable trail even though review state is
// never persisted.
type AuditLog struct {
	path string
	mu   sync.Mutex
}

// NewAuditLog creates an audit log inside the given directory
func NewAuditLog(dir string) (*AuditLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}
	return &AuditLog{
		path: filepath.Join(dir, "events.jsonl"),
	}, nil
}

// Append writes one event as a JSONL line
func (a *AuditLog) Append(ev eventlog.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadAll returns every event recorded in the audit log
func (a *AuditLog) ReadAll() ([]eventlog.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.Open(a.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []eventlog.Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev eventlog.Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, ev)
	}

	return events, scanner.Err()
}
