// Package eventlog holds the manually curated record of timed occurrences
// during a procedure: the recorder state machine, guardrail validation,
// tagging, condensation and macros.
package eventlog

import (
	"sort"

	"github.com/google/uuid"
)

// EventType categorizes a logged event. The set is open: remote windows may
// send types this build does not know, and they pass through untouched.
type EventType string

const (
	TypeInstrument    EventType = "instrument"
	TypeMilestone     EventType = "milestone"
	TypeComplication  EventType = "complication"
	TypeCommunication EventType = "communication"
	TypePhase         EventType = "phase"
)

// Category is the procedure phase an event belongs to
type Category string

const (
	CategoryPreOp   Category = "pre-op"
	CategoryIntraOp Category = "intra-op"
	CategoryPostOp  Category = "post-op"
)

// Outcome values for the action outcome field
const (
	OutcomeSuccessful = "Successful"
	OutcomePartial    = "Partial"
	OutcomeFailed     = "Failed"
	OutcomeAborted    = "Aborted"
)

// Event is one timed occurrence in the log. Point events have Start == End.
// IDs are assigned at creation and never reused; edits address the id, not
// the array position.
type Event struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     EventType `json:"type"`
	Category Category  `json:"category"`
	Start    float64   `json:"start_time"`
	End      float64   `json:"end_time"`
	Notes    string    `json:"notes,omitempty"`
	Staff    string    `json:"staff_role,omitempty"`
	Location string    `json:"anatomical_location,omitempty"`
	Outcome  string    `json:"action_outcome,omitempty"`
}

// NewEvent creates an event with a freshly assigned id
func NewEvent(label string, typ EventType, cat Category, start, end float64) Event {
	return Event{
		ID:       uuid.NewString(),
		Label:    label,
		Type:     typ,
		Category: cat,
		Start:    start,
		End:      end,
	}
}

// Append inserts the event and returns the collection re-sorted ascending by
// start time. The input slice is not mutated.
func Append(events []Event, ev Event) []Event {
	out := make([]Event, 0, len(events)+1)
	out = append(out, events...)
	out = append(out, ev)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// Update replaces the event with the matching id in place. Unknown ids are a
// no-op; the caller may be applying a stale remote intent.
func Update(events []Event, ev Event) []Event {
	out := make([]Event, len(events))
	for i, cur := range events {
		if cur.ID == ev.ID {
			out[i] = ev
		} else {
			out[i] = cur
		}
	}
	return out
}
