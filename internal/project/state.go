// Package project defines the aggregate review state shared by every surface.
package project

import (
	"github.com/google/uuid"

	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/timeline"
)

// Note is a free-text annotation pinned to a playback time. Time is numeric
// seconds; clock formatting happens at the view boundary only.
type Note struct {
	ID          string  `json:"id"`
	Time        float64 `json:"time"`
	Author      string  `json:"author"`
	Text        string  `json:"text"`
	SnapshotRef string  `json:"snapshot_ref,omitempty"`
}

// NewNote creates a note with a freshly assigned id
func NewNote(text, author string, t float64) Note {
	return Note{
		ID:     uuid.NewString(),
		Time:   t,
		Author: author,
		Text:   text,
	}
}

// CaseDetails is the descriptive header for the procedure under review
type CaseDetails struct {
	ID        string `json:"id"`
	Procedure string `json:"procedure"`
	Surgeon   string `json:"surgeon"`
	Date      string `json:"date"`
	Facility  string `json:"facility,omitempty"`
}

// State is the aggregate root. It is owned by the history manager; every
// mutation must flow through history.Set to remain undoable. It is never
// persisted: the review session dies with the process.
type State struct {
	Phases      []timeline.Interval `json:"phases"`
	Instruments []timeline.Interval `json:"instruments"`
	Events      []eventlog.Event    `json:"events"`
	Notes       []Note              `json:"annotations"`
	Snapshots   []string            `json:"snapshots"`
	Case        CaseDetails         `json:"case_details"`
}

// WithPhases returns a copy of the state with the phase collection replaced
func (s State) WithPhases(phases []timeline.Interval) State {
	s.Phases = phases
	return s
}

// WithInstruments returns a copy with the instrument collection replaced
func (s State) WithInstruments(instruments []timeline.Interval) State {
	s.Instruments = instruments
	return s
}

// WithEvent returns a copy with the event appended, keeping start order
func (s State) WithEvent(ev eventlog.Event) State {
	s.Events = eventlog.Append(s.Events, ev)
	return s
}

// WithUpdatedEvent returns a copy with the matching event replaced in place
func (s State) WithUpdatedEvent(ev eventlog.Event) State {
	s.Events = eventlog.Update(s.Events, ev)
	return s
}

// WithNote returns a copy with the note appended
func (s State) WithNote(n Note) State {
	notes := make([]Note, 0, len(s.Notes)+1)
	notes = append(notes, s.Notes...)
	s.Notes = append(notes, n)
	return s
}

// WithUpdatedNote returns a copy with the matching note's text replaced.
// Unknown ids are a no-op.
func (s State) WithUpdatedNote(id, text string) State {
	notes := make([]Note, len(s.Notes))
	for i, n := range s.Notes {
		if n.ID == id {
			n.Text = text
		}
		notes[i] = n
	}
	s.Notes = notes
	return s
}

// WithSnapshot returns a copy with the snapshot reference appended
func (s State) WithSnapshot(ref string) State {
	snaps := make([]string, 0, len(s.Snapshots)+1)
	snaps = append(snaps, s.Snapshots...)
	s.Snapshots = append(snaps, ref)
	return s
}

// TotalDuration derives the procedure length from the last phase end.
// Falls back to the default mock duration when no phases exist.
func (s State) TotalDuration() float64 {
	if len(s.Phases) == 0 {
		return DefaultDuration
	}
	end := 0.0
	for _, p := range s.Phases {
		if p.End > end {
			end = p.End
		}
	}
	return end
}
