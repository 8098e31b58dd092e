// Package syncbus is the broadcast bridge between the main console and its
// detached windows. The owner process hosts a small websocket hub; every
// window joins a named channel and receives whatever the other members of
// that channel publish. Delivery is fire-and-forget: no receiver, no error.
package syncbus

import (
	"encoding/json"
	"fmt"

	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/project"
)

// Channel names for the two independent detachable surfaces. They are not
// interoperable: a cockpit never sees event_log traffic and vice versa.
const (
	ChannelCockpit  = "cockpit_sync"
	ChannelEventLog = "event_log"
)

// Message kinds
const (
	// state exchange
	KindRequestState = "REQUEST_STATE"
	KindSyncState    = "SYNC_STATE"
	KindTimeUpdate   = "TIME_UPDATE"

	// intents, sent by detached windows and applied by the state owner
	KindLogEvent        = "LOG_EVENT"
	KindAddNote         = "ADD_NOTE"
	KindUpdateEvent     = "UPDATE_EVENT"
	KindUpdateNote      = "UPDATE_NOTE"
	KindSeek            = "SEEK"
	KindCaptureSnapshot = "CAPTURE_SNAPSHOT"
	KindStartDictation  = "START_DICTATION"
)

// Envelope is the wire format: a kind tag and a JSON payload
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope marshals a payload into an envelope
func NewEnvelope(kind string, payload interface{}) (Envelope, error) {
	if payload == nil {
		return Envelope{Type: kind}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return Envelope{Type: kind, Payload: data}, nil
}

// Decode unmarshals the payload into v
func (e Envelope) Decode(v interface{}) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}

// StateSnapshot is the SYNC_STATE payload: the subset of project state a
// detached window renders from. Detached windows are pure views; they never
// mutate this locally (single-writer model).
type StateSnapshot struct {
	CurrentTime float64          `json:"currentTime"`
	Events      []eventlog.Event `json:"loggedEvents"`
	Notes       []project.Note   `json:"annotations"`
}

// TimeUpdatePayload carries the owner's playhead for detached clocks
type TimeUpdatePayload struct {
	CurrentTime float64 `json:"currentTime"`
}

// SeekPayload is a seek intent from a detached window, absolute seconds
type SeekPayload struct {
	Time float64 `json:"time"`
}

// UpdateNotePayload carries an edited note text by id
type UpdateNotePayload struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AddNotePayload carries a new quick note from a detached window
type AddNotePayload struct {
	Text string  `json:"text"`
	Time float64 `json:"time"`
}
