package eventlog

import "fmt"

// Phase of the recorder lifecycle
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseRecording Phase = "recording"
	PhasePending   Phase = "pending"
)

// Recorder drives the start/stop/confirm flow for one candidate event.
// Committing is a two-step handoff: Stop produces a pending event plus any
// guardrail warning, and the operator either confirms (possibly overriding
// the warning) or cancels back to idle.
type Recorder struct {
	phase   Phase
	start   float64
	pending *Event
	warning string
}

// NewRecorder creates an idle recorder
func NewRecorder() *Recorder {
	return &Recorder{phase: PhaseIdle}
}

// Phase returns the current lifecycle phase
func (r *Recorder) Phase() Phase {
	return r.phase
}

// StartTime returns the captured start while recording or pending
func (r *Recorder) StartTime() float64 {
	return r.start
}

// Pending returns the candidate event awaiting confirmation, if any
func (r *Recorder) Pending() *Event {
	return r.pending
}

// Warning returns the guardrail message attached to the pending event, empty
// when validation passed.
func (r *Recorder) Warning() string {
	return r.warning
}

// Start begins recording at the given playback time
func (r *Recorder) Start(currentTime float64) error {
	if r.phase != PhaseIdle {
		return fmt.Errorf("recorder is %s, cannot start", r.phase)
	}
	r.start = currentTime
	r.phase = PhaseRecording
	return nil
}

// Stop captures the end time, validates the candidate against the committed
// history and moves to pending. A guardrail violation does not block the
// transition; it is attached as an overridable warning.
func (r *Recorder) Stop(candidate Event, currentTime float64, committed []Event) error {
	if r.phase != PhaseRecording {
		return fmt.Errorf("recorder is %s, cannot stop", r.phase)
	}
	if candidate.Label == "" {
		candidate.Label = "Unnamed Event"
	}
	candidate.Start = r.start
	candidate.End = currentTime

	r.warning = Validate(candidate.Label, candidate.Category, committed)
	r.pending = &candidate
	r.phase = PhasePending
	return nil
}

// Amend replaces the pending event with edited fields during review. Times
// are preserved from the original capture.
func (r *Recorder) Amend(ev Event) {
	if r.phase != PhasePending || r.pending == nil {
		return
	}
	ev.Start = r.pending.Start
	ev.End = r.pending.End
	r.pending = &ev
}

// Confirm commits the pending event and resets to idle. The returned event
// carries a fresh id.
func (r *Recorder) Confirm() (Event, error) {
	if r.phase != PhasePending || r.pending == nil {
		return Event{}, fmt.Errorf("recorder is %s, nothing to confirm", r.phase)
	}
	ev := *r.pending
	if ev.ID == "" {
		ev = withID(ev)
	}
	r.reset()
	return ev, nil
}

// Cancel abandons the pending or recording event and returns to idle
func (r *Recorder) Cancel() {
	r.reset()
}

func (r *Recorder) reset() {
	r.phase = PhaseIdle
	r.start = 0
	r.pending = nil
	r.warning = ""
}

func withID(ev Event) Event {
	full := NewEvent(ev.Label, ev.Type, ev.Category, ev.Start, ev.End)
	full.Notes = ev.Notes
	full.Staff = ev.Staff
	full.Location = ev.Location
	full.Outcome = ev.Outcome
	return full
}
