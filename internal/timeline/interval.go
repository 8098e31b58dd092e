package timeline

import "github.com/google/uuid"

// MinDuration is the floor an interval can be resized down to, in seconds.
const MinDuration = 5.0

// Kind distinguishes the two editable collections on the timeline
type Kind string

const (
	KindPhase      Kind = "phase"
	KindInstrument Kind = "instrument"
)

// Interval is a labeled time range on the shared procedure axis.
// Track is a lane hint used only when the instrument track is expanded.
type Interval struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Start float64 `json:"start_time"`
	End   float64 `json:"end_time"`
	Color string  `json:"color"`
	Track int     `json:"track_index,omitempty"`
}

// NewInterval creates an interval with a freshly assigned id
func NewInterval(label string, start, end float64, color string) Interval {
	return Interval{
		ID:    uuid.NewString(),
		Label: label,
		Start: start,
		End:   end,
		Color: color,
	}
}

// Duration returns the interval length in seconds
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Contains reports whether t falls inside the interval, inclusive on both ends
func (iv Interval) Contains(t float64) bool {
	return t >= iv.Start && t <= iv.End
}

// Position converts a time in seconds to a percentage of the total duration.
// A zero total yields 0 rather than dividing; both the renderer and the drag
// math go through this so the two can never disagree on placement.
func Position(t, total float64) float64 {
	if total == 0 {
		return 0
	}
	return t / total * 100
}

// TimeAt converts a horizontal cell offset within a track of the given width
// back to seconds. Degrades to 0 on a zero-width track or zero total.
func TimeAt(x, width int, total float64) float64 {
	if width <= 0 || total == 0 {
		return 0
	}
	t := float64(x) / float64(width) * total
	if t < 0 {
		return 0
	}
	if t > total {
		return total
	}
	return t
}

// Replace returns a copy of the collection with the interval matching id
// swapped for the given one. Order and all other elements are preserved.
func Replace(intervals []Interval, id string, iv Interval) []Interval {
	out := make([]Interval, len(intervals))
	for i, cur := range intervals {
		if cur.ID == id {
			out[i] = iv
		} else {
			out[i] = cur
		}
	}
	return out
}

// Find returns the interval with the given id and whether it exists
func Find(intervals []Interval, id string) (Interval, bool) {
	for _, iv := range intervals {
		if iv.ID == id {
			return iv, true
		}
	}
	return Interval{}, false
}
