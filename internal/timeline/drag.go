package timeline

// Action is the mutation a drag performs on its interval
type Action string

const (
	ActionMove        Action = "move"
	ActionResizeStart Action = "resize-start"
	ActionResizeEnd   Action = "resize-end"
)

// DragState captures an in-progress drag. Exactly one may be active at a time
// across the whole timeline; the TUI enforces that by owning a single pointer.
type DragState struct {
	Kind      Kind
	ID        string
	Action    Action
	OriginX   int
	OrigStart float64
	OrigEnd   float64
}

// BeginDrag starts a drag over the given interval. The caller decides the
// action from where the press landed (bar edge vs body).
func BeginDrag(kind Kind, iv Interval, action Action, originX int) *DragState {
	return &DragState{
		Kind:      kind,
		ID:        iv.ID,
		Action:    action,
		OriginX:   originX,
		OrigStart: iv.Start,
		OrigEnd:   iv.End,
	}
}

// Update converts the current pointer column into new interval bounds.
// width is the track width in cells and total the procedure duration in
// seconds. A zero width or total leaves the original bounds untouched so a
// degenerate layout can never produce NaN times.
func (d *DragState) Update(x, width int, total float64) (newStart, newEnd float64) {
	newStart = d.OrigStart
	newEnd = d.OrigEnd
	if width <= 0 || total == 0 {
		return newStart, newEnd
	}

	deltaTime := float64(x-d.OriginX) / float64(width) * total

	switch d.Action {
	case ActionMove:
		newStart += deltaTime
		newEnd += deltaTime
		if newStart < 0 {
			newEnd -= newStart
			newStart = 0
		}
		if newEnd > total {
			newStart -= newEnd - total
			newEnd = total
		}
	case ActionResizeStart:
		newStart += deltaTime
		if newStart < 0 {
			newStart = 0
		}
		if newStart > newEnd-MinDuration {
			newStart = newEnd - MinDuration
		}
	case ActionResizeEnd:
		newEnd += deltaTime
		if newEnd > total {
			newEnd = total
		}
		if newEnd < newStart+MinDuration {
			newEnd = newStart + MinDuration
		}
	}
	return newStart, newEnd
}

// Apply rebuilds the collection with the dragged interval's bounds updated to
// the pointer at x. Only the dragged id changes; neighbours are never snapped,
// so overlapping phases are a valid end state.
func (d *DragState) Apply(intervals []Interval, x, width int, total float64) []Interval {
	iv, ok := Find(intervals, d.ID)
	if !ok {
		return intervals
	}
	iv.Start, iv.End = d.Update(x, width, total)
	return Replace(intervals, d.ID, iv)
}
