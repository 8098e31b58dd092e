package tui

import "github.com/gabe/scrub/internal/timeline"

// Cell geometry shared by the timeline renderer and its mouse handling. Both
// sides go through these helpers so a bar is always grabbed exactly where it
// is drawn.

// barSpan converts an interval to a half-open cell range [start, end) on a
// track of the given width. A visible interval always spans at least one cell.
func barSpan(iv timeline.Interval, width int, total float64) (int, int) {
	if width <= 0 || total == 0 {
		return 0, 0
	}
	start := int(timeline.Position(iv.Start, total) / 100 * float64(width))
	end := int(timeline.Position(iv.End, total) / 100 * float64(width))
	if start < 0 {
		start = 0
	}
	if end > width {
		end = width
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

// hitZone is where inside a bar a press landed
type hitZone int

const (
	zoneNone hitZone = iota
	zoneBody
	zoneStartEdge
	zoneEndEdge
)

// hitTest finds the interval under cell x and which zone was pressed. The
// first and last cell of a bar are the resize handles; a one-cell bar only
// offers its body. Later intervals win when bars overlap, matching paint
// order.
func hitTest(intervals []timeline.Interval, x, width int, total float64) (timeline.Interval, hitZone) {
	var hit timeline.Interval
	zone := zoneNone
	for _, iv := range intervals {
		start, end := barSpan(iv, width, total)
		if x < start || x >= end {
			continue
		}
		hit = iv
		switch {
		case end-start < 2:
			zone = zoneBody
		case x == start:
			zone = zoneStartEdge
		case x == end-1:
			zone = zoneEndEdge
		default:
			zone = zoneBody
		}
	}
	return hit, zone
}

// dragAction maps a hit zone to the drag mutation it starts
func dragAction(zone hitZone) (timeline.Action, bool) {
	switch zone {
	case zoneBody:
		return timeline.ActionMove, true
	case zoneStartEdge:
		return timeline.ActionResizeStart, true
	case zoneEndEdge:
		return timeline.ActionResizeEnd, true
	}
	return "", false
}

// playheadCell returns the column the playhead occupies
func playheadCell(t, total float64, width int) int {
	if width <= 0 {
		return 0
	}
	col := int(timeline.Position(t, total) / 100 * float64(width))
	if col >= width {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}
