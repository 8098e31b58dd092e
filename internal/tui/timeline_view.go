package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/scrub/internal/timeline"
)

// zoom bounds for the timeline tracks
const (
	minZoom = 1.0
	maxZoom = 10.0
)

// TimelineView renders the two editable tracks over a shared axis and owns
// their scroll/zoom state. Mouse math and painting share the cell helpers in
// layout.go so a bar is grabbed exactly where it is drawn.
type TimelineView struct {
	Zoom     float64
	Scroll   int
	Expanded bool
	Width    int // viewport width in cells, excluding the label gutter

	// instrument labels hidden by the visibility filter
	hidden map[string]bool
}

// NewTimelineView creates a view at the given zoom
func NewTimelineView(zoom float64, expanded bool) TimelineView {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	return TimelineView{
		Zoom:     zoom,
		Expanded: expanded,
		hidden:   make(map[string]bool),
	}
}

// TrackWidth is the full scrollable width in cells. Zoom scales the track,
// never the bar proportions.
func (v TimelineView) TrackWidth() int {
	w := int(float64(v.Width) * v.Zoom)
	if w < v.Width {
		w = v.Width
	}
	return w
}

// ContentX converts a viewport column to a track cell offset
func (v TimelineView) ContentX(viewportX int) int {
	return v.Scroll + viewportX
}

// ZoomIn steps zoom up one notch and keeps the scroll in range
func (v *TimelineView) ZoomIn() {
	v.Zoom++
	if v.Zoom > maxZoom {
		v.Zoom = maxZoom
	}
	v.clampScroll()
}

// ZoomOut steps zoom down one notch
func (v *TimelineView) ZoomOut() {
	v.Zoom--
	if v.Zoom < minZoom {
		v.Zoom = minZoom
	}
	v.clampScroll()
}

// ScrollBy shifts the viewport horizontally
func (v *TimelineView) ScrollBy(cells int) {
	v.Scroll += cells
	v.clampScroll()
}

func (v *TimelineView) clampScroll() {
	max := v.TrackWidth() - v.Width
	if max < 0 {
		max = 0
	}
	if v.Scroll > max {
		v.Scroll = max
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
}

// ToggleHidden flips the visibility filter for an instrument label
func (v *TimelineView) ToggleHidden(label string) {
	if v.hidden == nil {
		v.hidden = make(map[string]bool)
	}
	v.hidden[label] = !v.hidden[label]
}

// VisibleInstruments filters out instruments hidden by label. Hidden bars are
// excluded from painting and hit testing alike.
func (v TimelineView) VisibleInstruments(instruments []timeline.Interval) []timeline.Interval {
	if len(v.hidden) == 0 {
		return instruments
	}
	out := make([]timeline.Interval, 0, len(instruments))
	for _, iv := range instruments {
		if !v.hidden[iv.Label] {
			out = append(out, iv)
		}
	}
	return out
}

// laneCount is how many rows the expanded instrument track uses
func laneCount(instruments []timeline.Interval) int {
	count := 1
	for _, iv := range instruments {
		if iv.Track+1 > count {
			count = iv.Track + 1
		}
	}
	if count > 6 {
		count = 6
	}
	return count
}

// Render paints both tracks, the playhead and the axis. The preview
// collections carry any in-flight drag so the bar follows the pointer before
// the release commits.
func (v TimelineView) Render(phases, instruments []timeline.Interval, currentTime, total float64) string {
	if v.Width <= 0 {
		return ""
	}
	width := v.TrackWidth()
	visible := v.VisibleInstruments(instruments)
	playhead := playheadCell(currentTime, total, width)

	var rows []string
	rows = append(rows, v.renderTrack("Phases", paintRow(phases, width, total, playhead)))

	if v.Expanded {
		lanes := laneCount(visible)
		for lane := 0; lane < lanes; lane++ {
			var laneIvs []timeline.Interval
			for _, iv := range visible {
				if iv.Track%6 == lane {
					laneIvs = append(laneIvs, iv)
				}
			}
			label := ""
			if lane == 0 {
				label = "Instruments"
			}
			rows = append(rows, v.renderTrack(label, paintRow(laneIvs, width, total, playhead)))
		}
	} else {
		rows = append(rows, v.renderTrack("Instruments", paintRow(visible, width, total, playhead)))
	}

	rows = append(rows, v.renderTrack("", v.axisRow(currentTime, total, width, playhead)))
	return strings.Join(rows, "\n")
}

// renderTrack prefixes the label gutter and clips the row to the viewport
func (v TimelineView) renderTrack(label string, cells []string) string {
	from := v.Scroll
	to := from + v.Width
	if from > len(cells) {
		from = len(cells)
	}
	if to > len(cells) {
		to = len(cells)
	}
	gutter := trackLabelStyle.Render(padRight(label, 12))
	return gutter + strings.Join(cells[from:to], "")
}

// paintRow draws interval bars onto a track bed, overlaying the label text
// and the playhead. Labels are paint only; hit testing never sees them.
func paintRow(intervals []timeline.Interval, width int, total float64, playhead int) []string {
	type cellPaint struct {
		ch    string
		color string
		label bool
	}
	cells := make([]cellPaint, width)
	for i := range cells {
		cells[i] = cellPaint{ch: "░"}
	}

	for _, iv := range intervals {
		start, end := barSpan(iv, width, total)
		for x := start; x < end && x < width; x++ {
			cells[x] = cellPaint{ch: "█", color: iv.Color}
		}
		// overlay the label when the bar can fit it
		if end-start >= len(iv.Label)+2 {
			for i, r := range iv.Label {
				x := start + 1 + i
				if x < end-1 {
					cells[x] = cellPaint{ch: string(r), color: iv.Color, label: true}
				}
			}
		}
	}

	out := make([]string, width)
	for x, c := range cells {
		switch {
		case x == playhead:
			out[x] = playheadStyle.Render("│")
		case c.label:
			out[x] = lipgloss.NewStyle().Background(lipgloss.Color(c.color)).Foreground(bgColor).Render(c.ch)
		case c.color != "":
			out[x] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Background(bgTrackColor).Render(c.ch)
		default:
			out[x] = trackBedStyle.Render(c.ch)
		}
	}
	return out
}

// axisRow draws the time scale with the playhead timecode at its column
func (v TimelineView) axisRow(currentTime, total float64, width, playhead int) []string {
	raw := make([]rune, width)
	for i := range raw {
		raw[i] = ' '
	}
	stamp := []rune(Clock(currentTime))
	at := playhead - len(stamp)/2
	if at < 0 {
		at = 0
	}
	if at+len(stamp) > width {
		at = width - len(stamp)
	}
	for i, r := range stamp {
		if at+i >= 0 && at+i < width {
			raw[at+i] = r
		}
	}

	out := make([]string, width)
	for x, r := range raw {
		out[x] = axisStyle.Render(string(r))
	}
	return out
}

// ContextReadout describes a bar for the right-press inspector: informational
// only, no mutation path.
func ContextReadout(iv timeline.Interval) string {
	return iv.Label + "  " + Clock(iv.Start) + " to " + Clock(iv.End) +
		"  (" + DurationLabel(iv.Duration()) + ")   [,] jump start  [.] jump end"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
