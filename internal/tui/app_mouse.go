package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/scrub/internal/timeline"
)

// timelineGutter is the label column width to the left of the tracks
const timelineGutter = 12

// geometry is the vertical screen layout, recomputed from the window size so
// painting and click routing can never disagree.
type geometry struct {
	gridTop, gridHeight int
	transportRow        int
	phaseRow            int
	instTop, instRows   int
	axisRow             int
	contextRow          int
	loggerTop           int
	feedTop             int
}

func (m Model) geometry() geometry {
	var g geometry
	g.gridTop = 2
	g.gridHeight = m.height / 3
	if g.gridHeight < 8 {
		g.gridHeight = 8
	}
	g.transportRow = g.gridTop + g.gridHeight
	g.phaseRow = g.transportRow + 1

	g.instTop = g.phaseRow + 1
	g.instRows = 1
	if m.tl.Expanded {
		g.instRows = laneCount(m.tl.VisibleInstruments(m.hist.State().Instruments))
	}
	g.axisRow = g.instTop + g.instRows
	g.contextRow = g.axisRow + 1
	g.loggerTop = g.contextRow + 1
	g.feedTop = g.loggerTop + 2
	return g
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.geometry()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.leftPress(msg.X, msg.Y, g), nil
		case tea.MouseButtonRight:
			return m.rightPress(msg.X, msg.Y, g), nil
		case tea.MouseButtonWheelUp:
			if m.onTimeline(msg.Y, g) {
				m.tl.ScrollBy(-4)
			}
		case tea.MouseButtonWheelDown:
			if m.onTimeline(msg.Y, g) {
				m.tl.ScrollBy(4)
			}
		}

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.dragMotion(msg.X)
		}

	case tea.MouseActionRelease:
		if m.drag != nil {
			return m.dragRelease(), nil
		}
	}
	return m, nil
}

func (m Model) onTimeline(y int, g geometry) bool {
	return y >= g.phaseRow && y < g.axisRow
}

func (m Model) leftPress(x, y int, g geometry) Model {
	double := time.Since(m.lastClick) < doubleClickWindow && x == m.lastClickX && y == m.lastClickY
	m.lastClick = time.Now()
	m.lastClickX, m.lastClickY = x, y

	// feed grid
	if y >= g.gridTop && y < g.gridTop+g.gridHeight {
		rects := gridLayout(m.coord, m.width, g.gridHeight)
		if pos := positionAt(rects, x, y-g.gridTop); pos >= 0 {
			m.coord.ClickView(pos)
		}
		return m
	}

	// timeline tracks
	if m.onTimeline(y, g) && x >= timelineGutter {
		return m.timelinePress(x, y, g, double)
	}

	// merged feed rows
	if y >= g.feedTop && m.tab == tabFeed {
		row := y - g.feedTop
		items := mergedFeed(m.hist.State().Events, m.hist.State().Notes)
		if row < len(items) {
			m.feedSelected = row
			m.coord.SeekTime(items[row].time)
			m.broadcastTime()
		}
	}
	return m
}

// timelinePress starts a drag, or seeks on a double press. A press landing on
// a bar never falls through to the track's seek.
func (m Model) timelinePress(x, y int, g geometry, double bool) Model {
	contentX := m.tl.ContentX(x - timelineGutter)
	width := m.tl.TrackWidth()
	total := m.hist.State().TotalDuration()

	kind := timeline.KindInstrument
	if y == g.phaseRow {
		kind = timeline.KindPhase
	}
	collection := m.trackCollection(kind, y, g)

	iv, zone := hitTest(collection, contentX, width, total)
	if zone == zoneNone {
		// empty track space: seek to the pressed time
		m.coord.SeekTime(timeline.TimeAt(contentX, width, total))
		m.broadcastTime()
		return m
	}

	if double {
		m.drag = nil
		m.dragPreview = nil
		m.coord.SeekTime(iv.Start)
		m.broadcastTime()
		return m
	}

	action, ok := dragAction(zone)
	if !ok {
		return m
	}
	m.drag = timeline.BeginDrag(kind, iv, action, contentX)
	m.lastX = contentX
	m.dragPreview = m.baseCollection(kind)
	return m
}

// trackCollection is the interval list under a track row, lane-filtered when
// the instrument track is expanded.
func (m Model) trackCollection(kind timeline.Kind, y int, g geometry) []timeline.Interval {
	if kind == timeline.KindPhase {
		return m.hist.State().Phases
	}
	visible := m.tl.VisibleInstruments(m.hist.State().Instruments)
	if !m.tl.Expanded {
		return visible
	}
	lane := y - g.instTop
	var out []timeline.Interval
	for _, iv := range visible {
		if iv.Track%6 == lane {
			out = append(out, iv)
		}
	}
	return out
}

func (m Model) baseCollection(kind timeline.Kind) []timeline.Interval {
	if kind == timeline.KindPhase {
		return m.hist.State().Phases
	}
	return m.hist.State().Instruments
}

// dragMotion updates the live preview from the pointer column. In-flight
// frames never touch history.
func (m *Model) dragMotion(x int) {
	contentX := m.tl.ContentX(x - timelineGutter)
	m.lastX = contentX
	total := m.hist.State().TotalDuration()
	m.dragPreview = m.drag.Apply(m.baseCollection(m.drag.Kind), contentX, m.tl.TrackWidth(), total)
}

// dragRelease commits the whole gesture as one history entry
func (m Model) dragRelease() Model {
	total := m.hist.State().TotalDuration()
	final := m.drag.Apply(m.baseCollection(m.drag.Kind), m.lastX, m.tl.TrackWidth(), total)

	if m.drag.Kind == timeline.KindPhase {
		m.hist.Set(m.hist.State().WithPhases(final))
	} else {
		m.hist.Set(m.hist.State().WithInstruments(final))
	}
	m.drag = nil
	m.dragPreview = nil
	m.broadcastState()
	return m
}

// rightPress opens the context readout for the bar under the pointer
func (m Model) rightPress(x, y int, g geometry) Model {
	if !m.onTimeline(y, g) || x < timelineGutter {
		m.hasContext = false
		return m
	}
	contentX := m.tl.ContentX(x - timelineGutter)
	total := m.hist.State().TotalDuration()

	kind := timeline.KindInstrument
	if y == g.phaseRow {
		kind = timeline.KindPhase
	}
	iv, zone := hitTest(m.trackCollection(kind, y, g), contentX, m.tl.TrackWidth(), total)
	if zone == zoneNone {
		m.hasContext = false
		return m
	}
	m.contextIV = iv
	m.hasContext = true
	return m
}
