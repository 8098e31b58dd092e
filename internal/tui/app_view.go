package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/timeline"
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	g := m.geometry()
	var b strings.Builder

	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(m.renderGridRegion(g) + "\n")
	b.WriteString(renderTransport(m.coord) + "\n")
	b.WriteString(m.renderTimeline() + "\n")
	b.WriteString(m.renderContext() + "\n")
	b.WriteString(m.renderLogger(g) + "\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	c := m.hist.State().Case
	left := titleStyle.Render("scrub") + "  " +
		caseStyle.Render(c.Procedure+" · "+c.Surgeon+" · "+c.Date)
	right := timecodeStyle.Render(Clock(m.coord.CurrentTime()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n" +
		caseStyle.Render("case "+c.ID+" · "+c.Facility)
}

func (m Model) renderGridRegion(g geometry) string {
	overlays := m.overlayLabel()
	if m.zoomActive {
		r := cellRect{0, 0, m.width, g.gridHeight, m.coord.Active()}
		return renderSurface(m.coord, r, overlays)
	}
	return renderGrid(m.coord, m.width, g.gridHeight, overlays)
}

func (m Model) overlayLabel() string {
	var on []string
	if m.showObjects {
		on = append(on, "objects")
	}
	if m.showHeatmap {
		on = append(on, "heatmap")
	}
	if len(on) == 0 {
		return ""
	}
	return "overlays: " + strings.Join(on, ", ")
}

// renderTimeline substitutes the drag preview for the committed collection
// while a gesture is in flight
func (m Model) renderTimeline() string {
	state := m.hist.State()
	phases := state.Phases
	instruments := state.Instruments
	if m.drag != nil && m.dragPreview != nil {
		if m.drag.Kind == timeline.KindPhase {
			phases = m.dragPreview
		} else {
			instruments = m.dragPreview
		}
	}
	return m.tl.Render(phases, instruments, m.coord.CurrentTime(), state.TotalDuration())
}

func (m Model) renderContext() string {
	if !m.hasContext {
		return helpStyle.Render("right-press a bar for details")
	}
	return eventLabelStyle.Render(ContextReadout(m.contextIV))
}

func (m Model) renderLogger(g geometry) string {
	state := m.hist.State()
	var b strings.Builder

	b.WriteString(m.renderTabs() + "\n")
	b.WriteString(renderRecorder(m.rec, m.labelInput.View(), m.category, m.coord.CurrentTime()) + "\n")

	rows := m.height - g.feedTop - 2
	if rows < 3 {
		rows = 3
	}

	switch m.tab {
	case tabCondensed:
		b.WriteString(renderCondensed(eventlog.Condense(state.Events)))
	case tabMacros:
		b.WriteString(renderMacros(m.personal, m.team))
		if m.focus == focusMacro {
			b.WriteString("\n" + m.macroInput.View())
		}
	default:
		items := mergedFeed(state.Events, state.Notes)
		b.WriteString(renderFeed(items, m.coord.CurrentTime(), m.feedSelected, rows))
		if sugg := renderSuggestions(m.category, state.Events); sugg != "" {
			b.WriteString("\n" + sugg)
		}
	}

	if m.focus == focusNote {
		b.WriteString("\n" + helpStyle.Render("note: ") + m.noteInput.View())
	}
	if m.focus == focusEdit {
		b.WriteString("\n" + helpStyle.Render("edit: ") + m.editInput.View())
	}
	if m.focus == focusFilter {
		b.WriteString("\n" + helpStyle.Render("filter: ") + m.filterInput.View())
	}
	return b.String()
}

func (m Model) renderTabs() string {
	names := []string{"Feed", "Condensed", "Macros"}
	parts := make([]string, len(names))
	for i, name := range names {
		if panelTab(i) == m.tab {
			parts[i] = panelTitleStyle.Render("[" + name + "]")
		} else {
			parts[i] = helpStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(parts, " ") + "  " +
		helpStyle.Render("phase: "+string(m.category)+" · undo depth "+strconv.Itoa(m.hist.Depth()))
}

func (m Model) renderFooter() string {
	if toast, ok := m.toasts.Peek(); ok {
		return toast.render()
	}
	return helpStyle.Render("space play · e record · n note · z undo · s snapshot · tab panels · +/- zoom · q quit")
}
