package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/project"
)

// highlightWindow is how close to the playhead a feed item must be to light
// up, in seconds.
const highlightWindow = 5.0

// feedItem is one row of the merged log: an event or a note
type feedItem struct {
	time  float64
	event *eventlog.Event
	note  *project.Note
}

// ID returns the underlying item's id
func (it feedItem) ID() string {
	if it.event != nil {
		return it.event.ID
	}
	return it.note.ID
}

// mergedFeed interleaves events and notes reverse-chronologically. Ties keep
// events before notes.
func mergedFeed(events []eventlog.Event, notes []project.Note) []feedItem {
	items := make([]feedItem, 0, len(events)+len(notes))
	for i := range events {
		items = append(items, feedItem{time: events[i].Start, event: &events[i]})
	}
	for i := range notes {
		items = append(items, feedItem{time: notes[i].Time, note: &notes[i]})
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].time > items[b].time
	})
	return items
}

// renderFeed paints the merged list. Items within the highlight window of the
// playhead light up; the selected row carries the cursor.
func renderFeed(items []feedItem, playhead float64, selected, limit int) string {
	if len(items) == 0 {
		return helpStyle.Render("no events logged yet")
	}
	if limit > len(items) {
		limit = len(items)
	}

	var b strings.Builder
	for i := 0; i < limit; i++ {
		it := items[i]
		line := renderFeedItem(it)

		near := it.time >= playhead-highlightWindow && it.time <= playhead+highlightWindow
		switch {
		case i == selected:
			line = selectedStyle.Render("> " + line)
		case near:
			line = highlightStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		if i < limit-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderFeedItem(it feedItem) string {
	if it.event != nil {
		ev := it.event
		meta := string(ev.Type)
		if ev.End > ev.Start {
			meta += " · " + DurationLabel(ev.End-ev.Start)
		}
		line := eventMetaStyle.Render(Clock(ev.Start)+" ") +
			eventLabelStyle.Render(ev.Label) +
			eventMetaStyle.Render("  "+meta)
		if tags := eventlog.Tags(ev.Notes); len(tags) > 0 {
			line += "  " + tagStyle.Render(strings.Join(tags, " "))
		}
		return line
	}
	n := it.note
	line := eventMetaStyle.Render(Clock(n.Time)+" ") +
		eventLabelStyle.Render(n.Text) +
		eventMetaStyle.Render("  note · "+n.Author)
	if n.SnapshotRef != "" {
		line += eventMetaStyle.Render(" 📷")
	}
	return line
}

// renderRecorder paints the start/stop/confirm strip
func renderRecorder(rec *eventlog.Recorder, labelInput string, cat eventlog.Category, currentTime float64) string {
	switch rec.Phase() {
	case eventlog.PhaseRecording:
		elapsed := currentTime - rec.StartTime()
		return recordingStyle.Render("● REC "+DurationLabel(elapsed)) +
			helpStyle.Render("  label: ") + labelInput +
			helpStyle.Render("  [e] stop")
	case eventlog.PhasePending:
		p := rec.Pending()
		out := pendingStyle.Render("pending: "+p.Label) +
			eventMetaStyle.Render("  "+Clock(p.Start)+" to "+Clock(p.End))
		if w := rec.Warning(); w != "" {
			out += "\n" + guardrailStyle.Render("⚠ "+w+"  [enter] commit anyway  [esc] discard")
		} else {
			out += helpStyle.Render("  [enter] commit  [esc] discard")
		}
		return out
	default:
		return helpStyle.Render("[e] start recording · phase " + string(cat))
	}
}

// renderCondensed paints the grouped read-only view of the log
func renderCondensed(groups []eventlog.Group) string {
	if len(groups) == 0 {
		return helpStyle.Render("nothing to condense")
	}
	var b strings.Builder
	for i, g := range groups {
		line := eventMetaStyle.Render(Clock(g.Start)+" ") + eventLabelStyle.Render(g.Label)
		if g.Count > 1 {
			line += eventMetaStyle.Render(fmt.Sprintf("  ×%d · total %s", g.Count, DurationLabel(g.TotalDuration)))
		} else {
			line += eventMetaStyle.Render("  " + DurationLabel(g.TotalDuration))
		}
		b.WriteString("  " + line)
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMacros paints both macro libraries with run hotkeys
func renderMacros(personal, team []eventlog.Macro) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Macros") + "\n")
	idx := 1
	for _, m := range personal {
		b.WriteString(fmt.Sprintf("  %s %s (%d steps)\n",
			keyStyle.Render(fmt.Sprintf("[%d]", idx)), m.Name, len(m.Labels)))
		idx++
	}
	for _, m := range team {
		b.WriteString(fmt.Sprintf("  %s %s (%d steps) · team\n",
			keyStyle.Render(fmt.Sprintf("[%d]", idx)), m.Name, len(m.Labels)))
		idx++
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderSuggestions paints the phase suggestions and next-step hints
func renderSuggestions(cat eventlog.Category, committed []eventlog.Event) string {
	var parts []string
	if next := eventlog.NextSteps(committed); len(next) > 0 {
		parts = append(parts, helpStyle.Render("next: ")+eventLabelStyle.Render(strings.Join(next, ", ")))
	}
	if sugg := eventlog.Suggestions(cat); len(sugg) > 0 {
		n := len(sugg)
		if n > 4 {
			n = 4
		}
		parts = append(parts, helpStyle.Render("common: ")+eventMetaStyle.Render(strings.Join(sugg[:n], ", ")))
	}
	return strings.Join(parts, "\n")
}
