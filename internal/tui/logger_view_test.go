package tui

import (
	"testing"

	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/project"
)

func TestMergedFeedReverseChronological(t *testing.T) {
	events := []eventlog.Event{
		eventlog.NewEvent("Incision", eventlog.TypeMilestone, eventlog.CategoryIntraOp, 100, 110),
		eventlog.NewEvent("Closure", eventlog.TypeMilestone, eventlog.CategoryIntraOp, 900, 950),
	}
	notes := []project.Note{
		project.NewNote("mid-case note", "Dr. V", 500),
	}

	items := mergedFeed(events, notes)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].event == nil || items[0].event.Label != "Closure" {
		t.Errorf("newest item first, got %+v", items[0])
	}
	if items[1].note == nil || items[1].note.Text != "mid-case note" {
		t.Errorf("note should sort by its time, got %+v", items[1])
	}
	if items[2].event == nil || items[2].event.Label != "Incision" {
		t.Errorf("oldest item last, got %+v", items[2])
	}
}

func TestMergedFeedTieKeepsEventFirst(t *testing.T) {
	events := []eventlog.Event{
		eventlog.NewEvent("Suction", eventlog.TypeInstrument, eventlog.CategoryIntraOp, 500, 510),
	}
	notes := []project.Note{
		project.NewNote("same moment", "Dr. V", 500),
	}
	items := mergedFeed(events, notes)
	if items[0].event == nil {
		t.Error("on a time tie the event should precede the note")
	}
}

func TestFeedItemID(t *testing.T) {
	ev := eventlog.NewEvent("Incision", eventlog.TypeMilestone, eventlog.CategoryIntraOp, 1, 2)
	note := project.NewNote("n", "a", 3)

	items := mergedFeed([]eventlog.Event{ev}, []project.Note{note})
	for _, it := range items {
		if it.ID() == "" {
			t.Error("feed items must carry the underlying id")
		}
	}
}

func TestRenderFeedEmpty(t *testing.T) {
	out := renderFeed(nil, 0, 0, 10)
	if out == "" {
		t.Error("empty feed should render a placeholder")
	}
}
