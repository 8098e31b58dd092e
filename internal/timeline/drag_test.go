package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// deltaX converts a wanted deltaTime into pointer cells for a given track
func deltaX(deltaTime, total float64, width int) int {
	return int(deltaTime / total * float64(width))
}

func TestDragMoveShiftsBothEnds(t *testing.T) {
	iv := Interval{ID: "p1", Label: "Intra-Op", Start: 300, End: 600}
	d := BeginDrag(KindPhase, iv, ActionMove, 0)

	// width 100 cells over 1000s: 10 cells = 100s
	start, end := d.Update(10, 100, 1000)
	assert.Equal(t, 400.0, start)
	assert.Equal(t, 700.0, end)
}

func TestDragMoveClampsAtLowerBound(t *testing.T) {
	// {start:5,end:15} in a 100s timeline dragged by -20s keeps its
	// duration and pins to zero.
	iv := Interval{ID: "p1", Start: 5, End: 15}
	d := BeginDrag(KindPhase, iv, ActionMove, 100)

	start, end := d.Update(100+deltaX(-20, 100, 100), 100, 100)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 10.0, end)
}

func TestDragMoveClampsAtUpperBound(t *testing.T) {
	iv := Interval{ID: "p1", Start: 80, End: 95}
	d := BeginDrag(KindPhase, iv, ActionMove, 0)

	start, end := d.Update(deltaX(50, 100, 200), 200, 100)
	assert.Equal(t, 85.0, start)
	assert.Equal(t, 100.0, end)
}

func TestResizeEndFloorsAtMinDuration(t *testing.T) {
	// {start:100,end:110} resized by -100s clamps to the 5s floor.
	iv := Interval{ID: "i1", Start: 100, End: 110}
	d := BeginDrag(KindInstrument, iv, ActionResizeEnd, 0)

	start, end := d.Update(deltaX(-100, 1000, 1000), 1000, 1000)
	assert.Equal(t, 100.0, start)
	assert.Equal(t, 105.0, end)
}

func TestResizeStartFloorsAtMinDuration(t *testing.T) {
	iv := Interval{ID: "i1", Start: 100, End: 110}
	d := BeginDrag(KindInstrument, iv, ActionResizeStart, 0)

	start, end := d.Update(deltaX(500, 1000, 1000), 1000, 1000)
	assert.Equal(t, 105.0, start)
	assert.Equal(t, 110.0, end)
}

func TestResizeStartClampsAtZero(t *testing.T) {
	iv := Interval{ID: "i1", Start: 50, End: 200}
	d := BeginDrag(KindInstrument, iv, ActionResizeStart, 500)

	start, end := d.Update(0, 1000, 1000)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 200.0, end)
}

func TestResizeEndClampsAtTotal(t *testing.T) {
	iv := Interval{ID: "i1", Start: 900, End: 950}
	d := BeginDrag(KindInstrument, iv, ActionResizeEnd, 0)

	start, end := d.Update(deltaX(500, 1000, 1000), 1000, 1000)
	assert.Equal(t, 900.0, start)
	assert.Equal(t, 1000.0, end)
}

func TestDragDegenerateGeometryIsNoop(t *testing.T) {
	iv := Interval{ID: "i1", Start: 100, End: 200}
	d := BeginDrag(KindInstrument, iv, ActionMove, 0)

	start, end := d.Update(50, 0, 1000)
	assert.Equal(t, 100.0, start)
	assert.Equal(t, 200.0, end)

	start, end = d.Update(50, 100, 0)
	assert.Equal(t, 100.0, start)
	assert.Equal(t, 200.0, end)
}

// Any sequence of drags must keep every interval within the axis and above
// the minimum duration.
func TestDragSequencePreservesInvariants(t *testing.T) {
	total := 2100.0
	width := 120
	ivs := []Interval{
		{ID: "a", Start: 0, End: 300},
		{ID: "b", Start: 300, End: 1800},
		{ID: "c", Start: 1800, End: 2100},
	}

	steps := []struct {
		id     string
		action Action
		x      int
	}{
		{"a", ActionMove, 200},
		{"b", ActionResizeStart, 119},
		{"b", ActionResizeEnd, -40},
		{"c", ActionMove, -300},
		{"a", ActionResizeEnd, -500},
	}

	for _, step := range steps {
		iv, ok := Find(ivs, step.id)
		if !ok {
			t.Fatalf("lost interval %s", step.id)
		}
		d := BeginDrag(KindPhase, iv, step.action, 60)
		ivs = d.Apply(ivs, step.x, width, total)
	}

	for _, iv := range ivs {
		if iv.Start < 0 || iv.End > total {
			t.Errorf("interval %s escaped axis: [%v,%v]", iv.ID, iv.Start, iv.End)
		}
		if iv.Duration() < MinDuration {
			t.Errorf("interval %s below minimum duration: %v", iv.ID, iv.Duration())
		}
	}
}

func TestApplyOnlyTouchesDraggedInterval(t *testing.T) {
	ivs := []Interval{
		{ID: "a", Start: 0, End: 300},
		{ID: "b", Start: 300, End: 1800},
	}
	d := BeginDrag(KindPhase, ivs[0], ActionMove, 0)
	out := d.Apply(ivs, 10, 100, 2100)

	assert.Equal(t, 300.0, out[1].Start)
	assert.Equal(t, 1800.0, out[1].End)
	assert.NotEqual(t, 0.0, out[0].Start)
}

func TestApplyUnknownIDIsNoop(t *testing.T) {
	ivs := []Interval{{ID: "a", Start: 0, End: 300}}
	d := &DragState{Kind: KindPhase, ID: "gone", Action: ActionMove}
	assert.Equal(t, ivs, d.Apply(ivs, 10, 100, 2100))
}
