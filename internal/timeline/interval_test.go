package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	assert.Equal(t, 0.0, Position(0, 2100))
	assert.Equal(t, 100.0, Position(2100, 2100))
	assert.Equal(t, 50.0, Position(1050, 2100))

	// Zero total must not divide
	assert.Equal(t, 0.0, Position(500, 0))
}

func TestPositionMonotonic(t *testing.T) {
	total := 2100.0
	prev := -1.0
	for ts := 0.0; ts <= total; ts += 37.5 {
		p := Position(ts, total)
		if p < prev {
			t.Fatalf("Position not monotonic: Position(%v)=%v < %v", ts, p, prev)
		}
		prev = p
	}
}

func TestTimeAt(t *testing.T) {
	assert.Equal(t, 0.0, TimeAt(10, 0, 2100))
	assert.Equal(t, 0.0, TimeAt(10, 100, 0))
	assert.Equal(t, 1050.0, TimeAt(50, 100, 2100))
	assert.Equal(t, 0.0, TimeAt(-5, 100, 2100))
	assert.Equal(t, 2100.0, TimeAt(200, 100, 2100))
}

func TestReplaceKeepsOrder(t *testing.T) {
	a := NewInterval("Pre-Op", 0, 300, "#94a3b8")
	b := NewInterval("Intra-Op", 300, 1800, "#3b82f6")
	c := NewInterval("Post-Op", 1800, 2100, "#22c55e")

	changed := b
	changed.Start = 400
	out := Replace([]Interval{a, b, c}, b.ID, changed)

	assert.Len(t, out, 3)
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, 400.0, out[1].Start)
	assert.Equal(t, c.ID, out[2].ID)
}

func TestFind(t *testing.T) {
	a := NewInterval("Scalpel", 120, 180, "#a855f7")
	got, ok := Find([]Interval{a}, a.ID)
	assert.True(t, ok)
	assert.Equal(t, "Scalpel", got.Label)

	_, ok = Find([]Interval{a}, "missing")
	assert.False(t, ok)
}
