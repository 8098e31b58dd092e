package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type doc struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func TestSetUndoRedo(t *testing.T) {
	h := New(doc{Title: "one"})

	h.Set(doc{Title: "two"})
	assert.Equal(t, "two", h.State().Title)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Undo()
	assert.Equal(t, "one", h.State().Title)
	assert.True(t, h.CanRedo())

	h.Redo()
	assert.Equal(t, "two", h.State().Title)
	assert.False(t, h.CanRedo())
}

func TestSetNoopDoesNotGrowPast(t *testing.T) {
	h := New(doc{Title: "one", Tags: []string{"a"}})

	h.Set(doc{Title: "one", Tags: []string{"a"}})
	assert.Equal(t, 0, h.Depth())
	assert.False(t, h.CanUndo())
}

func TestSetClearsFuture(t *testing.T) {
	h := New(doc{Title: "one"})
	h.Set(doc{Title: "two"})
	h.Set(doc{Title: "three"})
	h.Undo()
	h.Undo()
	assert.True(t, h.CanRedo())

	// A new change discards the redo branch entirely
	h.Set(doc{Title: "fork"})
	assert.False(t, h.CanRedo())
	h.Undo()
	assert.Equal(t, "one", h.State().Title)
}

func TestUndoRedoEmptyStacksAreNoops(t *testing.T) {
	h := New(doc{Title: "one"})
	h.Undo()
	assert.Equal(t, "one", h.State().Title)
	h.Redo()
	assert.Equal(t, "one", h.State().Title)
}

func TestUndoDepthMatchesChanges(t *testing.T) {
	h := New(doc{})
	for i := 0; i < 5; i++ {
		h.Set(doc{Title: string(rune('a' + i))})
	}
	assert.Equal(t, 5, h.Depth())

	for h.CanUndo() {
		h.Undo()
	}
	assert.Equal(t, doc{}, h.State())
}
