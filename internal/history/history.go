// Package history wraps a state value in a linear undo/redo stack.
package history

import "encoding/json"

// History tracks past and future versions of a single state value. All
// mutation of the wrapped state must go through Set for undo to stay coherent.
type History[T any] struct {
	state  T
	past   []T
	future []T
}

// New creates a history seeded with the initial state and empty stacks
func New[T any](initial T) *History[T] {
	return &History[T]{state: initial}
}

// State returns the current state value
func (h *History[T]) State() T {
	return h.state
}

// Set adopts a new state. A candidate deep-equal to the current state is
// dropped silently with no history entry. A real change pushes the current
// state onto the past and discards the entire redo branch.
func (h *History[T]) Set(next T) {
	if deepEqual(h.state, next) {
		return
	}
	h.past = append(h.past, h.state)
	h.future = nil
	h.state = next
}

// Undo steps back one entry; no-op when the past is empty
func (h *History[T]) Undo() {
	if len(h.past) == 0 {
		return
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]T{h.state}, h.future...)
	h.state = prev
}

// Redo steps forward one entry; no-op when the future is empty
func (h *History[T]) Redo() {
	if len(h.future) == 0 {
		return
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.state)
	h.state = next
}

// CanUndo reports whether an undo would change state
func (h *History[T]) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether a redo would change state
func (h *History[T]) CanRedo() bool {
	return len(h.future) > 0
}

// Depth returns the number of undoable entries
func (h *History[T]) Depth() int {
	return len(h.past)
}

// deepEqual compares two values by their JSON serialization. The wrapped
// state is plain data, so serialization equality is structural equality.
func deepEqual[T any](a, b T) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ja) == string(jb)
}
