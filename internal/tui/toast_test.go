package tui

import "testing"

func TestToastQueueOrder(t *testing.T) {
	queue := NewToastQueue()
	if _, ok := queue.Peek(); ok {
		t.Error("expected empty queue")
	}

	queue.Push(Toast{Message: "first"})
	queue.Push(Toast{Message: "second", Level: ToastWarn})

	if queue.Len() != 2 {
		t.Errorf("expected 2 items, got %d", queue.Len())
	}

	item, ok := queue.Pop()
	if !ok || item.Message != "first" {
		t.Errorf("expected first toast, got %+v", item)
	}
	item, ok = queue.Pop()
	if !ok || item.Message != "second" || item.Level != ToastWarn {
		t.Errorf("expected second toast, got %+v", item)
	}
	if _, ok := queue.Pop(); ok {
		t.Error("expected empty queue after draining")
	}
}
