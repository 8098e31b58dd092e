package notify

// ChannelNotifier forwards notices onto a buffered channel for a UI to drain.
// Notices are dropped when the channel is full; the UI may lag but never
// blocks a caller.
type ChannelNotifier struct {
	ch chan Notice
}

// NewChannelNotifier creates a channel notifier with the given buffer size
func NewChannelNotifier(buffer int) *ChannelNotifier {
	return &ChannelNotifier{
		ch: make(chan Notice, buffer),
	}
}

// Notices returns the receive side of the channel
func (n *ChannelNotifier) Notices() <-chan Notice {
	return n.ch
}

func (n *ChannelNotifier) Notify(notice Notice) error {
	select {
	case n.ch <- notice:
	default:
	}
	return nil
}

func (n *ChannelNotifier) Close() error {
	close(n.ch)
	return nil
}
