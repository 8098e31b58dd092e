package syncbus

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one window's handle on a named channel. Publish is fire-and-
// forget; envelopes from other members arrive on Messages until the channel
// is closed. There is no reconnect: a dead hub means a silently idle client.
type Client struct {
	conn     *websocket.Conn
	messages chan Envelope

	mu     sync.Mutex
	closed bool
}

// Dial joins the named channel on the hub at addr (host:port)
func Dial(addr, channel string) (*Client, error) {
	url := fmt.Sprintf("ws://%s/channel/%s", addr, channel)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("join channel %s: %w", channel, err)
	}

	c := &Client{
		conn:     conn,
		messages: make(chan Envelope, 64),
	}
	go c.readLoop()
	return c, nil
}

// Messages returns the stream of envelopes published by other channel
// members. The channel is closed when the connection drops.
func (c *Client) Messages() <-chan Envelope {
	return c.messages
}

// Publish sends an envelope to the channel. Errors are swallowed by design:
// a missing receiver or closed channel is a no-op for the sender.
func (c *Client) Publish(kind string, payload interface{}) {
	env, err := NewEnvelope(kind, payload)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	_ = c.conn.WriteJSON(env)
}

// Close leaves the channel. Safe to call twice.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.conn.Close()
}

func (c *Client) readLoop() {
	defer close(c.messages)
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}
		select {
		case c.messages <- env:
		default:
			// Slow consumer: drop rather than block the socket. The
			// protocol is last-writer-wins with no ordering promise.
		}
	}
}
