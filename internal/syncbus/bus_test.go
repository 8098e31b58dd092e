package syncbus

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(log.New(io.Discard, "", 0))
	require.NoError(t, h.Start(0))
	t.Cleanup(func() { h.Close() })
	return h
}

func recv(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case env, ok := <-c.Messages():
		if !ok {
			t.Fatal("message stream closed")
		}
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for envelope")
	}
	return Envelope{}
}

func TestBroadcastReachesChannelPeersOnly(t *testing.T) {
	h := startHub(t)

	cockpitA, err := Dial(h.Addr(), ChannelCockpit)
	require.NoError(t, err)
	defer cockpitA.Close()
	cockpitB, err := Dial(h.Addr(), ChannelCockpit)
	require.NoError(t, err)
	defer cockpitB.Close()
	popout, err := Dial(h.Addr(), ChannelEventLog)
	require.NoError(t, err)
	defer popout.Close()

	cockpitA.Publish(KindTimeUpdate, 42.5)

	env := recv(t, cockpitB)
	assert.Equal(t, KindTimeUpdate, env.Type)
	var ts float64
	require.NoError(t, env.Decode(&ts))
	assert.Equal(t, 42.5, ts)

	// The other channel stays silent
	select {
	case env := <-popout.Messages():
		t.Fatalf("event_log channel received cockpit traffic: %v", env.Type)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestSenderDoesNotEchoToItself(t *testing.T) {
	h := startHub(t)

	c, err := Dial(h.Addr(), ChannelCockpit)
	require.NoError(t, err)
	defer c.Close()

	c.Publish(KindSeek, 0.5)

	select {
	case env := <-c.Messages():
		t.Fatalf("sender received its own envelope: %v", env.Type)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestRequestStateRoundTrip(t *testing.T) {
	h := startHub(t)

	owner, err := Dial(h.Addr(), ChannelCockpit)
	require.NoError(t, err)
	defer owner.Close()
	window, err := Dial(h.Addr(), ChannelCockpit)
	require.NoError(t, err)
	defer window.Close()

	// Detached window requests on mount; owner answers with a snapshot
	window.Publish(KindRequestState, nil)
	env := recv(t, owner)
	require.Equal(t, KindRequestState, env.Type)

	owner.Publish(KindSyncState, StateSnapshot{CurrentTime: 120})
	env = recv(t, window)
	require.Equal(t, KindSyncState, env.Type)

	var snap StateSnapshot
	require.NoError(t, env.Decode(&snap))
	assert.Equal(t, 120.0, snap.CurrentTime)
}

func TestPublishAfterCloseIsNoop(t *testing.T) {
	h := startHub(t)

	c, err := Dial(h.Addr(), ChannelCockpit)
	require.NoError(t, err)

	c.Close()
	c.Close() // double close is safe
	c.Publish(KindSeek, 0.1)
}

func TestDialWithoutHubFails(t *testing.T) {
	_, err := Dial("127.0.0.1:1", ChannelCockpit)
	assert.Error(t, err)
}

func TestEnvelopeCodec(t *testing.T) {
	env, err := NewEnvelope(KindUpdateNote, UpdateNotePayload{ID: "n1", Text: "revised"})
	require.NoError(t, err)

	var p UpdateNotePayload
	require.NoError(t, env.Decode(&p))
	assert.Equal(t, "n1", p.ID)
	assert.Equal(t, "revised", p.Text)

	empty, err := NewEnvelope(KindRequestState, nil)
	require.NoError(t, err)
	assert.Nil(t, empty.Payload)
}

func TestAddrDiscoveryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.addr")

	require.NoError(t, WriteAddr(path, "127.0.0.1:39021"))
	addr, err := ReadAddr(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:39021", addr)

	require.NoError(t, RemoveAddr(path))
	_, err = ReadAddr(path)
	assert.True(t, os.IsNotExist(err))

	// Removing a missing file is fine
	require.NoError(t, RemoveAddr(path))
}
