package export

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabe/scrub/internal/eventlog"
	"github.com/gabe/scrub/internal/project"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "scrub-export")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	store, err := NewStore(dir)
	require.NoError(t, err)

	state := project.Seed()
	state = state.WithNote(project.NewNote("good exposure here", "Dr. Vance", 412))

	path, err := store.Write(state)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	snap, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, state.Case.ID, snap.State.Case.ID)
	assert.Len(t, snap.State.Notes, 1)
	assert.Equal(t, "good exposure here", snap.State.Notes[0].Text)
	assert.Len(t, snap.State.Phases, len(state.Phases))
	assert.False(t, snap.ExportedAt.IsZero())
}

func TestAuditLogAppend(t *testing.T) {
	dir, err := os.MkdirTemp("", "scrub-audit")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	audit, err := NewAuditLog(dir)
	require.NoError(t, err)

	first := eventlog.NewEvent("Incision", eventlog.TypeMilestone, eventlog.CategoryIntraOp, 100, 100)
	second := eventlog.NewEvent("Suction", eventlog.TypeInstrument, eventlog.CategoryIntraOp, 150, 210)
	require.NoError(t, audit.Append(first))
	require.NoError(t, audit.Append(second))

	events, err := audit.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Incision", events[0].Label)
	assert.Equal(t, "Suction", events[1].Label)
	assert.Equal(t, first.ID, events[0].ID)
}

func TestAuditLogEmptyWhenMissing(t *testing.T) {
	dir, err := os.MkdirTemp("", "scrub-audit")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	audit, err := NewAuditLog(dir)
	require.NoError(t, err)

	events, err := audit.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}
