package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignFeedSwaps(t *testing.T) {
	c := New(nil)
	require.Equal(t, []int{0, 1, 2, 3}, c.FeedMapping())

	// Assigning feed 2 to position 0 swaps: position 2 gets the displaced 0
	c.AssignFeed(0, 2)
	assert.Equal(t, []int{2, 1, 0, 3}, c.FeedMapping())
	assert.True(t, c.Swapping(0))
	assert.True(t, c.Swapping(2))
	assert.False(t, c.Swapping(1))

	c.ClearSwapping()
	assert.False(t, c.Swapping(0))
}

func TestAssignFeedNeverDuplicates(t *testing.T) {
	c := New(nil)
	c.AssignFeed(0, 2)
	c.AssignFeed(3, 2)
	c.AssignFeed(1, 1)

	seen := make(map[int]bool)
	for _, f := range c.FeedMapping() {
		assert.False(t, seen[f], "feed %d appears twice", f)
		seen[f] = true
	}
}

func TestAssignFeedSamePositionIsNoop(t *testing.T) {
	c := New(nil)
	c.AssignFeed(1, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, c.FeedMapping())
	assert.False(t, c.Swapping(1))
}

func TestAssignFeedOutOfRangeIgnored(t *testing.T) {
	c := New(nil)
	c.AssignFeed(-1, 2)
	c.AssignFeed(0, 9)
	assert.Equal(t, []int{0, 1, 2, 3}, c.FeedMapping())
}

func TestClickViewSelectsActive(t *testing.T) {
	c := New(nil)
	c.ClickView(2)
	assert.Equal(t, 2, c.Active())
}

func TestSwapByClickInSplit(t *testing.T) {
	c := New(nil)
	c.SetArrangement(ArrangementSplit)
	require.Equal(t, []int{0, 1}, c.VisiblePositions())

	c.InitiateSwap(0)
	assert.Equal(t, 0, c.SwapSource())
	c.ClickView(1)

	assert.Equal(t, []int{1, 0}, c.VisiblePositions())
	assert.Equal(t, -1, c.SwapSource())
}

func TestSwapByClickSameTargetClearsPending(t *testing.T) {
	c := New(nil)
	c.SetArrangement(ArrangementTri)
	c.InitiateSwap(1)
	c.ClickView(1)

	assert.Equal(t, -1, c.SwapSource())
	assert.Equal(t, []int{0, 1, 2}, c.VisiblePositions())
}

func TestSwapSourceReplacedByNewSelection(t *testing.T) {
	c := New(nil)
	c.SetArrangement(ArrangementTri)
	c.InitiateSwap(0)
	c.InitiateSwap(2)
	c.ClickView(1)

	assert.Equal(t, []int{0, 2, 1}, c.VisiblePositions())
}

func TestVisiblePositionsPerArrangement(t *testing.T) {
	c := New(nil)
	assert.Equal(t, []int{0}, c.VisiblePositions())

	c.SetActive(3)
	assert.Equal(t, []int{3}, c.VisiblePositions())

	c.SetArrangement(ArrangementQuad)
	assert.Equal(t, []int{0, 1, 2, 3}, c.VisiblePositions())

	c.SetArrangement(ArrangementTri)
	assert.Equal(t, []int{0, 1, 2}, c.VisiblePositions())
}

func TestOnlyActiveSurfaceAudible(t *testing.T) {
	c := New(nil)
	c.SetActive(1)
	assert.True(t, c.SurfaceMuted(0))
	assert.False(t, c.SurfaceMuted(1))

	c.ToggleMute()
	assert.True(t, c.SurfaceMuted(1))
}

func TestSeekIdempotent(t *testing.T) {
	c := New(nil)
	c.Seek(0.25)
	first := c.Played()
	c.Seek(0.25)
	assert.Equal(t, first, c.Played())
}

func TestSeekClamps(t *testing.T) {
	c := New(nil)
	c.Seek(-0.5)
	assert.Equal(t, 0.0, c.Played())
	c.Seek(1.5)
	assert.Equal(t, 1.0, c.Played())
}

func TestSkipMovesPlayhead(t *testing.T) {
	c := New(nil)
	c.SetDuration(1000)
	c.SeekTime(500)
	c.Skip(5)
	assert.InDelta(t, 505.0, c.CurrentTime(), 1e-9)
	c.Skip(-10)
	assert.InDelta(t, 495.0, c.CurrentTime(), 1e-9)
}

func TestAdvanceOnlyWhilePlaying(t *testing.T) {
	c := New(nil)
	c.SetDuration(100)

	c.Advance(10)
	assert.Equal(t, 0.0, c.Played())

	c.TogglePlay()
	c.Advance(10)
	assert.InDelta(t, 0.1, c.Played(), 1e-9)

	c.Pause()
	c.Advance(10)
	assert.InDelta(t, 0.1, c.Played(), 1e-9)
}

func TestAdvanceWrapsToStart(t *testing.T) {
	c := New(nil)
	c.SetDuration(100)
	c.TogglePlay()
	c.Seek(0.99)
	c.Advance(5)
	assert.Equal(t, 0.0, c.Played())
}

func TestDurationFallbackForImageFeeds(t *testing.T) {
	c := New(nil)
	assert.Equal(t, DefaultDuration, c.Duration())
	c.SetDuration(2100)
	assert.Equal(t, 2100.0, c.Duration())
}

func TestSetVolumeZeroMutes(t *testing.T) {
	c := New(nil)
	c.SetVolume(0)
	assert.True(t, c.Muted())
	c.SetVolume(0.5)
	assert.False(t, c.Muted())
	c.SetVolume(2)
	assert.Equal(t, 1.0, c.Volume())
}

func TestArrangementChangeClearsPendingSwap(t *testing.T) {
	c := New(nil)
	c.SetArrangement(ArrangementSplit)
	c.InitiateSwap(0)
	c.SetArrangement(ArrangementQuad)
	assert.Equal(t, -1, c.SwapSource())
}
