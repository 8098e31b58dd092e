// Package player coordinates up to four mock video feeds behind one shared
// playback clock, one arrangement and one active surface.
package player

// MaxFeeds is the number of camera feeds the coordinator manages
const MaxFeeds = 4

// Arrangement is the visible layout pattern mapping surfaces to screen slots
type Arrangement string

const (
	ArrangementSingle Arrangement = "single"
	ArrangementSplit  Arrangement = "split"
	ArrangementTri    Arrangement = "tri"
	ArrangementQuad   Arrangement = "quad"
)

// DefaultDuration stands in when no feed reports a real duration, in seconds
const DefaultDuration = 7200.0

// FeedLabels names the four logical camera feeds in id order
var FeedLabels = [MaxFeeds]string{"Room View", "Echo Monitor", "Surgical Field", "Instrument Table"}

// Coordinator owns playback state for all feeds. The active surface is the
// sole authority for progress and timecode; every other surface is muted and
// follows seeks.
type Coordinator struct {
	sources  []string
	playing  bool
	muted    bool
	volume   float64
	played   float64 // normalized 0..1
	duration float64

	arrangement Arrangement
	active      int

	// position -> feed id; a feed occupies exactly one position
	feedMapping []int
	// which feeds appear in the 2- and 3-slot arrangements
	splitViews []int
	triViews   []int

	swapSource *int
	swapping   map[int]bool
}

// New creates a coordinator over an ordered list of up to four sources.
// Source content is never validated here; the upload flow owns that.
func New(sources []string) *Coordinator {
	if len(sources) > MaxFeeds {
		sources = sources[:MaxFeeds]
	}
	return &Coordinator{
		sources:     sources,
		volume:      0.8,
		arrangement: ArrangementSingle,
		feedMapping: []int{0, 1, 2, 3},
		splitViews:  []int{0, 1},
		triViews:    []int{0, 1, 2},
		swapping:    make(map[int]bool),
	}
}

// Sources returns the managed source list
func (c *Coordinator) Sources() []string {
	return c.sources
}

// Playing reports whether the shared clock is advancing
func (c *Coordinator) Playing() bool {
	return c.playing
}

// TogglePlay flips play/pause
func (c *Coordinator) TogglePlay() {
	c.playing = !c.playing
}

// Pause stops the shared clock
func (c *Coordinator) Pause() {
	c.playing = false
}

// Muted reports the global mute toggle for the active surface
func (c *Coordinator) Muted() bool {
	return c.muted
}

// ToggleMute flips the active surface's audio
func (c *Coordinator) ToggleMute() {
	c.muted = !c.muted
}

// SurfaceMuted reports whether the surface at a position is audible. Only the
// active surface ever plays audio, and only when not globally muted.
func (c *Coordinator) SurfaceMuted(position int) bool {
	return c.muted || position != c.active
}

// Duration returns the active surface's reported duration, with the mock
// fallback for image-backed feeds.
func (c *Coordinator) Duration() float64 {
	if c.duration == 0 {
		return DefaultDuration
	}
	return c.duration
}

// SetDuration records the duration reported by the active surface
func (c *Coordinator) SetDuration(d float64) {
	c.duration = d
}

// Played returns the normalized playback fraction
func (c *Coordinator) Played() float64 {
	return c.played
}

// CurrentTime returns the shared playhead position in seconds
func (c *Coordinator) CurrentTime() float64 {
	return c.played * c.Duration()
}

// Seek sets the normalized fraction and conceptually propagates it to every
// surface, active or not, so all feeds stay frame-aligned. Idempotent:
// seeking twice to the same fraction changes nothing the second time.
func (c *Coordinator) Seek(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	c.played = fraction
}

// SeekTime seeks to an absolute time in seconds
func (c *Coordinator) SeekTime(t float64) {
	d := c.Duration()
	if d == 0 {
		return
	}
	c.Seek(t / d)
}

// Skip moves the playhead by a signed number of seconds
func (c *Coordinator) Skip(seconds float64) {
	c.SeekTime(c.CurrentTime() + seconds)
}

// Advance moves the simulated clock by dt seconds of wall time while playing.
// The caller drives this from a single ticker; wrapping past the end restarts
// from zero like the mock player does.
func (c *Coordinator) Advance(dt float64) {
	if !c.playing {
		return
	}
	next := c.played + dt/c.Duration()
	if next >= 1 {
		next = 0
	}
	c.played = next
}

// Arrangement returns the current layout pattern
func (c *Coordinator) Arrangement() Arrangement {
	return c.arrangement
}

// SetArrangement switches layout. The pending swap source is cleared; it was
// scoped to the previous arrangement's slots.
func (c *Coordinator) SetArrangement(a Arrangement) {
	c.arrangement = a
	c.swapSource = nil
}

// Active returns the active surface position
func (c *Coordinator) Active() int {
	return c.active
}

// SetActive marks the surface at the position authoritative for progress
func (c *Coordinator) SetActive(position int) {
	if position < 0 || position >= MaxFeeds {
		return
	}
	c.active = position
}

// VisiblePositions lists the feed positions shown by the current arrangement,
// in slot order. Tri renders the third slot double-wide; that is the view's
// concern, not ours.
func (c *Coordinator) VisiblePositions() []int {
	switch c.arrangement {
	case ArrangementSplit:
		return append([]int(nil), c.splitViews...)
	case ArrangementTri:
		return append([]int(nil), c.triViews...)
	case ArrangementQuad:
		return []int{0, 1, 2, 3}
	default:
		return []int{c.active}
	}
}

// FeedAt returns the feed id displayed at a position
func (c *Coordinator) FeedAt(position int) int {
	if position < 0 || position >= len(c.feedMapping) {
		return position
	}
	return c.feedMapping[position]
}

// FeedMapping returns a copy of the position → feed assignment
func (c *Coordinator) FeedMapping() []int {
	return append([]int(nil), c.feedMapping...)
}

// AssignFeed places feed at the given position. If the feed is already shown
// elsewhere the two positions swap contents, so no feed is ever duplicated or
// dropped. Both affected positions are flagged for the swap animation.
func (c *Coordinator) AssignFeed(position, feed int) {
	if position < 0 || position >= len(c.feedMapping) || feed < 0 || feed >= MaxFeeds {
		return
	}
	if c.feedMapping[position] == feed {
		return
	}
	for other, f := range c.feedMapping {
		if f == feed && other != position {
			c.feedMapping[other] = c.feedMapping[position]
			c.swapping[other] = true
			c.swapping[position] = true
			break
		}
	}
	c.feedMapping[position] = feed
}

// SwapSource returns the pending swap origin, or -1 when none
func (c *Coordinator) SwapSource() int {
	if c.swapSource == nil {
		return -1
	}
	return *c.swapSource
}

// InitiateSwap marks a visible position as the swap origin. Selecting a new
// source before completing simply replaces the old one.
func (c *Coordinator) InitiateSwap(position int) {
	p := position
	c.swapSource = &p
}

// ClickView handles a press on a visible surface: with no pending swap it
// selects the active surface, otherwise it exchanges the source and target
// slots within the current arrangement's view-index list. Clicking the source
// itself is a no-op that clears the pending swap.
func (c *Coordinator) ClickView(position int) {
	if c.swapSource == nil {
		c.SetActive(position)
		return
	}
	source := *c.swapSource
	c.swapSource = nil
	if source == position {
		return
	}

	switch c.arrangement {
	case ArrangementSplit:
		swapSlots(c.splitViews, source, position)
	case ArrangementTri:
		swapSlots(c.triViews, source, position)
	}
}

// swapSlots exchanges two feed entries inside a view-index list. Both must be
// present; a half-visible pair leaves the list untouched.
func swapSlots(views []int, a, b int) {
	ai, bi := -1, -1
	for i, v := range views {
		if v == a {
			ai = i
		}
		if v == b {
			bi = i
		}
	}
	if ai == -1 || bi == -1 {
		return
	}
	views[ai], views[bi] = b, a
}

// Swapping reports and clears the animation flag for a position
func (c *Coordinator) Swapping(position int) bool {
	return c.swapping[position]
}

// ClearSwapping resets all swap animation flags
func (c *Coordinator) ClearSwapping() {
	c.swapping = make(map[int]bool)
}

// Volume returns the active surface volume in [0,1]
func (c *Coordinator) Volume() float64 {
	return c.volume
}

// SetVolume clamps and sets the volume; zero also mutes
func (c *Coordinator) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.volume = v
	c.muted = v == 0
}
