package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/scrub/internal/player"
)

// cellRect is one feed surface's screen slot in terminal cells
type cellRect struct {
	x, y, w, h int
	position   int
}

// gridLayout computes the slot rectangles for the current arrangement inside
// a region of the given size. Tri puts two cells on top and one double-wide
// below. The same rectangles drive painting and click routing.
func gridLayout(c *player.Coordinator, width, height int) []cellRect {
	positions := c.VisiblePositions()
	switch c.Arrangement() {
	case player.ArrangementSplit:
		half := width / 2
		return []cellRect{
			{0, 0, half, height, positions[0]},
			{half, 0, width - half, height, positions[1]},
		}
	case player.ArrangementTri:
		half := width / 2
		top := height / 2
		return []cellRect{
			{0, 0, half, top, positions[0]},
			{half, 0, width - half, top, positions[1]},
			{0, top, width, height - top, positions[2]},
		}
	case player.ArrangementQuad:
		half := width / 2
		top := height / 2
		return []cellRect{
			{0, 0, half, top, positions[0]},
			{half, 0, width - half, top, positions[1]},
			{0, top, half, height - top, positions[2]},
			{half, top, width - half, height - top, positions[3]},
		}
	default:
		return []cellRect{{0, 0, width, height, positions[0]}}
	}
}

// positionAt routes a click inside the grid region to a feed position.
// Returns -1 for dead space.
func positionAt(rects []cellRect, x, y int) int {
	for _, r := range rects {
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return r.position
		}
	}
	return -1
}

// renderGrid paints the feed surfaces for the current arrangement. Surfaces
// are mock content: a labeled box standing in for the video element.
func renderGrid(c *player.Coordinator, width, height int, overlays string) string {
	rects := gridLayout(c, width, height)

	rendered := make(map[int]string, len(rects))
	for _, r := range rects {
		rendered[r.position] = renderSurface(c, r, overlays)
	}

	switch c.Arrangement() {
	case player.ArrangementSplit:
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered[rects[0].position], rendered[rects[1].position])
	case player.ArrangementTri:
		top := lipgloss.JoinHorizontal(lipgloss.Top, rendered[rects[0].position], rendered[rects[1].position])
		return lipgloss.JoinVertical(lipgloss.Left, top, rendered[rects[2].position])
	case player.ArrangementQuad:
		top := lipgloss.JoinHorizontal(lipgloss.Top, rendered[rects[0].position], rendered[rects[1].position])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, rendered[rects[2].position], rendered[rects[3].position])
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	default:
		return rendered[rects[0].position]
	}
}

func renderSurface(c *player.Coordinator, r cellRect, overlays string) string {
	feed := c.FeedAt(r.position)
	label := player.FeedLabels[feed]

	var lines []string
	lines = append(lines, feedLabelStyle.Render(label))
	if r.position == c.Active() {
		badge := "ACTIVE"
		if c.SurfaceMuted(r.position) {
			badge += " · MUTED"
		}
		lines = append(lines, feedLabelStyle.Render(badge))
	} else {
		lines = append(lines, feedLabelStyle.Render("muted"))
	}
	if overlays != "" && r.position == c.Active() {
		lines = append(lines, feedLabelStyle.Render(overlays))
	}
	if c.SwapSource() == r.position {
		lines = append(lines, feedLabelStyle.Render("swap from here..."))
	}

	style := feedCellStyle
	if r.position == c.Active() {
		style = feedActiveStyle
	}
	if c.Swapping(r.position) {
		style = feedSwapStyle
	}
	return style.Width(r.w - 2).Height(r.h - 2).Render(strings.Join(lines, "\n"))
}

// renderTransport is the one-line control strip under the grid
func renderTransport(c *player.Coordinator) string {
	state := "▶ playing"
	if !c.Playing() {
		state = "⏸ paused"
	}
	audio := fmt.Sprintf("vol %d%%", int(c.Volume()*100))
	if c.Muted() {
		audio = "muted"
	}
	return helpStyle.Render(state+"   "+audio+"   ") +
		timecodeStyle.Render(Clock(c.CurrentTime())+" / "+Clock(c.Duration()))
}
