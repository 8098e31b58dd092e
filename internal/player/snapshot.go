package player

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
)

// ErrNoFrame is returned when the active surface has no drawable frame to
// capture. Callers surface it as a toast; it must never escalate to a panic.
var ErrNoFrame = errors.New("active surface has no drawable frame")

// snapshot canvas dimensions, HD by convention
const (
	snapshotWidth  = 1920
	snapshotHeight = 1080
)

// CaptureSnapshot renders the active surface's current frame to an offscreen
// bitmap and returns it PNG-encoded. Image-backed sources draw directly;
// sources without a decodable frame (the mock "video" feeds) yield ErrNoFrame.
func (c *Coordinator) CaptureSnapshot() ([]byte, error) {
	if c.active >= len(c.sources) {
		return nil, ErrNoFrame
	}
	source := c.sources[c.active]
	if !isImageSource(source) {
		return nil, ErrNoFrame
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open frame source: %w", err)
	}
	defer f.Close()

	frame, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame source: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, snapshotWidth, snapshotHeight))
	draw.Draw(canvas, canvas.Bounds(), frame, frame.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

func isImageSource(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}
