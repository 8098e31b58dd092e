package player

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFrame(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{R: 255, A: 255})
	}
	path := filepath.Join(dir, "frame.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestCaptureSnapshotFromImageSource(t *testing.T) {
	src := writeTestFrame(t, t.TempDir())
	c := New([]string{src})

	data, err := c.CaptureSnapshot()
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, snapshotWidth, decoded.Bounds().Dx())
	assert.Equal(t, snapshotHeight, decoded.Bounds().Dy())
}

func TestCaptureSnapshotNoDrawableFrame(t *testing.T) {
	c := New([]string{"rtsp://cam/stream1"})
	_, err := c.CaptureSnapshot()
	assert.ErrorIs(t, err, ErrNoFrame)
}

func TestCaptureSnapshotNoSourceForActive(t *testing.T) {
	c := New([]string{})
	_, err := c.CaptureSnapshot()
	assert.ErrorIs(t, err, ErrNoFrame)
}

func TestCaptureSnapshotMissingFile(t *testing.T) {
	c := New([]string{filepath.Join(t.TempDir(), "gone.png")})
	_, err := c.CaptureSnapshot()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoFrame)
}
