package encode

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrames(n, w, h int) []*image.NRGBA {
	frames := make([]*image.NRGBA, n)
	for i := range n {
		f := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 2; y < h-2; y++ {
			for x := 2; x < w-2; x++ {
				f.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * i), G: 80, B: 120, A: 255})
			}
		}
		frames[i] = f
	}
	return frames
}

func TestWriteGIF(t *testing.T) {
	frames := testFrames(3, 16, 12)
	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, frames, 8))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, 0, g.LoopCount, "loop forever")
	assert.Equal(t, 16, g.Config.Width)
	assert.Equal(t, 12, g.Config.Height)
	for i, p := range g.Image {
		assert.Equal(t, image.Rect(0, 0, 16, 12), p.Bounds(), "frame %d", i)
		assert.Equal(t, 13, g.Delay[i], "frame %d delay at 8 fps", i)
		assert.Equal(t, byte(gif.DisposalBackground), g.Disposal[i], "frame %d", i)
	}

	// Transparent input pixels stay transparent after quantization.
	_, _, _, a := g.Image[0].At(0, 0).RGBA()
	assert.Zero(t, a)
	_, _, _, a = g.Image[0].At(8, 6).RGBA()
	assert.NotZero(t, a)
}

func TestWriteGIFNoFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteGIF(&buf, nil, 8))
}

func TestWriteArchive(t *testing.T) {
	frames := testFrames(2, 10, 10)
	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, frames))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "frame_000.png", zr.File[0].Name)
	assert.Equal(t, "frame_001.png", zr.File[1].Name)

	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		img, err := png.Decode(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	}
}

func TestWriteAPNG(t *testing.T) {
	frames := testFrames(2, 8, 8)
	path := filepath.Join(t.TempDir(), "anim.png")
	require.NoError(t, WriteAPNG(path, frames, 10))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// The default image of an animated PNG decodes as a plain PNG.
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestDelayCentiseconds(t *testing.T) {
	assert.Equal(t, 13, delayCentiseconds(8))
	assert.Equal(t, 10, delayCentiseconds(10))
	assert.Equal(t, 10, delayCentiseconds(0), "zero rate falls back to 10 fps")
	assert.Equal(t, 2, delayCentiseconds(100), "clamped to the shortest viewer-safe delay")
}
