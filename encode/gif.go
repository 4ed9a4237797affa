// Package encode packages an extracted frame sequence into distributable
// formats: a looping animated GIF, a looping animated PNG and a zip archive
// of numbered stills. All encoders assume the frames share identical
// dimensions, which the slicing pipeline guarantees.
package encode

import (
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

var errNoFrames = errors.New("encode: no frames")

// framePalette prefixes Plan9 with a fully transparent entry (dropping
// Plan9's last color to stay at 256) so keyed-out backgrounds survive
// quantization.
var framePalette color.Palette

func init() {
	framePalette = append(color.Palette{color.Transparent}, palette.Plan9[:255]...)
}

// GIF assembles the frames into a looping animated GIF at the given playback
// rate. Frames are quantized against a shared palette with one transparent
// index and disposed to background so transparency holds between frames.
func GIF(frames []*image.NRGBA, fps int) *gif.GIF {
	delay := delayCentiseconds(fps)
	out := &gif.GIF{LoopCount: 0} // loop forever
	for _, f := range frames {
		p := image.NewPaletted(f.Bounds(), framePalette)
		draw.Draw(p, p.Rect, f, f.Bounds().Min, draw.Src)
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, gif.DisposalBackground)
	}
	if len(frames) > 0 {
		b := frames[0].Bounds()
		out.Config = image.Config{
			ColorModel: framePalette,
			Width:      b.Dx(),
			Height:     b.Dy(),
		}
	}
	return out
}

func WriteGIF(w io.Writer, frames []*image.NRGBA, fps int) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	return gif.EncodeAll(w, GIF(frames, fps))
}

// delayCentiseconds converts a playback rate to the GIF/APNG delay unit.
// Delays below 2 are clamped: most viewers ignore shorter ones.
func delayCentiseconds(fps int) int {
	if fps <= 0 {
		fps = 10
	}
	d := (100 + fps/2) / fps
	if d < 2 {
		d = 2
	}
	return d
}
