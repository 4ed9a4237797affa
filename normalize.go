package spritesheet

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Normalize re-renders every sanitized cell onto a shared transparent canvas
// with its detected content centered. The canvas size is the maximum content
// extent across all cells plus FramePad on every side, so no frame clips and
// all frames share identical dimensions, which downstream encoders rely on.
// Centering, not just cropping, is what removes pose-to-pose jitter during
// playback. Cells with no content keep their position as fully transparent
// frames to preserve frame count and timing; when no cell has content at
// all, Normalize returns nil to signal total extraction failure.
func Normalize(cells []*image.NRGBA, opt Options) []*image.NRGBA {
	bounds := make([]image.Rectangle, len(cells))
	present := make([]bool, len(cells))
	maxW, maxH := 0, 0
	for i, cell := range cells {
		r, ok := ContentBounds(cell, opt)
		if !ok {
			continue
		}
		bounds[i] = r
		present[i] = true
		maxW = max(maxW, r.Dx())
		maxH = max(maxH, r.Dy())
	}
	if maxW == 0 || maxH == 0 {
		return nil
	}

	pad := max(opt.FramePad, 0)
	frameW := maxW + 2*pad
	frameH := maxH + 2*pad

	frames := make([]*image.NRGBA, len(cells))
	for i, cell := range cells {
		frame := image.NewNRGBA(image.Rect(0, 0, frameW, frameH))
		if present[i] {
			b := bounds[i]
			x0 := (frameW - b.Dx()) / 2
			y0 := (frameH - b.Dy()) / 2
			draw.Draw(frame, image.Rect(x0, y0, x0+b.Dx(), y0+b.Dy()), cell, b.Min, draw.Src)
		}
		frames[i] = frame
	}

	if opt.MaxFrameSize > 0 && max(frameW, frameH) > opt.MaxFrameSize {
		frames = shrinkFrames(frames, frameW, frameH, opt.MaxFrameSize)
	}
	return frames
}

// shrinkFrames downscales every frame by one shared factor so the sequence
// stays geometrically uniform.
func shrinkFrames(frames []*image.NRGBA, w, h, limit int) []*image.NRGBA {
	scale := float64(limit) / float64(max(w, h))
	outW := max(int(float64(w)*scale+0.5), 1)
	outH := max(int(float64(h)*scale+0.5), 1)
	for i, f := range frames {
		frames[i] = imaging.Resize(f, outW, outH, imaging.Lanczos)
	}
	return frames
}
