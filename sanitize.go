package spritesheet

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Sanitize returns a cleaned copy of a cell raster. A fixed margin along all
// four borders is cleared to transparency: adjacent poses are occasionally
// drawn slightly oversized and bleed a sliver (a foot, a hand) across the
// nominal cell boundary, and shaving the border costs far less content than
// those artifacts would. With RemoveBackground set, background-colored
// pixels are keyed out as well: against the estimated sheet background when
// key is non-nil, otherwise by the near-white threshold. Without background
// removal the operation is idempotent.
func Sanitize(cell *image.NRGBA, opt Options, key *BackgroundKey) *image.NRGBA {
	dst := imaging.Clone(cell)
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()

	m := max(opt.EdgeShave, 0)
	for y := range h {
		row := dst.PixOffset(0, y)
		if y < m || y >= h-m {
			for x := range w {
				dst.Pix[row+x*4+3] = 0
			}
			continue
		}
		for x := range w {
			if x >= m && x < w-m {
				continue
			}
			dst.Pix[row+x*4+3] = 0
		}
	}

	if !opt.RemoveBackground {
		return dst
	}
	if key != nil {
		for i := 0; i+3 < len(dst.Pix); i += 4 {
			if dst.Pix[i+3] == 0 {
				continue
			}
			c := colorful.Color{
				R: float64(dst.Pix[i]) / 255.0,
				G: float64(dst.Pix[i+1]) / 255.0,
				B: float64(dst.Pix[i+2]) / 255.0,
			}
			if c.DistanceLab(key.Color) <= key.MaxDistance {
				dst.Pix[i+3] = 0
			}
		}
		return dst
	}
	t := opt.KeyThreshold
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		if dst.Pix[i] > t && dst.Pix[i+1] > t && dst.Pix[i+2] > t {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}
