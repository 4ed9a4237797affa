package spritesheet

import (
	"image"
	"math"
)

// Partition splits src into Rows x Cols cell rasters in row-major order,
// always returning exactly that many cells. The grid is laid over the tight
// content bounds of the sheet so surrounding margin does not skew the cells;
// a sheet with no detectable content degrades to slicing the whole raster.
// Cells are cut at fractional offsets with sub-pixel sampling: truncating to
// integers per cell accumulates drift and mis-sizes the last row and column.
func Partition(src *image.NRGBA, grid Grid, opt Options) []*image.NRGBA {
	rows := max(grid.Rows, 1)
	cols := max(grid.Cols, 1)

	area, ok := ContentBounds(src, opt)
	if !ok {
		area = src.Rect
	}
	cellW := float64(area.Dx()) / float64(cols)
	cellH := float64(area.Dy()) / float64(rows)

	cells := make([]*image.NRGBA, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			x0 := float64(area.Min.X) + float64(c)*cellW
			y0 := float64(area.Min.Y) + float64(r)*cellH
			cells = append(cells, subPixelCrop(src, x0, y0, cellW, cellH))
		}
	}
	return cells
}

// subPixelCrop resamples the w x h region of src at fractional offset
// (x0, y0) into a fresh ceil(w) x ceil(h) raster. Rounding up never clips a
// partial pixel of content.
func subPixelCrop(src *image.NRGBA, x0, y0, w, h float64) *image.NRGBA {
	outW := max(int(math.Ceil(w)), 1)
	outH := max(int(math.Ceil(h)), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	sx := w / float64(outW)
	sy := h / float64(outH)
	for y := range outH {
		srcY := y0 + (float64(y)+0.5)*sy - 0.5
		for x := range outW {
			srcX := x0 + (float64(x)+0.5)*sx - 0.5
			off := dst.PixOffset(x, y)
			sampleBilinear(src, srcX, srcY, dst.Pix[off:off+4])
		}
	}
	return dst
}

// sampleBilinear writes the bilinearly interpolated NRGBA value of src at the
// fractional position (fx, fy) into out. Samples outside the raster clamp to
// its edge.
func sampleBilinear(src *image.NRGBA, fx, fy float64, out []uint8) {
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	p00 := pixelClamped(src, x, y)
	p10 := pixelClamped(src, x+1, y)
	p01 := pixelClamped(src, x, y+1)
	p11 := pixelClamped(src, x+1, y+1)
	for ch := range 4 {
		top := float64(src.Pix[p00+ch])*(1-tx) + float64(src.Pix[p10+ch])*tx
		bot := float64(src.Pix[p01+ch])*(1-tx) + float64(src.Pix[p11+ch])*tx
		out[ch] = uint8(top*(1-ty) + bot*ty + 0.5)
	}
}

func pixelClamped(src *image.NRGBA, x, y int) int {
	x = clampInt(x, src.Rect.Min.X, src.Rect.Max.X-1)
	y = clampInt(y, src.Rect.Min.Y, src.Rect.Max.Y-1)
	return src.PixOffset(x, y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
