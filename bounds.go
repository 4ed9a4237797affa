package spritesheet

import "image"

// ContentBounds scans every pixel of img and returns the tight bounding box
// of its drawn content: pixels that are visible (alpha above the threshold)
// and not near-white. The box is expressed in the raster's own coordinate
// space. The second result is false when nothing qualifies, so a 1x1 box and
// "no content" stay distinguishable; fully transparent and fully near-white
// rasters both report no content.
func ContentBounds(img *image.NRGBA, opt Options) (image.Rectangle, bool) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := range h {
		row := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		for x := range w {
			off := row + x*4
			if img.Pix[off+3] <= opt.AlphaThreshold {
				continue
			}
			if img.Pix[off] >= opt.WhiteThreshold &&
				img.Pix[off+1] >= opt.WhiteThreshold &&
				img.Pix[off+2] >= opt.WhiteThreshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1).Add(img.Rect.Min), true
}
