package encode

import (
	"image"

	"github.com/setanarut/apng"
)

// WriteAPNG writes the frames as a looping animated PNG. APNG keeps the full
// alpha channel, so it is the lossless counterpart to the GIF loop and the
// better choice for keyed-out backgrounds.
func WriteAPNG(path string, frames []*image.NRGBA, fps int) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	imgs := make([]image.Image, len(frames))
	for i, f := range frames {
		imgs[i] = f
	}
	apng.Save(path, imgs, uint16(delayCentiseconds(fps)))
	return nil
}
