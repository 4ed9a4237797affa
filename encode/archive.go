package encode

import (
	"archive/zip"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// WriteArchive writes the frames into a zip archive as sequentially numbered
// PNG files (frame_000.png, frame_001.png, ...), matching playback order.
func WriteArchive(w io.Writer, frames []*image.NRGBA) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	zw := zip.NewWriter(w)
	for i, f := range frames {
		entry, err := zw.Create(fmt.Sprintf("frame_%03d.png", i))
		if err != nil {
			return err
		}
		if err := imaging.Encode(entry, f, imaging.PNG); err != nil {
			return err
		}
	}
	return zw.Close()
}
