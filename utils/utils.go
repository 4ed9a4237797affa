package utils

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

func ReadImage(path string) image.Image {
	img, err := imaging.Open(path)
	if err != nil {
		panic(err)
	}
	return img
}

func SaveImage(img image.Image, filename string) error {
	return imaging.Save(img, filename)
}

// SaveFrames writes every frame as a sequentially numbered PNG
// (frame_000.png, frame_001.png, ...) under dir, creating it if needed.
func SaveFrames(frames []*image.NRGBA, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, f := range frames {
		name := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		if err := imaging.Save(f, name); err != nil {
			return err
		}
	}
	return nil
}
