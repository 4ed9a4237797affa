package spritesheet

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Partitioner cuts a sheet into row-major cell rasters. The default is the
// fixed-grid Partition; callers wanting adaptive segmentation swap in their
// own behind the same contract instead of hybridizing the core algorithm.
type Partitioner func(src *image.NRGBA, grid Grid, opt Options) []*image.NRGBA

// Slicer runs the extraction pipeline over one decoded sprite sheet. The
// intermediate products stay accessible after Build for inspection and
// custom post-processing. A Slicer holds no state between sheets; every
// Build allocates fresh rasters, so independent slices may run concurrently.
type Slicer struct {
	Source image.Image
	Grid   Grid
	// Partitioner overrides the fixed-grid algorithm when non-nil.
	Partitioner Partitioner
	// Sheet is Source normalized to a flat NRGBA raster.
	Sheet *image.NRGBA
	// Background is the estimated sheet background, nil unless auto
	// estimation ran and succeeded.
	Background *BackgroundKey
	// Cells holds the sanitized cell rasters in row-major order.
	Cells []*image.NRGBA
	// Frames is the final uniform sequence, nil when nothing was extracted.
	Frames []*image.NRGBA
}

func NewSlicer(src image.Image, grid Grid) *Slicer {
	return &Slicer{Source: src, Grid: grid}
}

// Build runs the pipeline stages in order: normalize the source raster,
// estimate the background if requested, partition into cells, sanitize each
// cell and re-render the cells as uniform centered frames.
func (s *Slicer) Build(opt Options) {
	s.Sheet = imaging.Clone(s.Source)
	if opt.RemoveBackground && opt.AutoBackground {
		s.Background = EstimateBackground(s.Sheet, opt.Background)
	}
	partition := s.Partitioner
	if partition == nil {
		partition = Partition
	}
	s.Cells = partition(s.Sheet, s.Grid, opt)
	for i, cell := range s.Cells {
		s.Cells[i] = Sanitize(cell, opt, s.Background)
	}
	s.Frames = Normalize(s.Cells, opt)
}

// Slice decodes an encoded sprite sheet image and extracts its frames in
// row-major order. The result is nil when the bytes cannot be decoded or the
// sheet holds no drawable content; callers treat zero frames as extraction
// failure and decide themselves whether to retry with a new sheet.
func Slice(data []byte, grid Grid, opt Options) []*image.NRGBA {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	s := NewSlicer(img, grid)
	s.Build(opt)
	return s.Frames
}
