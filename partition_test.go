package spritesheet

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionCellCountAndSize(t *testing.T) {
	opt := DefaultOptions()
	// Transparent sheet: no content, so the whole raster becomes the grid
	// area and cell geometry is fully predictable.
	src := image.NewNRGBA(image.Rect(0, 0, 200, 97))

	for _, g := range []Grid{{1, 1}, {2, 2}, {3, 7}, {4, 3}, {1, 9}} {
		cells := Partition(src, g, opt)
		require.Len(t, cells, g.Frames(), "grid %dx%d", g.Rows, g.Cols)

		wantW := int(math.Ceil(200.0 / float64(g.Cols)))
		wantH := int(math.Ceil(97.0 / float64(g.Rows)))
		sumW := 0
		for i, cell := range cells {
			assert.Equal(t, wantW, cell.Rect.Dx(), "cell %d width", i)
			assert.Equal(t, wantH, cell.Rect.Dy(), "cell %d height", i)
			if i < g.Cols {
				sumW += cell.Rect.Dx()
			}
		}
		// One row's widths may over-cover the grid area only by the
		// per-cell rounding, never drift further.
		assert.GreaterOrEqual(t, sumW, 200)
		assert.LessOrEqual(t, sumW-200, g.Cols)
	}
}

func TestPartitionRowMajorOrder(t *testing.T) {
	opt := DefaultOptions()
	src := image.NewNRGBA(image.Rect(0, 0, 300, 200))
	// Pin the content bounds to the full raster so cells align with the
	// nominal 100x100 layout.
	fillRect(src, image.Rect(0, 0, 1, 1), ink)
	fillRect(src, image.Rect(299, 0, 300, 1), ink)
	fillRect(src, image.Rect(0, 199, 1, 200), ink)
	fillRect(src, image.Rect(299, 199, 300, 200), ink)
	// One dot per cell at an x offset unique to its row-major index, so a
	// cell order mix-up is detectable.
	grid := Grid{Rows: 2, Cols: 3}
	for r := range grid.Rows {
		for c := range grid.Cols {
			i := r*grid.Cols + c
			fillRect(src, image.Rect(c*100+10+8*i, r*100+40, c*100+14+8*i, r*100+44), ink)
		}
	}

	cells := Partition(src, grid, opt)
	require.Len(t, cells, 6)
	for i, cell := range cells {
		got := cell.NRGBAAt(11+8*i, 41)
		assert.Equal(t, ink, got, "cell %d does not hold its row-major dot", i)
	}
}

func TestPartitionUsesContentBounds(t *testing.T) {
	opt := DefaultOptions()
	// Content confined to a centered 100x60 box inside a big transparent
	// sheet: the grid must cover the box, not the sheet.
	src := image.NewNRGBA(image.Rect(0, 0, 400, 300))
	fillRect(src, image.Rect(150, 120, 250, 180), ink)

	cells := Partition(src, Grid{Rows: 2, Cols: 2}, opt)
	require.Len(t, cells, 4)
	for i, cell := range cells {
		assert.Equal(t, 50, cell.Rect.Dx(), "cell %d", i)
		assert.Equal(t, 30, cell.Rect.Dy(), "cell %d", i)
		b, ok := ContentBounds(cell, opt)
		require.True(t, ok, "cell %d must contain a quarter of the box", i)
		assert.Equal(t, image.Rect(0, 0, 50, 30), b, "cell %d", i)
	}
}
