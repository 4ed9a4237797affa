// Package spritesheet turns a single generated sprite sheet image into a
// uniformly sized, background-removed sequence of animation frames. The
// pipeline locates the drawn content, partitions it into a fixed row/column
// grid, cleans each cell and re-renders every pose centered on a shared
// canvas, so the sequence plays back without jitter.
package spritesheet

type Options struct {
	// Minimum alpha for a pixel to count as visible at all; pixels at or
	// below this are background regardless of color.
	AlphaThreshold uint8
	// A visible pixel counts as content only if at least one of its R/G/B
	// channels falls below this value. Raising it treats more off-white
	// pixels as content.
	WhiteThreshold uint8
	// Key-out floor for background removal: pixels with all three channels
	// above this become transparent. Ignored when a BackgroundKey is in
	// effect.
	KeyThreshold uint8
	// Margin in pixels cleared along all four borders of every cell.
	// Trades a sliver of true edge content for suppressing bleed from
	// oversized neighboring poses.
	EdgeShave int
	// Transparent padding around the centered character in the final
	// frames. Small on purpose: each cell already isolates one character.
	FramePad int
	// Key background-colored pixels of every cell to transparency.
	RemoveBackground bool
	// Estimate the sheet background color from its border ring instead of
	// assuming near-white. Only relevant when RemoveBackground is set.
	AutoBackground bool
	// Estimation method used when AutoBackground is set.
	Background BackgroundMethod
	// When > 0, cap the longer side of the uniform frame size, downscaling
	// all frames by one shared factor. 0 disables the cap.
	MaxFrameSize int
}

func DefaultOptions() Options {
	return Options{
		AlphaThreshold: 20,
		WhiteThreshold: 240,
		KeyThreshold:   230,
		EdgeShave:      4,
		FramePad:       2,
	}
}
