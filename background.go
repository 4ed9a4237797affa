package spritesheet

import (
	"image"
	"log"
	"math"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"
)

type BackgroundMethod int

const (
	BackgroundMethodDominantColor BackgroundMethod = iota
	BackgroundMethodKMeans
)

func (m BackgroundMethod) String() string {
	switch m {
	case BackgroundMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// BackgroundKey describes an estimated sheet background: the color to key
// out and the maximum CIE-Lab distance at which a pixel still counts as
// background.
type BackgroundKey struct {
	Color       colorful.Color
	MaxDistance float64
}

const (
	maxBorderSamples = 4096
	minKeyDistance   = 0.04
	maxKeyDistance   = 0.30
)

// EstimateBackground samples the border ring of the sheet, where poses are
// not expected, and estimates the dominant background color with the chosen
// method. The key-out radius is derived from the Lab-distance spread of the
// border samples around that color, so slightly textured or gradient
// backgrounds widen it automatically. Returns nil when the border holds no
// opaque pixels to sample.
func EstimateBackground(img image.Image, method BackgroundMethod) *BackgroundKey {
	samples, strip := borderSamples(img)
	if len(samples) == 0 {
		return nil
	}

	var bg colorful.Color
	var ok bool
	switch method {
	case BackgroundMethodKMeans:
		bg, ok = kmeansBackground(samples)
		if !ok {
			log.Println("background warning: kmeans found no cluster, falling back to dominantcolor")
			bg, ok = dominantBackground(strip)
		}
	default:
		bg, ok = dominantBackground(strip)
	}
	if !ok {
		return nil
	}
	return &BackgroundKey{Color: bg, MaxDistance: keyDistance(samples, bg)}
}

// borderSamples collects the opaque pixels of the one-pixel border ring,
// subsampled to keep estimation tractable on large sheets. The same samples
// are returned as a 1-pixel-high strip image for dominantcolor.
func borderSamples(img image.Image) ([]colorful.Color, *image.NRGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, nil
	}
	step := 1
	if perimeter := 2 * (w + h); perimeter > maxBorderSamples {
		step = perimeter/maxBorderSamples + 1
	}

	samples := make([]colorful.Color, 0, maxBorderSamples)
	push := func(x, y int) {
		r16, g16, b16, a16 := img.At(x, y).RGBA()
		if a16 == 0 {
			return
		}
		samples = append(samples, colorful.Color{
			R: float64(r16) / 65535.0,
			G: float64(g16) / 65535.0,
			B: float64(b16) / 65535.0,
		})
	}
	for x := b.Min.X; x < b.Max.X; x += step {
		push(x, b.Min.Y)
		push(x, b.Max.Y-1)
	}
	for y := b.Min.Y + 1; y < b.Max.Y-1; y += step {
		push(b.Min.X, y)
		push(b.Max.X-1, y)
	}
	if len(samples) == 0 {
		return nil, nil
	}

	strip := image.NewNRGBA(image.Rect(0, 0, len(samples), 1))
	for i, c := range samples {
		r, g, b := c.Clamped().RGB255()
		off := strip.PixOffset(i, 0)
		strip.Pix[off] = r
		strip.Pix[off+1] = g
		strip.Pix[off+2] = b
		strip.Pix[off+3] = 255
	}
	return samples, strip
}

func dominantBackground(strip *image.NRGBA) (colorful.Color, bool) {
	if strip == nil {
		return colorful.Color{}, false
	}
	c, ok := colorful.MakeColor(dominantcolor.Find(strip))
	if !ok {
		return colorful.Color{}, false
	}
	return c.Clamped(), true
}

// kmeansBackground clusters the border samples in RGB and takes the most
// populated cluster center as the background color.
func kmeansBackground(samples []colorful.Color) (colorful.Color, bool) {
	dataset := make(clusters.Observations, 0, len(samples))
	for _, c := range samples {
		dataset = append(dataset, clusters.Coordinates{c.R, c.G, c.B})
	}
	workK := min(3, len(dataset))
	if workK <= 0 {
		return colorful.Color{}, false
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return colorful.Color{}, false
	}
	best := 0
	for i := range cc {
		if len(cc[i].Observations) > len(cc[best].Observations) {
			best = i
		}
	}
	center := cc[best].Center
	if len(center) < 3 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: center[0], G: center[1], B: center[2]}.Clamped(), true
}

// keyDistance sets the key-out radius to cover the bulk of the observed
// border spread (mean + 2 sigma), clamped so a perfectly flat background
// still keys anti-aliased fringes and a noisy one cannot eat the character.
func keyDistance(samples []colorful.Color, bg colorful.Color) float64 {
	dists := make([]float64, len(samples))
	for i, c := range samples {
		dists[i] = c.DistanceLab(bg)
	}
	mean, std := stat.MeanStdDev(dists, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return math.Min(math.Max(mean+2*std, minKeyDistance), maxKeyDistance)
}
