package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Colormap maps normalized values in [0, 1] to colors by linear
// interpolation between a sequence of stops.
type Colormap struct {
	colors []color.RGBA
}

// At returns the color at position t. t is clamped to [0, 1].
func (c Colormap) At(t float64) color.RGBA {
	if t <= 0 {
		return c.colors[0]
	}
	if t >= 1 {
		return c.colors[len(c.colors)-1]
	}

	idx := t * float64(len(c.colors)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.colors) {
		upper = len(c.colors) - 1
	}

	frac := idx - float64(lower)
	return interpolate(c.colors[lower], c.colors[upper], frac)
}

func interpolate(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R) + t*(float64(c2.R)-float64(c1.R))),
		G: uint8(float64(c1.G) + t*(float64(c2.G)-float64(c1.G))),
		B: uint8(float64(c1.B) + t*(float64(c2.B)-float64(c1.B))),
		A: 255,
	}
}

// Rainbow approximates matplotlib's gist_rainbow, the default of the
// original worldmap creator.
var Rainbow = Colormap{
	colors: []color.RGBA{
		{255, 0, 41, 255},
		{255, 123, 0, 255},
		{255, 245, 0, 255},
		{106, 255, 0, 255},
		{0, 255, 198, 255},
		{0, 162, 255, 255},
		{87, 0, 255, 255},
		{231, 0, 255, 255},
		{255, 0, 191, 255},
	},
}

// Viridis colormap (matplotlib viridis).
var Viridis = Colormap{
	colors: []color.RGBA{
		{68, 1, 84, 255},
		{72, 35, 116, 255},
		{64, 67, 135, 255},
		{52, 94, 141, 255},
		{41, 120, 142, 255},
		{32, 144, 140, 255},
		{34, 167, 132, 255},
		{68, 190, 112, 255},
		{121, 209, 81, 255},
		{189, 222, 38, 255},
		{253, 231, 37, 255},
	},
}

// Plasma colormap.
var Plasma = Colormap{
	colors: []color.RGBA{
		{13, 8, 135, 255},
		{75, 3, 161, 255},
		{125, 3, 168, 255},
		{168, 34, 150, 255},
		{203, 70, 121, 255},
		{229, 107, 93, 255},
		{248, 148, 65, 255},
		{253, 195, 40, 255},
		{240, 249, 33, 255},
	},
}

// Inferno colormap.
var Inferno = Colormap{
	colors: []color.RGBA{
		{0, 0, 4, 255},
		{40, 11, 84, 255},
		{101, 21, 110, 255},
		{159, 42, 99, 255},
		{212, 72, 66, 255},
		{245, 125, 21, 255},
		{250, 193, 39, 255},
		{252, 255, 164, 255},
	},
}

// Magma colormap.
var Magma = Colormap{
	colors: []color.RGBA{
		{0, 0, 4, 255},
		{28, 16, 68, 255},
		{79, 18, 123, 255},
		{129, 37, 129, 255},
		{181, 54, 122, 255},
		{229, 80, 100, 255},
		{251, 135, 97, 255},
		{254, 194, 135, 255},
		{252, 253, 191, 255},
	},
}

var colormaps = map[string]Colormap{
	"rainbow": Rainbow,
	"viridis": Viridis,
	"plasma":  Plasma,
	"inferno": Inferno,
	"magma":   Magma,
}

// ColormapByName looks up a colormap by its lowercase name.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := colormaps[strings.ToLower(name)]
	if !ok {
		return Colormap{}, fmt.Errorf("unknown colormap %q (available: %s)", name, strings.Join(ColormapNames(), ", "))
	}
	return cm, nil
}

// ColormapNames returns the available colormap names, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorScale is a monotonic mapping from a value range [min, max] to colors.
// Values outside the range clamp to the scale's extreme colors.
type ColorScale struct {
	cmap Colormap
	min  float64
	max  float64
}

// NewColorScale creates a scale over [min, max]. When min == max every value
// maps to the low end of the colormap.
func NewColorScale(cmap Colormap, min, max float64) ColorScale {
	if max < min {
		min, max = max, min
	}
	return ColorScale{cmap: cmap, min: min, max: max}
}

// Bounds returns the scale's value range.
func (s ColorScale) Bounds() (min, max float64) {
	return s.min, s.max
}

// At maps a value to its color.
func (s ColorScale) At(v float64) color.RGBA {
	if s.max == s.min {
		return s.cmap.At(0)
	}
	return s.cmap.At((v - s.min) / (s.max - s.min))
}

// Gradient returns the raw colormap color at t in [0, 1], for drawing
// legends.
func (s ColorScale) Gradient(t float64) color.RGBA {
	return s.cmap.At(t)
}
