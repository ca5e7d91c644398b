package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/emissions-api/worldmap-creator/internal/emissions"
	"github.com/emissions-api/worldmap-creator/internal/logging"
)

// Renderer composites samples onto a base map through a color scale.
//
// Overlapping samples are blended by averaging: every sample stamps a disc
// footprint into a per-pixel sum/count accumulator and the final color is
// colormap(mean). The mean is independent of sample order, so the output is
// deterministic for any ordering of the input.
type Renderer struct {
	scale     ColorScale
	pointSize int
}

// NewRenderer creates a renderer. pointSize is the disc radius in pixels; 0
// stamps a single pixel per sample.
func NewRenderer(scale ColorScale, pointSize int) *Renderer {
	if pointSize < 0 {
		pointSize = 0
	}
	return &Renderer{scale: scale, pointSize: pointSize}
}

type accum struct {
	sum float64
	n   int
}

// Render returns a copy of base with all samples composited in. Samples that
// project outside the canvas are dropped silently. With zero samples the
// result is pixel-identical to base.
func (r *Renderer) Render(base image.Image, samples []emissions.Sample) *image.RGBA {
	bounds := base.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), base, bounds.Min, draw.Src)

	if len(samples) == 0 {
		return out
	}

	cells := make(map[int]*accum)
	dropped := 0
	for _, s := range samples {
		cx, cy, ok := Project(s.Latitude, s.Longitude, width, height)
		if !ok {
			dropped++
			continue
		}
		r.stamp(cells, cx, cy, s.Value, width, height)
	}
	if dropped > 0 {
		logging.Debugf("dropped %d samples outside the canvas", dropped)
	}

	for idx, a := range cells {
		x := idx % width
		y := idx / width
		out.SetRGBA(x, y, r.scale.At(a.sum/float64(a.n)))
	}

	return out
}

// stamp accumulates value over a filled disc centered at (cx, cy).
func (r *Renderer) stamp(cells map[int]*accum, cx, cy int, value float64, width, height int) {
	rad := r.pointSize
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy > rad*rad {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			idx := y*width + x
			a, ok := cells[idx]
			if !ok {
				a = &accum{}
				cells[idx] = a
			}
			a.sum += value
			a.n++
		}
	}
}

// ValueBounds returns the min and max sample values, used for per-run color
// scale bounds when no explicit bounds are given.
func ValueBounds(samples []emissions.Sample) (min, max float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	min, max = samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		if s.Value < min {
			min = s.Value
		}
		if s.Value > max {
			max = s.Value
		}
	}
	return min, max
}
