package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// Colors of the synthesized base map.
var (
	oceanColor     = color.RGBA{235, 241, 247, 255}
	graticuleColor = color.RGBA{202, 211, 222, 255}
	axisColor      = color.RGBA{164, 176, 192, 255}
)

// SynthesizeBaseMap builds a plain equirectangular background: a flat fill
// with a 30 degree graticule, the equator and the prime meridian drawn
// slightly darker. Deterministic, so renders are reproducible without a
// bundled raster asset.
func SynthesizeBaseMap(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(oceanColor), image.Point{}, draw.Src)

	for lon := -150; lon <= 150; lon += 30 {
		c := graticuleColor
		if lon == 0 {
			c = axisColor
		}
		x, _, ok := Project(0, float64(lon), width, height)
		if !ok {
			continue
		}
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, c)
		}
	}

	for lat := -60; lat <= 60; lat += 30 {
		c := graticuleColor
		if lat == 0 {
			c = axisColor
		}
		_, y, ok := Project(float64(lat), 0, width, height)
		if !ok {
			continue
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

// LoadBaseMap reads a PNG or JPEG base map from path and scales it to the
// requested size, preserving nothing of the source resolution.
func LoadBaseMap(path string, width, height int) (*image.RGBA, error) {
	imgbytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading base map %s: %w", path, err)
	}

	src, _, err := image.Decode(bytes.NewReader(imgbytes))
	if err != nil {
		return nil, fmt.Errorf("decoding base map %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst, nil
	}

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
