package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// CropRegion cuts a window of span degrees of longitude centered on
// (lat, lon) out of a fully rendered world map and rescales it back to the
// source dimensions. The latitude span is span/2, which keeps the crop's
// pixel aspect equal to the canvas aspect so rescaling does not distort.
func CropRegion(img *image.RGBA, lat, lon, span float64) *image.RGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	halfW := span / 2
	halfH := span / 4

	minLon := clampF(lon-halfW, -180, 180)
	maxLon := clampF(lon+halfW, -180, 180)
	maxLat := clampF(lat+halfH, -90, 90)
	minLat := clampF(lat-halfH, -90, 90)

	x0 := int(math.Floor((minLon + 180) / 360 * float64(width-1)))
	x1 := int(math.Ceil((maxLon + 180) / 360 * float64(width-1)))
	y0 := int(math.Floor((90 - maxLat) / 180 * float64(height-1)))
	y1 := int(math.Ceil((90 - minLat) / 180 * float64(height-1)))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	src := img.SubImage(image.Rect(x0, y0, x1, y1))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
