package render

import "math"

// Project maps geographic coordinates to pixel indices on an equirectangular
// canvas of width x height pixels:
//
//	x = round((lon+180)/360 * (width-1))
//	y = round((90-lat)/180 * (height-1))
//
// so (90, -180) lands on the top-left pixel (0, 0) and (-90, 180) on the
// bottom-right pixel (width-1, height-1). ok is false when the result rounds
// outside the canvas; such points are dropped by the renderer.
func Project(lat, lon float64, width, height int) (x, y int, ok bool) {
	x = int(math.Round((lon + 180) / 360 * float64(width-1)))
	y = int(math.Round((90 - lat) / 180 * float64(height-1)))

	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}
