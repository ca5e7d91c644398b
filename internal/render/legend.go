package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	labelColor  = color.RGBA{40, 40, 40, 255}
	legendFrame = color.RGBA{120, 120, 120, 255}
)

// DrawLegend overlays a horizontal color bar with min/max labels in the
// bottom-left corner of img.
func DrawLegend(img *image.RGBA, scale ColorScale) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	barW := width / 3
	barH := height / 50
	if barH < 8 {
		barH = 8
	}
	margin := barH

	x0 := margin
	y0 := height - margin - barH
	if y0 < 0 || barW < 2 {
		return
	}

	for x := 0; x < barW; x++ {
		t := float64(x) / float64(barW-1)
		c := scale.Gradient(t)
		for y := 0; y < barH; y++ {
			img.SetRGBA(x0+x, y0+y, c)
		}
	}

	// 1px frame around the bar.
	for x := -1; x <= barW; x++ {
		img.SetRGBA(x0+x, y0-1, legendFrame)
		img.SetRGBA(x0+x, y0+barH, legendFrame)
	}
	for y := -1; y <= barH; y++ {
		img.SetRGBA(x0-1, y0+y, legendFrame)
		img.SetRGBA(x0+barW, y0+y, legendFrame)
	}

	min, max := scale.Bounds()
	minLabel := fmt.Sprintf("%.4g", min)
	maxLabel := fmt.Sprintf("%.4g", max)

	drawString(img, minLabel, x0, y0-4)
	drawString(img, maxLabel, x0+barW-stringWidth(maxLabel), y0-4)
}

// DrawTitle draws the title centered near the top of img.
func DrawTitle(img *image.RGBA, title string) {
	if title == "" {
		return
	}
	width := img.Bounds().Dx()
	x := (width - stringWidth(title)) / 2
	if x < 0 {
		x = 0
	}
	drawString(img, title, x, basicfont.Face7x13.Height*2)
}

func drawString(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func stringWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}
