// Package raster draws the game's procedural sprites into plain images.
// The renderer uploads them to the GPU once and tints or scales them per draw.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// textPadding is the transparent border around rasterised text, in pixels
const textPadding = 2

// Disc draws a white anti-aliased disc of the given radius on a transparent
// square image. White lets the renderer tint it to any colour.
func Disc(radius float64) image.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.DrawCircle(float64(size)/2, float64(size)/2, radius)
	dc.Fill()
	return dc.Image()
}

// Text draws s in white with the built-in bitmap face. The glyphs are small;
// the renderer scales the image up to the wanted height.
func Text(s string) image.Image {
	measure := gg.NewContext(1, 1)
	w, h := measure.MeasureString(s)

	width := int(math.Ceil(w)) + textPadding*2
	height := int(math.Ceil(h)) + textPadding*2
	if width < 1 {
		width = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(s, float64(width)/2, float64(height)/2, 0.5, 0.5)
	return dc.Image()
}
