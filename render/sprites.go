package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/render/raster"
)

// SpriteCache uploads procedural sprites once and reuses them every frame
type SpriteCache struct {
	discs map[float64]*ebiten.Image
	texts map[string]*ebiten.Image
}

// NewSpriteCache creates an empty cache
func NewSpriteCache() *SpriteCache {
	return &SpriteCache{
		discs: make(map[float64]*ebiten.Image),
		texts: make(map[string]*ebiten.Image),
	}
}

// Disc returns a white disc of the given radius
func (c *SpriteCache) Disc(radius float64) *ebiten.Image {
	if img, ok := c.discs[radius]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(raster.Disc(radius))
	c.discs[radius] = img
	return img
}

// Text returns s rendered in white. Score strings are few, so entries are never evicted.
func (c *SpriteCache) Text(s string) *ebiten.Image {
	if img, ok := c.texts[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(raster.Text(s))
	c.texts[s] = img
	return img
}
