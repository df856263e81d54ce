// Package render draws the match with ebiten.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/physics"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorPanel      = color.RGBA{64, 64, 64, 255}
	colorCollider   = color.RGBA{255, 0, 255, 255}
	colorSensor     = color.RGBA{0, 255, 255, 255}
)

// Score panel layout, as fractions of the window
const (
	panelWidthFraction  = 0.3
	panelHeightFraction = 0.2
	textHeight          = 100.0
	textSlots           = 3
)

// RenderSystem draws sprites, the score panel and optional collider outlines
type RenderSystem struct {
	sprites       *SpriteCache
	drawColliders bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(drawColliders bool) *RenderSystem {
	return &RenderSystem{
		sprites:       NewSpriteCache(),
		drawColliders: drawColliders,
	}
}

// SetDrawColliders toggles collider outlines
func (s *RenderSystem) SetDrawColliders(on bool) {
	s.drawColliders = on
}

// DrawColliders reports whether collider outlines are drawn
func (s *RenderSystem) DrawColliders() bool {
	return s.drawColliders
}

// Draw renders the whole match
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s.drawSprites(world, screen)
	s.drawScorePanel(world, screen)

	if s.drawColliders {
		s.drawColliderOutlines(world, screen)
	}
}

type drawable struct {
	id        ecs.EntityID
	sprite    *components.SpriteComponent
	transform *components.TransformComponent
}

func (s *RenderSystem) drawSprites(world *ecs.World, screen *ebiten.Image) {
	var items []drawable
	ecs.ForEach(world, components.Sprite, func(id ecs.EntityID, sprite *components.SpriteComponent) {
		if transform, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform); ok {
			items = append(items, drawable{id: id, sprite: sprite, transform: transform})
		}
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].sprite.Z < items[j].sprite.Z })

	for _, item := range items {
		cx, cy := config.WorldToScreen(item.transform.X, item.transform.Y)
		sprite := item.sprite

		switch sprite.Shape {
		case components.SpriteDisc:
			img := s.sprites.Disc(sprite.Width / 2)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(cx-sprite.Width/2, cy-sprite.Height/2)
			op.ColorScale.ScaleWithColor(sprite.Color)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		default:
			vector.DrawFilledRect(screen,
				float32(cx-sprite.Width/2), float32(cy-sprite.Height/2),
				float32(sprite.Width), float32(sprite.Height),
				sprite.Color, false)
		}
	}
}

// drawScorePanel draws the dark panel at the top centre and the score texts in their slots
func (s *RenderSystem) drawScorePanel(world *ecs.World, screen *ebiten.Image) {
	panelW := config.WindowWidth * panelWidthFraction
	panelH := config.WindowHeight * panelHeightFraction
	panelX := (config.WindowWidth - panelW) / 2
	vector.DrawFilledRect(screen, float32(panelX), 0, float32(panelW), float32(panelH), colorPanel, false)

	slotW := panelW / textSlots
	ecs.ForEach(world, components.Text, func(id ecs.EntityID, text *components.TextComponent) {
		if text.Value == "" {
			return
		}
		img := s.sprites.Text(text.Value)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		scale := textHeight / float64(h)

		centreX := panelX + slotW*(float64(text.Slot)+0.5)
		centreY := panelH / 2

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(centreX-float64(w)*scale/2, centreY-float64(h)*scale/2)
		screen.DrawImage(img, op)
	})
}

func (s *RenderSystem) drawColliderOutlines(world *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(world, components.Body, func(id ecs.EntityID, body *components.BodyComponent) {
		transform, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform)
		if !ok {
			return
		}
		clr := colorCollider
		if body.Def.Sensor {
			clr = colorSensor
		}

		cx, cy := config.WorldToScreen(transform.X, transform.Y)
		shape := body.Def.Shape
		switch shape.Kind {
		case physics.Circle:
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(shape.Radius), 1, clr, true)
		case physics.Box:
			vector.StrokeRect(screen,
				float32(cx-shape.HalfWidth), float32(cy-shape.HalfHeight),
				float32(shape.HalfWidth*2), float32(shape.HalfHeight*2),
				1, clr, false)
		}
	})
}
