package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyW:         ebiten.KeyW,
	input.KeyS:         ebiten.KeyS,
	input.KeyArrowUp:   ebiten.KeyArrowUp,
	input.KeyArrowDown: ebiten.KeyArrowDown,
	input.KeySpace:     ebiten.KeySpace,
	input.KeyP:         ebiten.KeyP,
	input.KeyEscape:    ebiten.KeyEscape,
	input.KeyF1:        ebiten.KeyF1,
}

// KeyboardInput reads the real keyboard through ebiten
type KeyboardInput struct{}

// IsPressed implements input.Provider
func (KeyboardInput) IsPressed(key input.Key) bool {
	k, ok := ebitenKeys[key]
	return ok && ebiten.IsKeyPressed(k)
}

// IsJustPressed implements input.Provider
func (KeyboardInput) IsJustPressed(key input.Key) bool {
	k, ok := ebitenKeys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}
