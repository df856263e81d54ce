package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/input"
)

// PauseScreen dims the match and waits for P or Escape
type PauseScreen struct {
	*BaseScreen
	input      input.Provider
	background color.Color
}

// NewPauseScreen creates a pause overlay
func NewPauseScreen(in input.Provider) *PauseScreen {
	return &PauseScreen{
		BaseScreen: NewBaseScreen(),
		input:      in,
		background: color.RGBA{0, 0, 0, 160},
	}
}

// Update closes the overlay on P or Escape
func (s *PauseScreen) Update() error {
	if s.input.IsJustPressed(input.KeyP) || s.input.IsJustPressed(input.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw implements the Screen interface
func (s *PauseScreen) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), s.background, false)

	msg := "PAUSED - press P to resume"
	x := (b.Dx() - len(msg)*6) / 2 // Debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, msg, x, b.Dy()/2)
}
