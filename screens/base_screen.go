package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/config"
)

// BaseScreen provides the fixed playfield layout shared by all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout always reports the logical playfield size; ebiten scales it to the window
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
