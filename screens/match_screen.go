package screens

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/input"
	"ebiten-pong/render"
)

// FrameHook is called after every world update with the time it took
type FrameHook func(world *ecs.World, elapsed time.Duration)

// MatchScreen runs the match: one world update per tick unless paused
type MatchScreen struct {
	*BaseScreen
	world        *ecs.World
	renderSystem *render.RenderSystem
	input        input.Provider
	overlays     *ScreenStack
	onFrame      FrameHook
}

// NewMatchScreen creates the match screen. onFrame may be nil.
func NewMatchScreen(world *ecs.World, renderSystem *render.RenderSystem, in input.Provider, onFrame FrameHook) *MatchScreen {
	return &MatchScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		renderSystem: renderSystem,
		input:        in,
		overlays:     NewScreenStack(),
		onFrame:      onFrame,
	}
}

// Paused reports whether the pause overlay is open
func (s *MatchScreen) Paused() bool {
	return s.overlays.Len() > 0
}

// Update handles one tick
func (s *MatchScreen) Update() error {
	if s.Paused() {
		return s.overlays.Update()
	}

	if s.input.IsJustPressed(input.KeyF1) {
		s.renderSystem.SetDrawColliders(!s.renderSystem.DrawColliders())
	}

	if s.input.IsJustPressed(input.KeyP) {
		s.overlays.Push(NewPauseScreen(s.input))
		return nil
	}

	start := time.Now()
	s.world.Update(config.FrameTime)
	if s.onFrame != nil {
		s.onFrame(s.world, time.Since(start))
	}
	return nil
}

// Draw draws the match and any overlay
func (s *MatchScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)
	s.overlays.Draw(screen)
}
