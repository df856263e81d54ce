package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/metrics"
	"ebiten-pong/physics"
	"ebiten-pong/render"
	"ebiten-pong/screens"
	"ebiten-pong/sound"
	"ebiten-pong/spawners"
	"ebiten-pong/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world        *ecs.World
	scoreSystem  *systems.ScoreSystem
	renderSystem *render.RenderSystem
	screenStack  *screens.ScreenStack
	metrics      *metrics.Metrics
	logger       *zap.Logger
	showFPS      bool
}

// NewGame creates a new game instance. m may be nil when metrics are off.
func NewGame(cfg config.AppConfig, logger *zap.Logger, m *metrics.Metrics) *Game {
	// Initialize ECS world
	world := ecs.NewWorld()
	keyboard := screens.KeyboardInput{}

	// Spawn the playfield first so systems can index it
	entitySpawner := spawners.NewEntitySpawner(world, logger)
	roster := entitySpawner.SpawnMatch()

	physicsSystem := systems.NewPhysicsSystem(physics.NewWorld(), logger)
	paddleSystem := systems.NewPaddleSystem(keyboard)
	classifierSystem := systems.NewClassifierSystem(keyboard, roster)
	ballResetSystem := systems.NewBallResetSystem(roster, logger)
	scoreSystem := systems.NewScoreSystem(roster, logger)

	// Physics first, then input and classification, then event consumers
	world.AddSystem(ecs.PhasePhysics, physicsSystem)
	world.AddSystem(ecs.PhaseUpdate, paddleSystem)
	world.AddSystem(ecs.PhaseUpdate, classifierSystem)
	world.AddSystem(ecs.PhasePostUpdate, ballResetSystem)
	world.AddSystem(ecs.PhasePostUpdate, scoreSystem)

	if m != nil {
		m.Observe(world.Events())
	}
	if cfg.Audio.Volume > 0 {
		soundSystem := sound.NewSoundSystem(cfg.Audio.Volume, logger)
		soundSystem.Observe(world.Events())
	}

	game := &Game{
		world:        world,
		scoreSystem:  scoreSystem,
		renderSystem: render.NewRenderSystem(cfg.Debug.Colliders),
		screenStack:  screens.NewScreenStack(),
		metrics:      m,
		logger:       logger,
		showFPS:      cfg.Debug.Colliders,
	}
	game.screenStack.Push(screens.NewMatchScreen(world, game.renderSystem, keyboard, game.onFrame))
	return game
}

func (g *Game) onFrame(_ *ecs.World, elapsed time.Duration) {
	if g.metrics != nil {
		g.metrics.RecordFrame(elapsed, g.scoreSystem.Score())
	}
}

// Score returns the live match score
func (g *Game) Score() *components.Score {
	return g.scoreSystem.Score()
}

// Update updates the game state.
func (g *Game) Update() error {
	return g.screenStack.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  frame: %d", ebiten.ActualFPS(), g.world.Frame()))
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
