package spawners

import (
	"image/color"

	"go.uber.org/zap"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/input"
	"ebiten-pong/physics"
)

var (
	colorBall = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorWall = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Paddle key bindings per player
var paddleKeys = map[components.Player]components.PaddleComponent{
	components.Player1: {MoveUp: input.KeyW, MoveDown: input.KeyS},
	components.Player2: {MoveUp: input.KeyArrowUp, MoveDown: input.KeyArrowDown},
}

// EntitySpawner manages the creation of match entities
type EntitySpawner struct {
	world  *ecs.World
	roster *components.Roster
	logger *zap.Logger
}

// NewEntitySpawner creates a new entity spawner. logger may be nil.
func NewEntitySpawner(world *ecs.World, logger *zap.Logger) *EntitySpawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntitySpawner{
		world:  world,
		roster: components.NewRoster(),
		logger: logger,
	}
}

// Roster returns the index of everything spawned so far
func (s *EntitySpawner) Roster() *components.Roster {
	return s.roster
}

// SpawnMatch creates the complete playfield: score displays, paddles,
// border walls, goal sensors and the ball
func (s *EntitySpawner) SpawnMatch() *components.Roster {
	s.CreateScoreDisplays()
	for _, p := range components.Players {
		s.CreatePaddle(p)
	}
	s.CreateBorder()
	s.CreateBall()

	s.logger.Info("match spawned",
		zap.Uint64("ball", uint64(s.roster.Ball)),
		zap.Int("paddles", len(s.roster.Paddles)),
		zap.Int("goals", len(s.roster.Goals)),
	)
	return s.roster
}

// CreateScoreDisplays creates "0 | 0": one text per player and the separator
func (s *EntitySpawner) CreateScoreDisplays() {
	s.createText("|", 1)

	for _, p := range components.Players {
		slot := 0
		if p == components.Player2 {
			slot = 2
		}
		entity := s.createText("0", slot)
		s.world.TagEntity(entity.ID, components.TagScoreDisplay)
		s.world.AddComponent(entity.ID, components.Owner, &components.PlayerComponent{Player: p})
		s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent(p.String()+" score"))
		s.roster.Displays[p] = entity.ID
	}
}

func (s *EntitySpawner) createText(value string, slot int) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.AddComponent(entity.ID, components.Text, &components.TextComponent{Value: value, Slot: slot})
	return entity
}

// CreatePaddle creates p's paddle on its side of the field
func (s *EntitySpawner) CreatePaddle(p components.Player) *ecs.Entity {
	x := -config.HalfWidth + config.PaddleInset
	if p == components.Player2 {
		x = config.HalfWidth - config.PaddleInset
	}

	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagPaddle)

	keys := paddleKeys[p]
	s.world.AddComponent(entity.ID, components.Paddle, &keys)
	s.world.AddComponent(entity.ID, components.Owner, &components.PlayerComponent{Player: p})
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent(p.String()+" paddle"))
	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{X: x, Y: 0})
	s.world.AddComponent(entity.ID, components.Body, &components.BodyComponent{Def: physics.BodyDef{
		Kind:  physics.Kinematic,
		Shape: physics.BoxShape(config.PaddleHalfWidth, config.PaddleHalfHeight),
	}})
	s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{
		Shape:  components.SpriteRect,
		Width:  config.PaddleHalfWidth * 2,
		Height: config.PaddleHalfHeight * 2,
		Color:  p.Color(),
		Z:      1,
	})

	s.roster.Paddles[p] = entity.ID
	return entity
}

// CreateBorder creates the top and bottom walls and both goal sensors. The
// sensor on the right carries Player1 and the one on the left Player2.
func (s *EntitySpawner) CreateBorder() {
	for _, y := range []float64{config.HalfHeight, -config.HalfHeight} {
		entity := s.world.CreateEntity()
		s.world.TagEntity(entity.ID, components.TagWall)
		s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent("wall"))
		s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{X: 0, Y: y})
		s.world.AddComponent(entity.ID, components.Body, &components.BodyComponent{Def: physics.BodyDef{
			Kind:  physics.Static,
			Shape: physics.BoxShape(config.HalfWidth, config.BorderThickness),
		}})
		s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{
			Shape:  components.SpriteRect,
			Width:  config.WindowWidth,
			Height: config.BorderThickness * 2,
			Color:  colorWall,
		})
	}

	s.CreateGoalSensor(components.Player1, config.HalfWidth)
	s.CreateGoalSensor(components.Player2, -config.HalfWidth)
}

// CreateGoalSensor creates a non-blocking goal zone at x credited to p
func (s *EntitySpawner) CreateGoalSensor(p components.Player, x float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagGoal)
	s.world.AddComponent(entity.ID, components.GoalSensor, &components.GoalSensorComponent{})
	s.world.AddComponent(entity.ID, components.Owner, &components.PlayerComponent{Player: p})
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent(p.String()+" goal"))
	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{X: x, Y: 0})
	s.world.AddComponent(entity.ID, components.Colliding, &components.CollidingComponent{})
	s.world.AddComponent(entity.ID, components.Body, &components.BodyComponent{Def: physics.BodyDef{
		Kind:   physics.Static,
		Shape:  physics.BoxShape(config.BorderThickness, config.HalfHeight),
		Sensor: true,
	}})

	s.roster.Goals[p] = entity.ID
	return entity
}

// CreateBall creates the ball left of centre, moving right
func (s *EntitySpawner) CreateBall() *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagBall)
	s.world.AddComponent(entity.ID, components.Ball, &components.BallComponent{})
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent("ball"))
	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{X: config.BallSpawnX, Y: 0})
	serve := components.Player1.ServeVelocity()
	s.world.AddComponent(entity.ID, components.Velocity, &serve)
	s.world.AddComponent(entity.ID, components.Colliding, &components.CollidingComponent{})
	s.world.AddComponent(entity.ID, components.Body, &components.BodyComponent{Def: physics.BodyDef{
		Kind:           physics.Dynamic,
		Shape:          physics.CircleShape(config.BallRadius),
		Restitution:    config.BallRestitution,
		ReportContacts: true,
	}})
	s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{
		Shape:  components.SpriteDisc,
		Width:  config.BallRadius * 2,
		Height: config.BallRadius * 2,
		Color:  colorBall,
		Z:      2,
	})

	s.roster.Ball = entity.ID
	return entity
}
