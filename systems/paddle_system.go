package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/input"
)

// PaddleSystem moves paddles from keyboard input and keeps them on the playfield
type PaddleSystem struct {
	input input.Provider
	speed float64
}

// NewPaddleSystem creates a paddle system reading from in
func NewPaddleSystem(in input.Provider) *PaddleSystem {
	return &PaddleSystem{
		input: in,
		speed: config.PaddleSpeed,
	}
}

// Update applies held movement keys to every paddle
func (s *PaddleSystem) Update(world *ecs.World, dt float64) {
	if s.input == nil {
		return
	}

	ecs.ForEach(world, components.Paddle, func(id ecs.EntityID, paddle *components.PaddleComponent) {
		transform, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform)
		if !ok {
			return
		}

		// Each direction clamps on its own; holding both keys near an edge
		// does not cancel out exactly.
		if s.input.IsPressed(paddle.MoveUp) {
			transform.Y = clampPaddleY(transform.Y + s.speed*dt)
		}
		if s.input.IsPressed(paddle.MoveDown) {
			transform.Y = clampPaddleY(transform.Y - s.speed*dt)
		}
	})
}

func clampPaddleY(y float64) float64 {
	return min(max(y, config.PaddleMinY), config.PaddleMaxY)
}
