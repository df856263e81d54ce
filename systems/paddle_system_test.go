package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/input"
)

func newPaddleWorld(y float64) (*ecs.World, *components.TransformComponent, *input.State) {
	world := ecs.NewWorld()
	keys := input.NewState()
	world.AddSystem(ecs.PhaseUpdate, NewPaddleSystem(keys))

	paddle := world.CreateEntity()
	world.AddComponent(paddle.ID, components.Paddle, &components.PaddleComponent{MoveUp: input.KeyW, MoveDown: input.KeyS})
	transform := &components.TransformComponent{X: -620, Y: y}
	world.AddComponent(paddle.ID, components.Transform, transform)
	return world, transform, keys
}

func TestPaddleMovesAtFixedSpeed(t *testing.T) {
	world, transform, keys := newPaddleWorld(0)
	keys.Hold(input.KeyW)

	for i := 0; i < 30; i++ {
		world.Update(dt)
	}
	assert.InDelta(t, 50.0, transform.Y, 1e-9)
	assert.Equal(t, -620.0, transform.X, "paddles only move vertically")

	keys.Release(input.KeyW)
	keys.Hold(input.KeyS)
	for i := 0; i < 60; i++ {
		world.Update(dt)
	}
	assert.InDelta(t, -50.0, transform.Y, 1e-9)
}

func TestPaddleStaysOnPlayfield(t *testing.T) {
	tests := []struct {
		name  string
		key   input.Key
		limit float64
	}{
		{"up", input.KeyW, config.PaddleMaxY},
		{"down", input.KeyS, config.PaddleMinY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, transform, keys := newPaddleWorld(0)
			keys.Hold(tt.key)

			for i := 0; i < 500; i++ {
				world.Update(dt)
				assert.LessOrEqual(t, transform.Y, 285.0)
				assert.GreaterOrEqual(t, transform.Y, -285.0)
			}
			assert.Equal(t, tt.limit, transform.Y)
		})
	}
}

func TestPaddleBothKeysClampEachStep(t *testing.T) {
	// At the top edge the up step is clamped away and the down step still applies
	world, transform, keys := newPaddleWorld(config.PaddleMaxY)
	keys.Hold(input.KeyW)
	keys.Hold(input.KeyS)

	world.Update(dt)
	assert.InDelta(t, config.PaddleMaxY-config.PaddleSpeed*dt, transform.Y, 1e-9)

	// Mid-field the two steps cancel
	world, transform, keys = newPaddleWorld(10)
	keys.Hold(input.KeyW)
	keys.Hold(input.KeyS)

	world.Update(dt)
	assert.InDelta(t, 10.0, transform.Y, 1e-9)
}

func TestPaddleIgnoresOtherKeys(t *testing.T) {
	world, transform, keys := newPaddleWorld(0)
	keys.Hold(input.KeyArrowUp)

	world.Update(dt)
	assert.Equal(t, 0.0, transform.Y)
}
