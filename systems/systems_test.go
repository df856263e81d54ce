package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/input"
)

const dt = config.FrameTime

// fixture is a hand-built match without physics. Tests write Colliding sets
// directly in place of a physics step.
type fixture struct {
	world  *ecs.World
	roster *components.Roster
	keys   *input.State
	score  *ScoreSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		world:  ecs.NewWorld(),
		roster: components.NewRoster(),
		keys:   input.NewState(),
	}

	ball := f.world.CreateEntity()
	f.world.AddComponent(ball.ID, components.Ball, &components.BallComponent{})
	f.world.AddComponent(ball.ID, components.Transform, &components.TransformComponent{X: 250, Y: -40})
	f.world.AddComponent(ball.ID, components.Velocity, &components.VelocityComponent{X: 130, Y: 55})
	f.world.AddComponent(ball.ID, components.Colliding, &components.CollidingComponent{})
	f.world.AddComponent(ball.ID, components.Sprite, &components.SpriteComponent{Shape: components.SpriteDisc})
	f.roster.Ball = ball.ID

	for _, p := range components.Players {
		paddle := f.world.CreateEntity()
		f.world.AddComponent(paddle.ID, components.Paddle, &components.PaddleComponent{})
		f.world.AddComponent(paddle.ID, components.Owner, &components.PlayerComponent{Player: p})
		f.world.AddComponent(paddle.ID, components.Transform, &components.TransformComponent{})
		f.roster.Paddles[p] = paddle.ID

		goal := f.world.CreateEntity()
		f.world.AddComponent(goal.ID, components.GoalSensor, &components.GoalSensorComponent{})
		f.world.AddComponent(goal.ID, components.Owner, &components.PlayerComponent{Player: p})
		f.world.AddComponent(goal.ID, components.Colliding, &components.CollidingComponent{})
		f.roster.Goals[p] = goal.ID

		display := f.world.CreateEntity()
		f.world.TagEntity(display.ID, components.TagScoreDisplay)
		f.world.AddComponent(display.ID, components.Owner, &components.PlayerComponent{Player: p})
		f.world.AddComponent(display.ID, components.Text, &components.TextComponent{Value: "0"})
		f.roster.Displays[p] = display.ID
	}

	f.score = NewScoreSystem(f.roster, nil)
	f.world.AddSystem(ecs.PhaseUpdate, NewClassifierSystem(f.keys, f.roster))
	f.world.AddSystem(ecs.PhasePostUpdate, NewBallResetSystem(f.roster, nil))
	f.world.AddSystem(ecs.PhasePostUpdate, f.score)
	return f
}

// touch records a symmetric contact between a and b
func (f *fixture) touch(a, b ecs.EntityID) {
	for _, pair := range [][2]ecs.EntityID{{a, b}, {b, a}} {
		colliding, _ := ecs.Get[*components.CollidingComponent](f.world, pair[0], components.Colliding)
		if colliding == nil {
			colliding = &components.CollidingComponent{}
			f.world.AddComponent(pair[0], components.Colliding, colliding)
		}
		colliding.Entities = append(colliding.Entities, pair[1])
	}
}

func (f *fixture) clearContacts() {
	ecs.ForEach(f.world, components.Colliding, func(_ ecs.EntityID, c *components.CollidingComponent) {
		c.Entities = nil
	})
}

func (f *fixture) ball() (*components.TransformComponent, *components.VelocityComponent) {
	transform, _ := ecs.Get[*components.TransformComponent](f.world, f.roster.Ball, components.Transform)
	velocity, _ := ecs.Get[*components.VelocityComponent](f.world, f.roster.Ball, components.Velocity)
	return transform, velocity
}

func (f *fixture) displayText(p components.Player) string {
	text, _ := ecs.Get[*components.TextComponent](f.world, f.roster.Displays[p], components.Text)
	return text.Value
}

func TestGoalSensorScoresAndResetsBall(t *testing.T) {
	f := newFixture(t)
	f.touch(f.roster.Ball, f.roster.Goals[components.Player1])

	f.world.Update(dt)

	assert.Equal(t, []ecs.Event{
		ResetBallEvent{Player: components.Player1},
		GainPointEvent{Player: components.Player1},
	}, f.world.Events().Events())
	assert.Equal(t, 1, f.score.Score().Get(components.Player1))
	assert.Equal(t, 0, f.score.Score().Get(components.Player2))
	assert.Equal(t, "1", f.displayText(components.Player1))
	assert.Equal(t, "0", f.displayText(components.Player2))

	transform, velocity := f.ball()
	assert.Equal(t, components.TransformComponent{X: 0, Y: 0}, *transform)
	assert.Equal(t, components.VelocityComponent{X: 100, Y: 0}, *velocity)
}

func TestManualResetSuppressesGoals(t *testing.T) {
	f := newFixture(t)
	f.touch(f.roster.Ball, f.roster.Goals[components.Player2])
	f.keys.Press(input.KeySpace)

	f.world.Update(dt)

	assert.Equal(t, []ecs.Event{ResetBallEvent{Player: components.Player1}}, f.world.Events().Events())
	assert.Equal(t, 0, f.score.Score().Get(components.Player1))
	assert.Equal(t, 0, f.score.Score().Get(components.Player2))

	transform, velocity := f.ball()
	assert.Equal(t, components.TransformComponent{}, *transform)
	assert.Equal(t, components.VelocityComponent{X: 100}, *velocity)
}

func TestHeldResetKeyOnlyFiresOnce(t *testing.T) {
	f := newFixture(t)
	f.keys.Press(input.KeySpace)
	f.world.Update(dt)
	require.Equal(t, 1, f.world.Events().Len())

	f.keys.EndFrame()
	f.world.Update(dt)
	assert.Equal(t, 0, f.world.Events().Len())
}

func TestPaddleHitRecolorsWithoutEvents(t *testing.T) {
	f := newFixture(t)
	f.touch(f.roster.Ball, f.roster.Paddles[components.Player2])

	f.world.Update(dt)

	assert.Equal(t, 0, f.world.Events().Len())
	sprite, _ := ecs.Get[*components.SpriteComponent](f.world, f.roster.Ball, components.Sprite)
	assert.Equal(t, components.Player2.Color(), sprite.Color)

	transform, velocity := f.ball()
	assert.Equal(t, components.TransformComponent{X: 250, Y: -40}, *transform)
	assert.Equal(t, components.VelocityComponent{X: 130, Y: 55}, *velocity)
}

func TestEverySensorTouchProducesEvents(t *testing.T) {
	f := newFixture(t)
	f.touch(f.roster.Ball, f.roster.Goals[components.Player1])
	f.touch(f.roster.Ball, f.roster.Goals[components.Player2])

	f.world.Update(dt)

	assert.Equal(t, []ecs.Event{
		ResetBallEvent{Player: components.Player1},
		GainPointEvent{Player: components.Player1},
		ResetBallEvent{Player: components.Player2},
		GainPointEvent{Player: components.Player2},
	}, f.world.Events().Events())
	assert.Equal(t, 1, f.score.Score().Get(components.Player1))
	assert.Equal(t, 1, f.score.Score().Get(components.Player2))

	_, velocity := f.ball()
	assert.Equal(t, components.VelocityComponent{X: -100}, *velocity, "last reset wins")
}

func TestClassifierWithoutRosterScansComponents(t *testing.T) {
	world := ecs.NewWorld()
	world.AddSystem(ecs.PhaseUpdate, NewClassifierSystem(input.NewState(), nil))

	ball := world.CreateEntity()
	world.AddComponent(ball.ID, components.Ball, &components.BallComponent{})
	goal := world.CreateEntity()
	world.AddComponent(goal.ID, components.GoalSensor, &components.GoalSensorComponent{})
	world.AddComponent(goal.ID, components.Owner, &components.PlayerComponent{Player: components.Player2})
	world.AddComponent(goal.ID, components.Colliding, &components.CollidingComponent{Entities: []ecs.EntityID{ball.ID}})

	world.Update(dt)

	assert.Equal(t, []ecs.Event{
		ResetBallEvent{Player: components.Player2},
		GainPointEvent{Player: components.Player2},
	}, world.Events().Events())
}

func TestClassifierWithoutBallIsNoop(t *testing.T) {
	world := ecs.NewWorld()
	keys := input.NewState()
	keys.Press(input.KeySpace)
	world.AddSystem(ecs.PhaseUpdate, NewClassifierSystem(keys, nil))

	assert.NotPanics(t, func() { world.Update(dt) })
	assert.Equal(t, 0, world.Events().Len())
}

func TestEventsDoNotOutliveTheirFrame(t *testing.T) {
	f := newFixture(t)
	f.touch(f.roster.Ball, f.roster.Goals[components.Player2])
	f.world.Update(dt)
	require.Equal(t, 2, f.world.Events().Len())

	f.clearContacts()
	f.world.Update(dt)

	assert.Equal(t, 0, f.world.Events().Len())
	assert.Equal(t, 1, f.score.Score().Get(components.Player2), "a stale GainPoint must not be counted again")
}

func TestBallResetServeVectors(t *testing.T) {
	tests := []struct {
		player components.Player
		want   components.VelocityComponent
	}{
		{components.Player1, components.VelocityComponent{X: 100, Y: 0}},
		{components.Player2, components.VelocityComponent{X: -100, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.player.String(), func(t *testing.T) {
			f := newFixture(t)
			f.world.EmitEvent(ResetBallEvent{Player: tt.player})
			NewBallResetSystem(f.roster, nil).Update(f.world, dt)

			transform, velocity := f.ball()
			assert.Equal(t, components.TransformComponent{}, *transform)
			assert.Equal(t, tt.want, *velocity)
		})
	}
}

func TestBallResetLastWriteWins(t *testing.T) {
	f := newFixture(t)
	f.world.EmitEvent(ResetBallEvent{Player: components.Player1})
	f.world.EmitEvent(ResetBallEvent{Player: components.Player2})

	NewBallResetSystem(f.roster, nil).Update(f.world, dt)

	_, velocity := f.ball()
	assert.Equal(t, components.VelocityComponent{X: -100, Y: 0}, *velocity)
}

func TestBallResetKeepsOtherComponents(t *testing.T) {
	f := newFixture(t)
	sprite, _ := ecs.Get[*components.SpriteComponent](f.world, f.roster.Ball, components.Sprite)
	sprite.Color = components.Player1.Color()

	f.world.EmitEvent(ResetBallEvent{Player: components.Player2})
	NewBallResetSystem(nil, nil).Update(f.world, dt)

	_, velocity := f.ball()
	assert.Equal(t, components.VelocityComponent{X: -100}, *velocity)
	assert.Equal(t, components.Player1.Color(), sprite.Color)
}

func TestScoreCountsEveryGainPoint(t *testing.T) {
	f := newFixture(t)
	sequence := []components.Player{
		components.Player1, components.Player2, components.Player1,
		components.Player1, components.Player2, components.Player1,
	}

	want := map[components.Player]int{}
	for _, p := range sequence {
		f.world.Events().Clear()
		f.world.EmitEvent(GainPointEvent{Player: p})
		f.score.Update(f.world, dt)
		want[p]++

		assert.Equal(t, want[components.Player1], f.score.Score().Get(components.Player1))
		assert.Equal(t, want[components.Player2], f.score.Score().Get(components.Player2))
	}
	assert.Equal(t, "4", f.displayText(components.Player1))
	assert.Equal(t, "2", f.displayText(components.Player2))
}

func TestScoreWithoutDisplayStillCounts(t *testing.T) {
	world := ecs.NewWorld()
	score := NewScoreSystem(components.NewRoster(), nil)

	world.EmitEvent(GainPointEvent{Player: components.Player2})
	world.EmitEvent(GainPointEvent{Player: components.Player2})
	score.Update(world, dt)

	assert.Equal(t, 2, score.Score().Get(components.Player2))
	assert.Equal(t, 0, score.Score().Get(components.Player1))
}

func TestScoreFindsDisplayByTagWithoutRoster(t *testing.T) {
	f := newFixture(t)
	score := NewScoreSystem(nil, nil)

	f.world.EmitEvent(GainPointEvent{Player: components.Player2})
	score.Update(f.world, dt)

	assert.Equal(t, "1", f.displayText(components.Player2))
	assert.Equal(t, "0", f.displayText(components.Player1))
}
