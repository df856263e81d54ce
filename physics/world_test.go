package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-pong/ecs"
)

const frame = 1.0 / 60.0

const (
	ballID ecs.EntityID = iota + 1
	goalID
	wallID
	paddleID
)

func ballDef(x, vx float64) BodyDef {
	return BodyDef{
		Kind:           Dynamic,
		Shape:          CircleShape(25),
		Position:       Vec2{X: x},
		Velocity:       Vec2{X: vx},
		Restitution:    1.2,
		ReportContacts: true,
	}
}

func TestSensorReportsWithoutBlocking(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(ballID, ballDef(560, 600)))
	require.NoError(t, w.AddBody(goalID, BodyDef{
		Kind:     Static,
		Shape:    BoxShape(3, 360),
		Position: Vec2{X: 640},
		Sensor:   true,
	}))

	sawContact := false
	for i := 0; i < 20; i++ {
		w.Step(frame)
		if w.IsTouching(ballID, goalID) {
			sawContact = true
			assert.Equal(t, []ecs.EntityID{ballID}, w.Touching(goalID))
		}
	}

	assert.True(t, sawContact, "ball should have overlapped the sensor")
	pos, ok := w.Position(ballID)
	require.True(t, ok)
	assert.Greater(t, pos.X, 700.0, "sensor must not stop the ball")
	vel, _ := w.Velocity(ballID)
	assert.InDelta(t, 600.0, vel.X, 1e-6)
	assert.False(t, w.IsTouching(ballID, goalID), "contact should end once the ball has passed")
}

func TestWallBouncesBall(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(ballID, ballDef(100, 300)))
	require.NoError(t, w.AddBody(wallID, BodyDef{
		Kind:     Static,
		Shape:    BoxShape(3, 360),
		Position: Vec2{X: 200},
	}))

	for i := 0; i < 60; i++ {
		w.Step(frame)
	}

	vel, ok := w.Velocity(ballID)
	require.True(t, ok)
	assert.Less(t, vel.X, 0.0, "ball should rebound off a blocking wall")
	pos, _ := w.Position(ballID)
	assert.Less(t, pos.X, 200.0)
}

func TestMovedStaticBodyCollidesAtNewPosition(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(ballID, ballDef(100, 300)))
	require.NoError(t, w.AddBody(wallID, BodyDef{
		Kind:     Static,
		Shape:    BoxShape(3, 360),
		Position: Vec2{X: 1000},
	}))

	w.SetPosition(wallID, Vec2{X: 200})
	pos, ok := w.Position(wallID)
	require.True(t, ok)
	assert.InDelta(t, 200.0, pos.X, 1e-9)

	sawContact := false
	for i := 0; i < 60; i++ {
		w.Step(frame)
		sawContact = sawContact || w.IsTouching(ballID, wallID)
	}

	assert.True(t, sawContact, "ball should meet the wall where it was moved to")
	vel, _ := w.Velocity(ballID)
	assert.Less(t, vel.X, 0.0, "moved wall should still block the ball")
	ballPos, _ := w.Position(ballID)
	assert.Less(t, ballPos.X, 200.0)
}

func TestTouchingIsSymmetricAndClearsOnSeparation(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(paddleID, BodyDef{Kind: Kinematic, Shape: BoxShape(5, 75)}))
	require.NoError(t, w.AddBody(ballID, ballDef(100, 0)))

	w.Step(frame)
	assert.Empty(t, w.Touching(ballID))

	w.SetPosition(ballID, Vec2{X: 20})
	w.Step(frame)
	assert.Equal(t, []ecs.EntityID{paddleID}, w.Touching(ballID))
	assert.Equal(t, []ecs.EntityID{ballID}, w.Touching(paddleID))

	w.SetPosition(ballID, Vec2{X: 300})
	w.Step(frame)
	assert.Empty(t, w.Touching(ballID))
	assert.Empty(t, w.Touching(paddleID))
}

func TestKinematicBodyFollowsSetPosition(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(paddleID, BodyDef{Kind: Kinematic, Shape: BoxShape(5, 75), Position: Vec2{X: -620}}))

	w.SetPosition(paddleID, Vec2{X: -620, Y: 120})
	w.Step(frame)

	pos, ok := w.Position(paddleID)
	require.True(t, ok)
	assert.InDelta(t, -620.0, pos.X, 1e-9)
	assert.InDelta(t, 120.0, pos.Y, 1e-9)
}

func TestAddBodyRejectsDuplicates(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(ballID, ballDef(0, 0)))

	err := w.AddBody(ballID, ballDef(0, 0))
	assert.ErrorIs(t, err, ErrBodyExists)
	assert.Equal(t, 1, w.BodyCount())
}

func TestRemoveBodyForgetsContacts(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(paddleID, BodyDef{Kind: Kinematic, Shape: BoxShape(5, 75)}))
	require.NoError(t, w.AddBody(ballID, ballDef(20, 0)))
	w.Step(frame)
	require.True(t, w.IsTouching(ballID, paddleID))

	w.RemoveBody(paddleID)

	assert.False(t, w.HasBody(paddleID))
	assert.Empty(t, w.Touching(ballID))
	_, ok := w.Position(paddleID)
	assert.False(t, ok)
}

func TestStaticBodyIgnoresVelocity(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddBody(wallID, BodyDef{Kind: Static, Shape: BoxShape(640, 3), Position: Vec2{Y: 360}}))

	w.SetVelocity(wallID, Vec2{X: 50})
	w.Step(frame)

	pos, _ := w.Position(wallID)
	assert.InDelta(t, 0.0, pos.X, 1e-9)
	assert.InDelta(t, 360.0, pos.Y, 1e-9)
	kind, ok := w.Kind(wallID)
	require.True(t, ok)
	assert.Equal(t, Static, kind)
}
