package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-pong/ecs"
)

func TestContactTrackerBeginOnce(t *testing.T) {
	tr := NewContactTracker()

	assert.True(t, tr.Begin(1, 2))
	assert.False(t, tr.Begin(2, 1), "pairs are unordered")
	assert.True(t, tr.IsTouching(2, 1))
	assert.Equal(t, 1, tr.Len())

	tr.End(2, 1)
	assert.False(t, tr.IsTouching(1, 2))
	assert.True(t, tr.Begin(1, 2))
}

func TestContactTrackerTouchingSorted(t *testing.T) {
	tr := NewContactTracker()
	tr.Begin(5, 9)
	tr.Begin(5, 3)
	tr.Begin(7, 5)
	tr.Begin(3, 9)

	assert.Equal(t, []ecs.EntityID{3, 7, 9}, tr.Touching(5))
	assert.Equal(t, []ecs.EntityID{5, 9}, tr.Touching(3))
	assert.Empty(t, tr.Touching(42))
}

func TestContactTrackerForget(t *testing.T) {
	tr := NewContactTracker()
	tr.Begin(1, 2)
	tr.Begin(1, 3)
	tr.Begin(2, 3)

	tr.Forget(1)

	assert.Equal(t, []ecs.EntityID{3}, tr.Touching(2))
	assert.Empty(t, tr.Touching(1))

	tr.Clear()
	assert.Zero(t, tr.Len())
}
