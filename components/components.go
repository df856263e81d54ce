package components

import (
	"image/color"
	"slices"

	"ebiten-pong/ecs"
	"ebiten-pong/input"
	"ebiten-pong/physics"
)

// TransformComponent stores an entity's world position. The origin is the
// centre of the playfield and +Y points up.
type TransformComponent struct {
	X, Y float64
}

// VelocityComponent stores linear velocity in units per second
type VelocityComponent struct {
	X, Y float64
}

// BodyComponent describes the physics body backing an entity. The physics
// system registers it on first sight.
type BodyComponent struct {
	Def physics.BodyDef
}

// CollidingComponent lists the entities currently touching this one, in
// ascending ID order. The physics system rewrites it every step.
type CollidingComponent struct {
	Entities []ecs.EntityID
}

// Contains reports whether id is in the touching set
func (c *CollidingComponent) Contains(id ecs.EntityID) bool {
	_, found := slices.BinarySearch(c.Entities, id)
	return found
}

// SpriteShape selects how a sprite is drawn
type SpriteShape int

const (
	SpriteRect SpriteShape = iota
	SpriteDisc
)

// SpriteComponent stores rendering information
type SpriteComponent struct {
	Shape  SpriteShape
	Width  float64
	Height float64
	Color  color.RGBA
	Z      int // Higher draws later
}

// PaddleComponent stores a paddle's key bindings
type PaddleComponent struct {
	MoveUp   input.Key
	MoveDown input.Key
}

// BallComponent marks the ball
type BallComponent struct{}

// GoalSensorComponent marks a goal zone. The owning Player is stored in a
// PlayerComponent on the same entity.
type GoalSensorComponent struct{}

// TextComponent stores a display string and its slot in the score panel
type TextComponent struct {
	Value string
	Slot  int // 0 left, 1 centre, 2 right
}

// NameComponent gives an entity a readable name for logs
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}
