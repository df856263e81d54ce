// Package physics is the rigid-body and collision provider behind the game.
// It wraps a Chipmunk2D space and reports, per entity, which other entities
// it is currently touching.
package physics

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// BodyKind selects how a body moves
type BodyKind int

const (
	// Dynamic bodies are integrated and respond to collisions
	Dynamic BodyKind = iota
	// Kinematic bodies are moved externally and push dynamic bodies
	Kinematic
	// Static bodies never move
	Static
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// ShapeKind selects a collider primitive
type ShapeKind int

const (
	Box ShapeKind = iota
	Circle
)

// Shape describes a collider centred on its body
type Shape struct {
	Kind       ShapeKind
	HalfWidth  float64 // Box only
	HalfHeight float64 // Box only
	Radius     float64 // Circle only
}

// BoxShape returns a box collider with the given half extents
func BoxShape(halfWidth, halfHeight float64) Shape {
	return Shape{Kind: Box, HalfWidth: halfWidth, HalfHeight: halfHeight}
}

// CircleShape returns a circle collider
func CircleShape(radius float64) Shape {
	return Shape{Kind: Circle, Radius: radius}
}

// BodyDef is everything needed to create a body
type BodyDef struct {
	Kind     BodyKind
	Shape    Shape
	Position Vec2
	Velocity Vec2
	// Mass of a dynamic body; zero means 1
	Mass float64
	// Restitution of the collider. Elasticities multiply when two colliders
	// meet, so zero is treated as the neutral 1.0 and the larger explicit
	// value wins against neutral colliders.
	Restitution float64
	// Sensor colliders report overlaps but exert no force
	Sensor bool
	// ReportContacts enables touching-set tracking for pairs involving this body
	ReportContacts bool
}
