package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"ebiten-pong/ecs"
)

const (
	collisionTypeDefault cp.CollisionType = iota
	collisionTypeReporting
)

const defaultIterations = 10

// ErrBodyExists is returned when an entity already owns a body
var ErrBodyExists = errors.New("physics: body already registered")

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
	kind  BodyKind
}

// World owns every body and collider and tracks which entities touch
type World struct {
	space *cp.Space

	bodies     map[ecs.EntityID]*bodyInfo
	shapeOwner map[*cp.Shape]ecs.EntityID
	contacts   *ContactTracker
}

// NewWorld creates an empty zero-gravity world
func NewWorld() *World {
	w := &World{
		bodies:     make(map[ecs.EntityID]*bodyInfo),
		shapeOwner: make(map[*cp.Shape]ecs.EntityID),
		contacts:   NewContactTracker(),
	}
	w.space = newSpace()
	w.installHandlers()
	return w
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: 0})
	return space
}

// installHandlers hooks begin/separate for every pair involving a reporting
// shape. Sensor pairs get begin/separate callbacks too.
func (w *World) installHandlers() {
	handler := w.space.NewWildcardCollisionHandler(collisionTypeReporting)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		if a, b, ok := w.owners(arb); ok {
			w.contacts.Begin(a, b)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		if a, b, ok := w.owners(arb); ok {
			w.contacts.End(a, b)
		}
	}
}

func (w *World) owners(arb *cp.Arbiter) (ecs.EntityID, ecs.EntityID, bool) {
	shapeA, shapeB := arb.Shapes()
	a, okA := w.shapeOwner[shapeA]
	b, okB := w.shapeOwner[shapeB]
	if !okA || !okB || a == b {
		return 0, 0, false
	}
	return a, b, true
}

// AddBody creates the body and collider for an entity
func (w *World) AddBody(id ecs.EntityID, def BodyDef) error {
	if _, exists := w.bodies[id]; exists {
		return fmt.Errorf("%w: entity %d", ErrBodyExists, id)
	}

	var body *cp.Body
	switch def.Kind {
	case Dynamic:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, moment(mass, def.Shape))
	case Kinematic:
		body = cp.NewKinematicBody()
	case Static:
		body = cp.NewStaticBody()
	default:
		return fmt.Errorf("physics: unknown body kind %d", def.Kind)
	}

	var shape *cp.Shape
	switch def.Shape.Kind {
	case Box:
		shape = cp.NewBox(body, def.Shape.HalfWidth*2, def.Shape.HalfHeight*2, 0)
	case Circle:
		shape = cp.NewCircle(body, def.Shape.Radius, cp.Vector{})
	default:
		return fmt.Errorf("physics: unknown shape kind %d", def.Shape.Kind)
	}

	restitution := def.Restitution
	if restitution == 0 {
		restitution = 1
	}
	shape.SetElasticity(restitution)
	shape.SetFriction(0)
	shape.SetSensor(def.Sensor)
	if def.ReportContacts {
		shape.SetCollisionType(collisionTypeReporting)
	} else {
		shape.SetCollisionType(collisionTypeDefault)
	}

	// Position must be set before the shape is added so static colliders
	// are indexed at the right place.
	w.space.AddBody(body)
	body.SetPosition(cp.Vector{X: def.Position.X, Y: def.Position.Y})
	if def.Kind != Static {
		body.SetVelocity(def.Velocity.X, def.Velocity.Y)
	}
	w.space.AddShape(shape)

	w.bodies[id] = &bodyInfo{body: body, shape: shape, kind: def.Kind}
	w.shapeOwner[shape] = id
	return nil
}

func moment(mass float64, shape Shape) float64 {
	if shape.Kind == Circle {
		return cp.MomentForCircle(mass, 0, shape.Radius, cp.Vector{})
	}
	return cp.MomentForBox(mass, shape.HalfWidth*2, shape.HalfHeight*2)
}

// RemoveBody deletes an entity's body. Unknown entities are ignored.
func (w *World) RemoveBody(id ecs.EntityID) {
	info, ok := w.bodies[id]
	if !ok {
		return
	}
	// Removing the shape may fire separate callbacks, which still need the owner.
	w.space.RemoveShape(info.shape)
	w.space.RemoveBody(info.body)
	delete(w.shapeOwner, info.shape)
	delete(w.bodies, id)
	w.contacts.Forget(id)
}

// HasBody reports whether id owns a body
func (w *World) HasBody(id ecs.EntityID) bool {
	_, ok := w.bodies[id]
	return ok
}

// Kind returns the body kind of id
func (w *World) Kind(id ecs.EntityID) (BodyKind, bool) {
	info, ok := w.bodies[id]
	if !ok {
		return 0, false
	}
	return info.kind, true
}

// Position returns the body position of id
func (w *World) Position(id ecs.EntityID) (Vec2, bool) {
	info, ok := w.bodies[id]
	if !ok {
		return Vec2{}, false
	}
	p := info.body.Position()
	return Vec2{X: p.X, Y: p.Y}, true
}

// SetPosition teleports the body of id
func (w *World) SetPosition(id ecs.EntityID, pos Vec2) {
	info, ok := w.bodies[id]
	if !ok {
		return
	}
	info.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	// Static shapes stay in the spatial index where they were inserted
	if info.kind == Static && w.space.ContainsShape(info.shape) {
		w.space.RemoveShape(info.shape)
		w.space.AddShape(info.shape)
	}
}

// Velocity returns the linear velocity of id
func (w *World) Velocity(id ecs.EntityID) (Vec2, bool) {
	info, ok := w.bodies[id]
	if !ok {
		return Vec2{}, false
	}
	v := info.body.Velocity()
	return Vec2{X: v.X, Y: v.Y}, true
}

// SetVelocity sets the linear velocity of id. Static bodies are ignored.
func (w *World) SetVelocity(id ecs.EntityID, vel Vec2) {
	info, ok := w.bodies[id]
	if !ok || info.kind == Static {
		return
	}
	info.body.SetVelocity(vel.X, vel.Y)
}

// Touching returns the entities touching id, in ascending order
func (w *World) Touching(id ecs.EntityID) []ecs.EntityID {
	return w.contacts.Touching(id)
}

// IsTouching reports whether a and b are in contact
func (w *World) IsTouching(a, b ecs.EntityID) bool {
	return w.contacts.IsTouching(a, b)
}

// Step advances the simulation by dt seconds. Touching sets reflect the
// positions after the step.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// BodyCount returns the number of registered bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}
