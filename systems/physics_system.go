package systems

import (
	"go.uber.org/zap"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/physics"
)

// syncedState is what the physics world last reported for an entity. A
// component that differs from it was written by a system since then.
type syncedState struct {
	position components.TransformComponent
	velocity components.VelocityComponent
}

// PhysicsSystem keeps the physics world and the ECS in step: it registers
// bodies, pushes system writes into them, advances the simulation and pulls
// positions, velocities and contacts back.
type PhysicsSystem struct {
	physics *physics.World
	synced  map[ecs.EntityID]syncedState
	logger  *zap.Logger
}

// NewPhysicsSystem creates a physics system over pw. logger may be nil.
func NewPhysicsSystem(pw *physics.World, logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsSystem{
		physics: pw,
		synced:  make(map[ecs.EntityID]syncedState),
		logger:  logger,
	}
}

// World returns the underlying physics world
func (s *PhysicsSystem) World() *physics.World {
	return s.physics
}

// Update runs one physics step
func (s *PhysicsSystem) Update(world *ecs.World, dt float64) {
	s.register(world)
	s.push(world)
	s.physics.Step(dt)
	s.pull(world)
}

// register adds bodies for new entities and drops bodies whose entity is gone
func (s *PhysicsSystem) register(world *ecs.World) {
	for id := range s.synced {
		if !world.HasComponent(id, components.Body) {
			s.physics.RemoveBody(id)
			delete(s.synced, id)
			s.logger.Debug("physics body removed", zap.Uint64("entity", uint64(id)))
		}
	}

	ecs.ForEach(world, components.Body, func(id ecs.EntityID, body *components.BodyComponent) {
		if s.physics.HasBody(id) {
			return
		}

		def := body.Def
		var state syncedState
		if transform, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform); ok {
			def.Position = physics.Vec2{X: transform.X, Y: transform.Y}
			state.position = *transform
		}
		if velocity, ok := ecs.Get[*components.VelocityComponent](world, id, components.Velocity); ok {
			def.Velocity = physics.Vec2{X: velocity.X, Y: velocity.Y}
			state.velocity = *velocity
		}

		if err := s.physics.AddBody(id, def); err != nil {
			s.logger.Warn("physics body rejected", zap.Uint64("entity", uint64(id)), zap.Error(err))
			return
		}
		s.synced[id] = state
		s.logger.Debug("physics body registered",
			zap.Uint64("entity", uint64(id)),
			zap.String("name", components.EntityName(world, id)),
			zap.Stringer("kind", def.Kind),
		)
	})
}

// push copies transform and velocity writes made since the last pull into the bodies
func (s *PhysicsSystem) push(world *ecs.World) {
	for id, state := range s.synced {
		if transform, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform); ok {
			if *transform != state.position {
				s.physics.SetPosition(id, physics.Vec2{X: transform.X, Y: transform.Y})
			}
		}
		if velocity, ok := ecs.Get[*components.VelocityComponent](world, id, components.Velocity); ok {
			if *velocity != state.velocity {
				s.physics.SetVelocity(id, physics.Vec2{X: velocity.X, Y: velocity.Y})
			}
		}
	}
}

// pull copies simulated state and touching sets back into components
func (s *PhysicsSystem) pull(world *ecs.World) {
	for id := range s.synced {
		var state syncedState

		if pos, ok := s.physics.Position(id); ok {
			state.position = components.TransformComponent{X: pos.X, Y: pos.Y}
			if transform, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform); ok {
				*transform = state.position
			}
		}
		if vel, ok := s.physics.Velocity(id); ok {
			state.velocity = components.VelocityComponent{X: vel.X, Y: vel.Y}
			if velocity, ok := ecs.Get[*components.VelocityComponent](world, id, components.Velocity); ok {
				*velocity = state.velocity
			}
		}
		s.synced[id] = state

		touching := s.physics.Touching(id)
		if colliding, ok := ecs.Get[*components.CollidingComponent](world, id, components.Colliding); ok {
			colliding.Entities = touching
		} else if len(touching) > 0 {
			world.AddComponent(id, components.Colliding, &components.CollidingComponent{Entities: touching})
		}
	}
}
