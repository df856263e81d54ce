package systems

import (
	"go.uber.org/zap"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
)

// BallResetSystem returns the ball to the origin when a ResetBall event arrives
type BallResetSystem struct {
	roster *components.Roster
	logger *zap.Logger
}

// NewBallResetSystem creates a ball reset system. roster and logger may be nil.
func NewBallResetSystem(roster *components.Roster, logger *zap.Logger) *BallResetSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BallResetSystem{roster: roster, logger: logger}
}

// Update drains ResetBall events in order. With several in one frame the
// last one decides the serve.
func (s *BallResetSystem) Update(world *ecs.World, dt float64) {
	world.Events().Read(EventResetBall, func(event ecs.Event) {
		reset, ok := event.(ResetBallEvent)
		if !ok {
			return
		}
		for _, ball := range s.balls(world) {
			s.reset(world, ball, reset.Player)
		}
	})
}

func (s *BallResetSystem) reset(world *ecs.World, ball ecs.EntityID, serve components.Player) {
	if transform, ok := ecs.Get[*components.TransformComponent](world, ball, components.Transform); ok {
		transform.X, transform.Y = 0, 0
	}
	if velocity, ok := ecs.Get[*components.VelocityComponent](world, ball, components.Velocity); ok {
		*velocity = serve.ServeVelocity()
	}
	s.logger.Debug("ball reset", zap.Stringer("serve", serve), zap.Uint64("frame", world.Frame()))
}

func (s *BallResetSystem) balls(world *ecs.World) []ecs.EntityID {
	if s.roster != nil && s.roster.Ball != ecs.NoEntity {
		return []ecs.EntityID{s.roster.Ball}
	}
	var ids []ecs.EntityID
	for _, entity := range world.GetEntitiesWithComponent(components.Ball) {
		ids = append(ids, entity.ID)
	}
	return ids
}
