package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/input"
)

// ClassifierSystem turns the ball's contacts into game events. Paddle hits
// only recolour the ball; goal sensors produce ResetBall and GainPoint.
type ClassifierSystem struct {
	input    input.Provider
	roster   *components.Roster
	resetKey input.Key
}

// NewClassifierSystem creates a classifier. roster may be nil, in which case
// the ball and goal sensors are found by scanning components.
func NewClassifierSystem(in input.Provider, roster *components.Roster) *ClassifierSystem {
	return &ClassifierSystem{
		input:    in,
		roster:   roster,
		resetKey: input.KeySpace,
	}
}

// Update classifies this frame's contacts
func (s *ClassifierSystem) Update(world *ecs.World, dt float64) {
	ball, ok := s.ball(world)
	if !ok {
		return
	}

	s.recolorOnPaddleHit(world, ball)
	s.detectResets(world, ball)
}

func (s *ClassifierSystem) ball(world *ecs.World) (ecs.EntityID, bool) {
	if s.roster != nil && s.roster.Ball != ecs.NoEntity {
		return s.roster.Ball, world.GetEntity(s.roster.Ball) != nil
	}
	balls := world.GetEntitiesWithComponent(components.Ball)
	if len(balls) == 0 {
		return ecs.NoEntity, false
	}
	return balls[0].ID, true
}

// recolorOnPaddleHit tints the ball with the colour of the first paddle it touches
func (s *ClassifierSystem) recolorOnPaddleHit(world *ecs.World, ball ecs.EntityID) {
	colliding, ok := ecs.Get[*components.CollidingComponent](world, ball, components.Colliding)
	if !ok {
		return
	}
	sprite, ok := ecs.Get[*components.SpriteComponent](world, ball, components.Sprite)
	if !ok {
		return
	}

	for _, other := range colliding.Entities {
		if !world.HasComponent(other, components.Paddle) {
			continue
		}
		owner, ok := ecs.Get[*components.PlayerComponent](world, other, components.Owner)
		if !ok {
			continue
		}
		sprite.Color = owner.Player.Color()
		return
	}
}

// detectResets emits the manual reset, or one ResetBall/GainPoint pair per
// goal sensor the ball is inside
func (s *ClassifierSystem) detectResets(world *ecs.World, ball ecs.EntityID) {
	if s.input != nil && s.input.IsJustPressed(s.resetKey) {
		world.EmitEvent(ResetBallEvent{Player: components.Player1})
		return
	}

	for _, goal := range s.goals(world) {
		colliding, ok := ecs.Get[*components.CollidingComponent](world, goal, components.Colliding)
		if !ok || !colliding.Contains(ball) {
			continue
		}
		owner, ok := ecs.Get[*components.PlayerComponent](world, goal, components.Owner)
		if !ok {
			continue
		}
		world.EmitEvent(ResetBallEvent{Player: owner.Player})
		world.EmitEvent(GainPointEvent{Player: owner.Player})
	}
}

// goals lists goal sensors in Player order when a roster is available,
// otherwise in entity order
func (s *ClassifierSystem) goals(world *ecs.World) []ecs.EntityID {
	var ids []ecs.EntityID
	if s.roster != nil && len(s.roster.Goals) > 0 {
		for _, p := range components.Players {
			if id, ok := s.roster.Goals[p]; ok {
				ids = append(ids, id)
			}
		}
		return ids
	}
	for _, entity := range world.GetEntitiesWithComponent(components.GoalSensor) {
		ids = append(ids, entity.ID)
	}
	return ids
}
