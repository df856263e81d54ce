package systems

import (
	"strconv"

	"go.uber.org/zap"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
)

// ScoreSystem owns the match score and keeps the score displays in sync
type ScoreSystem struct {
	score  *components.Score
	roster *components.Roster
	logger *zap.Logger
}

// NewScoreSystem creates a score system with both players at zero. roster and
// logger may be nil.
func NewScoreSystem(roster *components.Roster, logger *zap.Logger) *ScoreSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreSystem{
		score:  components.NewScore(),
		roster: roster,
		logger: logger,
	}
}

// Score returns the live score. Callers must not mutate it.
func (s *ScoreSystem) Score() *components.Score {
	return s.score
}

// Update drains GainPoint events in order
func (s *ScoreSystem) Update(world *ecs.World, dt float64) {
	world.Events().Read(EventGainPoint, func(event ecs.Event) {
		gain, ok := event.(GainPointEvent)
		if !ok {
			return
		}
		total := s.score.Increment(gain.Player)
		s.logger.Info("point scored",
			zap.Stringer("player", gain.Player),
			zap.Int("score", total),
			zap.Uint64("frame", world.Frame()),
		)
		s.updateDisplay(world, gain.Player, total)
	})
}

// updateDisplay writes total into p's score text. A missing display is skipped.
func (s *ScoreSystem) updateDisplay(world *ecs.World, p components.Player, total int) {
	display, ok := s.display(world, p)
	if !ok {
		return
	}
	if text, ok := ecs.Get[*components.TextComponent](world, display, components.Text); ok {
		text.Value = strconv.Itoa(total)
	}
}

func (s *ScoreSystem) display(world *ecs.World, p components.Player) (ecs.EntityID, bool) {
	if s.roster != nil {
		id, ok := s.roster.Display(p)
		return id, ok
	}
	for _, entity := range world.GetEntitiesWithTag(components.TagScoreDisplay) {
		owner, ok := ecs.Get[*components.PlayerComponent](world, entity.ID, components.Owner)
		if ok && owner.Player == p {
			return entity.ID, true
		}
	}
	return ecs.NoEntity, false
}
