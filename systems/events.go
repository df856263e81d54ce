package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/ecs"
)

// Event type constants
const (
	EventResetBall ecs.EventType = "reset_ball"
	EventGainPoint ecs.EventType = "gain_point"
)

// ResetBallEvent asks for the ball to return to the origin with the serve
// vector of Player
type ResetBallEvent struct {
	Player components.Player // Player who owns the restart
}

// Type returns the event type
func (e ResetBallEvent) Type() ecs.EventType {
	return EventResetBall
}

// GainPointEvent is emitted when a player scores
type GainPointEvent struct {
	Player components.Player // Player credited with the point
}

// Type returns the event type
func (e GainPointEvent) Type() ecs.EventType {
	return EventGainPoint
}
