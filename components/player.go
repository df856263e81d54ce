package components

import "image/color"

// Player identifies one side of the match. It is comparable and used as a
// map key as well as a tag on paddles, goal sensors and score displays.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

// Players lists both sides in serve order
var Players = [...]Player{Player1, Player2}

// ServeSpeed is the horizontal speed given to the ball after a reset
const ServeSpeed = 100.0

var (
	colorPlayer1 = color.RGBA{R: 255, A: 255}
	colorPlayer2 = color.RGBA{G: 128, A: 255}
)

// ServeVelocity returns the ball velocity assigned when this player owns the restart
func (p Player) ServeVelocity() VelocityComponent {
	switch p {
	case Player2:
		return VelocityComponent{X: -ServeSpeed, Y: 0}
	default:
		return VelocityComponent{X: ServeSpeed, Y: 0}
	}
}

// Color returns the player's paddle colour
func (p Player) Color() color.RGBA {
	if p == Player2 {
		return colorPlayer2
	}
	return colorPlayer1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Unknown"
	}
}

// PlayerComponent attaches a Player identity to an entity
type PlayerComponent struct {
	Player Player
}
