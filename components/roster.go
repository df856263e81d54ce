package components

import "ebiten-pong/ecs"

// Roster indexes the entities that carry a Player identity so systems can
// find them without scanning tags every frame.
type Roster struct {
	Ball     ecs.EntityID
	Paddles  map[Player]ecs.EntityID
	Goals    map[Player]ecs.EntityID
	Displays map[Player]ecs.EntityID
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		Paddles:  make(map[Player]ecs.EntityID),
		Goals:    make(map[Player]ecs.EntityID),
		Displays: make(map[Player]ecs.EntityID),
	}
}

// Display returns the score display for p
func (r *Roster) Display(p Player) (ecs.EntityID, bool) {
	id, ok := r.Displays[p]
	return id, ok
}
