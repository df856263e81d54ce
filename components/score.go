package components

// Score counts points per player for the whole session. It is owned by the
// score system; everyone else reads it.
type Score struct {
	points map[Player]int
}

// NewScore creates a score with both players at zero
func NewScore() *Score {
	s := &Score{points: make(map[Player]int, len(Players))}
	for _, p := range Players {
		s.points[p] = 0
	}
	return s
}

// Get returns p's points
func (s *Score) Get(p Player) int {
	return s.points[p]
}

// Increment adds exactly one point to p and returns the new total
func (s *Score) Increment(p Player) int {
	s.points[p]++
	return s.points[p]
}

// Snapshot returns a copy of all totals
func (s *Score) Snapshot() map[Player]int {
	out := make(map[Player]int, len(s.points))
	for p, v := range s.points {
		out[p] = v
	}
	return out
}
