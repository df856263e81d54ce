package physics

import (
	"slices"

	"ebiten-pong/ecs"
)

// contactPair is an unordered pair stored with the smaller ID first
type contactPair struct {
	a, b ecs.EntityID
}

func newContactPair(a, b ecs.EntityID) contactPair {
	if b < a {
		a, b = b, a
	}
	return contactPair{a: a, b: b}
}

// ContactTracker keeps the set of entity pairs that are currently touching.
// A pair enters on its first contact and leaves when the shapes separate, so
// a long overlap is reported once per begin.
type ContactTracker struct {
	active map[contactPair]bool
}

// NewContactTracker creates an empty tracker
func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		active: make(map[contactPair]bool),
	}
}

// Begin registers a contact. It returns true if the pair was not already touching.
func (t *ContactTracker) Begin(a, b ecs.EntityID) bool {
	key := newContactPair(a, b)
	if t.active[key] {
		return false
	}
	t.active[key] = true
	return true
}

// End removes a contact
func (t *ContactTracker) End(a, b ecs.EntityID) {
	delete(t.active, newContactPair(a, b))
}

// IsTouching reports whether a and b are in contact
func (t *ContactTracker) IsTouching(a, b ecs.EntityID) bool {
	return t.active[newContactPair(a, b)]
}

// Touching returns every entity in contact with id, in ascending order
func (t *ContactTracker) Touching(id ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
	for key := range t.active {
		switch id {
		case key.a:
			out = append(out, key.b)
		case key.b:
			out = append(out, key.a)
		}
	}
	slices.Sort(out)
	return out
}

// Forget drops every contact involving id
func (t *ContactTracker) Forget(id ecs.EntityID) {
	for key := range t.active {
		if key.a == id || key.b == id {
			delete(t.active, key)
		}
	}
}

// Clear removes all contacts
func (t *ContactTracker) Clear() {
	t.active = make(map[contactPair]bool)
}

// Len returns the number of touching pairs
func (t *ContactTracker) Len() int {
	return len(t.active)
}
