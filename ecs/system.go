package ecs

// Phase orders systems inside a frame. Lower phases run first.
type Phase uint8

const (
	// PhasePhysics integrates motion and refreshes collision sets
	PhasePhysics Phase = iota
	// PhaseUpdate reads input and collision sets and emits events
	PhaseUpdate
	// PhasePostUpdate drains the frame's events
	PhasePostUpdate

	phaseCount
)

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called once per frame with the elapsed frame time in seconds
	Update(world *World, dt float64)
}

// SystemFunc adapts a plain function to the System interface
type SystemFunc func(world *World, dt float64)

// Update calls f(world, dt)
func (f SystemFunc) Update(world *World, dt float64) {
	f(world, dt)
}
