package ecs

// ComponentID identifies a component kind. The components package assigns them.
type ComponentID uint

// Component is any value attached to an entity. Systems store pointers so
// they can update them in place.
type Component = any

// ComponentMap holds one entity's components keyed by kind
type ComponentMap map[ComponentID]Component
