package ecs

// EntityID is a unique identifier for an entity within one World
type EntityID uint64

// NoEntity is the zero EntityID; worlds never hand it out
const NoEntity EntityID = 0

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags give cheap identification ("ball", "paddle", "goal")
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
