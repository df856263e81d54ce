package components

import (
	"sort"
	"strings"

	"ebiten-pong/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Transform":  Transform,
	"Velocity":   Velocity,
	"Body":       Body,
	"Colliding":  Colliding,
	"Sprite":     Sprite,
	"Owner":      Owner,
	"Paddle":     Paddle,
	"Ball":       Ball,
	"GoalSensor": GoalSensor,
	"Text":       Text,
	"Name":       Name,
}

// GetComponentIDByName returns the ComponentID for a given component name.
// The lookup is case-insensitive.
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	name = strings.ToLower(name)
	for compName, id := range componentNameMap {
		if strings.ToLower(compName) == name {
			return id, true
		}
	}

	return 0, false
}

// ComponentName returns the registered name of a component ID
func ComponentName(id ecs.ComponentID) string {
	for name, compID := range componentNameMap {
		if compID == id {
			return name
		}
	}
	return "Unknown"
}

// ComponentNames lists the names of the components attached to an entity,
// sorted alphabetically
func ComponentNames(world *ecs.World, entityID ecs.EntityID) []string {
	names := make([]string, 0, len(componentNameMap))
	for name, id := range componentNameMap {
		if world.HasComponent(entityID, id) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// EntityName returns the entity's NameComponent value, or "" if it has none
func EntityName(world *ecs.World, entityID ecs.EntityID) string {
	if name, ok := ecs.Get[*NameComponent](world, entityID, Name); ok {
		return name.Name
	}
	return ""
}
