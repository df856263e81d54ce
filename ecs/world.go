package ecs

import "sort"

// World manages all entities and components
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Systems bucketed by phase, run in registration order within a phase
	systems [phaseCount][]System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Per-frame event mailbox
	events *EventQueue

	frame uint64
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]*Entity),
		components: make(map[EntityID]ComponentMap),
		entityTags: make(map[string]map[EntityID]bool),
		events:     NewEventQueue(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity. Unknown entities are ignored.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.GetComponent(entityID, componentID)
	return exists
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// AddSystem registers a system to run in the given phase
func (w *World) AddSystem(phase Phase, system System) {
	if phase >= phaseCount {
		phase = PhasePostUpdate
	}
	w.systems[phase] = append(w.systems[phase], system)
}

// Update runs one frame: the event queue is cleared, then every phase runs
// its systems in order.
func (w *World) Update(dt float64) {
	w.frame++
	w.events.Clear()

	for phase := range w.systems {
		for _, system := range w.systems[phase] {
			system.Update(w, dt)
		}
	}
}

// Frame returns the number of frames run so far
func (w *World) Frame() uint64 {
	return w.frame
}

// GetSystems returns all registered systems in execution order
func (w *World) GetSystems() []System {
	var out []System
	for phase := range w.systems {
		out = append(out, w.systems[phase]...)
	}
	return out
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortEntities(entities)
	return entities
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// GetEntitiesWithComponent returns all entities that have a specific
// component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			if entity, ok := w.entities[id]; ok {
				entities = append(entities, entity)
			}
		}
	}
	sortEntities(entities)
	return entities
}

// Events returns the world's per-frame event queue
func (w *World) Events() *EventQueue {
	return w.events
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.events.Emit(event)
}

// map iteration order is random; systems rely on stable ordering
func sortEntities(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
}
