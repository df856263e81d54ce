package ecs

// Get fetches a component and asserts it to T. A missing component or a
// component of another type both report false.
func Get[T any](w *World, entityID EntityID, componentID ComponentID) (T, bool) {
	var zero T
	component, ok := w.GetComponent(entityID, componentID)
	if !ok {
		return zero, false
	}
	typed, ok := component.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// ForEach calls fn for every entity carrying a T under componentID, in
// entity ID order
func ForEach[T any](w *World, componentID ComponentID, fn func(EntityID, T)) {
	for _, entity := range w.GetEntitiesWithComponent(componentID) {
		if typed, ok := Get[T](w, entity.ID, componentID); ok {
			fn(entity.ID, typed)
		}
	}
}
