package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that observes events as they are emitted
type EventHandler func(Event)

// EventQueue is a single-frame mailbox. Events emitted during a frame stay
// readable, in emission order, until the World clears the queue at the start
// of the next frame. Nothing carries over between frames.
type EventQueue struct {
	events      []Event
	subscribers map[EventType][]EventHandler
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events:      make([]Event, 0, 8),
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers an observer that is called synchronously for every
// emitted event of the given type. Observers cannot consume events; readers
// still see them through Read.
func (q *EventQueue) Subscribe(eventType EventType, handler EventHandler) {
	q.subscribers[eventType] = append(q.subscribers[eventType], handler)
}

// Emit appends an event to the current frame and notifies observers
func (q *EventQueue) Emit(event Event) {
	q.events = append(q.events, event)

	for _, handler := range q.subscribers[event.Type()] {
		handler(event)
	}
}

// Read calls fn for every event of the given type emitted this frame, in
// emission order. Every reader sees every event.
func (q *EventQueue) Read(eventType EventType, fn func(Event)) {
	for _, event := range q.events {
		if event.Type() == eventType {
			fn(event)
		}
	}
}

// Events returns a copy of all events emitted this frame
func (q *EventQueue) Events() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// Len returns the number of events emitted this frame
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops every pending event. Subscriptions are kept.
func (q *EventQueue) Clear() {
	for i := range q.events {
		q.events[i] = nil
	}
	q.events = q.events[:0]
}
