package components

import (
	"ebiten-pong/ecs"
)

// Define component IDs for our game
const (
	Transform    ecs.ComponentID = iota
	Velocity                     // Linear velocity, units per second
	Body                         // Physics body description
	Colliding                    // Entities currently touching this one
	Sprite                       // Drawable rectangle or disc
	Owner                        // PlayerComponent: which player an entity belongs to
	Paddle                       // Paddle key bindings
	Ball                         // Ball marker
	GoalSensor                   // Goal zone marker
	Text                         // Display text (score digits, separator)
	Name                         // Debug name
)
