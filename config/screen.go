package config

// Playfield layout. World units match screen pixels; the origin is the
// centre of the window and +Y points up.
const (
	// Window dimensions in pixels
	WindowWidth  = 1280
	WindowHeight = 720

	HalfWidth  = WindowWidth / 2.0
	HalfHeight = WindowHeight / 2.0

	// Ticks per second; every tick is one simulation frame
	TPS = 60

	BallRadius      = 25.0
	BallRestitution = 1.2
	BallSpawnX      = -300.0 // First serve starts left of centre

	PaddleHalfWidth  = 5.0
	PaddleHalfHeight = 75.0
	PaddleInset      = 20.0  // Distance from the window edge to the paddle centre
	PaddleSpeed      = 100.0 // Units per second

	BorderThickness = 3.0 // Half thickness of walls and goal sensors

	// Highest and lowest paddle centre that keeps the paddle on screen
	PaddleMaxY = HalfHeight - PaddleHalfHeight
	PaddleMinY = -HalfHeight + PaddleHalfHeight
)

// FrameTime is the fixed simulation step in seconds
const FrameTime = 1.0 / TPS

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// WorldToScreen converts a world position to screen pixels (origin top-left, +Y down)
func WorldToScreen(x, y float64) (float64, float64) {
	return x + HalfWidth, HalfHeight - y
}
