// Package input describes the keyboard state the game reads each frame.
// The ebiten-backed implementation lives with the screens; tests use State.
package input

// Key identifies a physical key the game binds to
type Key int

// Keys the game binds
const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyArrowUp
	KeyArrowDown
	KeySpace
	KeyP
	KeyEscape
	KeyF1
)

// Keys lists every bindable key
var Keys = []Key{KeyW, KeyS, KeyArrowUp, KeyArrowDown, KeySpace, KeyP, KeyEscape, KeyF1}

var keyNames = map[Key]string{
	KeyW:         "W",
	KeyS:         "S",
	KeyArrowUp:   "ArrowUp",
	KeyArrowDown: "ArrowDown",
	KeySpace:     "Space",
	KeyP:         "P",
	KeyEscape:    "Escape",
	KeyF1:        "F1",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Provider reports keyboard state for the current frame
type Provider interface {
	// IsPressed reports whether the key is held this frame
	IsPressed(key Key) bool
	// IsJustPressed reports whether the key went down this frame
	IsJustPressed(key Key) bool
}

// State is a Provider backed by plain sets. Useful for replays and tests.
type State struct {
	Held        map[Key]bool
	JustPressed map[Key]bool
}

// NewState creates an empty State
func NewState() *State {
	return &State{
		Held:        make(map[Key]bool),
		JustPressed: make(map[Key]bool),
	}
}

// Press marks a key as held and freshly pressed
func (s *State) Press(key Key) {
	s.Held[key] = true
	s.JustPressed[key] = true
}

// Hold marks a key as held without a fresh press edge
func (s *State) Hold(key Key) {
	s.Held[key] = true
}

// Release clears a key
func (s *State) Release(key Key) {
	delete(s.Held, key)
	delete(s.JustPressed, key)
}

// EndFrame drops the just-pressed edges, as the next frame would
func (s *State) EndFrame() {
	for key := range s.JustPressed {
		delete(s.JustPressed, key)
	}
}

// IsPressed implements Provider
func (s *State) IsPressed(key Key) bool {
	return s.Held[key]
}

// IsJustPressed implements Provider
func (s *State) IsJustPressed(key Key) bool {
	return s.JustPressed[key]
}
