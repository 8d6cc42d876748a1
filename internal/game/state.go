// Package game provides the interactive harness around the generated world:
// input handling, movement, fog of war updates and level transitions.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where each key press moves one step.
	StateExplore State = iota
	// StateTravel follows a clicked route one step per frame until it ends
	// or something interrupts it.
	StateTravel
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateTravel:
		return "travel"
	default:
		return "unknown"
	}
}
