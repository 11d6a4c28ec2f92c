// Package game runs the interactive floor viewer: a tcell loop that walks
// an explorer probe over generated floors and shows their quality.
package game

// Mode selects what the viewer highlights.
type Mode int

const (
	// ModeExplore draws the floor with its entities.
	ModeExplore Mode = iota
	// ModeReachability also highlights every tile reachable from the first room.
	ModeReachability
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeReachability:
		return "reachability"
	default:
		return "unknown"
	}
}

// Toggle switches between the two modes.
func (m Mode) Toggle() Mode {
	if m == ModeExplore {
		return ModeReachability
	}
	return ModeExplore
}
