package player

// State is the output state of a source.
//
//	┌──────────┐    Play     ┌──────────┐
//	│ Stopped  │ ──────────▶ │ Playing  │
//	└──────────┘ ◀────────── └──────────┘
//	               Pause
//
// A live stream has no paused position: Pause drops the connection and the
// next Play joins the broadcast at its current point.
type State int

const (
	Stopped State = iota
	Playing
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}
