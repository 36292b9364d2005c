package tracking

type State int

const (
	StateIdle State = iota
	StateForegroundWatching
	StateBackgroundWatching
)

func (s State) String() string {
	switch s {
	case StateForegroundWatching:
		return "foreground_watching"
	case StateBackgroundWatching:
		return "background_watching"
	default:
		return "idle"
	}
}
