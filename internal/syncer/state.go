package syncer

// State is a phase of a sync run.
type State int

const (
	StateInit State = iota
	StateFetchSource
	StateFetchTargetLibrary
	StateMatchLoop
	StateDone
	StateError
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateFetchSource:
		return "fetch_source"
	case StateFetchTargetLibrary:
		return "fetch_target_library"
	case StateMatchLoop:
		return "match_loop"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
