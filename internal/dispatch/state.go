package dispatch

// State is a step of a dispatcher run.
type State int

const (
	Validating State = iota
	Preparing
	Compiling
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Preparing:
		return "preparing"
	case Compiling:
		return "compiling"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
