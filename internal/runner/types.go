package runner

import "github.com/shoxxdj/lfd/internal/report"

// State is the run driver's lifecycle: Idle → Running → Done.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result is what a finished run hands back to its caller.
type Result struct {
	Summary report.Summary
	Records []report.Record
}
