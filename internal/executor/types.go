package executor

import "time"

// OutcomeKind classifies the result of processing one input line.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeNonZeroExit
	OutcomeSpawnFailure
	OutcomeLineReadFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeNonZeroExit:
		return "non-zero-exit"
	case OutcomeSpawnFailure:
		return "spawn-failure"
	case OutcomeLineReadFailure:
		return "line-read-failure"
	default:
		return "unknown"
	}
}

// MarshalText lets report encoders write the kind by name.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the classified result for one line. ExitCode is set only for
// OutcomeNonZeroExit and stays nil when the child was killed by a signal.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode *int
	Err      error
	Duration time.Duration
}

// Success reports whether the outcome counts towards the success tally.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeSuccess
}

// Message returns the error text, or "" for a success.
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Succeeded builds a success outcome.
func Succeeded(d time.Duration) Outcome {
	return Outcome{Kind: OutcomeSuccess, Duration: d}
}

// ExitedNonZero builds an outcome for a child that ran and failed.
func ExitedNonZero(code *int, err error, d time.Duration) Outcome {
	return Outcome{Kind: OutcomeNonZeroExit, ExitCode: code, Err: err, Duration: d}
}

// SpawnFailed builds an outcome for a child that never started.
func SpawnFailed(err error) Outcome {
	return Outcome{Kind: OutcomeSpawnFailure, Err: err}
}

// LineReadFailed builds an outcome for an input line that could not be read.
func LineReadFailed(err error) Outcome {
	return Outcome{Kind: OutcomeLineReadFailure, Err: err}
}
