package executor

import "fmt"

// SpawnError reports a command that could not be started at all, for
// example because the program does not exist or is not executable.
type SpawnError struct {
	Program       string
	OriginalError error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start '%s': %v", e.Program, e.OriginalError)
}

func (e *SpawnError) Unwrap() error {
	return e.OriginalError
}

// ExitError reports a command that ran and did not exit with status 0.
// ExitCode is nil when the process was terminated by a signal.
type ExitError struct {
	CommandLine   string
	ExitCode      *int
	OriginalError error
}

func (e *ExitError) Error() string {
	if e.ExitCode == nil {
		return fmt.Sprintf("command '%s' failed: %v", e.CommandLine, e.OriginalError)
	}
	return fmt.Sprintf("command '%s' exited with code %d", e.CommandLine, *e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.OriginalError
}
