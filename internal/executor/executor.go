package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shoxxdj/lfd/internal/template"
)

// Options configures where a child process reads and writes.
// Nil streams default to the invoking process's own.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger logrus.FieldLogger
}

// Executor runs one expanded command at a time and classifies the result.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    logrus.FieldLogger
}

// NewExecutor creates an executor, defaulting unset options to the process's streams.
func NewExecutor(opts Options) *Executor {
	e := &Executor{
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		log:    opts.Logger,
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	return e
}

// Execute spawns cmd with the executor's streams attached directly to the
// child, waits for it to exit and classifies the result. It never panics
// on a failed command: every failure is returned as an Outcome.
func (e *Executor) Execute(ctx context.Context, cmd template.Command) Outcome {
	log := e.log.WithField("program", cmd.Program)

	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	execCmd.Stdin = e.stdin
	execCmd.Stdout = e.stdout
	execCmd.Stderr = e.stderr

	start := time.Now()
	if err := execCmd.Start(); err != nil {
		log.WithError(err).Debug("spawn failed")
		return SpawnFailed(&SpawnError{
			Program:       cmd.Program,
			OriginalError: err,
		})
	}
	log.WithField("pid", execCmd.Process.Pid).Debug("process started")

	err := execCmd.Wait()
	duration := time.Since(start)

	if err == nil {
		log.WithField("duration", duration).Debug("process exited")
		return Succeeded(duration)
	}

	code := extractExitCode(execCmd, err)
	entry := log.WithError(err).WithField("duration", duration)
	if code != nil {
		entry = entry.WithField("exit_code", *code)
	}
	entry.Debug("process failed")

	return ExitedNonZero(code, &ExitError{
		CommandLine:   cmd.String(),
		ExitCode:      code,
		OriginalError: err,
	}, duration)
}

// extractExitCode returns the child's exit status, or nil when it is not
// known (terminated by a signal, or Wait failed for another reason).
func extractExitCode(execCmd *exec.Cmd, err error) *int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return knownCode(exitErr.ExitCode())
	}
	if execCmd.ProcessState != nil && !execCmd.ProcessState.Success() {
		return knownCode(execCmd.ProcessState.ExitCode())
	}
	return nil
}

func knownCode(code int) *int {
	if code < 0 {
		return nil
	}
	return &code
}
