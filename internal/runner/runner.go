// Package runner drives a run: it pulls each line from the input, expands
// the command template, executes it and records the outcome, strictly one
// line after another.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/shoxxdj/lfd/internal/config"
	"github.com/shoxxdj/lfd/internal/executor"
	"github.com/shoxxdj/lfd/internal/report"
	"github.com/shoxxdj/lfd/internal/source"
	"github.com/shoxxdj/lfd/internal/template"
)

// CommandExecutor runs one expanded command to completion.
type CommandExecutor interface {
	Execute(ctx context.Context, cmd template.Command) executor.Outcome
}

// Options wires the collaborators of a Runner. Nil fields get defaults:
// an executor on the process's own streams, a silent reporter and the
// standard logger.
type Options struct {
	Executor CommandExecutor
	Reporter report.Reporter
	Logger   logrus.FieldLogger
}

// Runner executes the command template once per input line. A Runner is
// single-use.
type Runner struct {
	cfg      *config.RunConfig
	executor CommandExecutor
	reporter report.Reporter
	log      logrus.FieldLogger

	state   State
	summary report.Summary
	records []report.Record
}

// New creates an idle runner for cfg.
func New(cfg *config.RunConfig, opts Options) *Runner {
	r := &Runner{
		cfg:      cfg,
		executor: opts.Executor,
		reporter: opts.Reporter,
		log:      opts.Logger,
		state:    StateIdle,
	}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	if r.executor == nil {
		r.executor = executor.NewExecutor(executor.Options{Logger: r.log})
	}
	if r.reporter == nil {
		r.reporter = report.SilentReporter{}
	}
	return r
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Run processes the whole input file. Per-line failures are counted and
// never stop the run; only a file that cannot be opened, or a template
// that expands to nothing, returns an error. In both of those cases no
// summary is reported.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.state != StateIdle {
		return Result{}, fmt.Errorf("run already %s", r.state)
	}
	if err := r.cfg.Validate(); err != nil {
		return Result{}, err
	}

	src, err := source.Open(r.cfg.FilePath)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	r.state = StateRunning
	r.reporter.ReportStart(r.cfg)
	r.log.WithField("file", r.cfg.FilePath).Debug("run started")

	for {
		select {
		case <-ctx.Done():
			return r.result(), ctx.Err()
		default:
		}

		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var lineErr *source.LineReadError
		if errors.As(err, &lineErr) {
			r.recordReadFailure(lineErr)
			continue
		}
		if err != nil {
			return r.result(), fmt.Errorf("failed to read '%s': %w", r.cfg.FilePath, err)
		}

		if err := r.processLine(ctx, line); err != nil {
			return r.result(), err
		}
	}

	r.state = StateDone
	r.log.WithFields(logrus.Fields{
		"processed": r.summary.LinesProcessed,
		"successes": r.summary.Successes,
		"errors":    r.summary.Errors,
	}).Debug("run finished")
	r.reporter.ReportSummary(r.summary)

	return r.result(), nil
}

func (r *Runner) processLine(ctx context.Context, line source.Line) error {
	cmd, ok := template.ExpandCommand(r.cfg.Template, r.cfg.Placeholder, line.Text)
	if !ok {
		return &config.ConfigError{Field: "command", Message: "no command specified"}
	}

	r.reporter.ReportLineStart(line, cmd)
	outcome := r.executor.Execute(ctx, cmd)

	r.summary.Record(outcome)
	r.records = append(r.records, report.NewRecord(line.Number, line.Text, cmd.Argv(), outcome))
	r.reporter.ReportLineResult(line.Number, outcome)

	r.log.WithFields(logrus.Fields{
		"line":    line.Number,
		"outcome": outcome.Kind.String(),
	}).Debug("line processed")
	return nil
}

func (r *Runner) recordReadFailure(lineErr *source.LineReadError) {
	outcome := executor.LineReadFailed(lineErr)

	r.summary.Record(outcome)
	r.records = append(r.records, report.NewRecord(lineErr.Line, "", nil, outcome))
	r.reporter.ReportLineResult(lineErr.Line, outcome)

	r.log.WithError(lineErr.Err).WithField("line", lineErr.Line).Debug("line unreadable")
}

func (r *Runner) result() Result {
	return Result{
		Summary: r.summary,
		Records: append([]report.Record(nil), r.records...),
	}
}
