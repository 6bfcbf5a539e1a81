package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/shoxxdj/lfd/internal/config"
	"github.com/shoxxdj/lfd/internal/executor"
	"github.com/shoxxdj/lfd/internal/source"
	"github.com/shoxxdj/lfd/internal/template"
)

// Reporter receives run progress. Implementations must not touch the
// child process's streams.
type Reporter interface {
	ReportStart(cfg *config.RunConfig)
	ReportLineStart(line source.Line, cmd template.Command)
	ReportLineResult(lineNumber int, outcome executor.Outcome)
	ReportSummary(summary Summary)
}

// New picks the reporter for cfg: silent in quiet mode, narrating otherwise.
func New(cfg *config.RunConfig, out, errOut io.Writer, theme Theme) Reporter {
	if cfg.Quiet {
		return SilentReporter{}
	}
	return NewConsoleReporter(out, errOut, theme)
}

// SilentReporter prints nothing.
type SilentReporter struct{}

func (SilentReporter) ReportStart(*config.RunConfig) {}
func (SilentReporter) ReportLineStart(source.Line, template.Command) {}
func (SilentReporter) ReportLineResult(int, executor.Outcome) {}
func (SilentReporter) ReportSummary(Summary) {}

// ConsoleReporter narrates the run. Successes go to out, failures to errOut.
type ConsoleReporter struct {
	out    io.Writer
	errOut io.Writer
	theme  Theme
}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter(out, errOut io.Writer, theme Theme) *ConsoleReporter {
	return &ConsoleReporter{
		out:    out,
		errOut: errOut,
		theme:  theme,
	}
}

// ReportStart prints the banner once the input file is open.
func (r *ConsoleReporter) ReportStart(cfg *config.RunConfig) {
	t := r.theme
	labels := alignLabels("📄 File:", "🔤 Variable:", "⚙️  Command:")

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, t.Title.Render("🚀 Starting lfd"))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n", t.Label.Render(labels[0]), cfg.FilePath)
	fmt.Fprintf(r.out, "%s %s\n", t.Label.Render(labels[1]), cfg.Placeholder)
	fmt.Fprintf(r.out, "%s %s\n", t.Label.Render(labels[2]), cfg.CommandLine())
	fmt.Fprintln(r.out, t.Rule)
}

// ReportLineStart prints the line number, its value and the expanded command.
func (r *ConsoleReporter) ReportLineStart(line source.Line, cmd template.Command) {
	t := r.theme
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n",
		t.Line.Render(fmt.Sprintf("[Line %d]", line.Number)),
		t.Value.Render("▶️  "+line.Text))
	fmt.Fprintf(r.out, "   %s\n", t.Command.Render("$ "+cmd.String()))
}

// ReportLineResult prints the success or failure indicator for one line.
func (r *ConsoleReporter) ReportLineResult(lineNumber int, outcome executor.Outcome) {
	t := r.theme

	switch outcome.Kind {
	case executor.OutcomeSuccess:
		fmt.Fprintf(r.out, "   %s\n",
			t.Success.Render(fmt.Sprintf("✅ Success (%s)", formatDuration(outcome.Duration))))
	case executor.OutcomeNonZeroExit:
		fmt.Fprintf(r.errOut, "   %s\n",
			t.Failure.Render(fmt.Sprintf("❌ Failed (code: %s) after %s",
				formatExitCode(outcome.ExitCode), formatDuration(outcome.Duration))))
	case executor.OutcomeSpawnFailure:
		fmt.Fprintf(r.errOut, "   %s\n",
			t.Failure.Render("❌ Execution error: "+outcome.Message()))
	case executor.OutcomeLineReadFailure:
		fmt.Fprintf(r.errOut, "%s\n",
			t.Warning.Render(fmt.Sprintf("⚠️  Error line %d: %s", lineNumber, unwrapMessage(outcome))))
	}
}

// ReportSummary prints the final tally and a closing message.
func (r *ConsoleReporter) ReportSummary(summary Summary) {
	t := r.theme
	labels := alignLabels("📝 Lines processed:", "✅ Successful:", "❌ Errors:")

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, t.Rule)
	fmt.Fprintln(r.out, t.Title.Render("📊 Summary"))
	fmt.Fprintf(r.out, "%s %d\n", t.Label.Render(labels[0]), summary.LinesProcessed)
	fmt.Fprintf(r.out, "%s %s\n", t.Label.Render(labels[1]), t.Success.Render(fmt.Sprint(summary.Successes)))
	fmt.Fprintf(r.out, "%s %s\n", t.Label.Render(labels[2]), t.Failure.Render(fmt.Sprint(summary.Errors)))
	fmt.Fprintln(r.out)

	if summary.AllSucceeded() {
		fmt.Fprintln(r.out, t.Success.Render("🎉 All commands executed successfully!"))
	} else {
		fmt.Fprintln(r.out, t.Warning.Render("⚠️  Some commands failed."))
	}
	fmt.Fprintln(r.out)
}

// alignLabels pads labels to a common display width; emoji are two
// columns wide, so byte or rune counts do not line up.
func alignLabels(labels ...string) []string {
	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l))
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = runewidth.FillRight(l, width)
	}
	return out
}

func formatExitCode(code *int) string {
	if code == nil {
		return "unknown"
	}
	return fmt.Sprint(*code)
}

// unwrapMessage drops the "line N:" prefix a LineReadError already carries.
func unwrapMessage(outcome executor.Outcome) string {
	var lerr *source.LineReadError
	if errors.As(outcome.Err, &lerr) {
		return lerr.Err.Error()
	}
	return outcome.Message()
}

// formatDuration formats a duration for human-readable output
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fμs", float64(d.Nanoseconds())/1000.0)
	} else if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Nanoseconds())/1000000.0)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}
