package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shoxxdj/lfd/internal/config"
	"github.com/shoxxdj/lfd/internal/executor"
	"github.com/shoxxdj/lfd/internal/logging"
	"github.com/shoxxdj/lfd/internal/report"
	"github.com/shoxxdj/lfd/internal/runner"
	"github.com/shoxxdj/lfd/internal/source"
)

// Exit codes. Per-line failures never change the exit code.
const (
	ExitOK    = 0
	ExitFatal = 1
)

// CLIOptions holds the parsed flags.
type CLIOptions struct {
	Quiet      bool   // Only the child processes' own output is shown
	Version    bool   // Show version information
	NoColor    bool   // Disable colored narration
	LogLevel   string // Diagnostic log level
	ReportPath string // Write a run report to this path
}

// CLI is the lfd command-line interface.
type CLI struct {
	options CLIOptions
	version string
	cmd     *cobra.Command
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	isTTY   func(io.Writer) bool
}

// NewCLI creates a CLI bound to the process's standard streams.
func NewCLI(version string) *CLI {
	return NewCLIWithStreams(version, os.Stdin, os.Stdout, os.Stderr)
}

// NewCLIWithStreams creates a CLI with explicit streams.
func NewCLIWithStreams(version string, stdin io.Reader, stdout, stderr io.Writer) *CLI {
	c := &CLI{
		options: CLIOptions{LogLevel: logging.DefaultLevel},
		version: version,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		isTTY:   isTerminal,
	}
	c.cmd = c.newRootCommand()
	return c
}

func (c *CLI) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lfd [-q] <file> <variable> <command> [args...]",
		Short:         "Execute a command for each line in a file",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(c.stdin)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	flags := cmd.Flags()
	// Flags stop at <file>; everything after it belongs to the template.
	flags.SetInterspersed(false)
	flags.BoolVarP(&c.options.Quiet, "quiet", "q", false,
		"Quiet mode (only show command output)")
	flags.BoolVarP(&c.options.Version, "version", "v", false,
		"Show version")
	flags.BoolVar(&c.options.NoColor, "no-color", false,
		"Disable colored output")
	flags.StringVar(&c.options.LogLevel, "log-level", c.options.LogLevel,
		"Diagnostic log level (debug, info, warn, error)")
	flags.StringVar(&c.options.ReportPath, "report", "",
		"Write a run report to this file (.yaml or .json)")
	flags.BoolP("help", "h", false, "Show this help")

	cmd.SetHelpFunc(func(*cobra.Command, []string) { c.ShowHelp() })
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigError{Message: err.Error()}
	})

	return cmd
}

// GetOptions returns the parsed CLI options
func (c *CLI) GetOptions() CLIOptions {
	return c.options
}

// Run parses args, executes the run and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	c.cmd.SetArgs(args)

	err := c.cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	c.showError(err)

	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(c.stderr)
		c.ShowHelp()
	}
	return ExitFatal
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	if c.options.Version {
		c.ShowVersion()
		return nil
	}

	cfg, err := config.FromArgs(args, c.options.Quiet)
	if err != nil {
		return err
	}

	logger, err := logging.New(c.stderr, c.options.LogLevel)
	if err != nil {
		return &config.ConfigError{Field: "log-level", Message: err.Error()}
	}

	theme := report.NewTheme(c.stdout, c.colorEnabled())
	r := runner.New(cfg, runner.Options{
		Executor: executor.NewExecutor(executor.Options{
			Stdin:  c.stdin,
			Stdout: c.stdout,
			Stderr: c.stderr,
			Logger: logger,
		}),
		Reporter: report.New(cfg, c.stdout, c.stderr, theme),
		Logger:   logger,
	})

	res, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	if c.options.ReportPath != "" {
		doc := report.NewDocument(cfg, res.Summary, res.Records)
		if err := report.WriteFile(c.options.ReportPath, doc); err != nil {
			return err
		}
		logger.WithField("path", c.options.ReportPath).Info("report written")
	}
	return nil
}

func (c *CLI) showError(err error) {
	theme := report.NewTheme(c.stderr, c.colorEnabledFor(c.stderr))

	message := "❌ Error: " + err.Error()
	var openErr *source.OpenError
	if errors.As(err, &openErr) {
		message = fmt.Sprintf("❌ Error opening file '%s': %v", openErr.Path, openErr.Err)
		fmt.Fprintln(c.stderr)
	}
	fmt.Fprintln(c.stderr, theme.Failure.Render(message))
}

func (c *CLI) colorEnabled() bool {
	return c.colorEnabledFor(c.stdout)
}

func (c *CLI) colorEnabledFor(w io.Writer) bool {
	return !c.options.NoColor && c.isTTY(w)
}
