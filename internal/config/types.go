package config

import "strings"

// RunConfig is the validated invocation: the input file, the placeholder
// token and the command template executed once per input line.
// It is never modified after construction.
type RunConfig struct {
	FilePath    string   `json:"file" yaml:"file"`
	Placeholder string   `json:"variable" yaml:"variable"`
	Template    []string `json:"command" yaml:"command"`
	Quiet       bool     `json:"quiet" yaml:"quiet"`
}

// MinPositionalArgs is the number of positional arguments required:
// file, variable and the program name.
const MinPositionalArgs = 3

// FromArgs builds a RunConfig from the positional arguments
// `<file> <variable> <command> [args...]`.
func FromArgs(args []string, quiet bool) (*RunConfig, error) {
	if len(args) < MinPositionalArgs {
		return nil, &ConfigError{
			Message: "missing arguments",
			Missing: missingArgs(len(args)),
		}
	}

	cfg := &RunConfig{
		FilePath:    args[0],
		Placeholder: args[1],
		Template:    append([]string(nil), args[2:]...),
		Quiet:       quiet,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Program returns the first template element.
func (c *RunConfig) Program() string {
	if len(c.Template) == 0 {
		return ""
	}
	return c.Template[0]
}

// CommandLine joins the template with spaces for display.
func (c *RunConfig) CommandLine() string {
	return strings.Join(c.Template, " ")
}

func missingArgs(have int) []string {
	names := []string{"file", "variable", "command"}
	if have >= len(names) {
		return nil
	}
	return names[have:]
}
