package config

import (
	"fmt"
	"strings"
)

// ConfigError reports an invocation that cannot be turned into a run.
// It is fatal: no line is read when it is returned.
type ConfigError struct {
	Field   string
	Message string
	Missing []string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "invalid %s: %s", e.Field, e.Message)
	} else {
		b.WriteString(e.Message)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " (expected %s)", strings.Join(e.Missing, ", "))
	}
	return b.String()
}

// Validate checks the invariants the rest of the pipeline relies on.
// An empty placeholder is accepted; it expands between every character.
func (c *RunConfig) Validate() error {
	if c == nil {
		return &ConfigError{Message: "configuration cannot be nil"}
	}
	if c.FilePath == "" {
		return &ConfigError{Field: "file", Message: "path cannot be empty"}
	}
	if len(c.Template) == 0 {
		return &ConfigError{Field: "command", Message: "no command specified"}
	}
	return nil
}
