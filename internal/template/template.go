// Package template substitutes a placeholder token inside a command
// template to produce the concrete command for one input value.
package template

import "strings"

// Command is a fully expanded command: the program to spawn and its
// arguments. It lives for a single execution.
type Command struct {
	Program string   `json:"program" yaml:"program"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Expand replaces every non-overlapping occurrence of token in every
// element of tmpl with value. The result has the same length as tmpl and
// tmpl itself is left untouched.
func Expand(tmpl []string, token, value string) []string {
	out := make([]string, len(tmpl))
	for i, arg := range tmpl {
		out[i] = strings.ReplaceAll(arg, token, value)
	}
	return out
}

// ExpandCommand expands tmpl and splits the result into program and
// arguments. ok is false when tmpl is empty.
func ExpandCommand(tmpl []string, token, value string) (cmd Command, ok bool) {
	argv := Expand(tmpl, token, value)
	if len(argv) == 0 {
		return Command{}, false
	}
	return Command{Program: argv[0], Args: argv[1:]}, true
}
