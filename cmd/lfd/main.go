package main

import (
	"context"
	"os"

	"github.com/shoxxdj/lfd/internal/cli"
)

var version = "1.0.0"

func main() {
	// Children inherit the terminal's process group, so Ctrl-C reaches them
	// directly; the run itself is never cancelled.
	cliApp := cli.NewCLI(version)
	os.Exit(cliApp.Run(context.Background(), os.Args[1:]))
}
