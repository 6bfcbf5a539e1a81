// Package executor spawns the expanded command for one input line and
// turns whatever happens into an Outcome.
//
// # Streams
//
// The child inherits the invoking process's stdin, stdout and stderr in
// every mode. Narration printed by the reporter is separate from, and
// never captures, the child's own output.
//
// # Classification
//
//   - exit status 0: OutcomeSuccess
//   - any other exit status, or death by signal: OutcomeNonZeroExit
//   - the program could not be started: OutcomeSpawnFailure
//
// OutcomeLineReadFailure is produced by the run driver for input lines
// that could not be read; the executor never sees those lines.
//
// # Blocking
//
// Execute blocks until the child exits. There is no timeout: a child
// that never exits stalls the run.
//
// # Usage Example
//
//	ex := NewExecutor(Options{})
//	outcome := ex.Execute(ctx, template.Command{Program: "touch", Args: []string{"a"}})
//	if !outcome.Success() {
//		fmt.Println(outcome.Message())
//	}
package executor
