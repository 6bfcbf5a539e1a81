package report

import "github.com/shoxxdj/lfd/internal/executor"

// Summary tallies a run. LinesProcessed counts every line that was
// attempted, unreadable ones included; blank lines are never counted.
type Summary struct {
	LinesProcessed int `json:"lines_processed" yaml:"lines_processed"`
	Successes      int `json:"successes" yaml:"successes"`
	Errors         int `json:"errors" yaml:"errors"`
}

// Record folds one outcome into the summary.
func (s *Summary) Record(outcome executor.Outcome) {
	s.LinesProcessed++
	if outcome.Success() {
		s.Successes++
	} else {
		s.Errors++
	}
}

// AllSucceeded reports whether no line failed.
func (s Summary) AllSucceeded() bool {
	return s.Errors == 0
}
