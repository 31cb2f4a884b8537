package electomap

import (
	"fmt"
)

// StageError reports which pipeline stage failed for which state and year.
// Any stage failure is fatal for the whole run.
type StageError struct {
	State string
	Year  int
	Stage string // "filter", "series", "map", "chart", "compose", "encode"
	Err   error
}

func (e *StageError) Error() string {
	if e.Year == 0 {
		return fmt.Sprintf("%s stage for %q: %v", e.Stage, e.State, e.Err)
	}
	return fmt.Sprintf("%s stage for %q year %d: %v", e.Stage, e.State, e.Year, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(state string, year int, stage string, err error) *StageError {
	return &StageError{State: state, Year: year, Stage: stage, Err: err}
}
