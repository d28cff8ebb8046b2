package engine

import (
	"errors"
	"fmt"
)

// ErrNoRecords marks the empty-state condition: a date or window with no
// meal records. Callers can render an empty state instead of an error.
var ErrNoRecords = errors.New("no meal records in range")

// CalculationError wraps an unexpected failure inside scoring or
// aggregation with the name of the operation that failed.
type CalculationError struct {
	Op  string
	Err error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed in %s: %v", e.Op, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// newCalcError wraps err as a CalculationError for the named operation
func newCalcError(op string, err error) error {
	return &CalculationError{Op: op, Err: err}
}
