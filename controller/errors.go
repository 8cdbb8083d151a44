package controller

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation is returned when a roster move would leave the
	// team/player relationship inconsistent. The move is rejected and
	// nothing is written.
	ErrInvariantViolation = errors.New("roster invariant violation")

	// ErrMalformedInput is returned for input rejected before any store
	// call: bad set scores, duplicate set numbers, or an empty trade.
	ErrMalformedInput = errors.New("malformed input")
)

// PartialFailureError reports a multi-step update that failed partway. The
// store has no multi-record transactions, so steps already applied stay
// applied; the caller decides whether to re-drive or compensate.
type PartialFailureError struct {
	Op        string
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("%s: step %q failed, nothing applied: %v", e.Op, e.Failed, e.Err)
	}
	return fmt.Sprintf("%s: step %q failed after %v were applied: %v", e.Op, e.Failed, e.Completed, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
