package apierror

import (
	"errors"
	"fmt"
)

// Engine error taxonomy. These never escape the analysis components as
// panics; producers degrade (zero-filled results, score 0) and callers
// decide logging/retry policy.
var (
	// ErrEmptyRange marks a range query that matched zero points.
	// Informational: report generation degrades to zero totals/averages.
	ErrEmptyRange = errors.New("date range contains no data points")

	// ErrDegenerateNormalization marks a min==max normalization range.
	// Normalization degrades to 0 instead of returning this to callers;
	// it exists so tests and logs can name the condition.
	ErrDegenerateNormalization = errors.New("normalization range is degenerate (min == max)")

	// ErrExportUnsupported is reported when a download is attempted in an
	// environment without an interactive or filesystem sink.
	ErrExportUnsupported = errors.New("export not supported in this environment")
)

// PersistenceError wraps a durable-storage failure so callers can
// distinguish storage faults from domain errors with errors.As.
type PersistenceError struct {
	Op  string // operation, e.g. "upsert data point"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err as a PersistenceError for operation op.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
