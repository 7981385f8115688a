package tmc5160

import "fmt"

// PartialConfigError reports a multi-field write sequence that failed after
// at least one field was already written. The device is left with an
// inconsistent partial configuration and the caller must re-run the whole
// sequence; there is no rollback.
type PartialConfigError struct {
	Op      string // configuration operation, e.g. "encoder scaling"
	Written int    // fields successfully written before the failure
	Total   int    // fields in the full sequence
	Cause   error
}

func (e *PartialConfigError) Error() string {
	return fmt.Sprintf("%s partially configured (%d of %d fields written), re-run the full configuration: %v",
		e.Op, e.Written, e.Total, e.Cause)
}

func (e *PartialConfigError) Unwrap() error { return e.Cause }
