package usecase

import "fmt"

// ExtractionErrorKind classifies per-row extraction failures.
type ExtractionErrorKind string

const (
	KindMissingField            ExtractionErrorKind = "missing_field"
	KindUnparseableTimestamp    ExtractionErrorKind = "unparseable_timestamp"
	KindUnparseableFlightNumber ExtractionErrorKind = "unparseable_flight_number"
)

// ExtractionError reports one row that could not be normalized. Non-fatal:
// callers skip the row, record it, and continue.
type ExtractionError struct {
	Kind  ExtractionErrorKind
	RowID int64
	Field string
	Cause error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extract row %d: %s (%s)", e.RowID, e.Kind, e.Field)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ConfigError reports invalid grouping parameters. Fatal, raised before any
// row is processed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "grouping config: " + e.Reason
}

// PlanConsistencyError reports a violated grouping invariant. It indicates a
// defect in the grouping algorithm itself; the run aborts without applying
// any plan.
type PlanConsistencyError struct {
	Reason string
}

func (e *PlanConsistencyError) Error() string {
	return "plan consistency: " + e.Reason
}
