package entity

// Markers written to the e_ticket_no column, kept compatible with the
// legacy consolidation job.
const (
	MarkerInserted   = "INSERT"
	MarkerSuperseded = "UPDATED"
)

// InsertOp is a request to insert one consolidated booking row. Columns maps
// target column names to merged values, including up to the configured number
// of flight slots. LinkKey is a placeholder identity for the row-to-be; the
// persistence layer resolves it to the real row id on apply.
type InsertOp struct {
	LinkKey string
	Columns map[string]interface{}
}

// UpdateOp marks one original row as superseded by a consolidated row.
// LinkKey references the InsertOp whose persisted id the row links to.
type UpdateOp struct {
	SourceRowID int64
	LinkKey     string
	Marker      string
}

// OperationPlan is the full set of changes required to persist one grouping
// pass. It is built fresh per run, never mutated after hand-off, and applied
// exactly once: inserts first, then updates, so link keys resolve.
type OperationPlan struct {
	Inserts []InsertOp
	Updates []UpdateOp
}

// Empty reports whether the plan carries no operations.
func (p OperationPlan) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0
}
