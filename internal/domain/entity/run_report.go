package entity

import "time"

// ExcludedRow records one row dropped during extraction, so that parse
// failures are reported rather than silently discarded.
type ExcludedRow struct {
	RowID  int64  `bson:"rowId"`
	Reason string `bson:"reason"`
}

// RunReport summarizes one grouping pass over the table.
type RunReport struct {
	ID             string        `bson:"_id,omitempty"`
	StartedAt      time.Time     `bson:"startedAt"`
	Duration       time.Duration `bson:"durationNs"`
	RowsFetched    int           `bson:"rowsFetched"`
	RowsExtracted  int           `bson:"rowsExtracted"`
	RowsExcluded   []ExcludedRow `bson:"rowsExcluded"`
	GroupsFormed   int           `bson:"groupsFormed"`
	SingletonCount int           `bson:"singletonCount"`
	InsertsEmitted int           `bson:"insertsEmitted"`
	UpdatesEmitted int           `bson:"updatesEmitted"`
}
