package usecase

import (
	"fmt"
	"sort"
	"time"

	"flightgroup-service/internal/domain/entity"
)

// ValidateGroupingParams rejects unusable grouping parameters before any row
// is touched.
func ValidateGroupingParams(window time.Duration, maxEntries int) error {
	if window <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("window must be positive, got %s", window)}
	}
	if maxEntries <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("max entries must be positive, got %d", maxEntries)}
	}
	return nil
}

// GroupRecords partitions records into departure-proximity groups.
//
// Records are sorted by departure ascending (ties by source row id, so the
// result does not depend on fetch order) and walked once. A record joins the
// current group when its departure lies within window of the group's anchor,
// the timestamp of the group's first member. The anchor is fixed: the window
// never slides with later members, so a chain of creeping timestamps cannot
// stretch a group past window from its start. Capacity counts flight slots
// and takes precedence over proximity.
func GroupRecords(records []entity.FlightRecord, window time.Duration, maxEntries int) ([]entity.FlightGroup, error) {
	if err := ValidateGroupingParams(window, maxEntries); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	sorted := make([]entity.FlightRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(a, b int) bool {
		da, db := sorted[a].Departure(), sorted[b].Departure()
		if da.Equal(db) {
			return sorted[a].SourceRowID < sorted[b].SourceRowID
		}
		return da.Before(db)
	})

	var groups []entity.FlightGroup
	current := entity.FlightGroup{Members: []entity.FlightRecord{sorted[0]}}
	anchor := sorted[0].Departure()
	slotCount := sorted[0].SlotCount()

	for _, rec := range sorted[1:] {
		withinWindow := rec.Departure().Sub(anchor) <= window
		hasCapacity := slotCount+rec.SlotCount() <= maxEntries

		if withinWindow && hasCapacity {
			current.Members = append(current.Members, rec)
			slotCount += rec.SlotCount()
			continue
		}

		groups = append(groups, current)
		current = entity.FlightGroup{Members: []entity.FlightRecord{rec}}
		anchor = rec.Departure()
		slotCount = rec.SlotCount()
	}
	groups = append(groups, current)

	return groups, nil
}

// VerifyPartition checks the grouping invariants: every input record appears
// in exactly one group and no group exceeds capacity. A failure here is a
// defect in the grouping algorithm, not in the input.
func VerifyPartition(records []entity.FlightRecord, groups []entity.FlightGroup, maxEntries int) error {
	seen := make(map[int64]bool, len(records))
	total := 0
	for _, g := range groups {
		if g.Size() == 0 {
			return &PlanConsistencyError{Reason: "empty group emitted"}
		}
		if g.SlotCount() > maxEntries {
			return &PlanConsistencyError{Reason: fmt.Sprintf(
				"group anchored at %s holds %d slots, cap is %d",
				g.Anchor().Format(time.RFC3339), g.SlotCount(), maxEntries)}
		}
		for _, m := range g.Members {
			if seen[m.SourceRowID] {
				return &PlanConsistencyError{Reason: fmt.Sprintf(
					"row %d appears in more than one group", m.SourceRowID)}
			}
			seen[m.SourceRowID] = true
			total++
		}
	}
	if total != len(records) {
		return &PlanConsistencyError{Reason: fmt.Sprintf(
			"partition covers %d of %d records", total, len(records))}
	}
	for _, r := range records {
		if !seen[r.SourceRowID] {
			return &PlanConsistencyError{Reason: fmt.Sprintf(
				"row %d missing from partition", r.SourceRowID)}
		}
	}
	return nil
}
