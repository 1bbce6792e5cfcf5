package usecase

import (
	"github.com/google/uuid"

	"flightgroup-service/internal/domain/entity"
)

// BuildPlan derives the insert and update operations that persist a grouping.
//
// Groups of size 1 produce nothing: a row that did not need grouping is left
// untouched. Each larger group produces one InsertOp carrying the merged row
// and one UpdateOp per absorbed member, in ascending departure order. The
// InsertOp's link key is a placeholder; the persistence layer swaps it for
// the real row id once the insert lands.
func BuildPlan(groups []entity.FlightGroup, maxEntries int) entity.OperationPlan {
	var plan entity.OperationPlan
	for _, group := range groups {
		if group.Size() <= 1 {
			continue
		}

		linkKey := uuid.NewString()

		columns := make(map[string]interface{})
		for col, value := range group.Members[0].Payload {
			columns[col] = value
		}
		columns[entity.ColumnETicketNo] = entity.MarkerInserted

		slot := 1
		for _, member := range group.Members {
			for _, s := range member.Slots {
				columns[entity.FlightNumberColumn(slot)] = s.FlightNumber
				columns[entity.DepartureDateColumn(slot)] = s.Departure
				slot++
			}
		}
		// Unused slots are written out as NULL, same as the legacy job.
		for ; slot <= maxEntries; slot++ {
			columns[entity.FlightNumberColumn(slot)] = nil
			columns[entity.DepartureDateColumn(slot)] = nil
		}

		plan.Inserts = append(plan.Inserts, entity.InsertOp{
			LinkKey: linkKey,
			Columns: columns,
		})
		for _, member := range group.Members {
			plan.Updates = append(plan.Updates, entity.UpdateOp{
				SourceRowID: member.SourceRowID,
				LinkKey:     linkKey,
				Marker:      entity.MarkerSuperseded,
			})
		}
	}
	return plan
}
