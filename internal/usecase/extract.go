package usecase

import (
	"fmt"
	"sort"
	"strings"

	"flightgroup-service/internal/domain/entity"
	"flightgroup-service/internal/domain/repository"
	"flightgroup-service/pkg/utils"
)

// ExtractRecord normalizes one raw booking row into a FlightRecord. Pure
// function: no I/O, no logging; callers decide what to do with failures.
//
// A row carries up to maxEntries flight slots. The first populated slot
// defines the record's departure and flight number; rows consolidated by a
// previous pass carry more than one. Flight numbers ending in "000" mark
// flights deleted upstream and their slot is skipped.
func ExtractRecord(row repository.RawRow, maxEntries int) (entity.FlightRecord, error) {
	rowID, ok := toInt64(row[entity.ColumnID])
	if !ok {
		return entity.FlightRecord{}, &ExtractionError{
			Kind:  KindMissingField,
			Field: entity.ColumnID,
		}
	}

	var slots []entity.FlightSlot
	for i := 1; i <= maxEntries; i++ {
		fnCol := entity.FlightNumberColumn(i)
		ddCol := entity.DepartureDateColumn(i)

		number, hasNumber := cellString(row[fnCol])
		rawDate, hasDate := cell(row[ddCol])

		if !hasNumber && !hasDate {
			continue
		}
		if !hasNumber {
			return entity.FlightRecord{}, &ExtractionError{
				Kind: KindMissingField, RowID: rowID, Field: fnCol,
			}
		}
		if !hasDate {
			return entity.FlightRecord{}, &ExtractionError{
				Kind: KindMissingField, RowID: rowID, Field: ddCol,
			}
		}
		if number == "" {
			return entity.FlightRecord{}, &ExtractionError{
				Kind: KindUnparseableFlightNumber, RowID: rowID, Field: fnCol,
				Cause: fmt.Errorf("blank flight number"),
			}
		}
		// Deleted flight, slot is dead weight.
		if strings.HasSuffix(number, "000") {
			continue
		}

		departure, err := utils.ParseTimestamp(rawDate)
		if err != nil {
			return entity.FlightRecord{}, &ExtractionError{
				Kind: KindUnparseableTimestamp, RowID: rowID, Field: ddCol,
				Cause: err,
			}
		}

		slots = append(slots, entity.FlightSlot{
			FlightNumber: number,
			Departure:    departure,
		})
	}

	if len(slots) == 0 {
		return entity.FlightRecord{}, &ExtractionError{
			Kind: KindMissingField, RowID: rowID,
			Field: entity.FlightNumberColumn(1),
			Cause: fmt.Errorf("no flight entries"),
		}
	}

	sort.SliceStable(slots, func(a, b int) bool {
		return slots[a].Departure.Before(slots[b].Departure)
	})

	payload := make(map[string]interface{}, len(row))
	for col, value := range row {
		if col == entity.ColumnID || col == entity.ColumnETicketNo || col == entity.ColumnSupersededBy {
			continue
		}
		if isSlotColumn(col, maxEntries) {
			continue
		}
		payload[col] = value
	}

	return entity.FlightRecord{
		SourceRowID: rowID,
		Slots:       slots,
		Payload:     payload,
	}, nil
}

func isSlotColumn(col string, maxEntries int) bool {
	for i := 1; i <= maxEntries; i++ {
		if col == entity.FlightNumberColumn(i) || col == entity.DepartureDateColumn(i) {
			return true
		}
	}
	return false
}

// cell reports whether a raw value is populated. The legacy table stores the
// literal string "NULL" for empty slots.
func cell(v interface{}) (interface{}, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.(string); ok && (s == "" || s == "NULL") {
		return nil, false
	}
	return v, true
}

func cellString(v interface{}) (string, bool) {
	raw, ok := cell(v)
	if !ok {
		return "", false
	}
	switch s := raw.(type) {
	case string:
		return strings.TrimSpace(s), true
	default:
		return fmt.Sprintf("%v", s), true
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
