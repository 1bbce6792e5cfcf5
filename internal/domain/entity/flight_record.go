package entity

import (
	"time"
)

// FlightSlot is one flight entry carried by a booking row.
type FlightSlot struct {
	FlightNumber string
	Departure    time.Time
}

// FlightRecord is the canonical in-memory representation of one booking row.
// It is built once at the extraction boundary; everything downstream operates
// on this type, never on raw row maps.
type FlightRecord struct {
	SourceRowID int64
	Slots       []FlightSlot
	Payload     map[string]interface{}
}

// Departure returns the record's departure timestamp: the earliest slot.
// Slots are kept in ascending time order by the extractor.
func (r FlightRecord) Departure() time.Time {
	return r.Slots[0].Departure
}

// FlightNumber returns the flight identifier of the earliest slot.
func (r FlightRecord) FlightNumber() string {
	return r.Slots[0].FlightNumber
}

// SlotCount is the number of flight entries the record occupies toward
// a group's capacity.
func (r FlightRecord) SlotCount() int {
	return len(r.Slots)
}
