package entity

import "time"

// FlightGroup is a cluster of records whose departures all fall within the
// proximity window of the group's anchor. Members are ordered by ascending
// departure time.
type FlightGroup struct {
	Members []FlightRecord
}

// Anchor is the departure timestamp of the first member, the fixed reference
// point for the window test.
func (g FlightGroup) Anchor() time.Time {
	return g.Members[0].Departure()
}

// Size returns the number of member records.
func (g FlightGroup) Size() int {
	return len(g.Members)
}

// SlotCount returns the total flight entries across all members, the quantity
// bounded by the group capacity.
func (g FlightGroup) SlotCount() int {
	n := 0
	for _, m := range g.Members {
		n += m.SlotCount()
	}
	return n
}
