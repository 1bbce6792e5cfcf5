package entity

import "fmt"

// Column names of the flight_bookings table that the core needs to address
// directly. Everything else rides along inside the opaque payload.
const (
	ColumnID           = "id"
	ColumnETicketNo    = "e_ticket_no"
	ColumnSupersededBy = "superseded_by"

	flightNumberPrefix  = "flight_number"
	departureDatePrefix = "departure_date_local"
)

// FlightNumberColumn returns the flight number column for slot i (1-based).
func FlightNumberColumn(i int) string {
	return fmt.Sprintf("%s%d", flightNumberPrefix, i)
}

// DepartureDateColumn returns the departure date column for slot i (1-based).
func DepartureDateColumn(i int) string {
	return fmt.Sprintf("%s%d", departureDatePrefix, i)
}
