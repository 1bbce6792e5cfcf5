package repository

import (
	"context"

	"flightgroup-service/internal/domain/entity"
)

// RawRow is one booking row as fetched from storage, column name to value.
type RawRow map[string]interface{}

// BookingRepository defines the interface for flight booking table access.
type BookingRepository interface {
	// Migrate ensures the booking table exists.
	Migrate(ctx context.Context) error

	// FetchAll returns a materialized snapshot of all rows not yet marked
	// superseded.
	FetchAll(ctx context.Context) ([]RawRow, error)

	// ApplyPlan applies an operation plan in a single transaction, inserts
	// before updates so supersession links resolve. All-or-nothing.
	ApplyPlan(ctx context.Context, plan entity.OperationPlan) error
}
