package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"flightgroup-service/internal/domain/entity"
	"flightgroup-service/internal/domain/repository"
)

const bookingTable = "flight_bookings"

// GormBookingRepository implements the BookingRepository interface
type GormBookingRepository struct {
	db         *gorm.DB
	maxEntries int
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(db *gorm.DB, maxEntries int) repository.BookingRepository {
	return &GormBookingRepository{
		db:         db,
		maxEntries: maxEntries,
	}
}

// Migrate creates the booking table if it does not exist.
func (r *GormBookingRepository) Migrate(ctx context.Context) error {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS " + bookingTable + " (\n")
	b.WriteString("\tid BIGSERIAL PRIMARY KEY,\n")
	b.WriteString("\tpax_name TEXT,\n")
	b.WriteString("\tbooking_ref TEXT,\n")
	b.WriteString("\te_ticket_no TEXT,\n")
	b.WriteString("\tclient_code TEXT,\n")
	b.WriteString("\tairline TEXT,\n")
	b.WriteString("\tjourney_type TEXT,\n")
	for i := 1; i <= r.maxEntries; i++ {
		fmt.Fprintf(&b, "\t%s TEXT,\n", entity.FlightNumberColumn(i))
		fmt.Fprintf(&b, "\t%s TIMESTAMPTZ,\n", entity.DepartureDateColumn(i))
	}
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "\tairport%d TEXT,\n", i)
	}
	b.WriteString("\tsuperseded_by BIGINT\n)")

	return r.db.WithContext(ctx).Exec(b.String()).Error
}

// FetchAll returns a full-scan snapshot of the table as column/value maps,
// skipping rows a previous pass already marked superseded.
func (r *GormBookingRepository) FetchAll(ctx context.Context) ([]repository.RawRow, error) {
	var rows []map[string]interface{}
	result := r.db.WithContext(ctx).
		Table(bookingTable).
		Where("e_ticket_no IS NULL OR e_ticket_no <> ?", entity.MarkerSuperseded).
		Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]repository.RawRow, len(rows))
	for i, row := range rows {
		out[i] = repository.RawRow(row)
	}
	return out, nil
}

// ApplyPlan applies the plan in one transaction: inserts first, then the
// supersession updates once every link key has a real row id. The caller
// sees all-or-nothing behavior.
func (r *GormBookingRepository) ApplyPlan(ctx context.Context, plan entity.OperationPlan) error {
	if plan.Empty() {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insertedIDs := make(map[string]int64, len(plan.Inserts))

		for _, ins := range plan.Inserts {
			id, err := insertRow(tx, ins.Columns)
			if err != nil {
				return fmt.Errorf("insert consolidated row: %w", err)
			}
			insertedIDs[ins.LinkKey] = id
		}

		for _, upd := range plan.Updates {
			newID, ok := insertedIDs[upd.LinkKey]
			if !ok {
				return fmt.Errorf("update row %d: unresolved link key %s", upd.SourceRowID, upd.LinkKey)
			}
			result := tx.Table(bookingTable).
				Where("id = ?", upd.SourceRowID).
				Updates(map[string]interface{}{
					entity.ColumnETicketNo:    upd.Marker,
					entity.ColumnSupersededBy: newID,
				})
			if result.Error != nil {
				return fmt.Errorf("mark row %d superseded: %w", upd.SourceRowID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("mark row %d superseded: row not found", upd.SourceRowID)
			}
		}

		return nil
	})
}

func insertRow(tx *gorm.DB, columns map[string]interface{}) (int64, error) {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	placeholders := make([]string, len(names))
	values := make([]interface{}, len(names))
	for i, name := range names {
		placeholders[i] = "?"
		values[i] = columns[name]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		bookingTable,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "))

	var id int64
	if err := tx.Raw(query, values...).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}
