package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightgroup-service/internal/domain/repository"
)

func rawRow(id int64, overrides map[string]interface{}) repository.RawRow {
	row := repository.RawRow{
		"id":                    id,
		"pax_name":              "GODER/FARJANA",
		"booking_ref":           "31947988",
		"airline":               "TK",
		"journey_type":          "OneWay",
		"flight_number1":        "TK1234",
		"departure_date_local1": "2021-03-15 08:30:00",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestExtractRecordValid(t *testing.T) {
	record, err := ExtractRecord(rawRow(7, nil), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), record.SourceRowID)
	assert.Equal(t, "TK1234", record.FlightNumber())
	assert.True(t, record.Departure().Equal(time.Date(2021, 3, 15, 8, 30, 0, 0, time.UTC)))
	assert.Equal(t, 1, record.SlotCount())
	assert.Equal(t, "GODER/FARJANA", record.Payload["pax_name"])
}

func TestExtractRecordPayloadExcludesManagedColumns(t *testing.T) {
	record, err := ExtractRecord(rawRow(1, map[string]interface{}{
		"e_ticket_no":   "E123",
		"superseded_by": nil,
	}), 7)
	require.NoError(t, err)

	for _, col := range []string{"id", "e_ticket_no", "superseded_by", "flight_number1", "departure_date_local1"} {
		_, present := record.Payload[col]
		assert.False(t, present, "payload leaked %s", col)
	}
}

func TestExtractRecordMultiSlotSortedAscending(t *testing.T) {
	record, err := ExtractRecord(rawRow(2, map[string]interface{}{
		"flight_number1":        "TK20",
		"departure_date_local1": "2021-03-16 10:00:00",
		"flight_number2":        "TK10",
		"departure_date_local2": "2021-03-15 09:00:00",
	}), 7)
	require.NoError(t, err)

	require.Equal(t, 2, record.SlotCount())
	assert.Equal(t, "TK10", record.Slots[0].FlightNumber)
	assert.Equal(t, "TK20", record.Slots[1].FlightNumber)
	assert.True(t, record.Slots[0].Departure.Before(record.Slots[1].Departure))
}

func TestExtractRecordSkipsDeletedFlightNumbers(t *testing.T) {
	record, err := ExtractRecord(rawRow(3, map[string]interface{}{
		"flight_number2":        "TK9000",
		"departure_date_local2": "2021-03-16 10:00:00",
	}), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, record.SlotCount())
	assert.Equal(t, "TK1234", record.FlightNumber())
}

func TestExtractRecordNullLiteralSlots(t *testing.T) {
	record, err := ExtractRecord(rawRow(4, map[string]interface{}{
		"flight_number2":        "NULL",
		"departure_date_local2": "NULL",
	}), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, record.SlotCount())
}

func TestExtractRecordErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		wantKind  ExtractionErrorKind
	}{
		{
			name:      "bad timestamp",
			overrides: map[string]interface{}{"departure_date_local1": "yesterday-ish"},
			wantKind:  KindUnparseableTimestamp,
		},
		{
			name:      "date without flight number",
			overrides: map[string]interface{}{"flight_number1": nil},
			wantKind:  KindMissingField,
		},
		{
			name:      "flight number without date",
			overrides: map[string]interface{}{"departure_date_local1": nil},
			wantKind:  KindMissingField,
		},
		{
			name: "no flight entries at all",
			overrides: map[string]interface{}{
				"flight_number1":        nil,
				"departure_date_local1": nil,
			},
			wantKind: KindMissingField,
		},
		{
			name:      "blank flight number",
			overrides: map[string]interface{}{"flight_number1": "   "},
			wantKind:  KindUnparseableFlightNumber,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractRecord(rawRow(9, tt.overrides), 7)
			require.Error(t, err)
			extractErr, ok := err.(*ExtractionError)
			require.True(t, ok, "expected *ExtractionError, got %T", err)
			assert.Equal(t, tt.wantKind, extractErr.Kind)
			assert.Equal(t, int64(9), extractErr.RowID)
		})
	}
}

func TestExtractRecordMissingID(t *testing.T) {
	row := rawRow(0, nil)
	delete(row, "id")

	_, err := ExtractRecord(row, 7)
	require.Error(t, err)
	extractErr, ok := err.(*ExtractionError)
	require.True(t, ok)
	assert.Equal(t, KindMissingField, extractErr.Kind)
}

func TestExtractRecordNativeTimeValue(t *testing.T) {
	departure := time.Date(2021, 3, 15, 8, 30, 0, 0, time.UTC)
	record, err := ExtractRecord(rawRow(5, map[string]interface{}{
		"departure_date_local1": departure,
	}), 7)
	require.NoError(t, err)
	assert.True(t, record.Departure().Equal(departure))
}
