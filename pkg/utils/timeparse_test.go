package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"legacy with fraction", "2021-03-15 08:30:00.000", time.Date(2021, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"legacy without fraction", "2021-03-15 08:30:00", time.Date(2021, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"rfc3339", "2021-03-15T08:30:00Z", time.Date(2021, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"date only", "2021-03-15", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseTimestampNative(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	in := time.Date(2021, 3, 15, 11, 30, 0, 0, loc)

	got, err := ParseTimestamp(in)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(in))
}

func TestParseTimestampRejects(t *testing.T) {
	for _, value := range []interface{}{"", "  ", "not a date", "15/03/2021", 42, nil} {
		_, err := ParseTimestamp(value)
		assert.Error(t, err, "value %v", value)
	}
}
