package loadplanService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCellPlaceholders(t *testing.T) {
	for _, raw := range []string{"", "   ", "00:00:00", "#N/A", "nan", "NaN", "None"} {
		got := ClassifyCell(raw)
		assert.Equal(t, CellAbsent, got.Kind, "raw=%q", raw)
	}
}

func TestClassifyCellMarkers(t *testing.T) {
	got := ClassifyCell("INHOUSE")
	assert.Equal(t, CellMarker, got.Kind)

	got = ClassifyCell("inhouse cutting")
	assert.Equal(t, CellMarker, got.Kind)

	// Site notes block the date and numeric readings but are not
	// completion markers.
	for _, raw := range []string{"NO HAPPO", "OK", "RACH GIA"} {
		got := ClassifyCell(raw)
		assert.Equal(t, CellUnknown, got.Kind, "raw=%q", raw)
		assert.Equal(t, raw, got.Raw)
	}
}

func TestClassifyCellDates(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"12/20", "2025-12-20"},
		{"10/5", "2025-10-05"},
		{"3/15", "2026-03-15"},
		{"9/1", "2026-09-01"},
		{"12-20", "2025-12-20"},
		{"2025.12.20", "2025-12-20"},
		{"2025.1.5", "2025-01-05"},
		{"2025-12-20", "2025-12-20"},
		{"2025-1-5", "2025-01-05"},
		{"2025-12-20 00:00:00", "2025-12-20"},
	}

	for _, tc := range cases {
		got := ClassifyCell(tc.raw)
		require.Equal(t, CellDate, got.Kind, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got.Date, "raw=%q", tc.raw)
	}
}

func TestClassifyCellNumeric(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"30", 30},
		{"0", 0},
		{" 45.0 ", 45},
		{"1,200", 1200},
		{"-12", -12},
	}

	for _, tc := range cases {
		got := ClassifyCell(tc.raw)
		require.Equal(t, CellNumeric, got.Kind, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got.Number, "raw=%q", tc.raw)
	}
}

func TestClassifyCellUnknown(t *testing.T) {
	for _, raw := range []string{"TBA", "W51", "12/20/25/1"} {
		got := ClassifyCell(raw)
		assert.Equal(t, CellUnknown, got.Kind, "raw=%q", raw)
		assert.Equal(t, raw, got.Raw)
	}
}

func TestClassifyCellDeterministic(t *testing.T) {
	for _, raw := range []string{"", "INHOUSE", "12/20", "30", "TBA", "00:00:00"} {
		first := ClassifyCell(raw)
		second := ClassifyCell(raw)
		assert.Equal(t, first, second, "raw=%q", raw)
	}
}
