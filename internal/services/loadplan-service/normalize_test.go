package loadplanService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRow places values by schema field into a raw factory-A sized row.
func buildRow(t *testing.T, factory string, values map[string]string) []string {
	t.Helper()

	cols, err := SchemaFor(factory)
	require.NoError(t, err)

	width := 0
	for _, idx := range cols {
		if idx >= width {
			width = idx + 1
		}
	}

	row := make([]string, width)
	for field, value := range values {
		idx, ok := cols[field]
		require.True(t, ok, "field=%s", field)
		row[idx] = value
	}
	return row
}

func normalizeA(t *testing.T, values map[string]string) (*Order, SkipReason, *QualityStats) {
	t.Helper()

	cols, err := SchemaFor("A")
	require.NoError(t, err)

	var stats QualityStats
	order, skip, err := NormalizeRow("A", buildRow(t, "A", values), cols, &stats)
	require.NoError(t, err)
	return order, skip, &stats
}

func TestNormalizeRowBasicOrder(t *testing.T) {
	order, skip, stats := normalizeA(t, map[string]string{
		"unit":        " U1 ",
		"season":      "26SS",
		"model":       "TRAIL-RUNNER",
		"article":     "AB1234",
		"color":       "BLACK/WHITE",
		"destination": "US",
		"quantity":    "300",
		"setp":        "PO-7781",
		"crd":         "2025.12.20",
		"sdd_current": "12/22",
		"code04":      "-",
		"intertek":    "yes",
	})

	require.Equal(t, SkipNone, skip)
	require.NotNil(t, order)

	assert.Equal(t, "A", order.Factory)
	assert.Equal(t, "U1", order.Unit)
	assert.Equal(t, "TRAIL-RUNNER", order.Model)
	assert.Equal(t, "US", order.Destination)
	assert.Equal(t, 300, order.Quantity)
	assert.Equal(t, "PO-7781", order.PoNumber)
	assert.Equal(t, "2025-12-20", order.Crd)
	assert.Equal(t, "2025-12", order.CrdYearMonth)
	assert.Equal(t, "2025-12-22", order.SddValue)
	assert.Equal(t, "2025-12", order.SddYearMonth)
	assert.Nil(t, order.Code04)
	assert.True(t, order.Aql)
	assert.Equal(t, 0, stats.AutoCorrected)

	// No BAL cells filled: every stage fully outstanding.
	require.Len(t, order.Production, len(StageNames))
	for _, stage := range StageNames {
		assert.Equal(t, StatusPending, order.Production[stage].Status)
	}
	assert.Equal(t, 300, order.OscRemaining)
}

func TestNormalizeRowEmptyDestinationCorrected(t *testing.T) {
	order, skip, stats := normalizeA(t, map[string]string{
		"unit":     "U1",
		"model":    "MODEL-X",
		"quantity": "120",
	})

	require.Equal(t, SkipNone, skip)
	assert.Equal(t, "Unknown", order.Destination)
	assert.Equal(t, 1, stats.EmptyDestinations)
	assert.Equal(t, 1, stats.AutoCorrected)
}

func TestNormalizeRowSkipsHeader(t *testing.T) {
	_, skip, _ := normalizeA(t, map[string]string{
		"quantity":    "Q.ty",
		"model":       "Model",
		"destination": "Dest",
	})
	assert.Equal(t, SkipHeader, skip)
}

func TestNormalizeRowSkipsInvalidQuantity(t *testing.T) {
	for _, qty := range []string{"", "TBD", "#N/A", "0", "-5", "NY"} {
		_, skip, _ := normalizeA(t, map[string]string{
			"unit":     "U1",
			"model":    "MODEL-X",
			"quantity": qty,
		})
		assert.Equal(t, SkipInvalidQuantity, skip, "quantity=%q", qty)
	}
}

func TestNormalizeRowSkipsSubtotal(t *testing.T) {
	// Totals rows carry a numeric quantity but neither unit nor model.
	_, skip, _ := normalizeA(t, map[string]string{
		"quantity":    "4500",
		"destination": "US",
	})
	assert.Equal(t, SkipSubtotalRow, skip)
}

func TestNormalizeRowQuantityWithThousandsSeparator(t *testing.T) {
	order, skip, _ := normalizeA(t, map[string]string{
		"unit":     "U1",
		"model":    "MODEL-X",
		"quantity": "1,200",
	})

	require.Equal(t, SkipNone, skip)
	assert.Equal(t, 1200, order.Quantity)
}

func TestNormalizeRowSddPrefersCurrent(t *testing.T) {
	order, _, _ := normalizeA(t, map[string]string{
		"unit":         "U1",
		"model":        "MODEL-X",
		"quantity":     "100",
		"sdd_original": "2025.12.01",
		"sdd_current":  "2025.12.10",
	})
	assert.Equal(t, "2025-12-10", order.SddValue)
}

func TestNormalizeRowSddFallsBackToOriginal(t *testing.T) {
	order, _, stats := normalizeA(t, map[string]string{
		"unit":         "U1",
		"model":        "MODEL-X",
		"quantity":     "100",
		"sdd_original": "2025.12.01",
		"sdd_current":  "00:00:00",
	})

	assert.Equal(t, "2025-12-01", order.SddValue)
	assert.Equal(t, 1, stats.InvalidDates)
}

func TestNormalizeRowSddKeepsNonDateText(t *testing.T) {
	order, _, _ := normalizeA(t, map[string]string{
		"unit":        "U1",
		"model":       "MODEL-X",
		"quantity":    "100",
		"sdd_current": "TBA W51",
	})

	assert.Equal(t, "TBA W51", order.SddValue)
	assert.Equal(t, "", order.SddYearMonth)
}

func TestNormalizeRowInvalidCrdFiltered(t *testing.T) {
	order, _, stats := normalizeA(t, map[string]string{
		"unit":     "U1",
		"model":    "MODEL-X",
		"quantity": "100",
		"crd":      "00:00:00",
	})

	assert.Equal(t, "", order.Crd)
	assert.Equal(t, "", order.CrdYearMonth)
	assert.Equal(t, 1, stats.InvalidDates)
}

func TestNormalizeRowCode04Present(t *testing.T) {
	order, _, _ := normalizeA(t, map[string]string{
		"unit":     "U1",
		"model":    "MODEL-X",
		"quantity": "100",
		"code04":   "04",
	})

	require.NotNil(t, order.Code04)
	assert.Equal(t, "04", *order.Code04)
}

func TestNormalizeRowAqlTokens(t *testing.T) {
	truthy := []string{"YES", "y", "OK", "1", "TRUE", "AQL"}
	falsy := []string{"", "NO", "N", "nan", "2"}

	for _, token := range truthy {
		order, _, _ := normalizeA(t, map[string]string{
			"unit": "U1", "model": "MODEL-X", "quantity": "100", "intertek": token,
		})
		assert.True(t, order.Aql, "token=%q", token)
	}
	for _, token := range falsy {
		order, _, _ := normalizeA(t, map[string]string{
			"unit": "U1", "model": "MODEL-X", "quantity": "100", "intertek": token,
		})
		assert.False(t, order.Aql, "token=%q", token)
	}
}

func TestNormalizeRowStageAndRemaining(t *testing.T) {
	order, _, _ := normalizeA(t, map[string]string{
		"unit":               "U1",
		"model":              "MODEL-X",
		"quantity":           "100",
		"s_cut_bal":          "INHOUSE",
		"sew_bal":            "30",
		"ass_bal":            "2025.12.18",
		"wh_out_bal":         "100",
		"outsourcing_in_bal": "25",
	})

	assert.Equal(t, StatusCompleted, order.Production["s_cut"].Status)

	sew := order.Production["sew_bal"]
	assert.Equal(t, StatusPartial, sew.Status)
	assert.Equal(t, 70, sew.Completed)
	assert.Equal(t, 30, sew.Pending)

	ass := order.Production["ass_bal"]
	assert.Equal(t, StatusCompleted, ass.Status)
	require.NotNil(t, ass.ExpectedDate)
	assert.Equal(t, "2025-12-18", *ass.ExpectedDate)

	assert.Equal(t, 25, order.OscRemaining)
	assert.Equal(t, Remaining{Osc: 25, Sew: 30, Ass: 0, WhIn: 100, WhOut: 100}, order.Remaining)
}

func TestNormalizeRowMrpAndInspection(t *testing.T) {
	order, _, _ := normalizeA(t, map[string]string{
		"unit":          "U1",
		"model":         "MODEL-X",
		"quantity":      "100",
		"mrp_qty":       "96",
		"mrp_date":      "11/30",
		"inspection":    "2025.12.19",
		"wh_return_fac": "4",
	})

	require.NotNil(t, order.MrpQty)
	assert.Equal(t, 96, *order.MrpQty)
	require.NotNil(t, order.MrpDate)
	assert.Equal(t, "2025-11-30", *order.MrpDate)
	require.NotNil(t, order.Inspection)
	assert.Equal(t, "2025-12-19", *order.Inspection)
	assert.Equal(t, 4, order.WhReturnFac)
}
