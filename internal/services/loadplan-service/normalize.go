package loadplanService

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Loadplan sheets repeat their header block every few hundred rows; these are
// the labels that show up in data columns when that happens.
var headerKeywords = map[string]bool{
	"Q.ty": true, "MRP.Qty": true, "Dest": true, "Season": true,
	"Model": true, "Article": true, "Color": true, "Unit": true,
	"UNIT": true, "Qty": true, "SDD": true, "CRD": true,
	"No.": true, "NO.": true,
}

// Values seen in the quantity column that are not order quantities.
var invalidQuantityTokens = map[string]bool{
	"Q.ty": true, "MRP.Qty": true, "Qty": true, "qty": true,
	"nan": true, "NaN": true, "None": true, "": true,
	"NY": true, "NO": true, "N/A": true, "#N/A": true,
	"TBD": true, "-": true, "Intertek": true,
}

// Tokens the Intertek column uses to flag an order for AQL inspection.
var aqlTruthyTokens = map[string]bool{
	"YES": true, "Y": true, "OK": true, "1": true, "TRUE": true, "AQL": true,
}

var reYearMonth = regexp.MustCompile(`^(\d{4})-(\d{2})`)

// cellAt returns the trimmed text of a schema field, or "" when the row is
// too short or the field is not in this factory's layout.
func cellAt(row []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isHeaderRow(row []string, cols map[string]int) bool {
	for _, field := range []string{"quantity", "model", "destination"} {
		if headerKeywords[cellAt(row, cols, field)] {
			return true
		}
	}
	return false
}

func isValidQuantity(raw string) bool {
	s := strings.TrimSpace(raw)
	if invalidQuantityTokens[s] {
		return false
	}
	n, err := strconv.ParseFloat(stripNumericNoise(s), 64)
	return err == nil && n > 0
}

// resolveSdd picks the ship date: the current SDD cell wins over the original
// one. Date-shaped candidates are normalized; any other non-placeholder text
// is returned verbatim, and callers must tolerate it.
func resolveSdd(original, current string) string {
	for _, candidate := range []string{current, original} {
		s := strings.TrimSpace(candidate)
		if isPlaceholder(s) {
			continue
		}
		if date, ok := NormalizeDate(s); ok {
			return date
		}
		return s
	}
	return ""
}

func yearMonth(date string) string {
	m := reYearMonth.FindStringSubmatch(date)
	if m == nil {
		return ""
	}
	return m[1] + "-" + m[2]
}

// NormalizeRow maps one raw sheet row onto the canonical Order. A nil Order
// with a non-empty SkipReason is an expected skip (header, subtotal, bad
// quantity); an error is an unexpected parse failure the caller should count
// and move past.
func NormalizeRow(factory string, row []string, cols map[string]int, stats *QualityStats) (*Order, SkipReason, error) {
	if isHeaderRow(row, cols) {
		return nil, SkipHeader, nil
	}

	qtyRaw := cellAt(row, cols, "quantity")
	if !isValidQuantity(qtyRaw) {
		return nil, SkipInvalidQuantity, nil
	}
	qtyFloat, err := strconv.ParseFloat(stripNumericNoise(qtyRaw), 64)
	if err != nil {
		return nil, SkipNone, fmt.Errorf("quantity %q: %w", qtyRaw, err)
	}
	qty := int(qtyFloat)

	unit := cellAt(row, cols, "unit")
	model := cellAt(row, cols, "model")

	// Section and grand-total rows carry a numeric quantity but no unit or
	// model; they are aggregates, not orders.
	if unit == "" && model == "" {
		return nil, SkipSubtotalRow, nil
	}

	dest := cellAt(row, cols, "destination")
	if isPlaceholder(dest) {
		dest = "Unknown"
		stats.EmptyDestinations++
		stats.AutoCorrected++
	}

	order := &Order{
		Factory:     factory,
		Unit:        unit,
		Season:      cellAt(row, cols, "season"),
		Model:       model,
		Article:     cellAt(row, cols, "article"),
		Color:       cellAt(row, cols, "color"),
		Destination: dest,
		Quantity:    qty,
		PoNumber:    cellAt(row, cols, "setp"),
	}

	crdRaw := cellAt(row, cols, "crd")
	switch {
	case crdRaw == "00:00:00":
		stats.InvalidDates++
		order.Crd = ""
	case isPlaceholder(crdRaw):
		order.Crd = ""
	default:
		if date, ok := NormalizeDate(crdRaw); ok {
			order.Crd = date
		} else {
			order.Crd = crdRaw
		}
	}
	order.CrdYearMonth = yearMonth(order.Crd)

	sddOrig := cellAt(row, cols, "sdd_original")
	sddCurr := cellAt(row, cols, "sdd_current")
	if sddCurr == "00:00:00" {
		stats.InvalidDates++
		sddCurr = ""
	}
	if sddOrig == "00:00:00" {
		stats.InvalidDates++
		sddOrig = ""
	}
	order.SddValue = resolveSdd(sddOrig, sddCurr)
	order.SddYearMonth = yearMonth(order.SddValue)

	if code04 := cellAt(row, cols, "code04"); code04 != "" && code04 != "nan" && code04 != "-" {
		order.Code04 = &code04
	}

	order.OutsoleVendor = cellAt(row, cols, "outsole_vendor")

	if mrpRaw := cellAt(row, cols, "mrp_qty"); IsNumericCell(mrpRaw) {
		n, _ := strconv.ParseFloat(stripNumericNoise(mrpRaw), 64)
		mrpQty := int(n)
		order.MrpQty = &mrpQty
	}
	if date, ok := NormalizeDate(cellAt(row, cols, "mrp_date")); ok {
		order.MrpDate = &date
	}

	if whReturnRaw := cellAt(row, cols, "wh_return_fac"); IsNumericCell(whReturnRaw) {
		n, _ := strconv.ParseFloat(stripNumericNoise(whReturnRaw), 64)
		order.WhReturnFac = int(n)
	}

	if date, ok := NormalizeDate(cellAt(row, cols, "inspection")); ok {
		order.Inspection = &date
	}

	order.Aql = aqlTruthyTokens[strings.ToUpper(cellAt(row, cols, "intertek"))]

	order.Production = BuildProduction(row, cols, qty)

	oscStatus := ResolveStage(ClassifyCell(cellAt(row, cols, "outsourcing_in_bal")), qty)
	order.OscRemaining = oscStatus.Pending
	order.Remaining = BuildRemaining(order.Production, oscStatus.Pending)

	return order, SkipNone, nil
}
