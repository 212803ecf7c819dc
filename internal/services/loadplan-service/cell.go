package loadplanService

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind is the shape a raw BAL cell resolved to. Loadplan sheets reuse one
// column for two meanings: a date means the stage finished in full on that
// date, a number means that many units are still outstanding.
type CellKind int

const (
	CellAbsent CellKind = iota
	CellMarker
	CellDate
	CellNumeric
	CellUnknown
)

type CellValue struct {
	Kind   CellKind
	Date   string  // YYYY-MM-DD, set when Kind is CellDate
	Number float64 // set when Kind is CellNumeric
	Raw    string
}

// Sheets exported from the planning system carry these tokens in otherwise
// empty cells.
var placeholderTokens = map[string]bool{
	"":         true,
	"00:00:00": true,
	"#N/A":     true,
	"nan":      true,
	"NaN":      true,
	"None":     true,
}

// Operator shorthand that is neither a date nor a quantity. INHOUSE marks an
// outsourcing stage done in-house; the others are site notes.
var markerKeywords = []string{"INHOUSE", "HAPPO", "OK", "RACH"}

const (
	// Year assumed for short M/D cells. Months at or past the boundary
	// belong to the loadplan year, earlier months roll into the next one.
	defaultLoadplanYear = 2025
	yearRolloverMonth   = 10
)

var (
	reShortSlashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	reShortDashDate  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	reDotDate        = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})$`)
	reDashDate       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// Layouts excelize renders styled date cells with.
var structuredDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/06",
}

func isPlaceholder(s string) bool {
	return placeholderTokens[s]
}

func containsMarker(s string) bool {
	upper := strings.ToUpper(s)
	for _, kw := range markerKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// IsDateShaped reports whether a trimmed cell text matches one of the date
// shapes used in loadplan sheets.
func IsDateShaped(raw string) bool {
	s := strings.TrimSpace(raw)
	if isPlaceholder(s) || containsMarker(s) {
		return false
	}
	if reShortSlashDate.MatchString(s) || reShortDashDate.MatchString(s) ||
		reDotDate.MatchString(s) || reDashDate.MatchString(s) {
		return true
	}
	for _, layout := range structuredDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// NormalizeDate converts a date-shaped cell text to YYYY-MM-DD. Short M/D and
// M-D forms get the rollover year. Returns false when the text is not a
// recognized date shape.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)

	if m := reShortSlashDate.FindStringSubmatch(s); m != nil {
		return shortDate(m[1], m[2]), true
	}
	if m := reShortDashDate.FindStringSubmatch(s); m != nil {
		return shortDate(m[1], m[2]), true
	}
	if m := reDotDate.FindStringSubmatch(s); m != nil {
		return fullDate(m[1], m[2], m[3]), true
	}
	if m := reDashDate.FindStringSubmatch(s); m != nil {
		return fullDate(m[1], m[2], m[3]), true
	}
	for _, layout := range structuredDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

func shortDate(monthStr, dayStr string) string {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	year := defaultLoadplanYear
	if month < yearRolloverMonth {
		year = defaultLoadplanYear + 1
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

func fullDate(yearStr, monthStr, dayStr string) string {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	return fmt.Sprintf("%s-%02d-%02d", yearStr, month, day)
}

// IsNumericCell reports whether a cell text parses as a quantity. Marker
// keywords and slashes shadow the numeric reading.
func IsNumericCell(raw string) bool {
	s := strings.TrimSpace(raw)
	if isPlaceholder(s) || containsMarker(s) || strings.Contains(s, "/") {
		return false
	}
	_, err := strconv.ParseFloat(stripNumericNoise(s), 64)
	return err == nil
}

func stripNumericNoise(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// ClassifyCell decides what a raw BAL cell means. Pure and total: any input
// resolves to exactly one kind, and the same input always resolves the same
// way.
func ClassifyCell(raw string) CellValue {
	s := strings.TrimSpace(raw)

	if isPlaceholder(s) {
		return CellValue{Kind: CellAbsent, Raw: s}
	}

	if containsMarker(s) {
		if strings.Contains(strings.ToUpper(s), "INHOUSE") {
			return CellValue{Kind: CellMarker, Raw: s}
		}
		// HAPPO / OK / RACH block the date and numeric readings but carry
		// no completion meaning of their own.
		return CellValue{Kind: CellUnknown, Raw: s}
	}

	if date, ok := NormalizeDate(s); ok {
		return CellValue{Kind: CellDate, Date: date, Raw: s}
	}

	if IsNumericCell(s) {
		n, _ := strconv.ParseFloat(stripNumericNoise(s), 64)
		return CellValue{Kind: CellNumeric, Number: n, Raw: s}
	}

	return CellValue{Kind: CellUnknown, Raw: s}
}
