package loadplanService

import "math"

// ResolveStage turns a classified BAL cell into the stage's completion state.
// Ground truth for the column: a date means the full quantity finished on
// that date, a number means that many units are still outstanding.
func ResolveStage(cell CellValue, quantity int) StageStatus {
	switch cell.Kind {
	case CellAbsent:
		return StageStatus{Completed: 0, Pending: quantity, Status: StatusPending}

	case CellMarker:
		// Stage handled in-house, nothing outstanding.
		return StageStatus{Completed: quantity, Pending: 0, Status: StatusCompleted, Note: "INHOUSE"}

	case CellDate:
		date := cell.Date
		return StageStatus{Completed: quantity, Pending: 0, Status: StatusCompleted, ExpectedDate: &date}

	case CellNumeric:
		remaining := int(math.Round(cell.Number))
		completed := quantity - remaining
		if completed < 0 {
			completed = 0
		}
		status := StatusPartial
		if remaining == 0 {
			status = StatusCompleted
		} else if remaining >= quantity {
			status = StatusPending
		}
		return StageStatus{Completed: completed, Pending: remaining, Status: status}

	default:
		// Unrecognized shape: keep the raw text for diagnostics and treat
		// the full quantity as outstanding.
		return StageStatus{Completed: 0, Pending: quantity, Status: StatusUnknown, RawValue: cell.Raw}
	}
}

// BuildProduction resolves every tracked stage from its own BAL column. The
// sew_prod_scan column is a scan count only and never overrides sew_bal.
func BuildProduction(row []string, cols map[string]int, quantity int) map[string]StageStatus {
	production := make(map[string]StageStatus, len(StageNames))
	for _, stage := range StageNames {
		colIdx, ok := cols[stageColumns[stage]]
		if !ok || colIdx >= len(row) {
			production[stage] = StageStatus{Completed: 0, Pending: quantity, Status: StatusPending}
			continue
		}
		production[stage] = ResolveStage(ClassifyCell(row[colIdx]), quantity)
	}
	return production
}

// BuildRemaining derives the dashboard remaining-quantity fields from the
// designated stages' pending values.
func BuildRemaining(production map[string]StageStatus, oscPending int) Remaining {
	return Remaining{
		Osc:   oscPending,
		Sew:   production["sew_bal"].Pending,
		Ass:   production["ass_bal"].Pending,
		WhIn:  production["wh_in"].Pending,
		WhOut: production["wh_out"].Pending,
	}
}
