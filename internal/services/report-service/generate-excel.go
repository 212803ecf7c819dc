package reportService

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/moonkaicuzui/hwk-loadplan/internal/db"
	loadplanService "github.com/moonkaicuzui/hwk-loadplan/internal/services/loadplan-service"
	snapshotService "github.com/moonkaicuzui/hwk-loadplan/internal/services/snapshot-service"
)

// ReportColumns is the consolidated order-status sheet layout, one column per
// entry, in output order.
var ReportColumns = []string{
	"Factory", "Unit", "Season", "Model", "Article", "Color",
	"Destination", "PO Number", "Quantity", "CRD", "CRD Month",
	"SDD", "SDD Month", "Code04", "AQL", "Inspection",
	"S_CUT", "PRE_SEW", "SEW_INPUT", "SEW_BAL", "S_FIT",
	"ASS_BAL", "WH_IN", "WH_OUT",
	"OSC Remaining", "SEW Remaining", "ASS Remaining",
	"WH_IN Remaining", "WH_OUT Remaining",
	"Delay", "Overall Status",
}

var reportColumnWidths = map[int]float64{
	1: 8, 2: 10, 3: 8, 4: 14, 5: 12, 6: 12,
	7: 14, 8: 12, 9: 9, 10: 11, 11: 10,
	12: 11, 13: 10, 14: 10, 15: 6, 16: 11,
	17: 9, 18: 9, 19: 10, 20: 9, 21: 9,
	22: 9, 23: 10, 24: 10,
	25: 12, 26: 12, 27: 12, 28: 13, 29: 14,
	30: 7, 31: 12,
}

// FlattenRecord turns one order into its report row. The Delay column goes
// through the shared classifier, same as the dashboard.
func FlattenRecord(order loadplanService.Order) []interface{} {
	delay := "No"
	if loadplanService.ClassifyDelay(order) == loadplanService.DelayDelayed {
		delay = "Yes"
	}

	aql := "No"
	if order.Aql {
		aql = "Yes"
	}

	whOut := order.Production["wh_out"]
	overallStatus := whOut.Status
	if overallStatus == "" {
		overallStatus = loadplanService.StatusPending
	}

	return []interface{}{
		order.Factory,
		order.Unit,
		order.Season,
		order.Model,
		order.Article,
		order.Color,
		order.Destination,
		order.PoNumber,
		order.Quantity,
		order.Crd,
		order.CrdYearMonth,
		order.SddValue,
		order.SddYearMonth,
		stringOrEmpty(order.Code04),
		aql,
		stringOrEmpty(order.Inspection),
		order.Production["s_cut"].Completed,
		order.Production["pre_sew"].Completed,
		order.Production["sew_input"].Completed,
		order.Production["sew_bal"].Completed,
		order.Production["s_fit"].Completed,
		order.Production["ass_bal"].Completed,
		order.Production["wh_in"].Completed,
		whOut.Completed,
		order.Remaining.Osc,
		order.Remaining.Sew,
		order.Remaining.Ass,
		order.Remaining.WhIn,
		order.Remaining.WhOut,
		delay,
		overallStatus,
	}
}

func GenerateReport(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req GenerateReportRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	sqlxDB, err := db.ConnectSqlx(`loadplan`)
	if err != nil {
		return nil, err
	}
	defer sqlxDB.Close()

	runID, err := resolveRunID(sqlxDB, req.RunID)
	if err != nil {
		return nil, err
	}

	orders, err := snapshotService.GetRunOrders(sqlxDB, runID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errors.New("no orders in snapshot " + runID)
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(os.Getenv("report_output_path"),
			fmt.Sprintf("consolidated_orders_%s.xlsx", time.Now().Format("2006-01-02")))
	}

	delayed, err := WriteReport(outputPath, orders)
	if err != nil {
		return nil, err
	}

	return GenerateReportResponse{
		Path:        outputPath,
		TotalOrders: len(orders),
		Delayed:     delayed,
	}, nil
}

// WriteReport builds the consolidated workbook: the order sheet plus an Info
// sheet with per-factory and per-status counts. Returns the delayed-order
// count.
func WriteReport(outputPath string, orders []loadplanService.Order) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})

	if err := f.SetSheetRow(sheet, "A1", &ReportColumns); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(ReportColumns))
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	delayed := 0
	for i, order := range orders {
		row := FlattenRecord(order)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return 0, fmt.Errorf("write row %d: %w", i+2, err)
		}
		if loadplanService.ClassifyDelay(order) == loadplanService.DelayDelayed {
			delayed++
		}
	}

	for col, width := range reportColumnWidths {
		name, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(sheet, name, name, width)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, len(orders)+1), nil)

	if err := writeInfoSheet(f, orders, delayed); err != nil {
		return 0, err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := f.SaveAs(outputPath); err != nil {
		return 0, fmt.Errorf("save report: %w", err)
	}

	return delayed, nil
}

func writeInfoSheet(f *excelize.File, orders []loadplanService.Order, delayed int) error {
	sheet := "Info"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create info sheet: %w", err)
	}

	factoryCounts := map[string]int{}
	statusCounts := map[string]int{}
	for _, order := range orders {
		factoryCounts[order.Factory]++
		statusCounts[order.Production["wh_out"].Status]++
	}

	rows := [][]interface{}{
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
		{"Total Orders", len(orders)},
		{},
		{"Orders per Factory", ""},
	}

	factories := make([]string, 0, len(factoryCounts))
	for factory := range factoryCounts {
		factories = append(factories, factory)
	}
	sort.Strings(factories)
	for _, factory := range factories {
		rows = append(rows, []interface{}{"  Factory " + factory, factoryCounts[factory]})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Orders per Status", ""})
	for _, status := range []string{loadplanService.StatusCompleted, loadplanService.StatusPartial, loadplanService.StatusPending, loadplanService.StatusUnknown} {
		if cnt, ok := statusCounts[status]; ok {
			rows = append(rows, []interface{}{"  " + status, cnt})
		}
	}

	rows = append(rows, []interface{}{}, []interface{}{"Delayed Orders", delayed})

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write info row %d: %w", i+1, err)
		}
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 25)

	return nil
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
