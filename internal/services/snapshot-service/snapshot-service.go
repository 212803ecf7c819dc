package snapshotService

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"github.com/moonkaicuzui/hwk-loadplan/internal/db"
	loadplanService "github.com/moonkaicuzui/hwk-loadplan/internal/services/loadplan-service"
)

const insertChunkSize = 500

// FromOrder flattens a normalized order into its snapshot row. The delay
// classification is computed here, once, so every reader of the table sees
// the same verdict.
func FromOrder(runID string, order loadplanService.Order, importDate time.Time) (LoadplanOrder, error) {
	productionJSON, err := json.Marshal(order.Production)
	if err != nil {
		return LoadplanOrder{}, fmt.Errorf("marshal production: %w", err)
	}

	whOut := order.Production["wh_out"]

	return LoadplanOrder{
		RunID:          runID,
		Factory:        order.Factory,
		Unit:           order.Unit,
		Season:         order.Season,
		ModelName:      order.Model,
		Article:        order.Article,
		Color:          order.Color,
		Destination:    order.Destination,
		PoNumber:       order.PoNumber,
		Quantity:       order.Quantity,
		Crd:            order.Crd,
		CrdYearMonth:   order.CrdYearMonth,
		SddValue:       order.SddValue,
		SddYearMonth:   order.SddYearMonth,
		Code04:         order.Code04,
		OutsoleVendor:  order.OutsoleVendor,
		MrpQty:         order.MrpQty,
		MrpDate:        order.MrpDate,
		WhReturnFac:    order.WhReturnFac,
		Inspection:     order.Inspection,
		Aql:            order.Aql,
		ProductionJSON: string(productionJSON),
		OscRemaining:   order.Remaining.Osc,
		SewRemaining:   order.Remaining.Sew,
		AssRemaining:   order.Remaining.Ass,
		WhInRemaining:  order.Remaining.WhIn,
		WhOutRemaining: order.Remaining.WhOut,
		WhOutCompleted: whOut.Completed,
		WhOutStatus:    whOut.Status,
		Delay:          loadplanService.ClassifyDelay(order),
		ImportDate:     importDate,
	}, nil
}

// SaveSnapshot writes one complete batch under a fresh run id, in chunks.
// Each chunk commits in its own transaction.
func SaveSnapshot(gormDB *gorm.DB, runID string, orders []loadplanService.Order) error {
	importDate := time.Now()

	insertFunc := func(items []LoadplanOrder) error {
		tx := gormDB.Begin()

		if err := tx.Table("loadplan_orders").Create(&items).Error; err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return err
		}

		return nil
	}

	var chunk []LoadplanOrder
	for index, order := range orders {
		row, err := FromOrder(runID, order, importDate)
		if err != nil {
			return err
		}
		chunk = append(chunk, row)

		if len(chunk) >= insertChunkSize || index == len(orders)-1 {
			if err := insertFunc(chunk); err != nil {
				return err
			}
			chunk = []LoadplanOrder{}
		}
	}

	return nil
}

// LatestRunID returns the run id of the newest stored snapshot.
func LatestRunID(sqlxDB *sqlx.DB) (string, error) {
	rows, err := db.ExecuteQuery(sqlxDB,
		`select run_id from loadplan_orders order by import_date desc limit 1`)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", errors.New("no snapshot stored yet")
	}

	runID, _ := rows[0]["run_id"].(string)
	if runID == "" {
		return "", errors.New("snapshot row has no run_id")
	}

	return runID, nil
}

// GetRunOrders reads one snapshot back into normalized orders.
func GetRunOrders(sqlxDB *sqlx.DB, runID string) ([]loadplanService.Order, error) {
	rows, err := db.ExecuteQuery(sqlxDB, `select
			factory, unit, season, model_name, article, color,
			destination, po_number, quantity, crd, crd_year_month,
			sdd_value, sdd_year_month, code04, outsole_vendor,
			mrp_qty, mrp_date, wh_return_fac, inspection, aql,
			production_json, osc_remaining, sew_remaining, ass_remaining,
			wh_in_remaining, wh_out_remaining
		from loadplan_orders
		where run_id = $1
		order by factory, loadplan_order_id`, runID)
	if err != nil {
		return nil, err
	}

	orders := make([]loadplanService.Order, 0, len(rows))
	for _, row := range rows {
		order := loadplanService.Order{
			Factory:       stringValue(row, "factory"),
			Unit:          stringValue(row, "unit"),
			Season:        stringValue(row, "season"),
			Model:         stringValue(row, "model_name"),
			Article:       stringValue(row, "article"),
			Color:         stringValue(row, "color"),
			Destination:   stringValue(row, "destination"),
			PoNumber:      stringValue(row, "po_number"),
			Quantity:      intValue(row, "quantity"),
			Crd:           stringValue(row, "crd"),
			CrdYearMonth:  stringValue(row, "crd_year_month"),
			SddValue:      stringValue(row, "sdd_value"),
			SddYearMonth:  stringValue(row, "sdd_year_month"),
			Code04:        stringPtrValue(row, "code04"),
			OutsoleVendor: stringValue(row, "outsole_vendor"),
			MrpQty:        intPtrValue(row, "mrp_qty"),
			MrpDate:       stringPtrValue(row, "mrp_date"),
			WhReturnFac:   intValue(row, "wh_return_fac"),
			Inspection:    stringPtrValue(row, "inspection"),
			Aql:           boolValue(row, "aql"),
			OscRemaining:  intValue(row, "osc_remaining"),
			Remaining: loadplanService.Remaining{
				Osc:   intValue(row, "osc_remaining"),
				Sew:   intValue(row, "sew_remaining"),
				Ass:   intValue(row, "ass_remaining"),
				WhIn:  intValue(row, "wh_in_remaining"),
				WhOut: intValue(row, "wh_out_remaining"),
			},
		}

		production := map[string]loadplanService.StageStatus{}
		if raw := stringValue(row, "production_json"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &production); err != nil {
				return nil, fmt.Errorf("unmarshal production for run %s: %w", runID, err)
			}
		}
		order.Production = production

		orders = append(orders, order)
	}

	return orders, nil
}

func stringValue(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func stringPtrValue(row map[string]interface{}, key string) *string {
	if v, ok := row[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func intValue(row map[string]interface{}, key string) int {
	switch v := row[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func intPtrValue(row map[string]interface{}, key string) *int {
	if row[key] == nil {
		return nil
	}
	n := intValue(row, key)
	return &n
}

func boolValue(row map[string]interface{}, key string) bool {
	if v, ok := row[key].(bool); ok {
		return v
	}
	return false
}
