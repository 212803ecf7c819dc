package reportService

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/moonkaicuzui/hwk-loadplan/internal/db"
)

func GetDashboardOverall(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req DashboardRequest

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

	totalRows, err := db.ExecuteQuery(sqlxDB, `
		select count(*) total_orders
			, coalesce(sum(quantity), 0) total_qty
			, coalesce(sum(case when delay = 'delayed' then 1 else 0 end), 0) delayed_orders
			, coalesce(sum(case when delay = 'warning' then 1 else 0 end), 0) warning_orders
			, coalesce(sum(case when delay = 'on_time' then 1 else 0 end), 0) on_time_orders
			, coalesce(sum(case when aql then 1 else 0 end), 0) aql_orders
			, coalesce(sum(osc_remaining), 0) osc_remaining
			, coalesce(sum(sew_remaining), 0) sew_remaining
			, coalesce(sum(ass_remaining), 0) ass_remaining
			, coalesce(sum(wh_in_remaining), 0) wh_in_remaining
			, coalesce(sum(wh_out_remaining), 0) wh_out_remaining
		from loadplan_orders
		where run_id = $1`, runID)
	if err != nil {
		return nil, err
	}
	if len(totalRows) == 0 {
		return nil, errors.New("no snapshot rows for run " + runID)
	}

	statusRows, err := db.ExecuteQuery(sqlxDB, `
		select wh_out_status, count(*) cnt
		from loadplan_orders
		where run_id = $1
		group by wh_out_status`, runID)
	if err != nil {
		return nil, err
	}

	statusCount := map[string]int{}
	for _, row := range statusRows {
		status, _ := row["wh_out_status"].(string)
		statusCount[status] = toInt(row["cnt"])
	}

	total := totalRows[0]
	res := GetDashboardOverallResponse{
		RunID:          runID,
		TotalOrders:    toInt(total["total_orders"]),
		TotalQty:       toInt(total["total_qty"]),
		StatusCount:    statusCount,
		DelayedOrders:  toInt(total["delayed_orders"]),
		WarningOrders:  toInt(total["warning_orders"]),
		OnTimeOrders:   toInt(total["on_time_orders"]),
		AqlOrders:      toInt(total["aql_orders"]),
		OscRemaining:   toInt(total["osc_remaining"]),
		SewRemaining:   toInt(total["sew_remaining"]),
		AssRemaining:   toInt(total["ass_remaining"]),
		WhInRemaining:  toInt(total["wh_in_remaining"]),
		WhOutRemaining: toInt(total["wh_out_remaining"]),
	}

	return res, nil
}
