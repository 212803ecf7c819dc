package reportService

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/moonkaicuzui/hwk-loadplan/internal/db"
	snapshotService "github.com/moonkaicuzui/hwk-loadplan/internal/services/snapshot-service"
)

func GetDashboardSummary(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req DashboardRequest

	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
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

	qCondFactory := ``
	if len(req.Factories) > 0 {
		qCondFactory = fmt.Sprintf(` and factory in ('%s')`, strings.Join(req.Factories, `','`))
	}

	statusRows, err := db.ExecuteQuery(sqlxDB, fmt.Sprintf(`
		select factory, wh_out_status, count(*) cnt, sum(quantity) qty
		from loadplan_orders
		where run_id = $1 %s
		group by factory, wh_out_status`, qCondFactory), runID)
	if err != nil {
		return nil, err
	}

	delayRows, err := db.ExecuteQuery(sqlxDB, fmt.Sprintf(`
		select factory, delay, count(*) cnt
		from loadplan_orders
		where run_id = $1 %s
		group by factory, delay`, qCondFactory), runID)
	if err != nil {
		return nil, err
	}

	summaries := map[string]*FactorySummary{}
	summaryFor := func(factory string) *FactorySummary {
		s, ok := summaries[factory]
		if !ok {
			s = &FactorySummary{Factory: factory}
			summaries[factory] = s
		}
		return s
	}

	for _, row := range statusRows {
		factory, _ := row["factory"].(string)
		status, _ := row["wh_out_status"].(string)
		cnt := toInt(row["cnt"])

		s := summaryFor(factory)
		s.TotalOrders += cnt
		s.TotalQty += toInt(row["qty"])

		switch status {
		case "completed":
			s.Completed += cnt
		case "partial":
			s.Partial += cnt
		case "pending":
			s.Pending += cnt
		default:
			s.Unknown += cnt
		}
	}

	for _, row := range delayRows {
		factory, _ := row["factory"].(string)
		s := summaryFor(factory)

		switch row["delay"] {
		case "delayed":
			s.Delayed += toInt(row["cnt"])
		case "warning":
			s.Warning += toInt(row["cnt"])
		default:
			s.OnTime += toInt(row["cnt"])
		}
	}

	res := GetDashboardSummaryResponse{RunID: runID}
	for _, s := range summaries {
		res.Factories = append(res.Factories, *s)
	}
	sort.Slice(res.Factories, func(i, j int) bool {
		return res.Factories[i].Factory < res.Factories[j].Factory
	})

	return res, nil
}

func resolveRunID(sqlxDB *sqlx.DB, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	return snapshotService.LatestRunID(sqlxDB)
}

func toInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return 0
}
