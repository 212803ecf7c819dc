package uploadlog

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/moonkaicuzui/hwk-loadplan/internal/db"
)

func AddUploadLog(sqlxDB *sqlx.DB, runID, fileName string, uploadRow int, uploadStatus bool, uploadReason string) error {
	sql := `INSERT INTO upload_logs (
		master_name,
		run_id,
		file_name,
		upload_row,
		status,
		percent,
		import_date,
		last_update_date,
		upload_reason
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now().Format(time.RFC3339)
	_, err := db.ExecuteQuery(sqlxDB, sql,
		"loadplan-batch", runID, fileName, uploadRow, uploadStatus, 100, now, now, uploadReason)

	return err
}
