package snapshotService

import "time"

func (LoadplanOrder) TableName() string {
	return "loadplan_orders"
}

// LoadplanOrder is one normalized order row of a batch snapshot. Stage detail
// rides in production_json; the columns queried by the dashboard (wh_out
// state, delay, remaining) are flattened out of it at save time.
type LoadplanOrder struct {
	LoadplanOrderID int64     `gorm:"column:loadplan_order_id;primaryKey;autoIncrement"`
	RunID           string    `gorm:"column:run_id"`
	Factory         string    `gorm:"column:factory"`
	Unit            string    `gorm:"column:unit"`
	Season          string    `gorm:"column:season"`
	ModelName       string    `gorm:"column:model_name"`
	Article         string    `gorm:"column:article"`
	Color           string    `gorm:"column:color"`
	Destination     string    `gorm:"column:destination"`
	PoNumber        string    `gorm:"column:po_number"`
	Quantity        int       `gorm:"column:quantity"`
	Crd             string    `gorm:"column:crd"`
	CrdYearMonth    string    `gorm:"column:crd_year_month"`
	SddValue        string    `gorm:"column:sdd_value"`
	SddYearMonth    string    `gorm:"column:sdd_year_month"`
	Code04          *string   `gorm:"column:code04"`
	OutsoleVendor   string    `gorm:"column:outsole_vendor"`
	MrpQty          *int      `gorm:"column:mrp_qty"`
	MrpDate         *string   `gorm:"column:mrp_date"`
	WhReturnFac     int       `gorm:"column:wh_return_fac"`
	Inspection      *string   `gorm:"column:inspection"`
	Aql             bool      `gorm:"column:aql"`
	ProductionJSON  string    `gorm:"column:production_json"`
	OscRemaining    int       `gorm:"column:osc_remaining"`
	SewRemaining    int       `gorm:"column:sew_remaining"`
	AssRemaining    int       `gorm:"column:ass_remaining"`
	WhInRemaining   int       `gorm:"column:wh_in_remaining"`
	WhOutRemaining  int       `gorm:"column:wh_out_remaining"`
	WhOutCompleted  int       `gorm:"column:wh_out_completed"`
	WhOutStatus     string    `gorm:"column:wh_out_status"`
	Delay           string    `gorm:"column:delay"`
	ImportDate      time.Time `gorm:"column:import_date"`
}
