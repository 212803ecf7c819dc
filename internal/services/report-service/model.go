package reportService

type DashboardRequest struct {
	RunID     string   `json:"run_id"`
	Factories []string `json:"factories"`
}

type FactorySummary struct {
	Factory     string `json:"factory"`
	TotalOrders int    `json:"totalOrders"`
	TotalQty    int    `json:"totalQty"`
	Completed   int    `json:"completed"`
	Partial     int    `json:"partial"`
	Pending     int    `json:"pending"`
	Unknown     int    `json:"unknown"`
	Delayed     int    `json:"delayed"`
	Warning     int    `json:"warning"`
	OnTime      int    `json:"onTime"`
}

type GetDashboardSummaryResponse struct {
	RunID     string           `json:"runId"`
	Factories []FactorySummary `json:"factories"`
}

type GetDashboardOverallResponse struct {
	RunID          string         `json:"runId"`
	TotalOrders    int            `json:"totalOrders"`
	TotalQty       int            `json:"totalQty"`
	StatusCount    map[string]int `json:"statusCount"`
	DelayedOrders  int            `json:"delayedOrders"`
	WarningOrders  int            `json:"warningOrders"`
	OnTimeOrders   int            `json:"onTimeOrders"`
	AqlOrders      int            `json:"aqlOrders"`
	OscRemaining   int            `json:"oscRemaining"`
	SewRemaining   int            `json:"sewRemaining"`
	AssRemaining   int            `json:"assRemaining"`
	WhInRemaining  int            `json:"whInRemaining"`
	WhOutRemaining int            `json:"whOutRemaining"`
}

type GenerateReportRequest struct {
	RunID      string `json:"run_id"`
	OutputPath string `json:"output_path"`
}

type GenerateReportResponse struct {
	Path        string `json:"path"`
	TotalOrders int    `json:"totalOrders"`
	Delayed     int    `json:"delayed"`
}
