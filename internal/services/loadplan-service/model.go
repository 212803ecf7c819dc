package loadplanService

// Stage status values.
const (
	StatusCompleted = "completed"
	StatusPartial   = "partial"
	StatusPending   = "pending"
	StatusUnknown   = "unknown"
)

// Delay classification values.
const (
	DelayOnTime  = "on_time"
	DelayWarning = "warning"
	DelayDelayed = "delayed"
)

// Tracked production stages, in process order. Keys into Order.Production.
var StageNames = []string{
	"s_cut",
	"pre_sew",
	"sew_input",
	"sew_bal",
	"s_fit",
	"ass_bal",
	"wh_in",
	"wh_out",
}

// stageColumns maps a stage name to its schema field.
var stageColumns = map[string]string{
	"s_cut":     "s_cut_bal",
	"pre_sew":   "pre_sew_bal",
	"sew_input": "sew_input_bal",
	"sew_bal":   "sew_bal",
	"s_fit":     "s_fit_bal",
	"ass_bal":   "ass_bal",
	"wh_in":     "wh_in_bal",
	"wh_out":    "wh_out_bal",
}

type StageStatus struct {
	Completed    int     `json:"completed"`
	Pending      int     `json:"pending"`
	Status       string  `json:"status"`
	ExpectedDate *string `json:"expected_date"`
	Note         string  `json:"note,omitempty"`
	RawValue     string  `json:"raw_value,omitempty"`
}

type Remaining struct {
	Osc   int `json:"osc"`
	Sew   int `json:"sew"`
	Ass   int `json:"ass"`
	WhIn  int `json:"whIn"`
	WhOut int `json:"whOut"`
}

type Order struct {
	Factory       string                 `json:"factory"`
	Unit          string                 `json:"unit"`
	Season        string                 `json:"season"`
	Model         string                 `json:"model"`
	Article       string                 `json:"article"`
	Color         string                 `json:"color"`
	Destination   string                 `json:"destination"`
	Quantity      int                    `json:"quantity"`
	PoNumber      string                 `json:"poNumber"`
	Crd           string                 `json:"crd"`
	CrdYearMonth  string                 `json:"crdYearMonth"`
	SddValue      string                 `json:"sddValue"`
	SddYearMonth  string                 `json:"sddYearMonth"`
	Code04        *string                `json:"code04"`
	OutsoleVendor string                 `json:"outsoleVendor"`
	MrpQty        *int                   `json:"mrpQty"`
	MrpDate       *string                `json:"mrpDate"`
	WhReturnFac   int                    `json:"whReturnFac"`
	Inspection    *string                `json:"inspection"`
	Aql           bool                   `json:"aql"`
	Production    map[string]StageStatus `json:"production"`
	OscRemaining  int                    `json:"oscRemaining"`
	Remaining     Remaining              `json:"remaining"`
}

// QualityStats counts auto-corrections made while normalizing one batch.
// Diagnostic only, never feeds back into classification.
type QualityStats struct {
	EmptyDestinations int `json:"empty_destinations"`
	InvalidDates      int `json:"invalid_dates"`
	AutoCorrected     int `json:"auto_corrected"`
}

func (q *QualityStats) Merge(other QualityStats) {
	q.EmptyDestinations += other.EmptyDestinations
	q.InvalidDates += other.InvalidDates
	q.AutoCorrected += other.AutoCorrected
}

// SkipReason explains why a raw row produced no Order.
type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipHeader          SkipReason = "header"
	SkipInvalidQuantity SkipReason = "invalid_quantity"
	SkipSubtotalRow     SkipReason = "subtotal_row"
)

type FactoryResult struct {
	Factory string       `json:"factory"`
	Records []Order      `json:"records"`
	Skipped int          `json:"skipped"`
	Errors  int          `json:"errors"`
	Quality QualityStats `json:"quality"`
}

type BatchResult struct {
	Records      []Order        `json:"records"`
	FactoryCount map[string]int `json:"factoryCount"`
	Skipped      int            `json:"skipped"`
	Errors       int            `json:"errors"`
	Quality      QualityStats   `json:"quality"`
}
