package loadplanService

import (
	"errors"
	"fmt"
)

// ErrSchemaNotFound is returned for factory ids without a declared layout.
var ErrSchemaNotFound = errors.New("no column schema for factory")

// Each factory exports its loadplan with its own column layout. The four maps
// are declared independently: positions that happen to match between
// factories are coincidence, not shared structure, so none of these is
// derived from another. Indexes are 0-based sheet columns.

var columnsA = map[string]int{
	"unit":                0,
	"season":              1,
	"prod_lt":             3,
	"coop":                4,
	"crd":                 5,
	"sdd_original":        6,
	"sdd_current":         7,
	"code04":              8,
	"model":               9,
	"article":             10,
	"color":               11,
	"gd":                  12,
	"sales_order":         13,
	"destination":         14,
	"event":               15,
	"quantity":            17,
	"mrp_qty":             18,
	"mrp_date":            19,
	"setp":                20,
	"intertek":            25,
	"osc_material":        26,
	"main_material":       27,
	"outsourcing_out_bal": 37,
	"outsourcing_in_bal":  38,
	"osc_vendor":          39,
	"s_cut_bal":           40,
	"pre_sew_bal":         41,
	"sew_input_bal":       42,
	"sew_prod_scan":       43,
	"sew_bal":             44,
	"outsole_vendor":      48,
	"s_fit_bal":           50,
	"ass_bal":             51,
	"wh_return_fac":       53,
	"wh_in_bal":           54,
	"wh_out_bal":          55,
	"pkg_type":            56,
	"inspection":          61,
}

var columnsB = map[string]int{
	"unit":                0,
	"season":              1,
	"prod_lt":             3,
	"coop":                4,
	"crd":                 5,
	"sdd_original":        6,
	"sdd_current":         7,
	"code04":              8,
	"model":               9,
	"article":             10,
	"color":               11,
	"gd":                  12,
	"sales_order":         13,
	"destination":         14,
	"event":               15,
	"quantity":            17,
	"mrp_qty":             18,
	"mrp_date":            19,
	"setp":                20,
	"intertek":            24,
	"osc_material":        26,
	"main_material":       27,
	"outsourcing_out_bal": 37,
	"outsourcing_in_bal":  38,
	"osc_vendor":          39,
	"s_cut_bal":           40,
	"pre_sew_bal":         41,
	"sew_input_bal":       42,
	"sew_prod_scan":       43,
	"sew_bal":             44,
	"outsole_vendor":      47,
	"s_fit_bal":           49,
	"ass_bal":             50,
	"wh_return_fac":       52,
	"wh_in_bal":           53,
	"wh_out_bal":          54,
	"pkg_type":            55,
	"inspection":          60,
}

var columnsC = map[string]int{
	"unit":                0,
	"season":              1,
	"prod_lt":             3,
	"coop":                4,
	"crd":                 6,
	"sdd_original":        7,
	"sdd_current":         8,
	"code04":              9,
	"model":               11,
	"article":             12,
	"color":               14,
	"gd":                  15,
	"sales_order":         16,
	"destination":         17,
	"intertek":            18,
	"event":               19,
	"quantity":            21,
	"mrp_qty":             22,
	"mrp_date":            23,
	"setp":                24,
	"osc_material":        40,
	"main_material":       41,
	"outsourcing_out_bal": 50,
	"outsourcing_in_bal":  51,
	"osc_vendor":          52,
	"s_cut_bal":           53,
	"pre_sew_bal":         54,
	"sew_input_bal":       55,
	"sew_prod_scan":       56,
	"sew_bal":             57,
	"outsole_vendor":      61,
	"s_fit_bal":           64,
	"ass_bal":             65,
	"wh_return_fac":       67,
	"wh_in_bal":           68,
	"wh_out_bal":          69,
	"pkg_type":            70,
	"inspection":          75,
}

var columnsD = map[string]int{
	"unit":                0,
	"season":              1,
	"prod_lt":             2,
	"coop":                3,
	"crd":                 5,
	"sdd_original":        6,
	"sdd_current":         7,
	"code04":              8,
	"model":               10,
	"article":             11,
	"color":               13,
	"gd":                  14,
	"sales_order":         15,
	"destination":         16,
	"intertek":            17,
	"event":               18,
	"quantity":            20,
	"mrp_qty":             21,
	"mrp_date":            22,
	"setp":                23,
	"osc_material":        39,
	"main_material":       40,
	"outsourcing_out_bal": 49,
	"outsourcing_in_bal":  50,
	"osc_vendor":          51,
	"s_cut_bal":           52,
	"pre_sew_bal":         53,
	"sew_input_bal":       54,
	"sew_prod_scan":       55,
	"sew_bal":             56,
	"outsole_vendor":      60,
	"s_fit_bal":           62,
	"ass_bal":             63,
	"wh_return_fac":       65,
	"wh_in_bal":           66,
	"wh_out_bal":          67,
	"pkg_type":            68,
	"inspection":          73,
}

var factorySchemas = map[string]map[string]int{
	"A": columnsA,
	"B": columnsB,
	"C": columnsC,
	"D": columnsD,
}

// FactoryIDs lists the known factories in batch order.
var FactoryIDs = []string{"A", "B", "C", "D"}

// SchemaFor returns the column layout for one factory. Unknown ids are a hard
// error: silently falling back to another factory's layout would read every
// field from the wrong column.
func SchemaFor(factory string) (map[string]int, error) {
	cols, ok := factorySchemas[factory]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, factory)
	}
	return cols, nil
}
