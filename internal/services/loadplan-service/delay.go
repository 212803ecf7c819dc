package loadplanService

import "time"

// An order counts as warning when the ship date lands this close to the
// customer required date without passing it. Fixed business constant.
const warningWindowDays = 3

// ClassifyDelay computes the tri-state delay classification for one order.
// This is the single source of the rule; the report writer and the dashboard
// both go through it so the copies cannot drift.
//
// delayed: SDD after CRD with no approved code04 change.
// warning: not delayed and SDD within warningWindowDays before (or on) CRD.
// on_time: everything else, including orders already fully shipped, orders
// with an approved code04, and orders whose dates are missing or not
// date-shaped.
func ClassifyDelay(o Order) string {
	crd, err := time.Parse("2006-01-02", o.Crd)
	if err != nil {
		return DelayOnTime
	}
	sdd, err := time.Parse("2006-01-02", o.SddValue)
	if err != nil {
		return DelayOnTime
	}

	if whOut, ok := o.Production["wh_out"]; ok && whOut.Completed >= o.Quantity {
		return DelayOnTime
	}
	if o.Code04 != nil {
		return DelayOnTime
	}

	if sdd.After(crd) {
		return DelayDelayed
	}

	diffDays := int(crd.Sub(sdd).Hours() / 24)
	if diffDays >= 0 && diffDays <= warningWindowDays {
		return DelayWarning
	}

	return DelayOnTime
}
