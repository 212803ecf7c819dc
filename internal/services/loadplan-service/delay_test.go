package loadplanService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func delayOrder(crd, sdd string, quantity, whOutCompleted int, code04 *string) Order {
	return Order{
		Crd:      crd,
		SddValue: sdd,
		Quantity: quantity,
		Code04:   code04,
		Production: map[string]StageStatus{
			"wh_out": {Completed: whOutCompleted, Pending: quantity - whOutCompleted},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestClassifyDelayShipAfterRequired(t *testing.T) {
	order := delayOrder("2025-12-20", "2025-12-22", 50, 0, nil)
	assert.Equal(t, DelayDelayed, ClassifyDelay(order))
}

func TestClassifyDelayEqualDatesIsWarning(t *testing.T) {
	// SDD on CRD: not late, but no slack left either.
	order := delayOrder("2025-12-20", "2025-12-20", 50, 0, nil)
	assert.Equal(t, DelayWarning, ClassifyDelay(order))
}

func TestClassifyDelayWarningWindow(t *testing.T) {
	cases := []struct {
		name string
		sdd  string
		want string
	}{
		{"one day of slack", "2025-12-19", DelayWarning},
		{"three days of slack", "2025-12-17", DelayWarning},
		{"four days of slack", "2025-12-16", DelayOnTime},
		{"one day late", "2025-12-21", DelayDelayed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := delayOrder("2025-12-20", tc.sdd, 100, 0, nil)
			assert.Equal(t, tc.want, ClassifyDelay(order))
		})
	}
}

func TestClassifyDelayCode04Override(t *testing.T) {
	order := delayOrder("2025-12-20", "2026-01-15", 100, 0, strPtr("04"))
	assert.Equal(t, DelayOnTime, ClassifyDelay(order))
}

func TestClassifyDelayShippedOrderIsOnTime(t *testing.T) {
	order := delayOrder("2025-12-20", "2025-12-22", 100, 100, nil)
	assert.Equal(t, DelayOnTime, ClassifyDelay(order))
}

func TestClassifyDelayMissingDates(t *testing.T) {
	cases := []struct {
		name string
		crd  string
		sdd  string
	}{
		{"no crd", "", "2025-12-22"},
		{"no sdd", "2025-12-20", ""},
		{"sdd not a date", "2025-12-20", "TBA W51"},
		{"crd not a date", "W51", "2025-12-22"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := delayOrder(tc.crd, tc.sdd, 100, 0, nil)
			assert.Equal(t, DelayOnTime, ClassifyDelay(order))
		})
	}
}

// Exactly one classification per order, whatever the inputs.
func TestClassifyDelayExhaustive(t *testing.T) {
	dates := []string{"", "2025-12-16", "2025-12-20", "2025-12-24", "TBA"}
	for _, crd := range dates {
		for _, sdd := range dates {
			for _, completed := range []int{0, 50, 100} {
				order := delayOrder(crd, sdd, 100, completed, nil)
				got := ClassifyDelay(order)
				assert.Contains(t, []string{DelayOnTime, DelayWarning, DelayDelayed}, got,
					"crd=%q sdd=%q completed=%d", crd, sdd, completed)
			}
		}
	}
}
