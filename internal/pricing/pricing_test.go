package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyMultiplier(t *testing.T) {
	testCases := []struct {
		name         string
		deadlineDays int
		standardDays int
		want         float64
	}{
		{"no rush", 14, 14, 1.0},
		{"slightly early", 10, 14, 1.1},
		{"half the time", 7, 14, 1.2},
		{"well under half", 5, 14, 1.3},
		{"rush job", 2, 14, 1.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, urgencyMultiplier(tc.deadlineDays, tc.standardDays))
		})
	}
}

func TestComplexityMultiplier(t *testing.T) {
	assert.InDelta(t, 1.0, complexityMultiplier("low", 0), 1e-9)
	assert.InDelta(t, 1.25*1.15, complexityMultiplier("medium", 0.5), 1e-9)
	assert.InDelta(t, 1.5*1.3, complexityMultiplier("high", 1.0), 1e-9)
	// Unknown tiers behave as medium.
	assert.InDelta(t, 1.25, complexityMultiplier("", 0), 1e-9)
}

func TestMaterialCost(t *testing.T) {
	assert.Equal(t, 0.06, MaterialCost("PLA"))
	assert.Equal(t, 45.00, MaterialCost("Titanium (Grade 5)"))
	assert.Equal(t, 0.10, MaterialCost("Unobtainium"))
}

func TestEstimate(t *testing.T) {
	out := Estimate(Input{
		Material:            "PLA",
		MaterialCostPerUnit: 0.06,
		Quantity:            100,
		ToleranceTier:       "low",
		ComplexityScore:     0,
		EstimatedHours:      9,
		SetupTimeHours:      1,
		DeadlineDays:        14,
		StandardDays:        14,
		MarketRatePerHour:   35,
	})

	// materials 6, labor 10*35*1.0 = 350, overhead 52.5, subtotal 408.5,
	// margin 81.7, urgency 1.0 -> 490.2
	assert.InDelta(t, 490.2, out.SuggestedPay, 0.01)
	assert.InDelta(t, 490.2*0.85, out.RangeLow, 0.01)
	assert.InDelta(t, 490.2*1.15, out.RangeHigh, 0.01)
	assert.Equal(t, 6.0, out.Breakdown["materials"])
	assert.Equal(t, 350.0, out.Breakdown["labor"])
	assert.Equal(t, 52.5, out.Breakdown["overhead"])
	assert.Equal(t, 1.0, out.Breakdown["urgency_multiplier"])
	assert.Equal(t, ModelVersion, out.ModelVersion)
}

func TestEstimateRushJobCostsMore(t *testing.T) {
	base := Input{
		MaterialCostPerUnit: 1,
		Quantity:            10,
		ToleranceTier:       "medium",
		ComplexityScore:     0.5,
		EstimatedHours:      5,
		SetupTimeHours:      1,
		DeadlineDays:        14,
		StandardDays:        14,
		MarketRatePerHour:   45,
	}
	rush := base
	rush.DeadlineDays = 2

	assert.Greater(t, Estimate(rush).SuggestedPay, Estimate(base).SuggestedPay)
}
