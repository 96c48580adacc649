package pricing

import "math"

// ModelVersion identifies the pay estimation formula revision.
const ModelVersion = "v1.0"

// Input describes the job whose fair pay is being estimated.
type Input struct {
	Material            string
	MaterialCostPerUnit float64
	Quantity            int
	ToleranceTier       string // low, medium, high
	ComplexityScore     float64
	EstimatedHours      float64
	SetupTimeHours      float64
	DeadlineDays        int
	StandardDays        int
	MarketRatePerHour   float64
}

// Output is the pay recommendation with its component breakdown.
type Output struct {
	SuggestedPay float64            `json:"suggested_pay"`
	RangeLow     float64            `json:"range_low"`
	RangeHigh    float64            `json:"range_high"`
	Breakdown    map[string]float64 `json:"breakdown"`
	ModelVersion string             `json:"model_version"`
}

// materialCosts maps material names to per-unit cost in USD. Unknown
// materials fall back to a nominal default.
var materialCosts = map[string]float64{
	// Metals
	"6061-T6 Aluminum":     4.90,
	"7075 Aluminum":        6.50,
	"304 Stainless Steel":  5.80,
	"316 Stainless Steel":  7.20,
	"Mild Steel (A36)":     3.50,
	"Carbon Steel":         4.20,
	"Titanium (Grade 5)":   45.00,
	"Brass":                8.50,
	"Copper":               6.80,
	"Bronze":               9.20,
	// Plastics
	"ABS":             0.08,
	"PLA":             0.06,
	"PETG":            0.09,
	"Nylon":           0.12,
	"Polycarbonate":   0.15,
	"Delrin (Acetal)": 0.18,
	"HDPE":            0.10,
	"UHMW":            0.14,
	"Acrylic":         0.11,
	"Polypropylene":   0.09,
	"PEEK":            0.85,
	"Ultem":           1.20,
	// Other
	"Wood":      0.15,
	"Ceramic":   0.25,
	"Composite": 0.45,
	"Rubber":    0.20,
	"Glass":     0.35,
}

// MaterialCost returns the per-unit cost for a material, defaulting to 0.10
// for materials outside the table.
func MaterialCost(material string) float64 {
	if c, ok := materialCosts[material]; ok {
		return c
	}
	return 0.10
}

// urgencyMultiplier scales pay up for jobs due faster than the standard
// delivery time, stepping from 1.0 up to 1.5 for rush jobs.
func urgencyMultiplier(deadlineDays, standardDays int) float64 {
	std := float64(standardDays)
	dl := float64(deadlineDays)
	switch {
	case dl >= std:
		return 1.0
	case dl >= std*0.7:
		return 1.1
	case dl >= std*0.5:
		return 1.2
	case dl >= std*0.3:
		return 1.3
	default:
		return 1.5
	}
}

// complexityMultiplier combines the tolerance tier factor with the
// continuous complexity score.
func complexityMultiplier(toleranceTier string, complexityScore float64) float64 {
	tierFactor := 1.25
	switch toleranceTier {
	case "low":
		tierFactor = 1.0
	case "high":
		tierFactor = 1.5
	}
	return tierFactor * (1.0 + complexityScore*0.3)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Estimate computes a fair pay recommendation:
// (materials + labor + 15% overhead) plus a 20% margin, scaled by the
// urgency multiplier, with a ±15% range around the suggestion.
func Estimate(in Input) Output {
	materialCost := in.MaterialCostPerUnit * float64(in.Quantity)

	totalHours := in.EstimatedHours + in.SetupTimeHours
	laborCost := totalHours * in.MarketRatePerHour * complexityMultiplier(in.ToleranceTier, in.ComplexityScore)

	overhead := laborCost * 0.15
	subtotal := materialCost + laborCost + overhead
	margin := subtotal * 0.20

	urgency := urgencyMultiplier(in.DeadlineDays, in.StandardDays)
	suggested := (subtotal + margin) * urgency

	breakdown := map[string]float64{
		"materials":           round2(materialCost),
		"labor":               round2(laborCost),
		"overhead":            round2(overhead),
		"margin":              round2(margin),
		"urgency_multiplier":  round2(urgency),
		"base_subtotal":       round2(subtotal),
		"final_suggested_pay": round2(suggested),
	}

	return Output{
		SuggestedPay: round2(suggested),
		RangeLow:     round2(suggested * 0.85),
		RangeHigh:    round2(suggested * 1.15),
		Breakdown:    breakdown,
		ModelVersion: ModelVersion,
	}
}
