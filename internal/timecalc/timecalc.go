package timecalc

import (
	"math"
	"strings"
)

// Input describes the part and process whose manufacturing time is being
// estimated. STL-derived fields are optional; zero values fall back to
// defaults.
type Input struct {
	VolumeCm3       float64
	ComplexityScore float64 // 0-1
	Material        string
	Quantity        int
	DeviceType      string // e.g. "3d_printer_fdm", "cnc_mill"
	ToleranceTier   string // low, medium, high
}

// Output is the time estimate with its per-operation breakdown.
type Output struct {
	EstimatedHours float64            `json:"estimated_hours"`
	SetupTimeHours float64            `json:"setup_time_hours"`
	PerUnitHours   float64            `json:"per_unit_hours"`
	TotalHours     float64            `json:"total_hours"`
	Breakdown      map[string]float64 `json:"breakdown"`
}

// setupTimes holds per-device-type setup overhead in hours.
var setupTimes = map[string]float64{
	"3d_printer_fdm":    0.5,
	"3d_printer_resin":  0.5,
	"cnc_mill":          1.0,
	"cnc_router":        0.75,
	"cnc_lathe":         1.0,
	"laser_co2":         0.25,
	"laser_fiber":       0.5,
	"injection_molding": 2.0,
}

var toleranceMultipliers = map[string]float64{"low": 1.0, "medium": 1.2, "high": 1.5}

const cncRemovalRateCm3PerMin = 10.0

func printTime(in Input) float64 {
	volume := in.VolumeCm3
	if volume <= 0 {
		volume = 100.0
	}
	complexity := in.ComplexityScore
	if complexity <= 0 {
		complexity = 0.5
	}
	// 0.05 hours per 10 cm3, scaled by complexity, clamped to 0.1-2 hours.
	base := (volume / 10.0) * 0.05 * (1.0 + complexity)
	return math.Max(0.1, math.Min(2.0, base))
}

func cncTime(in Input) float64 {
	volume := in.VolumeCm3
	if volume <= 0 {
		volume = 100.0
	}
	minutes := volume / cncRemovalRateCm3PerMin
	if in.ComplexityScore > 0 {
		minutes *= in.ComplexityScore
	}
	return math.Max(0.5, minutes/60.0)
}

func laserTime(in Input) float64 {
	complexity := in.ComplexityScore
	if complexity <= 0 {
		complexity = 0.5
	}
	return 0.05 + complexity*0.45
}

func injectionTime() float64 {
	const cycleSeconds = 30.0
	return cycleSeconds / 3600.0
}

// Estimate computes setup and per-unit manufacturing time for a job using
// device-family heuristics, applying the tolerance-tier multiplier to the
// per-unit figure.
func Estimate(in Input) Output {
	setup, ok := setupTimes[in.DeviceType]
	if !ok {
		setup = 0.5
	}

	var perUnit float64
	switch {
	case strings.Contains(in.DeviceType, "3d_printer"):
		perUnit = printTime(in)
	case strings.Contains(in.DeviceType, "cnc"):
		perUnit = cncTime(in)
	case strings.Contains(in.DeviceType, "laser"):
		perUnit = laserTime(in)
	case strings.Contains(in.DeviceType, "injection_molding"):
		perUnit = injectionTime()
	default:
		complexity := in.ComplexityScore
		if complexity <= 0 {
			complexity = 0.5
		}
		perUnit = 1.0 + complexity*3.0
	}

	mult, ok := toleranceMultipliers[in.ToleranceTier]
	if !ok {
		mult = 1.2
	}
	perUnit *= mult

	production := perUnit * float64(in.Quantity)

	return Output{
		EstimatedHours: perUnit,
		SetupTimeHours: setup,
		PerUnitHours:   perUnit,
		TotalHours:     setup + production,
		Breakdown: map[string]float64{
			"setup_time":           setup,
			"per_unit_time":        perUnit,
			"production_time":      production,
			"tolerance_multiplier": mult,
		},
	}
}
