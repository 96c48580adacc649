package schedule

import (
	"fmt"
	"math"
)

// summarize post-processes the committed assignment set into utilization,
// profit, and efficiency figures plus advisory notices.
func (s *Scheduler) summarize(req Request, bookings [][]Assignment, scheduled []Assignment, unscheduled []string) Result {
	totalProfit := 0.0
	for _, a := range scheduled {
		totalProfit += a.PayAmount
	}

	// Utilization divides booked hours by the device's entire posted
	// availability map, not just the horizon window.
	utilization := make(map[string]float64, len(req.Devices))
	utilizationSum := 0.0
	for i, device := range req.Devices {
		booked := 0.0
		for _, a := range bookings[i] {
			booked += a.EndTime.Sub(a.StartTime).Hours()
		}

		available := 0.0
		for _, h := range device.AvailableHours {
			available += h
		}

		pct := 0.0
		if available > 0 {
			pct = math.Min(100.0, booked/available*100.0)
		}
		utilization[device.DeviceID] = pct
		utilizationSum += pct
	}

	avgUtilization := 0.0
	if len(req.Devices) > 0 {
		avgUtilization = utilizationSum / float64(len(req.Devices)) / 100.0
	}

	completionRate := 1.0
	if len(req.Tasks) > 0 {
		completionRate = float64(len(scheduled)) / float64(len(req.Tasks))
	}

	efficiency := avgUtilization*0.6 + completionRate*0.4

	conflicts := make([]string, 0, 2)
	if len(unscheduled) > 0 {
		conflicts = append(conflicts, fmt.Sprintf("%d tasks could not be scheduled", len(unscheduled)))
	}
	if efficiency < 0.7 {
		conflicts = append(conflicts, "Low device utilization detected")
	}

	return Result{
		Scheduled:         scheduled,
		Unscheduled:       unscheduled,
		TotalProfit:       totalProfit,
		DeviceUtilization: utilization,
		Efficiency:        efficiency,
		Conflicts:         conflicts,
		ModelVersion:      ModelVersion,
	}
}
