package schedule

import (
	"math"
	"time"
)

// PriorityScore computes the urgency/value score used to order the greedy
// assignment pass. Higher scores are scheduled first. Overdue tasks produce
// an urgency above 1 and are deliberately not clamped.
func PriorityScore(t Task, ref time.Time) float64 {
	daysUntilDeadline := t.Deadline.Sub(ref).Hours() / 24

	urgency := 1.0 / (daysUntilDeadline + 1.0)
	profitFactor := math.Min(t.PayAmount/1000.0, 1.0)
	priorityFactor := float64(t.Priority) / 10.0

	return urgency*0.4 + profitFactor*0.4 + priorityFactor*0.2
}
