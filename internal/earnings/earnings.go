package earnings

import "time"

// CompletedJob is the pay and cost snapshot of one finished job.
type CompletedJob struct {
	JobID        string
	PayAmount    float64
	MaterialCost float64
}

// JobEarnings is the per-job line item in a report.
type JobEarnings struct {
	JobID         string  `json:"job_id"`
	Pay           float64 `json:"pay"`
	MaterialsCost float64 `json:"materials_cost"`
	NetEarnings   float64 `json:"net_earnings"`
}

// Report aggregates a manufacturer's earnings over a period.
type Report struct {
	TotalEarnings      float64       `json:"total_earnings"`
	TotalMaterialCosts float64       `json:"total_material_costs"`
	NetEarnings        float64       `json:"net_earnings"`
	EarningsByJob      []JobEarnings `json:"earnings_by_job"`
	PeriodStart        time.Time     `json:"period_start"`
	PeriodEnd          time.Time     `json:"period_end"`
}

// Calculate sums pay and material costs over the completed jobs. It is
// plain arithmetic; period filtering is the caller's concern.
func Calculate(jobs []CompletedJob, periodStart, periodEnd time.Time) Report {
	report := Report{
		EarningsByJob: make([]JobEarnings, 0, len(jobs)),
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
	}

	for _, job := range jobs {
		report.TotalEarnings += job.PayAmount
		report.TotalMaterialCosts += job.MaterialCost
		report.EarningsByJob = append(report.EarningsByJob, JobEarnings{
			JobID:         job.JobID,
			Pay:           job.PayAmount,
			MaterialsCost: job.MaterialCost,
			NetEarnings:   job.PayAmount - job.MaterialCost,
		})
	}

	report.NetEarnings = report.TotalEarnings - report.TotalMaterialCosts
	return report
}
