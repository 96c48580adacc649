package recommend

import (
	"sort"
	"time"
)

// DefaultLimit is the recommendation count returned when the caller does
// not ask for a specific number.
const DefaultLimit = 10

// Job is an open posting a manufacturer could take on.
type Job struct {
	JobID         string
	Title         string
	Material      string
	ToleranceTier string
	PayAmount     float64
	Deadline      time.Time
}

// Profile describes the manufacturer the recommendations are for.
type Profile struct {
	Materials     []string
	ToleranceTier string
	DeviceTypes   []string
}

// Recommendation is one scored job with the reasons behind its score.
type Recommendation struct {
	JobID   string   `json:"job_id"`
	Title   string   `json:"job_title"`
	Score   float64  `json:"recommendation_score"`
	Reasons []string `json:"reasons"`
}

var tierOrder = map[string]int{"low": 0, "medium": 1, "high": 2}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// scoreJob weighs material fit 40%, tolerance fit 30%, pay 20%, and
// deadline urgency 10%.
func scoreJob(job Job, p Profile, now time.Time) (float64, []string) {
	score := 0.0
	var reasons []string

	for _, m := range p.Materials {
		if m == job.Material {
			score += 0.4
			reasons = append(reasons, "Material match")
			break
		}
	}

	jobTier, okJob := tierOrder[job.ToleranceTier]
	mfgTier, okMfg := tierOrder[p.ToleranceTier]
	if okJob && okMfg {
		switch {
		case jobTier == mfgTier:
			score += 0.3
			reasons = append(reasons, "Tolerance match")
		case abs(jobTier-mfgTier) == 1:
			score += 0.15
			reasons = append(reasons, "Tolerance compatible")
		}
	}

	switch {
	case job.PayAmount > 500:
		score += 0.2
		reasons = append(reasons, "High pay")
	case job.PayAmount > 200:
		score += 0.1
		reasons = append(reasons, "Good pay")
	}

	if !job.Deadline.IsZero() {
		daysUntil := int(job.Deadline.Sub(now).Hours() / 24)
		if daysUntil > 0 && daysUntil <= 7 {
			score += 0.1
			reasons = append(reasons, "Urgent deadline")
		}
	}

	return score, reasons
}

// Projects scores the open jobs against a manufacturer profile and returns
// the best matches, at most limit entries (DefaultLimit when limit <= 0).
// Ties keep input order.
func Projects(jobs []Job, p Profile, now time.Time, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	recs := make([]Recommendation, 0, len(jobs))
	for _, job := range jobs {
		score, reasons := scoreJob(job, p, now)
		recs = append(recs, Recommendation{
			JobID:   job.JobID,
			Title:   job.Title,
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
