package ranking

import (
	"math"
	"sort"
)

// maxResults bounds how many ranked manufacturers are returned.
const maxResults = 10

// JobSpecs captures the requirements of the job manufacturers are ranked
// against.
type JobSpecs struct {
	Material      string
	ToleranceTier string // low, medium, high
	Quantity      int
	DeadlineDays  int
}

// Manufacturer is the candidate profile as read from the database.
type Manufacturer struct {
	ManufacturerID      string
	EquipmentMatchScore float64 // 0-1
	MaterialsAvailable  []string
	ToleranceCapability string
	AverageRating       float64 // 0-5
	TotalJobsCompleted  int
	TotalRatings        int
	CapacityScore       float64 // 0-1
	QualityScore        float64 // 0-1
}

// Ranked is one scored manufacturer, best first in the returned slice.
type Ranked struct {
	ManufacturerID      string             `json:"manufacturer_id"`
	RankScore           float64            `json:"rank_score"`
	Explanations        map[string]float64 `json:"explanations"`
	EstimatedCompletion float64            `json:"estimated_completion_days"`
	CapacityScore       float64            `json:"capacity_score"`
	QualityScore        float64            `json:"quality_score"`
}

var tierOrder = map[string]int{"low": 0, "medium": 1, "high": 2}

// toleranceBonus rewards an exact tier match and gives half credit for an
// adjacent tier.
func toleranceBonus(capability, required string) float64 {
	capTier, okCap := tierOrder[capability]
	reqTier, okReq := tierOrder[required]
	if !okCap {
		capTier = 1
	}
	if !okReq {
		reqTier = 1
	}
	switch {
	case capTier == reqTier:
		return 0.10
	case abs(capTier-reqTier) == 1:
		return 0.05
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func hasMaterial(m Manufacturer, material string) bool {
	if material == "" {
		return true
	}
	for _, have := range m.MaterialsAvailable {
		if have == material {
			return true
		}
	}
	return false
}

// score computes the weighted fit of one manufacturer for the job:
// equipment 30%, reputation 25%, capacity 20%, quality 15%, tolerance
// alignment 10%, clamped to [0,1].
func score(m Manufacturer, specs JobSpecs) float64 {
	s := m.EquipmentMatchScore*0.30 +
		(m.AverageRating/5.0)*0.25 +
		m.CapacityScore*0.20 +
		m.QualityScore*0.15 +
		toleranceBonus(m.ToleranceCapability, specs.ToleranceTier)
	return math.Max(0, math.Min(1, s))
}

// explanations returns the top three weighted factors behind a score.
func explanations(m Manufacturer) map[string]float64 {
	factors := map[string]float64{
		"equipment_match": m.EquipmentMatchScore * 0.30,
		"reputation":      (m.AverageRating / 5.0) * 0.25,
		"capacity":        m.CapacityScore * 0.20,
		"quality":         m.QualityScore * 0.15,
	}

	type kv struct {
		key string
		val float64
	}
	sorted := make([]kv, 0, len(factors))
	for k, v := range factors {
		sorted = append(sorted, kv{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].val != sorted[j].val {
			return sorted[i].val > sorted[j].val
		}
		return sorted[i].key < sorted[j].key
	})

	top := make(map[string]float64, 3)
	for i := 0; i < len(sorted) && i < 3; i++ {
		top[sorted[i].key] = sorted[i].val
	}
	return top
}

// estimatedDays is a coarse completion estimate: busy, careful shops take a
// little longer.
func estimatedDays(m Manufacturer) float64 {
	days := 7.0
	if m.CapacityScore > 0.8 {
		days += 2
	}
	if m.QualityScore > 0.85 {
		days += 1
	}
	return days
}

// Rank scores every manufacturer that stocks the job's material and returns
// up to ten results, best first. Ties keep input order.
func Rank(specs JobSpecs, manufacturers []Manufacturer) []Ranked {
	ranked := make([]Ranked, 0, len(manufacturers))
	for _, m := range manufacturers {
		if !hasMaterial(m, specs.Material) {
			continue
		}
		ranked = append(ranked, Ranked{
			ManufacturerID:      m.ManufacturerID,
			RankScore:           score(m, specs),
			Explanations:        explanations(m),
			EstimatedCompletion: estimatedDays(m),
			CapacityScore:       m.CapacityScore,
			QualityScore:        m.QualityScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankScore > ranked[j].RankScore
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
