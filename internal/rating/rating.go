package rating

import (
	"math"
	"sort"
)

// Bayesian prior: an unrated shop starts at the platform-wide mean with the
// weight of five ratings, so a single 5-star review cannot produce a
// perfect score.
const (
	priorMean  = 3.0
	priorCount = 5.0
)

// Summary aggregates a manufacturer's ratings.
type Summary struct {
	AverageRating      float64         `json:"average_rating"`
	BayesianRating     float64         `json:"bayesian_rating"`
	MedianRating       float64         `json:"median_rating"`
	TotalRatings       int             `json:"total_ratings"`
	RatingDistribution map[int]int     `json:"rating_distribution"`
	RatingPercentages  map[int]float64 `json:"rating_percentages"`
	Confidence         float64         `json:"confidence"`
}

func emptyDistribution() map[int]int {
	return map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Bayesian computes the prior-smoothed average of the given ratings. With
// no ratings it returns the prior mean.
func Bayesian(ratings []float64) float64 {
	if len(ratings) == 0 {
		return priorMean
	}
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	return (priorMean*priorCount + sum) / (priorCount + float64(len(ratings)))
}

// Aggregate computes the plain statistics plus the Bayesian average for a
// set of 1-5 ratings. Zero-valued entries are ignored; out-of-range values
// count toward the average but not the star distribution.
func Aggregate(ratings []float64) Summary {
	values := make([]float64, 0, len(ratings))
	for _, r := range ratings {
		if r != 0 {
			values = append(values, r)
		}
	}

	if len(values) == 0 {
		return Summary{
			BayesianRating:     round2(priorMean),
			RatingDistribution: emptyDistribution(),
			RatingPercentages:  map[int]float64{},
		}
	}

	sum := 0.0
	distribution := emptyDistribution()
	for _, r := range values {
		sum += r
		star := int(r)
		if star >= 1 && star <= 5 {
			distribution[star]++
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	percentages := make(map[int]float64, 5)
	for star := 1; star <= 5; star++ {
		percentages[star] = float64(distribution[star]) / float64(len(values)) * 100
	}

	return Summary{
		AverageRating:      round2(sum / float64(len(values))),
		BayesianRating:     round2(Bayesian(values)),
		MedianRating:       median,
		TotalRatings:       len(values),
		RatingDistribution: distribution,
		RatingPercentages:  percentages,
		Confidence:         round2(math.Min(1.0, float64(len(values))/10.0)),
	}
}
