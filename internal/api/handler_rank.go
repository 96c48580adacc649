package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/ranking"
)

type rankCandidate struct {
	ManufacturerID      string   `json:"manufacturer_id" binding:"required"`
	EquipmentMatchScore float64  `json:"equipment_match_score"`
	MaterialsAvailable  []string `json:"materials_available"`
	ToleranceCapability string   `json:"tolerance_capability"`
	AverageRating       float64  `json:"average_rating"`
	TotalJobsCompleted  int      `json:"total_jobs_completed"`
	TotalRatings        int      `json:"total_ratings"`
	CapacityScore       float64  `json:"capacity_score"`
	QualityScore        float64  `json:"quality_score"`
}

type rankRequest struct {
	Material      string          `json:"material"`
	ToleranceTier string          `json:"tolerance_tier"`
	Quantity      int             `json:"quantity"`
	DeadlineDays  int             `json:"deadline_days"`
	Manufacturers []rankCandidate `json:"manufacturers" binding:"required"`
}

// PostRank scores the candidate manufacturers against the job specs and
// returns them best first.
func (h *Handler) PostRank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specs := ranking.JobSpecs{
		Material:      req.Material,
		ToleranceTier: req.ToleranceTier,
		Quantity:      req.Quantity,
		DeadlineDays:  req.DeadlineDays,
	}
	candidates := make([]ranking.Manufacturer, len(req.Manufacturers))
	for i, m := range req.Manufacturers {
		candidates[i] = ranking.Manufacturer{
			ManufacturerID:      m.ManufacturerID,
			EquipmentMatchScore: m.EquipmentMatchScore,
			MaterialsAvailable:  m.MaterialsAvailable,
			ToleranceCapability: m.ToleranceCapability,
			AverageRating:       m.AverageRating,
			TotalJobsCompleted:  m.TotalJobsCompleted,
			TotalRatings:        m.TotalRatings,
			CapacityScore:       m.CapacityScore,
			QualityScore:        m.QualityScore,
		}
	}

	ranked := ranking.Rank(specs, candidates)
	if ranked == nil {
		ranked = []ranking.Ranked{}
	}

	c.JSON(http.StatusOK, gin.H{"ranked_manufacturers": ranked})
}
