package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/pricing"
)

type payRequest struct {
	Material            string  `json:"material"`
	MaterialCostPerUnit float64 `json:"material_cost_per_unit"`
	Quantity            int     `json:"quantity" binding:"required"`
	ToleranceTier       string  `json:"tolerance_tier"`
	ComplexityScore     float64 `json:"complexity_score"`
	EstimatedHours      float64 `json:"estimated_hours" binding:"required"`
	SetupTimeHours      float64 `json:"setup_time_hours"`
	DeadlineDays        int     `json:"deadline_days"`
}

// PostPay returns a fair pay recommendation for a job posting.
func (h *Handler) PostPay(c *gin.Context) {
	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	costPerUnit := req.MaterialCostPerUnit
	if costPerUnit <= 0 {
		costPerUnit = pricing.MaterialCost(req.Material)
	}

	out := pricing.Estimate(pricing.Input{
		Material:            req.Material,
		MaterialCostPerUnit: costPerUnit,
		Quantity:            req.Quantity,
		ToleranceTier:       req.ToleranceTier,
		ComplexityScore:     req.ComplexityScore,
		EstimatedHours:      req.EstimatedHours,
		SetupTimeHours:      req.SetupTimeHours,
		DeadlineDays:        req.DeadlineDays,
		StandardDays:        h.cfg.Pricing.StandardDeliveryDays,
		MarketRatePerHour:   h.cfg.Pricing.MarketRatePerHour,
	})

	c.JSON(http.StatusOK, out)
}
