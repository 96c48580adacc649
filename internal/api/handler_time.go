package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/timecalc"
)

type timeRequest struct {
	VolumeCm3       float64 `json:"volume_cm3"`
	ComplexityScore float64 `json:"complexity_score"`
	Material        string  `json:"material"`
	Quantity        int     `json:"quantity" binding:"required"`
	DeviceType      string  `json:"device_type" binding:"required"`
	ToleranceTier   string  `json:"tolerance_tier"`
}

// PostTime estimates manufacturing time for a part on a given device type.
func (h *Handler) PostTime(c *gin.Context) {
	var req timeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := timecalc.Estimate(timecalc.Input{
		VolumeCm3:       req.VolumeCm3,
		ComplexityScore: req.ComplexityScore,
		Material:        req.Material,
		Quantity:        req.Quantity,
		DeviceType:      req.DeviceType,
		ToleranceTier:   req.ToleranceTier,
	})

	c.JSON(http.StatusOK, out)
}
