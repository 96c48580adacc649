package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/rating"
)

type rateRequest struct {
	Ratings []float64 `json:"ratings"`
}

// PostRate aggregates a list of 1-5 ratings into summary statistics.
func (h *Handler) PostRate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating.Aggregate(req.Ratings))
}
