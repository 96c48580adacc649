package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/earnings"
)

// GetEarnings reports a manufacturer's earnings over a period, defaulting
// to the last 30 days.
func (h *Handler) GetEarnings(c *gin.Context) {
	manufacturerID := c.Param("id")

	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if v := c.Query("period_start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "period_start must be RFC 3339"})
			return
		}
		start = t
	}
	if v := c.Query("period_end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "period_end must be RFC 3339"})
			return
		}
		end = t
	}

	jobs, err := h.store.ListCompletedJobs(c.Request.Context(), manufacturerID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	completed := make([]earnings.CompletedJob, len(jobs))
	for i, j := range jobs {
		completed[i] = earnings.CompletedJob{
			JobID:        j.ID,
			PayAmount:    j.PayAmount,
			MaterialCost: j.MaterialCost,
		}
	}

	c.JSON(http.StatusOK, earnings.Calculate(completed, start, end))
}
