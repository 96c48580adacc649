package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/model"
	"github.com/ArjunParadkar/M.A.M.A/internal/rating"
)

type postRatingRequest struct {
	JobID   string  `json:"job_id"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

// PostRating records a review for a manufacturer and refreshes the
// denormalized rating aggregates on their profile.
func (h *Handler) PostRating(c *gin.Context) {
	manufacturerID := c.Param("id")

	var req postRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	record := model.Rating{
		ManufacturerID: manufacturerID,
		JobID:          req.JobID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		RatedAt:        time.Now(),
	}
	if err := h.store.CreateRating(ctx, &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	all, err := h.store.ListRatings(ctx, manufacturerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	values := make([]float64, len(all))
	for i, r := range all {
		values[i] = r.Rating
	}

	summary := rating.Aggregate(values)
	if err := h.store.UpdateRatingAggregates(ctx, manufacturerID, summary.BayesianRating, summary.TotalRatings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// GetRatings returns a manufacturer's rating summary.
func (h *Handler) GetRatings(c *gin.Context) {
	all, err := h.store.ListRatings(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	values := make([]float64, len(all))
	for i, r := range all {
		values[i] = r.Rating
	}
	c.JSON(http.StatusOK, rating.Aggregate(values))
}
