package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/model"
	"github.com/ArjunParadkar/M.A.M.A/internal/recommend"
)

type postJobRequest struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title" binding:"required"`
	Material            string    `json:"material"`
	ToleranceTier       string    `json:"tolerance_tier"`
	Priority            int       `json:"priority"`
	EstimatedHours      float64   `json:"estimated_hours" binding:"required"`
	Deadline            time.Time `json:"deadline" binding:"required"`
	RequiredDeviceTypes []string  `json:"required_device_types"`
	MaterialsNeeded     []string  `json:"materials_needed"`
	PayAmount           float64   `json:"pay_amount"`
	MaterialCost        float64   `json:"material_cost"`
}

type jobView struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Material            string    `json:"material"`
	ToleranceTier       string    `json:"tolerance_tier"`
	Priority            int       `json:"priority"`
	EstimatedHours      float64   `json:"estimated_hours"`
	Deadline            time.Time `json:"deadline"`
	RequiredDeviceTypes []string  `json:"required_device_types"`
	MaterialsNeeded     []string  `json:"materials_needed"`
	PayAmount           float64   `json:"pay_amount"`
	Status              string    `json:"status"`
}

func toJobView(j model.Job) jobView {
	return jobView{
		ID:                  j.ID,
		Title:               j.Title,
		Material:            j.Material,
		ToleranceTier:       j.ToleranceTier,
		Priority:            j.Priority,
		EstimatedHours:      j.EstimatedHours,
		Deadline:            j.Deadline,
		RequiredDeviceTypes: j.RequiredDeviceTypes,
		MaterialsNeeded:     j.MaterialsNeeded,
		PayAmount:           j.PayAmount,
		Status:              j.Status,
	}
}

// PostJob creates an open job and queues it for announcement to
// manufacturers with compatible devices.
func (h *Handler) PostJob(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := model.Job{
		ID:                  req.ID,
		Title:               req.Title,
		Material:            req.Material,
		ToleranceTier:       req.ToleranceTier,
		Priority:            req.Priority,
		EstimatedHours:      req.EstimatedHours,
		Deadline:            req.Deadline,
		RequiredDeviceTypes: req.RequiredDeviceTypes,
		MaterialsNeeded:     req.MaterialsNeeded,
		PayAmount:           req.PayAmount,
		MaterialCost:        req.MaterialCost,
	}
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", time.Now().UnixNano())
	}

	if err := h.store.CreateJob(c.Request.Context(), &job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.pool != nil {
		h.pool.Dispatch(job.ID)
	}

	c.JSON(http.StatusCreated, toJobView(job))
}

// GetJob returns a single job by id.
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.store.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, toJobView(job))
}

// GetOpenJobs lists jobs still waiting for a manufacturer.
func (h *Handler) GetOpenJobs(c *gin.Context) {
	jobs, err := h.store.ListOpenJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]jobView, len(jobs))
	for i, j := range jobs {
		views[i] = toJobView(j)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": views})
}

// GetRecommendedJobs scores open jobs against a manufacturer's profile and
// returns the best matches first.
func (h *Handler) GetRecommendedJobs(c *gin.Context) {
	manufacturerID := c.Query("manufacturer_id")
	if manufacturerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "manufacturer_id is required"})
		return
	}

	m, err := h.store.GetManufacturer(c.Request.Context(), manufacturerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "manufacturer not found"})
		return
	}

	jobs, err := h.store.ListOpenJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	deviceTypes := make([]string, len(m.Devices))
	for i, d := range m.Devices {
		deviceTypes[i] = d.DeviceType
	}
	profile := recommend.Profile{
		Materials:     m.Materials,
		ToleranceTier: m.ToleranceTier,
		DeviceTypes:   deviceTypes,
	}

	openings := make([]recommend.Job, len(jobs))
	for i, j := range jobs {
		openings[i] = recommend.Job{
			JobID:         j.ID,
			Title:         j.Title,
			Material:      j.Material,
			ToleranceTier: j.ToleranceTier,
			PayAmount:     j.PayAmount,
			Deadline:      j.Deadline,
		}
	}

	recs := recommend.Projects(openings, profile, time.Now(), recommend.DefaultLimit)
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
