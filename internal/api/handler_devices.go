package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/model"
)

type deviceView struct {
	DeviceID         string                    `json:"device_id" binding:"required"`
	DeviceType       string                    `json:"device_type" binding:"required"`
	AvailableHours   map[string]float64        `json:"available_hours_per_day"`
	CurrentTasks     []string                  `json:"current_tasks"`
	Maintenance      []model.MaintenanceWindow `json:"maintenance_scheduled"`
	EfficiencyFactor float64                   `json:"efficiency_factor"`
}

type putDevicesRequest struct {
	ManufacturerID string       `json:"manufacturer_id" binding:"required"`
	Devices        []deviceView `json:"devices" binding:"required"`
}

// PutDevices replaces the posted device roster for a manufacturer.
func (h *Handler) PutDevices(c *gin.Context) {
	var req putDevicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	devices := make([]model.Device, len(req.Devices))
	for i, d := range req.Devices {
		eff := d.EfficiencyFactor
		if eff == 0 {
			eff = 1.0
		}
		devices[i] = model.Device{
			ID:               d.DeviceID,
			DeviceType:       d.DeviceType,
			AvailableHours:   d.AvailableHours,
			CurrentTasks:     d.CurrentTasks,
			Maintenance:      d.Maintenance,
			EfficiencyFactor: eff,
			UpdatedAt:        time.Now(),
		}
	}

	if err := h.store.UpsertDevices(c.Request.Context(), req.ManufacturerID, devices); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDevices lists a manufacturer's devices.
func (h *Handler) GetDevices(c *gin.Context) {
	devices, err := h.store.ListDevices(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]deviceView, len(devices))
	for i, d := range devices {
		views[i] = deviceView{
			DeviceID:         d.ID,
			DeviceType:       d.DeviceType,
			AvailableHours:   d.AvailableHours,
			CurrentTasks:     d.CurrentTasks,
			Maintenance:      d.Maintenance,
			EfficiencyFactor: d.EfficiencyFactor,
		}
	}
	c.JSON(http.StatusOK, gin.H{"devices": views})
}
