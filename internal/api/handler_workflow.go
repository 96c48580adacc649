package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArjunParadkar/M.A.M.A/internal/schedule"
)

type workflowWindow struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type workflowTask struct {
	JobID               string    `json:"job_id" binding:"required"`
	Priority            int       `json:"priority"`
	EstimatedHours      float64   `json:"estimated_hours"`
	Deadline            time.Time `json:"deadline" binding:"required"`
	RequiredDeviceTypes []string  `json:"required_device_types"`
	PayAmount           float64   `json:"pay_amount"`
	MaterialsNeeded     []string  `json:"materials_needed"`
	ToleranceTier       string    `json:"tolerance_tier"`
}

type workflowDevice struct {
	DeviceID         string             `json:"device_id" binding:"required"`
	DeviceType       string             `json:"device_type"`
	AvailableHours   map[string]float64 `json:"available_hours_per_day"`
	CurrentTasks     []string           `json:"current_tasks"`
	Maintenance      []workflowWindow   `json:"maintenance_scheduled"`
	EfficiencyFactor float64            `json:"efficiency_factor"`
}

type workflowRequest struct {
	Tasks               []workflowTask   `json:"tasks" binding:"required"`
	Devices             []workflowDevice `json:"devices" binding:"required"`
	WeekStart           time.Time        `json:"week_start" binding:"required"`
	WeekEnd             time.Time        `json:"week_end" binding:"required"`
	CapacityHoursPerDay float64          `json:"manufacturer_capacity_hours_per_day"`
}

type scheduledTask struct {
	JobID               string    `json:"job_id"`
	DeviceID            string    `json:"device_id"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
	Priority            int       `json:"priority"`
	PayAmount           float64   `json:"pay_amount"`
}

type workflowResponse struct {
	ScheduledTasks     []scheduledTask    `json:"scheduled_tasks"`
	UnscheduledTasks   []string           `json:"unscheduled_tasks"`
	TotalProfit        float64            `json:"total_profit"`
	DeviceUtilization  map[string]float64 `json:"device_utilization"`
	ScheduleEfficiency float64            `json:"schedule_efficiency"`
	Conflicts          []string           `json:"conflicts"`
	ModelVersion       string             `json:"model_version"`
}

// PostWorkflow runs the weekly greedy scheduler over the posted tasks and
// devices and returns the full assignment report.
func (h *Handler) PostWorkflow(c *gin.Context) {
	var req workflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	capacity := req.CapacityHoursPerDay
	if capacity <= 0 {
		capacity = h.cfg.Scheduler.CapacityHoursPerDay
	}

	engineReq := schedule.Request{
		Tasks:               make([]schedule.Task, len(req.Tasks)),
		Devices:             make([]schedule.Device, len(req.Devices)),
		WeekStart:           req.WeekStart,
		WeekEnd:             req.WeekEnd,
		CapacityHoursPerDay: capacity,
	}
	for i, t := range req.Tasks {
		engineReq.Tasks[i] = schedule.Task{
			JobID:           t.JobID,
			Priority:        t.Priority,
			EstimatedHours:  t.EstimatedHours,
			Deadline:        t.Deadline,
			RequiredTypes:   t.RequiredDeviceTypes,
			PayAmount:       t.PayAmount,
			MaterialsNeeded: t.MaterialsNeeded,
			ToleranceTier:   t.ToleranceTier,
		}
	}
	for i, d := range req.Devices {
		eff := d.EfficiencyFactor
		if eff == 0 {
			eff = 1.0
		}
		windows := make([]schedule.MaintenanceWindow, len(d.Maintenance))
		for j, w := range d.Maintenance {
			windows[j] = schedule.MaintenanceWindow{Start: w.Start, End: w.End}
		}
		engineReq.Devices[i] = schedule.Device{
			DeviceID:         d.DeviceID,
			DeviceType:       d.DeviceType,
			AvailableHours:   d.AvailableHours,
			CurrentTasks:     d.CurrentTasks,
			Maintenance:      windows,
			EfficiencyFactor: eff,
		}
	}

	result, err := h.scheduler.Schedule(engineReq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := workflowResponse{
		ScheduledTasks:     make([]scheduledTask, len(result.Scheduled)),
		UnscheduledTasks:   result.Unscheduled,
		TotalProfit:        result.TotalProfit,
		DeviceUtilization:  result.DeviceUtilization,
		ScheduleEfficiency: result.Efficiency,
		Conflicts:          result.Conflicts,
		ModelVersion:       result.ModelVersion,
	}
	for i, a := range result.Scheduled {
		resp.ScheduledTasks[i] = scheduledTask{
			JobID:               a.JobID,
			DeviceID:            a.DeviceID,
			StartTime:           a.StartTime,
			EndTime:             a.EndTime,
			EstimatedCompletion: a.EndTime,
			Priority:            a.Priority,
			PayAmount:           a.PayAmount,
		}
	}
	if resp.UnscheduledTasks == nil {
		resp.UnscheduledTasks = []string{}
	}
	if resp.Conflicts == nil {
		resp.Conflicts = []string{}
	}

	c.JSON(http.StatusOK, resp)
}
