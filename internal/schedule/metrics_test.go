package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsUtilizationCappedAt100(t *testing.T) {
	start, end := weekHorizon()
	dev := Device{
		DeviceID:   "dev-tiny",
		DeviceType: "cnc_mill",
		// Only one posted hour in the whole map; a 4h booking would be 400%.
		AvailableHours:   map[string]float64{start.Format(dateLayout): 1.0},
		EfficiencyFactor: 1.0,
	}
	// The day-one posted figure (1.0) is below the effort, so the slot
	// lands on day two where the 8.0 default applies.
	req := Request{
		Tasks: []Task{{
			JobID:          "job-1",
			Priority:       5,
			EstimatedHours: 4,
			Deadline:       end,
			RequiredTypes:  []string{"cnc_mill"},
			PayAmount:      100,
		}},
		Devices:   []Device{dev},
		WeekStart: start,
		WeekEnd:   end,
	}

	res, err := New(Options{}).Schedule(req)
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 1)
	assert.Equal(t, 100.0, res.DeviceUtilization["dev-tiny"])
	assert.GreaterOrEqual(t, res.Efficiency, 0.0)
	assert.LessOrEqual(t, res.Efficiency, 1.0)
}

// hoursAvailable sums the device's entire posted availability map, not just
// the horizon window.
func TestMetricsAvailabilityScopeIsWholeMap(t *testing.T) {
	start, end := weekHorizon()
	dev := millDevice(start)
	// Post hours far outside the horizon; they still dilute utilization.
	dev.AvailableHours[start.AddDate(0, 2, 0).Format(dateLayout)] = 100.0

	req := Request{
		Tasks: []Task{{
			JobID:          "job-1",
			Priority:       5,
			EstimatedHours: 8,
			Deadline:       end,
			RequiredTypes:  []string{"cnc_mill"},
			PayAmount:      100,
		}},
		Devices:   []Device{dev},
		WeekStart: start,
		WeekEnd:   end,
	}

	res, err := New(Options{}).Schedule(req)
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 1)
	// 8 booked / (7*8 + 100) posted.
	assert.InDelta(t, 8.0/156.0*100.0, res.DeviceUtilization["dev-1"], 1e-9)
}

func TestMetricsZeroTasks(t *testing.T) {
	start, end := weekHorizon()
	req := Request{Devices: []Device{millDevice(start)}, WeekStart: start, WeekEnd: end}

	res, err := New(Options{}).Schedule(req)
	require.NoError(t, err)

	// completionRate defaults to 1.0 with zero tasks; utilization is zero.
	assert.InDelta(t, 0.4, res.Efficiency, 1e-9)
	assert.Empty(t, res.Scheduled)
	assert.Empty(t, res.Unscheduled)
	assert.Contains(t, res.Conflicts, "Low device utilization detected")
}

func TestMetricsZeroDevices(t *testing.T) {
	start, end := weekHorizon()
	req := Request{
		Tasks:     []Task{{JobID: "job-1", Priority: 5, EstimatedHours: 1, Deadline: end, RequiredTypes: []string{"cnc"}, PayAmount: 10}},
		WeekStart: start,
		WeekEnd:   end,
	}

	res, err := New(Options{}).Schedule(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"job-1"}, res.Unscheduled)
	assert.Empty(t, res.DeviceUtilization)
	assert.Equal(t, 0.0, res.Efficiency)
	assert.Contains(t, res.Conflicts, "1 tasks could not be scheduled")
}

func TestMetricsTotalProfitOnlyCommittedTasks(t *testing.T) {
	start, end := weekHorizon()
	tasks := []Task{
		{JobID: "job-ok", Priority: 5, EstimatedHours: 2, Deadline: end, RequiredTypes: []string{"cnc_mill"}, PayAmount: 250},
		{JobID: "job-none", Priority: 5, EstimatedHours: 2, Deadline: end, RequiredTypes: []string{"laser"}, PayAmount: 999},
	}
	req := Request{Tasks: tasks, Devices: []Device{millDevice(start)}, WeekStart: start, WeekEnd: end}

	res, err := New(Options{}).Schedule(req)
	require.NoError(t, err)
	assert.Equal(t, 250.0, res.TotalProfit)

	for _, a := range res.Scheduled {
		assert.False(t, a.EndTime.After(end.Add(7*24*time.Hour)), "assignment beyond any sane bound")
	}
}
