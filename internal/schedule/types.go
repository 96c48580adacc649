package schedule

import "time"

// Task is a single unit of manufacturing work to place on exactly one device.
type Task struct {
	JobID           string
	Priority        int // 1-10, higher = more urgent
	EstimatedHours  float64
	Deadline        time.Time
	RequiredTypes   []string // acceptable device type tags, e.g. ["cnc_mill"]
	PayAmount       float64
	MaterialsNeeded []string // informational, not constraint-checked
	ToleranceTier   string   // informational, not constraint-checked
}

// MaintenanceWindow is a blackout interval during which a device is unusable.
type MaintenanceWindow struct {
	Start time.Time
	End   time.Time
}

// Device is a schedulable production resource.
type Device struct {
	DeviceID         string
	DeviceType       string
	AvailableHours   map[string]float64 // "2006-01-02" date -> hours posted that day
	CurrentTasks     []string           // job ids already bound, informational
	Maintenance      []MaintenanceWindow
	EfficiencyFactor float64 // (0,1], elapsed = effort / efficiency
}

// Request is the planning horizon container for one scheduling run.
type Request struct {
	Tasks     []Task
	Devices   []Device
	WeekStart time.Time
	WeekEnd   time.Time

	// CapacityHoursPerDay is accepted from callers and carried through but
	// not enforced by the engine. Reserved for a future global capacity
	// constraint.
	CapacityHoursPerDay float64
}

// Assignment binds one task to one device with a concrete time slot.
type Assignment struct {
	JobID     string
	DeviceID  string
	StartTime time.Time
	EndTime   time.Time
	Priority  int
	PayAmount float64
}

// Result is the complete output of a scheduling run.
type Result struct {
	Scheduled         []Assignment
	Unscheduled       []string // job ids that could not be placed
	TotalProfit       float64
	DeviceUtilization map[string]float64 // device id -> percentage, capped at 100
	Efficiency        float64            // 0-1 overall schedule quality
	Conflicts         []string           // human-readable advisories
	ModelVersion      string
}
