package schedule

import (
	"fmt"
	"sort"
	"time"
)

const (
	// ModelVersion identifies the scheduling algorithm revision carried in
	// every Result.
	ModelVersion = "v1.0"

	defaultDailyHours  = 8.0
	defaultWorkdayHour = 8
)

const dateLayout = "2006-01-02"

// Options configures a Scheduler. The zero value selects the default
// behavior: substring type matching, point-in-time maintenance checks,
// 8.0 default daily hours, workdays starting at 08:00, and no capacity
// tracking.
type Options struct {
	Match         Matcher
	InMaintenance ConflictFunc

	// DefaultDailyHours is assumed for any calendar date missing from a
	// device's posted availability map.
	DefaultDailyHours float64

	// WorkdayStartHour is the hour the cursor resets to when the slot
	// search advances to the next calendar day.
	WorkdayStartHour int

	// TrackCapacity enables a request-scoped ledger of remaining hours per
	// device and day, decremented as assignments commit. By default the
	// slot search always consults the nominal daily figure, so two tasks
	// can land on the same device hours; enable this only when hard
	// resource exhaustion is wanted.
	TrackCapacity bool
}

// Scheduler places tasks onto devices for a fixed planning horizon. A
// Scheduler holds no per-run state and is safe for concurrent use.
type Scheduler struct {
	opts Options
}

// New creates a Scheduler, filling unset options with the defaults above.
func New(opts Options) *Scheduler {
	if opts.Match == nil {
		opts.Match = MatchSubstring
	}
	if opts.InMaintenance == nil {
		opts.InMaintenance = ConflictAtStart
	}
	if opts.DefaultDailyHours <= 0 {
		opts.DefaultDailyHours = defaultDailyHours
	}
	if opts.WorkdayStartHour <= 0 {
		opts.WorkdayStartHour = defaultWorkdayHour
	}
	return &Scheduler{opts: opts}
}

// validate rejects malformed input before any assignment is attempted.
// Infeasibility is not an input error; only structurally broken tasks or
// devices are.
func validate(req Request) error {
	for _, t := range req.Tasks {
		if t.EstimatedHours <= 0 {
			return fmt.Errorf("task %s: estimated hours must be positive, got %v", t.JobID, t.EstimatedHours)
		}
	}
	for _, d := range req.Devices {
		if d.EfficiencyFactor <= 0 {
			return fmt.Errorf("device %s: efficiency factor must be positive, got %v", d.DeviceID, d.EfficiencyFactor)
		}
	}
	return nil
}

// capacityLedger tracks remaining hours per device index and date. It is
// only populated when Options.TrackCapacity is set.
type capacityLedger map[int]map[string]float64

func (l capacityLedger) remaining(device int, day string, nominal float64) float64 {
	days, ok := l[device]
	if !ok {
		return nominal
	}
	if rem, ok := days[day]; ok {
		return rem
	}
	return nominal
}

func (l capacityLedger) consume(device int, day string, nominal, hours float64) {
	days, ok := l[device]
	if !ok {
		days = make(map[string]float64)
		l[device] = days
	}
	rem, ok := days[day]
	if !ok {
		rem = nominal
	}
	days[day] = rem - hours
}

// Schedule runs one greedy assignment pass over the request and returns a
// complete result. Tasks that cannot be placed degrade to the unscheduled
// list; the only error condition is malformed input.
func (s *Scheduler) Schedule(req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	// Rank tasks by priority score, descending. The sort is stable so ties
	// keep the caller-supplied order.
	ranked := make([]Task, len(req.Tasks))
	copy(ranked, req.Tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return PriorityScore(ranked[i], req.WeekStart) > PriorityScore(ranked[j], req.WeekStart)
	})

	// Booking lists are request-scoped and index-addressed so concurrent
	// runs never share state. They feed utilization accounting only; the
	// slot search does not consult them unless TrackCapacity is on.
	bookings := make([][]Assignment, len(req.Devices))
	var ledger capacityLedger
	if s.opts.TrackCapacity {
		ledger = make(capacityLedger)
	}

	scheduled := make([]Assignment, 0, len(ranked))
	unscheduled := make([]string, 0)

	for _, task := range ranked {
		bestDevice := -1
		var bestStart, bestEnd time.Time

		for i, device := range req.Devices {
			if !s.opts.Match(device.DeviceType, task.RequiredTypes) {
				continue
			}
			start, end, ok := s.findSlot(task, device, i, ledger, req.WeekStart, req.WeekEnd)
			if !ok {
				continue
			}
			// Earliest start wins; ties keep the first device in input order.
			if bestDevice == -1 || start.Before(bestStart) {
				bestDevice, bestStart, bestEnd = i, start, end
			}
		}

		if bestDevice == -1 {
			unscheduled = append(unscheduled, task.JobID)
			continue
		}

		a := Assignment{
			JobID:     task.JobID,
			DeviceID:  req.Devices[bestDevice].DeviceID,
			StartTime: bestStart,
			EndTime:   bestEnd,
			Priority:  task.Priority,
			PayAmount: task.PayAmount,
		}
		scheduled = append(scheduled, a)
		bookings[bestDevice] = append(bookings[bestDevice], a)

		if s.opts.TrackCapacity {
			day := bestStart.Format(dateLayout)
			nominal := s.dailyHours(req.Devices[bestDevice], day)
			ledger.consume(bestDevice, day, nominal, bestEnd.Sub(bestStart).Hours())
		}
	}

	return s.summarize(req, bookings, scheduled, unscheduled), nil
}

// dailyHours returns the hours a device posts for a calendar date, falling
// back to the configured default for missing dates.
func (s *Scheduler) dailyHours(d Device, day string) float64 {
	if h, ok := d.AvailableHours[day]; ok {
		return h
	}
	return s.opts.DefaultDailyHours
}

// findSlot walks the horizon day by day and returns the earliest feasible
// start/end pair for the task on the device, honoring posted daily hours,
// maintenance windows, and the task deadline.
func (s *Scheduler) findSlot(task Task, device Device, deviceIdx int, ledger capacityLedger, horizonStart, horizonEnd time.Time) (time.Time, time.Time, bool) {
	cursor := horizonStart

	// The horizon is finite and small; the explicit iteration bound is a
	// safety net against a cursor that fails to advance.
	maxDays := int(horizonEnd.Sub(horizonStart).Hours()/24) + 2

	for i := 0; cursor.Before(horizonEnd) && i <= maxDays; i++ {
		day := cursor.Format(dateLayout)
		available := s.dailyHours(device, day)
		if ledger != nil {
			available = ledger.remaining(deviceIdx, day, available)
		}

		end := cursor.Add(time.Duration(float64(time.Hour) * task.EstimatedHours / device.EfficiencyFactor))

		if !s.opts.InMaintenance(device.Maintenance, cursor, end) && available >= task.EstimatedHours {
			if !end.After(task.Deadline) {
				return cursor, end, true
			}
		}

		next := cursor.AddDate(0, 0, 1)
		cursor = time.Date(next.Year(), next.Month(), next.Day(), s.opts.WorkdayStartHour, 0, 0, 0, next.Location())
	}

	return time.Time{}, time.Time{}, false
}
