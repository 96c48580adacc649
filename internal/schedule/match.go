package schedule

import (
	"strings"
	"time"
)

// Matcher decides whether a device type tag satisfies a task's required
// type set. The engine never inspects tags itself, so the policy can be
// swapped without touching the scheduling core.
type Matcher func(deviceType string, requiredTypes []string) bool

// MatchSubstring reports a match when any required tag appears as a
// substring of the device's type tag. This mirrors the legacy matching
// behavior ("cnc" matches "cnc_mill") and is the default.
func MatchSubstring(deviceType string, requiredTypes []string) bool {
	for _, rt := range requiredTypes {
		if strings.Contains(deviceType, rt) {
			return true
		}
	}
	return false
}

// MatchExact reports a match only when the device type equals one of the
// required tags. Stricter alternative to MatchSubstring.
func MatchExact(deviceType string, requiredTypes []string) bool {
	for _, rt := range requiredTypes {
		if deviceType == rt {
			return true
		}
	}
	return false
}

// ConflictFunc decides whether a candidate slot collides with any of a
// device's maintenance windows.
type ConflictFunc func(windows []MaintenanceWindow, start, end time.Time) bool

// ConflictAtStart tests only the slot's starting cursor against each
// window, not the whole attempted interval. This reproduces the legacy
// point-in-time check; a slot that merely runs into a window mid-way is
// not rejected. Default policy.
func ConflictAtStart(windows []MaintenanceWindow, start, _ time.Time) bool {
	for _, w := range windows {
		if !start.Before(w.Start) && start.Before(w.End) {
			return true
		}
	}
	return false
}

// ConflictOverlap rejects a slot when any part of it overlaps a window.
// Stricter alternative to ConflictAtStart.
func ConflictOverlap(windows []MaintenanceWindow, start, end time.Time) bool {
	for _, w := range windows {
		if start.Before(w.End) && end.After(w.Start) {
			return true
		}
	}
	return false
}
