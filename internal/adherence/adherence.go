// Package adherence implements the adherence log engine: dose-taken events,
// trailing-window log retrieval, and the adherence percentage math.
//
// Duplicate same-day logs are allowed on purpose: nothing constrains one row
// per medication per day, and the percentage math does not clamp at 100, so
// duplicates push the ratio past 100. This mirrors the permissive behavior the
// product shipped with; enforcing uniqueness would happen in the store schema
// and in Percentage, not in callers.
package adherence

import "math"

// DefaultWindowDays is the trailing window used when a request names none.
const DefaultWindowDays = 7

// StatsWindowDays is the default window for cross-medication statistics.
const StatsWindowDays = 30

// Percentage returns round(100 * logCount / windowDays), unclamped. A window
// of zero or fewer days yields 0.
func Percentage(logCount, windowDays int) int {
	if windowDays <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(logCount) / float64(windowDays)))
}

// AggregatePercentage returns the adherence ratio across several medications:
// round(100 * totalLogs / (numMedications * windowDays)), unclamped. Zero
// medications or a zero window yields 0.
func AggregatePercentage(totalLogs, numMedications, windowDays int) int {
	expected := numMedications * windowDays
	if expected <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(totalLogs) / float64(expected)))
}
