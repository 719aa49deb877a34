package reports

// DailyTotal - aggregate of one calendar day
type DailyTotal struct {
	Day         string  `json:"starting_date"`
	Calls       int64   `json:"calls"`
	Duration    int64   `json:"duration"`
	AvgDuration float64 `json:"avg_duration"`
}

// Summary - totals over all days of a report
type Summary struct {
	MaxDuration      int64   `json:"max_duration"`
	TotalDuration    int64   `json:"total_duration"`
	TotalCalls       int64   `json:"total_calls"`
	TotalAvgDuration float64 `json:"total_avg_duration"`
}

// Summarize - folds the per day rows into the report totals.
// TotalAvgDuration is the mean of the daily averages, not weighted by the
// number of calls of each day.
func Summarize(days []DailyTotal) Summary {

	var s Summary

	if len(days) == 0 {
		return s
	}

	var avgSum float64

	for i, d := range days {

		if i == 0 || d.Duration > s.MaxDuration {
			s.MaxDuration = d.Duration
		}

		s.TotalDuration += d.Duration
		s.TotalCalls += d.Calls
		avgSum += d.AvgDuration
	}

	s.TotalAvgDuration = avgSum / float64(len(days))

	return s
}

// Ascending - copy of days ordered oldest first, days come newest first
// from the repositories
func Ascending(days []DailyTotal) []DailyTotal {

	out := make([]DailyTotal, len(days))

	for i, d := range days {
		out[len(days)-1-i] = d
	}

	return out
}
