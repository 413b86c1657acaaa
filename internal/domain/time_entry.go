package domain

import "time"

// TimeEntry is a single line of work to be pushed to a backend.
type TimeEntry struct {
	Alias       string
	Duration    float64 // hours
	Description string
}

// Timesheet is an entry already stored in Zebra.
type Timesheet struct {
	ID          int64
	Date        time.Time
	Time        float64 // hours
	Description string
	ProjectID   int64
	ActivityID  int64
}

// TotalHours sums the duration of the given timesheets.
func TotalHours(timesheets []Timesheet) float64 {
	var total float64
	for _, t := range timesheets {
		total += t.Time
	}
	return total
}
