package domain

import "time"

// TimeInterval is a busy period [Start, End]. End is nil for an entry
// that is still running.
type TimeInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// Interval builds a closed interval from start to end.
func Interval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start, End: &end}
}

// Duration returns the interval length, zero while it is still open.
func (iv TimeInterval) Duration() time.Duration {
	if iv.End == nil {
		return 0
	}
	return iv.End.Sub(iv.Start)
}

// Entry is a single tracked timesheet record as delivered by the
// upstream tracker. The busy period lives in the embedded TimeInterval;
// the rest describes what was tracked.
type Entry struct {
	TimeInterval

	ID          int      `json:"id,omitempty"`
	UID         string   `json:"uid,omitempty"`
	Activity    int      `json:"activity,omitempty"`
	Project     int      `json:"project,omitempty"`
	User        int      `json:"user,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Billable    bool     `json:"billable,omitempty"`
	Exported    bool     `json:"exported,omitempty"`
}

// FreeInterval is an unoccupied stretch of a day, Start strictly before
// End.
type FreeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the length of the free stretch.
func (f FreeInterval) Duration() time.Duration {
	return f.End.Sub(f.Start)
}
