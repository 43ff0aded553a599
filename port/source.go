package port

import (
	"context"
	"time"

	"github.com/mxtim/freetime/domain"
)

// Query narrows a timesheet lookup. Zero-valued fields do not filter.
// Begin and End select by overlap rather than containment, so an entry
// straddling a bound is still returned; an entry with no end is treated
// as still running.
type Query struct {
	Begin time.Time
	End   time.Time

	User     int
	Project  int
	Activity int
	Tags     []string
	Billable *bool
}

// TimesheetSource hands out tracked entries. Implementations return
// copies the caller may mutate freely, sorted by start time.
type TimesheetSource interface {
	Timesheets(ctx context.Context, q Query) ([]domain.Entry, error)
}
