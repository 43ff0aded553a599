package domain

import (
	"time"

	"github.com/cockroachdb/errors"
)

// DayKey identifies one calendar day in the server-local zone,
// formatted as YYYYMMDD.
type DayKey string

const dayKeyLayout = "20060102"

// DayKeyFor returns the key of t's calendar day in loc.
func DayKeyFor(t time.Time, loc *time.Location) DayKey {
	return DayKey(t.In(loc).Format(dayKeyLayout))
}

// Date returns the midnight instant of the keyed day in loc.
func (k DayKey) Date(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day key %q", k)
	}
	return t, nil
}

// StartOfDay returns t at 00:00 in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns t at 23:59 in its own location, the tracker's last
// usable minute of a day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}
