package domain

import (
	"time"

	"github.com/cockroachdb/errors"
)

// BucketByDay groups entries into calendar-day buckets keyed by DayKey
// in loc. Every day of [begin, end] gets a bucket, empty or not. An
// entry crossing exactly one midnight is split into two derived
// entries, [start, 23:59] on the start day and [00:00, end] on the end
// day, both keeping the source entry's descriptive fields. Entries
// landing on days outside the range still get their own bucket.
func BucketByDay(entries []Entry, begin, end time.Time, loc *time.Location) (map[DayKey][]Entry, error) {
	rangeStart := StartOfDay(begin.In(loc))
	rangeEnd := EndOfDay(end.In(loc))

	// 1. One bucket per day of the range, inclusive on both ends.
	buckets := make(map[DayKey][]Entry)
	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		buckets[DayKeyFor(day, loc)] = []Entry{}
	}

	// 2. Place each entry, splitting the ones that cross a midnight.
	for _, e := range entries {
		if e.End == nil {
			return nil, errors.Wrapf(ErrMissingEnd, "entry %d starting %s", e.ID, e.Start.Format(time.RFC3339))
		}
		start := e.Start.In(loc)
		stop := e.End.In(loc)
		startDay := StartOfDay(start)
		endDay := StartOfDay(stop)

		switch {
		case endDay.Equal(startDay):
			key := DayKeyFor(start, loc)
			buckets[key] = append(buckets[key], e.derived(start, stop))
		case endDay.Equal(startDay.AddDate(0, 0, 1)):
			startKey := DayKeyFor(start, loc)
			endKey := DayKeyFor(stop, loc)
			buckets[startKey] = append(buckets[startKey], e.derived(start, EndOfDay(start)))
			buckets[endKey] = append(buckets[endKey], e.derived(StartOfDay(stop), stop))
		default:
			return nil, errors.Wrapf(ErrSpansTooManyDays, "entry %d covers %s to %s", e.ID, start.Format(time.RFC3339), stop.Format(time.RFC3339))
		}
	}

	return buckets, nil
}

// derived returns a copy of e covering [start, end] with the
// descriptive fields intact.
func (e Entry) derived(start, end time.Time) Entry {
	e.Start = start
	e.End = &end
	return e
}
