package domain

import (
	"sort"
	"time"
)

// span is a closed busy period after merging, always with both ends.
type span struct {
	start time.Time
	end   time.Time
}

// FreeTime computes the unoccupied intervals of day within
// [00:00, 23:59] in loc, the complement of the day's busy entries.
// Overlapping or touching busy periods are coalesced first; an entry
// without an end counts as busy through the end of the day. The result
// is ordered, disjoint, and never contains a zero-width interval.
func FreeTime(day time.Time, entries []Entry, loc *time.Location) []FreeInterval {
	dayStart := StartOfDay(day.In(loc))
	dayEnd := EndOfDay(day.In(loc))

	busy := mergeBusy(entries, dayEnd, loc)

	// 1. Nothing tracked: the whole day is free.
	if len(busy) == 0 {
		return []FreeInterval{{Start: dayStart, End: dayEnd}}
	}

	var free []FreeInterval
	emit := func(start, end time.Time) {
		if end.After(start) {
			free = append(free, FreeInterval{Start: start, End: end})
		}
	}

	// 2. Gap before the first busy period. When the first period
	// already covers midnight there is none, and the gap after it is
	// produced by the pair walk below.
	if busy[0].start.After(dayStart) {
		emit(dayStart, busy[0].start)
	}

	// 3. Gaps between adjacent busy periods.
	for i := 0; i < len(busy)-1; i++ {
		emit(busy[i].end, busy[i+1].start)
	}

	// 4. Gap after the last busy period.
	emit(busy[len(busy)-1].end, dayEnd)

	return free
}

// mergeBusy converts the entries to closed periods in loc, sorts them
// by start, and coalesces any that overlap or touch. Entries without
// an end run through dayEnd.
func mergeBusy(entries []Entry, dayEnd time.Time, loc *time.Location) []span {
	if len(entries) == 0 {
		return nil
	}
	periods := make([]span, 0, len(entries))
	for _, e := range entries {
		end := dayEnd
		if e.End != nil {
			end = e.End.In(loc)
		}
		periods = append(periods, span{start: e.Start.In(loc), end: end})
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].start.Before(periods[j].start)
	})

	merged := []span{periods[0]}
	for _, p := range periods[1:] {
		last := &merged[len(merged)-1]
		if !p.start.After(last.end) {
			if p.end.After(last.end) {
				last.end = p.end
			}
		} else {
			merged = append(merged, p)
		}
	}
	return merged
}
