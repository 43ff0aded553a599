package normalize

import (
	"strings"
	"time"
)

// offsetLayouts cover the ISO forms the upstream emits: T or space
// separated, with or without seconds. Fractional seconds and a literal
// Z are handled by time.Parse itself.
var offsetLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
}

// resolveOffset builds the offset-respecting candidate: the input
// converted into the server zone and re-dated to the day the parser
// chose, so the zone conversion can never silently move the calendar
// date. ok is false when the input carries no usable offset, which
// defers to the wall-clock candidate.
func (n *Normalizer) resolveOffset(in Input, d parsedDate) (time.Time, bool) {
	switch in.kind {
	case kindInstant:
		return redate(in.t.In(n.loc), d), true
	case kindText:
		s := strings.TrimSpace(in.text)
		if !trailingOffset.MatchString(s) {
			return time.Time{}, false
		}
		for _, layout := range offsetLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return redate(t.In(n.loc), d), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// redate keeps the clock fields of t but moves it onto the calendar
// day d.
func redate(t time.Time, d parsedDate) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
