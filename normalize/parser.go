package normalize

import (
	"regexp"
	"strings"
	"time"
)

// parsedDate is a calendar date as written, before zone attachment.
// Out-of-range fields are tolerated and normalized by time.Date when
// the candidate instants are built, which keeps parsing total.
type parsedDate struct {
	year  int
	month time.Month
	day   int
}

var (
	isoDate        = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	trailingOffset = regexp.MustCompile(`(?:Z|[+-]\d{2}:\d{2})$`)
)

// parse extracts the calendar date and written wall-clock time from any
// input. It is total: missing pieces fall back to today in the server
// zone and to midnight.
func (n *Normalizer) parse(in Input) (parsedDate, wallClock) {
	switch in.kind {
	case kindInstant, kindWall:
		return parsedDate{year: in.t.Year(), month: in.t.Month(), day: in.t.Day()},
			wallClock{hour: in.t.Hour(), minute: in.t.Minute(), second: in.t.Second()}
	case kindDate:
		return parsedDate{year: in.year, month: in.month, day: in.day}, wallClock{}
	case kindClock:
		return n.today(), wallClock{hour: in.hour, minute: in.minute, second: in.second}
	default:
		return n.parseText(in.text)
	}
}

func (n *Normalizer) parseText(raw string) (parsedDate, wallClock) {
	s := strings.TrimSpace(raw)
	s = trailingOffset.ReplaceAllString(s, "")

	d := n.today()
	if m := isoDate.FindStringSubmatchIndex(s); m != nil {
		d = parsedDate{
			year:  ruleInt(s[m[2]:m[3]]),
			month: time.Month(ruleInt(s[m[4]:m[5]])),
			day:   ruleInt(s[m[6]:m[7]]),
		}
		// Drop the date digits so the time rules cannot mistake the
		// year for a compact clock.
		s = s[:m[0]] + s[m[1]:]
	}

	return d, pickWallTime(s)
}

func (n *Normalizer) today() parsedDate {
	now := n.now().In(n.loc)
	return parsedDate{year: now.Year(), month: now.Month(), day: now.Day()}
}
