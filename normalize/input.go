package normalize

import "time"

type inputKind int

const (
	kindText inputKind = iota
	kindInstant
	kindWall
	kindDate
	kindClock
)

// Input is one raw begin value as the upstream hands it over: free-form
// text, a fully qualified instant, a wall-clock datetime whose offset
// is not trustworthy, a bare calendar date, or a bare time of day.
type Input struct {
	kind inputKind

	text string
	t    time.Time

	year  int
	month time.Month
	day   int

	hour   int
	minute int
	second int
}

// Text wraps free-form timestamp text.
func Text(s string) Input {
	return Input{kind: kindText, text: s}
}

// Instant wraps an instant whose zone offset is trusted.
func Instant(t time.Time) Input {
	return Input{kind: kindInstant, t: t}
}

// Wall wraps a datetime whose written fields are meaningful but whose
// offset is not, like a naive upstream timestamp.
func Wall(t time.Time) Input {
	return Input{kind: kindWall, t: t}
}

// Date wraps a calendar date with no time of day.
func Date(year int, month time.Month, day int) Input {
	return Input{kind: kindDate, year: year, month: month, day: day}
}

// Clock wraps a time of day with no date.
func Clock(hour, minute, second int) Input {
	return Input{kind: kindClock, hour: hour, minute: minute, second: second}
}
