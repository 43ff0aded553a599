package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// wallClock is a written time of day before any zone is attached.
type wallClock struct {
	hour   int
	minute int
	second int
}

// timeRule recognizes one written time-of-day form. Rules are tried in
// order and the first match wins, so broader forms must come after the
// stricter ones they would shadow.
type timeRule struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) wallClock
}

// timeRules in priority order. The clock forms anchor on the start of
// the string, a date/time separator, or whitespace; RE2 has no
// lookbehind, so the anchor is consumed instead and the groups carry
// the digits.
var timeRules = []timeRule{
	{
		name: "iso-clock",
		re:   regexp.MustCompile(`(?:^|[T\s])([01]\d|2[0-3]):([0-5]\d)(?::([0-5]\d))?`),
		extract: func(m []string) wallClock {
			return wallClock{hour: ruleInt(m[1]), minute: ruleInt(m[2]), second: ruleInt(m[3])}
		},
	},
	{
		// Compact HHMM, rejected when a colon follows so iso-clock
		// keeps ownership of HH:MM.
		name: "compact-hhmm",
		re:   regexp.MustCompile(`(?:^|[T\s])([01]\d|2[0-3])([0-5]\d)(?:[^:]|$)`),
		extract: func(m []string) wallClock {
			return wallClock{hour: ruleInt(m[1]), minute: ruleInt(m[2])}
		},
	},
	{
		name: "am-pm",
		re:   regexp.MustCompile(`(?i)\b(1[0-2]|0?[1-9])\s*(am|pm)\b`),
		extract: func(m []string) wallClock {
			h := ruleInt(m[1]) % 12
			if strings.EqualFold(m[2], "pm") {
				h += 12
			}
			return wallClock{hour: h}
		},
	},
	{
		name: "hour-suffix",
		re:   regexp.MustCompile(`(?i)\b([01]?\d|2[0-3])\s*h\b`),
		extract: func(m []string) wallClock {
			return wallClock{hour: ruleInt(m[1])}
		},
	},
	{
		name: "bare-hour",
		re:   regexp.MustCompile(`(?:^|[T\s])([01]?\d|2[0-3])(?:\D|$)`),
		extract: func(m []string) wallClock {
			return wallClock{hour: ruleInt(m[1])}
		},
	},
}

// pickWallTime runs the rule table over tz-free text. No match means
// midnight.
func pickWallTime(s string) wallClock {
	for _, rule := range timeRules {
		if m := rule.re.FindStringSubmatch(s); m != nil {
			return rule.extract(m)
		}
	}
	return wallClock{}
}

// ruleInt converts an all-digit capture group, treating an unmatched
// optional group as zero.
func ruleInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
