package domain

import "github.com/cockroachdb/errors"

// Sentinel errors raised while bucketing entries. Callers match them
// with errors.Is.
var (
	// ErrMissingEnd marks an entry whose end timestamp is required but
	// absent, so its end day cannot be determined.
	ErrMissingEnd = errors.New("entry has no end timestamp")

	// ErrSpansTooManyDays marks an entry covering more than one
	// midnight. Such entries are rejected rather than split N ways.
	ErrSpansTooManyDays = errors.New("entry spans more than one midnight")
)
