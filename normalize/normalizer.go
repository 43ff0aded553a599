package normalize

import (
	"time"

	"github.com/mxtim/freetime/config"
)

// Normalizer resolves raw begin values into a single authoritative
// instant. It is stateless after construction and safe for concurrent
// use.
type Normalizer struct {
	loc       *time.Location
	returnUTC bool
	bstart    int
	bend      int
	now       func() time.Time
}

// Option tweaks a Normalizer.
type Option func(*Normalizer)

// WithNow replaces the clock used for the "today" date fallback.
func WithNow(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// New builds a Normalizer from cfg.
func New(cfg config.Config, opts ...Option) (*Normalizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	n := &Normalizer{
		loc:       loc,
		returnUTC: cfg.ReturnUTC,
		bstart:    cfg.BusinessStart,
		bend:      cfg.BusinessEnd,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Normalize resolves in to one instant. It never fails: unparsable
// pieces fall back to today and midnight, and an absent offset leaves
// the wall-clock reading as the only candidate. The result is UTC or
// server-local per the configuration.
func (n *Normalizer) Normalize(in Input) time.Time {
	d, wall := n.parse(in)

	// Candidate B: the written wall clock read as server-local time.
	b := time.Date(d.year, d.month, d.day, wall.hour, wall.minute, wall.second, 0, n.loc)

	// Candidate A: offset-respecting, when an offset exists.
	a, ok := n.resolveOffset(in, d)
	if !ok {
		a = b
	}

	choice := n.chooseBest(a, b)
	if n.returnUTC {
		return choice.UTC()
	}
	return choice
}
