package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mxtim/freetime/config"
	"github.com/mxtim/freetime/domain"
	"github.com/mxtim/freetime/port"
)

// Service answers availability questions over a timesheet source. All
// day math happens in the configured server zone.
type Service struct {
	source port.TimesheetSource
	loc    *time.Location
	log    *slog.Logger
}

// Option tweaks a Service.
type Option func(*Service)

// WithLogger replaces slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// New builds a Service reading from source in cfg's server zone.
func New(source port.TimesheetSource, cfg config.Config, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, errors.New("nil timesheet source")
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	s := &Service{source: source, loc: loc, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TimesheetsPerDay fetches the entries overlapping [begin, end] and
// buckets them per server-local day, splitting entries that cross a
// midnight. A zero end means the same day as begin.
func (s *Service) TimesheetsPerDay(ctx context.Context, begin, end time.Time) (map[domain.DayKey][]domain.Entry, error) {
	begin = begin.In(s.loc)
	if end.IsZero() {
		end = begin
	}
	end = end.In(s.loc)

	entries, err := s.source.Timesheets(ctx, port.Query{
		Begin: domain.StartOfDay(begin),
		End:   domain.EndOfDay(end),
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetch timesheets")
	}
	s.log.DebugContext(ctx, "bucketing timesheets",
		"begin", begin, "end", end, "entries", len(entries))

	buckets, err := domain.BucketByDay(entries, begin, end, s.loc)
	if err != nil {
		s.log.WarnContext(ctx, "rejected timesheet entry", "err", err)
		return nil, err
	}
	return buckets, nil
}

// FreeTimeInRange computes the free gaps of every day in [begin, end].
func (s *Service) FreeTimeInRange(ctx context.Context, begin, end time.Time) (map[domain.DayKey][]domain.FreeInterval, error) {
	buckets, err := s.TimesheetsPerDay(ctx, begin, end)
	if err != nil {
		return nil, err
	}

	free := make(map[domain.DayKey][]domain.FreeInterval, len(buckets))
	for key, entries := range buckets {
		day, err := key.Date(s.loc)
		if err != nil {
			return nil, err
		}
		free[key] = domain.FreeTime(day, entries, s.loc)
	}
	return free, nil
}

// FreeTimeInDay computes the free gaps of the day containing day.
func (s *Service) FreeTimeInDay(ctx context.Context, day time.Time) ([]domain.FreeInterval, error) {
	free, err := s.FreeTimeInRange(ctx, day, day)
	if err != nil {
		return nil, err
	}
	return free[domain.DayKeyFor(day.In(s.loc), s.loc)], nil
}

// IsFreeAt reports whether at falls inside a free gap of its own day.
func (s *Service) IsFreeAt(ctx context.Context, at time.Time) (bool, error) {
	free, err := s.FreeTimeInDay(ctx, at)
	if err != nil {
		return false, err
	}

	at = at.In(s.loc)
	for _, iv := range free {
		if (at.Equal(iv.Start) || at.After(iv.Start)) && at.Before(iv.End) {
			return true, nil
		}
	}
	return false, nil
}
