package memsource

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mxtim/freetime/domain"
	"github.com/mxtim/freetime/port"
)

// Source is an in-memory TimesheetSource for tests and for callers that
// already hold their entries, such as imports from a tracker export.
type Source struct {
	mu       sync.RWMutex
	entries  []domain.Entry
	nextID   int
	revision string
}

// New builds a Source preloaded with entries. Entries without an ID or
// UID get one assigned, in order.
func New(entries ...domain.Entry) *Source {
	s := &Source{nextID: 1, revision: uuid.New().String()}
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Add stores a copy of e and returns it with its assigned identifiers.
func (s *Source) Add(e domain.Entry) domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		e.ID = s.nextID
	}
	if e.ID >= s.nextID {
		s.nextID = e.ID + 1
	}
	if e.UID == "" {
		e.UID = uuid.New().String()
	}
	e.Tags = cloneTags(e.Tags)

	s.entries = append(s.entries, e)
	s.revision = uuid.New().String()
	return e
}

// Remove drops the entry with the given id and reports whether it was
// present.
func (s *Source) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.revision = uuid.New().String()
			return true
		}
	}
	return false
}

// Revision is an opaque marker that changes on every mutation, so
// callers can cheaply detect staleness between reads.
func (s *Source) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Timesheets returns the entries matching q, sorted by start time.
func (s *Source) Timesheets(_ context.Context, q port.Query) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Entry
	for _, e := range s.entries {
		if !matches(e, q) {
			continue
		}
		e.Tags = cloneTags(e.Tags)
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Start.Before(matched[j].Start) })
	return matched, nil
}

func matches(e domain.Entry, q port.Query) bool {
	// A nil end means still running, which overlaps everything from
	// the entry's start onward.
	if !q.Begin.IsZero() && e.End != nil && e.End.Before(q.Begin) {
		return false
	}
	if !q.End.IsZero() && e.Start.After(q.End) {
		return false
	}
	if q.User != 0 && e.User != q.User {
		return false
	}
	if q.Project != 0 && e.Project != q.Project {
		return false
	}
	if q.Activity != 0 && e.Activity != q.Activity {
		return false
	}
	if q.Billable != nil && e.Billable != *q.Billable {
		return false
	}
	for _, want := range q.Tags {
		if !hasTag(e.Tags, want) {
			return false
		}
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return append([]string(nil), tags...)
}
