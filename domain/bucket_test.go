package domain

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestBucketByDay_PrepopulatesEveryDay(t *testing.T) {
	loc := time.UTC
	begin := time.Date(2025, 10, 29, 0, 0, 0, 0, loc)
	end := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)

	buckets, err := BucketByDay(nil, begin, end, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("want 3 day buckets, got %d: %v", len(buckets), buckets)
	}
	for _, key := range []DayKey{"20251029", "20251030", "20251031"} {
		entries, ok := buckets[key]
		if !ok {
			t.Errorf("day %s missing from buckets", key)
		}
		if len(entries) != 0 {
			t.Errorf("day %s: want empty bucket, got %d entries", key, len(entries))
		}
	}
}

func TestBucketByDay_SingleDayRange(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 10, 31, 15, 30, 0, 0, loc)

	buckets, err := BucketByDay(nil, day, day, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("want 1 day bucket, got %d", len(buckets))
	}
	if _, ok := buckets["20251031"]; !ok {
		t.Error("bucket for 20251031 missing")
	}
}

func TestBucketByDay_SameDayEntryKeptWhole(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)
	entry := entryBetween(
		time.Date(2025, 10, 31, 10, 0, 0, 0, loc),
		time.Date(2025, 10, 31, 11, 0, 0, 0, loc),
	)
	entry.ID = 7

	buckets, err := BucketByDay([]Entry{entry}, day, day, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buckets["20251031"]
	if len(got) != 1 {
		t.Fatalf("want 1 entry, got %d", len(got))
	}
	if got[0].ID != 7 {
		t.Errorf("ID: want 7, got %d", got[0].ID)
	}
	if !got[0].Start.Equal(entry.Start) || !got[0].End.Equal(*entry.End) {
		t.Errorf("entry altered: got [%v, %v]", got[0].Start, got[0].End)
	}
}

func TestBucketByDay_MidnightSplit(t *testing.T) {
	loc := time.UTC
	begin := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)
	end := time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	entry := entryBetween(
		time.Date(2025, 10, 31, 22, 0, 0, 0, loc),
		time.Date(2025, 11, 1, 2, 0, 0, 0, loc),
	)
	entry.Activity = 3
	entry.Description = "overnight deploy"

	buckets, err := BucketByDay([]Entry{entry}, begin, end, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstDay := buckets["20251031"]
	if len(firstDay) != 1 {
		t.Fatalf("start day: want 1 entry, got %d", len(firstDay))
	}
	if !firstDay[0].Start.Equal(time.Date(2025, 10, 31, 22, 0, 0, 0, loc)) {
		t.Errorf("first half start: want 22:00, got %v", firstDay[0].Start)
	}
	if !firstDay[0].End.Equal(time.Date(2025, 10, 31, 23, 59, 0, 0, loc)) {
		t.Errorf("first half end: want 23:59 on start day, got %v", firstDay[0].End)
	}

	secondDay := buckets["20251101"]
	if len(secondDay) != 1 {
		t.Fatalf("end day: want 1 entry, got %d", len(secondDay))
	}
	if !secondDay[0].Start.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("second half start: want 00:00, got %v", secondDay[0].Start)
	}
	if !secondDay[0].End.Equal(time.Date(2025, 11, 1, 2, 0, 0, 0, loc)) {
		t.Errorf("second half end: want 02:00, got %v", secondDay[0].End)
	}

	// Both halves keep the descriptive fields.
	for _, half := range []Entry{firstDay[0], secondDay[0]} {
		if half.Activity != 3 || half.Description != "overnight deploy" {
			t.Errorf("descriptive fields lost on %v", half)
		}
	}

	// The halves cover the original minus the midnight minute the
	// 23:59 day model excludes.
	total := firstDay[0].Duration() + secondDay[0].Duration()
	if want := entry.Duration() - time.Minute; total != want {
		t.Errorf("split durations: want %v, got %v", want, total)
	}
}

func TestBucketByDay_MissingEnd(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)
	open := Entry{TimeInterval: TimeInterval{Start: time.Date(2025, 10, 31, 22, 0, 0, 0, loc)}}

	_, err := BucketByDay([]Entry{open}, day, day, loc)
	if !errors.Is(err, ErrMissingEnd) {
		t.Fatalf("want ErrMissingEnd, got %v", err)
	}
}

func TestBucketByDay_RejectsMultiMidnightEntry(t *testing.T) {
	loc := time.UTC
	begin := time.Date(2025, 10, 29, 0, 0, 0, 0, loc)
	end := time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	long := entryBetween(
		time.Date(2025, 10, 30, 22, 0, 0, 0, loc),
		time.Date(2025, 11, 1, 2, 0, 0, 0, loc),
	)

	_, err := BucketByDay([]Entry{long}, begin, end, loc)
	if !errors.Is(err, ErrSpansTooManyDays) {
		t.Fatalf("want ErrSpansTooManyDays, got %v", err)
	}
}

func TestBucketByDay_EntryOutsideRangeAddsItsDay(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)
	stray := entryBetween(
		time.Date(2025, 11, 3, 10, 0, 0, 0, loc),
		time.Date(2025, 11, 3, 11, 0, 0, 0, loc),
	)

	buckets, err := BucketByDay([]Entry{stray}, day, day, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("want ranged day plus stray day, got %d buckets", len(buckets))
	}
	if len(buckets["20251103"]) != 1 {
		t.Errorf("stray entry not bucketed on its own day: %v", buckets)
	}
}

func TestBucketByDay_ConvertsToServerZone(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*3600)
	day := time.Date(2025, 10, 31, 0, 0, 0, 0, loc)
	// 2025-11-01 03:00 UTC is 2025-10-31 21:00 in the server zone.
	entry := entryBetween(
		time.Date(2025, 11, 1, 3, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 1, 4, 0, 0, 0, time.UTC),
	)

	buckets, err := BucketByDay([]Entry{entry}, day, day, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buckets["20251031"]
	if len(got) != 1 {
		t.Fatalf("want entry on server-local day 20251031, got %v", buckets)
	}
	if got[0].Start.Hour() != 21 {
		t.Errorf("start hour in server zone: want 21, got %d", got[0].Start.Hour())
	}
}
