package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mxtim/freetime/adapter/memsource"
	"github.com/mxtim/freetime/config"
	"github.com/mxtim/freetime/domain"
	"github.com/mxtim/freetime/normalize"
	"github.com/mxtim/freetime/usecase/availability"
)

func main() {
	freeCmd := flag.NewFlagSet("free", flag.ExitOnError)
	freeConfig := freeCmd.String("config", "", "Path to YAML config (built-in defaults if empty)")
	freeEntries := freeCmd.String("entries", "", "Path to a JSON array of timesheet entries")
	freeBegin := freeCmd.String("begin", "", "Range begin, e.g. 2025-10-30")
	freeEnd := freeCmd.String("end", "", "Range end (defaults to begin)")

	daysCmd := flag.NewFlagSet("days", flag.ExitOnError)
	daysConfig := daysCmd.String("config", "", "Path to YAML config (built-in defaults if empty)")
	daysEntries := daysCmd.String("entries", "", "Path to a JSON array of timesheet entries")
	daysBegin := daysCmd.String("begin", "", "Range begin, e.g. 2025-10-30")
	daysEnd := daysCmd.String("end", "", "Range end (defaults to begin)")

	atCmd := flag.NewFlagSet("at", flag.ExitOnError)
	atConfig := atCmd.String("config", "", "Path to YAML config (built-in defaults if empty)")
	atEntries := atCmd.String("entries", "", "Path to a JSON array of timesheet entries")

	normCmd := flag.NewFlagSet("normalize", flag.ExitOnError)
	normConfig := normCmd.String("config", "", "Path to YAML config (built-in defaults if empty)")

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "free":
		freeCmd.Parse(os.Args[2:])
		if *freeBegin == "" {
			log.Fatal("--begin required")
		}
		runFree(loadConfig(*freeConfig), *freeEntries, *freeBegin, *freeEnd)
	case "days":
		daysCmd.Parse(os.Args[2:])
		if *daysBegin == "" {
			log.Fatal("--begin required")
		}
		runDays(loadConfig(*daysConfig), *daysEntries, *daysBegin, *daysEnd)
	case "at":
		atCmd.Parse(os.Args[2:])
		if atCmd.NArg() == 0 {
			log.Fatal("timestamp argument required")
		}
		runAt(loadConfig(*atConfig), *atEntries, strings.Join(atCmd.Args(), " "))
	case "normalize":
		normCmd.Parse(os.Args[2:])
		if normCmd.NArg() == 0 {
			log.Fatal("timestamp argument required")
		}
		runNormalize(loadConfig(*normConfig), strings.Join(normCmd.Args(), " "))
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  freetime free      --begin DATE [--end DATE] [--entries FILE] [--config FILE]
  freetime days      --begin DATE [--end DATE] [--entries FILE] [--config FILE]
  freetime at        [--entries FILE] [--config FILE] TIMESTAMP
  freetime normalize [--config FILE] TIMESTAMP
`)
	os.Exit(2)
}

func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Load config from %s: %v", path, err)
	}
	return cfg
}

func readEntries(path string) []domain.Entry {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Read entries from %s: %v", path, err)
	}
	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("Parse entries JSON: %v", err)
	}
	return entries
}

func newService(cfg config.Config, entriesPath string) *availability.Service {
	src := memsource.New(readEntries(entriesPath)...)
	svc, err := availability.New(src, cfg)
	if err != nil {
		log.Fatalf("Build availability service: %v", err)
	}
	return svc
}

func runFree(cfg config.Config, entriesPath, beginRaw, endRaw string) {
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Resolve server timezone: %v", err)
	}
	begin, end := resolveRange(cfg, beginRaw, endRaw)

	svc := newService(cfg, entriesPath)
	free, err := svc.FreeTimeInRange(context.Background(), begin, end)
	if err != nil {
		log.Fatalf("Compute free time: %v", err)
	}

	for _, key := range sortedKeys(free) {
		day, err := key.Date(loc)
		if err != nil {
			log.Fatalf("Decode day key %s: %v", key, err)
		}
		fmt.Println(day.Format("2006-01-02"))
		for _, iv := range free[key] {
			fmt.Printf("  %s - %s  %s\n",
				iv.Start.In(loc).Format("15:04"), iv.End.In(loc).Format("15:04"), iv.Duration())
		}
	}
}

func runDays(cfg config.Config, entriesPath, beginRaw, endRaw string) {
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Resolve server timezone: %v", err)
	}
	begin, end := resolveRange(cfg, beginRaw, endRaw)

	svc := newService(cfg, entriesPath)
	buckets, err := svc.TimesheetsPerDay(context.Background(), begin, end)
	if err != nil {
		log.Fatalf("Bucket timesheets: %v", err)
	}

	for _, key := range sortedKeys(buckets) {
		day, err := key.Date(loc)
		if err != nil {
			log.Fatalf("Decode day key %s: %v", key, err)
		}
		fmt.Println(day.Format("2006-01-02"))
		for _, e := range buckets[key] {
			line := fmt.Sprintf("  %s - %s",
				e.Start.In(loc).Format("15:04"), e.End.In(loc).Format("15:04"))
			if e.Description != "" {
				line += "  " + e.Description
			}
			fmt.Println(line)
		}
	}
}

func runAt(cfg config.Config, entriesPath, raw string) {
	n, err := normalize.New(cfg)
	if err != nil {
		log.Fatalf("Build normalizer: %v", err)
	}
	at := n.Normalize(normalize.Text(raw))

	svc := newService(cfg, entriesPath)
	ok, err := svc.IsFreeAt(context.Background(), at)
	if err != nil {
		log.Fatalf("Check availability: %v", err)
	}
	if ok {
		fmt.Printf("free at %s\n", at.Format(time.RFC3339))
	} else {
		fmt.Printf("busy at %s\n", at.Format(time.RFC3339))
	}
}

func runNormalize(cfg config.Config, raw string) {
	n, err := normalize.New(cfg)
	if err != nil {
		log.Fatalf("Build normalizer: %v", err)
	}
	fmt.Println(n.Normalize(normalize.Text(raw)).Format(time.RFC3339))
}

// resolveRange reads the begin and end arguments through the
// normalizer, so the CLI accepts the same informal forms the library
// does.
func resolveRange(cfg config.Config, beginRaw, endRaw string) (time.Time, time.Time) {
	n, err := normalize.New(cfg)
	if err != nil {
		log.Fatalf("Build normalizer: %v", err)
	}
	begin := n.Normalize(normalize.Text(beginRaw))
	end := begin
	if endRaw != "" {
		end = n.Normalize(normalize.Text(endRaw))
	}
	return begin, end
}

func sortedKeys[V any](m map[domain.DayKey]V) []domain.DayKey {
	keys := make([]domain.DayKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
