// Package eventlog loads poker session logs and merges them into a single
// chronologically ordered event stream.
package eventlog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadOrderKey is returned when a source row has a missing or non-integer ordering key.
var ErrBadOrderKey = errors.New("eventlog: malformed ordering key")

// OrderKeyError describes the offending row of a rejected source.
type OrderKeyError struct {
	Source string
	Line   int
	Value  string
}

func (e *OrderKeyError) Error() string {
	return fmt.Sprintf("eventlog: %s line %d: malformed ordering key %q", e.Source, e.Line, e.Value)
}

func (e *OrderKeyError) Unwrap() error { return ErrBadOrderKey }

// Record is one row of a source log as written by the table software.
type Record struct {
	Order int64
	Entry string
}

// Source is an ordered list of records read from a single log file.
type Source struct {
	Name    string
	Records []Record
}

// Event is a log line placed in the global order of play.
type Event struct {
	Seq  int
	Text string
}

// Merge concatenates the sources, restores play order by the per-source
// ordering key and assigns dense sequence numbers. Equal keys keep their
// concatenation order.
func Merge(sources []Source) []Event {
	total := 0
	for _, src := range sources {
		total += len(src.Records)
	}

	records := make([]Record, 0, total)
	for _, src := range sources {
		records = append(records, src.Records...)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Order < records[j].Order
	})

	events := make([]Event, len(records))
	for i, rec := range records {
		events[i] = Event{Seq: i, Text: rec.Entry}
	}
	return events
}
