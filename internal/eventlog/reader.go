package eventlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	orderColumn = "order"
	entryColumn = "entry"
)

// ReadSource decodes a CSV log with a header row. Only the "order" and
// "entry" columns are used; any other column is ignored.
func ReadSource(name string, r io.Reader) (Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Source{Name: name}, nil
	}
	if err != nil {
		return Source{}, fmt.Errorf("eventlog: %s: read header: %w", name, err)
	}

	orderIdx, entryIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))) {
		case orderColumn:
			orderIdx = i
		case entryColumn:
			entryIdx = i
		}
	}
	if orderIdx < 0 || entryIdx < 0 {
		return Source{}, fmt.Errorf("eventlog: %s: header must contain %q and %q columns", name, orderColumn, entryColumn)
	}

	src := Source{Name: name}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Source{}, fmt.Errorf("eventlog: %s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)

		if orderIdx >= len(row) {
			return Source{}, &OrderKeyError{Source: name, Line: line}
		}
		raw := strings.TrimSpace(row[orderIdx])
		order, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Source{}, &OrderKeyError{Source: name, Line: line, Value: raw}
		}

		var entry string
		if entryIdx < len(row) {
			entry = row[entryIdx]
		}
		src.Records = append(src.Records, Record{Order: order, Entry: entry})
	}
	return src, nil
}
