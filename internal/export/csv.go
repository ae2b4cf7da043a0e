package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/lox/pokerlogs/internal/fileutil"
)

// CSVSink writes a header row followed by one line per row.
type CSVSink struct {
	w            *csv.Writer
	file         *fileutil.AtomicFile
	written      bool
	includeCards bool
}

// NewCSVSink writes to w. Close does not close w.
func NewCSVSink(w io.Writer, includeCards bool) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w), includeCards: includeCards}
}

// CreateCSV writes to path atomically: the file only appears, or replaces
// an older one, when Close follows a successful Write.
func CreateCSV(path string, includeCards bool) (*CSVSink, error) {
	f, err := fileutil.CreateAtomic(filepath.Clean(path), 0o644)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	sink := NewCSVSink(f, includeCards)
	sink.file = f
	return sink, nil
}

func (s *CSVSink) Write(ctx context.Context, rows []Row) error {
	if err := s.w.Write(Header(s.includeCards)); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, row := range rows {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := s.w.Write(row.Values(s.includeCards)); err != nil {
			return fmt.Errorf("export: write row %d: %w", i, err)
		}
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	s.written = true
	return nil
}

// Close publishes the file after a successful Write and discards it otherwise.
func (s *CSVSink) Close() error {
	if s.file == nil {
		return nil
	}
	if !s.written {
		return s.file.Abort()
	}
	if err := s.file.Commit(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
