package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a sink implementation.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Sink receives the finished table. Write is called once per run.
type Sink interface {
	Write(ctx context.Context, rows []Row) error
	Close() error
}

// Options configures a sink.
type Options struct {
	Path         string
	Format       Format
	IncludeCards bool
}

// InferFormat picks a format from the output path's extension.
func InferFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Open creates the sink described by opts.
func Open(opts Options) (Sink, error) {
	format := opts.Format
	if format == "" {
		format = InferFormat(opts.Path)
	}
	switch format {
	case FormatCSV:
		return CreateCSV(opts.Path, opts.IncludeCards)
	case FormatSQLite:
		return OpenSQLite(opts.Path, opts.IncludeCards)
	default:
		return nil, fmt.Errorf("export: unknown format %q", format)
	}
}
