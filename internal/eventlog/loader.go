package eventlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches the CSV exports written by the table software.
const DefaultPattern = "*.csv"

// Loader reads log files concurrently and merges them into one stream.
type Loader struct {
	logger  *log.Logger
	workers int
}

// NewLoader creates a loader. workers bounds the number of files read at
// once; zero or less means one worker per CPU.
func NewLoader(logger *log.Logger, workers int) *Loader {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Loader{logger: logger, workers: workers}
}

// Discover lists the files in dir matching pattern in lexical order.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("eventlog: invalid pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDir discovers and loads every matching file in dir.
func (l *Loader) LoadDir(ctx context.Context, dir, pattern string) ([]Source, error) {
	paths, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("eventlog: no files matching %q in %s", pattern, dir)
	}
	return l.LoadFiles(ctx, paths)
}

// LoadFiles reads each path into a Source. The result keeps the order of
// paths regardless of which file finishes first.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]Source, error) {
	sources := make([]Source, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := readFile(path)
			if err != nil {
				return err
			}
			l.logger.Debug("Loaded log file", "file", path, "records", len(src.Records))
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func readFile(path string) (Source, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Source{}, fmt.Errorf("eventlog: %w", err)
	}
	defer f.Close()
	return ReadSource(path, f)
}
