// Package pipeline runs the full log-to-table transformation: merge,
// segment, classify, resolve names, extract, reconcile, project.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/internal/eventlog"
	"github.com/lox/pokerlogs/internal/export"
	"github.com/lox/pokerlogs/internal/parser"
	"github.com/lox/pokerlogs/internal/reconcile"
	"github.com/lox/pokerlogs/internal/statistics"
	"github.com/lox/pokerlogs/poker"
)

// Config holds the parameters of a run.
type Config struct {
	BigBlind decimal.Decimal
	Markers  parser.Markers
	Workers  int
}

// Stats summarises a run.
type Stats struct {
	Sources        int
	Events         int
	Rounds         int
	ValidRounds    int
	DroppedRounds  int
	Actions        int
	PreflopActions int
	Rows           int
	Categories     map[poker.HoleCardCategory]int
	Decisions      *statistics.Statistics
	Elapsed        time.Duration
}

// Result is the projected table and its run statistics.
type Result struct {
	Rows  []export.Row
	Stats Stats
}

// Pipeline turns session logs into preflop training rows.
type Pipeline struct {
	cfg      Config
	resolver parser.Resolver
	logger   *log.Logger
	clock    quartz.Clock
}

// New creates a pipeline. A nil clock uses the real clock.
func New(cfg Config, resolver parser.Resolver, logger *log.Logger, clock quartz.Clock) *Pipeline {
	if clock == nil {
		clock = quartz.NewReal()
	}
	cfg.Markers = cfg.Markers.WithDefaults()
	return &Pipeline{cfg: cfg, resolver: resolver, logger: logger, clock: clock}
}

// RunDir loads every log in dir matching pattern and runs the pipeline.
func (p *Pipeline) RunDir(ctx context.Context, dir, pattern string) (*Result, error) {
	sources, err := eventlog.NewLoader(p.logger, p.cfg.Workers).LoadDir(ctx, dir, pattern)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, sources)
}

// Run processes already loaded sources. Nothing is returned unless every
// stage succeeds.
func (p *Pipeline) Run(ctx context.Context, sources []eventlog.Source) (*Result, error) {
	start := p.clock.Now()
	m := p.cfg.Markers

	events := eventlog.Merge(sources)
	p.logger.Debug("Merged sources", "sources", len(sources), "events", len(events))

	lines := parser.Segment(events, m)
	lines = parser.ClassifyPhase(lines, m)
	lines, err := parser.ResolvePlayers(lines, p.resolver)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	facts, err := parser.Extract(lines, m, p.cfg.BigBlind, p.resolver)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Extracted facts",
		"stacks", len(facts.Stacks),
		"positions", len(facts.Positions),
		"actions", len(facts.Actions),
		"hands", len(facts.Hands))

	reconciled, err := reconcile.New(p.logger).Reconcile(lines, facts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := export.Project(reconciled.Records)
	tendencies := decisions(rows)
	if err := tendencies.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: decision statistics: %w", err)
	}

	stats := Stats{
		Sources:       len(sources),
		Events:        len(events),
		Rounds:        reconciled.Rounds,
		ValidRounds:   len(reconciled.ValidRounds),
		DroppedRounds: len(reconciled.DroppedRounds),
		Actions:       len(facts.Actions),
		Rows:          len(rows),
		Categories:    categorize(rows),
		Decisions:     tendencies,
		Elapsed:       p.clock.Since(start),
	}
	for _, a := range facts.Actions {
		if a.Phase == parser.PhasePreflop {
			stats.PreflopActions++
		}
	}

	p.logger.Info("Pipeline complete",
		"events", stats.Events,
		"rounds", stats.Rounds,
		"valid", stats.ValidRounds,
		"rows", stats.Rows,
		"elapsed", stats.Elapsed)
	if stats.Rows == 0 {
		p.logger.Warn("No complete preflop rows produced")
	}

	return &Result{Rows: rows, Stats: stats}, nil
}

// Export writes the result to sink and closes it.
func (p *Pipeline) Export(ctx context.Context, res *Result, sink export.Sink) error {
	if err := sink.Write(ctx, res.Rows); err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("pipeline: close sink: %w", err)
	}
	p.logger.Info("Wrote table", "rows", len(res.Rows))
	return nil
}

func decisions(rows []export.Row) *statistics.Statistics {
	stats := statistics.New()
	for _, row := range rows {
		stats.Add(statistics.Observation{
			Player:   row.Player,
			Position: row.Position,
			Action:   row.Action,
			SizingBB: row.Sizing.InexactFloat64(),
		})
	}
	return stats
}

func categorize(rows []export.Row) map[poker.HoleCardCategory]int {
	counts := make(map[poker.HoleCardCategory]int)
	for _, row := range rows {
		counts[poker.CategorizeHoleCards(row.Card1, row.Card2)]++
	}
	return counts
}
