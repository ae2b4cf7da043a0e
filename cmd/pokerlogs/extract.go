package main

import (
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/pokerlogs/cmd/pokerlogs/shared"
	"github.com/lox/pokerlogs/internal/config"
	"github.com/lox/pokerlogs/internal/export"
	"github.com/lox/pokerlogs/internal/pipeline"
	"github.com/lox/pokerlogs/internal/report"
)

// InputFlags are shared by every command that reads session logs.
type InputFlags struct {
	Input    string  `short:"i" env:"POKERLOGS_INPUT" help:"Directory containing session log CSV files"`
	Pattern  string  `env:"POKERLOGS_PATTERN" help:"Glob selecting log files inside the input directory"`
	Names    string  `short:"n" env:"POKERLOGS_NAMES" help:"YAML file mapping raw player names to canonical names"`
	BigBlind float64 `name:"big-blind" env:"POKERLOGS_BIG_BLIND" help:"Chip units per big blind"`
	Workers  int     `env:"POKERLOGS_WORKERS" help:"Files loaded in parallel (0 = one per CPU)"`
	LogLevel string  `name:"log-level" env:"POKERLOGS_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
}

// apply layers explicit flags and environment values over the file config.
func (f InputFlags) apply(cfg *config.Config) {
	if f.Input != "" {
		cfg.Input.Dir = f.Input
	}
	if f.Pattern != "" {
		cfg.Input.Pattern = f.Pattern
	}
	if f.Names != "" {
		cfg.Names.File = f.Names
	}
	if f.BigBlind != 0 {
		cfg.BigBlind = f.BigBlind
	}
	if f.Workers != 0 {
		cfg.Workers = f.Workers
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
}

func loadConfig(path string, flags InputFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags.apply(cfg)
	return cfg, nil
}

// ExtractCmd runs the full pipeline and writes the training table
type ExtractCmd struct {
	InputFlags `embed:""`

	Output       string `short:"o" env:"POKERLOGS_OUTPUT" help:"Output file (.csv, .db or .sqlite)"`
	Format       string `short:"f" env:"POKERLOGS_FORMAT" help:"Output format (csv or sqlite); inferred from the output extension when empty"`
	IncludeCards bool   `name:"include-cards" env:"POKERLOGS_INCLUDE_CARDS" help:"Also write the raw hole cards"`
	NoColor      bool   `name:"no-color" help:"Disable colors in the run summary"`
	Quiet        bool   `short:"q" help:"Skip the run summary"`
}

func (c *ExtractCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config, c.InputFlags)
	if err != nil {
		return err
	}
	if c.Output != "" {
		cfg.Output.Path = c.Output
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.IncludeCards {
		cfg.Output.IncludeCards = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := shared.SetupLogger(cfg.LogLevel)
	if c.NoColor {
		report.DisableColor()
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	table, err := cfg.NameTable()
	if err != nil {
		return err
	}
	logger.Debug("Loaded name table", "entries", table.Len())

	p := pipeline.New(pipeline.Config{
		BigBlind: cfg.BigBlindSize(),
		Markers:  cfg.ParserMarkers(),
		Workers:  cfg.Workers,
	}, table, logger, quartz.NewReal())

	res, err := p.RunDir(ctx, cfg.Input.Dir, cfg.Input.Pattern)
	if err != nil {
		return err
	}

	sink, err := export.Open(cfg.SinkOptions())
	if err != nil {
		return err
	}
	if err := p.Export(ctx, res, sink); err != nil {
		return err
	}

	if c.Quiet {
		return nil
	}
	return report.Render(os.Stderr, cfg.Output.Path, res.Stats)
}
