package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerlogs/cmd/pokerlogs/shared"
	"github.com/lox/pokerlogs/internal/config"
	"github.com/lox/pokerlogs/internal/eventlog"
	"github.com/lox/pokerlogs/internal/parser"
)

// NamesCmd groups name table commands
type NamesCmd struct {
	Check NamesCheckCmd `cmd:"" help:"List raw player names the name table cannot resolve"`
}

// NamesCheckCmd scans the logs and reports every unmapped name at once
type NamesCheckCmd struct {
	InputFlags `embed:""`
}

func (c *NamesCheckCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config, c.InputFlags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := shared.SetupLogger(cfg.LogLevel)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	missing, err := checkNames(ctx, cfg, logger, os.Stdout)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d unmapped player name(s)", len(missing))
	}
	return nil
}

// checkNames prints every raw name in the configured logs that the name
// table cannot resolve, one per line, and returns them.
func checkNames(ctx context.Context, cfg *config.Config, logger *log.Logger, out io.Writer) ([]string, error) {
	table, err := cfg.NameTable()
	if err != nil {
		return nil, err
	}

	sources, err := eventlog.NewLoader(logger, cfg.Workers).LoadDir(ctx, cfg.Input.Dir, cfg.Input.Pattern)
	if err != nil {
		return nil, err
	}
	raw := parser.RawNames(eventlog.Merge(sources), cfg.ParserMarkers())
	missing := parser.Unmapped(raw, table)

	for _, name := range missing {
		fmt.Fprintln(out, name)
	}
	logger.Info("Checked player names", "seen", len(raw), "unmapped", len(missing))
	return missing, nil
}
