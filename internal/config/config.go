package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"github.com/lox/pokerlogs/internal/eventlog"
	"github.com/lox/pokerlogs/internal/export"
	"github.com/lox/pokerlogs/internal/names"
	"github.com/lox/pokerlogs/internal/parser"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "pokerlogs.hcl"

// Config represents the complete extraction configuration
type Config struct {
	BigBlind float64        `hcl:"big_blind,optional"`
	LogLevel string         `hcl:"log_level,optional"`
	Workers  int            `hcl:"workers,optional"`
	Input    *InputConfig   `hcl:"input,block"`
	Names    *NamesConfig   `hcl:"names,block"`
	Output   *OutputConfig  `hcl:"output,block"`
	Markers  *MarkersConfig `hcl:"markers,block"`
}

// InputConfig locates the session logs
type InputConfig struct {
	Dir     string `hcl:"dir,optional"`
	Pattern string `hcl:"pattern,optional"`
}

// NamesConfig supplies the name canonicalisation table
type NamesConfig struct {
	File    string            `hcl:"file,optional"`
	Entries map[string]string `hcl:"entries,optional"`
}

// OutputConfig describes the output table
type OutputConfig struct {
	Path         string `hcl:"path,optional"`
	Format       string `hcl:"format,optional"`
	IncludeCards bool   `hcl:"include_cards,optional"`
}

// MarkersConfig overrides the log phrases that drive round and phase tracking
type MarkersConfig struct {
	RoundStart string `hcl:"round_start,optional"`
	SmallBlind string `hcl:"small_blind,optional"`
	Flop       string `hcl:"flop,optional"`
	Stacks     string `hcl:"stacks,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from an HCL file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	hclParser := hclparse.NewParser()
	file, diags := hclParser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.BigBlind == 0 {
		c.BigBlind = 4
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Input == nil {
		c.Input = &InputConfig{}
	}
	if c.Input.Dir == "" {
		c.Input.Dir = "poker_log"
	}
	if c.Input.Pattern == "" {
		c.Input.Pattern = eventlog.DefaultPattern
	}
	if c.Names == nil {
		c.Names = &NamesConfig{}
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Path == "" {
		c.Output.Path = "pk_pre_flop_clean.csv"
	}
	if c.Markers == nil {
		c.Markers = &MarkersConfig{}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BigBlind <= 0 {
		return fmt.Errorf("big_blind must be positive, got %v", c.BigBlind)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch export.Format(c.Output.Format) {
	case "", export.FormatCSV, export.FormatSQLite:
	default:
		return fmt.Errorf("output: invalid format %q (want csv or sqlite)", c.Output.Format)
	}
	return nil
}

// BigBlindSize returns the chip units per big blind.
func (c *Config) BigBlindSize() decimal.Decimal {
	return decimal.NewFromFloat(c.BigBlind)
}

// ParserMarkers returns the configured markers with defaults filled in.
func (c *Config) ParserMarkers() parser.Markers {
	return parser.Markers{
		RoundStart: c.Markers.RoundStart,
		SmallBlind: c.Markers.SmallBlind,
		Flop:       c.Markers.Flop,
		Stacks:     c.Markers.Stacks,
	}.WithDefaults()
}

// SinkOptions returns the output sink options.
func (c *Config) SinkOptions() export.Options {
	return export.Options{
		Path:         c.Output.Path,
		Format:       export.Format(strings.ToLower(c.Output.Format)),
		IncludeCards: c.Output.IncludeCards,
	}
}

// NameTable builds the canonicalisation table from the names file and the
// inline entries. Inline entries win over the file.
func (c *Config) NameTable() (*names.Table, error) {
	table := names.NewTable(nil)
	if c.Names.File != "" {
		entries, err := names.LoadFile(c.Names.File)
		if err != nil {
			return nil, err
		}
		for raw, canon := range entries {
			table.Add(raw, canon)
		}
	}
	for raw, canon := range c.Names.Entries {
		table.Add(raw, canon)
	}
	return table, nil
}
