package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"pokerlogs.hcl" env:"POKERLOGS_CONFIG" help:"Path to HCL configuration file"`
	Extract ExtractCmd       `cmd:"" default:"withargs" help:"Extract preflop training rows from session logs"`
	Names   NamesCmd         `cmd:"" help:"Inspect the player name table"`
}

func main() {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerlogs"),
		kong.Description("Turn poker session logs into preflop decision training data"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
