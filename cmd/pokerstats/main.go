package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Stats   StatsCmd         `cmd:"" help:"Compute per-player statistics from a directory of PokerNow logs"`
	Dedupe  DedupeCmd        `cmd:"" help:"Remove duplicate log files from a directory"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerstats"),
		kong.Description("Per-player behavioral statistics from PokerNow table logs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger configures the CLI logger; debug enables verbose output.
func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
