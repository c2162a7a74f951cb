package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/pokerhud/pokernow-stats/internal/config"
	"github.com/pokerhud/pokernow-stats/internal/display"
	"github.com/pokerhud/pokernow-stats/internal/parser"
	"github.com/pokerhud/pokernow-stats/internal/pokernow"
	"github.com/pokerhud/pokernow-stats/internal/progress"
	"github.com/pokerhud/pokernow-stats/internal/stats"
)

// StatsCmd runs the full pipeline: dedupe, load, segment, scan, aggregate,
// calculate, render.
type StatsCmd struct {
	Logs         string `help:"Directory containing PokerNow CSV exports" default:""`
	NoDuplicates bool   `help:"Skip the duplicate file removal step"`
	Sort         string `help:"Column to sort by (e.g. 'Tightness Score', 'Total Hands', 'VPIP (%)')" default:""`
	Filter       string `help:"Comma-separated player numbers to re-display filtered, e.g. '1,3,5'"`
	JSON         string `name:"json" help:"Write the computed stats to FILE as JSON" type:"path"`
	Config       string `help:"TOML config file overriding display defaults" type:"path"`
	Workers      int    `help:"Hand-processing workers (0 = one per CPU)" default:"1"`
	Debug        bool   `help:"Enable debug logging"`
}

func (cmd *StatsCmd) Run() error {
	logger := newLogger(cmd.Debug)

	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	logsDir := cmd.Logs
	if logsDir == "" {
		logsDir = cfg.Logs
	}
	sortBy := cmd.Sort
	if sortBy == "" {
		sortBy = cfg.Sort
	}
	workers := cmd.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if !cmd.NoDuplicates {
		removed, err := pokernow.RemoveDuplicates(logsDir, logger)
		if err != nil {
			return err
		}
		if removed == 0 {
			logger.Info("no duplicate log files found")
		}
	}

	tracker := progress.NewTracker(logger, nil, "log files loaded")
	lines, err := pokernow.LoadDir(logsDir, logger, tracker.Tick)
	if err != nil {
		return err
	}
	tracker.Done()
	if len(lines) == 0 {
		logger.Warn("no log lines found", "dir", logsDir)
		return nil
	}

	hands := parser.SegmentHands(lines)
	logger.Debug("segmented hands", "hands", len(hands), "lines", len(lines), "workers", workers)
	agg := stats.Process(hands, workers)
	players := stats.Calculate(agg)

	renderer := display.NewRenderer(os.Stdout, thresholdsFromConfig(cfg.Thresholds))
	renderer.Banner()
	renderer.Overview(len(hands), players)
	numbers := renderer.StatsTable(players, sortBy, true)

	if cmd.JSON != "" {
		if err := writeReport(cmd.JSON, len(hands), players); err != nil {
			return err
		}
		logger.Info("wrote JSON report", "file", cmd.JSON)
	}
	if len(numbers) == 0 {
		return nil
	}

	selected := splitSelection(cmd.Filter)
	if cmd.Filter == "" {
		selected, err = promptForFilter()
		if err != nil {
			logger.Debug("skipping interactive filter", "err", err)
			return nil
		}
	}
	if len(selected) == 0 {
		logger.Info("no filter applied")
		return nil
	}

	filtered := make(map[string]stats.PlayerStats, len(selected))
	for _, num := range selected {
		if id, ok := numbers[num]; ok {
			filtered[id] = players[id]
		}
	}
	logger.Info("filtered results", "players", len(filtered))
	renderer.StatsTable(filtered, sortBy, false)
	return nil
}

// splitSelection parses a comma-separated list of player numbers, dropping
// empty items.
func splitSelection(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func thresholdsFromConfig(t config.Thresholds) display.Thresholds {
	return display.Thresholds{
		HandsLow:       int(t.Hands.Low),
		HandsHigh:      int(t.Hands.High),
		AggressionLow:  t.Aggression.Low,
		AggressionHigh: t.Aggression.High,
		ShowdownLow:    t.ShowdownWin.Low,
		ShowdownHigh:   t.ShowdownWin.High,
		TightnessLow:   t.Tightness.Low,
		TightnessHigh:  t.Tightness.High,
	}
}
