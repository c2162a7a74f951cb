package main

import "github.com/pokerhud/pokernow-stats/internal/pokernow"

// DedupeCmd runs duplicate log file removal on its own.
type DedupeCmd struct {
	Logs  string `help:"Directory containing PokerNow CSV exports" default:"logs"`
	Debug bool   `help:"Enable debug logging"`
}

func (cmd *DedupeCmd) Run() error {
	logger := newLogger(cmd.Debug)
	removed, err := pokernow.RemoveDuplicates(cmd.Logs, logger)
	if err != nil {
		return err
	}
	if removed == 0 {
		logger.Info("no duplicate log files found", "dir", cmd.Logs)
	} else {
		logger.Info("duplicate removal complete", "removed", removed)
	}
	return nil
}
