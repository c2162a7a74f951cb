package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pokerhud/pokernow-stats/internal/fileutil"
	"github.com/pokerhud/pokernow-stats/internal/stats"
)

// report is the JSON export of one pipeline run.
type report struct {
	RunID       string                       `json:"run_id"`
	GeneratedAt time.Time                    `json:"generated_at"`
	TotalHands  int                          `json:"total_hands"`
	Players     map[string]stats.PlayerStats `json:"players"`
}

// writeReport writes the stats mapping to path atomically so a crashed run
// never leaves a truncated report behind.
func writeReport(path string, totalHands int, players map[string]stats.PlayerStats) error {
	rep := report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		TotalHands:  totalHands,
		Players:     players,
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}
