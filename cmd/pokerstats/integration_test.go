package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionCSV is a minimal PokerNow export: rows newest-first, one hand.
const sessionCSV = "entry,at,order\n" +
	"\"-- ending hand #1 --\",t8,8\n" +
	"\"\"\"p3 @ c\"\" folds\",t7,7\n" +
	"\"\"\"p1 @ a\"\" bets 10\",t6,6\n" +
	"\"Flop:  [Kd 7h 2s]\",t5,5\n" +
	"\"\"\"p2 @ b\"\" folds\",t4,4\n" +
	"\"\"\"p3 @ c\"\" calls 6\",t3,3\n" +
	"\"\"\"p2 @ b\"\" calls 6\",t2,2\n" +
	"\"\"\"p1 @ a\"\" raises to 6\",t1,1\n" +
	"\"-- starting hand #1 --\",t0,0\n"

func TestStatsCmdEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.csv"), []byte(sessionCSV), 0o644))
	reportPath := filepath.Join(t.TempDir(), "report.json")

	cmd := StatsCmd{
		Logs:         dir,
		NoDuplicates: true,
		Filter:       "1",
		JSON:         reportPath,
		Workers:      2,
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 1, rep.TotalHands)
	require.Contains(t, rep.Players, "p1")
	assert.Equal(t, 100, rep.Players["p1"].VPIP)
	assert.Equal(t, 100, rep.Players["p1"].PFR)
	assert.Equal(t, 1, rep.Players["p1"].TotalHands)
}

func TestStatsCmdDedupesBeforeLoading(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(sessionCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte(sessionCSV), 0o644))
	reportPath := filepath.Join(t.TempDir(), "report.json")

	cmd := StatsCmd{
		Logs:    dir,
		Filter:  "1",
		JSON:    reportPath,
		Workers: 1,
	}
	require.NoError(t, cmd.Run())

	// The duplicate file is removed, so the hand is counted once.
	assert.NoFileExists(t, filepath.Join(dir, "b.csv"))
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, 1, rep.TotalHands)
	assert.Equal(t, 1, rep.Players["p1"].TotalHands)
}

func TestDedupeCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(sessionCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte(sessionCSV), 0o644))

	cmd := DedupeCmd{Logs: dir}
	require.NoError(t, cmd.Run())
	assert.FileExists(t, filepath.Join(dir, "a.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "b.csv"))
}
