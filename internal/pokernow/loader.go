// Package pokernow handles acquisition of PokerNow table logs: discovering
// CSV exports in a directory, extracting their log lines, and pruning
// duplicate files.
package pokernow

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// entryColumn is the CSV column holding the raw log lines.
const entryColumn = "entry"

// LoadDir reads every PokerNow CSV export in dir and returns the
// concatenated log lines. PokerNow exports rows newest-first, so each file's
// entries are appended in reverse row order to restore chronological order.
// Files are visited in lexical name order and simply concatenated; no
// cross-file timestamp merge is attempted. Files without an entry column
// are skipped with a warning. tick, if non-nil, is called once per loaded
// file for progress reporting.
func LoadDir(dir string, logger *log.Logger, tick func()) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading log directory: %w", err)
	}

	var lines []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileLines, ok, err := readEntries(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		if !ok {
			logger.Warn("skipping file without entry column", "file", entry.Name())
			continue
		}
		logger.Debug("loaded log file", "file", entry.Name(), "lines", len(fileLines))
		lines = append(lines, fileLines...)
		if tick != nil {
			tick()
		}
	}
	return lines, nil
}

// readEntries extracts the entry column of one CSV export, oldest row first.
// ok is false when the file has no entry column.
func readEntries(path string) (lines []string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, nil
	}

	col := -1
	for i, name := range records[0] {
		if name == entryColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, false, nil
	}

	lines = make([]string, 0, len(records)-1)
	for i := len(records) - 1; i >= 1; i-- {
		if col < len(records[i]) {
			lines = append(lines, records[i][col])
		}
	}
	return lines, true, nil
}
