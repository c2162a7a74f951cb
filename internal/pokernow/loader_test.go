package pokernow

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirReversesRowsPerFile(t *testing.T) {
	dir := t.TempDir()
	// PokerNow exports newest-first: the "-- ending" row comes before the
	// "-- starting" row in the file.
	writeFile(t, dir, "session1.csv",
		"entry,at,order\n"+
			"\"-- ending hand #1 --\",t3,3\n"+
			"\"\"\"alice @ a1\"\" folds\",t2,2\n"+
			"\"-- starting hand #1 --\",t1,1\n")

	lines, err := LoadDir(dir, discardLogger(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-- starting hand #1 --",
		`"alice @ a1" folds`,
		"-- ending hand #1 --",
	}, lines)
}

func TestLoadDirConcatenatesFilesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "entry\nsecond\n")
	writeFile(t, dir, "a.csv", "entry\nfirst\n")

	ticks := 0
	lines, err := LoadDir(dir, discardLogger(), func() { ticks++ })
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, lines)
	assert.Equal(t, 2, ticks)
}

func TestLoadDirSkipsFilesWithoutEntryColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.csv", "timestamp,comment\nt1,hello\n")
	writeFile(t, dir, "session.csv", "entry\nonly line\n")

	lines, err := LoadDir(dir, discardLogger(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"only line"}, lines)
}

func TestLoadDirIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	writeFile(t, dir, "session.csv", "entry\nline\n")

	lines, err := LoadDir(dir, discardLogger(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"line"}, lines)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"), discardLogger(), nil)
	assert.Error(t, err)
}

func TestLoadDirEntryColumnNotFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "session.csv",
		"at,entry\n"+
			"t2,newer\n"+
			"t1,older\n")

	lines, err := LoadDir(dir, discardLogger(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"older", "newer"}, lines)
}
