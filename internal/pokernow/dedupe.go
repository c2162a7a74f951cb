package pokernow

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// RemoveDuplicates deletes files in dir whose content digest was already
// seen on an earlier file, keeping the first of each group, and returns the
// number removed. The digest is MD5 over file content; this is duplicate
// detection, not integrity protection.
func RemoveDuplicates(dir string, logger *log.Logger) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading log directory: %w", err)
	}

	seen := make(map[string]string)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		digest, err := fileDigest(path)
		if err != nil {
			return removed, fmt.Errorf("hashing %s: %w", entry.Name(), err)
		}
		original, dup := seen[digest]
		if !dup {
			seen[digest] = entry.Name()
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing duplicate %s: %w", entry.Name(), err)
		}
		logger.Info("removed duplicate log file", "file", entry.Name(), "duplicate_of", original)
		removed++
	}
	return removed, nil
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := md5.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
