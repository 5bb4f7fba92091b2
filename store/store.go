package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const assetsEnv = "TICKETDESK_ASSETS"

// DefaultAssetDir resolves the data directory: $TICKETDESK_ASSETS when
// set, the local assets directory otherwise.
func DefaultAssetDir() string {
	if dir := strings.TrimSpace(os.Getenv(assetsEnv)); dir != "" {
		return dir
	}
	return "assets"
}

// ReadLines reads a whole text file into lines. A missing file aborts
// the caller's load sequence; no partial state is used.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s (No such file or directory)", path)
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// AppendLine appends one record to a ledger-style file, creating the
// file when absent.
func AppendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	return err
}

// VenueName derives a template name from the venue_<name>.<ext> file
// naming convention; files outside the convention keep their bare name.
func VenueName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if name, ok := strings.CutPrefix(base, "venue_"); ok && name != "" {
		return name
	}
	return base
}
