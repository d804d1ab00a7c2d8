// Package corpus reads Anki deck export files. An export is UTF-8 text where
// lines starting with '#' are header directives, blank lines are ignored,
// and every other line holds at least two tab-separated fields with the
// German text in the first field.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one usable line of a deck export
type Entry struct {
	// Front holds the raw German field, markup included
	Front string
}

// ReadExport reads a deck export file and returns its entries in file order.
// Comment lines, blank lines and lines with fewer than two tab-separated
// fields are skipped, not reported as errors.
func ReadExport(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck export: %w", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	// Some exports carry long lines with embedded HTML
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		entries = append(entries, Entry{Front: fields[0]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck export: %w", err)
	}
	return entries, nil
}
