package frequency

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// barWidth is the character width of the text bar visualization
const barWidth = 50

// Summary holds the aggregate statistics reported alongside the ranked listing
type Summary struct {
	TotalOccurrences int
	UniqueTokens     int
	AverageFrequency float64
	MostFrequent     Entry
	HapaxCount       int
	HapaxPercent     float64
}

// Summarize computes summary statistics for a table. An empty table yields
// all-zero statistics rather than dividing by zero.
func Summarize(table *Table) Summary {
	s := Summary{
		TotalOccurrences: table.Total(),
		UniqueTokens:     table.Len(),
		HapaxCount:       table.HapaxCount(),
	}
	if s.UniqueTokens == 0 {
		return s
	}
	s.AverageFrequency = float64(s.TotalOccurrences) / float64(s.UniqueTokens)
	s.HapaxPercent = float64(s.HapaxCount) / float64(s.UniqueTokens) * 100
	s.MostFrequent = table.Entries()[0]
	return s
}

// WriteTextReport writes the plain-text frequency report: summary statistics
// followed by the fully ranked rank/token/count listing.
func WriteTextReport(w io.Writer, table *Table) error {
	bw := bufio.NewWriter(w)
	s := Summarize(table)

	fmt.Fprintln(bw, "German Word Frequency Analysis")
	fmt.Fprintln(bw, strings.Repeat("=", 40))
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Total unique words: %d\n", s.UniqueTokens)
	fmt.Fprintf(bw, "Total word occurrences: %d\n", s.TotalOccurrences)
	fmt.Fprintf(bw, "Average frequency: %.2f\n", s.AverageFrequency)
	fmt.Fprintf(bw, "Words appearing only once: %d (%.1f%%)\n", s.HapaxCount, s.HapaxPercent)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Word Frequency (Most to Least Used):")
	fmt.Fprintln(bw, strings.Repeat("-", 40))

	for i, entry := range table.Entries() {
		fmt.Fprintf(bw, "%4d. %-20s : %4d\n", i+1, entry.Token, entry.Count)
	}

	return bw.Flush()
}

// WriteJSON writes the table as a JSON object whose keys appear in the
// table's total order, so the document can be fed back as an ordered word
// source. encoding/json maps would lose the ordering, hence the hand-built
// object.
func WriteJSON(w io.Writer, table *Table) error {
	bw := bufio.NewWriter(w)
	entries := table.Entries()

	if len(entries) == 0 {
		bw.WriteString("{}\n")
		return bw.Flush()
	}

	bw.WriteString("{\n")
	for i, entry := range entries {
		key, err := json.Marshal(entry.Token)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "  %s: %d", key, entry.Count)
		if i < len(entries)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// ReadJSONWords reads a frequency JSON document and returns its tokens in
// document order. Counts are validated but only the ordering is consumed.
func ReadJSONWords(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse frequency JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse frequency JSON: expected object, got %v", tok)
	}

	var words []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse frequency JSON: %w", err)
		}
		word, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse frequency JSON: non-string key %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return nil, fmt.Errorf("failed to parse frequency JSON: bad count for %q: %w", word, err)
		}
		words = append(words, word)
	}
	return words, nil
}

// WriteBarChart writes a text bar visualization of the top n entries. Bar
// length is proportional to the count, scaled to the highest count in the
// selected slice.
func WriteBarChart(w io.Writer, table *Table, n int) error {
	bw := bufio.NewWriter(w)
	top := table.TopN(n)

	fmt.Fprintln(bw, "German Word Frequency Visualization")
	fmt.Fprintln(bw, strings.Repeat("=", 60))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Text-based bar chart (bar length represents frequency):")
	fmt.Fprintln(bw)

	if len(top) > 0 {
		maxCount := top[0].Count
		for _, entry := range top {
			size := int(math.Round(float64(entry.Count) / float64(maxCount) * barWidth))
			bar := strings.Repeat("█", size) + strings.Repeat("░", barWidth-size)
			fmt.Fprintf(bw, "%-15s |%s| %4d\n", entry.Token, bar, entry.Count)
		}
	}

	return bw.Flush()
}

// WriteReportFile writes the plain-text report to path
func WriteReportFile(path string, table *Table) error {
	return writeFile(path, func(w io.Writer) error { return WriteTextReport(w, table) })
}

// WriteJSONFile writes the ordered JSON document to path
func WriteJSONFile(path string, table *Table) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, table) })
}

// WriteBarChartFile writes the bar visualization of the top n entries to path
func WriteBarChartFile(path string, table *Table, n int) error {
	return writeFile(path, func(w io.Writer) error { return WriteBarChart(w, table, n) })
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
