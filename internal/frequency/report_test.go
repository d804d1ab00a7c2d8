package frequency

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func sampleTable() *Table {
	table := NewTable()
	table.AddAll([]string{"haus", "katze", "haus", "hund", "haus", "katze"})
	return table
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleTable())

	if s.TotalOccurrences != 6 {
		t.Errorf("TotalOccurrences = %d, want 6", s.TotalOccurrences)
	}
	if s.UniqueTokens != 3 {
		t.Errorf("UniqueTokens = %d, want 3", s.UniqueTokens)
	}
	if s.AverageFrequency != 2.0 {
		t.Errorf("AverageFrequency = %f, want 2.0", s.AverageFrequency)
	}
	if s.MostFrequent.Token != "haus" || s.MostFrequent.Count != 3 {
		t.Errorf("MostFrequent = %v, want haus/3", s.MostFrequent)
	}
	if s.HapaxCount != 1 {
		t.Errorf("HapaxCount = %d, want 1", s.HapaxCount)
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	s := Summarize(NewTable())

	if s.TotalOccurrences != 0 || s.UniqueTokens != 0 {
		t.Errorf("Expected zero counts, got %+v", s)
	}
	if s.AverageFrequency != 0 || s.HapaxPercent != 0 {
		t.Errorf("Expected zero ratios for empty table, got %+v", s)
	}
}

func TestWriteTextReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTextReport(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteTextReport failed: %v", err)
	}
	report := buf.String()

	wantLines := []string{
		"Total unique words: 3",
		"Total word occurrences: 6",
		"Average frequency: 2.00",
		"Words appearing only once: 1 (33.3%)",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line) {
			t.Errorf("Report missing %q:\n%s", line, report)
		}
	}

	// Ranked listing in table order
	hausIdx := strings.Index(report, "   1. haus")
	katzeIdx := strings.Index(report, "   2. katze")
	hundIdx := strings.Index(report, "   3. hund")
	if hausIdx == -1 || katzeIdx == -1 || hundIdx == -1 {
		t.Fatalf("Report missing ranked listing:\n%s", report)
	}
	if !(hausIdx < katzeIdx && katzeIdx < hundIdx) {
		t.Errorf("Ranked listing out of order:\n%s", report)
	}
}

func TestWriteTextReportEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTextReport(&buf, NewTable()); err != nil {
		t.Fatalf("WriteTextReport failed on empty table: %v", err)
	}
	report := buf.String()

	if !strings.Contains(report, "Total unique words: 0") {
		t.Errorf("Expected zero unique words in report:\n%s", report)
	}
	if !strings.Contains(report, "Average frequency: 0.00") {
		t.Errorf("Expected zero average frequency in report:\n%s", report)
	}
}

func TestWriteJSONOrderAndRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	doc := buf.String()

	// Keys must appear in ranked order
	hausIdx := strings.Index(doc, `"haus"`)
	katzeIdx := strings.Index(doc, `"katze"`)
	hundIdx := strings.Index(doc, `"hund"`)
	if !(hausIdx != -1 && hausIdx < katzeIdx && katzeIdx < hundIdx) {
		t.Errorf("JSON keys out of ranked order:\n%s", doc)
	}

	words, err := ReadJSONWords(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSONWords failed: %v", err)
	}
	want := []string{"haus", "katze", "hund"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("ReadJSONWords = %v, want %v", words, want)
	}
}

func TestWriteJSONUmlautKeys(t *testing.T) {
	table := NewTable()
	table.AddAll([]string{"müll", "straße"})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, table); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	words, err := ReadJSONWords(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadJSONWords failed: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"müll", "straße"}) {
		t.Errorf("Round trip lost umlaut keys: %v", words)
	}
}

func TestWriteJSONEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewTable()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	words, err := ReadJSONWords(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadJSONWords failed on empty document: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Expected no words, got %v", words)
	}
}

func TestWriteBarChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBarChart(&buf, sampleTable(), 3); err != nil {
		t.Fatalf("WriteBarChart failed: %v", err)
	}
	chart := buf.String()

	// The most frequent word fills the whole bar
	if !strings.Contains(chart, strings.Repeat("█", 50)) {
		t.Errorf("Expected a full-width bar for the top word:\n%s", chart)
	}
	// 2/3 of 50 rounds to 33
	wantPartial := strings.Repeat("█", 33) + strings.Repeat("░", 17)
	if !strings.Contains(chart, wantPartial) {
		t.Errorf("Expected a 33-block bar for count 2 of 3:\n%s", chart)
	}
	if !strings.Contains(chart, "haus") || !strings.Contains(chart, "katze") {
		t.Errorf("Chart missing word labels:\n%s", chart)
	}
}

func TestWriteBarChartEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBarChart(&buf, NewTable(), 10); err != nil {
		t.Fatalf("WriteBarChart failed on empty table: %v", err)
	}
	if !strings.Contains(buf.String(), "German Word Frequency Visualization") {
		t.Errorf("Expected header even for empty table:\n%s", buf.String())
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(sampleTable(), 10)

	for _, want := range []string{"haus", "katze", "hund", "Unique words"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmptyTable(t *testing.T) {
	out := RenderSummary(NewTable(), 10)

	if !strings.Contains(out, "Unique words") {
		t.Errorf("Expected summary stats for empty table:\n%s", out)
	}
}

func TestRenderSummarySmallN(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -1},
		{"one", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic on a non-empty table regardless of n
			out := RenderSummary(sampleTable(), tt.n)
			if !strings.Contains(out, "Unique words") {
				t.Errorf("Summary missing stats for n=%d:\n%s", tt.n, out)
			}
		})
	}
}
