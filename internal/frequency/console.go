package frequency

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

// RenderSummary renders the analysis summary and a top-n listing with bars
// for the terminal.
func RenderSummary(table *Table, n int) string {
	s := Summarize(table)
	var b strings.Builder

	b.WriteString(titleStyle.Render("German Word Frequency Analysis"))
	b.WriteString("\n\n")
	writeStat(&b, "Total word occurrences", fmt.Sprintf("%d", s.TotalOccurrences))
	writeStat(&b, "Unique words", fmt.Sprintf("%d", s.UniqueTokens))

	if s.UniqueTokens == 0 {
		return b.String()
	}

	writeStat(&b, "Average frequency", fmt.Sprintf("%.2f", s.AverageFrequency))
	writeStat(&b, "Most frequent word",
		fmt.Sprintf("'%s' (%d times)", s.MostFrequent.Token, s.MostFrequent.Count))
	writeStat(&b, "Words appearing only once",
		fmt.Sprintf("%d (%.1f%%)", s.HapaxCount, s.HapaxPercent))

	top := table.TopN(n)
	if len(top) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Top %d Most Frequent Words", len(top))))
	b.WriteString("\n")

	maxCount := top[0].Count
	for i, entry := range top {
		size := int(math.Round(float64(entry.Count) / float64(maxCount) * 30))
		bar := barStyle.Render(strings.Repeat("█", size))
		b.WriteString(fmt.Sprintf("%2d. %-15s %s %d\n", i+1, entry.Token, bar, entry.Count))
	}
	return b.String()
}

func writeStat(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ": "))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
