package frequency

import "sort"

// Entry is one ranked row of a frequency table
type Entry struct {
	Token string
	Count int
}

// Table accumulates token counts while remembering the order in which each
// token was first seen. Once the corpus has been consumed it is read-only.
type Table struct {
	counts    map[string]int
	firstSeen map[string]int
	next      int
}

// NewTable creates an empty frequency table
func NewTable() *Table {
	return &Table{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
}

// Add records one occurrence of token
func (t *Table) Add(token string) {
	if _, seen := t.counts[token]; !seen {
		t.firstSeen[token] = t.next
		t.next++
	}
	t.counts[token]++
}

// AddAll records one occurrence of every token in order
func (t *Table) AddAll(tokens []string) {
	for _, token := range tokens {
		t.Add(token)
	}
}

// Len returns the number of distinct tokens
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the sum of all occurrence counts
func (t *Table) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

// Count returns the occurrence count for token, zero if absent
func (t *Table) Count(token string) int {
	return t.counts[token]
}

// HapaxCount returns the number of tokens occurring exactly once
func (t *Table) HapaxCount() int {
	hapax := 0
	for _, count := range t.counts {
		if count == 1 {
			hapax++
		}
	}
	return hapax
}

// Entries returns all rows in the table's total order: descending count,
// ties broken by first appearance in the corpus. The result is a fresh
// slice; repeated calls on the same table yield identical orderings.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for token, count := range t.counts {
		entries = append(entries, Entry{Token: token, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return t.firstSeen[entries[i].Token] < t.firstSeen[entries[j].Token]
	})
	return entries
}

// TopN returns the first n entries by the table's total order. If n exceeds
// the table size (or is negative), all entries are returned.
func (t *Table) TopN(n int) []Entry {
	entries := t.Entries()
	if n < 0 || n > len(entries) {
		return entries
	}
	return entries[:n]
}
