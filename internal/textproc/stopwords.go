package textproc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// StopWordSet is a read-only set of function words excluded from frequency
// ranking. It is loaded once per run and safe to share between readers.
type StopWordSet map[string]struct{}

// NewStopWordSet builds a set from the given words, lower-casing each entry
func NewStopWordSet(words ...string) StopWordSet {
	set := make(StopWordSet, len(words))
	for _, w := range words {
		w = strings.TrimSpace(LowerGerman(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the lower-cased form of word is in the set
func (s StopWordSet) Contains(word string) bool {
	_, ok := s[LowerGerman(word)]
	return ok
}

// LoadStopWordFile reads a replacement stop-word set from a file with one
// word per line. Lines starting with '#' and blank lines are ignored.
func LoadStopWordFile(path string) (StopWordSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop-word file: %w", err)
	}
	defer file.Close()

	set := make(StopWordSet)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[LowerGerman(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop-word file: %w", err)
	}
	return set, nil
}

// FilterTokens returns the tokens that are at least two characters long and
// not members of the stop-word set. Order is preserved.
func FilterTokens(tokens []string, stopWords StopWordSet) []string {
	var filtered []string
	for _, token := range tokens {
		if len([]rune(token)) < 2 {
			continue
		}
		if stopWords.Contains(token) {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}

// DefaultGermanStopWords returns the built-in stop-word set for German:
// articles, pronouns, possessives, common prepositions and conjunctions,
// modal verb forms and high-frequency adverbs.
func DefaultGermanStopWords() StopWordSet {
	return NewStopWordSet(
		// Articles and determiners
		"der", "die", "das", "den", "dem", "des",
		"ein", "eine", "einen", "einem", "einer", "eines",
		"kein", "keine", "keinen", "keinem", "keiner", "keines",

		// Conjunctions and prepositions
		"und", "oder", "aber", "mit", "von", "zu", "in", "auf", "für", "an",

		// Forms of sein, haben, werden
		"ist", "sind", "war", "waren",
		"haben", "hat", "hatte", "hatten",
		"werden", "wird", "wurde", "wurden",

		// Modal verb forms
		"können", "kann", "konnte", "konnten",
		"müssen", "muss", "musste", "mussten",
		"wollen", "will", "wollte", "wollten",
		"sollen", "soll", "sollte", "sollten",
		"dürfen", "darf", "durfte", "durften",
		"mögen", "mag", "mochte", "mochten",

		// Personal pronouns
		"ich", "du", "er", "sie", "es", "wir", "ihr",
		"mir", "mich", "dir", "dich", "ihm", "ihn", "uns", "euch", "ihnen",

		// Possessives
		"mein", "meine", "meinen", "meinem", "meiner",
		"dein", "deine", "deinen", "deinem", "deiner",
		"sein", "seine", "seinen", "seinem", "seiner",
		"ihre", "ihren", "ihrem", "ihrer",
		"unser", "unsere", "unseren", "unserem", "unserer",
		"euer", "eure", "euren", "eurem", "eurer",

		// Indefinite and demonstrative determiners
		"alle", "allem", "allen", "aller", "alles",
		"manche", "manchem", "manchen", "mancher", "manches",
		"viele", "vieler", "vielen", "vieles",
		"wenige", "weniger", "wenigen", "weniges",
		"andere", "anderem", "anderen", "anderer", "anderes",
		"jede", "jedem", "jeden", "jeder", "jedes",
		"jene", "jenem", "jenen", "jener", "jenes",
		"diese", "diesem", "diesen", "dieser", "dieses",
		"solche", "solchem", "solchen", "solcher", "solches",
		"welche", "welchem", "welchen", "welcher", "welches",

		// High-frequency adverbs and particles
		"auch", "nur", "noch", "schon", "erst", "dann", "danach",
		"deshalb", "deswegen", "trotzdem", "jedoch", "obwohl", "falls",
		"während", "sobald", "überall", "nirgends", "irgendwann",
		"manchmal", "oft", "selten", "immer", "nie",
		"vielleicht", "wahrscheinlich", "möglich", "unmöglich",
		"eigentlich", "wirklich", "sogar",
	)
}
