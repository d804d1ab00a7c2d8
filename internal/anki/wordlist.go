package anki

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/wortschatz/internal/textproc"
)

// LoadWordList reads a word-list file with one word per line. Lines starting
// with '#' and blank lines are ignored. Words are lower-cased on load and
// de-duplicated while preserving first-occurrence order.
func LoadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	defer file.Close()

	var words []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		word = textproc.LowerGerman(word)
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// MergeWordLists loads several word-list files and merges them into a single
// de-duplicated list, preserving the order words are first encountered.
func MergeWordLists(paths []string) ([]string, error) {
	var merged []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		words, err := LoadWordList(path)
		if err != nil {
			return nil, err
		}
		for _, word := range words {
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			merged = append(merged, word)
		}
	}
	return merged, nil
}
