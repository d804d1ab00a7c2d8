package anki

import (
	"fmt"
	"os"
	"strings"
)

var exampleWords = []string{
	"Haus", "Katze", "Hund", "Wasser", "Brot",
	"Schule", "Arbeit", "Familie", "Freund", "Stadt",
}

// WriteExampleWordList writes a starter word-list file showing the expected
// format: one word per line, '#' comments allowed.
func WriteExampleWordList(path string) error {
	var b strings.Builder
	b.WriteString("# German Word List\n")
	b.WriteString("# One word per line\n")
	b.WriteString("# Lines starting with # are comments\n")
	b.WriteString("\n")
	for _, word := range exampleWords {
		b.WriteString(word)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write example word list: %w", err)
	}
	return nil
}
