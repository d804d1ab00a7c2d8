package anki

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Deck header directives understood by Anki's importer
const (
	headerSeparator = "#separator:tab"
	headerHTML      = "#html:true"
)

// WriteDeck writes cards in Anki's tab-separated import format: the two
// header directives followed by one front<TAB>back line per card, in order.
// encoding/csv is deliberately not used here: fronts carry HTML and sound
// markup that a CSV writer would quote.
func WriteDeck(w io.Writer, cards []Card) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, headerSeparator)
	fmt.Fprintln(bw, headerHTML)
	for _, card := range cards {
		fmt.Fprintf(bw, "%s\t%s\n", card.Front, card.Back)
	}
	return bw.Flush()
}

// WriteDeckFile writes the deck to path
func WriteDeckFile(path string, cards []Card) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deck file: %w", err)
	}
	if err := WriteDeck(file, cards); err != nil {
		file.Close()
		return fmt.Errorf("failed to write deck file: %w", err)
	}
	return file.Close()
}
