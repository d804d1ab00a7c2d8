package processor

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/wortschatz/internal/anki"
	"codeberg.org/snonux/wortschatz/internal/cli"
	"codeberg.org/snonux/wortschatz/internal/corpus"
	"codeberg.org/snonux/wortschatz/internal/frequency"
	"codeberg.org/snonux/wortschatz/internal/textproc"
)

// Report file names written into the output directory
const (
	reportFileName = "german_word_frequency.txt"
	jsonFileName   = "german_word_frequency.json"
	vizFileName    = "german_word_frequency_viz.txt"
)

// Processor handles the main analysis and deck generation logic
type Processor struct {
	flags     *cli.Flags
	stopWords textproc.StopWordSet
}

// NewProcessor creates a new processor. A stop-word file configured via flag
// or config replaces the built-in German set for the whole run.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	stopWordFile := flags.StopWordFile
	if stopWordFile == "" {
		stopWordFile = cli.GetStopWordFile()
	}

	stopWords := textproc.DefaultGermanStopWords()
	if stopWordFile != "" {
		loaded, err := textproc.LoadStopWordFile(stopWordFile)
		if err != nil {
			return nil, err
		}
		stopWords = loaded
	}

	return &Processor{flags: flags, stopWords: stopWords}, nil
}

// AnalyzeExport runs the full pipeline over a deck export: every entry's
// front field is normalized, tokenized and filtered in a single pass, and
// the surviving tokens are accumulated into a frequency table.
func (p *Processor) AnalyzeExport(path string) (*frequency.Table, error) {
	entries, err := corpus.ReadExport(path)
	if err != nil {
		return nil, err
	}

	table := frequency.NewTable()
	occurrences := 0
	for _, entry := range entries {
		tokens := textproc.FilterTokens(
			textproc.Tokenize(textproc.Normalize(entry.Front)), p.stopWords)
		table.AddAll(tokens)
		occurrences += len(tokens)
	}

	fmt.Printf("Extracted %d word occurrences from %d cards\n", occurrences, len(entries))
	return table, nil
}

// WriteReports writes the text report, the ordered JSON document and the bar
// visualization into the output directory.
func (p *Processor) WriteReports(table *frequency.Table) error {
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	reportPath := filepath.Join(p.flags.OutputDir, reportFileName)
	if err := frequency.WriteReportFile(reportPath, table); err != nil {
		return err
	}
	fmt.Printf("Detailed frequency list saved to: %s\n", reportPath)

	jsonPath := filepath.Join(p.flags.OutputDir, jsonFileName)
	if err := frequency.WriteJSONFile(jsonPath, table); err != nil {
		return err
	}
	fmt.Printf("JSON data saved to: %s\n", jsonPath)

	vizPath := filepath.Join(p.flags.OutputDir, vizFileName)
	if err := frequency.WriteBarChartFile(vizPath, table, p.flags.TopN); err != nil {
		return err
	}
	fmt.Printf("Text visualization saved to: %s\n", vizPath)

	return nil
}

// PrintSummary prints the styled analysis summary to stdout
func (p *Processor) PrintSummary(table *frequency.Table) {
	topN := p.flags.TopN
	if topN > 20 {
		topN = 20
	}
	fmt.Println()
	fmt.Print(frequency.RenderSummary(table, topN))
}

// GenerateDeckFromTable builds a deck from the top-N words of a frequency table
func (p *Processor) GenerateDeckFromTable(table *frequency.Table) error {
	top := table.TopN(p.flags.TopN)
	words := make([]string, len(top))
	for i, entry := range top {
		words[i] = entry.Token
	}
	return p.generateDeck(words)
}

// GenerateDeckFromWordLists builds a deck from one or more word-list files,
// merged with order-preserving de-duplication.
func (p *Processor) GenerateDeckFromWordLists(paths []string) error {
	words, err := anki.MergeWordLists(paths)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d unique words from %d word list(s)\n", len(words), len(paths))
	return p.generateDeck(words)
}

// GenerateDeckFromFrequencyJSON builds a deck from a saved frequency JSON
// report, taking the first top-N words in document order.
func (p *Processor) GenerateDeckFromFrequencyJSON(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open frequency JSON: %w", err)
	}
	defer file.Close()

	words, err := frequency.ReadJSONWords(file)
	if err != nil {
		return err
	}
	if p.flags.TopN >= 0 && p.flags.TopN < len(words) {
		words = words[:p.flags.TopN]
	}
	return p.generateDeck(words)
}

func (p *Processor) generateDeck(words []string) error {
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cardType, known := anki.ParseCardType(p.flags.CardType)
	if !known {
		fmt.Fprintf(os.Stderr, "Warning: unknown card type '%s', using '%s'\n",
			p.flags.CardType, cardType)
	}

	options := anki.DefaultSynthesizerOptions()
	options.CardType = cardType
	options.IncludePhrases = p.flags.IncludePhrases
	synth := anki.NewSynthesizer(options)
	cards := synth.Cards(words)

	deckPath := filepath.Join(p.flags.OutputDir, p.flags.DeckFile)
	if err := anki.WriteDeckFile(deckPath, cards); err != nil {
		return err
	}

	fmt.Printf("Generated %d cards from %d words\n", len(cards), len(words))
	fmt.Printf("Anki deck saved to: %s\n", deckPath)
	return nil
}
