package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	OutputDir string

	// Analysis flags
	TopN         int
	StopWordFile string

	// Deck generation flags
	GenerateDeck   bool
	DeckFile       string
	CardType       string
	IncludePhrases bool
	WordLists      []string
	FrequencyJSON  string
	CreateExample  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir: ".",
		TopN:      50,
		DeckFile:  "generated_anki_deck.txt",
		CardType:  "plain",
	}
}
