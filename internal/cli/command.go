package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wortschatz/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wortschatz [deck-export]",
		Short: "German Vocabulary Frequency Analyzer",
		Long: `wortschatz extracts vocabulary from an Anki deck export, ranks the
German words by frequency (stop words excluded), and can build a new
flashcard deck from the top-ranked words.

Examples:
  wortschatz export.txt                       # Analyze a deck export
  wortschatz export.txt --generate-deck       # Analyze and emit a new deck
  wortschatz --word-list words.txt            # Build a deck from a word list
  wortschatz --frequency-json freq.json       # Build a deck from a saved report`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wortschatz.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for reports and decks")
	cmd.Flags().IntVar(&flags.TopN, "top-n", flags.TopN, "Number of top words for visualizations and deck generation")
	cmd.Flags().StringVar(&flags.StopWordFile, "stopword-file", "", "Replace the built-in German stop-word set (one word per line)")
	cmd.Flags().BoolVar(&flags.GenerateDeck, "generate-deck", false, "Generate an Anki deck from the top frequent words after analysis")
	cmd.Flags().StringVar(&flags.DeckFile, "deck-file", flags.DeckFile, "Output deck file name")
	cmd.Flags().StringVar(&flags.CardType, "card-type", flags.CardType, "Card type: plain, word, phrase or question")
	cmd.Flags().BoolVar(&flags.IncludePhrases, "include-phrases", false, "Add practice phrase cards for each word")
	cmd.Flags().StringSliceVar(&flags.WordLists, "word-list", nil, "Build a deck from word-list file(s), one word per line (repeatable)")
	cmd.Flags().StringVar(&flags.FrequencyJSON, "frequency-json", "", "Build a deck from a frequency JSON report")
	cmd.Flags().BoolVar(&flags.CreateExample, "create-example", false, "Create an example word list file and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("analysis.top_n", cmd.Flags().Lookup("top-n"))
	viper.BindPFlag("analysis.stopword_file", cmd.Flags().Lookup("stopword-file"))
	viper.BindPFlag("deck.card_type", cmd.Flags().Lookup("card-type"))
	viper.BindPFlag("deck.include_phrases", cmd.Flags().Lookup("include-phrases"))
	viper.BindPFlag("deck.file", cmd.Flags().Lookup("deck-file"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wortschatz" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wortschatz")
	}

	// Environment variables
	viper.SetEnvPrefix("WORTSCHATZ")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetStopWordFile returns the configured stop-word file path, if any
func GetStopWordFile() string {
	return viper.GetString("analysis.stopword_file")
}
