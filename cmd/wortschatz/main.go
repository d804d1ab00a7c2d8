package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wortschatz/internal/anki"
	"codeberg.org/snonux/wortschatz/internal/cli"
	"codeberg.org/snonux/wortschatz/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --create-example flag
	if flags.CreateExample {
		if err := os.MkdirAll(flags.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(flags.OutputDir, "example_word_list.txt")
		if err := anki.WriteExampleWordList(path); err != nil {
			return err
		}
		fmt.Printf("Example word list created: %s\n", path)
		return nil
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	// Handle deck generation from word lists
	if len(flags.WordLists) > 0 {
		return proc.GenerateDeckFromWordLists(flags.WordLists)
	}

	// Handle deck generation from a saved frequency report
	if flags.FrequencyJSON != "" {
		return proc.GenerateDeckFromFrequencyJSON(flags.FrequencyJSON)
	}

	// No deck export given and nothing else to do
	if len(args) == 0 {
		return cmd.Help()
	}

	// Analyze the deck export
	fmt.Printf("Analyzing German words from: %s\n", args[0])
	table, err := proc.AnalyzeExport(args[0])
	if err != nil {
		return err
	}

	proc.PrintSummary(table)

	if err := proc.WriteReports(table); err != nil {
		return err
	}

	// Generate a new deck from the top frequent words if requested
	if flags.GenerateDeck {
		fmt.Printf("\nGenerating Anki deck from top %d words...\n", flags.TopN)
		if err := proc.GenerateDeckFromTable(table); err != nil {
			return err
		}
	}

	fmt.Printf("\nDone! Results saved to: %s\n", flags.OutputDir)
	return nil
}
