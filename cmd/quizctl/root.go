package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/showquiz/internal/config"
)

// cfg is read once before flags are registered so env values become flag defaults.
var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:   "quizctl",
	Short: "quizctl - Rick and Morty trivia pipeline",
	Long: `quizctl builds the question bank served by quizd.

  quizctl harvest    scrape episode facts into the episode dataset
  quizctl generate   synthesize multiple-choice questions from that dataset`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
