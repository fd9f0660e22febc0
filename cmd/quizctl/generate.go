package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mind-engage/showquiz/internal/bank"
	"github.com/mind-engage/showquiz/internal/quiz"
	"github.com/mind-engage/showquiz/internal/synth"
)

const previewCount = 5

var (
	genEpisodes string
	genDriver   string
	genDSN      string
	genSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize the question bank from the episode dataset",
	Long: `Generate multiple-choice questions from the episode dataset and
overwrite the question bank with the new batch.

Examples:
  quizctl generate
  quizctl generate --episodes data/episodes.json --seed 42
  quizctl generate --driver sqlite --dsn "file:quiz.db"`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genEpisodes, "episodes", cfg.EpisodesPath, "episode dataset to read")
	generateCmd.Flags().StringVar(&genDriver, "driver", cfg.BankDriver, "bank driver: file|sqlite|postgres")
	generateCmd.Flags().StringVar(&genDSN, "dsn", cfg.BankDSN, "bank path (file) or DSN")
	generateCmd.Flags().Int64Var(&genSeed, "seed", cfg.Seed, "random seed, 0 for time-seeded")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	gen := synth.New(quiz.NewRand(genSeed))
	qs, err := gen.FromFile(genEpisodes)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if len(qs) == 0 {
		fmt.Println("No questions generated. Please check your data.")
		return nil
	}

	store, err := bank.Open(cmd.Context(), bank.Driver(genDriver), genDSN)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(cmd.Context(), qs); err != nil {
		return fmt.Errorf("save bank: %w", err)
	}
	fmt.Printf("✓ Saved %d questions (%s bank)\n", len(qs), genDriver)

	renderPreview(os.Stdout, qs, previewCount)
	return nil
}

func renderPreview(w io.Writer, qs []quiz.Question, n int) {
	var (
		titleColor    = lipgloss.Color("#F780FF")
		questionColor = lipgloss.Color("#BD93F9")
		optionColor   = lipgloss.Color("#E9E9F4")
		correctColor  = lipgloss.Color("#50FA7B")
	)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	questionStyle := lipgloss.NewStyle().Foreground(questionColor).Bold(true)
	optionStyle := lipgloss.NewStyle().Foreground(optionColor).PaddingLeft(2)
	correctStyle := optionStyle.Foreground(correctColor)

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Sample Rick and Morty Questions:"))
	for i, q := range qs[:min(n, len(qs))] {
		fmt.Fprintln(w)
		fmt.Fprintln(w, questionStyle.Render(fmt.Sprintf("Q%d: %s", i+1, q.Question)))
		for j, opt := range q.Options {
			label := fmt.Sprintf("%c. %s", 'A'+j, opt)
			if j == q.CorrectIndex {
				fmt.Fprintln(w, correctStyle.Render(label+" ✅"))
				continue
			}
			fmt.Fprintln(w, optionStyle.Render(label))
		}
	}
}
