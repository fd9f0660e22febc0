package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mind-engage/showquiz/internal/episode"
	"github.com/mind-engage/showquiz/internal/harvest"
)

var (
	harvestOut     string
	harvestMainURL string
	harvestEpURL   string
	harvestTimeout time.Duration
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Scrape episode facts into the episode dataset",
	Long: `Fetch the show's wiki pages and extract one record per episode.

If the pages cannot be fetched a small built-in dataset is written instead,
so generate always has input to work with.`,
	Args: cobra.NoArgs,
	RunE: runHarvest,
}

func init() {
	rootCmd.AddCommand(harvestCmd)
	harvestCmd.Flags().StringVarP(&harvestOut, "out", "o", cfg.EpisodesPath, "episode dataset to write")
	harvestCmd.Flags().StringVar(&harvestMainURL, "main-url", cfg.HarvestMainURL, "show main page")
	harvestCmd.Flags().StringVar(&harvestEpURL, "episodes-url", cfg.HarvestEpisodesURL, "episode list page")
	harvestCmd.Flags().DurationVar(&harvestTimeout, "timeout", cfg.HarvestTimeout, "per-request timeout")
}

func runHarvest(cmd *cobra.Command, _ []string) error {
	h := harvest.New(harvest.Options{
		MainURL:     harvestMainURL,
		EpisodesURL: harvestEpURL,
		Timeout:     harvestTimeout,
	})
	eps := h.Harvest(cmd.Context())

	if err := episode.Save(harvestOut, eps); err != nil {
		return fmt.Errorf("save episodes: %w", err)
	}
	fmt.Printf("✓ Saved %d episodes to %s\n", len(eps), harvestOut)

	if len(eps) > 0 {
		sample := eps[0]
		fmt.Println("\nSample episode:")
		fmt.Printf("Title: %s\n", sample.Title)
		fmt.Printf("Summary: %s...\n", truncate(sample.Summary, 100))
		fmt.Printf("Characters: %s\n", strings.Join(sample.Characters[:min(3, len(sample.Characters))], ", "))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
