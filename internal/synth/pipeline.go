package synth

import (
	"errors"
	"log"

	"github.com/mind-engage/showquiz/internal/episode"
	"github.com/mind-engage/showquiz/internal/quiz"
)

// FromFile loads the episode dataset at path and generates a batch.
// A missing dataset yields an empty batch rather than an error.
func (g *Generator) FromFile(path string) ([]quiz.Question, error) {
	eps, err := episode.Load(path)
	if err != nil {
		if errors.Is(err, episode.ErrNoDataset) {
			log.Printf("[SYNTH] %v; run the harvester first", err)
			return []quiz.Question{}, nil
		}
		return nil, err
	}
	return g.Generate(eps), nil
}
