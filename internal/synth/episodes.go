package synth

import (
	"fmt"

	"github.com/mind-engage/showquiz/internal/episode"
	"github.com/mind-engage/showquiz/internal/quiz"
)

const plotExcerptLen = 100

// EpisodeQuestions emits a summary question and an identification question
// for every episode whose summary is long enough.
func (g *Generator) EpisodeQuestions(eps []episode.Episode) []quiz.Question {
	var out []quiz.Question
	for i, ep := range eps {
		if !ep.HasSummary() {
			continue
		}

		var otherSummaries, otherTitles []string
		for j, o := range eps {
			if j == i {
				continue
			}
			if o.Summary != "" {
				otherSummaries = append(otherSummaries, o.Summary)
			}
			if o.Title != "" {
				otherTitles = append(otherTitles, o.Title)
			}
		}

		out = append(out, g.build(
			quiz.TypeEpisodeSummary,
			fmt.Sprintf("What happens in the %s episode '%s'?", Show, ep.Title),
			ep.Summary,
			g.distractors(otherSummaries, ep.Summary),
		))
		out = append(out, g.build(
			quiz.TypeEpisodeIdentification,
			fmt.Sprintf("Which %s episode features this plot: '%s...'?", Show, truncateRunes(ep.Summary, plotExcerptLen)),
			ep.Title,
			g.distractors(otherTitles, ep.Title),
		))
	}
	return out
}
