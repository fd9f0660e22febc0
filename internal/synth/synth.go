// Package synth turns harvested episode records into multiple-choice questions.
package synth

import (
	"log"
	"math/rand/v2"
	"sort"
	"unicode/utf8"

	"github.com/mind-engage/showquiz/internal/episode"
	"github.com/mind-engage/showquiz/internal/quiz"
)

// Show is interpolated into question prompts.
const Show = "Rick and Morty"

const maxDistractors = quiz.MaxOptions - 1

type Generator struct {
	rand *rand.Rand
}

func New(r *rand.Rand) *Generator {
	if r == nil {
		r = quiz.NewRand(0)
	}
	return &Generator{rand: r}
}

// Generate runs every generator, numbers the combined batch 1..N and
// shuffles it once. Shuffling only changes serving order, never ids.
func (g *Generator) Generate(eps []episode.Episode) []quiz.Question {
	if len(eps) == 0 {
		return []quiz.Question{}
	}
	var all []quiz.Question
	for _, part := range [][]quiz.Question{
		g.EpisodeQuestions(eps),
		g.CharacterQuestions(eps),
		g.QuoteQuestions(eps),
		g.TriviaQuestions(),
	} {
		all = append(all, part...)
	}
	for i := range all {
		all[i].ID = i + 1
	}
	g.rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	log.Printf("[SYNTH] generated %d questions from %d episodes", len(all), len(eps))
	return all
}

// build assembles [correct]+distractors, shuffles and relocates the answer.
func (g *Generator) build(t quiz.Type, prompt, correct string, distractors []string) quiz.Question {
	opts := make([]string, 0, 1+len(distractors))
	opts = append(opts, correct)
	opts = append(opts, distractors...)
	g.rand.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return quiz.Question{
		Question:      prompt,
		Type:          t,
		Options:       opts,
		CorrectIndex:  indexOf(opts, correct),
		CorrectAnswer: correct,
	}
}

// distractors samples up to maxDistractors values from pool, excluding correct.
func (g *Generator) distractors(pool []string, correct string) []string {
	candidates := distinctExcluding(pool, correct)
	idx := quiz.SampleIndexes(g.rand, len(candidates), maxDistractors)
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = candidates[j]
	}
	return out
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.IntN(len(values))]
}

func distinctExcluding(pool []string, exclude string) []string {
	seen := map[string]struct{}{exclude: {}}
	out := make([]string, 0, len(pool))
	for _, v := range pool {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sortedUnion(lists ...[]string) []string {
	set := map[string]struct{}{}
	for _, l := range lists {
		for _, v := range l {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func indexOf(arr []string, s string) int {
	for i, v := range arr {
		if v == s {
			return i
		}
	}
	return -1
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
