package synth

import (
	"fmt"
	"strings"

	"github.com/mind-engage/showquiz/internal/episode"
	"github.com/mind-engage/showquiz/internal/quiz"
)

// MainFamily is the roster asked about in relationship questions.
var MainFamily = []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Jerry Smith", "Beth Smith"}

var relationships = map[string]string{
	"Rick Sanchez": "Grandfather",
	"Morty Smith":  "Grandson",
	"Summer Smith": "Granddaughter",
	"Jerry Smith":  "Father",
	"Beth Smith":   "Mother",
}

// RelationshipLabels is the distractor vocabulary for relationship questions.
var RelationshipLabels = []string{
	"Grandfather", "Grandson", "Daughter", "Father", "Mother",
	"Sister", "Brother", "Uncle", "Aunt", "Cousin", "Friend", "Neighbor",
}

// Relationship returns a character's relation to the main family, "Friend" if unknown.
func Relationship(name string) string {
	if r, ok := relationships[name]; ok {
		return r
	}
	return "Friend"
}

func (g *Generator) CharacterQuestions(eps []episode.Episode) []quiz.Question {
	var lists [][]string
	for _, ep := range eps {
		lists = append(lists, ep.Characters)
	}
	all := sortedUnion(lists...)

	var out []quiz.Question
	for _, ep := range eps {
		if len(ep.Characters) <= 1 {
			continue
		}
		character := g.pick(ep.Characters)
		out = append(out, g.build(
			quiz.TypeCharacterEpisode,
			fmt.Sprintf("Which character appears in the %s episode '%s'?", Show, ep.Title),
			character,
			g.distractors(all, character),
		))
	}

	known := make(map[string]bool, len(all))
	for _, c := range all {
		known[c] = true
	}
	for _, name := range MainFamily {
		if !known[name] {
			continue
		}
		out = append(out, g.RelationshipQuestion(name))
	}
	return out
}

// RelationshipQuestion asks how name relates to the main family.
func (g *Generator) RelationshipQuestion(name string) quiz.Question {
	first := name
	if f := strings.Fields(name); len(f) > 0 {
		first = f[0]
	}
	rel := Relationship(name)
	return g.build(
		quiz.TypeCharacterRelationship,
		fmt.Sprintf("What is %s's relationship to the main family in %s?", first, Show),
		rel,
		g.distractors(RelationshipLabels, rel),
	)
}
