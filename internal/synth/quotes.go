package synth

import (
	"fmt"

	"github.com/mind-engage/showquiz/internal/episode"
	"github.com/mind-engage/showquiz/internal/quiz"
)

type FamousQuote struct {
	Quote     string
	Character string
}

var FamousQuotes = []FamousQuote{
	{Quote: "Wubba lubba dub dub!", Character: "Rick Sanchez"},
	{Quote: "I'm Pickle Rick!", Character: "Rick Sanchez"},
	{Quote: "Nobody exists on purpose, nobody belongs anywhere, everybody's gonna die.", Character: "Morty Smith"},
	{Quote: "That's slavery with extra steps!", Character: "Rick Sanchez"},
}

// QuoteSpeakers is the distractor vocabulary for famous-quote questions.
var QuoteSpeakers = []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Jerry Smith", "Beth Smith", "Mr. Meeseeks"}

func (g *Generator) QuoteQuestions(eps []episode.Episode) []quiz.Question {
	var out []quiz.Question
	for i, ep := range eps {
		if len(ep.Quotes) == 0 {
			continue
		}
		var otherTitles []string
		for j, o := range eps {
			if j != i && o.Title != "" {
				otherTitles = append(otherTitles, o.Title)
			}
		}
		out = append(out, g.build(
			quiz.TypeQuoteEpisode,
			fmt.Sprintf("Which %s episode features the quote: '%s'?", Show, g.pick(ep.Quotes)),
			ep.Title,
			g.distractors(otherTitles, ep.Title),
		))
	}

	for _, fq := range FamousQuotes {
		out = append(out, g.build(
			quiz.TypeQuoteCharacter,
			fmt.Sprintf("Who says the famous line: '%s'?", fq.Quote),
			fq.Character,
			g.distractors(QuoteSpeakers, fq.Character),
		))
	}
	return out
}
