package synth

import "github.com/mind-engage/showquiz/internal/quiz"

type TriviaFact struct {
	Question    string
	Answer      string
	Distractors []string
}

var Trivia = []TriviaFact{
	{
		Question:    "What does 'Wubba lubba dub dub' mean in Bird Person language?",
		Answer:      "I am in great pain, please help me",
		Distractors: []string{"Hello, how are you?", "Let's go on an adventure", "I love you too"},
	},
	{
		Question:    "What is the name of Rick's spaceship AI?",
		Answer:      "Ship",
		Distractors: []string{"JARVIS", "HAL", "Computer"},
	},
	{
		Question:    "What dimension do Rick and Morty originally come from?",
		Answer:      "C-137",
		Distractors: []string{"C-132", "J19-Zeta-7", "35-C"},
	},
	{
		Question:    "What is Jerry's job in the early seasons?",
		Answer:      "Unemployed",
		Distractors: []string{"Teacher", "Salesman", "Doctor"},
	},
	{
		Question:    "What does Rick turn himself into to avoid family therapy?",
		Answer:      "A pickle",
		Distractors: []string{"A rat", "A bird", "A robot"},
	},
	{
		Question:    "What is the name of the alien parasite that says 'Ooh wee!'?",
		Answer:      "Mr. Poopybutthole",
		Distractors: []string{"Mr. Meeseeks", "Squanch", "Birdperson"},
	},
}

// TriviaQuestions turns each built-in fact into one question with its own distractors.
func (g *Generator) TriviaQuestions() []quiz.Question {
	out := make([]quiz.Question, 0, len(Trivia))
	for _, f := range Trivia {
		ds := distinctExcluding(f.Distractors, f.Answer)
		if len(ds) > maxDistractors {
			ds = ds[:maxDistractors]
		}
		out = append(out, g.build(quiz.TypeTrivia, f.Question, f.Answer, ds))
	}
	return out
}
