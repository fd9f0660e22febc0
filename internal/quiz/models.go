package quiz

import (
	"errors"
	"fmt"
)

type Type string

const (
	TypeEpisodeSummary        Type = "episode_summary"
	TypeEpisodeIdentification Type = "episode_identification"
	TypeCharacterEpisode      Type = "character_episode"
	TypeCharacterRelationship Type = "character_relationship"
	TypeQuoteEpisode          Type = "quote_episode"
	TypeQuoteCharacter        Type = "quote_character"
	TypeTrivia                Type = "trivia"
)

// MaxOptions caps the candidate answers per question: 1 correct + 3 distractors.
const MaxOptions = 4

// Question is a synthesized multiple-choice item including its answer key.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Type          Type     `json:"type"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	CorrectAnswer string   `json:"correct_answer"`
}

// PublicQuestion is what clients see while taking a quiz: no answer key.
type PublicQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Type     Type     `json:"type"`
}

func (q Question) Public() PublicQuestion {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return PublicQuestion{ID: q.ID, Question: q.Question, Options: opts, Type: q.Type}
}

var ErrInvalidQuestion = errors.New("invalid question")

// Validate checks the answer-key invariants of a single record.
func (q Question) Validate() error {
	switch {
	case len(q.Options) == 0 || len(q.Options) > MaxOptions:
		return fmt.Errorf("%w %d: %d options", ErrInvalidQuestion, q.ID, len(q.Options))
	case q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options):
		return fmt.Errorf("%w %d: correct_index %d out of range", ErrInvalidQuestion, q.ID, q.CorrectIndex)
	case q.Options[q.CorrectIndex] != q.CorrectAnswer:
		return fmt.Errorf("%w %d: correct_answer does not match options[%d]", ErrInvalidQuestion, q.ID, q.CorrectIndex)
	}
	return nil
}
