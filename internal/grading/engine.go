package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/mind-engage/showquiz/internal/quiz"
)

var ErrNoAnswers = errors.New("no answers provided")

// Lookup resolves a stored question by its id in string form.
type Lookup interface {
	Lookup(id string) (quiz.Question, bool)
}

// Result is the outcome of grading a single submitted answer.
type Result struct {
	QuestionID        string          `json:"question_id"`
	Question          string          `json:"question"`
	UserAnswer        json.RawMessage `json:"user_answer"`
	CorrectAnswer     int             `json:"correct_answer"`
	CorrectAnswerText string          `json:"correct_answer_text"`
	IsCorrect         bool            `json:"is_correct"`
}

type Score struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Report struct {
	Results []Result `json:"results"`
	Score   Score    `json:"score"`
}

// Engine options

type Option func(*config)

type config struct {
	AcceptOptionText bool // match a submitted string against option text
	FoldCase         bool // case/punctuation-insensitive option text match
}

func WithOptionText(b bool) Option  { return func(c *config) { c.AcceptOptionText = b } }
func WithCaseFolding(b bool) Option { return func(c *config) { c.FoldCase = b } }

// Grader scores answer maps against the stored answer keys.
type Grader struct {
	cfg config
}

func NewGrader(opts ...Option) *Grader {
	cfg := config{AcceptOptionText: true}
	for _, o := range opts {
		o(&cfg)
	}
	return &Grader{cfg: cfg}
}

// Grade scores answers (question id -> submitted index or option text).
// Ids with no stored question are dropped. Results are ordered by id.
func (g *Grader) Grade(ctx context.Context, pool Lookup, answers map[string]json.RawMessage) (Report, error) {
	if len(answers) == 0 {
		return Report{}, ErrNoAnswers
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })

	rep := Report{Results: []Result{}}
	for _, id := range ids {
		q, ok := pool.Lookup(id)
		if !ok {
			continue
		}
		raw := answers[id]
		idx, ok := g.ResolveIndex(raw, q.Options)
		res := Result{
			QuestionID:    id,
			Question:      q.Question,
			UserAnswer:    raw,
			CorrectAnswer: q.CorrectIndex,
			IsCorrect:     ok && idx == q.CorrectIndex,
		}
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			res.CorrectAnswerText = q.Options[q.CorrectIndex]
		}
		if res.IsCorrect {
			rep.Score.Correct++
		}
		rep.Results = append(rep.Results, res)
	}
	rep.Score.Total = len(rep.Results)
	rep.Score.Percentage = Percentage(rep.Score.Correct, rep.Score.Total)
	return rep, nil
}

// ResolveIndex normalizes a submitted value to an option index.
// Integers (as JSON numbers or numeric strings) are taken as indexes;
// other strings are matched against option text when enabled.
func (g *Grader) ResolveIndex(raw json.RawMessage, options []string) (int, bool) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	switch t := v.(type) {
	case json.Number:
		return parseIndex(t.String())
	case string:
		if i, ok := parseIndex(t); ok {
			return i, true
		}
		if !g.cfg.AcceptOptionText {
			return 0, false
		}
		return matchOption(t, options, g.cfg.FoldCase)
	default:
		return 0, false
	}
}

// Percentage returns correct/total*100 rounded to 2 decimals, 0 for no answers.
func Percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}

func lessID(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return a < b
}
