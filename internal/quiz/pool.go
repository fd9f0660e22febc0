package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"
)

var (
	ErrEmptyPool     = errors.New("no questions available")
	ErrNegativeCount = errors.New("question count must not be negative")
)

// Source is where a pool (re)loads its questions from.
type Source interface {
	Load(ctx context.Context) ([]Question, error)
}

// Snapshot is an immutable view of the loaded questions.
type Snapshot struct {
	questions []Question
	byID      map[string]int
	LoadedAt  time.Time
}

func newSnapshot(qs []Question) *Snapshot {
	s := &Snapshot{
		questions: make([]Question, len(qs)),
		byID:      make(map[string]int, len(qs)),
		LoadedAt:  time.Now(),
	}
	copy(s.questions, qs)
	for i, q := range s.questions {
		key := strconv.Itoa(q.ID)
		// first record wins on duplicate ids
		if _, dup := s.byID[key]; !dup {
			s.byID[key] = i
		}
	}
	return s
}

func (s *Snapshot) Len() int { return len(s.questions) }

// All returns a copy of every question, answer keys included.
func (s *Snapshot) All() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Lookup finds a question by its id in string form.
func (s *Snapshot) Lookup(id string) (Question, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Question{}, false
	}
	return s.questions[i], true
}

// Sample draws up to k questions without replacement and strips their answer keys.
func (s *Snapshot) Sample(r *rand.Rand, k int) ([]PublicQuestion, error) {
	if k < 0 {
		return nil, ErrNegativeCount
	}
	if len(s.questions) == 0 {
		return nil, ErrEmptyPool
	}
	idx := SampleIndexes(r, len(s.questions), k)
	out := make([]PublicQuestion, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.questions[i].Public())
	}
	return out, nil
}

type Stats struct {
	TotalQuestions int            `json:"total_questions"`
	QuestionTypes  map[string]int `json:"question_types"`
}

func (s *Snapshot) Stats() Stats {
	st := Stats{TotalQuestions: len(s.questions), QuestionTypes: map[string]int{}}
	for _, q := range s.questions {
		t := string(q.Type)
		if t == "" {
			t = "unknown"
		}
		st.QuestionTypes[t]++
	}
	return st
}

// Pool owns the current snapshot. Reloads replace it in one atomic swap,
// so readers never observe a partially loaded list.
type Pool struct {
	cur  atomic.Pointer[Snapshot]
	rand *rand.Rand
}

func NewPool(r *rand.Rand) *Pool {
	if r == nil {
		r = NewRand(0)
	}
	p := &Pool{rand: r}
	p.cur.Store(newSnapshot(nil))
	return p
}

func (p *Pool) Snapshot() *Snapshot { return p.cur.Load() }

// Swap installs qs as the new snapshot.
func (p *Pool) Swap(qs []Question) *Snapshot {
	s := newSnapshot(qs)
	p.cur.Store(s)
	return s
}

// Sample draws from the current snapshot with the pool's generator.
func (p *Pool) Sample(k int) ([]PublicQuestion, error) {
	return p.Snapshot().Sample(p.rand, k)
}

// Reload pulls a fresh list from src. On failure the previous snapshot stays in place.
func (p *Pool) Reload(ctx context.Context, src Source) (int, error) {
	qs, err := src.Load(ctx)
	if err != nil {
		return p.Snapshot().Len(), fmt.Errorf("reload pool: %w", err)
	}
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			log.Printf("[POOL] %v", err)
		}
	}
	s := p.Swap(qs)
	log.Printf("[POOL] loaded %d questions at %s", s.Len(), s.LoadedAt.Format(time.RFC3339))
	return s.Len(), nil
}
