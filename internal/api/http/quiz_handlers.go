package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mind-engage/showquiz/internal/grading"
	"github.com/mind-engage/showquiz/internal/quiz"
)

const serviceName = "Mort and Ricky Quiz API"

const detailNoQuestions = "No questions available"

type submitReq struct {
	Answers map[string]json.RawMessage `json:"answers" validate:"required,min=1"`
}

// GET /
func RootHandler(pool *quiz.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":         serviceName,
			"total_questions": pool.Snapshot().Len(),
		})
	}
}

// GET /api/questions
func ListQuestionsHandler(pool *quiz.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := pool.Snapshot()
		if snap.Len() == 0 {
			writeDetail(w, http.StatusNotFound, detailNoQuestions)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"questions": snap.All(),
			"total":     snap.Len(),
		})
	}
}

// GET /api/quiz/{numQuestions}
func QuizHandler(pool *quiz.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "numQuestions")))
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "num_questions must be an integer")
			return
		}
		qs, err := pool.Sample(n)
		switch {
		case errors.Is(err, quiz.ErrEmptyPool):
			writeDetail(w, http.StatusNotFound, detailNoQuestions)
			return
		case errors.Is(err, quiz.ErrNegativeCount):
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"questions": qs,
			"total":     len(qs),
		})
	}
}

// POST /api/submit-quiz
func SubmitQuizHandler(pool *quiz.Pool, grader *grading.Grader, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			writeDetail(w, http.StatusBadRequest, "No answers provided")
			return
		}
		rep, err := grader.Grade(r.Context(), pool.Snapshot(), req.Answers)
		if errors.Is(err, grading.ErrNoAnswers) {
			writeDetail(w, http.StatusBadRequest, "No answers provided")
			return
		}
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

// GET /api/stats
func StatsHandler(pool *quiz.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pool.Snapshot().Stats())
	}
}
