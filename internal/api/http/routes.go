package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mind-engage/showquiz/internal/grading"
	"github.com/mind-engage/showquiz/internal/quiz"
)

// Mount registers the quiz API and the health probes on r.
func Mount(r chi.Router, pool *quiz.Pool, grader *grading.Grader) {
	validate := validator.New()

	r.Get("/", RootHandler(pool))
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/questions", ListQuestionsHandler(pool))
		ar.Get("/quiz/{numQuestions}", QuizHandler(pool))
		ar.Post("/submit-quiz", SubmitQuizHandler(pool, grader, validate))
		ar.Get("/stats", StatsHandler(pool))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	// not ready until a non-empty bank is loaded
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		snap := pool.Snapshot()
		status := http.StatusOK
		if snap.Len() == 0 {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]any{
			"questions": snap.Len(),
			"loaded_at": snap.LoadedAt.UTC().Format(time.RFC3339),
		})
	})
}
