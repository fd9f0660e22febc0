package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/showquiz/internal/grading"
	"github.com/mind-engage/showquiz/internal/quiz"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: 1, Question: "Who says 'Wubba lubba dub dub!'?", Type: quiz.TypeQuoteCharacter,
			Options: []string{"Rick Sanchez", "Morty Smith"}, CorrectIndex: 0, CorrectAnswer: "Rick Sanchez"},
		{ID: 2, Question: "What is Rick's relationship to Morty?", Type: quiz.TypeCharacterRelationship,
			Options: []string{"Father", "Grandfather", "Friend"}, CorrectIndex: 1, CorrectAnswer: "Grandfather"},
		{ID: 3, Question: "Which episode features Pickle Rick?", Type: quiz.TypeQuoteEpisode,
			Options: []string{"Pilot", "Pickle Rick"}, CorrectIndex: 1, CorrectAnswer: "Pickle Rick"},
	}
}

func newServer(t *testing.T, qs []quiz.Question) *httptest.Server {
	t.Helper()
	pool := quiz.NewPool(quiz.NewRand(7))
	pool.Swap(qs)
	r := chi.NewRouter()
	Mount(r, pool, grading.NewGrader())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int, into any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected %d, got %d", url, wantStatus, resp.StatusCode)
	}
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

func postJSON(t *testing.T, url, body string, wantStatus int, into any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: expected %d, got %d", url, wantStatus, resp.StatusCode)
	}
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

func TestRoot(t *testing.T) {
	srv := newServer(t, sampleQuestions())
	var body struct {
		Message        string `json:"message"`
		TotalQuestions int    `json:"total_questions"`
	}
	getJSON(t, srv.URL+"/", 200, &body)
	if body.Message != "Mort and Ricky Quiz API" || body.TotalQuestions != 3 {
		t.Errorf("unexpected root body: %+v", body)
	}
}

func TestListQuestions(t *testing.T) {
	srv := newServer(t, sampleQuestions())
	var body struct {
		Questions []quiz.Question `json:"questions"`
		Total     int             `json:"total"`
	}
	getJSON(t, srv.URL+"/api/questions", 200, &body)
	if body.Total != 3 || len(body.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %+v", body)
	}
	if body.Questions[1].CorrectAnswer != "Grandfather" {
		t.Errorf("answer keys should be included: %+v", body.Questions[1])
	}
}

func TestEmptyPool(t *testing.T) {
	srv := newServer(t, nil)

	var detail struct {
		Detail string `json:"detail"`
	}
	getJSON(t, srv.URL+"/api/questions", 404, &detail)
	if detail.Detail != "No questions available" {
		t.Errorf("detail = %q", detail.Detail)
	}
	getJSON(t, srv.URL+"/api/quiz/5", 404, nil)

	var stats map[string]any
	getJSON(t, srv.URL+"/api/stats", 200, &stats)
	if stats["total_questions"] != float64(0) {
		t.Errorf("total_questions = %v", stats["total_questions"])
	}
	types, ok := stats["question_types"].(map[string]any)
	if !ok || len(types) != 0 {
		t.Errorf("question_types should be an empty object, got %v", stats["question_types"])
	}

	getJSON(t, srv.URL+"/readyz", 503, nil)
	getJSON(t, srv.URL+"/healthz", 200, nil)
}

func TestQuiz_ClampsAndStripsKeys(t *testing.T) {
	srv := newServer(t, sampleQuestions())

	resp, err := http.Get(srv.URL + "/api/quiz/10")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var raw struct {
		Questions []map[string]any `json:"questions"`
		Total     int              `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw.Total != 3 || len(raw.Questions) != 3 {
		t.Fatalf("expected clamp to 3, got %d", raw.Total)
	}
	seen := map[float64]bool{}
	for _, q := range raw.Questions {
		if _, ok := q["correct_index"]; ok {
			t.Errorf("correct_index leaked: %v", q)
		}
		if _, ok := q["correct_answer"]; ok {
			t.Errorf("correct_answer leaked: %v", q)
		}
		for _, k := range []string{"id", "question", "options", "type"} {
			if _, ok := q[k]; !ok {
				t.Errorf("missing %q in %v", k, q)
			}
		}
		id := q["id"].(float64)
		if seen[id] {
			t.Errorf("duplicate id %v", id)
		}
		seen[id] = true
	}
}

func TestQuiz_Count(t *testing.T) {
	srv := newServer(t, sampleQuestions())
	var body struct {
		Total int `json:"total"`
	}
	getJSON(t, srv.URL+"/api/quiz/2", 200, &body)
	if body.Total != 2 {
		t.Errorf("expected 2, got %d", body.Total)
	}
	getJSON(t, srv.URL+"/api/quiz/0", 200, &body)
	if body.Total != 0 {
		t.Errorf("expected 0, got %d", body.Total)
	}
	getJSON(t, srv.URL+"/api/quiz/abc", 400, nil)
	getJSON(t, srv.URL+"/api/quiz/-1", 400, nil)
}

func TestSubmitQuiz(t *testing.T) {
	srv := newServer(t, sampleQuestions())
	body := `{"answers": {"1": 0, "2": "2", "3": "Pickle Rick", "999": 1}}`

	var rep grading.Report
	postJSON(t, srv.URL+"/api/submit-quiz", body, 200, &rep)
	if rep.Score.Total != 3 || rep.Score.Correct != 2 {
		t.Fatalf("unexpected score: %+v", rep.Score)
	}
	if rep.Score.Percentage != 66.67 {
		t.Errorf("percentage = %v", rep.Score.Percentage)
	}
	if rep.Results[1].QuestionID != "2" || rep.Results[1].IsCorrect {
		t.Errorf("question 2 should be incorrect: %+v", rep.Results[1])
	}
	if rep.Results[1].CorrectAnswerText != "Grandfather" {
		t.Errorf("correct_answer_text = %q", rep.Results[1].CorrectAnswerText)
	}

	var again grading.Report
	postJSON(t, srv.URL+"/api/submit-quiz", body, 200, &again)
	if again.Score != rep.Score || len(again.Results) != len(rep.Results) {
		t.Errorf("grading not idempotent: %+v vs %+v", again.Score, rep.Score)
	}
}

func TestSubmitQuiz_BadRequests(t *testing.T) {
	srv := newServer(t, sampleQuestions())
	for _, body := range []string{`{}`, `{"answers": {}}`, `{"answers": null}`} {
		var detail struct {
			Detail string `json:"detail"`
		}
		postJSON(t, srv.URL+"/api/submit-quiz", body, 400, &detail)
		if detail.Detail != "No answers provided" {
			t.Errorf("%s: detail = %q", body, detail.Detail)
		}
	}
	postJSON(t, srv.URL+"/api/submit-quiz", `not json`, 400, nil)
}

func TestStats(t *testing.T) {
	srv := newServer(t, sampleQuestions())
	var st quiz.Stats
	getJSON(t, srv.URL+"/api/stats", 200, &st)
	if st.TotalQuestions != 3 {
		t.Errorf("total = %d", st.TotalQuestions)
	}
	if st.QuestionTypes["quote_character"] != 1 || len(st.QuestionTypes) != 3 {
		t.Errorf("types = %v", st.QuestionTypes)
	}
	var ready struct {
		Questions int    `json:"questions"`
		LoadedAt  string `json:"loaded_at"`
	}
	getJSON(t, srv.URL+"/readyz", 200, &ready)
	if ready.Questions != 3 {
		t.Errorf("readyz questions = %d", ready.Questions)
	}
	if _, err := time.Parse(time.RFC3339, ready.LoadedAt); err != nil {
		t.Errorf("readyz loaded_at = %q: %v", ready.LoadedAt, err)
	}
}
