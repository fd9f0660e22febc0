package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mind-engage/showquiz/internal/config"
	"github.com/mind-engage/showquiz/internal/grading"
	"github.com/mind-engage/showquiz/internal/quiz"
)

const devOrigin = "http://localhost:5173"

func testRouter(t *testing.T, env map[string]string) http.Handler {
	t.Helper()
	for _, k := range []string{"CORS_ORIGINS", "REQUEST_TIMEOUT", "GRADE_FOLD_CASE"} {
		t.Setenv(k, "")
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
	pool := quiz.NewPool(quiz.NewRand(1))
	pool.Swap([]quiz.Question{
		{ID: 1, Question: "Who says 'I'm Mr. Meeseeks, look at me!'?", Type: quiz.TypeQuoteCharacter,
			Options: []string{"Mr. Meeseeks", "Squanch"}, CorrectIndex: 0, CorrectAnswer: "Mr. Meeseeks"},
	})
	return newRouter(config.FromEnv(), pool)
}

func submit(t *testing.T, h http.Handler, body string) (int, grading.Report) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-quiz", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var rep grading.Report
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&rep); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec.Code, rep
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := testRouter(t, nil)

	cases := []struct {
		origin string
		want   string
	}{
		{devOrigin, devOrigin},
		{"http://evil.example.com", ""},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodOptions, "/api/submit-quiz", nil)
		req.Header.Set("Origin", c.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != c.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", c.origin, got, c.want)
		}
	}
}

func TestRouter_CORSSimpleRequest(t *testing.T) {
	h := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", devOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != devOrigin {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}
}

func TestRouter_ZeroTimeoutStillServes(t *testing.T) {
	h := testRouter(t, map[string]string{"REQUEST_TIMEOUT": "0"})

	code, rep := submit(t, h, `{"answers": {"1": 0}}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if rep.Score.Correct != 1 {
		t.Errorf("score = %+v", rep.Score)
	}
}

func TestRouter_GradeFoldCase(t *testing.T) {
	strict := testRouter(t, nil)
	if _, rep := submit(t, strict, `{"answers": {"1": "mr meeseeks"}}`); rep.Score.Correct != 0 {
		t.Errorf("folded text accepted without GRADE_FOLD_CASE: %+v", rep.Score)
	}

	folded := testRouter(t, map[string]string{"GRADE_FOLD_CASE": "true"})
	code, rep := submit(t, folded, `{"answers": {"1": "mr meeseeks"}}`)
	if code != http.StatusOK || rep.Score.Correct != 1 {
		t.Errorf("GRADE_FOLD_CASE=true: code %d, score %+v", code, rep.Score)
	}
}
