package episode

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "episodes.json")
	in := []Episode{{
		EpisodeNumber: "S1E1",
		Title:         "Pilot",
		Summary:       "Rick takes Morty on their first adventure.",
		Characters:    []string{"Rick Sanchez", "Morty Smith"},
		Quotes:        []string{"Wubba lubba dub dub!"},
	}}
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Pilot" || len(out[0].Characters) != 2 {
		t.Errorf("unexpected episodes: %+v", out)
	}
}

func TestDecode_BadJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestHasSummary(t *testing.T) {
	cases := []struct {
		summary string
		want    bool
	}{
		{"", false},
		{strings.Repeat("a", 20), false},
		{strings.Repeat("a", 21), true},
		{strings.Repeat("é", 21), true},
	}
	for _, c := range cases {
		if got := (Episode{Summary: c.summary}).HasSummary(); got != c.want {
			t.Errorf("HasSummary(%q) = %v, want %v", c.summary, got, c.want)
		}
	}
}
