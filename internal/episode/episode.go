package episode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrNoDataset is returned by Load when the dataset file does not exist.
var ErrNoDataset = errors.New("episode dataset not found")

// MinSummaryLen is the rune count a summary must exceed to be quizzable.
const MinSummaryLen = 20

// Episode is one harvested fact unit about a show episode.
type Episode struct {
	EpisodeNumber string   `json:"episode_number,omitempty"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary,omitempty"`
	Characters    []string `json:"characters"`
	Quotes        []string `json:"quotes"`
}

// HasSummary reports whether the summary is long enough to build questions from.
func (e Episode) HasSummary() bool {
	return utf8.RuneCountInString(e.Summary) > MinSummaryLen
}

// Load reads a JSON array of episodes from path.
func Load(path string) ([]Episode, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDataset, path)
		}
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) ([]Episode, error) {
	var eps []Episode
	if err := json.NewDecoder(r).Decode(&eps); err != nil {
		return nil, fmt.Errorf("decode episodes: %w", err)
	}
	return eps, nil
}

// Save overwrites path with the indented JSON form of eps.
func Save(path string, eps []Episode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, eps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Write(w io.Writer, eps []Episode) error {
	if eps == nil {
		eps = []Episode{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(eps)
}
