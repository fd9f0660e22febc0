package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mind-engage/showquiz/internal/quiz"
)

// FileStore keeps the batch as an indented JSON array in a single file.
type FileStore struct{ path string }

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(_ context.Context) ([]quiz.Question, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, s.path)
		}
		return nil, err
	}
	var qs []quiz.Question
	if err := json.Unmarshal(b, &qs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return qs, nil
}

// Save writes to a temp file and renames it over the old batch.
func (s *FileStore) Save(_ context.Context, qs []quiz.Question) error {
	if qs == nil {
		qs = []quiz.Question{}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close() error { return nil }
