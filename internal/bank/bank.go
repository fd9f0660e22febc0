// Package bank persists generated question batches and loads them back for serving.
package bank

import (
	"context"
	"errors"
	"fmt"

	"github.com/mind-engage/showquiz/internal/db"
	"github.com/mind-engage/showquiz/internal/quiz"
)

var (
	// ErrMissing means no batch has been written yet.
	ErrMissing           = errors.New("question bank not found")
	ErrUnsupportedDriver = errors.New("unsupported bank driver")
)

type Driver string

const (
	DriverFile     Driver = "file"
	DriverSQLite   Driver = Driver(db.DriverSQLite)
	DriverPostgres Driver = Driver(db.DriverPostgres)
)

// DefaultFile is where the file driver keeps its batch when no DSN is given.
const DefaultFile = "quiz_questions.json"

// Store holds exactly one batch; Save replaces whatever was there.
type Store interface {
	Load(ctx context.Context) ([]quiz.Question, error)
	Save(ctx context.Context, qs []quiz.Question) error
	Close() error
}

// Open returns the store for driver. For the file driver dsn is a path.
func Open(ctx context.Context, driver Driver, dsn string) (Store, error) {
	switch driver {
	case DriverFile, "":
		if dsn == "" {
			dsn = DefaultFile
		}
		return NewFileStore(dsn), nil
	case DriverSQLite, DriverPostgres:
		h, err := db.Open(ctx, db.Driver(driver), dsn)
		if err != nil {
			return nil, fmt.Errorf("open %s bank: %w", driver, err)
		}
		return NewSQLStore(h), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
}
