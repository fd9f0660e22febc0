package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/showquiz/internal/quiz"
)

// SQLStore keeps the batch in the questions table; each Save replaces all rows
// and stamps them with a fresh batch id.
type SQLStore struct{ DB *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{DB: db} }

func (s *SQLStore) Load(ctx context.Context) ([]quiz.Question, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, question, qtype, options_json, correct_index, correct_answer
		FROM questions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	qs := []quiz.Question{}
	for rows.Next() {
		var (
			q       quiz.Question
			typ     string
			options string
		)
		if err := rows.Scan(&q.ID, &q.Question, &typ, &options, &q.CorrectIndex, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		q.Type = quiz.Type(typ)
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("question %d options: %w", q.ID, err)
		}
		qs = append(qs, q)
	}
	return qs, rows.Err()
}

func (s *SQLStore) Save(ctx context.Context, qs []quiz.Question) error {
	batchID := uuid.NewString()
	now := time.Now().Unix()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}
	for pos, q := range qs {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO questions (id, batch_id, position, question, qtype, options_json, correct_index, correct_answer, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			q.ID, batchID, pos, q.Question, string(q.Type), string(options), q.CorrectIndex, q.CorrectAnswer, now); err != nil {
			return fmt.Errorf("insert question %d: %w", q.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("[BANK] saved batch %s (%d questions)", batchID, len(qs))
	return nil
}

// BatchID returns the id of the batch currently stored, "" when empty.
func (s *SQLStore) BatchID(ctx context.Context) (string, error) {
	var id sql.NullString
	err := s.DB.QueryRowContext(ctx, `SELECT MIN(batch_id) FROM questions`).Scan(&id)
	return id.String, err
}

func (s *SQLStore) Close() error { return s.DB.Close() }
