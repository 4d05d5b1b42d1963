// Package history keeps an append-only sqlite log of completed surveys.
// This is an audit trail, not session durability: in-flight sessions still
// live only in memory.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cactus-tim/ml-project/internal/survey"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	prediction_id TEXT PRIMARY KEY,
	user_id       INTEGER NOT NULL,
	answers_json  TEXT NOT NULL,
	results_json  TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_predictions_user
ON predictions(user_id, created_at);
`

// #endregion schema

// #region store-struct

// Store writes and reads the prediction log.
type Store struct {
	db *sql.DB
}

// NewStore opens the sqlite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store-struct

// #region record

// Record appends one completed survey. Implements survey.Recorder.
func (s *Store) Record(o survey.Outcome) error {
	answersJSON, err := json.Marshal(o.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	resultsJSON, err := json.Marshal(o.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.Exec(
		`INSERT INTO predictions (prediction_id, user_id, answers_json, results_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		o.PredictionID, o.UserID, string(answersJSON), string(resultsJSON),
		o.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

// #endregion record

// #region recent

// Entry is one row of the prediction log as stored.
type Entry struct {
	PredictionID string
	UserID       int64
	AnswersJSON  string
	ResultsJSON  string
	CreatedAt    time.Time
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT prediction_id, user_id, answers_json, results_json, created_at
		 FROM predictions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdStr string
		if err := rows.Scan(&e.PredictionID, &e.UserID, &e.AnswersJSON, &e.ResultsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent
