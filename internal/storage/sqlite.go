// Package storage provides SQLite-based persistence for the scoreboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/babaam/internal/sim"
)

// TopSize is how many entries the scoreboard keeps per field dimension.
// A score outside the top ranks does not place.
const TopSize = 5

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record. Scores are keyed by
// the playfield dimension (e.g. "80x24") so runs on different terminal
// sizes never compete with each other.
type ScoreEntry struct {
	ID        int64
	Initials  string
	Score     int
	Kills     int
	Dimension string
	Cause     string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			initials TEXT NOT NULL,
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			dimension TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_dimension ON scores(dimension);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(dimension, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run under the player's initials.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(ctx context.Context, e ScoreEntry) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (initials, score, kills, dimension, cause) VALUES (?, ?, ?, ?, ?)",
		e.Initials, e.Score, e.Kills, e.Dimension, e.Cause,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given field dimension.
// Results are ordered by score descending.
func (s *Store) TopScores(ctx context.Context, dimension string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = TopSize
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, initials, score, kills, dimension, cause, created_at
		 FROM scores
		 WHERE dimension = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		dimension, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Initials, &e.Score, &e.Kills, &e.Dimension, &e.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given dimension.
// Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context, dimension string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM scores WHERE dimension = ?",
		dimension,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Rank returns the 1-based scoreboard position the given score would
// take in its dimension, or 0 when it falls outside the kept top.
// Ties rank below existing entries.
func (s *Store) Rank(ctx context.Context, dimension string, score int) (int, error) {
	var above int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scores WHERE dimension = ? AND score >= ?",
		dimension, score,
	).Scan(&above)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot compute rank: %w", err)
	}

	rank := above + 1
	if rank > TopSize {
		return 0, nil
	}
	return rank, nil
}

// ClearScores deletes all scores for the given dimension.
func (s *Store) ClearScores(ctx context.Context, dimension string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores WHERE dimension = ?", dimension)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated run statistics for one field dimension.
type Stats struct {
	Dimension  string
	RunCount   int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics for a field dimension.
func (s *Store) GetStats(ctx context.Context, dimension string) (*Stats, error) {
	stats := &Stats{Dimension: dimension}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE dimension = ?`,
		dimension,
	).Scan(&stats.RunCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRowContext(ctx,
		`SELECT created_at FROM scores WHERE dimension = ? ORDER BY created_at DESC LIMIT 1`,
		dimension,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Dimensions lists the field dimensions that have recorded runs.
func (s *Store) Dimensions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT dimension FROM scores ORDER BY dimension")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list dimensions: %w", err)
	}
	defer rows.Close()

	var dims []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("storage: cannot scan dimension: %w", err)
		}
		dims = append(dims, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return dims, nil
}

// parseTime handles the driver returning datetimes as either time.Time
// or a bare string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store satisfies the simulation's leaderboard port.
var _ sim.Leaderboard = (*Store)(nil)
