// Package storage provides SQLite-based persistence for finished play
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/antonvlasov/tui-pong/internal/core"
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one recorded play session.
type SessionEntry struct {
	ID           int64
	Difficulty   string
	PlayerScore  int
	CPUScore     int
	DurationSecs int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			player_score INTEGER NOT NULL,
			cpu_score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_difficulty ON sessions(difficulty);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(difficulty, player_score DESC);
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

// SaveSession records a finished session. tickRate converts the tick count
// into a duration; zero or negative falls back to 60. Returns the ID of the
// inserted record.
func (s *Store) SaveSession(result core.SessionResult, tickRate int) (int64, error) {
	if tickRate <= 0 {
		tickRate = 60
	}

	res, err := s.db.Exec(
		`INSERT INTO sessions (difficulty, player_score, cpu_score, duration_secs)
		 VALUES (?, ?, ?, ?)`,
		result.Difficulty, result.PlayerScore, result.CPUScore, result.Ticks/tickRate,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recently played sessions.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT id, difficulty, player_score, cpu_score, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopSessions retrieves the best sessions by player score, across all
// difficulties.
func (s *Store) TopSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, difficulty, player_score, cpu_score, duration_secs, created_at
		 FROM sessions
		 ORDER BY player_score DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionsByDifficulty retrieves the best sessions for one difficulty.
func (s *Store) SessionsByDifficulty(difficulty string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, difficulty, player_score, cpu_score, duration_secs, created_at
		 FROM sessions
		 WHERE difficulty = ?
		 ORDER BY player_score DESC, created_at DESC
		 LIMIT ?`,
		difficulty, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.PlayerScore, &e.CPUScore, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles the driver returning DATETIME columns as either
// time.Time or a plain string.
func parseCreatedAt(v any) time.Time {
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

// HighScore returns the best player score for the given difficulty.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(player_score) FROM sessions WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	Difficulty   string
	SessionCount int
	HighScore    int
	Wins         int // Sessions the player finished ahead
	LastPlayed   time.Time
}

// Stats retrieves aggregated statistics for a specific difficulty.
func (s *Store) Stats(difficulty string) (*DifficultyStats, error) {
	stats := &DifficultyStats{Difficulty: difficulty}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(player_score), 0),
		        COALESCE(SUM(CASE WHEN player_score > cpu_score THEN 1 ELSE 0 END), 0)
		 FROM sessions WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.SessionCount, &stats.HighScore, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE difficulty = ? ORDER BY created_at DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}
