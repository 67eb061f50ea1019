// Package storage keeps a journal of completed games in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk: the journal lives exactly as
// long as the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// ErrClosed is returned by every method after Close.
var ErrClosed = errors.New("storage: journal is closed")

// Journal records finished games for the lifetime of the process. It is
// safe for concurrent use, so SSH sessions can share one journal.
type Journal struct {
	mu  sync.RWMutex
	db  *sql.DB
	now func() time.Time
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        string
	Session   string
	Player    string
	Score     int
	Length    int
	Obstacles int
	Ticks     uint64
	Cause     string
	CreatedAt time.Time
}

// SessionStats aggregates the games of one session.
type SessionStats struct {
	Session   string
	Games     int
	BestScore int
	AvgScore  float64
	Ticks     uint64
}

// Open creates an empty in-memory journal and runs migrations.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so pin the pool
	// to the one connection that holds the schema.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db, now: time.Now}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return j, nil
}

// migrate creates the schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			obstacles INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			cause TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_session ON games(session, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Close releases the database; the journal content is gone afterwards.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// NewSession returns a fresh session identifier.
func NewSession() string {
	return uuid.NewString()
}

// Record stores the result of a finished game.
func (j *Journal) Record(session, player string, res engine.Result) (GameRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return GameRecord{}, ErrClosed
	}

	rec := GameRecord{
		ID:        uuid.NewString(),
		Session:   session,
		Player:    player,
		Score:     res.Score,
		Length:    res.Length,
		Obstacles: res.Obstacles,
		Ticks:     res.Ticks,
		Cause:     res.Cause.String(),
		CreatedAt: j.now(),
	}

	_, err := j.db.Exec(
		`INSERT INTO games (id, session, player, score, length, obstacles, ticks, cause, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Session, rec.Player, rec.Score, rec.Length, rec.Obstacles,
		int64(rec.Ticks), rec.Cause, rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return GameRecord{}, fmt.Errorf("storage: cannot record game: %w", err)
	}
	return rec, nil
}

// Recent returns the latest games of a session, newest first.
func (j *Journal) Recent(session string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return j.query(
		`SELECT id, session, player, score, length, obstacles, ticks, cause, created_at
		 FROM games
		 WHERE session = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		session, limit,
	)
}

// Top returns the best games across all sessions, highest score first.
func (j *Journal) Top(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return j.query(
		`SELECT id, session, player, score, length, obstacles, ticks, cause, created_at
		 FROM games
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

func (j *Journal) query(q string, args ...any) ([]GameRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.db == nil {
		return nil, ErrClosed
	}

	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var ticks, created int64
		if err := rows.Scan(&r.ID, &r.Session, &r.Player, &r.Score, &r.Length,
			&r.Obstacles, &ticks, &r.Cause, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = time.Unix(0, created)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Stats aggregates the games of a session. A session with no games yields
// zero values.
func (j *Journal) Stats(session string) (SessionStats, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	stats := SessionStats{Session: session}
	if j.db == nil {
		return stats, ErrClosed
	}

	var ticks int64
	err := j.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0)
		 FROM games WHERE session = ?`,
		session,
	).Scan(&stats.Games, &stats.BestScore, &stats.AvgScore, &ticks)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	stats.Ticks = uint64(ticks)
	return stats, nil
}
