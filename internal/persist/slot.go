// Package persist stores the application state as a single JSON blob
// in a local SQLite database. Persistence is best-effort: save and
// load absorb every failure, log it, and never surface an error to the
// caller.
package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kakei/internal/model"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

// storageKey is the fixed key the app state blob lives under.
const storageKey = "expense-tracker-data"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_state (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    saved_at   TEXT NOT NULL
);
`

// Slot is the durable single-key slot holding the serialized state.
type Slot struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant location of the state database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kakei", "kakei.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "kakei", "kakei.db")
}

// Open opens or creates the state database at the given path.
func Open(dbPath string) (*Slot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Slot{db: db}, nil
}

// Close closes the underlying database.
func (s *Slot) Close() error {
	return s.db.Close()
}

// Save serializes the state under the fixed key. Failures are logged
// and swallowed: a full disk or broken serialization must never crash
// a mutation that already succeeded in memory.
func (s *Slot) Save(state model.AppState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Warn().Err(err).Msg("state not saved: serialization failed")
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO app_state (key, payload, saved_at)
		VALUES (?, ?, ?)`, storageKey, string(payload), now)
	if err != nil {
		log.Warn().Err(err).Msg("state not saved: write failed")
	}
}

// Load reads the state back. The second return is false when the slot
// is empty, the payload does not parse, or the parsed shape is missing
// its weeks sequence — all of which degrade to "no saved state".
func (s *Slot) Load() (model.AppState, bool) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM app_state WHERE key = ?`, storageKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AppState{}, false
	}
	if err != nil {
		log.Warn().Err(err).Msg("saved state unreadable, starting fresh")
		return model.AppState{}, false
	}

	var state model.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		log.Warn().Err(err).Msg("saved state corrupt, starting fresh")
		return model.AppState{}, false
	}

	// Minimal structural validation: weeks must be present and be a
	// sequence. Anything else is treated as corrupt.
	if state.Weeks == nil {
		log.Warn().Msg("saved state missing weeks, starting fresh")
		return model.AppState{}, false
	}

	return state, true
}

// Clear removes the persisted slot entirely.
func (s *Slot) Clear() error {
	_, err := s.db.Exec(`DELETE FROM app_state WHERE key = ?`, storageKey)
	return err
}
