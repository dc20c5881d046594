// Package store persists the ledger state as a single JSON blob in a
// SQLite-backed key-value table.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ahorro/internal/model"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

// StateKey is the fixed key the ledger blob lives under. Changing it would
// orphan every existing blob, so it stays as-is.
const StateKey = "finanzas-data-v1"

// Store is a SQLite-backed key-value store holding the serialized ledger.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadState reads the ledger blob and decodes it. A missing row or a blob
// that cannot be decoded yields the empty default state; decode problems
// are deliberately discarded, never surfaced. The returned error covers
// database access only.
func (s *Store) LoadState() (model.State, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv_state WHERE key = ?", StateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultState(), nil
	}
	if err != nil {
		return model.DefaultState(), err
	}
	return decodeState([]byte(raw)), nil
}

// SaveState serializes the full state and overwrites the stored blob.
// Every call is a full overwrite; there are no partial writes and no
// versioning.
func (s *Store) SaveState(st model.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO kv_state (key, value, updated_at)
		VALUES (?, ?, ?)`, StateKey, string(data), now)
	if err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// decodeState turns a persisted blob back into a State, coercing anything
// malformed to defaults: a blob that is not JSON yields the empty state, a
// movements field that is not a valid movement list yields an empty list,
// and an unreadable goal yields zero.
func decodeState(data []byte) model.State {
	var raw struct {
		Movements json.RawMessage `json:"movements"`
		Goal      json.RawMessage `json:"goal"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.DefaultState()
	}

	st := model.DefaultState()

	if len(raw.Movements) > 0 {
		var movements []model.Movement
		if err := json.Unmarshal(raw.Movements, &movements); err == nil && movements != nil {
			st.Movements = movements
		}
	}

	if len(raw.Goal) > 0 {
		var goal decimal.Decimal
		if err := json.Unmarshal(raw.Goal, &goal); err == nil {
			st.Goal = goal
		}
	}

	return st
}
