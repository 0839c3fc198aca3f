// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// dbFileName is the single file a Store keeps its slots in, the same
// fixed-filename-under-a-directory convention the teacher's own
// stores/sqlite package uses.
const dbFileName = "gnusto-saves.db"

// Store is a sqlite-backed table of named save slots, each holding
// one worldstore.Snapshot serialized to JSON.
type Store struct {
	db  *sql.DB
	ctx context.Context
}

// CreateStore creates a new save-slot database under dir. It is an
// error for the database file to already exist, mirroring the
// teacher's CreateStore/OpenStore split.
func CreateStore(dir string, ctx context.Context) (*Store, error) {
	path, err := dbPath(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("sqlitestore: %w", cerrs.ErrDatabaseExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, createSlotsTableSQL); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, ctx: ctx}, nil
}

// OpenStore opens an existing save-slot database under dir. It is an
// error for the database file not to exist.
func OpenStore(dir string, ctx context.Context) (*Store, error) {
	path, err := dbPath(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sqlitestore: %w", cerrs.ErrNotFound)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, createSlotsTableSQL); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, ctx: ctx}, nil
}

// OpenOrCreateStore opens dir's database, creating it first if it
// doesn't exist yet. This is the constructor a REPL host normally
// wants; Create/OpenStore stay available for callers that must
// distinguish the two cases (e.g. a "new game" vs "continue" menu).
func OpenOrCreateStore(dir string, ctx context.Context) (*Store, error) {
	path, err := dbPath(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return CreateStore(dir, ctx)
	}
	return OpenStore(dir, ctx)
}

func dbPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if sb, err := os.Stat(abs); err == nil && !sb.IsDir() {
		return "", cerrs.ErrIsNotAFile
	}
	return filepath.Join(abs, dbFileName), nil
}

const createSlotsTableSQL = `
CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save serializes snap and writes it to the named slot, overwriting
// whatever was saved there before. turn is recorded as the slot's
// updated_at for a "list saves" UI to sort or display by.
func (s *Store) Save(slot string, snap worldstore.Snapshot, turn int) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("sqlitestore: marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(s.ctx,
		`INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		slot, data, turn)
	return err
}

// Load reads and deserializes the named slot's snapshot.
func (s *Store) Load(slot string) (worldstore.Snapshot, error) {
	var data []byte
	err := s.db.QueryRowContext(s.ctx, `SELECT data FROM slots WHERE name = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return worldstore.Snapshot{}, fmt.Errorf("sqlitestore: slot %q: %w", slot, cerrs.ErrNotFound)
	} else if err != nil {
		return worldstore.Snapshot{}, err
	}
	var snap worldstore.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return worldstore.Snapshot{}, fmt.Errorf("sqlitestore: slot %q: %w", slot, cerrs.ErrInvalidSnapshot)
	}
	return snap, nil
}

// Slot is one save slot's name and last-updated turn, as listed by
// List.
type Slot struct {
	Name      string
	UpdatedAt int
}

// List returns every save slot, most recently updated first.
func (s *Store) List() ([]Slot, error) {
	rows, err := s.db.QueryContext(s.ctx, `SELECT name, updated_at FROM slots ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Slot
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.Name, &sl.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

// Delete removes the named slot. It is not an error to delete a slot
// that doesn't exist.
func (s *Store) Delete(slot string) error {
	_, err := s.db.ExecContext(s.ctx, `DELETE FROM slots WHERE name = ?`, slot)
	return err
}
