// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package statestore

import (
	"database/sql"

	"github.com/juju/errors"
	_ "github.com/mattn/go-sqlite3"
)

// SQLitePartition is a Partition persisted in a local SQLite database,
// for hosts that keep local-scope statuses across restarts. It holds a
// single key/value table; replication remains the host's concern.
type SQLitePartition struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS statuses (
	key  TEXT PRIMARY KEY,
	data BLOB NOT NULL
);`

// NewSQLitePartition opens (creating if necessary) the database at
// path. Use ":memory:" for an ephemeral partition.
func NewSQLitePartition(path string) (*SQLitePartition, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Annotatef(err, "opening status database %q", path)
	}
	// A single connection keeps ":memory:" databases alive and is
	// plenty for a store this small.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Annotate(err, "creating status table")
	}
	return &SQLitePartition{db: db}, nil
}

// Get is part of the Partition interface.
func (p *SQLitePartition) Get(key string) ([]byte, error) {
	var data []byte
	err := p.db.QueryRow("SELECT data FROM statuses WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, errors.Trace(err)
	}
	return data, nil
}

// Put is part of the Partition interface.
func (p *SQLitePartition) Put(key string, value []byte) error {
	_, err := p.db.Exec(`
INSERT INTO statuses (key, data) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET data = excluded.data`,
		key, value)
	return errors.Trace(err)
}

// Close releases the underlying database.
func (p *SQLitePartition) Close() error {
	return errors.Trace(p.db.Close())
}
