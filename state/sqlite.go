package state

import (
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS dao_state (
	k BLOB PRIMARY KEY,
	v BLOB NOT NULL
) WITHOUT ROWID;
`

// SQLite persists the KV state in a single-file database so the ledger
// survives host restarts. Keys and values are raw bytes (the engine stores
// binary-coded records), hence BLOB columns.
//
// dao.State reports no per-write errors; per its contract this store panics if
// the database refuses a write, since continuing would fork the ledger from
// its durable form.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the store at path and bootstraps the schema.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := db.Exec(kvSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "bootstrap schema")
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Set upserts the value under key.
func (s *SQLite) Set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO dao_state (k, v) VALUES (?, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		[]byte(key), []byte(value),
	)
	if err != nil {
		panic(errors.Wrap(err, "sqlite state set"))
	}
}

// Get returns a pointer to the stored value, nil on a miss.
func (s *SQLite) Get(key string) *string {
	var v []byte
	err := s.db.QueryRow(`SELECT v FROM dao_state WHERE k = ?`, []byte(key)).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		panic(errors.Wrap(err, "sqlite state get"))
	}
	val := string(v)
	return &val
}

// Delete removes the key.
func (s *SQLite) Delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM dao_state WHERE k = ?`, []byte(key)); err != nil {
		panic(errors.Wrap(err, "sqlite state delete"))
	}
}
