package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open opens (or creates) the backing database and makes sure the
// records table exists. The table is a plain name -> JSON document map;
// each named record holds one whole collection.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection only: every write rewrites a whole record, and a
	// single writer keeps :memory: databases from silently forking.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records(
  name TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) getRecord(name string) ([]byte, bool, error) {
	var v string
	err := s.db.Get(&v, `SELECT value FROM records WHERE name=?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *Store) putRecord(name string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO records(name,value,updated_at)
                         VALUES(?,?,CURRENT_TIMESTAMP)
                         ON CONFLICT(name) DO UPDATE SET value=excluded.value,updated_at=CURRENT_TIMESTAMP`,
		name, string(value))
	return err
}

func (s *Store) deleteRecord(name string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE name=?`, name)
	return err
}

func (s *Store) dropAllRecords() error {
	_, err := s.db.Exec(`DELETE FROM records`)
	return err
}
