// Package duckdb provides a DuckDB view of the mutation table for ad-hoc
// SQL and aggregate queries.
package duckdb

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

// TableName is the name of the mutation table inside DuckDB.
const TableName = "mutation_records"

// Store manages a DuckDB connection holding mutation records.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a DuckDB database at path with the mutation
// schema. An empty path opens an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates the mutation table if it doesn't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS ` + TableName + ` (
		row_index INTEGER,
		gene VARCHAR,
		mutation_frequency DOUBLE,
		mutation_type VARCHAR,
		clinical_significance VARCHAR,
		PRIMARY KEY (gene)
	)`)
	return err
}
