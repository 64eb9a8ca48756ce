package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/pdctag/internal/genome"
)

// WriteRecords batch-inserts records using the Appender API, keeping their
// table order in row_index. Records whose gene was already written are skipped.
func (s *Store) WriteRecords(records []genome.Record) error {
	if len(records) == 0 {
		return nil
	}

	seen, err := s.storedGenes()
	if err != nil {
		return err
	}
	existing := len(seen)

	deduped := make([]genome.Record, 0, len(records))
	for _, r := range records {
		if !seen[r.Gene] {
			seen[r.Gene] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", TableName)
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for i, r := range deduped {
		if err := appender.AppendRow(
			int32(existing+i), r.Gene, r.MutationFrequency, r.MutationType, r.ClinicalSignificance,
		); err != nil {
			return fmt.Errorf("append record %s: %w", r.Gene, err)
		}
	}

	return appender.Flush()
}

// LoadTable writes every record of t.
func (s *Store) LoadTable(t *genome.Table) error {
	return s.WriteRecords(t.Records())
}

// Records returns all stored records in insertion order.
func (s *Store) Records() ([]genome.Record, error) {
	rows, err := s.db.Query(`SELECT gene, mutation_frequency, mutation_type, clinical_significance
		FROM ` + TableName + ` ORDER BY row_index`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// TopByFrequency returns the n records with the highest frequency;
// ties keep insertion order.
func (s *Store) TopByFrequency(n int) ([]genome.Record, error) {
	rows, err := s.db.Query(`SELECT gene, mutation_frequency, mutation_type, clinical_significance
		FROM `+TableName+` ORDER BY mutation_frequency DESC, row_index LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query top genes: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// TypeCounts returns the number of records per mutation type, most
// frequent first; ties keep the order of first appearance.
func (s *Store) TypeCounts() ([]genome.Count, error) {
	rows, err := s.db.Query(`SELECT mutation_type, COUNT(*) AS n
		FROM ` + TableName + `
		GROUP BY mutation_type
		ORDER BY n DESC, MIN(row_index)`)
	if err != nil {
		return nil, fmt.Errorf("query type counts: %w", err)
	}
	defer rows.Close()

	var counts []genome.Count
	for rows.Next() {
		var c genome.Count
		var n int64
		if err := rows.Scan(&c.Label, &n); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		c.N = int(n)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate type counts: %w", err)
	}
	return counts, nil
}

// MeanFrequency returns the mean mutation frequency, or 0 for an empty table.
func (s *Store) MeanFrequency() (float64, error) {
	var mean sql.NullFloat64
	if err := s.db.QueryRow(`SELECT AVG(mutation_frequency) FROM ` + TableName).Scan(&mean); err != nil {
		return 0, fmt.Errorf("query mean frequency: %w", err)
	}
	return mean.Float64, nil
}

// ClearRecords removes all stored records.
func (s *Store) ClearRecords() error {
	_, err := s.db.Exec("DELETE FROM " + TableName)
	return err
}

func (s *Store) storedGenes() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT gene FROM ` + TableName)
	if err != nil {
		return nil, fmt.Errorf("query genes: %w", err)
	}
	defer rows.Close()

	genes := make(map[string]bool)
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan gene: %w", err)
		}
		genes[g] = true
	}
	return genes, rows.Err()
}

// scanRecords scans rows into records.
func scanRecords(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]genome.Record, error) {
	var records []genome.Record
	for rows.Next() {
		var r genome.Record
		if err := rows.Scan(&r.Gene, &r.MutationFrequency, &r.MutationType, &r.ClinicalSignificance); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
