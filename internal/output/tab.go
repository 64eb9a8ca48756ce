// Package output provides the console formatters: the tab-delimited table
// and the genomic report.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/pdctag/internal/genome"
)

// TabWriter writes mutation records in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
	index   bool
	row     int
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			genome.ColumnGene,
			genome.ColumnMutationFrequency,
			genome.ColumnMutationType,
			genome.ColumnClinicalSignificance,
		},
	}
}

// SetIndex configures whether each line starts with its 0-based row number.
func (tw *TabWriter) SetIndex(index bool) {
	tw.index = index
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	cols := tw.columns
	if tw.index {
		cols = append([]string{""}, cols...)
	}
	_, err := tw.w.WriteString(strings.Join(cols, "\t") + "\n")
	return err
}

// Write writes a single record.
func (tw *TabWriter) Write(r genome.Record) error {
	values := []string{
		orDash(r.Gene),
		fmt.Sprintf("%.2f", r.MutationFrequency),
		orDash(r.MutationType),
		orDash(r.ClinicalSignificance),
	}
	if tw.index {
		values = append([]string{fmt.Sprintf("%d", tw.row)}, values...)
	}
	tw.row++

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// WriteAll writes the header followed by every record and flushes.
func (tw *TabWriter) WriteAll(records []genome.Record) error {
	if err := tw.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := tw.Write(r); err != nil {
			return fmt.Errorf("write %s: %w", r.Gene, err)
		}
	}
	return tw.Flush()
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
