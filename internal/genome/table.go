package genome

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Table is an immutable, ordered collection of mutation records.
type Table struct {
	records []Record
}

// Generate returns the mutation table for the Parkinson's disease gene panel.
// Every call returns an identical table.
func Generate() *Table {
	genes := []string{
		"SNCA", "LRRK2", "PARK2", "PINK1", "DJ1", "GBA", "VPS35", "ATP13A2",
		"UCHL1", "HTRA2", "PLA2G6", "FBXO7", "DNAJC6", "SYNJ1",
	}
	freqs := []float64{
		0.15, 0.12, 0.08, 0.06, 0.05, 0.10, 0.04, 0.03,
		0.02, 0.02, 0.03, 0.02, 0.02, 0.01,
	}
	types := []string{
		TypeMissense, TypeMissense, TypeDeletion, TypeMissense, TypeDeletion,
		TypeMissense, TypeMissense, TypeMissense, TypeMissense, TypeMissense,
		TypeMissense, TypeMissense, TypeMissense, TypeFrameshift,
	}
	significance := []string{
		SignificancePathogenic, SignificancePathogenic, SignificancePathogenic, SignificancePathogenic,
		SignificancePathogenic, SignificanceRiskFactor, SignificancePathogenic, SignificancePathogenic,
		SignificancePathogenic, SignificancePathogenic, SignificancePathogenic, SignificancePathogenic,
		SignificancePathogenic, SignificancePathogenic,
	}

	records := make([]Record, len(genes))
	for i := range genes {
		records[i] = Record{
			Gene:                 genes[i],
			MutationFrequency:    freqs[i],
			MutationType:         types[i],
			ClinicalSignificance: significance[i],
		}
	}
	return &Table{records: records}
}

// NewTable creates a table from the given records. The slice is copied.
func NewTable(records []Record) *Table {
	return &Table{records: append([]Record(nil), records...)}
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	return []string{ColumnGene, ColumnMutationFrequency, ColumnMutationType, ColumnClinicalSignificance}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of all records.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Head returns a copy of the first n records.
func (t *Table) Head(n int) []Record {
	if n > len(t.records) {
		n = len(t.records)
	}
	if n < 0 {
		n = 0
	}
	return append([]Record(nil), t.records[:n]...)
}

// Genes returns the gene symbols in table order.
func (t *Table) Genes() []string {
	genes := make([]string, len(t.records))
	for i, r := range t.records {
		genes[i] = r.Gene
	}
	return genes
}

// Frequencies returns the mutation frequencies in table order.
func (t *Table) Frequencies() []float64 {
	freqs := make([]float64, len(t.records))
	for i, r := range t.records {
		freqs[i] = r.MutationFrequency
	}
	return freqs
}

// Index returns the row of the given gene, or -1.
func (t *Table) Index(gene string) int {
	for i, r := range t.records {
		if r.Gene == gene {
			return i
		}
	}
	return -1
}

// MeanFrequency returns the arithmetic mean of the frequency column.
func (t *Table) MeanFrequency() float64 {
	if len(t.records) == 0 {
		return 0
	}
	return stat.Mean(t.Frequencies(), nil)
}

// CountSignificance returns the number of records with the given clinical significance.
func (t *Table) CountSignificance(significance string) int {
	n := 0
	for _, r := range t.records {
		if r.ClinicalSignificance == significance {
			n++
		}
	}
	return n
}

// UniqueTypes returns the distinct mutation types in order of first appearance.
func (t *Table) UniqueTypes() []string {
	var types []string
	seen := make(map[string]bool)
	for _, r := range t.records {
		if !seen[r.MutationType] {
			seen[r.MutationType] = true
			types = append(types, r.MutationType)
		}
	}
	return types
}

// TypeCounts returns the number of records per mutation type, most frequent first.
func (t *Table) TypeCounts() []Count {
	return valueCounts(t.records, func(r Record) string { return r.MutationType })
}

// SignificanceCounts returns the number of records per clinical significance,
// most frequent first.
func (t *Table) SignificanceCounts() []Count {
	return valueCounts(t.records, func(r Record) string { return r.ClinicalSignificance })
}

// TopByFrequency returns the n records with the highest mutation frequency.
// Records with equal frequency keep their table order.
func (t *Table) TopByFrequency(n int) []Record {
	sorted := t.Records()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MutationFrequency > sorted[j].MutationFrequency
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}

// FilterGenes returns the records whose gene is one of genes, in table order.
func (t *Table) FilterGenes(genes ...string) []Record {
	want := make(map[string]bool, len(genes))
	for _, g := range genes {
		want[g] = true
	}
	var out []Record
	for _, r := range t.records {
		if want[r.Gene] {
			out = append(out, r)
		}
	}
	return out
}

// valueCounts counts records by key. Counts are sorted descending; equal
// counts keep the order in which the key first appeared.
func valueCounts(records []Record, key func(Record) string) []Count {
	var counts []Count
	index := make(map[string]int)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, Count{Label: k})
		}
		counts[i].N++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	return counts
}
