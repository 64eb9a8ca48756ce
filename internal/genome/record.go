// Package genome provides the Parkinson's disease mutation table and the
// counting helpers used by the charts and the text report.
package genome

// Mutation types present in the table.
const (
	TypeMissense   = "Missense"
	TypeDeletion   = "Deletion"
	TypeFrameshift = "Frameshift"
)

// Clinical significance labels present in the table.
const (
	SignificancePathogenic = "Pathogenic"
	SignificanceRiskFactor = "Risk_Factor"
)

// Column names, in table order.
const (
	ColumnGene                 = "Gene"
	ColumnMutationFrequency    = "Mutation_Frequency"
	ColumnMutationType         = "Mutation_Type"
	ColumnClinicalSignificance = "Clinical_Significance"
)

// Record is one row of the mutation table.
type Record struct {
	Gene                 string  // Gene symbol (e.g., SNCA)
	MutationFrequency    float64 // Fraction in [0,1]
	MutationType         string  // Missense, Deletion or Frameshift
	ClinicalSignificance string  // Pathogenic or Risk_Factor
}

// FrequencyPercent returns the mutation frequency as a percentage.
func (r Record) FrequencyPercent() float64 {
	return r.MutationFrequency * 100
}

// IsPathogenic returns true if the record is classified as pathogenic.
func (r Record) IsPathogenic() bool {
	return r.ClinicalSignificance == SignificancePathogenic
}

// Count is a category label with the number of rows carrying it.
type Count struct {
	Label string
	N     int
}
