package genome

// PrincipalGenes are highlighted in the frequency chart and the interaction network.
var PrincipalGenes = []string{"SNCA", "LRRK2", "PARK2"}

// AnalyzedGenes are the genes detailed in the text report and the screening panel.
var AnalyzedGenes = []string{"SNCA", "LRRK2", "PARK2", "GBA"}

// IsPrincipal returns true if gene is one of PrincipalGenes.
func IsPrincipal(gene string) bool {
	for _, g := range PrincipalGenes {
		if g == gene {
			return true
		}
	}
	return false
}

// Sequence is the schematic base sequence of the CTAG diagram.
const Sequence = "ATGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGC"

// MutationSites are the 0-based positions in Sequence marked as mutated.
var MutationSites = []int{8, 15, 22, 30, 42}

// Node is a gene placed in the interaction network drawing.
type Node struct {
	Gene string
	X, Y float64
}

// Edge connects two genes of the interaction network.
type Edge struct {
	From, To string
}

// NetworkNodes are the fixed node positions of the interaction network.
var NetworkNodes = []Node{
	{"SNCA", 3, 4},
	{"LRRK2", 5, 3},
	{"PARK2", 2, 2},
	{"PINK1", 4, 1},
	{"DJ1", 1, 3},
	{"GBA", 5, 5},
	{"VPS35", 3, 5},
	{"ATP13A2", 1, 1},
}

// NetworkEdges are the fixed interactions between NetworkNodes.
var NetworkEdges = []Edge{
	{"SNCA", "LRRK2"},
	{"SNCA", "PARK2"},
	{"PARK2", "PINK1"},
	{"PINK1", "DJ1"},
	{"LRRK2", "GBA"},
	{"SNCA", "VPS35"},
	{"PARK2", "ATP13A2"},
	{"GBA", "VPS35"},
}

// NodePosition returns the position of gene in the interaction network.
func NodePosition(gene string) (x, y float64, ok bool) {
	for _, n := range NetworkNodes {
		if n.Gene == gene {
			return n.X, n.Y, true
		}
	}
	return 0, 0, false
}

// Signature is a relative frequency profile over SignatureContexts.
type Signature struct {
	Name   string
	Values []float64
}

// SignatureContexts are the substitution classes of the mutational signatures.
var SignatureContexts = []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G"}

// Signatures are the sporadic and familial mutational signatures.
var Signatures = []Signature{
	{Name: "Sporadic Signature", Values: []float64{0.15, 0.08, 0.35, 0.12, 0.20, 0.10}},
	{Name: "Familial Signature", Values: []float64{0.25, 0.12, 0.25, 0.15, 0.15, 0.08}},
}

// Pathway groups genes under a biological process.
type Pathway struct {
	Name  string
	Genes []string
}

// Pathways are the illustrative gene-to-pathway groupings.
var Pathways = []Pathway{
	{Name: "Proteostasis", Genes: []string{"SNCA", "PARK2", "UCHL1"}},
	{Name: "Mitochondrial Function", Genes: []string{"PINK1", "DJ1", "ATP13A2"}},
	{Name: "Vesicular Trafficking", Genes: []string{"LRRK2", "VPS35", "DNAJC6"}},
	{Name: "Lysosomal", Genes: []string{"GBA", "ATP13A2"}},
}

// SpectrumEntry is the number of observed mutations of one substitution class.
type SpectrumEntry struct {
	Substitution string
	Count        int
}

// Spectrum is the transition/transversion mutation spectrum.
var Spectrum = []SpectrumEntry{
	{"C>T", 120},
	{"C>G", 30},
	{"C>A", 40},
	{"T>C", 90},
	{"T>G", 25},
	{"T>A", 35},
}

// Float64Source yields uniform values in [0,1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// Heatmap filler scale and the fixed associations written over it.
const (
	heatmapFillerScale  = 0.2
	missenseAssociation = 0.8
	deletionAssociation = 0.7
)

// HeatmapMatrix returns a genes x mutation-types matrix of relative
// frequencies. Rows follow the table order, columns follow UniqueTypes.
// Values are uniform filler in [0,0.2) except SNCA and LRRK2 in the first
// type column (0.8) and PARK2 in the second type column (0.7).
func HeatmapMatrix(t *Table, src Float64Source) [][]float64 {
	types := t.UniqueTypes()
	m := make([][]float64, t.Len())
	for i, r := range t.records {
		row := make([]float64, len(types))
		for j := range row {
			row[j] = src.Float64() * heatmapFillerScale
		}
		switch r.Gene {
		case "SNCA", "LRRK2":
			if len(row) > 0 {
				row[0] = missenseAssociation
			}
		case "PARK2":
			if len(row) > 1 {
				row[1] = deletionAssociation
			}
		}
		m[i] = row
	}
	return m
}
