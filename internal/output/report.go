package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/pdctag/internal/genome"
)

const ruleWidth = 60

// Therapeutic implications listed in the report.
var therapeuticImplications = []string{
	"Alpha-synuclein targeted therapies: for SNCA mutations",
	"LRRK2 inhibitors: in clinical development",
	"Enzyme replacement therapies: for GBA mutations",
	"Antioxidants and mitochondrial protectants",
}

// Screening recommendations listed in the report.
var screeningRecommendations = []string{
	"Parkinson's panel sequencing: " + strings.Join(genome.AnalyzedGenes, ", "),
	"Genetic counseling: for familial forms",
	"GBA testing: important for therapeutic response",
}

// ReportWriter writes the human-readable console report.
// The first write error is kept and returned by Flush.
type ReportWriter struct {
	w   *bufio.Writer
	err error
}

// NewReportWriter creates a report writer on w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: bufio.NewWriter(w)}
}

func (rw *ReportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *ReportWriter) bullet(format string, args ...any) {
	rw.printf("   • "+format+"\n", args...)
}

// WriteBanner writes the program title.
func (rw *ReportWriter) WriteBanner() {
	rw.printf("PARKINSON'S DISEASE GENOMIC ANALYSIS - CTAG DIAGRAM\n")
	rw.printf("%s\n", strings.Repeat("=", ruleWidth))
}

// WriteStep writes a progress line preceded by a blank line.
func (rw *ReportWriter) WriteStep(msg string) {
	rw.printf("\n%s\n", msg)
}

// WritePreview writes the first n records as an indexed tab-delimited table.
func (rw *ReportWriter) WritePreview(t *genome.Table, n int) {
	rw.printf("\nGenomic data preview:\n")
	if rw.err != nil {
		return
	}
	tw := NewTabWriter(rw.w)
	tw.SetIndex(true)
	rw.err = tw.WriteAll(t.Head(n))
}

// WriteGenomicReport writes the five report sections: top mutated genes,
// analyzed genes, therapeutic implications, screening recommendations and
// global statistics.
func (rw *ReportWriter) WriteGenomicReport(t *genome.Table) {
	rw.printf("\nGENOMIC ANALYSIS REPORT - PARKINSON'S DISEASE\n")
	rw.printf("%s\n", strings.Repeat("=", ruleWidth))

	rw.printf("\n1. MOST MUTATED GENES:\n")
	for _, r := range t.TopByFrequency(5) {
		rw.bullet("%s: %.1f%% (%s) - %s", r.Gene, r.FrequencyPercent(), r.MutationType, r.ClinicalSignificance)
	}

	rw.printf("\n2. ANALYSIS OF KEY GENES:\n")
	for _, r := range t.FilterGenes(genome.AnalyzedGenes...) {
		rw.bullet("%s: Frequency %.1f%% - %s", r.Gene, r.FrequencyPercent(), r.ClinicalSignificance)
	}

	rw.printf("\n3. THERAPEUTIC IMPLICATIONS:\n")
	for _, s := range therapeuticImplications {
		rw.bullet("%s", s)
	}

	rw.printf("\n4. SCREENING RECOMMENDATIONS:\n")
	for _, s := range screeningRecommendations {
		rw.bullet("%s", s)
	}

	rw.printf("\n5. GLOBAL STATISTICS:\n")
	rw.bullet("Total number of genes analyzed: %d", t.Len())
	rw.bullet("Mean mutation frequency: %.1f%%", t.MeanFrequency()*100)
	rw.bullet("Pathogenic genes: %d", t.CountSignificance(genome.SignificancePathogenic))
	rw.bullet("Risk factors: %d", t.CountSignificance(genome.SignificanceRiskFactor))
}

// WriteArtifacts writes the completion message and the generated files.
func (rw *ReportWriter) WriteArtifacts(paths []string) {
	rw.printf("\nGenomic analysis complete!\n")
	rw.printf("Generated files:\n")
	for _, p := range paths {
		rw.bullet("%s", p)
	}
}

// Flush flushes buffered output and returns the first error encountered.
func (rw *ReportWriter) Flush() error {
	if rw.err != nil {
		return rw.err
	}
	return rw.w.Flush()
}
