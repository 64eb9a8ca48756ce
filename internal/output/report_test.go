package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/pdctag/internal/genome"
)

func writeReport(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	rw := NewReportWriter(&buf)
	rw.WriteGenomicReport(genome.Generate())
	require.NoError(t, rw.Flush())
	return buf.String()
}

func TestGenomicReport_Sections(t *testing.T) {
	out := writeReport(t)

	for _, section := range []string{
		"1. MOST MUTATED GENES:",
		"2. ANALYSIS OF KEY GENES:",
		"3. THERAPEUTIC IMPLICATIONS:",
		"4. SCREENING RECOMMENDATIONS:",
		"5. GLOBAL STATISTICS:",
	} {
		assert.Contains(t, out, section)
	}

	for _, gene := range []string{"SNCA", "LRRK2", "PARK2", "GBA"} {
		assert.Contains(t, out, gene)
	}
}

func TestGenomicReport_TopGenes(t *testing.T) {
	out := writeReport(t)

	start := strings.Index(out, "1. MOST MUTATED GENES:")
	end := strings.Index(out, "2. ANALYSIS OF KEY GENES:")
	require.True(t, start >= 0 && end > start)

	section := strings.TrimSpace(out[start:end])
	lines := strings.Split(section, "\n")[1:]
	require.Len(t, lines, 5)
	assert.Equal(t, "   • SNCA: 15.0% (Missense) - Pathogenic", lines[0])
	assert.Equal(t, "   • LRRK2: 12.0% (Missense) - Pathogenic", lines[1])
	assert.Equal(t, "   • GBA: 10.0% (Missense) - Risk_Factor", lines[2])
	assert.Equal(t, "   • PARK2: 8.0% (Deletion) - Pathogenic", lines[3])
	assert.Equal(t, "   • PINK1: 6.0% (Missense) - Pathogenic", lines[4])
}

func TestGenomicReport_KeyGenes(t *testing.T) {
	out := writeReport(t)

	assert.Contains(t, out, "   • SNCA: Frequency 15.0% - Pathogenic\n")
	assert.Contains(t, out, "   • LRRK2: Frequency 12.0% - Pathogenic\n")
	assert.Contains(t, out, "   • PARK2: Frequency 8.0% - Pathogenic\n")
	assert.Contains(t, out, "   • GBA: Frequency 10.0% - Risk_Factor\n")
}

func TestGenomicReport_Statistics(t *testing.T) {
	out := writeReport(t)

	assert.Contains(t, out, "Total number of genes analyzed: 14")
	assert.Contains(t, out, "Mean mutation frequency: 5.4%")
	assert.Contains(t, out, "Pathogenic genes: 13")
	assert.Contains(t, out, "Risk factors: 1")
	assert.Contains(t, out, "Parkinson's panel sequencing: SNCA, LRRK2, PARK2, GBA")
}

func TestReportWriter_PreviewAndArtifacts(t *testing.T) {
	var buf bytes.Buffer
	rw := NewReportWriter(&buf)

	rw.WriteBanner()
	rw.WritePreview(genome.Generate(), 8)
	rw.WriteStep("Creating CTAG diagram...")
	rw.WriteArtifacts([]string{"a.png", "b.png"})
	require.NoError(t, rw.Flush())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "PARKINSON'S DISEASE GENOMIC ANALYSIS - CTAG DIAGRAM\n"))
	assert.Contains(t, out, "7\tATP13A2\t0.03\tMissense\tPathogenic\n")
	assert.NotContains(t, out, "UCHL1")
	assert.Contains(t, out, "\nCreating CTAG diagram...\n")
	assert.Contains(t, out, "   • a.png\n   • b.png\n")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReportWriter_KeepsFirstError(t *testing.T) {
	rw := NewReportWriter(failingWriter{})
	rw.WriteGenomicReport(genome.Generate())
	rw.WriteArtifacts([]string{"a.png"})

	err := rw.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
