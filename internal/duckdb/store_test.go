package duckdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/pdctag/internal/genome"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func loaded(t *testing.T) *Store {
	t.Helper()
	s := openInMemory(t)
	require.NoError(t, s.LoadTable(genome.Generate()))
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.duckdb")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.LoadTable(genome.Generate()))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.Records()
	require.NoError(t, err)
	assert.Len(t, records, 14)
}

func TestWriteRecords_RoundTrip(t *testing.T) {
	s := loaded(t)

	records, err := s.Records()
	require.NoError(t, err)
	if diff := cmp.Diff(genome.Generate().Records(), records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRecords_SkipsDuplicateGenes(t *testing.T) {
	s := openInMemory(t)

	recs := []genome.Record{
		{Gene: "SNCA", MutationFrequency: 0.15, MutationType: genome.TypeMissense, ClinicalSignificance: genome.SignificancePathogenic},
		{Gene: "SNCA", MutationFrequency: 0.99, MutationType: genome.TypeDeletion, ClinicalSignificance: genome.SignificancePathogenic},
	}
	require.NoError(t, s.WriteRecords(recs))

	records, err := s.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.15, records[0].MutationFrequency)
}

func TestWriteRecords_Empty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteRecords(nil))

	mean, err := s.MeanFrequency()
	require.NoError(t, err)
	assert.Zero(t, mean)
}

func TestTopByFrequency(t *testing.T) {
	s := loaded(t)

	top, err := s.TopByFrequency(5)
	require.NoError(t, err)

	var genes []string
	for _, r := range top {
		genes = append(genes, r.Gene)
	}
	assert.Equal(t, []string{"SNCA", "LRRK2", "GBA", "PARK2", "PINK1"}, genes)
}

func TestTypeCounts_MatchesTable(t *testing.T) {
	s := loaded(t)

	counts, err := s.TypeCounts()
	require.NoError(t, err)
	assert.Equal(t, genome.Generate().TypeCounts(), counts)
}

func TestMeanFrequency(t *testing.T) {
	s := loaded(t)

	mean, err := s.MeanFrequency()
	require.NoError(t, err)
	assert.InDelta(t, genome.Generate().MeanFrequency(), mean, 1e-9)
}

func TestClearRecords(t *testing.T) {
	s := loaded(t)
	require.NoError(t, s.ClearRecords())

	records, err := s.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestQuery(t *testing.T) {
	s := loaded(t)

	res, err := s.Query(context.Background(),
		`SELECT gene, mutation_frequency FROM mutation_records WHERE clinical_significance = 'Risk_Factor'`)
	require.NoError(t, err)

	assert.Equal(t, []string{"gene", "mutation_frequency"}, res.Columns)
	assert.Equal(t, [][]string{{"GBA", "0.1"}}, res.Rows)
}

func TestQuery_Null(t *testing.T) {
	s := openInMemory(t)

	res, err := s.Query(context.Background(), `SELECT NULL AS missing`)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"NULL"}}, res.Rows)
}

func TestQuery_InvalidSQL(t *testing.T) {
	s := openInMemory(t)

	_, err := s.Query(context.Background(), "SELECT FROM nowhere")
	assert.Error(t, err)
}

func TestWriteRecords_SecondBatchAppends(t *testing.T) {
	s := loaded(t)

	require.NoError(t, s.WriteRecords([]genome.Record{
		{Gene: "SNCA", MutationFrequency: 0.5},
		{Gene: "VPS35", MutationFrequency: 0.01, MutationType: genome.TypeMissense, ClinicalSignificance: genome.SignificancePathogenic},
	}))

	records, err := s.Records()
	require.NoError(t, err)
	require.Len(t, records, 15)
	assert.Equal(t, 0.15, records[0].MutationFrequency)
	assert.Equal(t, "VPS35", records[14].Gene)
}
