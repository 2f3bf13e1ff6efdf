package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-genes/internal/genes"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecords() []genes.Record {
	return []genes.Record{
		{
			GeneID:      "ENSG00000090861",
			Symbol:      "AARS1",
			Description: "alanyl-tRNA synthetase 1",
			Chromosome:  "16",
			Start:       70252295,
			End:         70289552,
			Strand:      -1,
			Biotype:     "protein_coding",
		},
		{
			GeneID:      "ENSG00000124608",
			Symbol:      "AARS2",
			Description: "alanyl-tRNA synthetase 2, mitochondrial",
			Chromosome:  "6",
			Start:       44299694,
			End:         44313323,
			Strand:      1,
			Biotype:     "protein_coding",
		},
		{
			GeneID:      "ENSG00000110619",
			Symbol:      "CARS1",
			Description: "cysteinyl-tRNA synthetase 1",
			Chromosome:  "11",
			Start:       3042252,
			End:         3098603,
			Strand:      1,
			Biotype:     "protein_coding",
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupGenes(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteGenes(testRecords()))

	count, err := s.GeneCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	r, err := s.LookupGene("ENSG00000090861")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "AARS1", r.Symbol)
	assert.Equal(t, "16", r.Chromosome)
	assert.Equal(t, int64(70252295), r.Start)
	assert.Equal(t, -1, r.Strand)

	r, err = s.LookupGene("ENSG_MISSING")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestWriteGenes_DeduplicatesBeforeInsert(t *testing.T) {
	s := openInMemory(t)

	records := testRecords()
	records = append(records, records[0]) // duplicate gene_id

	require.NoError(t, s.WriteGenes(records))

	count, err := s.GeneCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestWriteGenes_Empty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteGenes(nil))

	count, err := s.GeneCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSearchByChromosome(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteGenes(testRecords()))

	found, err := s.SearchByChromosome("16")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "AARS1", found[0].Symbol)

	found, err = s.SearchByChromosome("21")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestClearGenes(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteGenes(testRecords()))
	require.NoError(t, s.ClearGenes())

	count, err := s.GeneCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}
