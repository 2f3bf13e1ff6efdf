package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-genes/internal/genes"
)

func sampleRecords() []genes.Record {
	return []genes.Record{
		{
			GeneID:      "ENSG00000090861",
			Symbol:      "AARS1",
			Description: "alanyl-tRNA synthetase 1 [Source:HGNC Symbol;Acc:HGNC:20]",
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
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "gene_id,symbol,description,chromosome,start,end,strand,biotype", lines[0])
	assert.Equal(t, "ENSG00000124608,AARS2,\"alanyl-tRNA synthetase 2, mitochondrial\",6,44299694,44313323,1,protein_coding", lines[2])
}

func TestWriteCSV_QuotesCommaInDescription(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()[1:]))

	// encoding/csv quotes the comma-containing description field.
	assert.Contains(t, buf.String(), `"alanyl-tRNA synthetase 2, mitochondrial"`)
}

func TestWriteCSV_EmptyDescription(t *testing.T) {
	recs := sampleRecords()[:1]
	recs[0].Description = ""

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, recs))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ENSG00000090861,AARS1,,16,70252295,70289552,-1,protein_coding", lines[1])
}

func TestWriteCSV_HeaderOnlyForNoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "gene_id,symbol,description,chromosome,start,end,strand,biotype\n", buf.String())
}

func TestWritePreview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, sampleRecords(), 5))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "symbol")
	assert.Contains(t, lines[0], "description")
	assert.Contains(t, lines[1], "AARS1")
	assert.Contains(t, lines[1], "70252295")
	assert.Contains(t, lines[2], "AARS2")
}

func TestWritePreview_TruncatesToN(t *testing.T) {
	records := make([]genes.Record, 10)
	for i := range records {
		records[i] = genes.Record{Symbol: "GENE", Chromosome: "1"}
	}

	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, records, 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1+PreviewRows)
}
