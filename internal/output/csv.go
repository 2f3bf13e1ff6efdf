// Package output provides gene table export and console formatting.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/inodb/vibe-genes/internal/genes"
)

// DefaultFileName is the CSV file written by a default run.
const DefaultFileName = "trna_synthetase_genes_ensembl.csv"

// CSVWriter writes gene records as comma-separated rows with a fixed
// column order.
type CSVWriter struct {
	w       *csv.Writer
	columns []string
}

// NewCSVWriter creates a CSV writer for the gene table.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		w: csv.NewWriter(w),
		columns: []string{
			"gene_id",
			"symbol",
			"description",
			"chromosome",
			"start",
			"end",
			"strand",
			"biotype",
		},
	}
}

// WriteHeader writes the header row.
func (cw *CSVWriter) WriteHeader() error {
	return cw.w.Write(cw.columns)
}

// Write writes a single gene record.
func (cw *CSVWriter) Write(r genes.Record) error {
	return cw.w.Write([]string{
		r.GeneID,
		r.Symbol,
		r.Description,
		r.Chromosome,
		strconv.FormatInt(r.Start, 10),
		strconv.FormatInt(r.End, 10),
		strconv.Itoa(r.Strand),
		r.Biotype,
	})
}

// Flush flushes buffered rows to the underlying writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// WriteCSV writes the full table (header plus one row per record) to w.
func WriteCSV(w io.Writer, records []genes.Record) error {
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	return cw.Flush()
}
