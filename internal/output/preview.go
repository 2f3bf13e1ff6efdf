package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inodb/vibe-genes/internal/genes"
)

// PreviewRows is how many rows WritePreview shows by default.
const PreviewRows = 5

// WritePreview prints the first n records as an aligned console table
// with a reduced column set. n <= 0 falls back to PreviewRows.
func WritePreview(w io.Writer, records []genes.Record, n int) error {
	if n <= 0 {
		n = PreviewRows
	}
	if len(records) < n {
		n = len(records)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "symbol\tchromosome\tstart\tend\tdescription")
	for _, r := range records[:n] {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			r.Symbol, r.Chromosome, r.Start, r.End, r.Description)
	}
	return tw.Flush()
}
