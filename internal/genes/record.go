package genes

import (
	"strings"

	"github.com/inodb/vibe-genes/internal/ensembl"
)

// Record is one row of the final gene table.
type Record struct {
	GeneID      string
	Symbol      string
	Description string
	Chromosome  string
	Start       int64
	End         int64
	Strand      int
	Biotype     string
}

// project converts a looked-up gene into a Record if it passes the
// inclusion filters for the given search pattern:
//
//  1. the display name must contain the pattern as a substring (a loose
//     symbol search returns unrelated genes);
//  2. the gene must sit on a canonical chromosome (excludes scaffolds,
//     patches, and haplotypes).
//
// Both filters fail closed: a gene with no display name or no sequence
// region name is excluded.
func project(pattern string, g *ensembl.Gene) (Record, bool) {
	if g.DisplayName == "" || !strings.Contains(g.DisplayName, pattern) {
		return Record{}, false
	}
	if !IsCanonicalChromosome(g.SeqRegionName) {
		return Record{}, false
	}

	return Record{
		GeneID:      g.ID,
		Symbol:      g.DisplayName,
		Description: g.Description,
		Chromosome:  g.SeqRegionName,
		Start:       g.Start,
		End:         g.End,
		Strand:      g.Strand,
		Biotype:     g.Biotype,
	}, true
}

// Deduplicate removes records sharing a gene ID, keeping the first
// occurrence in slice order. Multiple search patterns (or multiple
// cross-references within one pattern) can resolve to the same gene.
func Deduplicate(records []Record) []Record {
	seen := make(map[string]bool, len(records))
	deduped := make([]Record, 0, len(records))
	for _, r := range records {
		if seen[r.GeneID] {
			continue
		}
		seen[r.GeneID] = true
		deduped = append(deduped, r)
	}
	return deduped
}
