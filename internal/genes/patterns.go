// Package genes enumerates the human aminoacyl-tRNA synthetase gene family
// from the Ensembl REST API and filters the results to canonical chromosomes.
package genes

// SynthetasePatterns lists the gene symbol patterns searched for, covering
// the known cytoplasmic and mitochondrial aminoacyl-tRNA synthetase families.
// The order here determines search order and therefore output row order.
var SynthetasePatterns = []string{
	"AARS1", "AARS2", "CARS1", "CARS2", "DARS1", "DARS2", "EARS2",
	"EPRS1", "FARSA", "FARSB", "FARS2", "GARS1", "HARS1", "HARS2",
	"IARS1", "IARS2", "KARS1", "LARS1", "LARS2", "MARS1", "MARS2",
	"NARS1", "NARS2", "PARS2", "QARS1", "RARS1", "RARS2", "SARS1",
	"SARS2", "TARS1", "TARS2", "VARS1", "VARS2", "WARS1", "WARS2",
	"YARS1", "YARS2",
}

// canonicalChromosomes is the set of primary assembly sequence names:
// the 22 autosomes, X, Y, and the mitochondrial genome.
var canonicalChromosomes = map[string]bool{
	"1": true, "2": true, "3": true, "4": true, "5": true,
	"6": true, "7": true, "8": true, "9": true, "10": true,
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"16": true, "17": true, "18": true, "19": true, "20": true,
	"21": true, "22": true, "X": true, "Y": true, "MT": true,
}

// IsCanonicalChromosome reports whether name is a canonical chromosome.
// Alternate assembly scaffolds, patches, and haplotypes (and the empty
// string) are not canonical.
func IsCanonicalChromosome(name string) bool {
	return canonicalChromosomes[name]
}
