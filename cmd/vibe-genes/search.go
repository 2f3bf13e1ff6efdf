package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-genes/internal/duckdb"
	"github.com/inodb/vibe-genes/internal/ensembl"
	"github.com/inodb/vibe-genes/internal/genes"
	"github.com/inodb/vibe-genes/internal/output"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search Ensembl for tRNA synthetase genes and export CSV",
		Long: `Search queries the Ensembl symbol cross-reference endpoint for each of the
37 known aminoacyl-tRNA synthetase symbol patterns, looks up every candidate
gene, filters to canonical chromosomes, deduplicates by gene ID, and writes
the table as CSV. Requests are paced to respect Ensembl's rate limits.`,
		Example: `  vibe-genes search
  vibe-genes search --output genes.csv --delay 200ms
  vibe-genes search --duckdb genes.duckdb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd)
		},
	}

	cmd.Flags().String("species", "", "Ensembl species (default: homo_sapiens)")
	cmd.Flags().String("base-url", "", "Ensembl REST base URL")
	cmd.Flags().Duration("delay", 0, "pause between lookup requests (default: 100ms)")
	cmd.Flags().StringP("output", "o", "", "output CSV file")
	cmd.Flags().String("duckdb", "", "also write results to a DuckDB database at this path")

	viper.BindPFlag("species", cmd.Flags().Lookup("species"))
	viper.BindPFlag("base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("delay", cmd.Flags().Lookup("delay"))
	viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("duckdb", cmd.Flags().Lookup("duckdb"))

	return cmd
}

func runSearch(cmd *cobra.Command) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	client := ensembl.NewClient(viper.GetString("species"))
	if base := viper.GetString("base_url"); base != "" {
		client.SetBaseURL(base)
	}

	finder := genes.NewFinder(client)
	finder.SetLogger(logger)
	finder.SetProgress(os.Stdout)
	finder.SetDelay(viper.GetDuration("delay"))

	fmt.Println("Searching for tRNA synthetase genes in Ensembl...")

	records, err := finder.FindAll(cmd.Context())
	if err != nil {
		return err
	}

	table := genes.Deduplicate(records)
	if len(table) == 0 {
		fmt.Println("No results found or error occurred")
		return nil
	}

	fmt.Printf("\nFound %d tRNA synthetase genes\n", len(table))
	fmt.Println("\nFirst few results:")
	if err := output.WritePreview(os.Stdout, table, output.PreviewRows); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	outPath := viper.GetString("output")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := output.WriteCSV(f, table); err != nil {
		f.Close()
		return fmt.Errorf("write CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	fmt.Printf("\nResults saved to %s\n", outPath)

	if dbPath := viper.GetString("duckdb"); dbPath != "" {
		if err := writeDuckDB(dbPath, table); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", dbPath)
	}

	return nil
}

func writeDuckDB(path string, table []genes.Record) error {
	store, err := duckdb.Open(path)
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer store.Close()

	// Re-runs replace the catalog rather than appending to it.
	if err := store.ClearGenes(); err != nil {
		return fmt.Errorf("clear genes: %w", err)
	}
	if err := store.WriteGenes(table); err != nil {
		return fmt.Errorf("write genes: %w", err)
	}
	return nil
}

// newLogger builds a console logger writing diagnostics to stderr, keeping
// stdout clean for progress and results.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	return cfg.Build()
}
