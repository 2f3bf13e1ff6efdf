// Package main provides the vibe-genes command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-genes/internal/ensembl"
	"github.com/inodb/vibe-genes/internal/genes"
	"github.com/inodb/vibe-genes/internal/output"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibe-genes",
		Short: "Catalog gene families from the Ensembl REST API",
		Long: `vibe-genes enumerates the human aminoacyl-tRNA synthetase gene family
from the Ensembl REST API. It searches each known synthetase symbol, looks up
every cross-referenced gene, keeps genes on canonical chromosomes whose symbol
matches the search, and exports the deduplicated table as CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().String("config", "", "config file (default: ~/.vibe-genes.yaml)")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func initConfig() {
	viper.SetDefault("species", ensembl.DefaultSpecies)
	viper.SetDefault("base_url", ensembl.DefaultBaseURL)
	viper.SetDefault("delay", genes.DefaultDelay)
	viper.SetDefault("output", output.DefaultFileName)
	viper.SetDefault("duckdb", "")

	viper.SetConfigName(".vibe-genes")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("VIBE_GENES")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

func configFilePath() string {
	if cfg := viper.ConfigFileUsed(); cfg != "" {
		return cfg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vibe-genes.yaml"
	}
	return filepath.Join(home, ".vibe-genes.yaml")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vibe-genes version %s (%s) built %s\n", version, commit, date)
		},
	}
}
