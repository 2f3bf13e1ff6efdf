package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-genes/internal/genes"
)

// WriteGenes batch-inserts gene records using the Appender API. Records
// sharing a gene ID are deduplicated before writing to satisfy the
// primary key.
func (s *Store) WriteGenes(records []genes.Record) error {
	if len(records) == 0 {
		return nil
	}

	deduped := genes.Deduplicate(records)

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "genes")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			r.GeneID, r.Symbol, r.Description, r.Chromosome,
			r.Start, r.End, int32(r.Strand), r.Biotype,
		); err != nil {
			return fmt.Errorf("append gene %s: %w", r.GeneID, err)
		}
	}

	return appender.Flush()
}

// GeneCount returns the number of stored genes.
func (s *Store) GeneCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM genes").Scan(&count); err != nil {
		return 0, fmt.Errorf("count genes: %w", err)
	}
	return count, nil
}

// ClearGenes removes all stored genes.
func (s *Store) ClearGenes() error {
	_, err := s.db.Exec("DELETE FROM genes")
	return err
}

// LookupGene fetches a stored gene by its Ensembl ID. Returns nil when
// the gene is not present.
func (s *Store) LookupGene(geneID string) (*genes.Record, error) {
	rows, err := s.queryGenes("WHERE gene_id=?", geneID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// SearchByChromosome returns all stored genes on a chromosome, ordered
// by start position.
func (s *Store) SearchByChromosome(chromosome string) ([]genes.Record, error) {
	return s.queryGenes("WHERE chromosome=? ORDER BY start_pos", chromosome)
}

func (s *Store) queryGenes(where string, args ...any) ([]genes.Record, error) {
	q := `SELECT gene_id, symbol, description, chromosome,
		start_pos, end_pos, strand, biotype
		FROM genes ` + where

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query genes: %w", err)
	}
	defer rows.Close()

	var records []genes.Record
	for rows.Next() {
		var r genes.Record
		if err := rows.Scan(
			&r.GeneID, &r.Symbol, &r.Description, &r.Chromosome,
			&r.Start, &r.End, &r.Strand, &r.Biotype,
		); err != nil {
			return nil, fmt.Errorf("scan gene: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genes: %w", err)
	}
	return records, nil
}
