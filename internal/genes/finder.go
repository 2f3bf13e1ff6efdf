package genes

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/vibe-genes/internal/ensembl"
)

// DefaultDelay is the pause between consecutive lookup requests. The
// Ensembl REST service rate-limits aggressive clients; this is cooperative
// pacing, not a retry policy.
const DefaultDelay = 100 * time.Millisecond

// API defines the Ensembl operations the finder needs. *ensembl.Client
// satisfies it; tests substitute a fake.
type API interface {
	SearchSymbols(ctx context.Context, query string) ([]ensembl.Xref, error)
	LookupGene(ctx context.Context, id string) (*ensembl.Gene, error)
}

// Finder runs the search-and-filter loop over the synthetase patterns.
type Finder struct {
	api      API
	delay    time.Duration
	logger   *zap.Logger
	progress io.Writer
}

// NewFinder creates a finder backed by the given API client.
func NewFinder(api API) *Finder {
	return &Finder{
		api:      api,
		delay:    DefaultDelay,
		logger:   zap.NewNop(),
		progress: io.Discard,
	}
}

// SetDelay configures the pause between lookup requests. Zero disables pacing.
func (f *Finder) SetDelay(d time.Duration) {
	f.delay = d
}

// SetLogger sets the logger for per-query failure diagnostics.
func (f *Finder) SetLogger(l *zap.Logger) {
	f.logger = l
}

// SetProgress sets the writer for human-readable progress lines.
func (f *Finder) SetProgress(w io.Writer) {
	f.progress = w
}

// FindAll searches every pattern in order, looks up each returned
// cross-reference, and accumulates the records that pass the inclusion
// filters. Query failures are logged and skipped; a pattern with no
// usable results simply contributes no records. The returned slice may
// contain duplicate gene IDs; callers deduplicate with Deduplicate.
//
// The only error returned is context cancellation, with the records
// accumulated so far.
func (f *Finder) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record

	for _, pattern := range SynthetasePatterns {
		fmt.Fprintf(f.progress, "Searching for %s...\n", pattern)

		xrefs, err := f.api.SearchSymbols(ctx, pattern)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			f.logger.Warn("symbol search failed",
				zap.String("pattern", pattern),
				zap.Error(err))
			continue
		}

		for _, xref := range xrefs {
			gene, err := f.api.LookupGene(ctx, xref.ID)
			if err != nil {
				if ctx.Err() != nil {
					return records, ctx.Err()
				}
				f.logger.Warn("gene lookup failed",
					zap.String("pattern", pattern),
					zap.String("id", xref.ID),
					zap.Error(err))
			} else if rec, ok := project(pattern, gene); ok {
				records = append(records, rec)
			}

			if err := f.pace(ctx); err != nil {
				return records, err
			}
		}
	}

	return records, nil
}

// pace sleeps for the configured delay, or returns early if the context
// is cancelled.
func (f *Finder) pace(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(f.delay):
		return nil
	}
}
