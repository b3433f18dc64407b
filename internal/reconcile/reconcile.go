package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ludex/internal/catalog"
	"ludex/internal/config"
	"ludex/internal/gameid"
	"ludex/internal/logging"
	"ludex/internal/titles"
)

// Stats counts what one phase did with the records it read.
type Stats struct {
	Processed       int64
	MatchedChecksum int64
	MatchedExact    int64
	MatchedFuzzy    int64
	Inserted        int64
	Deduplicated    int64
	Skipped         int64
	AlternateNames  int64
}

// Matched reports the total records merged into existing rows, across
// all match kinds.
func (s Stats) Matched() int64 {
	return s.MatchedChecksum + s.MatchedExact + s.MatchedFuzzy
}

// Env is the shared state a phase runs against.
type Env struct {
	Store            *catalog.Store
	Logger           *slog.Logger
	FuzzyThreshold   float64
	BatchSize        int
	AltNameBatchSize int
}

// NewEnv builds a phase environment from the loaded configuration.
func NewEnv(cfg *config.Config, store *catalog.Store, logger *slog.Logger) *Env {
	return &Env{
		Store:            store,
		Logger:           logger,
		FuzzyThreshold:   cfg.Matching.FuzzyThreshold,
		BatchSize:        cfg.Import.BatchSize,
		AltNameBatchSize: cfg.Import.AltNameBatchSize,
	}
}

// Phase is one source ingestion pass. Run reads the source, reconciles
// its records against the store in env, and reports what it did. A
// returned error aborts the whole build.
type Phase interface {
	Name() string
	Run(ctx context.Context, env *Env) (Stats, error)
}

// PhaseResult records the outcome of one completed phase.
type PhaseResult struct {
	Name     string
	Stats    Stats
	Duration time.Duration
}

// Runner executes phases sequentially in the order given.
type Runner struct {
	env    *Env
	phases []Phase
}

func NewRunner(env *Env, phases ...Phase) *Runner {
	return &Runner{env: env, phases: phases}
}

// Run executes every phase in order. It stops at the first failure and
// returns the results of the phases that completed along with the error.
func (r *Runner) Run(ctx context.Context) ([]PhaseResult, error) {
	logger := logging.NewComponentLogger(r.env.Logger, "reconcile")
	results := make([]PhaseResult, 0, len(r.phases))
	for _, phase := range r.phases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		logger.Info("phase starting", logging.String(logging.FieldPhase, phase.Name()))
		started := time.Now()
		stats, err := phase.Run(ctx, r.env)
		if err != nil {
			return results, fmt.Errorf("phase %s: %w", phase.Name(), err)
		}
		duration := time.Since(started)
		results = append(results, PhaseResult{Name: phase.Name(), Stats: stats, Duration: duration})

		logger.Info("phase complete",
			logging.String(logging.FieldPhase, phase.Name()),
			logging.Int64("processed", stats.Processed),
			logging.Int64("matched_checksum", stats.MatchedChecksum),
			logging.Int64("matched_exact", stats.MatchedExact),
			logging.Int64("matched_fuzzy", stats.MatchedFuzzy),
			logging.Int64("inserted", stats.Inserted),
			logging.Int64("deduplicated", stats.Deduplicated),
			logging.Int64("skipped", stats.Skipped),
			logging.Duration("duration", duration),
		)
	}
	return results, nil
}

// LoadIndex builds a match index over every canonical game, in insertion
// order so earlier sources win first-writer ties. The returned slice maps
// index rows to game ids.
func LoadIndex(ctx context.Context, store *catalog.Store) (*gameid.Index, []string, error) {
	keys, err := store.ListGameKeys(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load match index: %w", err)
	}

	ix := gameid.NewIndex()
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ix.Add(gameid.Entry{
			PlatformID: key.PlatformID,
			Normalized: titles.Normalize(key.Title),
			Checksum:   key.CRC32,
		})
		ids = append(ids, key.ID)
	}
	return ix, ids, nil
}
