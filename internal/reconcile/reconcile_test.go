package reconcile_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ludex/internal/catalog"
	"ludex/internal/config"
	"ludex/internal/logging"
	"ludex/internal/reconcile"
	"ludex/internal/testsupport"
)

type stubPhase struct {
	name  string
	stats reconcile.Stats
	err   error
	runs  *[]string
}

func (p stubPhase) Name() string { return p.name }

func (p stubPhase) Run(ctx context.Context, env *reconcile.Env) (reconcile.Stats, error) {
	*p.runs = append(*p.runs, p.name)
	return p.stats, p.err
}

func newTestEnv(t *testing.T) *reconcile.Env {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return reconcile.NewEnv(cfg, store, logging.NewNop())
}

func TestRunnerExecutesPhasesInOrder(t *testing.T) {
	env := newTestEnv(t)
	var runs []string
	runner := reconcile.NewRunner(env,
		stubPhase{name: "first", stats: reconcile.Stats{Processed: 10, Inserted: 8, Deduplicated: 2}, runs: &runs},
		stubPhase{name: "second", stats: reconcile.Stats{Processed: 4, MatchedChecksum: 3, MatchedExact: 1}, runs: &runs},
	)

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(runs) != 2 || runs[0] != "first" || runs[1] != "second" {
		t.Fatalf("unexpected execution order %v", runs)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "first" || results[0].Stats.Inserted != 8 {
		t.Errorf("unexpected first result %+v", results[0])
	}
	if results[1].Stats.Matched() != 4 {
		t.Errorf("expected matched total 4, got %d", results[1].Stats.Matched())
	}
	if results[1].Duration < 0 {
		t.Errorf("negative duration %v", results[1].Duration)
	}
}

func TestRunnerStopsAtFirstFailure(t *testing.T) {
	env := newTestEnv(t)
	var runs []string
	boom := errors.New("source unreadable")
	runner := reconcile.NewRunner(env,
		stubPhase{name: "first", stats: reconcile.Stats{Processed: 1}, runs: &runs},
		stubPhase{name: "broken", err: boom, runs: &runs},
		stubPhase{name: "never", runs: &runs},
	)

	results, err := runner.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
	if !strings.Contains(err.Error(), "phase broken") {
		t.Errorf("error should name the phase: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected the third phase to be skipped, ran %v", runs)
	}
	if len(results) != 1 || results[0].Name != "first" {
		t.Errorf("expected only the completed phase in results, got %+v", results)
	}
}

func TestRunnerHonorsCancelledContext(t *testing.T) {
	env := newTestEnv(t)
	var runs []string
	runner := reconcile.NewRunner(env, stubPhase{name: "first", runs: &runs})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("no phase should run after cancellation, ran %v", runs)
	}
}

func TestNewEnvCopiesConfigSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Matching.FuzzyThreshold = 0.9
	cfg.Import.BatchSize = 250
	cfg.Import.AltNameBatchSize = 300

	env := reconcile.NewEnv(&cfg, nil, logging.NewNop())
	if env.FuzzyThreshold != 0.9 {
		t.Errorf("FuzzyThreshold = %v, want 0.9", env.FuzzyThreshold)
	}
	if env.BatchSize != 250 || env.AltNameBatchSize != 300 {
		t.Errorf("batch sizes = %d/%d, want 250/300", env.BatchSize, env.AltNameBatchSize)
	}
}

func TestLoadIndexKeepsInsertionOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	platformID, err := store.UpsertPlatform(ctx, &catalog.Platform{Name: "Super Nintendo Entertainment System"})
	if err != nil {
		t.Fatalf("UpsertPlatform: %v", err)
	}
	games := []*catalog.Game{
		{ID: "id-1", Title: "Chrono Trigger (USA)", PlatformID: platformID, LibretroCRC32: "2D206BF7", MetadataSource: catalog.SourceLaunchBox},
		{ID: "id-2", Title: "EarthBound (USA)", PlatformID: platformID, MetadataSource: catalog.SourceLaunchBox},
	}
	if err := store.InsertGames(ctx, games); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}

	ix, ids, err := reconcile.LoadIndex(ctx, store)
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if ix.Len() != 2 || len(ids) != 2 {
		t.Fatalf("indexed %d rows with %d ids, want 2/2", ix.Len(), len(ids))
	}
	if ids[0] != "id-1" || ids[1] != "id-2" {
		t.Errorf("ids out of order: %v", ids)
	}
	if row, ok := ix.LookupChecksum(platformID, "2d206bf7"); !ok || row != 0 {
		t.Errorf("LookupChecksum = (%d, %v), want (0, true)", row, ok)
	}
	if row, ok := ix.LookupTitle(platformID, "chrono trigger"); !ok || row != 0 {
		t.Errorf("LookupTitle = (%d, %v), want (0, true)", row, ok)
	}
	if _, ok := ix.LookupTitle(platformID+1, "earthbound"); ok {
		t.Error("titles are keyed by platform, a different platform must miss")
	}
}
