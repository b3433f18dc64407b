package openvgdb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"ludex/internal/catalog"
	"ludex/internal/logging"
	"ludex/internal/openvgdb"
	"ludex/internal/reconcile"
	"ludex/internal/testsupport"
)

func seedCatalog(t *testing.T) (*catalog.Store, *reconcile.Env, []string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	env := reconcile.NewEnv(cfg, store, logging.NewNop())
	ctx := context.Background()

	platformID, err := store.UpsertPlatform(ctx, &catalog.Platform{Name: "Super Nintendo Entertainment System"})
	if err != nil {
		t.Fatalf("UpsertPlatform: %v", err)
	}

	games := []*catalog.Game{
		{
			ID:             uuid.NewString(),
			Title:          "Chrono Trigger (USA)",
			PlatformID:     platformID,
			LibretroCRC32:  "2D206BF7",
			Developer:      "Squaresoft",
			MetadataSource: catalog.SourceLaunchBox,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Sonic The Hedgehog 2",
			PlatformID:     platformID,
			MetadataSource: catalog.SourceLibretro,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Sonic The Hedgehog 2 (Japan)",
			PlatformID:     platformID,
			Region:         "Japan",
			MetadataSource: catalog.SourceLibretro,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Final Fantasy Tactics Advanced",
			PlatformID:     platformID,
			MetadataSource: catalog.SourceLibretro,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Hollow Entry",
			PlatformID:     platformID,
			MetadataSource: catalog.SourceLibretro,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Obscure Homebrew Thing",
			PlatformID:     platformID,
			MetadataSource: catalog.SourceLibretro,
		},
	}
	if err := store.InsertGames(ctx, games); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}

	ids := make([]string, len(games))
	for i, game := range games {
		ids[i] = game.ID
	}
	return store, env, ids
}

func TestPhaseEnrichesMatchedGames(t *testing.T) {
	store, env, ids := seedCatalog(t)
	ctx := context.Background()

	stats, err := openvgdb.NewPhase(writeOpenVGDB(t)).Run(ctx, env)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := reconcile.Stats{
		Processed:       6,
		MatchedChecksum: 1,
		MatchedExact:    2,
		MatchedFuzzy:    1,
		Skipped:         1,
	}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}

	chrono, err := store.GameByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if chrono.Description != "Time travel RPG" || chrono.ReleaseDate != "1995-08-11" {
		t.Errorf("enriched fields = (%q, %q)", chrono.Description, chrono.ReleaseDate)
	}
	if chrono.Developer != "Squaresoft" {
		t.Errorf("developer = %q, existing values must win", chrono.Developer)
	}
	if chrono.OpenVGDBReleaseID != 1 {
		t.Errorf("release id = %d, want 1", chrono.OpenVGDBReleaseID)
	}
	if chrono.MetadataSource != catalog.SourceLaunchBox {
		t.Errorf("MetadataSource = %q, enrichment must not reclaim sourced rows", chrono.MetadataSource)
	}

	// Both regional variants resolve to the same release.
	for _, id := range ids[1:3] {
		game, err := store.GameByID(ctx, id)
		if err != nil {
			t.Fatalf("GameByID: %v", err)
		}
		if game.Publisher != "Sega" || game.OpenVGDBReleaseID != 2 {
			t.Errorf("%s = (%q, %d), want the shared release", game.Title, game.Publisher, game.OpenVGDBReleaseID)
		}
	}

	tactics, err := store.GameByID(ctx, ids[3])
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if tactics.Genre != "Tactics" || tactics.OpenVGDBReleaseID != 4 {
		t.Errorf("fuzzy enrichment = (%q, %d)", tactics.Genre, tactics.OpenVGDBReleaseID)
	}

	hollow, err := store.GameByID(ctx, ids[4])
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if hollow.OpenVGDBReleaseID != 0 {
		t.Errorf("release id = %d, dataless matches must not be recorded", hollow.OpenVGDBReleaseID)
	}

	unmatched, err := store.GameByID(ctx, ids[5])
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if unmatched.Description != "" || unmatched.OpenVGDBReleaseID != 0 {
		t.Errorf("unmatched row changed: %+v", unmatched)
	}
}

func TestPhaseNeverInsertsGames(t *testing.T) {
	store, env, _ := seedCatalog(t)
	ctx := context.Background()

	before, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if _, err := openvgdb.NewPhase(writeOpenVGDB(t)).Run(ctx, env); err != nil {
		t.Fatalf("Run: %v", err)
	}
	after, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if after.Games != before.Games {
		t.Errorf("games went from %d to %d, enrichment must not insert", before.Games, after.Games)
	}
	if after.GamesBySource[catalog.SourceOpenVGDB] != 0 {
		t.Errorf("openvgdb-sourced rows = %d, want 0", after.GamesBySource[catalog.SourceOpenVGDB])
	}
}

func TestPhaseRequiresDatabase(t *testing.T) {
	_, env, _ := seedCatalog(t)

	missing := filepath.Join(t.TempDir(), "absent.sqlite")
	if _, err := openvgdb.NewPhase(missing).Run(context.Background(), env); err == nil {
		t.Fatal("expected an error when the database file is missing")
	}
}
