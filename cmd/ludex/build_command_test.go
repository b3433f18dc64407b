package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"ludex/internal/catalog"
	"ludex/internal/config"
	"ludex/internal/testsupport"
)

const buildXML = `<?xml version="1.0" encoding="utf-8"?>
<LaunchBox>
  <Game>
    <Name>Super Mario World</Name>
    <Platform>SNES</Platform>
    <Developer>Nintendo</Developer>
    <DatabaseID>100</DatabaseID>
    <ReleaseYear>1990</ReleaseYear>
  </Game>
  <GameAlternateName>
    <AlternateName>Super Mario World: Super Mario Bros. 4</AlternateName>
    <DatabaseID>100</DatabaseID>
    <Region>Japan</Region>
  </GameAlternateName>
</LaunchBox>
`

const buildDAT = `
clrmamepro (
	name "Nintendo - Super Nintendo Entertainment System"
)

game (
	name "Super Mario World (USA)"
	rom ( name "Super Mario World (USA).sfc" size 524288 crc ABCD0001 )
)

game (
	name "Chrono Trigger (USA)"
	rom ( name "Chrono Trigger (USA).sfc" size 4194304 crc 2D206BF7 )
)
`

func writeBuildOpenVGDB(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE ROMs (romID INTEGER PRIMARY KEY, romHashCRC TEXT, romFileName TEXT)`,
		`CREATE TABLE RELEASES (
			releaseID INTEGER PRIMARY KEY,
			romID INTEGER,
			releaseTitleName TEXT,
			releaseDescription TEXT,
			releaseDeveloper TEXT,
			releasePublisher TEXT,
			releaseGenre TEXT,
			releaseDate TEXT
		)`,
		`INSERT INTO ROMs (romID, romHashCRC, romFileName) VALUES
			(1, '2D206BF7', 'Chrono Trigger (USA).sfc')`,
		`INSERT INTO RELEASES (releaseID, romID, releaseTitleName, releaseDescription,
			releaseDeveloper, releasePublisher, releaseGenre, releaseDate) VALUES
			(1, 1, 'Chrono Trigger', 'Time travel RPG', 'Square', NULL, 'RPG', '1995-08-11')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("build fixture db: %v", err)
		}
	}
}

func setupBuildEnv(t *testing.T) (string, *config.Config) {
	t.Helper()
	base := t.TempDir()

	xmlPath := filepath.Join(base, "Metadata.xml")
	testsupport.WriteFile(t, xmlPath, buildXML)

	datRoot := filepath.Join(base, "libretro-database")
	testsupport.WriteFile(t,
		filepath.Join(datRoot, "metadat", "no-intro", "Nintendo - Super Nintendo Entertainment System.dat"),
		buildDAT)

	vgdbPath := filepath.Join(base, "openvgdb.sqlite")
	writeBuildOpenVGDB(t, vgdbPath)

	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Sources.LaunchBoxXML = xmlPath
	cfgVal.Sources.LibretroDir = datRoot
	cfgVal.Sources.OpenVGDBPath = vgdbPath
	cfg := &cfgVal

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)
	return configPath, cfg
}

func TestBuildCommandEndToEnd(t *testing.T) {
	configPath, cfg := setupBuildEnv(t)

	stdout, _, err := runCLI(t, []string{"build"}, configPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	requireContains(t, stdout, "Preflight checks:")
	requireContains(t, stdout, "launchbox")
	requireContains(t, stdout, "libretro")
	requireContains(t, stdout, "openvgdb")
	requireContains(t, stdout, "Catalog written to")

	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Platforms != 1 {
		t.Errorf("Platforms = %d, want 1", stats.Platforms)
	}
	if stats.Games != 2 {
		t.Errorf("Games = %d, want 2", stats.Games)
	}
	if stats.AlternateNames != 1 {
		t.Errorf("AlternateNames = %d, want 1", stats.AlternateNames)
	}
	if stats.GamesBySource[catalog.SourceLaunchBox] != 1 {
		t.Errorf("launchbox games = %d, want 1", stats.GamesBySource[catalog.SourceLaunchBox])
	}
	if stats.GamesBySource[catalog.SourceLibretro] != 1 {
		t.Errorf("libretro games = %d, want 1", stats.GamesBySource[catalog.SourceLibretro])
	}

	chrono, err := store.GameByChecksum(ctx, "2D206BF7")
	if err != nil {
		t.Fatalf("GameByChecksum: %v", err)
	}
	if chrono == nil {
		t.Fatal("dat-sourced game missing from catalog")
	}
	if chrono.Title != "Chrono Trigger (USA)" {
		t.Errorf("Title = %q", chrono.Title)
	}
	if chrono.Description != "Time travel RPG" {
		t.Errorf("Description = %q, want the enrichment text", chrono.Description)
	}
	if chrono.Developer != "Square" {
		t.Errorf("Developer = %q, want the enrichment value", chrono.Developer)
	}
	if chrono.OpenVGDBReleaseID != 1 {
		t.Errorf("OpenVGDBReleaseID = %d, want 1", chrono.OpenVGDBReleaseID)
	}
	if chrono.Region != "USA" {
		t.Errorf("Region = %q, want the tag-inferred region", chrono.Region)
	}
	if chrono.MetadataSource != catalog.SourceLibretro {
		t.Errorf("MetadataSource = %q", chrono.MetadataSource)
	}

	smw, err := store.GameByChecksum(ctx, "ABCD0001")
	if err != nil {
		t.Fatalf("GameByChecksum: %v", err)
	}
	if smw == nil {
		t.Fatal("merged game missing from catalog")
	}
	if smw.Title != "Super Mario World" {
		t.Errorf("Title = %q, want the first-source spelling", smw.Title)
	}
	if smw.LibretroTitle != "Super Mario World (USA)" {
		t.Errorf("LibretroTitle = %q", smw.LibretroTitle)
	}
	if smw.Developer != "Nintendo" {
		t.Errorf("Developer = %q, want the launchbox value", smw.Developer)
	}
	if smw.MetadataSource != catalog.SourceLaunchBox {
		t.Errorf("MetadataSource = %q", smw.MetadataSource)
	}
}

func TestBuildCommandPreflightFailure(t *testing.T) {
	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfg := &cfgVal

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	stdout, _, err := runCLI(t, []string{"build"}, configPath)
	if err == nil {
		t.Fatal("expected build to fail with no sources configured")
	}
	requireContains(t, err.Error(), "preflight checks failed")
	requireContains(t, stdout, "no sources configured")
}

func TestBuildCommandRefusesConcurrentRuns(t *testing.T) {
	configPath, cfg := setupBuildEnv(t)

	if err := os.MkdirAll(cfg.Paths.DataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}
	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if !locked {
		t.Fatal("expected to acquire the build lock")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	_, _, err = runCLI(t, []string{"build"}, configPath)
	if err == nil {
		t.Fatal("expected build to fail while the lock is held")
	}
	requireContains(t, err.Error(), "already running")
}
