package main

import (
	"path/filepath"
	"strings"
	"testing"

	"ludex/internal/testsupport"
)

const inspectDAT = `
clrmamepro (
	name "Nintendo - Game Boy"
	description "Nintendo - Game Boy"
	version "1.0"
)

game (
	name "Tetris (World)"
	region "World"
	rom ( name "Tetris (World).gb" size 32768 crc 46DF91AD )
)

game (
	name "Homebrew Demo"
	rom ( name "demo.gb" size 32768 )
)
`

func TestDATInspectSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Nintendo - Game Boy.dat")
	testsupport.WriteFile(t, path, inspectDAT)

	stdout, _, err := runCLI(t, []string{"dat", "inspect", path}, "")
	if err != nil {
		t.Fatalf("dat inspect: %v", err)
	}
	requireContains(t, stdout, "Name:        Nintendo - Game Boy")
	requireContains(t, stdout, "Version:     1.0")
	requireContains(t, stdout, "Games:       2")
	requireContains(t, stdout, "ROM entries: 2")
	requireContains(t, stdout, "With CRC32:  1")
}

func TestDATInspectListsGames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Nintendo - Game Boy.dat")
	testsupport.WriteFile(t, path, inspectDAT)

	stdout, _, err := runCLI(t, []string{"dat", "inspect", path, "--games", "1"}, "")
	if err != nil {
		t.Fatalf("dat inspect: %v", err)
	}
	requireContains(t, stdout, "Tetris (World)")
	requireContains(t, stdout, "46DF91AD")
	if strings.Contains(stdout, "Homebrew Demo") {
		t.Fatalf("expected the listing to stop after one game, got %q", stdout)
	}
}

func TestDATInspectMergesSupplements(t *testing.T) {
	metadat := filepath.Join(t.TempDir(), "metadat")
	path := filepath.Join(metadat, "no-intro", "Nintendo - Game Boy.dat")
	testsupport.WriteFile(t, path, inspectDAT)
	testsupport.WriteFile(t, filepath.Join(metadat, "developer", "Nintendo - Game Boy.dat"), `
clrmamepro (
	name "Nintendo - Game Boy"
)

game (
	name "Tetris (World)"
	developer "Nintendo"
	rom ( name "Tetris (World).gb" crc 46DF91AD )
)
`)

	stdout, _, err := runCLI(t, []string{"dat", "inspect", path, "--supplements"}, "")
	if err != nil {
		t.Fatalf("dat inspect: %v", err)
	}
	requireContains(t, stdout, "Games:       2")
}

func TestDATInspectMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.dat")

	_, _, err := runCLI(t, []string{"dat", "inspect", path}, "")
	if err == nil {
		t.Fatal("expected dat inspect to fail for a missing file")
	}
	requireContains(t, err.Error(), "parse dat file")
}
