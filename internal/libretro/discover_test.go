package libretro_test

import (
	"path/filepath"
	"strings"
	"testing"

	"ludex/internal/libretro"
	"ludex/internal/testsupport"
)

const gameBoyDAT = `
clrmamepro (
	name "Nintendo - Game Boy"
	version "20240101"
)

game (
	name "Tetris (World) (Rev 1)"
	region "World"
	serial "DMG-TR"
	rom ( name "Tetris (World) (Rev 1).gb" size 32768 crc 46df91ad )
)

game (
	name "Alleyway (World)"
	rom ( name "Alleyway (World).gb" size 32768 crc b6c2e1a8 )
)
`

const gameBoyDeveloperDAT = `
game (
	name "Tetris"
	developer "Nintendo"
	serial "SHOULD-NOT-WIN"
	rom ( name "Tetris (World) (Rev 1).gb" crc 46df91ad )
)
`

const gameBoyGenreDAT = `
game (
	name "Tetris"
	genre "Puzzle"
	rom ( name "Tetris (World) (Rev 1).gb" crc 46df91ad )
)
`

const gameBoyYearDAT = `
game (
	name "Tetris"
	releaseyear "1989"
	rom ( name "Tetris (World) (Rev 1).gb" crc 46df91ad )
)
`

func writeGameBoyTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	metadat := filepath.Join(root, "metadat")
	testsupport.WriteFile(t, filepath.Join(metadat, "no-intro", "Nintendo - Game Boy.dat"), gameBoyDAT)
	testsupport.WriteFile(t, filepath.Join(metadat, "developer", "Nintendo - Game Boy.dat"), gameBoyDeveloperDAT)
	testsupport.WriteFile(t, filepath.Join(metadat, "genre", "Nintendo - Game Boy.dat"), gameBoyGenreDAT)
	testsupport.WriteFile(t, filepath.Join(metadat, "releaseyear", "Nintendo - Game Boy.dat"), gameBoyYearDAT)
	return root
}

func TestDiscoverListsBaseDATs(t *testing.T) {
	root := writeGameBoyTree(t)
	metadat := filepath.Join(root, "metadat")
	testsupport.WriteFile(t, filepath.Join(metadat, "no-intro", "Sega - Mega Drive - Genesis.dat"), `game ( name "Sonic" )`)
	testsupport.WriteFile(t, filepath.Join(metadat, "no-intro", "README.txt"), "not a dat")
	testsupport.WriteFile(t, filepath.Join(metadat, "no-intro", "nested", "Deep.dat"), `game ( name "Hidden" )`)
	testsupport.WriteFile(t, filepath.Join(metadat, "redump", "Sony - PlayStation.dat"), `game ( name "Ridge Racer" )`)

	files, err := libretro.Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	var names []string
	for _, path := range files {
		names = append(names, filepath.Base(filepath.Dir(path))+"/"+filepath.Base(path))
	}
	want := []string{
		"no-intro/Nintendo - Game Boy.dat",
		"no-intro/Sega - Mega Drive - Genesis.dat",
		"redump/Sony - PlayStation.dat",
	}
	if strings.Join(names, "|") != strings.Join(want, "|") {
		t.Errorf("Discover() = %v, want %v", names, want)
	}
}

func TestDiscoverRequiresMetadat(t *testing.T) {
	_, err := libretro.Discover(t.TempDir())
	if err == nil {
		t.Fatal("Discover on an empty root returned nil error")
	}
	if !strings.Contains(err.Error(), "libretro database not found") {
		t.Errorf("error = %v, want a libretro database hint", err)
	}
}

func TestDiscoverToleratesMissingDirectories(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "metadat", "redump", "Sony - PlayStation.dat"), `game ( name "R4" )`)

	files, err := libretro.Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "Sony - PlayStation.dat" {
		t.Errorf("Discover() = %v, want the single redump dat", files)
	}
}

func TestPlatformStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/metadat/no-intro/Nintendo - Game Boy.dat", "Nintendo - Game Boy"},
		{"Sega - Mega Drive - Genesis.dat", "Sega - Mega Drive - Genesis"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := libretro.PlatformStem(tt.path); got != tt.want {
			t.Errorf("PlatformStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadDATMergesSupplements(t *testing.T) {
	root := writeGameBoyTree(t)
	path := filepath.Join(root, "metadat", "no-intro", "Nintendo - Game Boy.dat")

	file, err := libretro.LoadDAT(path)
	if err != nil {
		t.Fatalf("LoadDAT: %v", err)
	}
	if len(file.Games) != 2 {
		t.Fatalf("LoadDAT() returned %d games, want 2", len(file.Games))
	}

	tetris := file.Games[0]
	if tetris.Developer != "Nintendo" {
		t.Errorf("developer = %q, want supplement value", tetris.Developer)
	}
	if tetris.Genre != "Puzzle" {
		t.Errorf("genre = %q, want supplement value", tetris.Genre)
	}
	if tetris.ReleaseYear != 1989 {
		t.Errorf("release year = %d, want 1989", tetris.ReleaseYear)
	}
	if tetris.Serial != "DMG-TR" {
		t.Errorf("serial = %q, base value must win over supplements", tetris.Serial)
	}
	if tetris.Publisher != "" {
		t.Errorf("publisher = %q, want empty with no publisher supplement", tetris.Publisher)
	}

	alleyway := file.Games[1]
	if alleyway.Developer != "" || alleyway.Genre != "" {
		t.Errorf("alleyway picked up supplements: %+v", alleyway)
	}
}

func TestLoadDATMissingBase(t *testing.T) {
	if _, err := libretro.LoadDAT(filepath.Join(t.TempDir(), "missing.dat")); err == nil {
		t.Fatal("LoadDAT on a missing file returned nil error")
	}
}
