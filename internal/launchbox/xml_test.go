package launchbox_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"ludex/internal/launchbox"
	"ludex/internal/logging"
	"ludex/internal/testsupport"
)

const metadataFixture = `<?xml version="1.0" encoding="utf-8"?>
<LaunchBox>
  <Game>
    <Name>Chrono Trigger</Name>
    <Platform>Super Nintendo Entertainment System</Platform>
    <Overview>A time travel RPG.</Overview>
    <Developer>Square</Developer>
    <Publisher>Square</Publisher>
    <Genres>Role-Playing</Genres>
    <ReleaseDate>1995-03-11T00:00:00-08:00</ReleaseDate>
    <ReleaseYear>1995</ReleaseYear>
    <MaxPlayers>1</MaxPlayers>
    <CommunityRating>4.78</CommunityRating>
    <CommunityRatingCount>312</CommunityRatingCount>
    <ESRB>E - Everyone</ESRB>
    <Cooperative>false</Cooperative>
    <VideoURL>https://example.com/chrono-trigger</VideoURL>
    <WikipediaURL>https://en.wikipedia.org/wiki/Chrono_Trigger</WikipediaURL>
    <DatabaseID>42</DatabaseID>
    <ReleaseType>Released</ReleaseType>
    <SteamAppId>613830</SteamAppId>
    <Notes>SNES original.</Notes>
  </Game>
  <GameImage>
    <DatabaseID>42</DatabaseID>
    <FileName>chrono.png</FileName>
    <Type>Box - Front</Type>
  </GameImage>
  <GameAlternateName>
    <AlternateName>Chrono Trigger (JP)</AlternateName>
    <DatabaseID>42</DatabaseID>
    <Region>Japan</Region>
  </GameAlternateName>
  <Game>
    <Name>Unknown Title</Name>
    <Platform>Super Nintendo Entertainment System</Platform>
    <ReleaseYear>soon</ReleaseYear>
  </Game>
</LaunchBox>
`

func parseFixture(t *testing.T, fixture string) ([]launchbox.Game, []launchbox.AlternateName) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Metadata.xml")
	testsupport.WriteFile(t, path, fixture)

	var games []launchbox.Game
	var alts []launchbox.AlternateName
	err := launchbox.ParseMetadata(context.Background(), path, launchbox.Handlers{
		Game:          func(g launchbox.Game) error { games = append(games, g); return nil },
		AlternateName: func(a launchbox.AlternateName) error { alts = append(alts, a); return nil },
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	return games, alts
}

func TestParseMetadataMapsWhitelistedElements(t *testing.T) {
	games, alts := parseFixture(t, metadataFixture)

	if len(games) != 2 {
		t.Fatalf("parsed %d games, want 2", len(games))
	}
	g := games[0]
	if g.DatabaseID != 42 || g.Name != "Chrono Trigger" {
		t.Errorf("identity fields = (%d, %q)", g.DatabaseID, g.Name)
	}
	if g.Platform != "Super Nintendo Entertainment System" {
		t.Errorf("Platform = %q", g.Platform)
	}
	if g.Overview != "A time travel RPG." || g.Genres != "Role-Playing" {
		t.Errorf("descriptive fields = (%q, %q)", g.Overview, g.Genres)
	}
	if g.ReleaseYear != 1995 || g.Rating != 4.78 || g.RatingCount != 312 {
		t.Errorf("numeric fields = (%d, %v, %d)", g.ReleaseYear, g.Rating, g.RatingCount)
	}
	if g.Cooperative == nil || *g.Cooperative {
		t.Errorf("Cooperative = %v, want false", g.Cooperative)
	}
	if g.SteamAppID != 613830 || g.ESRB != "E - Everyone" || g.Notes != "SNES original." {
		t.Errorf("remaining fields = (%d, %q, %q)", g.SteamAppID, g.ESRB, g.Notes)
	}

	if len(alts) != 1 {
		t.Fatalf("parsed %d alternate names, want 1", len(alts))
	}
	if alts[0].DatabaseID != 42 || alts[0].Name != "Chrono Trigger (JP)" || alts[0].Region != "Japan" {
		t.Errorf("alternate name = %+v", alts[0])
	}
}

func TestParseMetadataDropsUnparseableNumbers(t *testing.T) {
	games, _ := parseFixture(t, metadataFixture)

	g := games[1]
	if g.Name != "Unknown Title" {
		t.Fatalf("second game = %q", g.Name)
	}
	if g.ReleaseYear != 0 {
		t.Errorf("ReleaseYear = %d, want 0 for unparseable text", g.ReleaseYear)
	}
	if g.Cooperative != nil {
		t.Errorf("Cooperative = %v, want nil when absent", g.Cooperative)
	}
}

func TestParseMetadataHandlerErrorStopsStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Metadata.xml")
	testsupport.WriteFile(t, path, metadataFixture)

	boom := errors.New("insert failed")
	var seen int
	err := launchbox.ParseMetadata(context.Background(), path, launchbox.Handlers{
		Game: func(launchbox.Game) error {
			seen++
			return boom
		},
	}, logging.NewNop())
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if seen != 1 {
		t.Errorf("handler ran %d times after erroring, want 1", seen)
	}
}

func TestParseMetadataHonorsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Metadata.xml")
	testsupport.WriteFile(t, path, metadataFixture)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := launchbox.ParseMetadata(ctx, path, launchbox.Handlers{}, logging.NewNop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseMetadataMissingFile(t *testing.T) {
	err := launchbox.ParseMetadata(context.Background(),
		filepath.Join(t.TempDir(), "nope.xml"), launchbox.Handlers{}, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "open metadata stream") {
		t.Fatalf("expected open error, got %v", err)
	}
}
