package launchbox

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"ludex/internal/catalog"
	"ludex/internal/logging"
	"ludex/internal/platforms"
	"ludex/internal/reconcile"
	"ludex/internal/titles"
)

// Phase imports LaunchBox metadata as the first reconciliation phase.
// When both source paths are set the XML stream wins; the legacy
// database is the fallback.
type Phase struct {
	xmlPath string
	dbPath  string
	canon   *platforms.Canonicalizer
}

func NewPhase(xmlPath, dbPath string) *Phase {
	return &Phase{xmlPath: xmlPath, dbPath: dbPath, canon: platforms.Default()}
}

func (p *Phase) Name() string { return "launchbox" }

func (p *Phase) Run(ctx context.Context, env *reconcile.Env) (reconcile.Stats, error) {
	im := &importer{
		env:         env,
		logger:      logging.NewComponentLogger(env.Logger, "launchbox"),
		canon:       p.canon,
		platformIDs: make(map[string]int64),
		seen:        make(map[dedupKey]struct{}),
	}

	var err error
	switch {
	case p.xmlPath != "":
		err = im.runXML(ctx, p.xmlPath)
	case p.dbPath != "":
		err = im.runMetadataDB(ctx, p.dbPath)
	default:
		return im.stats, fmt.Errorf("no launchbox source configured")
	}
	if err != nil {
		return im.stats, err
	}

	if err := im.flush(ctx); err != nil {
		return im.stats, err
	}
	return im.stats, nil
}

// dedupKey collapses rows the source repeats with only punctuation or
// casing differences.
type dedupKey struct {
	platform int64
	title    string
}

type importer struct {
	env    *reconcile.Env
	logger *slog.Logger
	canon  *platforms.Canonicalizer
	stats  reconcile.Stats

	platformIDs map[string]int64
	seen        map[dedupKey]struct{}

	games    []*catalog.Game
	altNames []*catalog.AlternateName
}

func (im *importer) runXML(ctx context.Context, path string) error {
	im.logger.Info("parsing metadata stream", logging.String(logging.FieldPath, path))
	return ParseMetadata(ctx, path, Handlers{
		Game:          func(g Game) error { return im.addGame(ctx, g) },
		AlternateName: func(a AlternateName) error { return im.addAlternateName(ctx, a) },
	}, im.logger)
}

func (im *importer) runMetadataDB(ctx context.Context, path string) error {
	im.logger.Info("reading legacy metadata database", logging.String(logging.FieldPath, path))
	db, err := OpenMetadataDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	legacyPlatforms, err := db.Platforms(ctx)
	if err != nil {
		return err
	}
	for _, row := range legacyPlatforms {
		canonical := im.canon.Canonicalize(norm.NFC.String(row.Name))
		id, err := im.env.Store.UpsertPlatform(ctx, &catalog.Platform{
			Name:          canonical,
			LaunchBoxName: strings.TrimSpace(row.Name),
			Manufacturer:  row.Manufacturer,
			ReleaseDate:   row.ReleaseDate,
			Category:      row.Category,
			Aliases:       im.canon.SearchAliases(canonical),
		})
		if err != nil {
			return err
		}
		im.platformIDs[canonical] = id
	}
	im.logger.Info("platforms imported", logging.Int(logging.FieldCount, len(legacyPlatforms)))

	return db.Games(ctx, func(g Game) error { return im.addGame(ctx, g) })
}

func (im *importer) addGame(ctx context.Context, g Game) error {
	im.stats.Processed++

	title := norm.NFC.String(strings.TrimSpace(g.Name))
	if title == "" || strings.TrimSpace(g.Platform) == "" {
		im.stats.Skipped++
		return nil
	}

	platformID, err := im.platformID(ctx, g.Platform)
	if err != nil {
		return err
	}

	key := dedupKey{platform: platformID, title: titles.Normalize(title)}
	if _, dup := im.seen[key]; dup {
		im.stats.Deduplicated++
		return nil
	}
	im.seen[key] = struct{}{}

	im.games = append(im.games, &catalog.Game{
		ID:             uuid.NewString(),
		Title:          title,
		PlatformID:     platformID,
		LaunchBoxDBID:  g.DatabaseID,
		Description:    g.Overview,
		ReleaseDate:    g.ReleaseDate,
		ReleaseYear:    g.ReleaseYear,
		Developer:      g.Developer,
		Publisher:      g.Publisher,
		Genre:          g.Genres,
		Players:        g.MaxPlayers,
		Rating:         g.Rating,
		RatingCount:    g.RatingCount,
		ESRB:           g.ESRB,
		Cooperative:    g.Cooperative,
		VideoURL:       g.VideoURL,
		WikipediaURL:   g.WikipediaURL,
		ReleaseType:    g.ReleaseType,
		SteamAppID:     g.SteamAppID,
		Notes:          g.Notes,
		MetadataSource: catalog.SourceLaunchBox,
	})
	if len(im.games) >= im.env.BatchSize {
		return im.flushGames(ctx)
	}
	return nil
}

func (im *importer) addAlternateName(ctx context.Context, a AlternateName) error {
	if a.DatabaseID <= 0 || strings.TrimSpace(a.Name) == "" {
		return nil
	}
	im.altNames = append(im.altNames, &catalog.AlternateName{
		LaunchBoxDBID: a.DatabaseID,
		Name:          norm.NFC.String(strings.TrimSpace(a.Name)),
		Region:        a.Region,
	})
	if len(im.altNames) >= im.env.AltNameBatchSize {
		return im.flushAltNames(ctx)
	}
	return nil
}

// platformID resolves a source platform name to its canonical row,
// creating the row on first sight. Existing rows only gain fields they
// were missing.
func (im *importer) platformID(ctx context.Context, source string) (int64, error) {
	canonical := im.canon.Canonicalize(norm.NFC.String(source))
	if id, ok := im.platformIDs[canonical]; ok {
		return id, nil
	}
	id, err := im.env.Store.UpsertPlatform(ctx, &catalog.Platform{
		Name:          canonical,
		LaunchBoxName: strings.TrimSpace(source),
		Aliases:       im.canon.SearchAliases(canonical),
	})
	if err != nil {
		return 0, err
	}
	im.platformIDs[canonical] = id
	return id, nil
}

func (im *importer) flushGames(ctx context.Context) error {
	if len(im.games) == 0 {
		return nil
	}
	if err := im.env.Store.InsertGames(ctx, im.games); err != nil {
		return err
	}
	im.stats.Inserted += int64(len(im.games))
	im.games = im.games[:0]
	return nil
}

func (im *importer) flushAltNames(ctx context.Context) error {
	if len(im.altNames) == 0 {
		return nil
	}
	if err := im.env.Store.InsertAlternateNames(ctx, im.altNames); err != nil {
		return err
	}
	im.stats.AlternateNames += int64(len(im.altNames))
	im.altNames = im.altNames[:0]
	return nil
}

func (im *importer) flush(ctx context.Context) error {
	if err := im.flushGames(ctx); err != nil {
		return err
	}
	return im.flushAltNames(ctx)
}
