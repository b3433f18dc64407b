package libretro

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"ludex/internal/catalog"
	"ludex/internal/datfile"
	"ludex/internal/gameid"
	"ludex/internal/logging"
	"ludex/internal/platforms"
	"ludex/internal/reconcile"
	"ludex/internal/titles"
)

// Phase imports libretro DAT files as the second reconciliation phase.
type Phase struct {
	root       string
	canon      *platforms.Canonicalizer
	classifier *titles.Classifier
}

func NewPhase(root string) *Phase {
	return &Phase{
		root:       root,
		canon:      platforms.Default(),
		classifier: titles.NewClassifier(titles.DefaultVocabulary()),
	}
}

func (p *Phase) Name() string { return "libretro" }

func (p *Phase) Run(ctx context.Context, env *reconcile.Env) (reconcile.Stats, error) {
	logger := logging.NewComponentLogger(env.Logger, "libretro")

	files, err := Discover(p.root)
	if err != nil {
		return reconcile.Stats{}, err
	}
	logger.Info("dat files discovered", logging.Int(logging.FieldCount, len(files)))

	ix, ids, err := reconcile.LoadIndex(ctx, env.Store)
	if err != nil {
		return reconcile.Stats{}, err
	}

	eng := &engine{
		env:         env,
		logger:      logger,
		canon:       p.canon,
		classifier:  p.classifier,
		ix:          ix,
		ids:         ids,
		priorRows:   ix.Len(),
		platformIDs: make(map[string]int64),
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return eng.stats, err
		}
		if err := eng.importDAT(ctx, path); err != nil {
			return eng.stats, err
		}
	}
	return eng.stats, nil
}

type engine struct {
	env        *reconcile.Env
	logger     *slog.Logger
	canon      *platforms.Canonicalizer
	classifier *titles.Classifier
	stats      reconcile.Stats

	// ix covers every canonical row: the prior phase's rows first, then
	// this phase's inserts as they are decided. ids maps index rows to
	// game ids. Title merges are limited to rows below priorRows so a
	// DAT never collapses into this phase's own inserts.
	ix        *gameid.Index
	ids       []string
	priorRows int

	platformIDs map[string]int64
	batch       []*catalog.Game
}

func (e *engine) importDAT(ctx context.Context, path string) error {
	file, err := LoadDAT(path)
	if err != nil {
		e.logger.Warn("skipping unreadable dat file",
			logging.String(logging.FieldPath, path), logging.Error(err))
		return nil
	}

	stem := PlatformStem(path)
	platformID, err := e.platformID(ctx, stem)
	if err != nil {
		return err
	}

	// Variant counts decide whether a title may merge into a prior row:
	// several same-titled entries are real regional variants and stay
	// separate.
	variants := make(map[string]int, len(file.Games))
	for _, game := range file.Games {
		variants[titles.Normalize(norm.NFC.String(game.Name))]++
	}

	seenTitles := make(map[string]struct{}, len(file.Games))
	for _, game := range file.Games {
		if err := e.importGame(ctx, platformID, game, variants, seenTitles); err != nil {
			return err
		}
	}

	if err := e.flush(ctx); err != nil {
		return err
	}
	e.logger.Debug("dat imported",
		logging.String(logging.FieldPlatform, stem),
		logging.Int(logging.FieldCount, len(file.Games)))
	return nil
}

func (e *engine) importGame(ctx context.Context, platformID int64, g datfile.Game, variants map[string]int, seen map[string]struct{}) error {
	e.stats.Processed++

	title := norm.NFC.String(strings.TrimSpace(g.Name))
	if title == "" {
		e.stats.Skipped++
		return nil
	}
	normalized := titles.Normalize(title)

	var primary datfile.ROM
	if len(g.ROMs) > 0 {
		primary = g.ROMs[0]
	}

	merge := catalog.LibretroMerge{
		CRC32:       primary.CRC,
		MD5:         primary.MD5,
		SHA1:        primary.SHA1,
		Serial:      g.Serial,
		SourceTitle: title,
		ReleaseYear: int64(g.ReleaseYear),
		Developer:   g.Developer,
		Publisher:   g.Publisher,
		Genre:       g.Genre,
	}

	// The checksum is checked against every row imported so far, this
	// phase's included, so a re-listed ROM merges instead of duplicating.
	// A this-phase target may still sit in the pending batch; it has to
	// be flushed before the update can reach it.
	if row, ok := e.ix.LookupChecksum(platformID, primary.CRC); ok {
		if row >= e.priorRows {
			if err := e.flush(ctx); err != nil {
				return err
			}
		}
		if err := e.env.Store.MergeLibretroGame(ctx, e.ids[row], merge); err != nil {
			return err
		}
		e.stats.MatchedChecksum++
		return nil
	}

	if row, ok := e.ix.LookupTitle(platformID, normalized); ok && row < e.priorRows && variants[normalized] == 1 {
		if err := e.env.Store.MergeLibretroGame(ctx, e.ids[row], merge); err != nil {
			return err
		}
		e.stats.MatchedExact++
		return nil
	}

	if _, dup := seen[title]; dup {
		e.stats.Deduplicated++
		return nil
	}
	seen[title] = struct{}{}

	region := strings.TrimSpace(g.Region)
	if region == "" {
		region = e.classifier.InferRegion(titles.ExtractTags(title))
	}

	id := uuid.NewString()
	e.ix.Add(gameid.Entry{PlatformID: platformID, Normalized: normalized, Checksum: primary.CRC})
	e.ids = append(e.ids, id)

	e.batch = append(e.batch, &catalog.Game{
		ID:             id,
		Title:          title,
		PlatformID:     platformID,
		LibretroCRC32:  primary.CRC,
		LibretroMD5:    primary.MD5,
		LibretroSHA1:   primary.SHA1,
		LibretroSerial: g.Serial,
		LibretroTitle:  title,
		ReleaseYear:    int64(g.ReleaseYear),
		Developer:      g.Developer,
		Publisher:      g.Publisher,
		Genre:          g.Genre,
		Region:         region,
		MetadataSource: catalog.SourceLibretro,
	})
	if len(e.batch) >= e.env.BatchSize {
		return e.flush(ctx)
	}
	return nil
}

func (e *engine) platformID(ctx context.Context, stem string) (int64, error) {
	canonical := e.canon.Canonicalize(stem)
	if id, ok := e.platformIDs[canonical]; ok {
		return id, nil
	}
	id, err := e.env.Store.UpsertPlatform(ctx, &catalog.Platform{
		Name:         canonical,
		LibretroName: strings.TrimSpace(stem),
		Aliases:      e.canon.SearchAliases(canonical),
	})
	if err != nil {
		return 0, err
	}
	e.platformIDs[canonical] = id
	return id, nil
}

func (e *engine) flush(ctx context.Context) error {
	if len(e.batch) == 0 {
		return nil
	}
	if err := e.env.Store.InsertGames(ctx, e.batch); err != nil {
		return err
	}
	e.stats.Inserted += int64(len(e.batch))
	e.batch = e.batch[:0]
	return nil
}
