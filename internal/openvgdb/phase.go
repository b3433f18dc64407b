package openvgdb

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"ludex/internal/gameid"
	"ludex/internal/logging"
	"ludex/internal/reconcile"
	"ludex/internal/titles"
)

// Phase enriches the catalog from OpenVGDB as the final phase.
type Phase struct {
	path string
}

func NewPhase(path string) *Phase {
	return &Phase{path: path}
}

func (p *Phase) Name() string { return "openvgdb" }

func (p *Phase) Run(ctx context.Context, env *reconcile.Env) (reconcile.Stats, error) {
	logger := logging.NewComponentLogger(env.Logger, "openvgdb")
	var stats reconcile.Stats

	db, err := Open(p.path)
	if err != nil {
		return stats, err
	}
	defer db.Close()

	// Releases are indexed without a platform axis. OpenVGDB system ids
	// do not line up with catalog platforms, so matching is by checksum
	// and title alone, the way the release lists themselves are keyed.
	ix := gameid.NewIndex()
	var releaseIDs []int64
	err = db.Releases(ctx, func(release Release) error {
		ix.Add(gameid.Entry{
			Normalized: titles.Normalize(norm.NFC.String(release.Title)),
			Checksum:   release.CRC,
		})
		releaseIDs = append(releaseIDs, release.ID)
		return nil
	})
	if err != nil {
		return stats, err
	}
	logger.Info("release index built", logging.Int(logging.FieldCount, ix.Len()))

	keys, err := env.Store.ListGameKeys(ctx)
	if err != nil {
		return stats, err
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Processed++

		match, ok := ix.FindBest(gameid.Candidate{
			Normalized: titles.Normalize(key.Title),
			Checksum:   key.CRC32,
		}, env.FuzzyThreshold)
		if !ok {
			continue
		}

		enrichment, err := db.Detail(ctx, releaseIDs[match.Row])
		if err != nil {
			return stats, err
		}
		if !enrichment.HasData() {
			stats.Skipped++
			continue
		}
		if err := env.Store.ApplyEnrichment(ctx, key.ID, enrichment); err != nil {
			return stats, err
		}

		switch match.Kind {
		case gameid.MatchChecksum:
			stats.MatchedChecksum++
		case gameid.MatchTitle:
			stats.MatchedExact++
		case gameid.MatchFuzzy:
			stats.MatchedFuzzy++
		}
	}
	return stats, nil
}
