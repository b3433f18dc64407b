package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const insertGameSQL = `INSERT INTO games (
    id, title, platform_id,
    launchbox_db_id, libretro_crc32, libretro_md5, libretro_sha1, libretro_serial, libretro_title,
    screenscraper_id, igdb_id, steamgriddb_id, openvgdb_release_id, steam_app_id,
    description, release_date, release_year, developer, publisher, genre,
    players, rating, rating_count, esrb, cooperative, video_url, wikipedia_url, release_type, notes,
    sort_title, series, region, play_mode, version, status,
    metadata_source
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func insertGameArgs(g *Game) []any {
	return []any{
		g.ID,
		g.Title,
		nullableInt64(g.PlatformID),
		nullableInt64(g.LaunchBoxDBID),
		nullableString(g.LibretroCRC32),
		nullableString(g.LibretroMD5),
		nullableString(g.LibretroSHA1),
		nullableString(g.LibretroSerial),
		nullableString(g.LibretroTitle),
		nullableInt64(g.ScreenScraperID),
		nullableInt64(g.IGDBID),
		nullableInt64(g.SteamGridDBID),
		nullableInt64(g.OpenVGDBReleaseID),
		nullableInt64(g.SteamAppID),
		nullableString(g.Description),
		nullableString(g.ReleaseDate),
		nullableInt64(g.ReleaseYear),
		nullableString(g.Developer),
		nullableString(g.Publisher),
		nullableString(g.Genre),
		nullableString(g.Players),
		nullableFloat64(g.Rating),
		nullableInt64(g.RatingCount),
		nullableString(g.ESRB),
		nullableBool(g.Cooperative),
		nullableString(g.VideoURL),
		nullableString(g.WikipediaURL),
		nullableString(g.ReleaseType),
		nullableString(g.Notes),
		nullableString(g.SortTitle),
		nullableString(g.Series),
		nullableString(g.Region),
		nullableString(g.PlayMode),
		nullableString(g.Version),
		nullableString(g.Status),
		nullableString(string(g.MetadataSource)),
	}
}

// InsertGames inserts a batch of new canonical rows in one transaction.
func (s *Store) InsertGames(ctx context.Context, games []*Game) error {
	if len(games) == 0 {
		return nil
	}
	ctx = ensureContext(ctx)
	if err := retryOnBusy(ctx, func() error {
		return s.insertGamesOnce(ctx, games)
	}); err != nil {
		return fmt.Errorf("insert games: %w", err)
	}
	return nil
}

func (s *Store) insertGamesOnce(ctx context.Context, games []*Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertGameSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, game := range games {
		if _, err := stmt.ExecContext(ctx, insertGameArgs(game)...); err != nil {
			return fmt.Errorf("insert game %q: %w", game.Title, err)
		}
	}
	return tx.Commit()
}

// InsertAlternateNames inserts a batch of alternate titles in one transaction.
func (s *Store) InsertAlternateNames(ctx context.Context, names []*AlternateName) error {
	if len(names) == 0 {
		return nil
	}
	ctx = ensureContext(ctx)
	if err := retryOnBusy(ctx, func() error {
		return s.insertAlternateNamesOnce(ctx, names)
	}); err != nil {
		return fmt.Errorf("insert alternate names: %w", err)
	}
	return nil
}

func (s *Store) insertAlternateNamesOnce(ctx context.Context, names []*AlternateName) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO game_alternate_names (launchbox_db_id, alternate_name, region) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, name := range names {
		if _, err := stmt.ExecContext(ctx, name.LaunchBoxDBID, name.Name, nullableString(name.Region)); err != nil {
			return fmt.Errorf("insert alternate name %q: %w", name.Name, err)
		}
	}
	return tx.Commit()
}

// GameByID fetches a game by its canonical id.
func (s *Store) GameByID(ctx context.Context, id string) (*Game, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("game by id: %w", err)
	}
	return game, nil
}

// GameByChecksum returns the oldest catalog row carrying the CRC32,
// regardless of platform.
func (s *Store) GameByChecksum(ctx context.Context, crc32 string) (*Game, error) {
	crc := strings.ToUpper(strings.TrimSpace(crc32))
	if crc == "" {
		return nil, nil
	}
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+gameColumns+` FROM games WHERE libretro_crc32 = ? ORDER BY rowid LIMIT 1`,
		crc,
	)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("game by checksum: %w", err)
	}
	return game, nil
}

// ListGameKeys returns the match-relevant projection of every game in
// insertion order.
func (s *Store) ListGameKeys(ctx context.Context) ([]GameKey, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT id, platform_id, title, libretro_crc32 FROM games ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list game keys: %w", err)
	}
	defer rows.Close()

	var keys []GameKey
	for rows.Next() {
		var (
			id         string
			platformID sql.NullInt64
			title      string
			crc32      sql.NullString
		)
		if err := rows.Scan(&id, &platformID, &title, &crc32); err != nil {
			return nil, fmt.Errorf("scan game key: %w", err)
		}
		keys = append(keys, GameKey{
			ID:         id,
			PlatformID: platformID.Int64,
			Title:      title,
			CRC32:      crc32.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game keys: %w", err)
	}
	return keys, nil
}

// MergeLibretroGame fills empty checksum and descriptive columns on an
// existing row from a DAT match.
func (s *Store) MergeLibretroGame(ctx context.Context, gameID string, m LibretroMerge) error {
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE games SET
            libretro_crc32 = COALESCE(libretro_crc32, ?),
            libretro_md5 = COALESCE(libretro_md5, ?),
            libretro_sha1 = COALESCE(libretro_sha1, ?),
            libretro_serial = COALESCE(libretro_serial, ?),
            libretro_title = COALESCE(libretro_title, ?),
            release_year = COALESCE(release_year, ?),
            developer = COALESCE(developer, ?),
            publisher = COALESCE(publisher, ?),
            genre = COALESCE(genre, ?),
            updated_at = ?
         WHERE id = ?`,
		nullableString(m.CRC32),
		nullableString(m.MD5),
		nullableString(m.SHA1),
		nullableString(m.Serial),
		nullableString(m.SourceTitle),
		nullableInt64(m.ReleaseYear),
		nullableString(m.Developer),
		nullableString(m.Publisher),
		nullableString(m.Genre),
		time.Now().UTC().Format(time.RFC3339Nano),
		gameID,
	); err != nil {
		return fmt.Errorf("merge libretro game: %w", err)
	}
	return nil
}

// ApplyEnrichment fills empty descriptive columns from an enrichment match
// and records provenance only when the row has none yet.
func (s *Store) ApplyEnrichment(ctx context.Context, gameID string, e Enrichment) error {
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE games SET
            description = COALESCE(description, ?),
            developer = COALESCE(developer, ?),
            publisher = COALESCE(publisher, ?),
            genre = COALESCE(genre, ?),
            release_date = COALESCE(release_date, ?),
            openvgdb_release_id = COALESCE(openvgdb_release_id, ?),
            metadata_source = COALESCE(metadata_source, ?),
            updated_at = ?
         WHERE id = ?`,
		nullableString(e.Description),
		nullableString(e.Developer),
		nullableString(e.Publisher),
		nullableString(e.Genre),
		nullableString(e.ReleaseDate),
		nullableInt64(e.ReleaseID),
		string(SourceOpenVGDB),
		time.Now().UTC().Format(time.RFC3339Nano),
		gameID,
	); err != nil {
		return fmt.Errorf("apply enrichment: %w", err)
	}
	return nil
}

// AlternateNames returns the alternate titles recorded for a source game id.
func (s *Store) AlternateNames(ctx context.Context, launchboxDBID int64) ([]*AlternateName, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, launchbox_db_id, alternate_name, region FROM game_alternate_names WHERE launchbox_db_id = ? ORDER BY id`,
		launchboxDBID,
	)
	if err != nil {
		return nil, fmt.Errorf("alternate names: %w", err)
	}
	defer rows.Close()

	var names []*AlternateName
	for rows.Next() {
		var (
			name   AlternateName
			region sql.NullString
		)
		if err := rows.Scan(&name.ID, &name.LaunchBoxDBID, &name.Name, &region); err != nil {
			return nil, fmt.Errorf("scan alternate name: %w", err)
		}
		name.Region = region.String
		names = append(names, &name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alternate names: %w", err)
	}
	return names, nil
}

// Stats reports catalog row counts.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	ctx = ensureContext(ctx)
	stats := &Stats{GamesBySource: make(map[Source]int64)}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM platforms`).Scan(&stats.Platforms); err != nil {
		return nil, fmt.Errorf("count platforms: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM games`).Scan(&stats.Games); err != nil {
		return nil, fmt.Errorf("count games: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM game_alternate_names`).Scan(&stats.AlternateNames); err != nil {
		return nil, fmt.Errorf("count alternate names: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT metadata_source, COUNT(1) FROM games GROUP BY metadata_source`)
	if err != nil {
		return nil, fmt.Errorf("count games by source: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			source sql.NullString
			count  int64
		)
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("scan source count: %w", err)
		}
		stats.GamesBySource[Source(source.String)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate source counts: %w", err)
	}
	return stats, nil
}
