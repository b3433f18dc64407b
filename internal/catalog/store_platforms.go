package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertPlatform inserts a platform or fills empty columns on the existing
// row with the same name, and returns the row id.
func (s *Store) UpsertPlatform(ctx context.Context, p *Platform) (int64, error) {
	if p == nil {
		return 0, errors.New("platform is nil")
	}
	if p.Name == "" {
		return 0, errors.New("platform name is empty")
	}

	ctx = ensureContext(ctx)
	var id int64
	err := retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(
			ctx,
			`INSERT INTO platforms (
                name, launchbox_name, libretro_name, screenscraper_id, openvgdb_system_id,
                manufacturer, release_date, category, retroarch_core, file_extensions, aliases
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT(name) DO UPDATE SET
                launchbox_name = COALESCE(platforms.launchbox_name, excluded.launchbox_name),
                libretro_name = COALESCE(platforms.libretro_name, excluded.libretro_name),
                screenscraper_id = COALESCE(platforms.screenscraper_id, excluded.screenscraper_id),
                openvgdb_system_id = COALESCE(platforms.openvgdb_system_id, excluded.openvgdb_system_id),
                manufacturer = COALESCE(platforms.manufacturer, excluded.manufacturer),
                release_date = COALESCE(platforms.release_date, excluded.release_date),
                category = COALESCE(platforms.category, excluded.category),
                retroarch_core = COALESCE(platforms.retroarch_core, excluded.retroarch_core),
                file_extensions = COALESCE(platforms.file_extensions, excluded.file_extensions),
                aliases = COALESCE(platforms.aliases, excluded.aliases)
            RETURNING id`,
			p.Name,
			nullableString(p.LaunchBoxName),
			nullableString(p.LibretroName),
			nullableInt64(p.ScreenScraperID),
			nullableInt64(p.OpenVGDBSystemID),
			nullableString(p.Manufacturer),
			nullableString(p.ReleaseDate),
			nullableString(p.Category),
			nullableString(p.RetroArchCore),
			nullableString(p.FileExtensions),
			nullableString(p.Aliases),
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("upsert platform %q: %w", p.Name, err)
	}
	return id, nil
}

// PlatformByName fetches a platform by its canonical name.
func (s *Store) PlatformByName(ctx context.Context, name string) (*Platform, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+platformColumns+` FROM platforms WHERE name = ?`, name)
	platform, err := scanPlatform(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("platform by name: %w", err)
	}
	return platform, nil
}

// ListPlatforms returns every platform ordered by name.
func (s *Store) ListPlatforms(ctx context.Context) ([]*Platform, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT `+platformColumns+` FROM platforms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []*Platform
	for rows.Next() {
		platform, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		platforms = append(platforms, platform)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate platforms: %w", err)
	}
	return platforms, nil
}

// GameCountsByPlatform returns the number of games per platform id.
func (s *Store) GameCountsByPlatform(ctx context.Context) (map[int64]int64, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT platform_id, COUNT(1) FROM games GROUP BY platform_id`)
	if err != nil {
		return nil, fmt.Errorf("count games by platform: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var (
			platformID sql.NullInt64
			count      int64
		)
		if err := rows.Scan(&platformID, &count); err != nil {
			return nil, fmt.Errorf("scan game count: %w", err)
		}
		counts[platformID.Int64] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game counts: %w", err)
	}
	return counts, nil
}
