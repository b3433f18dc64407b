package launchbox

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MetadataDB reads a LaunchBox.Metadata.db installation database. All
// access is read-only; the file belongs to LaunchBox.
type MetadataDB struct {
	db *sql.DB
}

// OpenMetadataDB connects to the legacy database at path.
func OpenMetadataDB(path string) (*MetadataDB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open metadata db: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open metadata db: %w", err)
	}
	return &MetadataDB{db: db}, nil
}

// Close closes the underlying database connection.
func (m *MetadataDB) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}

// Platform is one row of the legacy Platforms table.
type Platform struct {
	Key          int64
	Name         string
	Emulated     bool
	ReleaseDate  string
	Developer    string
	Manufacturer string
	Category     string
}

const legacyPlatformColumns = `PlatformKey, Name, Emulated, ReleaseDate, Developer, Manufacturer, Category`

// Platforms returns every platform in the legacy database.
func (m *MetadataDB) Platforms(ctx context.Context) ([]Platform, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT `+legacyPlatformColumns+` FROM Platforms ORDER BY Name`)
	if err != nil {
		return nil, fmt.Errorf("query legacy platforms: %w", err)
	}
	defer rows.Close()

	var platforms []Platform
	for rows.Next() {
		var (
			p            Platform
			key          sql.NullInt64
			emulated     sql.NullBool
			releaseDate  sql.NullString
			developer    sql.NullString
			manufacturer sql.NullString
			category     sql.NullString
		)
		if err := rows.Scan(&key, &p.Name, &emulated, &releaseDate, &developer, &manufacturer, &category); err != nil {
			return nil, fmt.Errorf("scan legacy platform: %w", err)
		}
		p.Key = key.Int64
		p.Emulated = emulated.Bool
		p.ReleaseDate = releaseDate.String
		p.Developer = developer.String
		p.Manufacturer = manufacturer.String
		p.Category = category.String
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy platforms: %w", err)
	}
	return platforms, nil
}

const legacyGameColumns = `DatabaseID, Name, CompareName, ReleaseDate, ReleaseYear, Overview,
	MaxPlayers, ReleaseType, Cooperative, VideoURL, CommunityRating,
	Platform, ESRB, Genres, Developer, Publisher`

// Games streams every game row through fn in DatabaseID order. A
// handler error stops the scan.
func (m *MetadataDB) Games(ctx context.Context, fn func(Game) error) error {
	rows, err := m.db.QueryContext(ctx,
		`SELECT `+legacyGameColumns+` FROM Games ORDER BY DatabaseID`)
	if err != nil {
		return fmt.Errorf("query legacy games: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		game, err := scanLegacyGame(rows)
		if err != nil {
			return err
		}
		if err := fn(game); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate legacy games: %w", err)
	}
	return nil
}

func scanLegacyGame(scanner interface{ Scan(dest ...any) error }) (Game, error) {
	var (
		g           Game
		databaseID  sql.NullInt64
		compareName sql.NullString
		releaseDate sql.NullString
		releaseYear sql.NullInt64
		overview    sql.NullString
		maxPlayers  sql.NullInt64
		releaseType sql.NullString
		cooperative sql.NullBool
		videoURL    sql.NullString
		rating      sql.NullFloat64
		platform    sql.NullString
		esrb        sql.NullString
		genres      sql.NullString
		developer   sql.NullString
		publisher   sql.NullString
	)
	err := scanner.Scan(&databaseID, &g.Name, &compareName, &releaseDate, &releaseYear, &overview,
		&maxPlayers, &releaseType, &cooperative, &videoURL, &rating,
		&platform, &esrb, &genres, &developer, &publisher)
	if err != nil {
		return Game{}, fmt.Errorf("scan legacy game: %w", err)
	}

	g.DatabaseID = databaseID.Int64
	g.Name = strings.TrimSpace(g.Name)
	g.CompareName = compareName.String
	g.ReleaseDate = releaseDate.String
	g.ReleaseYear = releaseYear.Int64
	g.Overview = overview.String
	if maxPlayers.Valid && maxPlayers.Int64 > 0 {
		g.MaxPlayers = strconv.FormatInt(maxPlayers.Int64, 10)
	}
	g.ReleaseType = releaseType.String
	if cooperative.Valid {
		coop := cooperative.Bool
		g.Cooperative = &coop
	}
	g.VideoURL = videoURL.String
	g.Rating = rating.Float64
	g.Platform = strings.TrimSpace(platform.String)
	g.ESRB = esrb.String
	g.Genres = genres.String
	g.Developer = developer.String
	g.Publisher = publisher.String
	return g, nil
}
