package catalog

import (
	"database/sql"
	"errors"
	"time"
)

const platformColumns = "id, name, launchbox_name, libretro_name, screenscraper_id, openvgdb_system_id, manufacturer, release_date, category, retroarch_core, file_extensions, aliases, created_at"

const gameColumns = "id, title, platform_id, launchbox_db_id, libretro_crc32, libretro_md5, libretro_sha1, libretro_serial, libretro_title, screenscraper_id, igdb_id, steamgriddb_id, openvgdb_release_id, steam_app_id, description, release_date, release_year, developer, publisher, genre, players, rating, rating_count, esrb, cooperative, video_url, wikipedia_url, release_type, notes, sort_title, series, region, play_mode, version, status, metadata_source, created_at, updated_at"

func scanPlatform(scanner interface{ Scan(dest ...any) error }) (*Platform, error) {
	var (
		id               int64
		name             string
		launchboxName    sql.NullString
		libretroName     sql.NullString
		screenscraperID  sql.NullInt64
		openvgdbSystemID sql.NullInt64
		manufacturer     sql.NullString
		releaseDate      sql.NullString
		category         sql.NullString
		retroarchCore    sql.NullString
		fileExtensions   sql.NullString
		aliases          sql.NullString
		createdRaw       sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&name,
		&launchboxName,
		&libretroName,
		&screenscraperID,
		&openvgdbSystemID,
		&manufacturer,
		&releaseDate,
		&category,
		&retroarchCore,
		&fileExtensions,
		&aliases,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	platform := &Platform{
		ID:               id,
		Name:             name,
		LaunchBoxName:    launchboxName.String,
		LibretroName:     libretroName.String,
		ScreenScraperID:  screenscraperID.Int64,
		OpenVGDBSystemID: openvgdbSystemID.Int64,
		Manufacturer:     manufacturer.String,
		ReleaseDate:      releaseDate.String,
		Category:         category.String,
		RetroArchCore:    retroarchCore.String,
		FileExtensions:   fileExtensions.String,
		Aliases:          aliases.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		platform.CreatedAt = created
	}
	return platform, nil
}

func scanGame(scanner interface{ Scan(dest ...any) error }) (*Game, error) {
	var (
		id                string
		title             string
		platformID        sql.NullInt64
		launchboxDBID     sql.NullInt64
		libretroCRC32     sql.NullString
		libretroMD5       sql.NullString
		libretroSHA1      sql.NullString
		libretroSerial    sql.NullString
		libretroTitle     sql.NullString
		screenscraperID   sql.NullInt64
		igdbID            sql.NullInt64
		steamgriddbID     sql.NullInt64
		openvgdbReleaseID sql.NullInt64
		steamAppID        sql.NullInt64
		description       sql.NullString
		releaseDate       sql.NullString
		releaseYear       sql.NullInt64
		developer         sql.NullString
		publisher         sql.NullString
		genre             sql.NullString
		players           sql.NullString
		rating            sql.NullFloat64
		ratingCount       sql.NullInt64
		esrb              sql.NullString
		cooperative       sql.NullInt64
		videoURL          sql.NullString
		wikipediaURL      sql.NullString
		releaseType       sql.NullString
		notes             sql.NullString
		sortTitle         sql.NullString
		series            sql.NullString
		region            sql.NullString
		playMode          sql.NullString
		version           sql.NullString
		status            sql.NullString
		metadataSource    sql.NullString
		createdRaw        sql.NullString
		updatedRaw        sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&title,
		&platformID,
		&launchboxDBID,
		&libretroCRC32,
		&libretroMD5,
		&libretroSHA1,
		&libretroSerial,
		&libretroTitle,
		&screenscraperID,
		&igdbID,
		&steamgriddbID,
		&openvgdbReleaseID,
		&steamAppID,
		&description,
		&releaseDate,
		&releaseYear,
		&developer,
		&publisher,
		&genre,
		&players,
		&rating,
		&ratingCount,
		&esrb,
		&cooperative,
		&videoURL,
		&wikipediaURL,
		&releaseType,
		&notes,
		&sortTitle,
		&series,
		&region,
		&playMode,
		&version,
		&status,
		&metadataSource,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	game := &Game{
		ID:                id,
		Title:             title,
		PlatformID:        platformID.Int64,
		LaunchBoxDBID:     launchboxDBID.Int64,
		LibretroCRC32:     libretroCRC32.String,
		LibretroMD5:       libretroMD5.String,
		LibretroSHA1:      libretroSHA1.String,
		LibretroSerial:    libretroSerial.String,
		LibretroTitle:     libretroTitle.String,
		ScreenScraperID:   screenscraperID.Int64,
		IGDBID:            igdbID.Int64,
		SteamGridDBID:     steamgriddbID.Int64,
		OpenVGDBReleaseID: openvgdbReleaseID.Int64,
		SteamAppID:        steamAppID.Int64,
		Description:       description.String,
		ReleaseDate:       releaseDate.String,
		ReleaseYear:       releaseYear.Int64,
		Developer:         developer.String,
		Publisher:         publisher.String,
		Genre:             genre.String,
		Players:           players.String,
		Rating:            rating.Float64,
		RatingCount:       ratingCount.Int64,
		ESRB:              esrb.String,
		VideoURL:          videoURL.String,
		WikipediaURL:      wikipediaURL.String,
		ReleaseType:       releaseType.String,
		Notes:             notes.String,
		SortTitle:         sortTitle.String,
		Series:            series.String,
		Region:            region.String,
		PlayMode:          playMode.String,
		Version:           version.String,
		Status:            status.String,
		MetadataSource:    Source(metadataSource.String),
	}
	if cooperative.Valid {
		coop := cooperative.Int64 != 0
		game.Cooperative = &coop
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		game.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		game.UpdatedAt = updated
	}
	return game, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt64(value int64) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableFloat64(value float64) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableBool(value *bool) any {
	if value == nil {
		return nil
	}
	if *value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
