package catalog

import "time"

// Source identifies which ingestion phase first supplied a record's
// usable metadata.
type Source string

const (
	SourceLaunchBox Source = "launchbox"
	SourceLibretro  Source = "libretro"
	SourceOpenVGDB  Source = "openvgdb"
)

// Platform is one canonical platform row. String and numeric fields use
// the zero value for "absent"; absent values are stored as NULL.
type Platform struct {
	ID               int64
	Name             string
	LaunchBoxName    string
	LibretroName     string
	ScreenScraperID  int64
	OpenVGDBSystemID int64
	Manufacturer     string
	ReleaseDate      string
	Category         string
	RetroArchCore    string
	FileExtensions   string
	Aliases          string
	CreatedAt        time.Time
}

// Game is one canonical game row. Identifier and metadata fields use the
// zero value for "absent" and are stored as NULL. Cooperative is
// tri-state: nil means no source has said either way.
type Game struct {
	ID         string
	Title      string
	PlatformID int64

	LaunchBoxDBID     int64
	LibretroCRC32     string
	LibretroMD5       string
	LibretroSHA1      string
	LibretroSerial    string
	LibretroTitle     string
	ScreenScraperID   int64
	IGDBID            int64
	SteamGridDBID     int64
	OpenVGDBReleaseID int64
	SteamAppID        int64

	Description string
	ReleaseDate string
	ReleaseYear int64
	Developer   string
	Publisher   string
	Genre       string

	Players      string
	Rating       float64
	RatingCount  int64
	ESRB         string
	Cooperative  *bool
	VideoURL     string
	WikipediaURL string
	ReleaseType  string
	Notes        string

	SortTitle string
	Series    string
	Region    string
	PlayMode  string
	Version   string
	Status    string

	MetadataSource Source
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GameKey is the slim projection match indexes are built from.
type GameKey struct {
	ID         string
	PlatformID int64
	Title      string
	CRC32      string
}

// AlternateName is a regional or alternate title. It links to the source
// numeric id rather than the canonical UUID because several game variants
// can share one launchbox_db_id.
type AlternateName struct {
	ID            int64
	LaunchBoxDBID int64
	Name          string
	Region        string
}

// LibretroMerge carries the fields a DAT match may contribute to an
// existing row. Every field fills only where the stored value is empty.
type LibretroMerge struct {
	CRC32       string
	MD5         string
	SHA1        string
	Serial      string
	SourceTitle string
	ReleaseYear int64
	Developer   string
	Publisher   string
	Genre       string
}

// Enrichment carries the descriptive fields the enrichment phase may
// contribute. Every field fills only where the stored value is empty.
type Enrichment struct {
	Description string
	Developer   string
	Publisher   string
	Genre       string
	ReleaseDate string
	ReleaseID   int64
}

// HasData reports whether the enrichment carries at least one usable
// descriptive field. ReleaseID alone does not count.
func (e Enrichment) HasData() bool {
	return e.Description != "" || e.Developer != "" || e.Publisher != "" ||
		e.Genre != "" || e.ReleaseDate != ""
}

// Stats summarizes catalog contents after a build.
type Stats struct {
	Platforms      int64
	Games          int64
	AlternateNames int64
	GamesBySource  map[Source]int64
}
