package launchbox

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"ludex/internal/logging"
)

// Game is one game record from either LaunchBox source. The XML stream
// fills every field; the legacy database carries no rating count,
// Wikipedia or Steam links, or notes, and is the only source of
// CompareName.
type Game struct {
	DatabaseID   int64
	Name         string
	CompareName  string
	Platform     string
	Overview     string
	Developer    string
	Publisher    string
	Genres       string
	ReleaseDate  string
	ReleaseYear  int64
	MaxPlayers   string
	Rating       float64
	RatingCount  int64
	ESRB         string
	Cooperative  *bool
	VideoURL     string
	WikipediaURL string
	ReleaseType  string
	SteamAppID   int64
	Notes        string
}

// AlternateName is one regional or alternate title, linked to its game
// by the LaunchBox database id.
type AlternateName struct {
	DatabaseID int64
	Name       string
	Region     string
}

// Handlers receive records as the stream yields them. A nil handler
// skips its element kind without decoding it.
type Handlers struct {
	Game          func(Game) error
	AlternateName func(AlternateName) error
}

// ParseMetadata streams a Metadata.xml file through the handlers. Only
// Game and GameAlternateName elements are decoded; everything else,
// images included, is passed over. A malformed element is logged and
// skipped; an error that breaks the stream itself, or one returned by a
// handler, aborts the parse.
func ParseMetadata(ctx context.Context, path string, h Handlers, logger *slog.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open metadata stream: %w", err)
	}
	defer file.Close()
	return parseMetadata(ctx, file, h, logger)
}

func parseMetadata(ctx context.Context, r io.Reader, h Handlers, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}

	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read metadata stream: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "Game":
			if h.Game == nil {
				skipElement(decoder, &start, logger)
				continue
			}
			var raw xmlGame
			if err := decoder.DecodeElement(&raw, &start); err != nil {
				logger.Warn("skipping malformed game element",
					logging.Int64("offset", decoder.InputOffset()),
					logging.Error(err))
				continue
			}
			if err := h.Game(raw.game()); err != nil {
				return err
			}
		case "GameAlternateName":
			if h.AlternateName == nil {
				skipElement(decoder, &start, logger)
				continue
			}
			var raw xmlAlternateName
			if err := decoder.DecodeElement(&raw, &start); err != nil {
				logger.Warn("skipping malformed alternate name element",
					logging.Int64("offset", decoder.InputOffset()),
					logging.Error(err))
				continue
			}
			if err := h.AlternateName(raw.alternateName()); err != nil {
				return err
			}
		}
	}
}

func skipElement(decoder *xml.Decoder, start *xml.StartElement, logger *slog.Logger) {
	if err := decoder.Skip(); err != nil {
		logger.Warn("skipping unreadable element",
			logging.String("element", start.Name.Local),
			logging.Error(err))
	}
}

// xmlGame mirrors the whitelisted child elements of a <Game>. Every
// field decodes as text so one unparseable number drops that field, not
// the whole element.
type xmlGame struct {
	Name                 string `xml:"Name"`
	Platform             string `xml:"Platform"`
	Overview             string `xml:"Overview"`
	Developer            string `xml:"Developer"`
	Publisher            string `xml:"Publisher"`
	Genres               string `xml:"Genres"`
	ReleaseDate          string `xml:"ReleaseDate"`
	ReleaseYear          string `xml:"ReleaseYear"`
	MaxPlayers           string `xml:"MaxPlayers"`
	CommunityRating      string `xml:"CommunityRating"`
	CommunityRatingCount string `xml:"CommunityRatingCount"`
	ESRB                 string `xml:"ESRB"`
	Cooperative          string `xml:"Cooperative"`
	VideoURL             string `xml:"VideoURL"`
	WikipediaURL         string `xml:"WikipediaURL"`
	DatabaseID           string `xml:"DatabaseID"`
	ReleaseType          string `xml:"ReleaseType"`
	SteamAppID           string `xml:"SteamAppId"`
	Notes                string `xml:"Notes"`
}

func (x xmlGame) game() Game {
	return Game{
		DatabaseID:   parseInt64(x.DatabaseID),
		Name:         strings.TrimSpace(x.Name),
		Platform:     strings.TrimSpace(x.Platform),
		Overview:     strings.TrimSpace(x.Overview),
		Developer:    strings.TrimSpace(x.Developer),
		Publisher:    strings.TrimSpace(x.Publisher),
		Genres:       strings.TrimSpace(x.Genres),
		ReleaseDate:  strings.TrimSpace(x.ReleaseDate),
		ReleaseYear:  parseInt64(x.ReleaseYear),
		MaxPlayers:   strings.TrimSpace(x.MaxPlayers),
		Rating:       parseFloat64(x.CommunityRating),
		RatingCount:  parseInt64(x.CommunityRatingCount),
		ESRB:         strings.TrimSpace(x.ESRB),
		Cooperative:  parseBool(x.Cooperative),
		VideoURL:     strings.TrimSpace(x.VideoURL),
		WikipediaURL: strings.TrimSpace(x.WikipediaURL),
		ReleaseType:  strings.TrimSpace(x.ReleaseType),
		SteamAppID:   parseInt64(x.SteamAppID),
		Notes:        strings.TrimSpace(x.Notes),
	}
}

type xmlAlternateName struct {
	DatabaseID    string `xml:"DatabaseID"`
	AlternateName string `xml:"AlternateName"`
	Region        string `xml:"Region"`
}

func (x xmlAlternateName) alternateName() AlternateName {
	return AlternateName{
		DatabaseID: parseInt64(x.DatabaseID),
		Name:       strings.TrimSpace(x.AlternateName),
		Region:     strings.TrimSpace(x.Region),
	}
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat64(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBool keeps the tri-state: absent text stays nil, anything other
// than "true" is false.
func parseBool(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v := strings.EqualFold(s, "true")
	return &v
}
