package datfile

import (
	"strconv"
	"strings"
)

// File is one parsed DAT document.
type File struct {
	Header Header
	Games  []Game
}

// Header carries the document-level identification block.
type Header struct {
	Name        string
	Description string
	Version     string
	Author      string
	Homepage    string
	Comment     string
}

// Game is one game entry with its checksum-bearing ROM files. Zero values
// mean the field was absent from the source.
type Game struct {
	Name         string
	Description  string
	Region       string
	ReleaseYear  int
	ReleaseMonth int
	Serial       string
	Developer    string
	Publisher    string
	Genre        string
	Franchise    string
	ROMs         []ROM
}

// ROM is one file entry inside a game block. Checksums are stored uppercase;
// Size is 0 when the entry did not carry one.
type ROM struct {
	Name string
	Size int64
	CRC  string
	MD5  string
	SHA1 string
}

func headerFromBlock(b *block) Header {
	return Header{
		Name:        b.scalar("name"),
		Description: b.scalar("description"),
		Version:     b.scalar("version"),
		Author:      b.scalar("author"),
		Homepage:    b.scalar("homepage"),
		Comment:     b.scalar("comment"),
	}
}

func gameFromBlock(b *block) Game {
	game := Game{
		Name:         b.scalar("name"),
		Description:  b.scalar("description"),
		Region:       b.scalar("region"),
		ReleaseYear:  parseIntField(b.scalar("releaseyear")),
		ReleaseMonth: parseIntField(b.scalar("releasemonth")),
		Serial:       b.scalar("serial"),
		Developer:    b.scalar("developer"),
		Publisher:    b.scalar("publisher"),
		Genre:        b.scalar("genre"),
		Franchise:    b.scalar("franchise"),
	}
	for _, child := range b.children["rom"] {
		rom := romFromBlock(child)
		if rom.Name == "" {
			continue
		}
		game.ROMs = append(game.ROMs, rom)
	}
	return game
}

func romFromBlock(b *block) ROM {
	crc := b.scalar("crc")
	if crc == "" {
		crc = b.scalar("crc32")
	}
	size, _ := strconv.ParseInt(b.scalar("size"), 10, 64)
	return ROM{
		Name: b.scalar("name"),
		Size: size,
		CRC:  strings.ToUpper(crc),
		MD5:  strings.ToUpper(b.scalar("md5")),
		SHA1: strings.ToUpper(b.scalar("sha1")),
	}
}

func parseIntField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
