package gameid

import (
	"strings"

	"ludex/internal/titles"
)

// Entry is one row of the set being matched against. Normalized must be
// the titles.Normalize form of the row's title. Checksum is the primary
// CRC32, empty when the row has none.
type Entry struct {
	PlatformID int64
	Normalized string
	Checksum   string
}

type indexKey struct {
	platform int64
	value    string
}

// Index holds the lookup structures for one ingestion phase: a checksum
// map, an exact normalized-title map, and an inverted word index for fuzzy
// candidate pre-filtering. Checksum and title keys are first writer wins.
type Index struct {
	entries    []Entry
	byChecksum map[indexKey]int
	byTitle    map[indexKey]int
	byWord     map[string][]int
}

func NewIndex() *Index {
	return &Index{
		byChecksum: make(map[indexKey]int),
		byTitle:    make(map[indexKey]int),
		byWord:     make(map[string][]int),
	}
}

// Add indexes one entry and returns its row number. Rows are numbered in
// insertion order, which is also the tie-break order for fuzzy matches, so
// callers add rows best-source-first.
func (ix *Index) Add(e Entry) int {
	row := len(ix.entries)
	ix.entries = append(ix.entries, e)

	if crc := strings.ToUpper(strings.TrimSpace(e.Checksum)); crc != "" {
		k := indexKey{platform: e.PlatformID, value: crc}
		if _, exists := ix.byChecksum[k]; !exists {
			ix.byChecksum[k] = row
		}
	}
	if e.Normalized != "" {
		k := indexKey{platform: e.PlatformID, value: e.Normalized}
		if _, exists := ix.byTitle[k]; !exists {
			ix.byTitle[k] = row
		}
	}
	for word := range titles.ExtractWords(e.Normalized) {
		ix.byWord[word] = append(ix.byWord[word], row)
	}
	return row
}

// LookupChecksum returns the first row added with the checksum on the
// given platform.
func (ix *Index) LookupChecksum(platformID int64, checksum string) (int, bool) {
	crc := strings.ToUpper(strings.TrimSpace(checksum))
	if crc == "" {
		return 0, false
	}
	row, ok := ix.byChecksum[indexKey{platform: platformID, value: crc}]
	return row, ok
}

// LookupTitle returns the first row added with the normalized title on the
// given platform.
func (ix *Index) LookupTitle(platformID int64, normalized string) (int, bool) {
	if normalized == "" {
		return 0, false
	}
	row, ok := ix.byTitle[indexKey{platform: platformID, value: normalized}]
	return row, ok
}

// Len reports the number of indexed rows.
func (ix *Index) Len() int { return len(ix.entries) }

// At returns the entry added as row number row.
func (ix *Index) At(row int) Entry { return ix.entries[row] }
