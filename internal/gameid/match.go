package gameid

import (
	"sort"
	"unicode/utf8"

	"ludex/internal/titles"
)

// MatchKind records which index produced a match.
type MatchKind string

const (
	MatchChecksum MatchKind = "checksum"
	MatchTitle    MatchKind = "exact-title"
	MatchFuzzy    MatchKind = "fuzzy-title"
)

// Candidate is an incoming record to resolve against the index.
type Candidate struct {
	PlatformID int64
	Normalized string
	Checksum   string
}

// Match is a resolved candidate. Row is the index row number. Similarity
// is 1.0 for checksum and exact-title matches.
type Match struct {
	Row        int
	Kind       MatchKind
	Similarity float64
}

// Normalized titles shorter than this never fuzzy-match.
const minFuzzyTitleLen = 3

// FindBest resolves a candidate in strict priority order: checksum, exact
// normalized title, then fuzzy similarity over rows sharing at least one
// title word. Fuzzy scores below threshold are rejected; equal scores keep
// the earliest row.
func (ix *Index) FindBest(c Candidate, threshold float64) (Match, bool) {
	if row, ok := ix.LookupChecksum(c.PlatformID, c.Checksum); ok {
		return Match{Row: row, Kind: MatchChecksum, Similarity: 1.0}, true
	}
	if row, ok := ix.LookupTitle(c.PlatformID, c.Normalized); ok {
		return Match{Row: row, Kind: MatchTitle, Similarity: 1.0}, true
	}
	if utf8.RuneCountInString(c.Normalized) < minFuzzyTitleLen {
		return Match{}, false
	}

	bestRow := -1
	bestScore := 0.0
	for _, row := range ix.fuzzyCandidates(c.Normalized) {
		score := titles.Similarity(c.Normalized, ix.entries[row].Normalized)
		if score < threshold {
			continue
		}
		if bestRow < 0 || score > bestScore {
			bestRow = row
			bestScore = score
		}
	}
	if bestRow < 0 {
		return Match{}, false
	}
	return Match{Row: bestRow, Kind: MatchFuzzy, Similarity: bestScore}, true
}

// fuzzyCandidates returns the rows sharing at least one word with the
// normalized title, in row order.
func (ix *Index) fuzzyCandidates(normalized string) []int {
	words := titles.ExtractWords(normalized)
	if len(words) == 0 {
		return nil
	}
	seen := make(map[int]struct{})
	for word := range words {
		for _, row := range ix.byWord[word] {
			seen[row] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	rows := make([]int, 0, len(seen))
	for row := range seen {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}
