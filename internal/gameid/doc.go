// Package gameid resolves incoming source records against an indexed set
// of catalog rows.
//
// An Index is built per ingestion phase from the rows that phase may match
// against, and is consulted through FindBest, which applies a strict
// priority: a checksum hit outranks an exact normalized-title hit, which
// outranks a fuzzy title match. Fuzzy matching only considers rows sharing
// at least one title word with the candidate and accepts the best score at
// or above the caller's threshold.
//
// Checksum and exact-title lookups match only within the candidate's
// platform; fuzzy candidates are drawn from the whole word index. Phases
// matching a source without reliable platform mapping build the index with
// zero platform ids throughout.
package gameid
