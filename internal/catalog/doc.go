// Package catalog persists the canonical game catalog in SQLite.
//
// The store owns the platforms, games, and game_alternate_names tables.
// Writes follow the fill-only-if-empty rule: once a column is non-empty it
// is never overwritten by a later source. Deciding which source row maps
// to which canonical row is the reconcile package's job; the store only
// supplies the primitives (plain inserts, COALESCE updates, lookups).
package catalog
