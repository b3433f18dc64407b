package platforms

import "strings"

// Entry declares one canonical platform: the spellings that resolve to it
// and, optionally, its short search aliases.
type Entry struct {
	Canonical string
	Aliases   []string
	Search    string
}

// Canonicalizer resolves source platform names against a table of entries.
// Construct once and reuse; lookups are read-only and safe for concurrent
// use.
type Canonicalizer struct {
	byAlias  map[string]string
	bySearch map[string]string
}

// NewCanonicalizer builds a Canonicalizer from the given table. Alias keys
// are lowercased; on duplicate aliases the first entry wins.
func NewCanonicalizer(table []Entry) *Canonicalizer {
	c := &Canonicalizer{
		byAlias:  make(map[string]string),
		bySearch: make(map[string]string, len(table)),
	}
	for _, entry := range table {
		for _, alias := range entry.Aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if _, ok := c.byAlias[key]; !ok {
				c.byAlias[key] = entry.Canonical
			}
		}
		if entry.Search != "" {
			c.bySearch[entry.Canonical] = entry.Search
		}
	}
	return c
}

// Default returns a Canonicalizer over the built-in table.
func Default() *Canonicalizer {
	return NewCanonicalizer(DefaultTable())
}

// Canonicalize returns the canonical name for a source platform spelling.
// Matching is exact on the lowercased, trimmed input; names not in the
// table come back trimmed but otherwise untouched.
func (c *Canonicalizer) Canonicalize(name string) string {
	if canonical, ok := c.byAlias[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return strings.TrimSpace(name)
}

// SearchAliases returns the comma-joined search aliases for a canonical
// name, or "" when the entry has none.
func (c *Canonicalizer) SearchAliases(canonical string) string {
	return c.bySearch[canonical]
}
