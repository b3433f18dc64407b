// Package platforms maps the many spellings of a system name used by
// different catalog sources onto one canonical display name.
//
// Canonicalization is an exact lookup over lowercased, trimmed spellings.
// There is no substring matching: short abbreviations such as
// "pc" appear inside unrelated platform names, and containment checks
// misassigned those platforms in the past. Unknown names pass through
// trimmed so new systems degrade to their source spelling instead of
// failing.
//
// Each entry can also carry a comma-joined list of short search aliases.
// Those feed user-facing search only and play no part in identity.
package platforms
