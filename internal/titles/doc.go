// Package titles normalizes game titles and classifies the parenthetical
// tags that release lists attach to them.
//
// The primary use cases are:
//   - Producing stable normalized keys for cross-source title matching
//   - Extracting and classifying tags such as (USA), (Rev 1), (Beta)
//   - Scoring near-miss titles with Levenshtein similarity
//
// Normalization lowercases, strips parenthesized and bracketed spans,
// removes punctuation, collapses whitespace, and drops leading articles.
// The result is idempotent, so normalized keys can be re-normalized safely.
//
// Tag classification runs off an injectable Vocabulary so region and
// keyword tables can be extended without touching matching logic.
package titles
