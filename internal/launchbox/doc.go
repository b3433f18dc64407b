// Package launchbox ingests LaunchBox metadata, the first and
// highest-priority catalog source. It reads either the Metadata.xml
// stream (games plus alternate names) or the legacy LaunchBox.Metadata.db
// database, canonicalizes platform names, deduplicates within the source
// by normalized title and platform, and batch-inserts canonical rows.
package launchbox
