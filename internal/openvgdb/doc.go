// Package openvgdb is the enrichment phase. It reads release and ROM
// rows from an OpenVGDB sqlite file, indexes them by checksum and
// normalized title, and fills empty descriptive columns on catalog rows
// whose best release match clears the fuzzy threshold. The phase never
// inserts games; rows without a usable match are left alone.
package openvgdb
