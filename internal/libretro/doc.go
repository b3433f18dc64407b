// Package libretro ingests libretro-database DAT files, the second
// reconciliation phase. Per-platform DATs under metadat/no-intro and
// metadat/redump supply titles and checksums; supplement DATs fill
// developer, publisher, genre, and release year by checksum. Records
// merge into earlier rows by CRC, or by title when the DAT carries a
// single variant; everything else inserts, deduplicated within each DAT
// by raw full title so regional variants survive.
package libretro
