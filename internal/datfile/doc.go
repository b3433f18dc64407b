// Package datfile parses clrmamepro-style DAT files, the parenthesized
// key-value lists the libretro-database project publishes for No-Intro and
// Redump sets.
//
// A document is a sequence of named blocks:
//
//	clrmamepro (
//	    name "Nintendo - Game Boy"
//	    version "1.0"
//	)
//
//	game (
//	    name "Tetris (World)"
//	    rom ( name "tetris.gb" size 32768 crc 46DF91AD )
//	)
//
// Parsing is forgiving: unknown block types, stray tokens, and
// unterminated strings are tolerated so one malformed entry never loses the
// rest of a file. Parse reports what it understood; it does not validate.
//
// Merge folds supplementary attribute files (developer, publisher, genre,
// release year) into a base file by ROM checksum without ever creating or
// overwriting game entries.
package datfile
