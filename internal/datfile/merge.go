package datfile

// Merge copies attribute fields from supplement entries onto base games
// sharing a ROM checksum. A field is written only when the base game does
// not have it yet, and supplements never add game entries of their own.
// The first base game claiming a checksum keeps it on collisions.
func Merge(base *File, supplements ...*File) {
	if base == nil || len(base.Games) == 0 {
		return
	}
	byCRC := make(map[string]*Game)
	for i := range base.Games {
		for _, rom := range base.Games[i].ROMs {
			if rom.CRC == "" {
				continue
			}
			if _, ok := byCRC[rom.CRC]; !ok {
				byCRC[rom.CRC] = &base.Games[i]
			}
		}
	}

	for _, supplement := range supplements {
		if supplement == nil {
			continue
		}
		for _, entry := range supplement.Games {
			for _, rom := range entry.ROMs {
				game, ok := byCRC[rom.CRC]
				if rom.CRC == "" || !ok {
					continue
				}
				fillString(&game.Developer, entry.Developer)
				fillString(&game.Publisher, entry.Publisher)
				fillString(&game.Genre, entry.Genre)
				fillString(&game.Franchise, entry.Franchise)
				fillString(&game.Serial, entry.Serial)
				fillInt(&game.ReleaseYear, entry.ReleaseYear)
				fillInt(&game.ReleaseMonth, entry.ReleaseMonth)
			}
		}
	}
}

func fillString(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}

func fillInt(dst *int, src int) {
	if *dst == 0 && src != 0 {
		*dst = src
	}
}
