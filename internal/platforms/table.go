package platforms

// DefaultTable returns the built-in platform entries. Canonical names follow
// the LaunchBox platform list; aliases cover the libretro-database DAT file
// names (the "Maker - System" form), common abbreviations, and the bare
// system names the legacy sources use.
func DefaultTable() []Entry {
	return []Entry{
		// Nintendo
		{
			Canonical: "Nintendo Entertainment System",
			Aliases: []string{
				"nes", "nintendo entertainment system",
				"nintendo - nintendo entertainment system", "famicom",
				"nintendo - family computer",
			},
			Search: "NES, Famicom, FC, nes, famicom",
		},
		{
			Canonical: "Nintendo Famicom Disk System",
			Aliases: []string{
				"fds", "famicom disk system", "nintendo famicom disk system",
				"nintendo - famicom disk system",
			},
		},
		{
			Canonical: "Super Nintendo Entertainment System",
			Aliases: []string{
				"snes", "super nes", "super famicom",
				"super nintendo entertainment system",
				"nintendo - super nintendo entertainment system",
				"nintendo super nintendo entertainment system",
			},
			Search: "SNES, Super Famicom, SFC, snes, snesna",
		},
		{
			Canonical: "Nintendo Game Boy",
			Aliases: []string{
				"gb", "game boy", "nintendo game boy", "nintendo - game boy",
			},
			Search: "GB, Game Boy, gb",
		},
		{
			Canonical: "Nintendo Game Boy Color",
			Aliases: []string{
				"gbc", "game boy color", "nintendo game boy color",
				"nintendo - game boy color",
			},
			Search: "GBC, Game Boy Color, gbc",
		},
		{
			Canonical: "Nintendo Game Boy Advance",
			Aliases: []string{
				"gba", "game boy advance", "nintendo game boy advance",
				"nintendo - game boy advance",
			},
			Search: "GBA, Game Boy Advance, gba",
		},
		{
			Canonical: "Nintendo 64",
			Aliases:   []string{"n64", "nintendo 64", "nintendo - nintendo 64"},
			Search:    "N64, n64",
		},
		{
			Canonical: "Nintendo GameCube",
			Aliases: []string{
				"gamecube", "gc", "ngc", "nintendo gamecube",
				"nintendo - gamecube",
			},
			Search: "GC, NGC, GameCube, gc, gamecube",
		},
		{
			Canonical: "Nintendo Wii",
			Aliases:   []string{"wii", "nintendo wii", "nintendo - wii"},
			Search:    "Wii, wii",
		},
		{
			Canonical: "Nintendo Wii U",
			Aliases: []string{
				"wii u", "wiiu", "nintendo wii u", "nintendo - wii u",
			},
			Search: "Wii U, WiiU, wiiu",
		},
		{
			Canonical: "Nintendo DS",
			Aliases: []string{
				"ds", "nds", "nintendo ds", "nintendo - nintendo ds",
			},
			Search: "NDS, DS, nds",
		},
		{
			Canonical: "Nintendo 3DS",
			Aliases:   []string{"3ds", "nintendo 3ds", "nintendo - nintendo 3ds"},
			Search:    "3DS, n3ds, 3ds",
		},
		{
			Canonical: "Nintendo Virtual Boy",
			Aliases: []string{
				"vb", "virtual boy", "nintendo virtual boy",
				"nintendo - virtual boy",
			},
			Search: "VB, Virtual Boy, virtualboy",
		},
		{
			Canonical: "Nintendo Switch",
			Aliases:   []string{"switch", "nintendo switch", "nintendo - switch"},
			Search:    "Switch, NS, switch",
		},
		{
			Canonical: "Nintendo Pokemon Mini",
			Aliases: []string{
				"pokemon mini", "nintendo pokemon mini",
				"nintendo - pokemon mini",
			},
		},

		// Sony
		{
			Canonical: "Sony Playstation",
			Aliases: []string{
				"ps1", "psx", "playstation", "sony playstation",
				"sony - playstation",
			},
			Search: "PS1, PSX, PS, PlayStation, psx",
		},
		{
			Canonical: "Sony Playstation 2",
			Aliases: []string{
				"ps2", "playstation 2", "sony playstation 2",
				"sony - playstation 2",
			},
			Search: "PS2, PlayStation 2, ps2",
		},
		{
			Canonical: "Sony Playstation 3",
			Aliases: []string{
				"ps3", "playstation 3", "sony playstation 3",
				"sony - playstation 3",
			},
			Search: "PS3, PlayStation 3, ps3",
		},
		{
			Canonical: "Sony Playstation 4",
			Aliases: []string{
				"ps4", "playstation 4", "sony playstation 4",
				"sony - playstation 4",
			},
		},
		{
			Canonical: "Sony Playstation 5",
			Aliases: []string{
				"ps5", "playstation 5", "sony playstation 5",
				"sony - playstation 5",
			},
		},
		{
			Canonical: "Sony PSP",
			Aliases: []string{
				"psp", "sony psp", "playstation portable",
				"sony playstation portable", "sony - playstation portable",
			},
			Search: "PSP, PlayStation Portable, psp",
		},
		{
			Canonical: "Sony Playstation Vita",
			Aliases: []string{
				"vita", "ps vita", "playstation vita", "sony playstation vita",
				"sony - playstation vita",
			},
			Search: "PSV, Vita, PS Vita, psvita",
		},

		// Sega
		{
			Canonical: "Sega Genesis",
			Aliases: []string{
				"genesis", "md", "mega drive", "sega genesis",
				"sega mega drive", "sega - mega drive - genesis",
				"sega genesis/mega drive",
			},
			Search: "MD, Mega Drive, Genesis, genesis, megadrive",
		},
		{
			Canonical: "Sega Master System",
			Aliases: []string{
				"sms", "master system", "sega master system",
				"sega - master system - mark iii",
			},
			Search: "SMS, Master System, mastersystem",
		},
		{
			Canonical: "Sega Game Gear",
			Aliases: []string{
				"gg", "game gear", "sega game gear", "sega - game gear",
			},
			Search: "GG, Game Gear, gamegear",
		},
		{
			Canonical: "Sega Saturn",
			Aliases:   []string{"saturn", "sega saturn", "sega - saturn"},
			Search:    "SS, Saturn, saturn",
		},
		{
			Canonical: "Sega Dreamcast",
			Aliases: []string{
				"dreamcast", "dc", "sega dreamcast", "sega - dreamcast",
			},
			Search: "DC, Dreamcast, dreamcast",
		},
		{
			Canonical: "Sega 32X",
			Aliases:   []string{"32x", "sega 32x", "sega - 32x"},
			Search:    "32X, sega32x",
		},
		{
			Canonical: "Sega CD",
			Aliases: []string{
				"scd", "mega cd", "mega-cd", "sega cd", "sega - cd",
				"sega cd/mega-cd",
			},
			Search: "SCD, Mega CD, Sega CD, segacd, megacd",
		},
		{
			Canonical: "Sega SG-1000",
			Aliases: []string{
				"sg1000", "sg-1000", "sega sg-1000", "sega - sg-1000",
			},
		},

		// Atari
		{
			Canonical: "Atari 2600",
			Aliases:   []string{"2600", "atari - 2600"},
			Search:    "2600, VCS, atari2600",
		},
		{
			Canonical: "Atari 5200",
			Aliases:   []string{"5200", "atari - 5200"},
			Search:    "5200, atari5200",
		},
		{
			Canonical: "Atari 7800",
			Aliases:   []string{"7800", "atari - 7800"},
			Search:    "7800, atari7800",
		},
		{
			Canonical: "Atari Lynx",
			Aliases:   []string{"lynx", "atari - lynx"},
			Search:    "Lynx, lynx",
		},
		{
			Canonical: "Atari Jaguar",
			Aliases:   []string{"jaguar", "atari - jaguar"},
			Search:    "Jaguar, Jag, atarijaguar",
		},
		{
			Canonical: "Atari Jaguar CD",
			Aliases:   []string{"jaguar cd", "atari - jaguar cd"},
			Search:    "Jaguar CD, atarijaguarcd",
		},
		{
			Canonical: "Atari ST",
			Aliases:   []string{"st", "atari st", "atari - st"},
		},
		{
			Canonical: "Atari 800",
			Aliases:   []string{"atari 8-bit", "atari - 800"},
		},

		// NEC
		{
			Canonical: "NEC TurboGrafx-16",
			Aliases: []string{
				"pce", "turbografx-16", "turbografx 16", "pc engine",
				"nec - pc engine - turbografx 16",
				"nec pc engine/turbografx-16",
			},
			Search: "PCE, PC Engine, TG16, TurboGrafx-16, tg16, pcengine",
		},
		{
			Canonical: "NEC TurboGrafx-CD",
			Aliases: []string{
				"pcecd", "turbografx-cd", "pc engine cd",
				"nec - pc engine cd - turbografx-cd",
				"nec pc engine cd/turbografx-cd",
			},
			Search: "PCECD, PC Engine CD, TG-CD, TurboGrafx-CD, tg-cd, pcenginecd",
		},
		{
			Canonical: "PC Engine SuperGrafx",
			Aliases: []string{
				"supergrafx", "nec supergrafx", "nec - supergrafx",
			},
		},
		{
			Canonical: "NEC PC-FX",
			Aliases:   []string{"pcfx", "pc-fx", "nec - pc-fx"},
		},
		{
			Canonical: "NEC PC-8801",
			Aliases:   []string{"pc-8801", "pc8801", "nec - pc-8801"},
		},
		{
			Canonical: "NEC PC-9801",
			Aliases:   []string{"pc-9801", "pc9801", "nec - pc-9801"},
			Search:    "PC98, PC-98, pc98",
		},

		// SNK
		{
			Canonical: "SNK Neo Geo AES",
			Aliases: []string{
				"neo geo", "neogeo", "snk - neo geo", "neo geo aes",
			},
			Search: "AES, MVS, Neo Geo, neogeo",
		},
		{
			Canonical: "SNK Neo Geo MVS",
			Aliases:   []string{"neo geo mvs", "snk - neo geo mvs"},
		},
		{
			Canonical: "SNK Neo Geo CD",
			Aliases:   []string{"neo geo cd", "snk - neo geo cd"},
			Search:    "Neo Geo CD, neogeocd, neogeocdjp",
		},
		{
			Canonical: "SNK Neo Geo Pocket",
			Aliases: []string{
				"ngp", "neo geo pocket", "snk - neo geo pocket",
			},
			Search: "NGP, Neo Geo Pocket, ngp",
		},
		{
			Canonical: "SNK Neo Geo Pocket Color",
			Aliases: []string{
				"ngpc", "neo geo pocket color", "snk - neo geo pocket color",
			},
			Search: "NGPC, Neo Geo Pocket Color, ngpc",
		},

		// Arcade and game engines
		{
			Canonical: "Arcade",
			Aliases:   []string{"arcade", "mame", "fbneo"},
			Search:    "MAME, arcade, fbneo",
		},
		{
			Canonical: "ScummVM",
			Aliases:   []string{"scummvm"},
			Search:    "ScummVM, scummvm",
		},
		{Canonical: "OpenBOR", Aliases: []string{"openbor"}},
		{Canonical: "MUGEN", Aliases: []string{"mugen"}},
		{Canonical: "PICO-8", Aliases: []string{"pico-8", "pico8"}},
		{Canonical: "Uzebox", Aliases: []string{"uzebox"}},
		{Canonical: "Arduboy", Aliases: []string{"arduboy"}},
		{Canonical: "WASM-4", Aliases: []string{"wasm-4", "wasm4"}},

		// Commodore
		{
			Canonical: "Commodore 64",
			Aliases:   []string{"c64", "commodore - 64"},
			Search:    "C64, c64",
		},
		{
			Canonical: "Commodore 128",
			Aliases:   []string{"c128", "commodore - 128"},
		},
		{
			Canonical: "Commodore 16",
			Search:    "C16, c16",
		},
		{
			Canonical: "Commodore Amiga",
			Aliases:   []string{"amiga", "commodore - amiga"},
			Search:    "Amiga, amiga",
		},
		{
			Canonical: "Commodore Amiga CD32",
			Aliases:   []string{"amiga cd32", "commodore - amiga cd32"},
		},
		{
			Canonical: "Commodore VIC-20",
			Aliases:   []string{"vic-20", "vic20", "commodore - vic-20"},
			Search:    "VIC-20, VIC20, vic20",
		},

		// Sinclair
		{
			Canonical: "Sinclair ZX Spectrum",
			Aliases: []string{
				"zx spectrum", "spectrum", "sinclair - zx spectrum",
			},
			Search: "ZX, ZX Spectrum, zxspectrum",
		},
		{
			Canonical: "Sinclair ZX-81",
			Aliases:   []string{"zx81", "zx-81", "sinclair - zx81"},
		},

		// Microsoft
		{
			Canonical: "MS-DOS",
			Aliases: []string{
				"ms-dos", "dos", "microsoft - ms-dos", "pc - dos", "ibm pc",
			},
			Search: "DOS, dos",
		},
		{
			Canonical: "Microsoft Xbox",
			Aliases:   []string{"xbox", "microsoft - xbox"},
			Search:    "Xbox, xbox",
		},
		{
			Canonical: "Microsoft Xbox 360",
			Aliases:   []string{"xbox 360", "microsoft - xbox 360"},
			Search:    "X360, 360, Xbox 360, xbox360",
		},
		{
			Canonical: "Microsoft Xbox One",
			Aliases:   []string{"xbox one", "microsoft - xbox one"},
		},
		{
			Canonical: "Microsoft Xbox Series X/S",
			Aliases: []string{
				"xbox series x", "xbox series s", "microsoft - xbox series x/s",
			},
		},
		{
			Canonical: "Microsoft MSX",
			Aliases:   []string{"msx", "microsoft - msx"},
			Search:    "MSX, msx",
		},
		{
			Canonical: "Microsoft MSX2",
			Aliases:   []string{"msx2", "microsoft - msx2"},
			Search:    "MSX2, msx2",
		},
		{
			Canonical: "Microsoft MSX2+",
			Aliases:   []string{"msx2+", "microsoft - msx2+"},
		},
		{Canonical: "Windows", Aliases: []string{"windows", "pc"}},
		{Canonical: "Linux", Aliases: []string{"linux"}},

		// Bandai
		{
			Canonical: "WonderSwan",
			Aliases: []string{
				"wonderswan", "ws", "bandai wonderswan", "bandai - wonderswan",
			},
			Search: "WS, WonderSwan, wonderswan",
		},
		{
			Canonical: "WonderSwan Color",
			Aliases: []string{
				"wonderswan color", "wsc", "bandai wonderswan color",
				"bandai - wonderswan color",
			},
			Search: "WSC, WonderSwan Color, wonderswancolor",
		},
		{
			Canonical: "Bandai Playdia",
			Aliases:   []string{"playdia", "bandai - playdia"},
		},
		{
			Canonical: "Bandai Super Vision 8000",
			Aliases: []string{
				"super vision 8000", "bandai - super vision 8000",
			},
		},

		// Other consoles
		{
			Canonical: "ColecoVision",
			Aliases: []string{
				"colecovision", "coleco colecovision", "coleco - colecovision",
			},
			Search: "Coleco, ColecoVision, colecovision",
		},
		{
			Canonical: "Mattel Intellivision",
			Aliases:   []string{"intellivision", "mattel - intellivision"},
			Search:    "Intellivision, intellivision",
		},
		{
			Canonical: "Mattel Aquarius",
			Aliases:   []string{"aquarius", "mattel - aquarius"},
		},
		{
			Canonical: "Magnavox Odyssey",
			Aliases:   []string{"odyssey", "magnavox - odyssey"},
		},
		{
			Canonical: "Magnavox Odyssey 2",
			Aliases: []string{
				"odyssey2", "odyssey 2", "magnavox odyssey2",
				"magnavox - odyssey 2",
			},
		},
		{
			Canonical: "GCE Vectrex",
			Aliases:   []string{"vectrex", "gce - vectrex"},
			Search:    "Vectrex, vectrex",
		},
		{
			Canonical: "3DO Interactive Multiplayer",
			Aliases:   []string{"3do", "3do interactive multiplayer"},
			Search:    "3DO, 3do",
		},
		{
			Canonical: "Philips CD-i",
			Aliases:   []string{"cd-i", "cdi", "philips - cd-i"},
			Search:    "CD-i, CDi, cdimono1",
		},
		{
			Canonical: "Fairchild Channel F",
			Aliases:   []string{"channel f", "fairchild - channel f"},
		},
		{
			Canonical: "Nokia N-Gage",
			Aliases:   []string{"n-gage", "ngage", "nokia - n-gage"},
		},
		{
			Canonical: "Watara Supervision",
			Aliases:   []string{"supervision", "watara - supervision"},
		},
		{
			Canonical: "Emerson Arcadia 2001",
			Aliases:   []string{"arcadia 2001", "emerson - arcadia 2001"},
		},
		{
			Canonical: "Bally Astrocade",
			Aliases:   []string{"astrocade", "bally - astrocade"},
		},
		{
			Canonical: "Entex Adventure Vision",
			Aliases: []string{
				"adventure vision", "entex - adventure vision",
			},
		},
		{
			Canonical: "GamePark GP32",
			Aliases:   []string{"gp32", "gamepark - gp32"},
		},
		{
			Canonical: "Hartung Game Master",
			Aliases:   []string{"game master", "hartung - game master"},
		},
		{
			Canonical: "RCA Studio II",
			Aliases:   []string{"studio ii", "rca - studio ii"},
		},
		{
			Canonical: "Tiger Game.com",
			Aliases:   []string{"game.com", "tiger - game.com"},
		},
		{
			Canonical: "Tomy Tutor",
			Aliases:   []string{"tutor", "tomy - tutor"},
		},
		{
			Canonical: "Interton VC 4000",
			Aliases:   []string{"vc 4000", "interton - vc 4000"},
		},
		{
			Canonical: "Epoch Super Cassette Vision",
			Aliases: []string{
				"super cassette vision", "epoch - super cassette vision",
			},
		},
		{
			Canonical: "Epoch Game Pocket Computer",
			Aliases: []string{
				"game pocket computer", "epoch - game pocket computer",
			},
		},
		{
			Canonical: "VTech CreatiVision",
			Aliases:   []string{"creativision", "vtech - creativision"},
		},
		{
			Canonical: "Casio PV-1000",
			Aliases:   []string{"pv-1000", "casio - pv-1000"},
		},
		{
			Canonical: "Casio Loopy",
			Aliases:   []string{"loopy", "casio - loopy"},
		},
		{
			Canonical: "Mega Duck",
			Aliases:   []string{"mega duck", "megaduck"},
		},

		// Home computers
		{
			Canonical: "Amstrad CPC",
			Aliases:   []string{"cpc", "amstrad cpc", "amstrad - cpc"},
			Search:    "CPC, amstradcpc",
		},
		{
			Canonical: "Amstrad GX4000",
			Aliases:   []string{"gx4000", "amstrad gx4000", "amstrad - gx4000"},
		},
		{
			Canonical: "Apple II",
			Aliases:   []string{"apple ii", "apple 2", "apple - ii"},
		},
		{
			Canonical: "Apple IIGS",
			Aliases:   []string{"apple iigs", "apple - iigs"},
		},
		{
			Canonical: "Tandy TRS-80",
			Aliases:   []string{"trs-80", "trs80", "tandy - trs-80"},
		},
		{
			Canonical: "TRS-80 Color Computer",
			Aliases:   []string{"coco", "trs-80 coco"},
		},
		{
			Canonical: "BBC Microcomputer System",
			Aliases: []string{
				"bbc micro", "bbc microcomputer", "bbc - microcomputer",
			},
		},
		{
			Canonical: "Texas Instruments TI 99/4A",
			Aliases:   []string{"ti-99/4a", "ti99", "ti - 99/4a"},
		},
		{
			Canonical: "Sharp X68000",
			Aliases:   []string{"x68000", "sharp - x68000"},
			Search:    "X68000, x68000",
		},
		{
			Canonical: "Sharp X1",
			Aliases:   []string{"x1", "sharp - x1"},
		},
		{
			Canonical: "Fujitsu FM Towns Marty",
			Aliases: []string{
				"fm towns", "fm towns marty", "fujitsu - fm towns",
			},
		},
		{
			Canonical: "Fujitsu FM-7",
			Aliases:   []string{"fm-7", "fm7", "fujitsu - fm-7"},
		},
		{
			Canonical: "SAM Coupé",
			Aliases:   []string{"sam coupe", "sam - coupe"},
		},
		{
			Canonical: "Dragon 32/64",
			Aliases:   []string{"dragon 32", "dragon 64", "dragon - 32/64"},
		},
		{
			Canonical: "Acorn Archimedes",
			Aliases:   []string{"archimedes", "acorn - archimedes"},
		},
		{
			Canonical: "Acorn Electron",
			Aliases:   []string{"electron", "acorn - electron"},
		},
		{
			Canonical: "Acorn Atom",
			Aliases:   []string{"atom", "acorn - atom"},
		},
		{
			Canonical: "Enterprise",
			Aliases:   []string{"enterprise 64", "enterprise 128"},
		},
		{
			Canonical: "Oric Atmos",
			Aliases:   []string{"oric", "oric atmos", "oric - atmos"},
		},
		{
			Canonical: "Spectravideo",
			Aliases:   []string{"sv-318", "sv-328", "spectravideo - sv-318"},
		},
		{
			Canonical: "Sord M5",
			Aliases:   []string{"sord m5", "m5", "sord - m5"},
		},
		{
			Canonical: "Jupiter Ace",
			Aliases:   []string{"jupiter ace"},
		},
		{
			Canonical: "Exidy Sorcerer",
			Aliases:   []string{"sorcerer", "exidy - sorcerer"},
		},
		{
			Canonical: "Camputers Lynx",
			Aliases:   []string{"camputers lynx", "camputers - lynx"},
		},
		{
			Canonical: "Memotech MTX512",
			Aliases:   []string{"mtx512", "mtx 512", "memotech - mtx512"},
		},
	}
}
