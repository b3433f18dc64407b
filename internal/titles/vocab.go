package titles

import "strings"

// Category identifies what a title tag denotes.
type Category string

const (
	CategoryRegion   Category = "region"
	CategoryLanguage Category = "language"
	CategoryRevision Category = "revision"
	CategoryStatus   Category = "status"
	CategoryDisc     Category = "disc"
	CategoryChannel  Category = "channel"
	CategoryAddOn    Category = "addon"
	CategoryLicense  Category = "license"
	CategoryEdition  Category = "edition"
	CategoryHardware Category = "hardware"
	CategoryOther    Category = "other"
)

// IsVariant reports whether tags in this category mark genuinely different
// content. Variant tags keep otherwise identically-titled releases apart;
// non-variant tags are descriptive and safe to ignore for identity.
func (c Category) IsVariant() bool {
	switch c {
	case CategoryRegion, CategoryLanguage, CategoryRevision, CategoryStatus,
		CategoryDisc, CategoryChannel, CategoryAddOn, CategoryLicense:
		return true
	}
	return false
}

// Vocabulary holds the keyword tables driving tag classification. Entries are
// matched case-insensitively. Word tables match the whole tag, prefix tables
// match the tag's head, and EditionWords match anywhere in the tag.
type Vocabulary struct {
	Regions          []string
	LanguageCodes    []string
	RevisionPrefixes []string
	StatusWords      []string
	StatusPrefixes   []string
	DiscPrefixes     []string
	ChannelWords     []string
	AddOnWords       []string
	LicenseWords     []string
	HardwareWords    []string
	EditionWords     []string
}

// DefaultVocabulary returns the built-in tables covering the tag conventions
// of no-intro and redump release lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Regions: []string{
			"USA", "Japan", "Europe", "World", "Korea", "Germany", "France",
			"Spain", "Italy", "Asia", "China", "Taiwan", "UK", "Netherlands",
			"Russia", "Australia", "Brazil", "Sweden", "Canada", "Poland",
			"Portugal", "Denmark", "Norway", "Finland", "Belgium", "Austria",
			"Switzerland", "Greece", "Hong Kong", "Latin America",
			"Scandinavia", "United Kingdom", "Unknown",
			"USA, Europe", "USA, Europe, Asia", "USA, Europe, Brazil",
			"USA, Europe, Korea", "USA, Asia", "USA, Japan", "USA, Korea",
			"USA, Brazil", "USA, Canada", "USA, Australia",
			"Europe, Australia", "Europe, Asia", "Europe, Brazil",
			"Europe, USA", "Japan, Europe", "Japan, USA", "Japan, Korea",
			"Japan, Asia", "Japan, Europe, Australia, New Zealand",
			"Japan, Australia", "Japan, USA, Brazil", "Japan, USA, Korea",
			"Japan, Europe, Korea", "Asia, Korea", "UK, Australia",
			"Australia, New Zealand", "Austria, Switzerland",
			"Belgium, Netherlands",
		},
		LanguageCodes: []string{
			"En", "Ja", "Fr", "De", "Es", "It", "Nl", "Pt", "Ru", "Zh", "Ko",
			"Sv", "Da", "Fi", "No", "Pl", "Ar", "El", "Tr", "Cs", "Hu", "He",
			"Hi", "Th", "Vi", "Id", "Ms", "Ca", "Hr", "Sl", "Ro", "Bg", "Uk",
			"Sr", "Lt", "Lv", "Et", "Is", "Ga", "Mt", "Sk", "Mk",
		},
		RevisionPrefixes: []string{"Rev ", "Ver ", "Version "},
		StatusWords: []string{
			"Beta", "Proto", "Prototype", "Demo", "Sample", "Promo", "Alt",
			"Debug", "Test", "Kiosk", "Trade Demo", "Possible Proto",
			"Tech Demo", "Preview", "Pre-Release", "Early", "WIP",
		},
		StatusPrefixes: []string{"Beta ", "Proto ", "Demo ", "Alt ", "Sample "},
		DiscPrefixes: []string{
			"Disc ", "Disk ", "Side ", "Card ", "Volume ", "Vol ", "Part ",
		},
		ChannelWords: []string{
			"Virtual Console", "PSN", "eShop", "WiiWare", "XBLA", "XBLIG",
			"Steam", "GOD", "minis", "Switch Online", "DSiWare",
			"NES", "SNES", "N64", "GameCube", "Wii", "Wii U", "Switch",
			"GB", "GBC", "GBA", "DS", "3DS",
			"PS1", "PS2", "PS3", "PS4", "PS5", "PSP", "Vita",
			"Xbox", "Xbox 360", "Xbox One",
			"Genesis", "Mega Drive", "Saturn", "Dreamcast",
			"TurboGrafx-16", "PC Engine", "Neo Geo",
			"Wii Virtual Console", "Wii U Virtual Console",
			"3DS Virtual Console",
			"Channel", "Wii Broadcast", "Nintendo Channel",
			"Classic Mini", "Mega Drive Mini", "Genesis Mini",
			"Evercade", "Arcade",
		},
		AddOnWords: []string{
			"Addon", "DLC", "Update", "Patch", "Expansion", "Data",
			"Save Data", "Title Update", "Content", "Bonus", "Bonus Disc",
			"Collection", "Compilation", "Video", "Album", "Manual", "Menu",
			"System", "Download Station", "Kiosk Demo",
		},
		LicenseWords: []string{
			"Unl", "Pirate", "Aftermarket", "Bootleg", "Hack", "Homebrew",
			"Budget", "Rerelease",
		},
		HardwareWords: []string{
			"GB Compatible", "SGB Enhanced", "NDSi Enhanced",
			"Rumble Version", "Color", "Greyscale", "PAL", "NTSC",
			"Enhancement Chip", "FamicomBox", "PlayChoice-10", "VS. System",
		},
		EditionWords: []string{
			"Edition", "Box", "Pack", "Bundle", "Set", "Game of the Year",
		},
	}
}

// Classifier categorizes title tags against a Vocabulary. Construct once and
// reuse; classification is read-only and safe for concurrent use.
type Classifier struct {
	regions          map[string]struct{}
	languageCodes    map[string]struct{}
	revisionPrefixes []string
	statusWords      map[string]struct{}
	statusPrefixes   []string
	discPrefixes     []string
	channelWords     map[string]struct{}
	addOnWords       map[string]struct{}
	licenseWords     map[string]struct{}
	hardwareWords    map[string]struct{}
	editionWords     []string
}

// NewClassifier builds a Classifier from the given vocabulary.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{
		regions:          lowerSet(vocab.Regions),
		languageCodes:    lowerSet(vocab.LanguageCodes),
		revisionPrefixes: lowerAll(vocab.RevisionPrefixes),
		statusWords:      lowerSet(vocab.StatusWords),
		statusPrefixes:   lowerAll(vocab.StatusPrefixes),
		discPrefixes:     lowerAll(vocab.DiscPrefixes),
		channelWords:     lowerSet(vocab.ChannelWords),
		addOnWords:       lowerSet(vocab.AddOnWords),
		licenseWords:     lowerSet(vocab.LicenseWords),
		hardwareWords:    lowerSet(vocab.HardwareWords),
		editionWords:     lowerAll(vocab.EditionWords),
	}
}

// Classify returns the category of a single tag (text without delimiters).
// Checks run from most to least specific, so a tag matching several tables
// always resolves the same way. Unknown tags classify as CategoryOther.
func (c *Classifier) Classify(tag string) Category {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "" {
		return CategoryOther
	}
	if _, ok := c.regions[t]; ok {
		return CategoryRegion
	}
	if c.isLanguageList(t) {
		return CategoryLanguage
	}
	for _, prefix := range c.revisionPrefixes {
		if strings.HasPrefix(t, prefix) {
			return CategoryRevision
		}
	}
	// Bare "v1.0" style versions. The digit requirement keeps v-words such
	// as "Vita" or "Volume 2" out of the revision bucket.
	if len(t) >= 2 && t[0] == 'v' && t[1] >= '0' && t[1] <= '9' {
		return CategoryRevision
	}
	if _, ok := c.statusWords[t]; ok {
		return CategoryStatus
	}
	for _, prefix := range c.statusPrefixes {
		if strings.HasPrefix(t, prefix) {
			return CategoryStatus
		}
	}
	for _, prefix := range c.discPrefixes {
		if strings.HasPrefix(t, prefix) {
			return CategoryDisc
		}
	}
	if _, ok := c.channelWords[t]; ok {
		return CategoryChannel
	}
	if _, ok := c.addOnWords[t]; ok {
		return CategoryAddOn
	}
	if _, ok := c.licenseWords[t]; ok {
		return CategoryLicense
	}
	if _, ok := c.hardwareWords[t]; ok {
		return CategoryHardware
	}
	for _, word := range c.editionWords {
		if strings.Contains(t, word) {
			return CategoryEdition
		}
	}
	return CategoryOther
}

// IsVariant reports whether the tag marks content that must stay a separate
// release during matching.
func (c *Classifier) IsVariant(tag string) bool {
	return c.Classify(tag).IsVariant()
}

// InferRegion returns the first region-classified tag from the list, trimmed,
// or "" when none qualifies. Callers treat the result as a best-effort
// fallback for sources that omit an explicit region field.
func (c *Classifier) InferRegion(tags []string) string {
	for _, tag := range tags {
		if c.Classify(tag) == CategoryRegion {
			return strings.TrimSpace(tag)
		}
	}
	return ""
}

// isLanguageList reports whether the tag is one language code or a
// comma-joined run of them, such as "en" or "en,fr,de".
func (c *Classifier) isLanguageList(t string) bool {
	for _, part := range strings.Split(t, ",") {
		if _, ok := c.languageCodes[strings.TrimSpace(part)]; !ok {
			return false
		}
	}
	return true
}

func lowerSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		set[strings.ToLower(entry)] = struct{}{}
	}
	return set
}

func lowerAll(entries []string) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = strings.ToLower(entry)
	}
	return out
}
