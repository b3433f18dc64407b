package config

import "strings"

// normalize expands paths and canonicalizes enumerated fields after the
// TOML decode. Empty source locations stay empty so a build can tell which
// sources are configured.
func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSources(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	expandedData, err := expandPath(c.Paths.DataDir)
	if err != nil {
		return err
	}
	c.Paths.DataDir = expandedData

	expandedLog, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return err
	}
	c.Paths.LogDir = expandedLog
	return nil
}

func (c *Config) normalizeSources() error {
	for _, field := range []*string{
		&c.Sources.LaunchBoxXML,
		&c.Sources.LaunchBoxMetadataDB,
		&c.Sources.LibretroDir,
		&c.Sources.OpenVGDBPath,
	} {
		if *field == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "console", "json":
		c.Logging.Format = format
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}
