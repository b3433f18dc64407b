package config

// Default configuration values.
const (
	defaultDataDir = "~/.local/share/ludex"
	defaultLogDir  = "~/.local/share/ludex/logs"

	defaultFuzzyThreshold = 0.95

	defaultBatchSize        = 1000
	defaultAltNameBatchSize = 5000

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with default values. Source locations
// default to empty; a usable build needs at least one configured source.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Sources: Sources{},
		Matching: Matching{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Import: Import{
			BatchSize:        defaultBatchSize,
			AltNameBatchSize: defaultAltNameBatchSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
