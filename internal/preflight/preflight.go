package preflight

import (
	"ludex/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the preflight checks for a catalog build. Source checks
// run only for configured sources.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Data directory", cfg.Paths.DataDir))

	configured := 0
	if cfg.Sources.LaunchBoxXML != "" {
		configured++
		results = append(results, CheckFileReadable("LaunchBox XML", cfg.Sources.LaunchBoxXML))
	}
	if cfg.Sources.LaunchBoxMetadataDB != "" {
		configured++
		results = append(results, CheckFileReadable("LaunchBox Metadata.db", cfg.Sources.LaunchBoxMetadataDB))
	}
	if cfg.Sources.LibretroDir != "" {
		configured++
		results = append(results, CheckSourceDir("libretro-database", cfg.Sources.LibretroDir))
	}
	if cfg.Sources.OpenVGDBPath != "" {
		configured++
		results = append(results, CheckFileReadable("OpenVGDB", cfg.Sources.OpenVGDBPath))
	}
	if configured == 0 {
		results = append(results, Result{Name: "Metadata sources", Detail: "no sources configured"})
	}

	return results
}

// AllPassed reports whether every check succeeded.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
