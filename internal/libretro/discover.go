package libretro

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ludex/internal/datfile"
)

// datDirs are the per-platform game lists, cartridge systems first.
var datDirs = []string{"no-intro", "redump"}

// supplementKinds name the metadat directories holding per-platform
// attribute DATs, merged into the base list by checksum.
var supplementKinds = []string{"developer", "publisher", "genre", "releaseyear"}

// Discover returns the base DAT files under root, no-intro before
// redump, each directory in name order. The metadat directory must
// exist; missing subdirectories are fine.
func Discover(root string) ([]string, error) {
	metadat := filepath.Join(root, "metadat")
	if _, err := os.Stat(metadat); err != nil {
		return nil, fmt.Errorf("libretro database not found at %s: %w", root, err)
	}

	var files []string
	for _, dir := range datDirs {
		entries, err := os.ReadDir(filepath.Join(metadat, dir))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read dat directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".dat" {
				continue
			}
			files = append(files, filepath.Join(metadat, dir, entry.Name()))
		}
	}
	return files, nil
}

// PlatformStem returns the platform-identifying part of a DAT path, the
// file name without its extension.
func PlatformStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDAT parses one base DAT and merges its supplement files. Only the
// base file must be readable; absent or unreadable supplements are
// skipped.
func LoadDAT(path string) (*datfile.File, error) {
	base, err := datfile.ParseFile(path)
	if err != nil {
		return nil, err
	}

	stem := PlatformStem(path)
	metadat := filepath.Dir(filepath.Dir(path))
	var supplements []*datfile.File
	for _, kind := range supplementKinds {
		supp, err := datfile.ParseFile(filepath.Join(metadat, kind, stem+".dat"))
		if err != nil {
			continue
		}
		supplements = append(supplements, supp)
	}
	datfile.Merge(base, supplements...)
	return base, nil
}
