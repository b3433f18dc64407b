package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ludex/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "ludex")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Sources.LaunchBoxXML != "" {
		t.Fatalf("expected no LaunchBox XML source by default, got %q", cfg.Sources.LaunchBoxXML)
	}
	if cfg.Matching.FuzzyThreshold != 0.95 {
		t.Fatalf("unexpected fuzzy threshold: %v", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Import.BatchSize != 1000 {
		t.Fatalf("unexpected batch size: %d", cfg.Import.BatchSize)
	}
	if cfg.Import.AltNameBatchSize != 5000 {
		t.Fatalf("unexpected alt name batch size: %d", cfg.Import.AltNameBatchSize)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.DatabasePath() != filepath.Join(wantData, "ludex.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ludex.toml")

	type payload struct {
		Sources struct {
			LibretroDir  string `toml:"libretro_dir"`
			OpenVGDBPath string `toml:"openvgdb_path"`
		} `toml:"sources"`
		Matching struct {
			FuzzyThreshold float64 `toml:"fuzzy_threshold"`
		} `toml:"matching"`
		Import struct {
			BatchSize int `toml:"batch_size"`
		} `toml:"import"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Sources.LibretroDir = filepath.Join(tempDir, "libretro-database")
	custom.Sources.OpenVGDBPath = "~/openvgdb.sqlite"
	custom.Matching.FuzzyThreshold = 0.9
	custom.Import.BatchSize = 250
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Sources.LibretroDir != filepath.Join(tempDir, "libretro-database") {
		t.Fatalf("unexpected libretro dir: %q", cfg.Sources.LibretroDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("resolve home: %v", err)
	}
	if cfg.Sources.OpenVGDBPath != filepath.Join(home, "openvgdb.sqlite") {
		t.Fatalf("expected tilde expansion for openvgdb path, got %q", cfg.Sources.OpenVGDBPath)
	}
	if cfg.Matching.FuzzyThreshold != 0.9 {
		t.Fatalf("expected fuzzy threshold override, got %v", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Import.BatchSize != 250 {
		t.Fatalf("expected batch size override, got %d", cfg.Import.BatchSize)
	}
	if cfg.Import.AltNameBatchSize != 5000 {
		t.Fatalf("expected default alt name batch size, got %d", cfg.Import.AltNameBatchSize)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected log format normalized to json, got %q", cfg.Logging.Format)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false for absent file")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Matching.FuzzyThreshold != config.Default().Matching.FuzzyThreshold {
		t.Fatalf("expected default threshold, got %v", cfg.Matching.FuzzyThreshold)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "fuzzy_threshold") {
		t.Fatalf("sample config missing fuzzy_threshold: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Matching.FuzzyThreshold != 0.95 {
		t.Fatalf("unexpected sample threshold: %v", cfg.Matching.FuzzyThreshold)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Matching.FuzzyThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero fuzzy threshold")
	}

	cfg = config.Default()
	cfg.Matching.FuzzyThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for threshold above 1")
	}

	cfg = config.Default()
	cfg.Import.BatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive batch size")
	}

	cfg = config.Default()
	cfg.Import.AltNameBatchSize = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative alt name batch size")
	}

	cfg = config.Default()
	cfg.Paths.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty data dir")
	}
}
