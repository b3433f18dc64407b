package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"ludex/internal/config"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[sources]\nlaunchbox_xml = %q\nlaunchbox_metadata_db = %q\nlibretro_dir = %q\nopenvgdb_path = %q\n",
		cfg.Paths.DataDir,
		cfg.Paths.LogDir,
		cfg.Sources.LaunchBoxXML,
		cfg.Sources.LaunchBoxMetadataDB,
		cfg.Sources.LibretroDir,
		cfg.Sources.OpenVGDBPath,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
