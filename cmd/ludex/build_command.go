package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"ludex/internal/catalog"
	"ludex/internal/config"
	"ludex/internal/launchbox"
	"ludex/internal/libretro"
	"ludex/internal/logging"
	"ludex/internal/openvgdb"
	"ludex/internal/preflight"
	"ludex/internal/reconcile"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the catalog database from the configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire build lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another ludex build is already running (lock %s)", cfg.LockPath())
			}
			defer func() {
				_ = lock.Unlock()
			}()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			checks := preflight.RunAll(cfg)
			fmt.Fprintln(out, "Preflight checks:")
			for _, check := range checks {
				fmt.Fprintln(out, renderCheckLine(check, colorize))
			}
			if !preflight.AllPassed(checks) {
				return errors.New("preflight checks failed")
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			if err := removeExistingCatalog(cfg.DatabasePath()); err != nil {
				return err
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			started := time.Now()
			env := reconcile.NewEnv(cfg, store, logger)
			results, runErr := reconcile.NewRunner(env, buildPhases(cfg)...).Run(runCtx)

			if len(results) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderPhaseTable(results))
			}
			if runErr != nil {
				return runErr
			}

			stats, err := store.Stats(runCtx)
			if err != nil {
				return fmt.Errorf("read catalog stats: %w", err)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderStatsTable(stats))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Catalog written to %s in %s\n", store.Path(), time.Since(started).Round(time.Millisecond))
			return nil
		},
	}
}

// buildPhases assembles the ingestion pipeline from whichever sources
// the configuration names. Preflight has already rejected the empty
// case, so at least one phase is always returned.
func buildPhases(cfg *config.Config) []reconcile.Phase {
	var phases []reconcile.Phase
	if cfg.Sources.LaunchBoxXML != "" || cfg.Sources.LaunchBoxMetadataDB != "" {
		phases = append(phases, launchbox.NewPhase(cfg.Sources.LaunchBoxXML, cfg.Sources.LaunchBoxMetadataDB))
	}
	if cfg.Sources.LibretroDir != "" {
		phases = append(phases, libretro.NewPhase(cfg.Sources.LibretroDir))
	}
	if cfg.Sources.OpenVGDBPath != "" {
		phases = append(phases, openvgdb.NewPhase(cfg.Sources.OpenVGDBPath))
	}
	return phases
}

// removeExistingCatalog deletes a stale database and its WAL sidecars
// so every build starts from an empty catalog.
func removeExistingCatalog(path string) error {
	for _, target := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale catalog file %s: %w", target, err)
		}
	}
	return nil
}

func renderPhaseTable(results []reconcile.PhaseResult) string {
	headers := []string{"Phase", "Processed", "Checksum", "Exact", "Fuzzy", "Inserted", "Deduped", "Skipped", "Duration"}
	aligns := []columnAlignment{
		alignLeft, alignRight, alignRight, alignRight, alignRight,
		alignRight, alignRight, alignRight, alignRight,
	}
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			result.Name,
			strconv.FormatInt(result.Stats.Processed, 10),
			strconv.FormatInt(result.Stats.MatchedChecksum, 10),
			strconv.FormatInt(result.Stats.MatchedExact, 10),
			strconv.FormatInt(result.Stats.MatchedFuzzy, 10),
			strconv.FormatInt(result.Stats.Inserted, 10),
			strconv.FormatInt(result.Stats.Deduplicated, 10),
			strconv.FormatInt(result.Stats.Skipped, 10),
			result.Duration.Round(time.Millisecond).String(),
		})
	}
	return renderTable(headers, rows, aligns)
}

func renderStatsTable(stats *catalog.Stats) string {
	headers := []string{"Metric", "Count"}
	aligns := []columnAlignment{alignLeft, alignRight}
	rows := [][]string{
		{"Platforms", strconv.FormatInt(stats.Platforms, 10)},
		{"Games", strconv.FormatInt(stats.Games, 10)},
	}
	for _, source := range []catalog.Source{catalog.SourceLaunchBox, catalog.SourceLibretro, catalog.SourceOpenVGDB} {
		if count, ok := stats.GamesBySource[source]; ok && count > 0 {
			rows = append(rows, []string{fmt.Sprintf("Games from %s", source), strconv.FormatInt(count, 10)})
		}
	}
	rows = append(rows, []string{"Alternate names", strconv.FormatInt(stats.AlternateNames, 10)})
	return renderTable(headers, rows, aligns)
}
