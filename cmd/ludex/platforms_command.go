package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ludex/internal/catalog"
)

func newPlatformsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List catalog platforms and their game counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if _, err := os.Stat(cfg.DatabasePath()); err != nil {
				return fmt.Errorf("no catalog database at %s; run `ludex build` first", cfg.DatabasePath())
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			platforms, err := store.ListPlatforms(cmd.Context())
			if err != nil {
				return fmt.Errorf("list platforms: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(platforms) == 0 {
				fmt.Fprintln(out, "No platforms in the catalog")
				return nil
			}

			counts, err := store.GameCountsByPlatform(cmd.Context())
			if err != nil {
				return fmt.Errorf("count games: %w", err)
			}

			rows := make([][]string, 0, len(platforms))
			for _, platform := range platforms {
				rows = append(rows, []string{
					platform.Name,
					platform.LaunchBoxName,
					platform.LibretroName,
					strconv.FormatInt(counts[platform.ID], 10),
				})
			}
			headers := []string{"Name", "LaunchBox", "Libretro", "Games"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}
}
