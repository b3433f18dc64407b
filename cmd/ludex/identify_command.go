package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ludex/internal/catalog"
	"ludex/internal/checksums"
	"ludex/internal/config"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <file>",
		Short: "Hash a ROM file and look it up in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve file path: %w", err)
			}

			sums, err := checksums.File(path)
			if err != nil {
				return fmt.Errorf("hash file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:  %s\n", path)
			fmt.Fprintf(out, "Size:  %d bytes\n", sums.Size)
			fmt.Fprintf(out, "CRC32: %s\n", sums.CRC32)
			fmt.Fprintf(out, "MD5:   %s\n", sums.MD5)
			fmt.Fprintf(out, "SHA1:  %s\n", sums.SHA1)

			if _, err := os.Stat(cfg.DatabasePath()); err != nil {
				return fmt.Errorf("no catalog database at %s; run `ludex build` first", cfg.DatabasePath())
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			game, err := store.GameByChecksum(cmd.Context(), sums.CRC32)
			if err != nil {
				return fmt.Errorf("look up checksum: %w", err)
			}
			if game == nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "No catalog entry matches this checksum")
				return nil
			}

			platformNames, err := platformNameIndex(cmd, store)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderGameTable(game, platformNames))

			if game.LaunchBoxDBID > 0 {
				altNames, err := store.AlternateNames(cmd.Context(), game.LaunchBoxDBID)
				if err != nil {
					return fmt.Errorf("load alternate names: %w", err)
				}
				if len(altNames) > 0 {
					fmt.Fprintln(out)
					fmt.Fprintln(out, "Also known as:")
					for _, alt := range altNames {
						if alt.Region != "" {
							fmt.Fprintf(out, "  %s (%s)\n", alt.Name, alt.Region)
						} else {
							fmt.Fprintf(out, "  %s\n", alt.Name)
						}
					}
				}
			}
			return nil
		},
	}
}

func platformNameIndex(cmd *cobra.Command, store *catalog.Store) (map[int64]string, error) {
	platforms, err := store.ListPlatforms(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	names := make(map[int64]string, len(platforms))
	for _, platform := range platforms {
		names[platform.ID] = platform.Name
	}
	return names, nil
}

func renderGameTable(game *catalog.Game, platformNames map[int64]string) string {
	rows := [][]string{{"Title", game.Title}}
	appendRow := func(field, value string) {
		if value != "" {
			rows = append(rows, []string{field, value})
		}
	}
	appendRow("Platform", platformNames[game.PlatformID])
	appendRow("Region", game.Region)
	if game.ReleaseYear > 0 {
		appendRow("Release year", strconv.FormatInt(game.ReleaseYear, 10))
	}
	appendRow("Developer", game.Developer)
	appendRow("Publisher", game.Publisher)
	appendRow("Genre", game.Genre)
	appendRow("Serial", game.LibretroSerial)
	appendRow("Source", string(game.MetadataSource))
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}
