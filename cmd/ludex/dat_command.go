package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ludex/internal/config"
	"ludex/internal/datfile"
	"ludex/internal/libretro"
)

func newDATCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dat",
		Short: "DAT file utilities",
	}
	cmd.AddCommand(newDATInspectCommand())
	return cmd
}

func newDATInspectCommand() *cobra.Command {
	var withSupplements bool
	var gameLimit int

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a clrmamepro DAT file",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve file path: %w", err)
			}

			var file *datfile.File
			if withSupplements {
				file, err = libretro.LoadDAT(path)
			} else {
				file, err = datfile.ParseFile(path)
			}
			if err != nil {
				return fmt.Errorf("parse dat file: %w", err)
			}

			romCount := 0
			withChecksum := 0
			for _, game := range file.Games {
				romCount += len(game.ROMs)
				if len(game.ROMs) > 0 && game.ROMs[0].CRC != "" {
					withChecksum++
				}
			}

			out := cmd.OutOrStdout()
			if file.Header.Name != "" {
				fmt.Fprintf(out, "Name:        %s\n", file.Header.Name)
			}
			if file.Header.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", file.Header.Description)
			}
			if file.Header.Version != "" {
				fmt.Fprintf(out, "Version:     %s\n", file.Header.Version)
			}
			fmt.Fprintf(out, "Games:       %d\n", len(file.Games))
			fmt.Fprintf(out, "ROM entries: %d\n", romCount)
			fmt.Fprintf(out, "With CRC32:  %d\n", withChecksum)

			if gameLimit > 0 {
				limit := gameLimit
				if limit > len(file.Games) {
					limit = len(file.Games)
				}
				rows := make([][]string, 0, limit)
				for _, game := range file.Games[:limit] {
					crc := ""
					if len(game.ROMs) > 0 {
						crc = game.ROMs[0].CRC
					}
					rows = append(rows, []string{game.Name, game.Region, crc})
				}
				headers := []string{"Name", "Region", "CRC32"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSupplements, "supplements", false, "Merge sibling metadat supplements before summarizing")
	cmd.Flags().IntVar(&gameLimit, "games", 0, "List the first N game entries")

	return cmd
}
