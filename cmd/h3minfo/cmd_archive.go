package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rrowniak/tower-h3/lod"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect LOD archives",
	}
	cmd.AddCommand(newArchiveListCmd())
	cmd.AddCommand(newArchiveExtractCmd())
	return cmd
}

func newArchiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <archive.lod>",
		Short: "List the members of a LOD archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lod.Walk(args[0], func(e lod.Entry, data []byte) error {
				fmt.Printf("%-16s %10s  (type %d)\n", e.Name, humanize.Bytes(uint64(len(data))), e.Type)
				return nil
			})
		},
	}
}

func newArchiveExtractCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "extract <archive.lod>",
		Short: "Extract every member of a LOD archive to a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			return lod.Walk(args[0], func(e lod.Entry, data []byte) error {
				dest := filepath.Join(outDir, e.Name)
				return os.WriteFile(dest, data, 0o644)
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "destination directory")
	return cmd
}
