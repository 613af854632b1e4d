package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rrowniak/tower-h3/pcx"
)

func newPCX2BMPCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "pcx2bmp <file.pcx>",
		Short: "Convert a PCX raster asset to a 24-bit BMP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := outFile
			if dst == "" {
				dst = strings.TrimSuffix(args[0], ".pcx") + ".bmp"
			}
			return pcx.ConvertFile(args[0], dst)
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "destination BMP path (default: replace .pcx with .bmp)")
	return cmd
}
