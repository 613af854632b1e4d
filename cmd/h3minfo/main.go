// Command h3minfo inspects Heroes 3 LOD archives and H3M maps, and
// converts PCX raster assets to BMP.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rrowniak/tower-h3/h3mlog"
)

const (
	appName    = "h3minfo"
	appVersion = "v0.1.0"
)

var (
	debug bool
)

func main() {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Inspect Heroes 3 LOD archives and H3M maps",
		Version: appVersion,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if debug {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			h3mlog.SetLogger(h3mlog.NewZerologAdapter(logger))
		}
	})

	root.AddCommand(newInfoCmd())
	root.AddCommand(newArchiveCmd())
	root.AddCommand(newPCX2BMPCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
