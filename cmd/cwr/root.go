// Command cwr is the CLI front end over the allegro CWR library: parse
// or render a single file without touching the database, or ingest a
// directory / serve the HTTP query surface against Postgres. Grounded on
// five82-spindle's cobra command tree (cmd/spindle/root.go), one file per
// subcommand, replacing the teacher's three separate main.go binaries
// (cmd/api, cmd/data_ingestion) with a single CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/cdacos/allegro/internal/config"
)

var configPath string

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cwr",
		Short:         "Parse, render, and ingest Common Works Registration (CWR) files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a cwr.yaml config file")

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newIngestCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
