package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdacos/allegro/pkg/cwr/version"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a CWR file and print a per-line diagnostic summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries, err := dispatchFile(args[0], version.Parse(cfg.CWRDefaultVersion))
			if err != nil {
				return err
			}

			var infoCount, warnCount, criticalCount int
			for _, e := range entries {
				for _, w := range e.Warnings {
					switch w.Severity {
					case warning.Critical:
						criticalCount++
						fmt.Fprintf(cmd.OutOrStdout(), "line %d [%s] CRITICAL: %s\n", e.LineNum, e.Record.Tag(), w.Description)
					case warning.Warn:
						warnCount++
						fmt.Fprintf(cmd.OutOrStdout(), "line %d [%s] warning: %s\n", e.LineNum, e.Record.Tag(), w.Description)
					default:
						infoCount++
					}
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d lines, %d info, %d warnings, %d critical\n",
				len(entries), infoCount, warnCount, criticalCount)
			return nil
		},
	}
}
