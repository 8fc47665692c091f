package main

import (
	"github.com/spf13/cobra"

	"github.com/cdacos/allegro/internal/render"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Parse a CWR file and emit its records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			v := version.Parse(cfg.CWRDefaultVersion)
			entries, err := dispatchFile(args[0], v)
			if err != nil {
				return err
			}

			return render.WriteJSON(cmd.OutOrStdout(), entries, v)
		},
	}
}
