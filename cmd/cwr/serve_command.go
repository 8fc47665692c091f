package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/cdacos/allegro/internal/database"
	"github.com/cdacos/allegro/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP query surface over ingested CWR records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx := context.Background()
			pool, err := database.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			dbManager := database.NewPostgresDBManager(ctx, pool)
			router := server.SetupRoutes(server.NewWorkLookupService(dbManager))

			log.Printf("Server starting on port %s", cfg.APIPort)
			return http.ListenAndServe(fmt.Sprintf(":%s", cfg.APIPort), router)
		},
	}
}
