package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdacos/allegro/internal/database"
	"github.com/cdacos/allegro/internal/ingestion"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

func newIngestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <directory>",
		Short: "Ingest every CWR file under a directory into Postgres",
		Args:  cobra.ExactArgs(1),
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
			if err := dbManager.CreateSchema(); err != nil {
				return fmt.Errorf("ensuring schema: %w", err)
			}

			fileProcessor := ingestion.NewFileProcessor(dbManager)
			asyncWorker := ingestion.NewAsyncWorker(dbManager, ingestion.AsyncWorkerConfig{
				NumDBWorkers:   cfg.NumDBWorkers,
				DBBatchSize:    cfg.DBBatchSize,
				DefaultVersion: version.Parse(cfg.CWRDefaultVersion),
			})

			service := ingestion.NewIngestionService(dbManager, ingestion.Setup{}, asyncWorker, fileProcessor, *cfg)
			return service.Execute(args[0])
		},
	}
}
