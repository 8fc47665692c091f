// Command cwr-setup bootstraps the cwr_files/cwr_records schema in
// Postgres. Grounded on b3_quotations/cmd/setup/main.go.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/cdacos/allegro/internal/database"
)

func main() {
	fmt.Println("Starting database setup...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	dbManager := database.NewPostgresDBManager(ctx, pool)

	fmt.Println("Creating cwr_files and cwr_records tables...")
	if err := dbManager.CreateSchema(); err != nil {
		log.Fatalf("Error creating schema: %v", err)
	}

	fmt.Println("Database setup finished successfully.")
}
