// Command migrate applies database migrations to the configured database.
//
// Flags:
//
//	--dir   migrations directory (default: migrations)
//	--down  roll back the most recent migration instead of migrating up
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/openboards/openboards-backend/internal/config"
)

func main() {
	dirFlag := flag.String("dir", "migrations", "migrations directory")
	downFlag := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dirFlag))
	if err != nil {
		log.Fatalf("create migration provider: %v", err)
	}

	if *downFlag {
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		log.Printf("rolled back %s", result.Source.Path)
		return
	}

	results, err := provider.Up(ctx)
	if err != nil {
		log.Fatalf("migrate up: %v", err)
	}
	for _, r := range results {
		log.Printf("applied %s (%s)", r.Source.Path, r.Duration)
	}
	if len(results) == 0 {
		log.Println("database is up to date")
	}
}
