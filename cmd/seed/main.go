package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"catalog-backend/internal/config"
	"catalog-backend/internal/domains/user/service"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/shared"
	pkgdb "catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	seedAuthorCount = 10
	seedBookCount   = 20
	seedPassword    = "password"
)

var seedAccounts = []struct {
	email string
	role  string
}{
	{"admin@bookapi.com", shared.RoleAdmin},
	{"user@bookapi.com", shared.RoleUser},
}

func main() {
	reset := flag.Bool("reset", false, "Truncate catalog tables before seeding")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	if err := run(context.Background(), *reset); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

func run(ctx context.Context, reset bool) error {
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	db := database.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	hashes := make(map[string]string, len(seedAccounts))
	for _, a := range seedAccounts {
		h, err := service.HashPassword(seedPassword, 0)
		if err != nil {
			return err
		}
		hashes[a.email] = h
	}

	sum, err := pkgdb.WithTransactionResult(ctx, db.Pool, func(tx pgx.Tx) (summary, error) {
		if reset {
			if _, err := tx.Exec(ctx, `TRUNCATE books, authors, users RESTART IDENTITY`); err != nil {
				return summary{}, fmt.Errorf("truncate: %w", err)
			}
		}
		return seed(ctx, newRepos(tx), hashes)
	})
	if err != nil {
		return err
	}

	if sum.CatalogSkipped {
		log.Info().Msg("Catalog already seeded, use -reset to reseed")
	}
	log.Info().Int("authors", sum.Authors).Int("books", sum.Books).Int("users", sum.Users).Msg("Seed completed")
	return nil
}
