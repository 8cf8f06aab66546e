package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"catalog-backend/db"
	"catalog-backend/internal/config"
	"catalog-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, status, reset, version")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	if err := run(context.Background(), *command); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("Migration failed")
	}
}

func run(ctx context.Context, command string) error {
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, dbCfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, sqlDB, db.MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, sqlDB, db.MigrationsDir)
	case "reset":
		err = goose.ResetContext(ctx, sqlDB, db.MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, sqlDB, db.MigrationsDir)
	case "version":
		err = goose.VersionContext(ctx, sqlDB, db.MigrationsDir)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	log.Info().Str("command", command).Msg("Migration completed")
	return nil
}
