package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nyks-indexer/internal/repository/postgres"
)

type config struct {
	DatabaseURL   string `long:"database-url" env:"DATABASE_URL" required:"true" description:"postgres:// or clickhouse:// DSN"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" description:"Path to migration files, defaults to migrations/<backend>"`
	Down          bool   `long:"down" env:"MIGRATIONS_DOWN" description:"roll every migration back instead of applying"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg, logger); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

// target returns the migrate database url and the default migrations dir for dsn.
func target(dsn string) (string, string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return postgres.MigrateURL(dsn), "migrations/postgres", nil
	case "clickhouse":
		q := u.Query()
		if q.Get("x-multi-statement") == "" {
			q.Set("x-multi-statement", "true")
		}
		u.RawQuery = q.Encode()
		return u.String(), "migrations/clickhouse", nil
	default:
		return "", "", fmt.Errorf("database url scheme %q not supported, use postgres or clickhouse", u.Scheme)
	}
}

func runMigrations(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	databaseURL, defaultDir, err := target(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = defaultDir
	}

	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(dir))
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	apply := m.Up
	if cfg.Down {
		apply = m.Down
	}
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply", zap.String("dir", dir))
			return nil
		}
		return err
	}

	logger.Info("migrations applied successfully", zap.String("dir", dir), zap.Bool("down", cfg.Down))
	return nil
}
