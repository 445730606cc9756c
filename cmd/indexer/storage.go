package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/redis/go-redis/v9"

	"github.com/goodnatureofminers/nyks-indexer/internal/cursor"
	"github.com/goodnatureofminers/nyks-indexer/internal/facts"
	"github.com/goodnatureofminers/nyks-indexer/internal/metrics"
	"github.com/goodnatureofminers/nyks-indexer/internal/repository/clickhouse"
	"github.com/goodnatureofminers/nyks-indexer/internal/repository/postgres"
	"github.com/goodnatureofminers/nyks-indexer/internal/service/ingester"
	"github.com/goodnatureofminers/nyks-indexer/internal/transport"
)

const (
	backendPostgres   = "postgres"
	backendClickhouse = "clickhouse"
)

// storage is what both repository backends provide.
type storage interface {
	facts.Repository
	transport.Store
	ingester.CursorStore
	Close()
}

type clickhouseStorage struct {
	*clickhouse.Repository
}

func (s clickhouseStorage) Close() {
	_ = s.Repository.Close()
}

func backendOf(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return backendPostgres, nil
	case "clickhouse", "tcp":
		return backendClickhouse, nil
	default:
		return "", fmt.Errorf("database url scheme %q not supported, use postgres or clickhouse", u.Scheme)
	}
}

func openStorage(ctx context.Context, dsn string) (storage, error) {
	backend, err := backendOf(dsn)
	if err != nil {
		return nil, err
	}
	switch backend {
	case backendClickhouse:
		repo, err := clickhouse.NewRepository(dsn, metrics.NewRepository(backend))
		if err != nil {
			return nil, err
		}
		if err := repo.Ping(ctx); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("ping clickhouse: %w", err)
		}
		return clickhouseStorage{repo}, nil
	default:
		repo, err := postgres.Open(ctx, dsn, metrics.NewRepository(backend))
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}

func openCursor(cfg config, repo storage) (ingester.CursorStore, error) {
	switch cfg.CursorStore {
	case "file":
		store, err := cursor.NewFileStore(cfg.CursorFile, metrics.NewRepository("file"))
		if err != nil {
			return nil, err
		}
		return store, nil
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		store, err := cursor.NewRedisStore(redis.NewClient(opts), cfg.RedisKey, metrics.NewRepository("redis"))
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return repo, nil
	}
}

func btcParams(network string) (*chaincfg.Params, error) {
	switch network {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown bitcoin network %q", network)
	}
}
