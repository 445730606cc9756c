package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/nyks-indexer/internal/chain"
	"github.com/goodnatureofminers/nyks-indexer/internal/envelope"
	"github.com/goodnatureofminers/nyks-indexer/internal/facts"
	"github.com/goodnatureofminers/nyks-indexer/internal/metrics"
	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/internal/service/ingester"
	"github.com/goodnatureofminers/nyks-indexer/internal/zkos"
)

type config struct {
	ChainURL       string        `long:"chain-url" env:"NYKS_BLOCK_SUBSCRIBER_URL" default:"http://localhost:1317/" description:"nyks REST endpoint"`
	DatabaseURL    string        `long:"database-url" env:"DATABASE_URL" required:"true" description:"postgres:// or clickhouse:// DSN"`
	Network        model.Network `long:"network" env:"INDEXER_NETWORK" default:"mainnet" description:"network label for metrics"`
	EnableIngester bool          `long:"enable-ingester" env:"INDEXER_ENABLE_INGESTER" description:"run the ingestion loop (both run when neither is set)"`
	EnableAPI      bool          `long:"enable-api" env:"INDEXER_ENABLE_API" description:"serve the REST and gRPC API (both run when neither is set)"`
	APIAddr        string        `long:"api-addr" env:"INDEXER_API_ADDR" default:":5000" description:"REST listen address"`
	GRPCAddr       string        `long:"grpc-addr" env:"INDEXER_GRPC_ADDR" default:":5001" description:"gRPC health listen address"`
	MetricsAddr    string        `long:"metrics-addr" env:"INDEXER_METRICS_ADDR" default:":2112" description:"address for metrics server"`
	CursorStore    string        `long:"cursor-store" env:"INDEXER_CURSOR_STORE" default:"db" choice:"db" choice:"file" choice:"redis" description:"where the next height is kept"`
	CursorFile     string        `long:"cursor-file" env:"INDEXER_CURSOR_FILE" default:"indexer.height" description:"cursor file for the file store"`
	RedisURL       string        `long:"redis-url" env:"INDEXER_REDIS_URL" default:"redis://localhost:6379/0" description:"redis url for the redis store"`
	RedisKey       string        `long:"redis-key" env:"INDEXER_REDIS_KEY" description:"redis key of the cursor"`
	GenesisHeight  uint64        `long:"genesis-height" env:"INDEXER_GENESIS_HEIGHT" default:"0" description:"first height when no cursor is stored"`
	Bech32Prefix   string        `long:"bech32-prefix" env:"INDEXER_BECH32_PREFIX" default:"twilight" description:"account address prefix"`
	BTCNetwork     string        `long:"btc-network" env:"INDEXER_BTC_NETWORK" default:"mainnet" description:"bitcoin network of bridge addresses"`
	RPS            int           `long:"rps" env:"INDEXER_RPS" default:"0" description:"chain requests per second, 0 disables pacing"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"INDEXER_HTTP_TIMEOUT" default:"30s" description:"HTTP timeout for chain requests"`
	IdleSleep      time.Duration `long:"idle-sleep" env:"INDEXER_IDLE_SLEEP" default:"30s" description:"wait when caught up with the head"`
	CometRPCURL    string        `long:"comet-rpc-url" env:"INDEXER_COMET_RPC_URL" description:"CometBFT RPC url; when set, new blocks end the idle wait early"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if !cfg.EnableIngester && !cfg.EnableAPI {
		cfg.EnableIngester, cfg.EnableAPI = true, true
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("nyks indexer failed", zap.Error(err))
	}
	logger.Info("nyks indexer stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := openStorage(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	g, ctx := errgroup.WithContext(ctx)
	if cfg.EnableAPI {
		g.Go(func() error {
			return serveAPI(ctx, cfg, repo, logger.Named("api"))
		})
	}
	if cfg.EnableIngester {
		svc, err := newIngester(ctx, cfg, repo, logger)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return svc.Run(ctx)
		})
	}
	return g.Wait()
}

func newIngester(ctx context.Context, cfg config, repo storage, logger *zap.Logger) (*ingester.Service, error) {
	params, err := btcParams(cfg.BTCNetwork)
	if err != nil {
		return nil, err
	}

	client, err := chain.NewClient(
		cfg.ChainURL,
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.RPS,
		metrics.NewChainClient(cfg.Network),
	)
	if err != nil {
		return nil, fmt.Errorf("init chain client: %w", err)
	}

	cursor, err := openCursor(cfg, repo)
	if err != nil {
		return nil, fmt.Errorf("init cursor store: %w", err)
	}

	extractor, err := facts.NewExtractor(
		repo,
		zkos.BincodeCodec{},
		zkos.LedgerAccounts{},
		metrics.NewFacts(),
		logger,
		facts.Config{Bech32Prefix: cfg.Bech32Prefix, BTCParams: params},
	)
	if err != nil {
		return nil, fmt.Errorf("init fact extractor: %w", err)
	}

	blockSignal, err := startBlockSignal(ctx, cfg.CometRPCURL, logger.Named("blockSignal"))
	if err != nil {
		return nil, fmt.Errorf("init block signal: %w", err)
	}

	return ingester.NewService(
		client,
		cursor,
		envelope.NewDecoder(envelope.DefaultRegistry()),
		extractor,
		metrics.NewIngester(cfg.Network),
		logger.Named("ingester"),
		ingester.Config{
			GenesisHeight: cfg.GenesisHeight,
			IdleSleep:     cfg.IdleSleep,
			BlockSignal:   blockSignal,
		},
	)
}
