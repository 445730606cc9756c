// Package ingester follows the chain head block by block and persists progress
// after every height.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nyks-indexer/internal/chain"
	"github.com/goodnatureofminers/nyks-indexer/internal/clock"
)

// ErrHeadUnavailable stops the service: indexing against an unknown head is not allowed.
var ErrHeadUnavailable = errors.New("remote head unavailable")

// Progress is the loop state. Attempts counts consecutive failures at Height
// and is never persisted.
type Progress struct {
	Height   uint64
	Head     uint64
	Attempts int
}

// Config tunes the loop. Zero values select the defaults.
type Config struct {
	GenesisHeight uint64
	IdleSleep     time.Duration
	RetrySleep    time.Duration
	// BlockSignal, when set, ends an idle wait early.
	BlockSignal <-chan struct{}
}

// Service runs the ingestion loop.
type Service struct {
	logger     *zap.Logger
	source     ChainSource
	cursor     CursorStore
	processor  BlockProcessor
	metrics    Metrics
	sleep      func(context.Context, time.Duration) error
	genesis    uint64
	idleSleep  time.Duration
	retrySleep time.Duration
	signal     <-chan struct{}
}

// NewService wires the loop around a block processor built from decoder and extractor.
func NewService(
	source ChainSource,
	cursor CursorStore,
	decoder TxDecoder,
	extractor FactExtractor,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("chain source is required")
	}
	if cursor == nil {
		return nil, errors.New("cursor store is required")
	}
	if decoder == nil || extractor == nil {
		return nil, errors.New("decoder and extractor are required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IdleSleep <= 0 {
		cfg.IdleSleep = idleSleepDuration
	}
	if cfg.RetrySleep <= 0 {
		cfg.RetrySleep = retrySleepDuration
	}

	return &Service{
		logger:     logger,
		source:     source,
		cursor:     cursor,
		metrics:    metrics,
		sleep:      clock.SleepWithContext,
		genesis:    cfg.GenesisHeight,
		idleSleep:  cfg.IdleSleep,
		retrySleep: cfg.RetrySleep,
		signal:     cfg.BlockSignal,
		processor: &blockProcessor{
			decoder:   decoder,
			extractor: extractor,
			metrics:   metrics,
			logger:    logger.Named("blockProcessor"),
		},
	}, nil
}

// Run follows the chain until ctx is canceled or the head cannot be read.
func (s *Service) Run(ctx context.Context) error {
	progress, err := s.start(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("ingestion started", zap.Uint64("height", progress.Height), zap.Uint64("head", progress.Head))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if progress.Height > progress.Head {
			if err = s.idle(ctx, &progress); err != nil {
				return err
			}
			continue
		}
		if err = s.step(ctx, &progress); err != nil {
			return err
		}
	}
}

func (s *Service) start(ctx context.Context) (Progress, error) {
	height, found, err := s.cursor.Load(ctx)
	if err != nil {
		return Progress{}, fmt.Errorf("load cursor: %w", err)
	}
	if !found {
		height = s.genesis
		s.logger.Info("no cursor stored, starting from genesis", zap.Uint64("height", height))
	}

	head, err := s.head(ctx)
	if err != nil {
		return Progress{}, err
	}
	s.metrics.SetHeights(height, head)
	return Progress{Height: height, Head: head}, nil
}

func (s *Service) head(ctx context.Context) (uint64, error) {
	head, err := s.source.LatestHeight(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		s.logger.Error("cannot read remote head", zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrHeadUnavailable, err)
	}
	return head, nil
}

// step handles the block at p.Height: a fetched or not produced block moves
// the cursor on, any other failure counts an attempt until the height is given up.
func (s *Service) step(ctx context.Context, p *Progress) error {
	logger := s.logger.With(zap.Uint64("height", p.Height))

	started := time.Now()
	block, err := s.source.FetchBlock(ctx, p.Height)
	s.metrics.ObserveFetch(err, started)

	switch {
	case err == nil:
		if err = s.processor.Process(ctx, block); err != nil {
			return err
		}
		logger.Debug("block processed", zap.Int("txs", len(block.Txs)))
		s.advance(ctx, p)
	case chain.IsNotProduced(err):
		logger.Debug("height has no block, moving on")
		s.metrics.ObserveSkip(skipNotProduced)
		s.advance(ctx, p)
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		p.Attempts++
		logger.Warn("fetch block failed", zap.Int("attempt", p.Attempts), zap.Error(err))
		if p.Attempts >= maxFetchAttempts {
			logger.Error("giving up on height", zap.Int("attempts", p.Attempts))
			s.metrics.ObserveSkip(skipRetriesExhausted)
			s.advance(ctx, p)
			return nil
		}
		return s.sleep(ctx, s.retrySleep)
	}
	return nil
}

// advance moves to the next height and persists it. A failed save is logged:
// the next advance writes a later height anyway.
func (s *Service) advance(ctx context.Context, p *Progress) {
	p.Height++
	p.Attempts = 0
	s.save(ctx, p.Height)
	s.metrics.SetHeights(p.Height, p.Head)
}

func (s *Service) save(ctx context.Context, height uint64) {
	if err := s.cursor.Save(ctx, height); err != nil {
		s.logger.Error("save cursor failed", zap.Uint64("height", height), zap.Error(err))
	}
}

// idle persists the cursor, waits for new blocks and re-reads the head.
func (s *Service) idle(ctx context.Context, p *Progress) error {
	s.save(ctx, p.Height)
	s.logger.Debug("caught up with head, sleeping",
		zap.Uint64("height", p.Height),
		zap.Uint64("head", p.Head),
		zap.Duration("sleep", s.idleSleep),
	)
	if err := s.wait(ctx, s.idleSleep); err != nil {
		return err
	}

	head, err := s.head(ctx)
	if err != nil {
		return err
	}
	p.Head = head
	s.metrics.SetHeights(p.Height, p.Head)
	return nil
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.signal == nil {
		return s.sleep(ctx, d)
	}
	return clock.SleepOrSignal(ctx, d, s.signal)
}

var _ ChainSource = (*chain.Client)(nil)
