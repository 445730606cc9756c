package ingester

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

// blockProcessor decodes every transaction of a block and hands it to the
// extractor. Failures are logged per transaction and never stop the block.
type blockProcessor struct {
	decoder   TxDecoder
	extractor FactExtractor
	metrics   Metrics
	logger    *zap.Logger
}

// Process returns an error only when ctx ends before the block is done.
func (p *blockProcessor) Process(ctx context.Context, block *model.Block) error {
	started := time.Now()
	logger := p.logger.With(zap.Uint64("height", block.Height))

	for i, raw := range block.Txs {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx, err := p.decoder.Decode(raw)
		if err != nil {
			logger.Warn("decode transaction failed", zap.Int("tx_index", i), zap.Error(err))
			continue
		}
		if err = p.extractor.Process(ctx, tx, block.Height); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("transaction partially indexed",
				zap.Int("tx_index", i),
				zap.String("tx_hash", tx.Hash),
				zap.Error(err),
			)
		}
	}

	p.metrics.ObserveBlock(len(block.Txs), started)
	if len(block.Txs) > 0 {
		logger.Info("block indexed", zap.Int("txs", len(block.Txs)))
	}
	return nil
}
