package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/envelope"
	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}
	CursorStore interface {
		Load(ctx context.Context) (uint64, bool, error)
		Save(ctx context.Context, height uint64) error
	}
	BlockProcessor interface {
		Process(ctx context.Context, block *model.Block) error
	}
	TxDecoder interface {
		Decode(b64 string) (*envelope.Tx, error)
	}
	FactExtractor interface {
		Process(ctx context.Context, tx *envelope.Tx, height uint64) error
	}
	Metrics interface {
		ObserveFetch(err error, started time.Time)
		ObserveBlock(txs int, started time.Time)
		ObserveSkip(reason string)
		SetHeights(local, head uint64)
	}
)
