package facts

import (
	"context"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/internal/zkos"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertTransaction(ctx context.Context, rec model.TransactionRecord) error
		AddFundsMoved(ctx context.Context, rec model.FundsMoved) error
		AddDarkMinted(ctx context.Context, rec model.DarkSats) error
		AddDarkBurned(ctx context.Context, rec model.DarkSats) error
		AddLitMinted(ctx context.Context, rec model.LitSats) error
		AddLitBurned(ctx context.Context, rec model.LitSats) error
		InsertAddressMapping(ctx context.Context, rec model.AddressMapping) error
		AddressForAccount(ctx context.Context, qqAccount string) (string, bool, error)
		AddGasUsed(ctx context.Context, rec model.GasUsage) error
		InsertOrderLog(ctx context.Context, rec model.OrderLog) error
		InsertRawTx(ctx context.Context, rec model.RawTx) error
	}
	Codec interface {
		Decode(b []byte) (zkos.Transaction, error)
		Encode(tx zkos.Transaction) ([]byte, error)
	}
	Accounts interface {
		Identify(out zkos.Output) (string, error)
	}
	Metrics interface {
		ObserveMessage(typeURL, status string)
		ObserveRecord(kind string, err error)
	}
)
