// Package facts turns decoded transactions into the records kept by the indexer.
package facts

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/nyks-indexer/internal/envelope"
)

const (
	statusSuccess = "success"
	statusError   = "error"
	statusSkipped = "skipped"
)

// Config carries chain specific settings of the extractor.
type Config struct {
	// Bech32Prefix is used to render the fee payer from the signer key.
	Bech32Prefix string
	// BTCParams selects the bitcoin network bridge addresses are checked against.
	BTCParams *chaincfg.Params
}

type handler func(ctx context.Context, msg envelope.Message, height uint64) error

// Extractor records the facts carried by every message of a transaction.
type Extractor struct {
	repo     Repository
	codec    Codec
	accounts Accounts
	metrics  Metrics
	logger   *zap.Logger
	cfg      Config
	handlers map[string]handler
}

func NewExtractor(
	repo Repository,
	codec Codec,
	accounts Accounts,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Extractor, error) {
	if repo == nil {
		return nil, errors.New("repository is nil")
	}
	if codec == nil {
		return nil, errors.New("codec is nil")
	}
	if accounts == nil {
		return nil, errors.New("accounts is nil")
	}
	if metrics == nil {
		return nil, errors.New("metrics is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BTCParams == nil {
		cfg.BTCParams = &chaincfg.MainNetParams
	}

	e := &Extractor{
		repo:     repo,
		codec:    codec,
		accounts: accounts,
		metrics:  metrics,
		logger:   logger.Named("facts"),
		cfg:      cfg,
	}
	e.handlers = map[string]handler{
		envelope.TypeBankSend:                         e.bankSend,
		envelope.TypeBankMultiSend:                    e.bankMultiSend,
		envelope.TypeStakingDelegate:                  e.signerTransaction,
		envelope.TypeStakingUndelegate:                e.signerTransaction,
		envelope.TypeStakingBeginRedelegate:           e.signerTransaction,
		envelope.TypeDistrWithdrawDelegatorReward:     e.signerTransaction,
		envelope.TypeDistrWithdrawValidatorCommission: e.signerTransaction,
		envelope.TypeDistrSetWithdrawAddress:          e.signerTransaction,
		envelope.TypeDistrFundCommunityPool:           e.signerTransaction,
		envelope.TypeGovSubmitProposal:                e.signerTransaction,
		envelope.TypeGovDeposit:                       e.signerTransaction,
		envelope.TypeGovVote:                          e.signerTransaction,
		envelope.TypeGovVoteWeighted:                  e.signerTransaction,
		envelope.TypeBridgeConfirmBtcDeposit:          e.confirmBtcDeposit,
		envelope.TypeBridgeRegisterBtcDepositAddress:  e.registerBtcDepositAddress,
		envelope.TypeBridgeWithdrawBtcRequest:         e.withdrawBtcRequest,
		envelope.TypeZkosMintBurnTradingBtc:           e.mintBurnTradingBtc,
		envelope.TypeZkosTransferTx:                   e.transferTx,
	}
	return e, nil
}

// Process records the facts of tx. A failing message is logged and the
// remaining messages are still processed; the returned error joins the
// message failures. Storage errors are logged and never returned.
func (e *Extractor) Process(ctx context.Context, tx *envelope.Tx, height uint64) error {
	if tx == nil {
		return nil
	}
	logger := e.logger.With(zap.Uint64("height", height), zap.String("tx_hash", tx.Hash))
	if logger.Core().Enabled(zapcore.DebugLevel) {
		logger.Debug("decoded transaction", zap.Strings("summary", envelope.Summary(tx)))
	}

	var errs []error
	for i, msg := range tx.Messages {
		if err := ctx.Err(); err != nil {
			return err
		}

		typeURL := envelope.NormalizeTypeURL(msg.TypeURL())
		h, ok := e.handlers[typeURL]
		if !ok {
			e.metrics.ObserveMessage(typeURL, statusSkipped)
			continue
		}
		if err := h(ctx, msg, height); err != nil {
			e.metrics.ObserveMessage(typeURL, statusError)
			logger.Warn("message skipped",
				zap.Int("message_index", i),
				zap.String("type_url", typeURL),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("message %d (%s): %w", i, typeURL, err))
			continue
		}
		e.metrics.ObserveMessage(typeURL, statusSuccess)
	}

	e.gasUsed(ctx, tx, height)
	return errors.Join(errs...)
}

func (e *Extractor) gasUsed(ctx context.Context, tx *envelope.Tx, height uint64) {
	if tx.AuthInfo == nil || tx.AuthInfo.Fee == nil || len(tx.AuthInfo.Fee.Amount) == 0 {
		return
	}
	payer := envelope.GasPayer(tx, e.cfg.Bech32Prefix)
	if payer == "" {
		e.logger.Debug("gas payer unknown", zap.Uint64("height", height), zap.String("tx_hash", tx.Hash))
		return
	}
	if explicit := envelope.ExplicitFeePayer(tx); explicit != "" && explicit != payer {
		e.logger.Debug("fee payer differs from first signer",
			zap.Uint64("height", height),
			zap.String("tx_hash", tx.Hash),
			zap.String("fee_payer", explicit),
			zap.String("signer", payer),
		)
	}
	for _, c := range tx.AuthInfo.Fee.Amount {
		amount, ok := e.coinAmount(c, height)
		if !ok {
			continue
		}
		e.addGasUsed(ctx, payer, c.Denom, amount, height)
	}
}

// coinAmount reports false for amounts that do not fit the storage type.
func (e *Extractor) coinAmount(c sdk.Coin, height uint64) (uint64, bool) {
	if c.Amount.IsNil() || c.Amount.IsNegative() || !c.Amount.IsUint64() {
		e.logger.Warn("coin amount out of range",
			zap.Uint64("height", height),
			zap.String("denom", c.Denom),
			zap.Stringer("amount", c.Amount),
		)
		return 0, false
	}
	return c.Amount.Uint64(), true
}

// record counts a single fact write and logs a failure with its key. The
// caller continues either way.
func (e *Extractor) record(kind string, err error, fields ...zap.Field) {
	e.metrics.ObserveRecord(kind, err)
	if err != nil {
		e.logger.Error("record fact", append(fields, zap.String("kind", kind), zap.Error(err))...)
	}
}
