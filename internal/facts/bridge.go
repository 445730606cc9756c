package facts

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nyks-indexer/internal/envelope"
	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

var ErrUnexpectedMessage = errors.New("unexpected message shape")

func unexpected(msg envelope.Message) error {
	return fmt.Errorf("%w: %T", ErrUnexpectedMessage, msg)
}

func (e *Extractor) confirmBtcDeposit(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.BridgeConfirmBtcDeposit)
	if !ok || m.MsgConfirmBtcDeposit == nil {
		return unexpected(msg)
	}

	err := e.repo.AddLitMinted(ctx, model.LitSats{Address: m.TwilightDepositAddress, Amount: m.DepositAmount, Block: height})
	e.record("lit_minted", err,
		zap.String("address", m.TwilightDepositAddress),
		zap.Stringer("btc", btcutil.Amount(m.DepositAmount)),
		zap.Uint64("height", height),
	)
	return nil
}

func (e *Extractor) withdrawBtcRequest(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.BridgeWithdrawBtcRequest)
	if !ok || m.MsgWithdrawBtcRequest == nil {
		return unexpected(msg)
	}
	e.checkBtcAddress(m.WithdrawAddress, height)

	err := e.repo.AddLitBurned(ctx, model.LitSats{Address: m.TwilightAddress, Amount: m.WithdrawAmount, Block: height})
	e.record("lit_burned", err,
		zap.String("address", m.TwilightAddress),
		zap.Stringer("btc", btcutil.Amount(m.WithdrawAmount)),
		zap.Uint64("height", height),
	)
	return nil
}

func (e *Extractor) registerBtcDepositAddress(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.BridgeRegisterBtcDepositAddress)
	if !ok || m.MsgRegisterBtcDepositAddress == nil {
		return unexpected(msg)
	}
	e.checkBtcAddress(m.BtcDepositAddress, height)
	e.insertTransaction(ctx, m.TwilightAddress, height)
	return nil
}

// checkBtcAddress only logs: the chain has already accepted the message.
func (e *Extractor) checkBtcAddress(address string, height uint64) {
	if _, err := btcutil.DecodeAddress(address, e.cfg.BTCParams); err != nil {
		e.logger.Warn("bridge message carries an invalid btc address",
			zap.String("btc_address", address),
			zap.String("btc_network", e.cfg.BTCParams.Name),
			zap.Uint64("height", height),
			zap.Error(err),
		)
	}
}

func (e *Extractor) mintBurnTradingBtc(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.ZkosMintBurnTradingBtc)
	if !ok || m.MsgMintBurnTradingBtc == nil {
		return unexpected(msg)
	}

	rec := model.DarkSats{Address: m.TwilightAddress, QqAccount: m.QqAccount, Amount: m.BtcValue, Block: height}
	fields := []zap.Field{
		zap.String("address", m.TwilightAddress),
		zap.String("qq_account", m.QqAccount),
		zap.Uint64("height", height),
	}
	if m.MintOrBurn {
		e.record("dark_minted", e.repo.AddDarkMinted(ctx, rec), fields...)
		e.insertMapping(ctx, m.TwilightAddress, m.QqAccount, height)
	} else {
		e.record("dark_burned", e.repo.AddDarkBurned(ctx, rec), fields...)
	}
	e.insertTransaction(ctx, m.TwilightAddress, height)
	return nil
}
