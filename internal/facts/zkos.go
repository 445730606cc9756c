package facts

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/nyks-indexer/internal/envelope"
	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/internal/zkos"
)

type archivedTx struct {
	Variant string           `json:"variant"`
	Tx      zkos.Transaction `json:"tx"`
}

func (e *Extractor) transferTx(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.ZkosTransferTx)
	if !ok || m.MsgTransferTx == nil {
		return unexpected(msg)
	}

	raw, err := zkos.ParseHex(m.TxByteCode)
	if err != nil {
		return err
	}
	tx, err := e.codec.Decode(raw)
	if err != nil {
		return err
	}
	e.archive(ctx, tx, height)

	logger := e.logger.With(zap.Uint64("height", height), zap.String("tx_id", m.TxID))
	switch t := tx.(type) {
	case *zkos.Transfer:
		address, account, ok, err := e.link(ctx, logger, t.Inputs, t.Outputs, height)
		if err != nil || !ok {
			return err
		}
		if t.Inputs[0].Kind == zkos.IOCoin && t.Outputs[0].Kind == zkos.IOMemo {
			e.insertOrderLog(ctx, model.OrderTrading, account, address, height)
		}
	case *zkos.Script:
		if logger.Core().Enabled(zapcore.DebugLevel) {
			logger.Debug("script program", zap.Strings("program", zkos.Disassemble(t.Program)))
		}
		address, account, ok, err := e.link(ctx, logger, t.Inputs, t.Outputs, height)
		if err != nil || !ok {
			return err
		}
		switch {
		case t.Inputs[0].Kind == zkos.IOCoin && t.Outputs[0].Kind == zkos.IOMemo:
			e.insertOrderLog(ctx, model.OrderOpen, account, address, height)
		case t.Inputs[0].Kind == zkos.IOMemo && t.Outputs[0].Kind == zkos.IOCoin:
			e.insertOrderLog(ctx, model.OrderClose, account, address, height)
		}
	case *zkos.Message:
		logger.Info("confidential message", zap.Uint32("message_type", t.Type), zap.Int("payload_size", len(t.Payload)))
	}
	return nil
}

// link maps the account created by the first output to the twilight address
// that owns the first input. The input is looked up by its owner first and
// then by the account it carries, so accounts created by earlier confidential
// transfers resolve too. It reports false when neither key is mapped, which is
// not an error.
func (e *Extractor) link(
	ctx context.Context,
	logger *zap.Logger,
	inputs []zkos.Input,
	outputs []zkos.Output,
	height uint64,
) (string, string, bool, error) {
	if len(inputs) == 0 || len(outputs) == 0 {
		logger.Debug("confidential transaction without inputs or outputs")
		return "", "", false, nil
	}
	owner, ok := inputs[0].Owner()
	if !ok {
		return "", "", false, fmt.Errorf("input 0: %w", zkos.ErrMissingOutput)
	}

	address, found, err := e.lookup(ctx, logger, owner)
	if err != nil {
		return "", "", false, nil
	}
	if !found {
		if spent, idErr := e.accounts.Identify(inputs[0].Output); idErr == nil {
			if address, found, err = e.lookup(ctx, logger, spent); err != nil {
				return "", "", false, nil
			}
		}
	}
	if !found {
		logger.Debug("account not mapped", zap.String("qq_account", owner))
		return "", "", false, nil
	}

	account, err := e.accounts.Identify(outputs[0])
	if err != nil {
		return "", "", false, err
	}

	e.insertMapping(ctx, address, account, height)
	e.insertTransaction(ctx, address, height)
	return address, account, true, nil
}

func (e *Extractor) lookup(ctx context.Context, logger *zap.Logger, qqAccount string) (string, bool, error) {
	address, found, err := e.repo.AddressForAccount(ctx, qqAccount)
	if err != nil {
		logger.Error("lookup address for account", zap.String("qq_account", qqAccount), zap.Error(err))
	}
	return address, found, err
}

// archive stores the canonical form of tx keyed by its double SHA-256.
func (e *Extractor) archive(ctx context.Context, tx zkos.Transaction, height uint64) {
	canonical, err := e.codec.Encode(tx)
	if err != nil {
		e.record("raw_tx", fmt.Errorf("encode transaction: %w", err), zap.Uint64("height", height))
		return
	}
	body, err := json.Marshal(archivedTx{Variant: tx.Variant().String(), Tx: tx})
	if err != nil {
		e.record("raw_tx", fmt.Errorf("marshal transaction: %w", err), zap.Uint64("height", height))
		return
	}

	hash := chainhash.DoubleHashH(canonical)
	rec := model.RawTx{Hash: hex.EncodeToString(hash[:]), Block: height, Body: string(body)}
	e.record("raw_tx", e.repo.InsertRawTx(ctx, rec), zap.String("hash", rec.Hash), zap.Uint64("height", height))
}
