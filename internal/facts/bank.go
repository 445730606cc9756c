package facts

import (
	"context"

	"github.com/goodnatureofminers/nyks-indexer/internal/envelope"
)

func (e *Extractor) bankSend(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.BankSend)
	if !ok || m.MsgSend == nil {
		return unexpected(msg)
	}

	e.insertTransaction(ctx, m.FromAddress, height)
	for _, c := range m.Amount {
		amount, ok := e.coinAmount(c, height)
		if !ok {
			continue
		}
		e.addFundsMoved(ctx, m.ToAddress, c.Denom, amount, height)
	}
	return nil
}

func (e *Extractor) bankMultiSend(ctx context.Context, msg envelope.Message, height uint64) error {
	m, ok := msg.(envelope.BankMultiSend)
	if !ok || m.MsgMultiSend == nil {
		return unexpected(msg)
	}

	for _, in := range m.Inputs {
		e.insertTransaction(ctx, in.Address, height)
	}
	for _, out := range m.Outputs {
		for _, c := range out.Coins {
			amount, ok := e.coinAmount(c, height)
			if !ok {
				continue
			}
			e.addFundsMoved(ctx, out.Address, c.Denom, amount, height)
		}
	}
	return nil
}

// signerTransaction counts a transaction for the author of staking,
// distribution and governance messages.
func (e *Extractor) signerTransaction(ctx context.Context, msg envelope.Message, height uint64) error {
	signer := envelope.Signer(msg)
	if signer == "" {
		return unexpected(msg)
	}
	e.insertTransaction(ctx, signer, height)
	return nil
}
