package envelope

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Summary renders a short, human-readable description of tx, one line per entry.
func Summary(tx *Tx) []string {
	var lines []string
	if tx.Body != nil {
		lines = append(lines,
			fmt.Sprintf("memo: %s", tx.Body.Memo),
			fmt.Sprintf("timeout_height: %d", tx.Body.TimeoutHeight),
		)
	}
	if tx.AuthInfo != nil && tx.AuthInfo.Fee != nil {
		lines = append(lines, fmt.Sprintf("gas_limit: %d", tx.AuthInfo.Fee.GasLimit))
		for _, c := range tx.AuthInfo.Fee.Amount {
			lines = append(lines, fmt.Sprintf("fee amount: %s %s", c.Amount, c.Denom))
		}
	}

	lines = append(lines, fmt.Sprintf("signatures: %d", len(tx.Signatures)))
	for i, sig := range tx.Signatures {
		lines = append(lines, fmt.Sprintf("  sig[%d]: %s", i, hex.EncodeToString(sig)))
	}

	lines = append(lines, fmt.Sprintf("messages: %d", len(tx.Messages)))
	for i, msg := range tx.Messages {
		lines = append(lines, fmt.Sprintf("  [%d] %s", i, describe(msg)))
	}
	return lines
}

func describe(msg Message) string {
	switch m := msg.(type) {
	case BankSend:
		amounts := make([]string, 0, len(m.Amount))
		for _, c := range m.Amount {
			amounts = append(amounts, fmt.Sprintf("%s %s", c.Amount, c.Denom))
		}
		return fmt.Sprintf("bank.MsgSend %s -> %s [%s]", m.FromAddress, m.ToAddress, strings.Join(amounts, ", "))
	case StakingDelegate:
		return fmt.Sprintf("staking.MsgDelegate %s to %s (%s %s)", m.DelegatorAddress, m.ValidatorAddress, m.Amount.Amount, m.Amount.Denom)
	case Unknown:
		return fmt.Sprintf("<unknown> %s", m.URL)
	default:
		return msg.TypeURL()
	}
}
