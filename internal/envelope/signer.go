package envelope

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

const secp256k1PubKeyType = "cosmos.crypto.secp256k1.PubKey"

// GasPayer resolves the address charged for gas: the first signer, taken from
// its key, else from the first message that names a signer. The fee payer field
// is used only when no signer is known.
func GasPayer(tx *Tx, prefix string) string {
	if tx == nil {
		return ""
	}
	if addr, ok := firstSignerAddress(tx, prefix); ok {
		return addr
	}
	for _, msg := range tx.Messages {
		if signer := Signer(msg); signer != "" {
			return signer
		}
	}
	return ExplicitFeePayer(tx)
}

// ExplicitFeePayer returns the explicit fee payer of tx, or "".
func ExplicitFeePayer(tx *Tx) string {
	if tx == nil || tx.AuthInfo == nil || tx.AuthInfo.Fee == nil {
		return ""
	}
	return tx.AuthInfo.Fee.Payer
}

func firstSignerAddress(tx *Tx, prefix string) (string, bool) {
	if tx.AuthInfo == nil || len(tx.AuthInfo.SignerInfos) == 0 || prefix == "" {
		return "", false
	}
	info := tx.AuthInfo.SignerInfos[0]
	if info == nil || info.PublicKey == nil || NormalizeTypeURL(info.PublicKey.TypeUrl) != secp256k1PubKeyType {
		return "", false
	}

	var key secp256k1.PubKey
	if err := key.Unmarshal(info.PublicKey.Value); err != nil || len(key.Key) != secp256k1.PubKeySize {
		return "", false
	}
	addr, err := bech32.ConvertAndEncode(prefix, key.Address())
	if err != nil {
		return "", false
	}
	return addr, true
}

// Signer returns the address that authored msg, or "" when the message has none.
func Signer(msg Message) string {
	switch m := msg.(type) {
	case BankSend:
		return m.FromAddress
	case BankMultiSend:
		if len(m.Inputs) > 0 {
			return m.Inputs[0].Address
		}
	case StakingDelegate:
		return m.DelegatorAddress
	case StakingUndelegate:
		return m.DelegatorAddress
	case StakingBeginRedelegate:
		return m.DelegatorAddress
	case DistrWithdrawDelegatorReward:
		return m.DelegatorAddress
	case DistrWithdrawValidatorCommission:
		return m.ValidatorAddress
	case DistrSetWithdrawAddress:
		return m.DelegatorAddress
	case DistrFundCommunityPool:
		return m.Depositor
	case GovSubmitProposal:
		return m.Proposer
	case GovDeposit:
		return m.Depositor
	case GovVote:
		return m.Voter
	case GovVoteWeighted:
		return m.Voter
	case BridgeConfirmBtcDeposit:
		return m.OracleAddress
	case BridgeRegisterBtcDepositAddress:
		return m.TwilightAddress
	case BridgeRegisterReserveAddress:
		return m.JudgeAddress
	case BridgeBootstrapFragment:
		return m.JudgeAddress
	case BridgeWithdrawBtcRequest:
		return m.TwilightAddress
	case BridgeWithdrawTxSigned:
		return m.Creator
	case BridgeWithdrawTxFinal:
		return m.Creator
	case BridgeConfirmBtcWithdraw:
		return m.JudgeAddress
	case BridgeProposeSweepAddress:
		return m.JudgeAddress
	case BridgeUnsignedTxSweep:
		return m.JudgeAddress
	case BridgeUnsignedTxRefund:
		return m.JudgeAddress
	case BridgeSignRefund:
		return m.BtcOracleAddress
	case BridgeSignSweep:
		return m.BtcOracleAddress
	case BridgeBroadcastTxRefund:
		return m.JudgeAddress
	case BridgeBroadcastTxSweep:
		return m.JudgeAddress
	case BridgeSweepProposal:
		return m.JudgeAddress
	case ZkosTransferTx:
		return m.ZkOracleAddress
	case ZkosMintBurnTradingBtc:
		return m.TwilightAddress
	}
	return ""
}
