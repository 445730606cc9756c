package envelope

import (
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/goodnatureofminers/nyks-indexer/internal/nyks"
)

// defaultRules lists every message this chain is known to carry, in registration order.
func defaultRules() []Rule {
	return []Rule{
		{TypeURL: TypeBankSend, Decode: decodeAs(func(m *banktypes.MsgSend) Message { return BankSend{m} })},
		{TypeURL: TypeBankMultiSend, Decode: decodeAs(func(m *banktypes.MsgMultiSend) Message { return BankMultiSend{m} })},
		{TypeURL: TypeBankSendAuthorization, Decode: decodeAs(func(m *banktypes.SendAuthorization) Message { return BankSendAuthorization{m} })},
		{TypeURL: TypeStakingDelegate, Decode: decodeAs(func(m *stakingtypes.MsgDelegate) Message { return StakingDelegate{m} })},
		{TypeURL: TypeStakingUndelegate, Decode: decodeAs(func(m *stakingtypes.MsgUndelegate) Message { return StakingUndelegate{m} })},
		{TypeURL: TypeStakingBeginRedelegate, Decode: decodeAs(func(m *stakingtypes.MsgBeginRedelegate) Message { return StakingBeginRedelegate{m} })},
		{TypeURL: TypeDistrWithdrawDelegatorReward, Decode: decodeAs(func(m *distrtypes.MsgWithdrawDelegatorReward) Message { return DistrWithdrawDelegatorReward{m} })},
		{TypeURL: TypeDistrWithdrawValidatorCommission, Decode: decodeAs(func(m *distrtypes.MsgWithdrawValidatorCommission) Message { return DistrWithdrawValidatorCommission{m} })},
		{TypeURL: TypeDistrSetWithdrawAddress, Decode: decodeAs(func(m *distrtypes.MsgSetWithdrawAddress) Message { return DistrSetWithdrawAddress{m} })},
		{TypeURL: TypeDistrFundCommunityPool, Decode: decodeAs(func(m *distrtypes.MsgFundCommunityPool) Message { return DistrFundCommunityPool{m} })},
		{TypeURL: TypeGovSubmitProposal, Decode: decodeAs(func(m *govtypes.MsgSubmitProposal) Message { return GovSubmitProposal{m} })},
		{TypeURL: TypeGovDeposit, Decode: decodeAs(func(m *govtypes.MsgDeposit) Message { return GovDeposit{m} })},
		{TypeURL: TypeGovVote, Decode: decodeAs(func(m *govtypes.MsgVote) Message { return GovVote{m} })},
		{TypeURL: TypeGovVoteWeighted, Decode: decodeAs(func(m *govtypes.MsgVoteWeighted) Message { return GovVoteWeighted{m} })},
		{TypeURL: TypeBridgeConfirmBtcDeposit, Decode: decodeAs(func(m *nyks.MsgConfirmBtcDeposit) Message { return BridgeConfirmBtcDeposit{m} })},
		{TypeURL: TypeBridgeRegisterBtcDepositAddress, Decode: decodeAs(func(m *nyks.MsgRegisterBtcDepositAddress) Message { return BridgeRegisterBtcDepositAddress{m} })},
		{TypeURL: TypeBridgeRegisterReserveAddress, Decode: decodeAs(func(m *nyks.MsgRegisterReserveAddress) Message { return BridgeRegisterReserveAddress{m} })},
		{TypeURL: TypeBridgeBootstrapFragment, Decode: decodeAs(func(m *nyks.MsgBootstrapFragment) Message { return BridgeBootstrapFragment{m} })},
		{TypeURL: TypeBridgeWithdrawBtcRequest, Decode: decodeAs(func(m *nyks.MsgWithdrawBtcRequest) Message { return BridgeWithdrawBtcRequest{m} })},
		{TypeURL: TypeBridgeWithdrawTxSigned, Decode: decodeAs(func(m *nyks.MsgWithdrawTxSigned) Message { return BridgeWithdrawTxSigned{m} })},
		{TypeURL: TypeBridgeWithdrawTxFinal, Decode: decodeAs(func(m *nyks.MsgWithdrawTxFinal) Message { return BridgeWithdrawTxFinal{m} })},
		{TypeURL: TypeBridgeConfirmBtcWithdraw, Decode: decodeAs(func(m *nyks.MsgConfirmBtcWithdraw) Message { return BridgeConfirmBtcWithdraw{m} })},
		{TypeURL: TypeBridgeProposeSweepAddress, Decode: decodeAs(func(m *nyks.MsgProposeSweepAddress) Message { return BridgeProposeSweepAddress{m} })},
		{TypeURL: TypeBridgeUnsignedTxSweep, Decode: decodeAs(func(m *nyks.MsgUnsignedTxSweep) Message { return BridgeUnsignedTxSweep{m} })},
		{TypeURL: TypeBridgeUnsignedTxRefund, Decode: decodeAs(func(m *nyks.MsgUnsignedTxRefund) Message { return BridgeUnsignedTxRefund{m} })},
		{TypeURL: TypeBridgeSignRefund, Decode: decodeAs(func(m *nyks.MsgSignRefund) Message { return BridgeSignRefund{m} })},
		{TypeURL: TypeBridgeSignSweep, Decode: decodeAs(func(m *nyks.MsgSignSweep) Message { return BridgeSignSweep{m} })},
		{TypeURL: TypeBridgeBroadcastTxRefund, Decode: decodeAs(func(m *nyks.MsgBroadcastTxRefund) Message { return BridgeBroadcastTxRefund{m} })},
		{TypeURL: TypeBridgeBroadcastTxSweep, Decode: decodeAs(func(m *nyks.MsgBroadcastTxSweep) Message { return BridgeBroadcastTxSweep{m} })},
		{TypeURL: TypeBridgeSweepProposal, Decode: decodeAs(func(m *nyks.MsgSweepProposal) Message { return BridgeSweepProposal{m} })},
		{TypeURL: TypeZkosTransferTx, Decode: decodeAs(func(m *nyks.MsgTransferTx) Message { return ZkosTransferTx{m} })},
		{TypeURL: TypeZkosMintBurnTradingBtc, Decode: decodeAs(func(m *nyks.MsgMintBurnTradingBtc) Message { return ZkosMintBurnTradingBtc{m} })},
	}
}
