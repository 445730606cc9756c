package envelope

import (
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/goodnatureofminers/nyks-indexer/internal/nyks"
)

// Type identifiers in their normalized form, without the leading "/".
const (
	TypeBankSend                         = "cosmos.bank.v1beta1.MsgSend"
	TypeBankMultiSend                    = "cosmos.bank.v1beta1.MsgMultiSend"
	TypeBankSendAuthorization            = "cosmos.bank.v1beta1.SendAuthorization"
	TypeStakingDelegate                  = "cosmos.staking.v1beta1.MsgDelegate"
	TypeStakingUndelegate                = "cosmos.staking.v1beta1.MsgUndelegate"
	TypeStakingBeginRedelegate           = "cosmos.staking.v1beta1.MsgBeginRedelegate"
	TypeDistrWithdrawDelegatorReward     = "cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	TypeDistrWithdrawValidatorCommission = "cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission"
	TypeDistrSetWithdrawAddress          = "cosmos.distribution.v1beta1.MsgSetWithdrawAddress"
	TypeDistrFundCommunityPool           = "cosmos.distribution.v1beta1.MsgFundCommunityPool"
	TypeGovSubmitProposal                = "cosmos.gov.v1beta1.MsgSubmitProposal"
	TypeGovDeposit                       = "cosmos.gov.v1beta1.MsgDeposit"
	TypeGovVote                          = "cosmos.gov.v1beta1.MsgVote"
	TypeGovVoteWeighted                  = "cosmos.gov.v1beta1.MsgVoteWeighted"
	TypeBridgeConfirmBtcDeposit          = "twilightproject.nyks.bridge.MsgConfirmBtcDeposit"
	TypeBridgeRegisterBtcDepositAddress  = "twilightproject.nyks.bridge.MsgRegisterBtcDepositAddress"
	TypeBridgeRegisterReserveAddress     = "twilightproject.nyks.bridge.MsgRegisterReserveAddress"
	TypeBridgeBootstrapFragment          = "twilightproject.nyks.bridge.MsgBootstrapFragment"
	TypeBridgeWithdrawBtcRequest         = "twilightproject.nyks.bridge.MsgWithdrawBtcRequest"
	TypeBridgeWithdrawTxSigned           = "twilightproject.nyks.bridge.MsgWithdrawTxSigned"
	TypeBridgeWithdrawTxFinal            = "twilightproject.nyks.bridge.MsgWithdrawTxFinal"
	TypeBridgeConfirmBtcWithdraw         = "twilightproject.nyks.bridge.MsgConfirmBtcWithdraw"
	TypeBridgeProposeSweepAddress        = "twilightproject.nyks.bridge.MsgProposeSweepAddress"
	TypeBridgeUnsignedTxSweep            = "twilightproject.nyks.bridge.MsgUnsignedTxSweep"
	TypeBridgeUnsignedTxRefund           = "twilightproject.nyks.bridge.MsgUnsignedTxRefund"
	TypeBridgeSignRefund                 = "twilightproject.nyks.bridge.MsgSignRefund"
	TypeBridgeSignSweep                  = "twilightproject.nyks.bridge.MsgSignSweep"
	TypeBridgeBroadcastTxRefund          = "twilightproject.nyks.bridge.MsgBroadcastTxRefund"
	TypeBridgeBroadcastTxSweep           = "twilightproject.nyks.bridge.MsgBroadcastTxSweep"
	TypeBridgeSweepProposal              = "twilightproject.nyks.bridge.MsgSweepProposal"
	TypeZkosTransferTx                   = "twilightproject.nyks.zkos.MsgTransferTx"
	TypeZkosMintBurnTradingBtc           = "twilightproject.nyks.zkos.MsgMintBurnTradingBtc"
)

// Message is one decoded transaction message. The set of implementations is closed:
// one wrapper per registered type plus Unknown.
type Message interface {
	TypeURL() string
	isMessage()
}

type (
	BankSend               struct{ *banktypes.MsgSend }
	BankMultiSend          struct{ *banktypes.MsgMultiSend }
	BankSendAuthorization  struct{ *banktypes.SendAuthorization }
	StakingDelegate        struct{ *stakingtypes.MsgDelegate }
	StakingUndelegate      struct{ *stakingtypes.MsgUndelegate }
	StakingBeginRedelegate struct {
		*stakingtypes.MsgBeginRedelegate
	}
	DistrWithdrawDelegatorReward struct {
		*distrtypes.MsgWithdrawDelegatorReward
	}
	DistrWithdrawValidatorCommission struct {
		*distrtypes.MsgWithdrawValidatorCommission
	}
	DistrSetWithdrawAddress struct {
		*distrtypes.MsgSetWithdrawAddress
	}
	DistrFundCommunityPool struct {
		*distrtypes.MsgFundCommunityPool
	}
	GovSubmitProposal               struct{ *govtypes.MsgSubmitProposal }
	GovDeposit                      struct{ *govtypes.MsgDeposit }
	GovVote                         struct{ *govtypes.MsgVote }
	GovVoteWeighted                 struct{ *govtypes.MsgVoteWeighted }
	BridgeConfirmBtcDeposit         struct{ *nyks.MsgConfirmBtcDeposit }
	BridgeRegisterBtcDepositAddress struct {
		*nyks.MsgRegisterBtcDepositAddress
	}
	BridgeRegisterReserveAddress struct {
		*nyks.MsgRegisterReserveAddress
	}
	BridgeBootstrapFragment   struct{ *nyks.MsgBootstrapFragment }
	BridgeWithdrawBtcRequest  struct{ *nyks.MsgWithdrawBtcRequest }
	BridgeWithdrawTxSigned    struct{ *nyks.MsgWithdrawTxSigned }
	BridgeWithdrawTxFinal     struct{ *nyks.MsgWithdrawTxFinal }
	BridgeConfirmBtcWithdraw  struct{ *nyks.MsgConfirmBtcWithdraw }
	BridgeProposeSweepAddress struct{ *nyks.MsgProposeSweepAddress }
	BridgeUnsignedTxSweep     struct{ *nyks.MsgUnsignedTxSweep }
	BridgeUnsignedTxRefund    struct{ *nyks.MsgUnsignedTxRefund }
	BridgeSignRefund          struct{ *nyks.MsgSignRefund }
	BridgeSignSweep           struct{ *nyks.MsgSignSweep }
	BridgeBroadcastTxRefund   struct{ *nyks.MsgBroadcastTxRefund }
	BridgeBroadcastTxSweep    struct{ *nyks.MsgBroadcastTxSweep }
	BridgeSweepProposal       struct{ *nyks.MsgSweepProposal }
	ZkosTransferTx            struct{ *nyks.MsgTransferTx }
	ZkosMintBurnTradingBtc    struct{ *nyks.MsgMintBurnTradingBtc }

	// Unknown keeps an unregistered message as it arrived.
	Unknown struct {
		URL    string
		RawHex string
	}
)

func (BankSend) TypeURL() string                         { return TypeBankSend }
func (BankMultiSend) TypeURL() string                    { return TypeBankMultiSend }
func (BankSendAuthorization) TypeURL() string            { return TypeBankSendAuthorization }
func (StakingDelegate) TypeURL() string                  { return TypeStakingDelegate }
func (StakingUndelegate) TypeURL() string                { return TypeStakingUndelegate }
func (StakingBeginRedelegate) TypeURL() string           { return TypeStakingBeginRedelegate }
func (DistrWithdrawDelegatorReward) TypeURL() string     { return TypeDistrWithdrawDelegatorReward }
func (DistrWithdrawValidatorCommission) TypeURL() string { return TypeDistrWithdrawValidatorCommission }
func (DistrSetWithdrawAddress) TypeURL() string          { return TypeDistrSetWithdrawAddress }
func (DistrFundCommunityPool) TypeURL() string           { return TypeDistrFundCommunityPool }
func (GovSubmitProposal) TypeURL() string                { return TypeGovSubmitProposal }
func (GovDeposit) TypeURL() string                       { return TypeGovDeposit }
func (GovVote) TypeURL() string                          { return TypeGovVote }
func (GovVoteWeighted) TypeURL() string                  { return TypeGovVoteWeighted }
func (BridgeConfirmBtcDeposit) TypeURL() string          { return TypeBridgeConfirmBtcDeposit }
func (BridgeRegisterBtcDepositAddress) TypeURL() string  { return TypeBridgeRegisterBtcDepositAddress }
func (BridgeRegisterReserveAddress) TypeURL() string     { return TypeBridgeRegisterReserveAddress }
func (BridgeBootstrapFragment) TypeURL() string          { return TypeBridgeBootstrapFragment }
func (BridgeWithdrawBtcRequest) TypeURL() string         { return TypeBridgeWithdrawBtcRequest }
func (BridgeWithdrawTxSigned) TypeURL() string           { return TypeBridgeWithdrawTxSigned }
func (BridgeWithdrawTxFinal) TypeURL() string            { return TypeBridgeWithdrawTxFinal }
func (BridgeConfirmBtcWithdraw) TypeURL() string         { return TypeBridgeConfirmBtcWithdraw }
func (BridgeProposeSweepAddress) TypeURL() string        { return TypeBridgeProposeSweepAddress }
func (BridgeUnsignedTxSweep) TypeURL() string            { return TypeBridgeUnsignedTxSweep }
func (BridgeUnsignedTxRefund) TypeURL() string           { return TypeBridgeUnsignedTxRefund }
func (BridgeSignRefund) TypeURL() string                 { return TypeBridgeSignRefund }
func (BridgeSignSweep) TypeURL() string                  { return TypeBridgeSignSweep }
func (BridgeBroadcastTxRefund) TypeURL() string          { return TypeBridgeBroadcastTxRefund }
func (BridgeBroadcastTxSweep) TypeURL() string           { return TypeBridgeBroadcastTxSweep }
func (BridgeSweepProposal) TypeURL() string              { return TypeBridgeSweepProposal }
func (ZkosTransferTx) TypeURL() string                   { return TypeZkosTransferTx }
func (ZkosMintBurnTradingBtc) TypeURL() string           { return TypeZkosMintBurnTradingBtc }
func (m Unknown) TypeURL() string                        { return m.URL }

func (BankSend) isMessage()                         {}
func (BankMultiSend) isMessage()                    {}
func (BankSendAuthorization) isMessage()            {}
func (StakingDelegate) isMessage()                  {}
func (StakingUndelegate) isMessage()                {}
func (StakingBeginRedelegate) isMessage()           {}
func (DistrWithdrawDelegatorReward) isMessage()     {}
func (DistrWithdrawValidatorCommission) isMessage() {}
func (DistrSetWithdrawAddress) isMessage()          {}
func (DistrFundCommunityPool) isMessage()           {}
func (GovSubmitProposal) isMessage()                {}
func (GovDeposit) isMessage()                       {}
func (GovVote) isMessage()                          {}
func (GovVoteWeighted) isMessage()                  {}
func (BridgeConfirmBtcDeposit) isMessage()          {}
func (BridgeRegisterBtcDepositAddress) isMessage()  {}
func (BridgeRegisterReserveAddress) isMessage()     {}
func (BridgeBootstrapFragment) isMessage()          {}
func (BridgeWithdrawBtcRequest) isMessage()         {}
func (BridgeWithdrawTxSigned) isMessage()           {}
func (BridgeWithdrawTxFinal) isMessage()            {}
func (BridgeConfirmBtcWithdraw) isMessage()         {}
func (BridgeProposeSweepAddress) isMessage()        {}
func (BridgeUnsignedTxSweep) isMessage()            {}
func (BridgeUnsignedTxRefund) isMessage()           {}
func (BridgeSignRefund) isMessage()                 {}
func (BridgeSignSweep) isMessage()                  {}
func (BridgeBroadcastTxRefund) isMessage()          {}
func (BridgeBroadcastTxSweep) isMessage()           {}
func (BridgeSweepProposal) isMessage()              {}
func (ZkosTransferTx) isMessage()                   {}
func (ZkosMintBurnTradingBtc) isMessage()           {}
func (Unknown) isMessage()                          {}
