package nyks

// MsgConfirmBtcDeposit is an oracle attestation of a BTC deposit to a reserve.
type MsgConfirmBtcDeposit struct {
	ReserveAddress         string `json:"reserveAddress"`
	DepositAmount          uint64 `json:"depositAmount"`
	Height                 uint64 `json:"height"`
	Hash                   string `json:"hash"`
	TwilightDepositAddress string `json:"twilightDepositAddress"`
	OracleAddress          string `json:"oracleAddress"`
}

func (m *MsgConfirmBtcDeposit) fields() []field {
	return []field{
		{num: 1, str: &m.ReserveAddress},
		{num: 2, u64: &m.DepositAmount},
		{num: 3, u64: &m.Height},
		{num: 4, str: &m.Hash},
		{num: 5, str: &m.TwilightDepositAddress},
		{num: 6, str: &m.OracleAddress},
	}
}

func (m *MsgConfirmBtcDeposit) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgConfirmBtcDeposit) Marshal() []byte { return marshal(m) }

type MsgRegisterBtcDepositAddress struct {
	BtcDepositAddress     string `json:"btcDepositAddress"`
	BtcSatoshiTestAmount  uint64 `json:"btcSatoshiTestAmount"`
	TwilightStakingAmount uint64 `json:"twilightStakingAmount"`
	TwilightAddress       string `json:"twilightAddress"`
}

func (m *MsgRegisterBtcDepositAddress) fields() []field {
	return []field{
		{num: 1, str: &m.BtcDepositAddress},
		{num: 2, u64: &m.BtcSatoshiTestAmount},
		{num: 3, u64: &m.TwilightStakingAmount},
		{num: 4, str: &m.TwilightAddress},
	}
}

func (m *MsgRegisterBtcDepositAddress) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgRegisterBtcDepositAddress) Marshal() []byte { return marshal(m) }

type MsgRegisterReserveAddress struct {
	FragmentID     uint64 `json:"fragmentId"`
	ReserveScript  string `json:"reserveScript"`
	ReserveAddress string `json:"reserveAddress"`
	JudgeAddress   string `json:"judgeAddress"`
}

func (m *MsgRegisterReserveAddress) fields() []field {
	return []field{
		{num: 1, u64: &m.FragmentID},
		{num: 2, str: &m.ReserveScript},
		{num: 3, str: &m.ReserveAddress},
		{num: 4, str: &m.JudgeAddress},
	}
}

func (m *MsgRegisterReserveAddress) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgRegisterReserveAddress) Marshal() []byte { return marshal(m) }

type MsgBootstrapFragment struct {
	JudgeAddress         string `json:"judgeAddress"`
	NumOfSigners         uint64 `json:"numOfSigners"`
	Threshold            uint64 `json:"threshold"`
	SignerApplicationFee uint64 `json:"signerApplicationFee"`
	FragmentFeeBips      uint64 `json:"fragmentFeeBips"`
	ArbitraryData        string `json:"arbitraryData"`
}

func (m *MsgBootstrapFragment) fields() []field {
	return []field{
		{num: 1, str: &m.JudgeAddress},
		{num: 2, u64: &m.NumOfSigners},
		{num: 3, u64: &m.Threshold},
		{num: 4, u64: &m.SignerApplicationFee},
		{num: 5, u64: &m.FragmentFeeBips},
		{num: 6, str: &m.ArbitraryData},
	}
}

func (m *MsgBootstrapFragment) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgBootstrapFragment) Marshal() []byte { return marshal(m) }

// MsgWithdrawBtcRequest asks a reserve to pay WithdrawAmount sats to WithdrawAddress.
type MsgWithdrawBtcRequest struct {
	WithdrawAddress string `json:"withdrawAddress"`
	ReserveID       uint64 `json:"reserveId"`
	WithdrawAmount  uint64 `json:"withdrawAmount"`
	TwilightAddress string `json:"twilightAddress"`
}

func (m *MsgWithdrawBtcRequest) fields() []field {
	return []field{
		{num: 1, str: &m.WithdrawAddress},
		{num: 2, u64: &m.ReserveID},
		{num: 3, u64: &m.WithdrawAmount},
		{num: 4, str: &m.TwilightAddress},
	}
}

func (m *MsgWithdrawBtcRequest) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgWithdrawBtcRequest) Marshal() []byte { return marshal(m) }

type MsgWithdrawTxSigned struct {
	Creator          string `json:"creator"`
	ValidatorAddress string `json:"validatorAddress"`
	BtcOracleAddress string `json:"btcOracleAddress"`
	SignedWithdrawTx string `json:"signedWithdrawTx"`
}

func (m *MsgWithdrawTxSigned) fields() []field {
	return []field{
		{num: 1, str: &m.Creator},
		{num: 2, str: &m.ValidatorAddress},
		{num: 3, str: &m.BtcOracleAddress},
		{num: 4, str: &m.SignedWithdrawTx},
	}
}

func (m *MsgWithdrawTxSigned) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgWithdrawTxSigned) Marshal() []byte { return marshal(m) }

type MsgWithdrawTxFinal struct {
	Creator      string `json:"creator"`
	JudgeAddress string `json:"judgeAddress"`
	BtcTx        string `json:"btcTx"`
}

func (m *MsgWithdrawTxFinal) fields() []field {
	return []field{
		{num: 1, str: &m.Creator},
		{num: 2, str: &m.JudgeAddress},
		{num: 3, str: &m.BtcTx},
	}
}

func (m *MsgWithdrawTxFinal) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgWithdrawTxFinal) Marshal() []byte { return marshal(m) }

type MsgConfirmBtcWithdraw struct {
	JudgeAddress string `json:"judgeAddress"`
	Height       uint64 `json:"height"`
	Hash         string `json:"hash"`
}

func (m *MsgConfirmBtcWithdraw) fields() []field {
	return []field{
		{num: 1, str: &m.JudgeAddress},
		{num: 2, u64: &m.Height},
		{num: 3, str: &m.Hash},
	}
}

func (m *MsgConfirmBtcWithdraw) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgConfirmBtcWithdraw) Marshal() []byte { return marshal(m) }

type MsgProposeSweepAddress struct {
	BtcAddress   string `json:"btcAddress"`
	BtcScript    string `json:"btcScript"`
	ReserveID    uint64 `json:"reserveId"`
	RoundID      uint64 `json:"roundId"`
	JudgeAddress string `json:"judgeAddress"`
}

func (m *MsgProposeSweepAddress) fields() []field {
	return []field{
		{num: 1, str: &m.BtcAddress},
		{num: 2, str: &m.BtcScript},
		{num: 3, u64: &m.ReserveID},
		{num: 4, u64: &m.RoundID},
		{num: 5, str: &m.JudgeAddress},
	}
}

func (m *MsgProposeSweepAddress) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgProposeSweepAddress) Marshal() []byte { return marshal(m) }

type MsgUnsignedTxSweep struct {
	TxID               string `json:"txId"`
	BtcUnsignedSweepTx string `json:"btcUnsignedSweepTx"`
	ReserveID          uint64 `json:"reserveId"`
	RoundID            uint64 `json:"roundId"`
	JudgeAddress       string `json:"judgeAddress"`
}

func (m *MsgUnsignedTxSweep) fields() []field {
	return []field{
		{num: 1, str: &m.TxID},
		{num: 2, str: &m.BtcUnsignedSweepTx},
		{num: 3, u64: &m.ReserveID},
		{num: 4, u64: &m.RoundID},
		{num: 5, str: &m.JudgeAddress},
	}
}

func (m *MsgUnsignedTxSweep) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgUnsignedTxSweep) Marshal() []byte { return marshal(m) }

type MsgUnsignedTxRefund struct {
	ReserveID           uint64 `json:"reserveId"`
	RoundID             uint64 `json:"roundId"`
	BtcUnsignedRefundTx string `json:"btcUnsignedRefundTx"`
	JudgeAddress        string `json:"judgeAddress"`
}

func (m *MsgUnsignedTxRefund) fields() []field {
	return []field{
		{num: 1, u64: &m.ReserveID},
		{num: 2, u64: &m.RoundID},
		{num: 3, str: &m.BtcUnsignedRefundTx},
		{num: 4, str: &m.JudgeAddress},
	}
}

func (m *MsgUnsignedTxRefund) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgUnsignedTxRefund) Marshal() []byte { return marshal(m) }

type MsgSignRefund struct {
	ReserveID        uint64   `json:"reserveId"`
	RoundID          uint64   `json:"roundId"`
	SignerPublicKey  string   `json:"signerPublicKey"`
	RefundSignature  []string `json:"refundSignature"`
	BtcOracleAddress string   `json:"btcOracleAddress"`
}

func (m *MsgSignRefund) fields() []field {
	return []field{
		{num: 1, u64: &m.ReserveID},
		{num: 2, u64: &m.RoundID},
		{num: 3, str: &m.SignerPublicKey},
		{num: 4, strs: &m.RefundSignature},
		{num: 5, str: &m.BtcOracleAddress},
	}
}

func (m *MsgSignRefund) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgSignRefund) Marshal() []byte { return marshal(m) }

type MsgSignSweep struct {
	ReserveID        uint64   `json:"reserveId"`
	RoundID          uint64   `json:"roundId"`
	SignerPublicKey  string   `json:"signerPublicKey"`
	SweepSignature   []string `json:"sweepSignature"`
	BtcOracleAddress string   `json:"btcOracleAddress"`
}

func (m *MsgSignSweep) fields() []field {
	return []field{
		{num: 1, u64: &m.ReserveID},
		{num: 2, u64: &m.RoundID},
		{num: 3, str: &m.SignerPublicKey},
		{num: 4, strs: &m.SweepSignature},
		{num: 5, str: &m.BtcOracleAddress},
	}
}

func (m *MsgSignSweep) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgSignSweep) Marshal() []byte { return marshal(m) }

type MsgBroadcastTxRefund struct {
	ReserveID      uint64 `json:"reserveId"`
	RoundID        uint64 `json:"roundId"`
	SignedRefundTx string `json:"signedRefundTx"`
	JudgeAddress   string `json:"judgeAddress"`
}

func (m *MsgBroadcastTxRefund) fields() []field {
	return []field{
		{num: 1, u64: &m.ReserveID},
		{num: 2, u64: &m.RoundID},
		{num: 3, str: &m.SignedRefundTx},
		{num: 4, str: &m.JudgeAddress},
	}
}

func (m *MsgBroadcastTxRefund) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgBroadcastTxRefund) Marshal() []byte { return marshal(m) }

type MsgBroadcastTxSweep struct {
	ReserveID     uint64 `json:"reserveId"`
	RoundID       uint64 `json:"roundId"`
	SignedSweepTx string `json:"signedSweepTx"`
	JudgeAddress  string `json:"judgeAddress"`
}

func (m *MsgBroadcastTxSweep) fields() []field {
	return []field{
		{num: 1, u64: &m.ReserveID},
		{num: 2, u64: &m.RoundID},
		{num: 3, str: &m.SignedSweepTx},
		{num: 4, str: &m.JudgeAddress},
	}
}

func (m *MsgBroadcastTxSweep) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgBroadcastTxSweep) Marshal() []byte { return marshal(m) }

type MsgSweepProposal struct {
	ReserveID             uint64 `json:"reserveId"`
	NewReserveAddress     string `json:"newReserveAddress"`
	JudgeAddress          string `json:"judgeAddress"`
	BtcBlockNumber        uint64 `json:"btcBlockNumber"`
	BtcRelayCapacityValue uint64 `json:"btcRelayCapacityValue"`
	BtcTxHash             string `json:"btcTxHash"`
	UnlockHeight          uint64 `json:"unlockHeight"`
	RoundID               uint64 `json:"roundId"`
}

func (m *MsgSweepProposal) fields() []field {
	return []field{
		{num: 1, u64: &m.ReserveID},
		{num: 2, str: &m.NewReserveAddress},
		{num: 3, str: &m.JudgeAddress},
		{num: 4, u64: &m.BtcBlockNumber},
		{num: 5, u64: &m.BtcRelayCapacityValue},
		{num: 6, str: &m.BtcTxHash},
		{num: 7, u64: &m.UnlockHeight},
		{num: 8, u64: &m.RoundID},
	}
}

func (m *MsgSweepProposal) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgSweepProposal) Marshal() []byte { return marshal(m) }
