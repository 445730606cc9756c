package nyks

// MsgTransferTx carries a hex-encoded confidential transaction in TxByteCode.
type MsgTransferTx struct {
	TxID            string `json:"txId"`
	TxByteCode      string `json:"txByteCode"`
	TxFee           uint64 `json:"txFee"`
	ZkOracleAddress string `json:"zkOracleAddress"`
}

func (m *MsgTransferTx) fields() []field {
	return []field{
		{num: 1, str: &m.TxID},
		{num: 2, str: &m.TxByteCode},
		{num: 3, u64: &m.TxFee},
		{num: 4, str: &m.ZkOracleAddress},
	}
}

func (m *MsgTransferTx) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgTransferTx) Marshal() []byte { return marshal(m) }

// MsgMintBurnTradingBtc moves sats between a twilight address and its trading account.
// MintOrBurn is true for a mint.
type MsgMintBurnTradingBtc struct {
	MintOrBurn      bool   `json:"mintOrBurn"`
	BtcValue        uint64 `json:"btcValue"`
	QqAccount       string `json:"qqAccount"`
	EncryptScalar   string `json:"encryptScalar"`
	TwilightAddress string `json:"twilightAddress"`
}

func (m *MsgMintBurnTradingBtc) fields() []field {
	return []field{
		{num: 1, flag: &m.MintOrBurn},
		{num: 2, u64: &m.BtcValue},
		{num: 3, str: &m.QqAccount},
		{num: 4, str: &m.EncryptScalar},
		{num: 5, str: &m.TwilightAddress},
	}
}

func (m *MsgMintBurnTradingBtc) Unmarshal(b []byte) error { return unmarshal(b, m) }

func (m *MsgMintBurnTradingBtc) Marshal() []byte { return marshal(m) }
