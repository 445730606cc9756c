// Package zkos decodes the confidential transactions carried inside MsgTransferTx.
package zkos

// IOType tags an input or output with the asset representation it carries.
type IOType uint32

const (
	IOCoin  IOType = 0
	IOMemo  IOType = 1
	IOState IOType = 2
)

func (t IOType) String() string {
	switch t {
	case IOCoin:
		return "coin"
	case IOMemo:
		return "memo"
	case IOState:
		return "state"
	default:
		return "unknown"
	}
}

// Variant identifies the transaction body.
type Variant uint32

const (
	VariantTransfer Variant = 0
	VariantScript   Variant = 1
	VariantMessage  Variant = 2
)

func (v Variant) String() string {
	switch v {
	case VariantTransfer:
		return "transfer"
	case VariantScript:
		return "script"
	case VariantMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Transaction is one of *Transfer, *Script or *Message.
type Transaction interface {
	Variant() Variant
	isTransaction()
}

type Utxo struct {
	TxID        [32]byte `json:"txid"`
	OutputIndex uint8    `json:"output_index"`
}

// DataItem is an opaque tagged value stored in memo data or state variables.
type DataItem struct {
	Kind  uint32 `json:"kind"`
	Bytes []byte `json:"bytes"`
}

// OutputCoin holds an ElGamal encryption (c||d) of the value to its owner.
type OutputCoin struct {
	Encrypt [64]byte `json:"encrypt"`
	Owner   string   `json:"owner"`
}

type OutputMemo struct {
	ScriptAddress string     `json:"script_address"`
	Owner         string     `json:"owner"`
	Commitment    [32]byte   `json:"commitment"`
	Data          []DataItem `json:"data,omitempty"`
	HasData       bool       `json:"-"`
	Timebounds    uint32     `json:"timebounds"`
}

type OutputState struct {
	Nonce          uint32     `json:"nonce"`
	ScriptAddress  string     `json:"script_address"`
	Owner          string     `json:"owner"`
	Commitment     [32]byte   `json:"commitment"`
	StateVariables []DataItem `json:"state_variables,omitempty"`
	HasVariables   bool       `json:"-"`
	Timebounds     uint32     `json:"timebounds"`
}

// Output carries exactly one of Coin, Memo or State, selected by Kind.
type Output struct {
	Kind  IOType       `json:"kind"`
	Coin  *OutputCoin  `json:"coin,omitempty"`
	Memo  *OutputMemo  `json:"memo,omitempty"`
	State *OutputState `json:"state,omitempty"`
}

// Owner returns the owner address of whichever body is set.
func (o Output) Owner() (string, bool) {
	switch o.Kind {
	case IOCoin:
		if o.Coin != nil {
			return o.Coin.Owner, true
		}
	case IOMemo:
		if o.Memo != nil {
			return o.Memo.Owner, true
		}
	case IOState:
		if o.State != nil {
			return o.State.Owner, true
		}
	}
	return "", false
}

// Input spends a previous output identified by Utxo.
type Input struct {
	Output
	Utxo    Utxo  `json:"utxo"`
	Witness uint8 `json:"witness"`
}

type Transfer struct {
	Version  uint64   `json:"version"`
	Maturity uint64   `json:"maturity"`
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	Proof    []byte   `json:"proof"`
}

type Script struct {
	Version   uint64   `json:"version"`
	Fee       uint64   `json:"fee"`
	Maturity  uint64   `json:"maturity"`
	Inputs    []Input  `json:"inputs"`
	Outputs   []Output `json:"outputs"`
	Program   []byte   `json:"program"`
	CallProof []byte   `json:"call_proof"`
	Proof     []byte   `json:"proof"`
	TxData    *string  `json:"tx_data,omitempty"`
}

type Message struct {
	Type    uint32 `json:"type"`
	Payload []byte `json:"payload"`
}

func (*Transfer) Variant() Variant { return VariantTransfer }
func (*Script) Variant() Variant   { return VariantScript }
func (*Message) Variant() Variant  { return VariantMessage }

func (*Transfer) isTransaction() {}
func (*Script) isTransaction()   {}
func (*Message) isTransaction()  {}
