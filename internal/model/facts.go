package model

// TransactionRecord marks that Address originated a transaction at Block.
// Keyed by (Address, Block); duplicates are ignored.
type TransactionRecord struct {
	Address string
	Block   uint64
}

// FundsMoved accumulates Amount received by Address in Denom at Block.
type FundsMoved struct {
	Address string
	Denom   string
	Amount  uint64
	Block   uint64
}

// DarkSats accumulates sats minted to or burned from a trading account.
// Keyed by (Address, QqAccount, Block).
type DarkSats struct {
	Address   string
	QqAccount string
	Amount    uint64
	Block     uint64
}

// LitSats accumulates BTC deposited to or withdrawn from the chain by Address.
type LitSats struct {
	Address string
	Amount  uint64
	Block   uint64
}

// AddressMapping links a twilight address to one of its zk accounts. Never updated.
type AddressMapping struct {
	Address   string
	QqAccount string
	Block     uint64
}

// GasUsage accumulates fees paid by the first signer of a transaction.
type GasUsage struct {
	Address string
	Denom   string
	Amount  uint64
	Block   uint64
}

// OrderKind classifies a confidential transfer by its input and output kinds.
type OrderKind string

const (
	OrderTrading OrderKind = "trading"
	OrderOpen    OrderKind = "order_open"
	OrderClose   OrderKind = "order_close"
)

// OrderLog is an append-only entry keyed by (To, From, Block) within its Kind.
type OrderLog struct {
	Kind  OrderKind
	To    string
	From  string
	Block uint64
}

// RawTx archives a decoded confidential transaction as JSON, keyed by (Hash, Block).
type RawTx struct {
	Hash  string
	Block uint64
	Body  string
}
