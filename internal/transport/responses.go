package transport

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type decodeRequest struct {
	TxByteCode string `json:"tx_byte_code"`
}

type decodeResponse struct {
	Success bool        `json:"success"`
	TxType  string      `json:"tx_type"`
	Data    interface{} `json:"data"`
	Program []string    `json:"program,omitempty"`
}

type transactionsResponse struct {
	Success          bool   `json:"success"`
	TAddress         string `json:"t_address"`
	TransactionCount uint64 `json:"transaction_count"`
}

type denomAmount struct {
	Amount uint64 `json:"amount"`
	Denom  string `json:"denom"`
	Block  uint64 `json:"block"`
}

type darkSats struct {
	QAddress  string  `json:"q_address"`
	Amount    uint64  `json:"amount"`
	AmountBTC float64 `json:"amount_btc"`
	Block     uint64  `json:"block"`
}

type litSats struct {
	Amount    uint64  `json:"amount"`
	AmountBTC float64 `json:"amount_btc"`
	Block     uint64  `json:"block"`
}

type qAddress struct {
	QqAccount string `json:"qq_account"`
	Block     uint64 `json:"block"`
}

type orderLog struct {
	Kind  string `json:"kind"`
	To    string `json:"to"`
	From  string `json:"from"`
	Block uint64 `json:"block"`
}

type fundsMovedResponse struct {
	Success    bool          `json:"success"`
	TAddress   string        `json:"t_address"`
	FundsMoved []denomAmount `json:"funds_moved"`
}

type darkBurnedResponse struct {
	Success        bool       `json:"success"`
	TAddress       string     `json:"t_address"`
	DarkBurnedSats []darkSats `json:"dark_burned_sats"`
}

type darkMintedResponse struct {
	Success        bool       `json:"success"`
	TAddress       string     `json:"t_address"`
	DarkMintedSats []darkSats `json:"dark_minted_sats"`
}

type litMintedResponse struct {
	Success       bool      `json:"success"`
	TAddress      string    `json:"t_address"`
	LitMintedSats []litSats `json:"lit_minted_sats"`
}

type litBurnedResponse struct {
	Success       bool      `json:"success"`
	TAddress      string    `json:"t_address"`
	LitBurnedSats []litSats `json:"lit_burned_sats"`
}

type qAddressesResponse struct {
	Success    bool       `json:"success"`
	TAddress   string     `json:"t_address"`
	QAddresses []qAddress `json:"q_addresses"`
}

type gasUsedResponse struct {
	Success  bool          `json:"success"`
	TAddress string        `json:"t_address"`
	GasUsed  []denomAmount `json:"gas_used"`
}

type ordersResponse struct {
	Success  bool       `json:"success"`
	TAddress string     `json:"t_address"`
	Orders   []orderLog `json:"orders"`
}

type addressAllResponse struct {
	Success          bool          `json:"success"`
	TAddress         string        `json:"t_address"`
	TransactionCount uint64        `json:"transaction_count"`
	FundsMoved       []denomAmount `json:"funds_moved"`
	DarkBurnedSats   []darkSats    `json:"dark_burned_sats"`
	DarkMintedSats   []darkSats    `json:"dark_minted_sats"`
	LitMintedSats    []litSats     `json:"lit_minted_sats"`
	LitBurnedSats    []litSats     `json:"lit_burned_sats"`
	QAddresses       []qAddress    `json:"q_addresses"`
	GasUsed          []denomAmount `json:"gas_used"`
	Orders           []orderLog    `json:"orders"`
}

func btc(sats uint64) float64 {
	return btcutil.Amount(sats).ToBTC()
}

func fundsMovedData(records []model.FundsMoved) []denomAmount {
	out := make([]denomAmount, 0, len(records))
	for _, r := range records {
		out = append(out, denomAmount{Amount: r.Amount, Denom: r.Denom, Block: r.Block})
	}
	return out
}

func gasUsedData(records []model.GasUsage) []denomAmount {
	out := make([]denomAmount, 0, len(records))
	for _, r := range records {
		out = append(out, denomAmount{Amount: r.Amount, Denom: r.Denom, Block: r.Block})
	}
	return out
}

func darkSatsData(records []model.DarkSats) []darkSats {
	out := make([]darkSats, 0, len(records))
	for _, r := range records {
		out = append(out, darkSats{QAddress: r.QqAccount, Amount: r.Amount, AmountBTC: btc(r.Amount), Block: r.Block})
	}
	return out
}

func litSatsData(records []model.LitSats) []litSats {
	out := make([]litSats, 0, len(records))
	for _, r := range records {
		out = append(out, litSats{Amount: r.Amount, AmountBTC: btc(r.Amount), Block: r.Block})
	}
	return out
}

func qAddressData(records []model.AddressMapping) []qAddress {
	out := make([]qAddress, 0, len(records))
	for _, r := range records {
		out = append(out, qAddress{QqAccount: r.QqAccount, Block: r.Block})
	}
	return out
}

func orderLogData(records []model.OrderLog) []orderLog {
	out := make([]orderLog, 0, len(records))
	for _, r := range records {
		out = append(out, orderLog{Kind: string(r.Kind), To: r.To, From: r.From, Block: r.Block})
	}
	return out
}
