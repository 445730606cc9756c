// Package model defines the records the indexer reads from the chain and writes to storage.
package model

import "time"

// Network names the chain an indexer instance follows, e.g. "mainnet".
type Network string

// Block is a chain block with its transactions still base64-encoded.
type Block struct {
	Height uint64
	Time   time.Time
	Txs    []string
}
