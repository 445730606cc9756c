package zkos

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gtank/ristretto255"
)

const (
	addressNetworkSize  = 1
	addressKeySize      = 64
	addressChecksumSize = 4
	addressSize         = addressNetworkSize + addressKeySize + addressChecksumSize

	// AccountSize is the length of a serialized account: public key (gr, grsk)
	// followed by the ElGamal pair (c, d).
	AccountSize = 128
)

var (
	ErrMissingOutput  = errors.New("output body missing")
	ErrInvalidAddress = errors.New("invalid owner address")
	ErrInvalidPoint   = errors.New("invalid ristretto point")
)

// DerivationError means the cryptographic material of an output is malformed.
type DerivationError struct {
	Owner string
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("zkos: derive account for owner %q: %v", e.Owner, e.Err)
}

func (e *DerivationError) Unwrap() error { return e.Err }

// AccountDeriver turns an output into the canonical serialization of the account it creates.
type AccountDeriver interface {
	DeriveAccount(out Output) ([]byte, error)
}

// LedgerAccounts derives accounts from owner addresses and output commitments.
type LedgerAccounts struct{}

func (LedgerAccounts) DeriveAccount(out Output) ([]byte, error) {
	owner, ok := out.Owner()
	if !ok {
		return nil, &DerivationError{Err: ErrMissingOutput}
	}

	key, err := publicKey(owner)
	if err != nil {
		return nil, &DerivationError{Owner: owner, Err: err}
	}

	var pair [64]byte
	switch out.Kind {
	case IOCoin:
		pair = out.Coin.Encrypt
	case IOMemo:
		copy(pair[:32], out.Memo.Commitment[:])
	case IOState:
		copy(pair[:32], out.State.Commitment[:])
	}
	if err = validatePoints(pair[:]); err != nil {
		return nil, &DerivationError{Owner: owner, Err: err}
	}

	account := make([]byte, 0, AccountSize)
	account = append(account, key...)
	account = append(account, pair[:]...)
	return account, nil
}

// Identify derives the account created by out and returns its storage key.
func (l LedgerAccounts) Identify(out Output) (string, error) {
	account, err := l.DeriveAccount(out)
	if err != nil {
		return "", err
	}
	return AccountID(account), nil
}

// AccountID is the storage key of a serialized account.
func AccountID(account []byte) string {
	return hex.EncodeToString(account)
}

// publicKey extracts gr||grsk from a hex owner address: network byte, key, checksum.
func publicKey(owner string) ([]byte, error) {
	raw, err := hex.DecodeString(owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) != addressSize {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidAddress, len(raw))
	}
	key := raw[addressNetworkSize : addressNetworkSize+addressKeySize]
	if err = validatePoints(key); err != nil {
		return nil, err
	}
	return key, nil
}

func validatePoints(b []byte) error {
	for i := 0; i+32 <= len(b); i += 32 {
		if err := ristretto255.NewElement().Decode(b[i : i+32]); err != nil {
			return fmt.Errorf("%w at byte %d: %v", ErrInvalidPoint, i, err)
		}
	}
	return nil
}
