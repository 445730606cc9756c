// Package envelope decodes the standard cosmos transaction container found in blocks.
package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	cmttypes "github.com/cometbft/cometbft/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

var (
	ErrBase64    = errors.New("malformed base64")
	ErrContainer = errors.New("malformed tx container")
	ErrBody      = errors.New("malformed tx body")
	ErrAuthInfo  = errors.New("malformed auth info")
	ErrMessage   = errors.New("malformed message")
)

// Tx is a decoded transaction. Messages keep the order of the body.
type Tx struct {
	Hash       string
	Body       *txtypes.TxBody
	AuthInfo   *txtypes.AuthInfo
	Signatures [][]byte
	Messages   []Message
}

type Decoder struct {
	registry *Registry
}

func NewDecoder(registry *Registry) *Decoder {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Decoder{registry: registry}
}

// Decode runs base64, container, body, auth info and then every message, stopping at
// the first stage that fails.
func (d *Decoder) Decode(b64 string) (*Tx, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBase64, err)
	}

	var container txtypes.TxRaw
	if err = container.Unmarshal(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContainer, err)
	}

	body := &txtypes.TxBody{}
	if err = body.Unmarshal(container.BodyBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBody, err)
	}

	authInfo := &txtypes.AuthInfo{}
	if err = authInfo.Unmarshal(container.AuthInfoBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthInfo, err)
	}

	messages := make([]Message, 0, len(body.Messages))
	for i, value := range body.Messages {
		if value == nil {
			continue
		}
		msg, err := d.registry.Decode(value)
		if err != nil {
			return nil, fmt.Errorf("decode message %d: %w", i, err)
		}
		messages = append(messages, msg)
	}

	return &Tx{
		Hash:       fmt.Sprintf("%X", cmttypes.Tx(raw).Hash()),
		Body:       body,
		AuthInfo:   authInfo,
		Signatures: container.Signatures,
		Messages:   messages,
	}, nil
}
