package envelope

import (
	"encoding/hex"
	"fmt"
	"strings"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// DecodeFunc turns the bytes of an Any into a typed message.
type DecodeFunc func(b []byte) (Message, error)

// Rule maps one type identifier to its decoder.
type Rule struct {
	TypeURL string
	Decode  DecodeFunc
}

// Registry dispatches Any values by type identifier. The first rule registered for
// an identifier wins.
type Registry struct {
	rules []Rule
	index map[string]int
}

// NewRegistry builds a registry from rules, in order.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{index: make(map[string]int, len(rules))}
	for _, rule := range rules {
		url := NormalizeTypeURL(rule.TypeURL)
		if _, exists := r.index[url]; exists {
			continue
		}
		r.index[url] = len(r.rules)
		r.rules = append(r.rules, Rule{TypeURL: url, Decode: rule.Decode})
	}
	return r
}

// DefaultRegistry knows the cosmos bank, staking, distribution and gov messages and
// the nyks bridge and zkos messages.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultRules()...)
}

// NormalizeTypeURL strips the leading "/" that Any type URLs usually carry.
func NormalizeTypeURL(url string) string {
	return strings.TrimPrefix(url, "/")
}

// Types lists registered identifiers in registration order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule.TypeURL)
	}
	return out
}

// Decode returns the typed message for a registered identifier and Unknown otherwise.
// Only malformed bytes of a registered type are an error.
func (r *Registry) Decode(value *codectypes.Any) (Message, error) {
	i, ok := r.index[NormalizeTypeURL(value.TypeUrl)]
	if !ok {
		return Unknown{URL: value.TypeUrl, RawHex: hex.EncodeToString(value.Value)}, nil
	}

	rule := r.rules[i]
	msg, err := rule.Decode(value.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMessage, rule.TypeURL, err)
	}
	return msg, nil
}

type unmarshaler[T any] interface {
	*T
	Unmarshal(b []byte) error
}

func decodeAs[T any, P unmarshaler[T]](wrap func(P) Message) DecodeFunc {
	return func(b []byte) (Message, error) {
		p := P(new(T))
		if err := p.Unmarshal(b); err != nil {
			return nil, err
		}
		return wrap(p), nil
	}
}
