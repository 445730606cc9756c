package zkos

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTruncated      = errors.New("buffer truncated")
	ErrUnknownVariant = errors.New("discriminant out of range")
	ErrInvalidHex     = errors.New("invalid hex encoding")
)

// FormatError reports a framing problem: the bytes do not follow the wire layout.
type FormatError struct {
	Field  string
	Offset int
	Err    error
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("zkos: decode %s at offset %d: %v (%s)", e.Field, e.Offset, e.Err, e.Detail)
	}
	return fmt.Sprintf("zkos: decode %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Decode parses a confidential transaction with the default codec.
func Decode(b []byte) (Transaction, error) {
	return BincodeCodec{}.Decode(b)
}

// DecodeHex accepts the hex form found in MsgTransferTx, with or without a 0x prefix.
func DecodeHex(s string) (Transaction, error) {
	raw, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// ParseHex returns the bytes of a hex transaction, with or without a 0x prefix.
func ParseHex(s string) ([]byte, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, &FormatError{Field: "hex", Err: ErrInvalidHex, Detail: err.Error()}
	}
	return raw, nil
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) truncated(field string, want uint64) error {
	return &FormatError{
		Field:  field,
		Offset: r.off,
		Err:    ErrTruncated,
		Detail: fmt.Sprintf("need %d bytes, have %d", want, r.remaining()),
	}
}

func (r *reader) take(field string, n uint64) ([]byte, error) {
	if n > uint64(r.remaining()) {
		return nil, r.truncated(field, n)
	}
	out := r.buf[r.off : r.off+int(n)]
	r.off += int(n)
	return out, nil
}

func (r *reader) u8(field string) (uint8, error) {
	b, err := r.take(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u32(field string) (uint32, error) {
	b, err := r.take(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) u64(field string) (uint64, error) {
	b, err := r.take(field, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) bytes(field string) ([]byte, error) {
	n, err := r.u64(field + ".len")
	if err != nil {
		return nil, err
	}
	b, err := r.take(field, n)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (r *reader) str(field string) (string, error) {
	b, err := r.bytes(field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) fixed(field string, dst []byte) error {
	b, err := r.take(field, uint64(len(dst)))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

func (r *reader) option(field string) (bool, error) {
	start := r.off
	tag, err := r.u8(field)
	if err != nil {
		return false, err
	}
	switch tag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &FormatError{Field: field, Offset: start, Err: ErrUnknownVariant, Detail: fmt.Sprintf("option tag %d", tag)}
	}
}

// count reads a sequence length and rejects lengths that cannot fit the remaining
// bytes, given the smallest encoding of one element.
func (r *reader) count(field string, minElem uint64) (int, error) {
	n, err := r.u64(field + ".len")
	if err != nil {
		return 0, err
	}
	if minElem > 0 && n > uint64(r.remaining())/minElem {
		return 0, r.truncated(field, n*minElem)
	}
	return int(n), nil
}

func (r *reader) variant(field string, max uint32) (uint32, error) {
	start := r.off
	v, err := r.u32(field)
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, &FormatError{Field: field, Offset: start, Err: ErrUnknownVariant, Detail: fmt.Sprintf("value %d", v)}
	}
	return v, nil
}

func (r *reader) transaction() (Transaction, error) {
	v, err := r.variant("transaction", uint32(VariantMessage))
	if err != nil {
		return nil, err
	}

	switch Variant(v) {
	case VariantTransfer:
		return r.transfer()
	case VariantScript:
		return r.script()
	default:
		return r.message()
	}
}

func (r *reader) transfer() (*Transfer, error) {
	tx := &Transfer{}
	var err error
	if tx.Version, err = r.u64("transfer.version"); err != nil {
		return nil, err
	}
	if tx.Maturity, err = r.u64("transfer.maturity"); err != nil {
		return nil, err
	}
	if tx.Inputs, err = r.inputs("transfer.inputs"); err != nil {
		return nil, err
	}
	if tx.Outputs, err = r.outputs("transfer.outputs"); err != nil {
		return nil, err
	}
	if tx.Proof, err = r.bytes("transfer.proof"); err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *reader) script() (*Script, error) {
	tx := &Script{}
	var err error
	if tx.Version, err = r.u64("script.version"); err != nil {
		return nil, err
	}
	if tx.Fee, err = r.u64("script.fee"); err != nil {
		return nil, err
	}
	if tx.Maturity, err = r.u64("script.maturity"); err != nil {
		return nil, err
	}
	if tx.Inputs, err = r.inputs("script.inputs"); err != nil {
		return nil, err
	}
	if tx.Outputs, err = r.outputs("script.outputs"); err != nil {
		return nil, err
	}
	if tx.Program, err = r.bytes("script.program"); err != nil {
		return nil, err
	}
	if tx.CallProof, err = r.bytes("script.call_proof"); err != nil {
		return nil, err
	}
	if tx.Proof, err = r.bytes("script.proof"); err != nil {
		return nil, err
	}
	some, err := r.option("script.tx_data")
	if err != nil {
		return nil, err
	}
	if some {
		data, err := r.str("script.tx_data")
		if err != nil {
			return nil, err
		}
		tx.TxData = &data
	}
	return tx, nil
}

func (r *reader) message() (*Message, error) {
	msg := &Message{}
	var err error
	if msg.Type, err = r.u32("message.type"); err != nil {
		return nil, err
	}
	if msg.Payload, err = r.bytes("message.payload"); err != nil {
		return nil, err
	}
	return msg, nil
}

// Smallest element encodings. A memo with empty strings and no data is the
// shortest output: kind + script address + owner + commitment + option tag + timebounds.
// An input adds utxo txid, output index and witness.
const (
	minOutputSize = 4 + 8 + 8 + 32 + 1 + 4
	minInputSize  = minOutputSize + 32 + 1 + 1
	minItemSize   = 4 + 8
)

func (r *reader) inputs(field string) ([]Input, error) {
	n, err := r.count(field, minInputSize)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]Input, 0, n)
	for i := 0; i < n; i++ {
		in, err := r.input(fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func (r *reader) input(field string) (Input, error) {
	var in Input
	out, err := r.output(field)
	if err != nil {
		return in, err
	}
	in.Output = out
	if err = r.fixed(field+".utxo.txid", in.Utxo.TxID[:]); err != nil {
		return in, err
	}
	if in.Utxo.OutputIndex, err = r.u8(field + ".utxo.output_index"); err != nil {
		return in, err
	}
	if in.Witness, err = r.u8(field + ".witness"); err != nil {
		return in, err
	}
	return in, nil
}

func (r *reader) outputs(field string) ([]Output, error) {
	n, err := r.count(field, minOutputSize)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]Output, 0, n)
	for i := 0; i < n; i++ {
		o, err := r.output(fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *reader) output(field string) (Output, error) {
	var out Output
	kind, err := r.variant(field+".kind", uint32(IOState))
	if err != nil {
		return out, err
	}
	out.Kind = IOType(kind)

	switch out.Kind {
	case IOCoin:
		coin := &OutputCoin{}
		if err = r.fixed(field+".coin.encrypt", coin.Encrypt[:]); err != nil {
			return out, err
		}
		if coin.Owner, err = r.str(field + ".coin.owner"); err != nil {
			return out, err
		}
		out.Coin = coin
	case IOMemo:
		memo := &OutputMemo{}
		if memo.ScriptAddress, err = r.str(field + ".memo.script_address"); err != nil {
			return out, err
		}
		if memo.Owner, err = r.str(field + ".memo.owner"); err != nil {
			return out, err
		}
		if err = r.fixed(field+".memo.commitment", memo.Commitment[:]); err != nil {
			return out, err
		}
		if memo.HasData, memo.Data, err = r.items(field + ".memo.data"); err != nil {
			return out, err
		}
		if memo.Timebounds, err = r.u32(field + ".memo.timebounds"); err != nil {
			return out, err
		}
		out.Memo = memo
	case IOState:
		state := &OutputState{}
		if state.Nonce, err = r.u32(field + ".state.nonce"); err != nil {
			return out, err
		}
		if state.ScriptAddress, err = r.str(field + ".state.script_address"); err != nil {
			return out, err
		}
		if state.Owner, err = r.str(field + ".state.owner"); err != nil {
			return out, err
		}
		if err = r.fixed(field+".state.commitment", state.Commitment[:]); err != nil {
			return out, err
		}
		if state.HasVariables, state.StateVariables, err = r.items(field + ".state.state_variables"); err != nil {
			return out, err
		}
		if state.Timebounds, err = r.u32(field + ".state.timebounds"); err != nil {
			return out, err
		}
		out.State = state
	}
	return out, nil
}

func (r *reader) items(field string) (bool, []DataItem, error) {
	some, err := r.option(field)
	if err != nil || !some {
		return false, nil, err
	}
	n, err := r.count(field, minItemSize)
	if err != nil || n == 0 {
		return true, nil, err
	}
	items := make([]DataItem, 0, n)
	for i := 0; i < n; i++ {
		var item DataItem
		name := fmt.Sprintf("%s[%d]", field, i)
		if item.Kind, err = r.u32(name + ".kind"); err != nil {
			return true, nil, err
		}
		if item.Bytes, err = r.bytes(name + ".bytes"); err != nil {
			return true, nil, err
		}
		items = append(items, item)
	}
	return true, items, nil
}
