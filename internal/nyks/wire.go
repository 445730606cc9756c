// Package nyks holds the twilight chain's own protobuf messages (bridge and zkos modules).
package nyks

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrMalformed = errors.New("malformed protobuf")
	ErrWireType  = errors.New("unexpected wire type")
)

// field binds a protobuf field number to exactly one destination.
type field struct {
	num  protowire.Number
	str  *string
	u64  *uint64
	flag *bool
	strs *[]string
}

type message interface {
	fields() []field
}

func unmarshal(b []byte, m message) error {
	byNum := make(map[protowire.Number]field)
	for _, f := range m.fields() {
		byNum[f.num] = f
	}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: tag: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		f, known := byNum[num]
		if !known {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		n, err := f.consume(typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (f field) consume(typ protowire.Type, b []byte) (int, error) {
	switch {
	case f.str != nil || f.strs != nil:
		if typ != protowire.BytesType {
			return 0, fmt.Errorf("%w: field %d: got %d, want bytes", ErrWireType, f.num, typ)
		}
		v, n := protowire.ConsumeString(b)
		if n < 0 {
			return 0, fmt.Errorf("%w: field %d: %v", ErrMalformed, f.num, protowire.ParseError(n))
		}
		if f.str != nil {
			*f.str = v
		} else {
			*f.strs = append(*f.strs, v)
		}
		return n, nil
	default:
		if typ != protowire.VarintType {
			return 0, fmt.Errorf("%w: field %d: got %d, want varint", ErrWireType, f.num, typ)
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, fmt.Errorf("%w: field %d: %v", ErrMalformed, f.num, protowire.ParseError(n))
		}
		if f.u64 != nil {
			*f.u64 = v
		} else {
			*f.flag = protowire.DecodeBool(v)
		}
		return n, nil
	}
}

// marshal writes non-default fields in field order, like the generated code does.
func marshal(m message) []byte {
	var b []byte
	for _, f := range m.fields() {
		switch {
		case f.str != nil:
			if *f.str != "" {
				b = protowire.AppendTag(b, f.num, protowire.BytesType)
				b = protowire.AppendString(b, *f.str)
			}
		case f.strs != nil:
			for _, s := range *f.strs {
				b = protowire.AppendTag(b, f.num, protowire.BytesType)
				b = protowire.AppendString(b, s)
			}
		case f.u64 != nil:
			if *f.u64 != 0 {
				b = protowire.AppendTag(b, f.num, protowire.VarintType)
				b = protowire.AppendVarint(b, *f.u64)
			}
		case f.flag != nil:
			if *f.flag {
				b = protowire.AppendTag(b, f.num, protowire.VarintType)
				b = protowire.AppendVarint(b, protowire.EncodeBool(true))
			}
		}
	}
	return b
}
