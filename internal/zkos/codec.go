package zkos

// Codec converts confidential transactions to and from bytes. BincodeCodec is the
// only scheme the chain uses today; another layout plugs in by implementing Codec.
type Codec interface {
	Decode(b []byte) (Transaction, error)
	Encode(tx Transaction) ([]byte, error)
}

// BincodeCodec reads the fixed little-endian layout: u32 variant tags, u64 length
// prefixes for sequences and strings, u8 option tags. Trailing bytes are ignored.
type BincodeCodec struct{}

func (BincodeCodec) Decode(b []byte) (Transaction, error) {
	r := &reader{buf: b}
	return r.transaction()
}

func (BincodeCodec) Encode(tx Transaction) ([]byte, error) {
	w := &writer{}
	if err := w.transaction(tx); err != nil {
		return nil, err
	}
	return w.buf, nil
}
