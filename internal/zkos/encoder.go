package zkos

import (
	"encoding/binary"
	"fmt"
)

// Encode produces the canonical wire form of tx. Decode(Encode(tx)) returns an equal value.
func Encode(tx Transaction) ([]byte, error) {
	return BincodeCodec{}.Encode(tx)
}

type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8) { w.buf = append(w.buf, v) }

func (w *writer) u32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }

func (w *writer) u64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }

func (w *writer) bytes(b []byte) {
	w.u64(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *writer) str(s string) {
	w.u64(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *writer) transaction(tx Transaction) error {
	switch t := tx.(type) {
	case *Transfer:
		w.u32(uint32(VariantTransfer))
		w.u64(t.Version)
		w.u64(t.Maturity)
		if err := w.inputs(t.Inputs); err != nil {
			return err
		}
		if err := w.outputs(t.Outputs); err != nil {
			return err
		}
		w.bytes(t.Proof)
	case *Script:
		w.u32(uint32(VariantScript))
		w.u64(t.Version)
		w.u64(t.Fee)
		w.u64(t.Maturity)
		if err := w.inputs(t.Inputs); err != nil {
			return err
		}
		if err := w.outputs(t.Outputs); err != nil {
			return err
		}
		w.bytes(t.Program)
		w.bytes(t.CallProof)
		w.bytes(t.Proof)
		if t.TxData == nil {
			w.u8(0)
		} else {
			w.u8(1)
			w.str(*t.TxData)
		}
	case *Message:
		w.u32(uint32(VariantMessage))
		w.u32(t.Type)
		w.bytes(t.Payload)
	default:
		return fmt.Errorf("encode transaction: unsupported type %T", tx)
	}
	return nil
}

func (w *writer) inputs(inputs []Input) error {
	w.u64(uint64(len(inputs)))
	for i, in := range inputs {
		if err := w.output(in.Output); err != nil {
			return fmt.Errorf("encode input %d: %w", i, err)
		}
		w.buf = append(w.buf, in.Utxo.TxID[:]...)
		w.u8(in.Utxo.OutputIndex)
		w.u8(in.Witness)
	}
	return nil
}

func (w *writer) outputs(outputs []Output) error {
	w.u64(uint64(len(outputs)))
	for i, out := range outputs {
		if err := w.output(out); err != nil {
			return fmt.Errorf("encode output %d: %w", i, err)
		}
	}
	return nil
}

func (w *writer) output(out Output) error {
	switch out.Kind {
	case IOCoin:
		if out.Coin == nil {
			return fmt.Errorf("coin body missing")
		}
		w.u32(uint32(IOCoin))
		w.buf = append(w.buf, out.Coin.Encrypt[:]...)
		w.str(out.Coin.Owner)
	case IOMemo:
		if out.Memo == nil {
			return fmt.Errorf("memo body missing")
		}
		w.u32(uint32(IOMemo))
		w.str(out.Memo.ScriptAddress)
		w.str(out.Memo.Owner)
		w.buf = append(w.buf, out.Memo.Commitment[:]...)
		w.items(out.Memo.HasData, out.Memo.Data)
		w.u32(out.Memo.Timebounds)
	case IOState:
		if out.State == nil {
			return fmt.Errorf("state body missing")
		}
		w.u32(uint32(IOState))
		w.u32(out.State.Nonce)
		w.str(out.State.ScriptAddress)
		w.str(out.State.Owner)
		w.buf = append(w.buf, out.State.Commitment[:]...)
		w.items(out.State.HasVariables, out.State.StateVariables)
		w.u32(out.State.Timebounds)
	default:
		return fmt.Errorf("unknown io type %d", out.Kind)
	}
	return nil
}

func (w *writer) items(some bool, items []DataItem) {
	if !some && len(items) == 0 {
		w.u8(0)
		return
	}
	w.u8(1)
	w.u64(uint64(len(items)))
	for _, item := range items {
		w.u32(item.Kind)
		w.bytes(item.Bytes)
	}
}
