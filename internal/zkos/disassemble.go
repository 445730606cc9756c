package zkos

import (
	"encoding/binary"
	"fmt"
)

type opcode struct {
	name string
	// number of trailing u32 arguments
	args int
	// the first argument is a length followed by that many data bytes
	blob bool
}

var opcodes = [...]opcode{
	0x00: {name: "push", args: 1, blob: true},
	0x01: {name: "program", args: 1, blob: true},
	0x02: {name: "drop"},
	0x03: {name: "dup", args: 1},
	0x04: {name: "roll", args: 1},
	0x05: {name: "scalar"},
	0x06: {name: "commit"},
	0x07: {name: "alloc"},
	0x08: {name: "expr"},
	0x09: {name: "neg"},
	0x0a: {name: "add"},
	0x0b: {name: "mul"},
	0x0c: {name: "eq"},
	0x0d: {name: "range"},
	0x0e: {name: "and"},
	0x0f: {name: "or"},
	0x10: {name: "not"},
	0x11: {name: "verify"},
	0x12: {name: "unblind"},
	0x13: {name: "issue"},
	0x14: {name: "borrow"},
	0x15: {name: "retire"},
	0x16: {name: "cloak", args: 2},
	0x17: {name: "fee"},
	0x18: {name: "input"},
	0x19: {name: "output", args: 1},
	0x1a: {name: "contract", args: 1},
	0x1b: {name: "log"},
	0x1c: {name: "call"},
	0x1d: {name: "signtx"},
	0x1e: {name: "signid"},
	0x1f: {name: "signtag"},
}

// Disassemble renders a ZkVM program one instruction per line. Unknown opcodes are
// printed as unknown(0xNN) and skipped; a truncated argument ends the listing.
func Disassemble(program []byte) []string {
	var out []string
	pos := 0
	for pos < len(program) {
		tag := program[pos]
		pos++

		if int(tag) >= len(opcodes) {
			out = append(out, fmt.Sprintf("unknown(0x%02x)", tag))
			continue
		}
		op := opcodes[tag]

		args := make([]uint32, 0, op.args)
		for i := 0; i < op.args; i++ {
			if len(program)-pos < 4 {
				return out
			}
			args = append(args, binary.LittleEndian.Uint32(program[pos:]))
			pos += 4
		}

		switch {
		case op.blob:
			if uint64(args[0]) > uint64(len(program)-pos) {
				return out
			}
			pos += int(args[0])
			out = append(out, fmt.Sprintf("%s:%d", op.name, args[0]))
		case op.args == 1:
			out = append(out, fmt.Sprintf("%s:%d", op.name, args[0]))
		case op.args == 2:
			out = append(out, fmt.Sprintf("%s:%d:%d", op.name, args[0], args[1]))
		default:
			out = append(out, op.name)
		}
	}
	return out
}
