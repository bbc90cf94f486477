// Package format renders decoded instructions as assembly text. Register
// names are lowercase, immediates and displacements are hexadecimal, and
// memory operands follow the [base+index*scale+disp] convention.
package format

import (
	"fmt"
	"strings"

	"github.com/sarchlab/x86dec/insts"
)

// Format renders the mnemonic and operand text of an instruction. A
// NOT_DECODABLE instruction renders its placeholder mnemonic with empty
// operand text.
func Format(in *insts.Instruction, cfg *insts.Config) (string, string) {
	if !in.IsDecodable() {
		return insts.OpInvalid.String(), ""
	}

	mnemonic := mnemonicText(in)

	var parts []string
	for i := range in.Operands {
		op := &in.Operands[i]
		if op.Type == insts.OperandNone {
			break
		}
		parts = append(parts, operandText(in, op, cfg))
	}
	return mnemonic, strings.Join(parts, ", ")
}

// String renders the full one-line text of an instruction.
func String(in *insts.Instruction, cfg *insts.Config) string {
	mnemonic, operands := Format(in, cfg)
	if operands == "" {
		return mnemonic
	}
	return mnemonic + " " + operands
}

// mnemonicText builds the mnemonic with its prefixes, the AVX v-prefix,
// and the memory size qualifier.
func mnemonicText(in *insts.Instruction) string {
	name := in.Opcode.String()
	if in.ISA == insts.ISAAVX && !strings.HasPrefix(name, "v") {
		name = "v" + name
	}
	if q := sizeQualifier(in); q != "" {
		name = q + " " + name
	}
	switch {
	case in.Flags&insts.FlagLock != 0:
		name = "lock " + name
	case in.Flags&insts.FlagRep != 0:
		name = "rep " + name
	case in.Flags&insts.FlagRepnz != 0:
		name = "repnz " + name
	}
	return name
}

// sizeQualifier returns the byte/word/dword/qword qualifier required when
// a memory destination's size differs from its source's.
func sizeQualifier(in *insts.Instruction) string {
	dst, src := &in.Operands[0], &in.Operands[1]
	if src.Type == insts.OperandNone {
		return ""
	}
	if dst.Type != insts.OperandSMem &&
		dst.Type != insts.OperandMem &&
		dst.Type != insts.OperandDisp {
		return ""
	}
	if dst.Size == src.Size || dst.Size == 0 || src.Size == 0 {
		return ""
	}
	smallest := dst.Size
	if src.Size < smallest {
		smallest = src.Size
	}
	switch smallest {
	case 8:
		return "byte"
	case 16:
		return "word"
	case 32:
		return "dword"
	case 64:
		return "qword"
	}
	return ""
}

func operandText(
	in *insts.Instruction,
	op *insts.Operand,
	cfg *insts.Config,
) string {
	switch op.Type {
	case insts.OperandReg:
		return op.Reg.String()
	case insts.OperandImm:
		return hexImm(in.Imm.Value, op.Size)
	case insts.OperandImm1:
		return fmt.Sprintf("0x%x", in.Imm.Pair[0])
	case insts.OperandImm2:
		return fmt.Sprintf("0x%x", in.Imm.Pair[1])
	case insts.OperandDisp:
		return segPrefix(in) + fmt.Sprintf("[0x%x]", uint64(in.Disp))
	case insts.OperandSMem, insts.OperandMem:
		return memText(in)
	case insts.OperandPC:
		return fmt.Sprintf("0x%x", in.BranchTarget(cfg.AddressWidth()))
	case insts.OperandPtr:
		return fmt.Sprintf("0x%x:0x%x", in.Imm.Ptr.Segment, in.Imm.Ptr.Offset)
	}
	return ""
}

// hexImm renders an immediate as unsigned hex within its operand width.
func hexImm(v int64, bits uint16) string {
	if bits == 0 || bits >= 64 {
		return fmt.Sprintf("0x%x", uint64(v))
	}
	mask := uint64(1)<<bits - 1
	return fmt.Sprintf("0x%x", uint64(v)&mask)
}

// segPrefix renders an explicit segment override; architectural defaults
// render nothing.
func segPrefix(in *insts.Instruction) string {
	s := in.SegmentOverride
	if s == insts.SegmentNone || s.IsDefault() {
		return ""
	}
	return s.Reg().String() + ":"
}

// memText renders [base+index*scale+disp], dropping absent parts and
// folding a negative displacement into -0x form.
func memText(in *insts.Instruction) string {
	var b strings.Builder
	b.WriteString(segPrefix(in))
	b.WriteByte('[')

	wrote := false
	if in.Base != insts.RegNone {
		b.WriteString(in.Base.String())
		wrote = true
	}
	if in.Index != insts.RegNone {
		if wrote {
			b.WriteByte('+')
		}
		b.WriteString(in.Index.String())
		if in.Scale > 1 {
			fmt.Fprintf(&b, "*%d", in.Scale)
		}
		wrote = true
	}
	if in.DispSize > 0 || !wrote {
		d := in.Disp
		switch {
		case !wrote:
			fmt.Fprintf(&b, "0x%x", uint64(d))
		case d < 0:
			fmt.Fprintf(&b, "-0x%x", uint64(-d))
		default:
			fmt.Fprintf(&b, "+0x%x", uint64(d))
		}
	}
	b.WriteByte(']')
	return b.String()
}
