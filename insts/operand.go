package insts

// OperandType classifies one operand slot of a decoded instruction.
type OperandType uint8

// Operand types.
const (
	// OperandNone marks an unused operand slot. The first None entry
	// terminates the meaningful operand list.
	OperandNone OperandType = iota
	// OperandReg is a plain register operand.
	OperandReg
	// OperandImm is an immediate operand; the value lives in Instruction.Imm.
	OperandImm
	// OperandImm1 is the first immediate of a two-immediate form (ENTER).
	OperandImm1
	// OperandImm2 is the second immediate of a two-immediate form.
	OperandImm2
	// OperandDisp is an absolute-displacement-only memory operand, such as
	// a moffs reference ([0x1234]).
	OperandDisp
	// OperandSMem is a simple memory operand: a single base register with
	// an optional displacement ([ebp+0x8]).
	OperandSMem
	// OperandMem is a complex memory operand with base and/or scaled index
	// ([eax+ebx*4+0x10]).
	OperandMem
	// OperandPC is a program-counter-relative branch target; the relative
	// offset lives in Instruction.Imm.
	OperandPC
	// OperandPtr is an absolute far pointer (seg:offset) operand.
	OperandPtr
)

var operandTypeNames = [...]string{
	"None", "Reg", "Imm", "Imm1", "Imm2", "Disp", "SMem", "Mem", "PC", "Ptr",
}

func (t OperandType) String() string {
	if int(t) < len(operandTypeNames) {
		return operandTypeNames[t]
	}
	return "OperandType?"
}

// Operand is one operand slot of a decoded instruction. Order in the
// Instruction is destination first, by x86 convention.
type Operand struct {
	// Type tags the operand; OperandNone marks an unused slot.
	Type OperandType
	// Reg is the global register index, meaningful for OperandReg and (as
	// the base register shorthand) OperandSMem.
	Reg Reg
	// Size is the operand size in bits.
	Size uint16
}

// FarPointer is the segment:offset payload of an OperandPtr operand.
type FarPointer struct {
	Segment uint16
	Offset  uint32
}

// Immediate holds the immediate payload of an instruction. The value is
// always sign-extended to 64 bits at decode time regardless of its encoded
// width; accessors reinterpret it per width. Which interpretation applies
// is implied by the operand type referencing it.
type Immediate struct {
	// Value is the sign-extended 64-bit immediate.
	Value int64
	// Size is the encoded immediate width in bits (0 if no immediate).
	Size uint16
	// Ptr carries the seg:offset pair for far-pointer forms.
	Ptr FarPointer
	// Pair carries both values of a two-immediate form (ENTER iw, ib).
	Pair [2]uint32
}

// Signed returns the immediate as a signed 64-bit integer.
func (im Immediate) Signed() int64 { return im.Value }

// Unsigned returns the immediate as the unsigned view of the sign-extended
// 64-bit value.
func (im Immediate) Unsigned() uint64 { return uint64(im.Value) }

// Int8 returns the low 8 bits of the immediate as a signed byte.
func (im Immediate) Int8() int8 { return int8(im.Value) }

// Int16 returns the low 16 bits of the immediate as a signed word.
func (im Immediate) Int16() int16 { return int16(im.Value) }

// Int32 returns the low 32 bits of the immediate as a signed doubleword.
func (im Immediate) Int32() int32 { return int32(im.Value) }
