package insts

// FlowControl classifies an instruction's effect on control flow. Exactly
// one tag applies per instruction and it is derivable from the Opcode
// alone.
type FlowControl uint8

// Flow control classes.
const (
	FCNone FlowControl = iota
	FCCall
	FCReturn
	FCSysCall
	FCUncondBranch
	FCCondBranch
	FCInterrupt
	FCCondMove
)

var flowControlNames = [...]string{
	"None", "Call", "Return", "SysCall",
	"UnconditionalBranch", "ConditionalBranch", "Interrupt", "ConditionalMove",
}

func (fc FlowControl) String() string {
	if int(fc) < len(flowControlNames) {
		return flowControlNames[fc]
	}
	return "FlowControl?"
}

// ISAClass identifies the x86 extension family an opcode belongs to.
type ISAClass uint8

// Instruction set classes.
const (
	ISAInteger ISAClass = iota
	ISAFPU
	ISAP6
	ISAMMX
	ISASSE
	ISASSE2
	ISASSE3
	ISASSSE3
	ISASSE41
	ISASSE42
	ISA3DNow
	ISA3DNowExt
	ISAVMX
	ISASVM
	ISAAVX
	ISAFMA
	ISAAES
	ISACLMUL
)

var isaClassNames = [...]string{
	"Integer", "FPU", "P6", "MMX",
	"SSE", "SSE2", "SSE3", "SSSE3", "SSE4.1", "SSE4.2",
	"3DNow", "3DNowExt", "VMX", "SVM", "AVX", "FMA", "AES", "CLMUL",
}

func (c ISAClass) String() string {
	if int(c) < len(isaClassNames) {
		return isaClassNames[c]
	}
	return "ISAClass?"
}

// Flags is the per-instruction flag bitset.
type Flags uint16

// Instruction flags.
const (
	// FlagLock is set when a LOCK prefix applies to the instruction.
	FlagLock Flags = 1 << iota
	// FlagRepnz is set when a REPNZ (F2) prefix applies.
	FlagRepnz
	// FlagRep is set when a REP/REPZ (F3) prefix applies.
	FlagRep
	// FlagImmSigned is set when the immediate was sign-extended from a
	// narrower encoding.
	FlagImmSigned
	// FlagDstWritable is set when the destination operand is written.
	FlagDstWritable
	// FlagRIPRelative is set when a memory operand is RIP-relative.
	FlagRIPRelative
)

// FlagsNotDecodable is the sentinel flag value marking a failed decode.
// When set, only Address and Size are meaningful.
const FlagsNotDecodable Flags = 0xFFFF

// Segment records which segment register governs a memory operand. The low
// bits hold a register index (RegES..RegGS); segDefaultBit marks that no
// override prefix selected it.
type Segment uint8

const (
	// SegmentNone means the instruction has no memory operand.
	SegmentNone Segment = 0xFF

	segDefaultBit Segment = 0x80
)

// segment constructs an override (def=false) or default (def=true) tag.
func segment(r Reg, def bool) Segment {
	s := Segment(r - RegES)
	if def {
		s |= segDefaultBit
	}
	return s
}

// IsDefault reports whether the segment is the architectural default
// rather than an explicit override.
func (s Segment) IsDefault() bool {
	return s != SegmentNone && s&segDefaultBit != 0
}

// Reg returns the segment register, or RegNone for SegmentNone.
func (s Segment) Reg() Reg {
	if s == SegmentNone {
		return RegNone
	}
	return RegES + Reg(s&^segDefaultBit)
}

// MaxOperands is the operand slot count of an Instruction.
const MaxOperands = 4

// MaxInstructionLen is the architectural limit on x86 instruction length.
const MaxInstructionLen = 15

// Instruction is one decoded instruction. It is a plain value: produced by
// a single decode step, never mutated afterwards, and holding no state
// shared with the decoder.
type Instruction struct {
	// Address is the virtual address of the first byte.
	Address uint64
	// Size is the total byte length consumed, 1..15.
	Size int

	// Opcode identifies the mnemonic and form.
	Opcode Opcode

	// Operands lists up to four operands, destination first. The first
	// OperandNone entry terminates the list.
	Operands [MaxOperands]Operand

	// Imm is the immediate payload, referenced by Imm/Imm1/Imm2/PC/Ptr
	// operands.
	Imm Immediate

	// Disp is the memory-operand displacement; DispSize is its encoded
	// width in bits, 0 if unused.
	Disp     int64
	DispSize uint8

	// Flags is the flag bitset, or FlagsNotDecodable.
	Flags Flags

	// SegmentOverride tags the segment governing a memory operand.
	SegmentOverride Segment

	// Base, Index, and Scale describe complex memory addressing. Scale is
	// one of 0, 1, 2, 4, 8; 0 and 1 both mean no scaling applied.
	Base  Reg
	Index Reg
	Scale uint8

	// ISA is the instruction-set class of the opcode.
	ISA ISAClass

	// FC is the flow-control class of the opcode.
	FC FlowControl

	// UnusedPrefixMask marks which of the instruction's leading prefix
	// bytes were superfluous, bit i for byte Address+i.
	UnusedPrefixMask uint16
}

// IsDecodable reports whether the instruction decoded successfully.
func (in *Instruction) IsDecodable() bool {
	return in.Flags != FlagsNotDecodable
}

// BranchTarget returns the absolute target of a relative branch or call:
// the address of the next instruction plus the sign-extended immediate.
// The result is wrapped to the given address width in bits.
func (in *Instruction) BranchTarget(addrBits int) uint64 {
	return wrapAddress(in.Address+uint64(in.Size)+uint64(in.Imm.Value), addrBits)
}

// RIPTarget returns the absolute address referenced by a RIP-relative
// memory operand.
func (in *Instruction) RIPTarget() uint64 {
	return in.Address + uint64(in.Size) + uint64(in.Disp)
}

// wrapAddress truncates addr to the given width in bits.
func wrapAddress(addr uint64, bits int) uint64 {
	switch bits {
	case 16:
		return addr & 0xFFFF
	case 32:
		return addr & 0xFFFFFFFF
	}
	return addr
}
