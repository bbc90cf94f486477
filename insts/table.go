package insts

// argKind is an operand specifier in an encoding template, following the
// abbreviations of the Intel opcode maps (Eb, Gv, Iz, ...). The decoder
// resolves each specifier to a concrete Operand.
type argKind uint8

const (
	argNone argKind = iota

	// ModRM r/m field.
	argEb // byte r/m
	argEw // word r/m
	argEv // operand-size r/m
	argEd // dword r/m
	argEy // dword r/m, qword with REX.W
	argM  // memory only, operand size
	argMp // memory only, far pointer
	argMa // memory only, operand pair (BOUND)

	// ModRM reg field.
	argGb // byte register
	argGw // word register
	argGv // operand-size register
	argGd // dword register
	argGy // dword register, qword with REX.W
	argSw // segment register
	argCr // control register
	argDr // debug register

	// Immediates.
	argIb  // imm8
	argIbs // imm8 sign-extended to operand size
	argIw  // imm16
	argIz  // imm16/imm32 by operand size
	argIv  // imm16/imm32/imm64 by operand size
	argI1  // constant 1
	argIwD // imm16, first of a two-immediate form
	argIbD // imm8, second of a two-immediate form

	// Code offsets and pointers.
	argJb // rel8
	argJz // rel16/rel32 by operand size
	argAp // far pointer immediate (ptr16:16/32)
	argOb // byte moffs
	argOv // operand-size moffs

	// Fixed registers.
	argAL
	argCL
	argDX
	argrAX // ax/eax/rax by operand size
	argeAX // ax/eax by operand size (no 64-bit form)
	argES
	argCS
	argSS
	argDS
	argFS
	argGS

	// Register embedded in the opcode's low three bits (plus REX.B).
	argZb // byte register
	argZv // operand-size register

	// MMX and SSE.
	argP // mm register from reg field
	argQ // mm register or memory from r/m
	argN // mm register from r/m (register forms only)
	argV // xmm/ymm register from reg field
	argW // xmm/ymm register or memory from r/m
	argU // xmm/ymm register from r/m (register forms only)
	argH // xmm/ymm register from VEX.vvvv

	// x87.
	argST0
	argSTi
)

// instFlag carries per-template decode properties.
type instFlag uint16

const (
	// fW marks the destination operand writable.
	fW instFlag = 1 << iota
	// f64 forces 64-bit operand size in long mode (push, call, jmp...).
	f64
	// fI64 marks the form invalid in 64-bit mode.
	fI64
	// fO64 marks the form valid only in 64-bit mode.
	fO64
	// fLockable allows a LOCK prefix when the destination is memory.
	fLockable
	// fMemOnly requires ModRM to encode a memory operand (lea, bound...).
	fMemOnly
)

// instInfo is the authoritative decode template for one opcode form:
// mnemonic id, operand encoding, and classification.
type instInfo struct {
	op    Opcode
	args  [MaxOperands]argKind
	fc    FlowControl
	isa   ISAClass
	flags instFlag
}

// entryKind discriminates opcode table entries.
type entryKind uint8

const (
	entryInvalid entryKind = iota
	entryInst
	entryGroup    // further indexed by ModRM reg
	entryPrefix   // selected by mandatory prefix: none/66/F3/F2
	entryOpsize   // selected by effective operand size: 16/32/64
	entryAddrsize // selected by effective address size: 16/32/64
	entryW        // selected by REX/VEX W bit
	entryMode     // selected by decode mode: legacy (16/32) or long (64)
)

// opcodeEntry is one slot of an opcode table. Group and variant entries
// reference further opcodeEntry values, so tables can nest (a group slot
// may itself be prefix-discriminated).
type opcodeEntry struct {
	kind  entryKind
	inst  instInfo
	group uint8
	vars  *[4]opcodeEntry
}

// ins builds a plain instruction entry with Integer class and no flow
// control. Properties are layered on with the chainable helpers below.
func ins(op Opcode, args ...argKind) opcodeEntry {
	e := opcodeEntry{kind: entryInst, inst: instInfo{op: op}}
	copy(e.inst.args[:], args)
	return e
}

// w marks the destination writable.
func (e opcodeEntry) w() opcodeEntry { e.inst.flags |= fW; return e }

// f64 forces 64-bit operand size in long mode.
func (e opcodeEntry) f64() opcodeEntry { e.inst.flags |= f64; return e }

// i64 marks the entry invalid in 64-bit mode.
func (e opcodeEntry) i64() opcodeEntry { e.inst.flags |= fI64; return e }

// o64 marks the entry valid only in 64-bit mode.
func (e opcodeEntry) o64() opcodeEntry { e.inst.flags |= fO64; return e }

// lock allows a LOCK prefix.
func (e opcodeEntry) lock() opcodeEntry { e.inst.flags |= fLockable; return e }

// memOnly requires a memory-form ModRM.
func (e opcodeEntry) memOnly() opcodeEntry { e.inst.flags |= fMemOnly; return e }

// fc sets the flow-control class.
func (e opcodeEntry) fc(fc FlowControl) opcodeEntry { e.inst.fc = fc; return e }

// isa sets the instruction-set class.
func (e opcodeEntry) isa(c ISAClass) opcodeEntry { e.inst.isa = c; return e }

// grp builds a group entry. The args, if given, are the shared template
// inherited by group elements that do not specify their own.
func grp(idx uint8, args ...argKind) opcodeEntry {
	e := opcodeEntry{kind: entryGroup, group: idx}
	copy(e.inst.args[:], args)
	return e
}

// pfx builds a mandatory-prefix discriminated entry in the order
// none, 66, F3, F2.
func pfx(none, p66, pF3, pF2 opcodeEntry) opcodeEntry {
	return opcodeEntry{kind: entryPrefix, vars: &[4]opcodeEntry{none, p66, pF3, pF2}}
}

// byOpsize builds an operand-size discriminated entry (16/32/64).
func byOpsize(e16, e32, e64 opcodeEntry) opcodeEntry {
	return opcodeEntry{kind: entryOpsize, vars: &[4]opcodeEntry{e16, e32, e64}}
}

// byAddrsize builds an address-size discriminated entry (16/32/64).
func byAddrsize(e16, e32, e64 opcodeEntry) opcodeEntry {
	return opcodeEntry{kind: entryAddrsize, vars: &[4]opcodeEntry{e16, e32, e64}}
}

// byMode builds a decode-mode discriminated entry: legacy modes versus
// long mode.
func byMode(legacy, long opcodeEntry) opcodeEntry {
	return opcodeEntry{kind: entryMode, vars: &[4]opcodeEntry{legacy, long}}
}

// byW builds a REX/VEX.W discriminated entry.
func byW(w0, w1 opcodeEntry) opcodeEntry {
	return opcodeEntry{kind: entryW, vars: &[4]opcodeEntry{w0, w1}}
}

// invalid is the empty table slot.
var invalid = opcodeEntry{}

// hasModRM reports whether the template requires a ModRM byte.
func (info *instInfo) hasModRM() bool {
	for _, a := range info.args {
		switch a {
		case argEb, argEw, argEv, argEd, argEy, argM, argMp, argMa,
			argGb, argGw, argGv, argGd, argGy, argSw, argCr, argDr,
			argP, argQ, argN, argV, argW, argU:
			return true
		}
	}
	return false
}
