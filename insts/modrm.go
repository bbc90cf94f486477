package insts

// operandSize returns the effective operand size in bits, honoring the
// mode defaults, the 66 prefix (unless consumed as a mandatory prefix),
// REX.W, and the long-mode default-64 templates.
func (st *decodeState) operandSize(flags instFlag) int {
	os66 := st.os66 && !st.osMandatory
	switch st.mode {
	case 16:
		if os66 {
			return 32
		}
		return 16
	case 32:
		if os66 {
			return 16
		}
		return 32
	}
	if st.rexW() == 1 {
		return 64
	}
	if os66 {
		return 16
	}
	if flags&f64 != 0 {
		return 64
	}
	return 32
}

// addrSize returns the effective address size in bits.
func (st *decodeState) addrSize() int {
	switch st.mode {
	case 16:
		if st.as67 {
			return 32
		}
		return 16
	case 32:
		if st.as67 {
			return 16
		}
		return 32
	}
	if st.as67 {
		return 32
	}
	return 64
}

// vecSize returns the SIMD operand width in bits.
func (st *decodeState) vecSize() uint16 {
	if st.vex && st.vexL256 {
		return 256
	}
	return 128
}

// applyTemplate fills the instruction from a resolved template: operands
// in order, immediates, and the prefix-derived flags.
func (st *decodeState) applyTemplate(in *Instruction, info *instInfo) error {
	opsize := st.operandSize(info.flags)
	in.Opcode = info.op
	in.ISA = info.isa
	in.FC = info.fc
	if info.flags&fW != 0 {
		in.Flags |= FlagDstWritable
	}
	if st.vex {
		switch in.ISA {
		case ISASSE, ISASSE2, ISASSE3, ISASSSE3, ISASSE41, ISASSE42:
			in.ISA = ISAAVX
		}
	}

	slot := 0
	for _, a := range info.args {
		if a == argNone {
			break
		}
		op, err := st.operand(in, a, opsize)
		if err != nil {
			return err
		}
		in.Operands[slot] = op
		slot++
		if st.vex && slot == 1 && !hasArgH(info) && st.vexV != 0x0F {
			// VEX encodes an extra source in vvvv.
			in.Operands[slot] = Operand{
				Type: OperandReg,
				Reg:  xmmOrYMM(int(st.vecSize()), int(st.vexV)),
				Size: st.vecSize(),
			}
			slot++
		}
	}

	if info.flags&fMemOnly != 0 && st.modrmSeen && st.modrm >= 0xC0 {
		return errUndefined
	}

	if st.lockPos >= 0 && info.flags&fLockable != 0 &&
		isMemoryOperand(in.Operands[0].Type) {
		in.Flags |= FlagLock
		st.lockUsed = true
	}
	if st.rep != 0 && !st.repUsed && isStringOp(info.op) {
		if st.rep == 0xF3 {
			in.Flags |= FlagRep
		} else {
			in.Flags |= FlagRepnz
		}
		st.repUsed = true
		// String operands are addressed through si/di.
		st.asUsed = true
	}
	return nil
}

func hasArgH(info *instInfo) bool {
	for _, a := range info.args {
		if a == argH {
			return true
		}
	}
	return false
}

func isMemoryOperand(t OperandType) bool {
	return t == OperandSMem || t == OperandMem || t == OperandDisp
}

// isStringOp reports whether the opcode is a repeatable string operation.
func isStringOp(op Opcode) bool {
	switch op {
	case OpMOVSB, OpMOVSW, OpMOVSDStr, OpMOVSQ,
		OpCMPSB, OpCMPSW, OpCMPSDStr, OpCMPSQ,
		OpSTOSB, OpSTOSW, OpSTOSD, OpSTOSQ,
		OpLODSB, OpLODSW, OpLODSD, OpLODSQ,
		OpSCASB, OpSCASW, OpSCASD, OpSCASQ,
		OpINSB, OpINSW, OpINSD,
		OpOUTSB, OpOUTSW, OpOUTSD:
		return true
	}
	return false
}

// operand resolves one template argument to a concrete Operand, consuming
// ModRM/SIB/displacement/immediate bytes as the kind requires.
func (st *decodeState) operand(
	in *Instruction,
	a argKind,
	opsize int,
) (Operand, error) {
	switch a {
	case argEb:
		return st.rmOperand(in, a, 8)
	case argEw:
		return st.rmOperand(in, a, 16)
	case argEv:
		st.touchOpsize()
		return st.rmOperand(in, a, uint16(opsize))
	case argEd:
		return st.rmOperand(in, a, 32)
	case argEy:
		if st.rexW() == 1 {
			return st.rmOperand(in, a, 64)
		}
		return st.rmOperand(in, a, 32)
	case argM:
		st.touchOpsize()
		return st.rmOperand(in, a, uint16(opsize))
	case argMp:
		st.touchOpsize()
		if opsize == 16 {
			return st.rmOperand(in, a, 32)
		}
		return st.rmOperand(in, a, 48)
	case argMa:
		st.touchOpsize()
		return st.rmOperand(in, a, uint16(2*opsize))

	case argGb:
		return st.regOperand(8)
	case argGw:
		return st.regOperand(16)
	case argGv:
		st.touchOpsize()
		return st.regOperand(uint16(opsize))
	case argGd:
		return st.regOperand(32)
	case argGy:
		if st.rexW() == 1 {
			return st.regOperand(64)
		}
		return st.regOperand(32)
	case argSw:
		m, err := st.readModRM()
		if err != nil {
			return Operand{}, err
		}
		idx := (m >> 3) & 7
		if idx > 5 {
			return Operand{}, errUndefined
		}
		return Operand{Type: OperandReg, Reg: RegES + Reg(idx), Size: 16}, nil
	case argCr:
		m, err := st.readModRM()
		if err != nil {
			return Operand{}, err
		}
		idx := int((m>>3)&7) | st.rexR()<<3
		if idx > 8 {
			return Operand{}, errUndefined
		}
		return Operand{
			Type: OperandReg,
			Reg:  RegCR0 + Reg(idx),
			Size: uint16(st.mode),
		}, nil
	case argDr:
		m, err := st.readModRM()
		if err != nil {
			return Operand{}, err
		}
		return Operand{
			Type: OperandReg,
			Reg:  RegDR0 + Reg((m>>3)&7),
			Size: uint16(st.mode),
		}, nil

	case argP:
		m, err := st.readModRM()
		if err != nil {
			return Operand{}, err
		}
		return Operand{
			Type: OperandReg,
			Reg:  RegMM0 + Reg((m>>3)&7),
			Size: 64,
		}, nil
	case argQ, argN:
		return st.rmOperand(in, a, 64)
	case argV:
		m, err := st.readModRM()
		if err != nil {
			return Operand{}, err
		}
		idx := int((m>>3)&7) | st.rexR()<<3
		return Operand{
			Type: OperandReg,
			Reg:  xmmOrYMM(int(st.vecSize()), idx),
			Size: st.vecSize(),
		}, nil
	case argW, argU:
		return st.rmOperand(in, a, st.vecSize())
	case argH:
		return Operand{
			Type: OperandReg,
			Reg:  xmmOrYMM(int(st.vecSize()), int(st.vexV)),
			Size: st.vecSize(),
		}, nil

	case argAL:
		return Operand{Type: OperandReg, Reg: RegAL, Size: 8}, nil
	case argCL:
		return Operand{Type: OperandReg, Reg: RegCL, Size: 8}, nil
	case argDX:
		return Operand{Type: OperandReg, Reg: RegDX, Size: 16}, nil
	case argrAX:
		st.touchOpsize()
		return Operand{
			Type: OperandReg,
			Reg:  gpr(opsize, 0, false),
			Size: uint16(opsize),
		}, nil
	case argeAX:
		st.touchOpsize()
		s := opsize
		if s == 64 {
			s = 32
		}
		return Operand{
			Type: OperandReg,
			Reg:  gpr(s, 0, false),
			Size: uint16(s),
		}, nil
	case argES, argCS, argSS, argDS, argFS, argGS:
		r := RegES + Reg(a-argES)
		return Operand{Type: OperandReg, Reg: r, Size: 16}, nil
	case argST0:
		return Operand{Type: OperandReg, Reg: RegST0, Size: 80}, nil

	case argZb:
		idx := int(st.opByte&7) | st.rexB()<<3
		return Operand{
			Type: OperandReg,
			Reg:  gpr(8, idx, st.rex != 0),
			Size: 8,
		}, nil
	case argZv:
		st.touchOpsize()
		idx := int(st.opByte&7) | st.rexB()<<3
		return Operand{
			Type: OperandReg,
			Reg:  gpr(opsize, idx, true),
			Size: uint16(opsize),
		}, nil

	default:
		return st.immOperand(in, a, opsize)
	}
}

// touchOpsize records that the operand-size prefix, if present, had an
// effect on this instruction.
func (st *decodeState) touchOpsize() {
	if st.os66 && !st.osMandatory {
		st.osUsed = true
	}
}

// regOperand builds the general purpose register selected by ModRM.reg.
func (st *decodeState) regOperand(size uint16) (Operand, error) {
	m, err := st.readModRM()
	if err != nil {
		return Operand{}, err
	}
	idx := int((m>>3)&7) | st.rexR()<<3
	return Operand{
		Type: OperandReg,
		Reg:  gpr(int(size), idx, st.rex != 0),
		Size: size,
	}, nil
}

// rmOperand resolves the ModRM r/m side: a register for mod=11, otherwise
// a memory operand.
func (st *decodeState) rmOperand(
	in *Instruction,
	a argKind,
	size uint16,
) (Operand, error) {
	m, err := st.readModRM()
	if err != nil {
		return Operand{}, err
	}
	if m >= 0xC0 {
		switch a {
		case argM, argMp, argMa:
			return Operand{}, errUndefined
		case argQ, argN:
			return Operand{
				Type: OperandReg,
				Reg:  RegMM0 + Reg(m&7),
				Size: 64,
			}, nil
		case argW, argU:
			idx := int(m&7) | st.rexB()<<3
			return Operand{
				Type: OperandReg,
				Reg:  xmmOrYMM(int(size), idx),
				Size: size,
			}, nil
		}
		idx := int(m&7) | st.rexB()<<3
		return Operand{
			Type: OperandReg,
			Reg:  gpr(int(size), idx, st.rex != 0),
			Size: size,
		}, nil
	}
	if a == argN || a == argU {
		return Operand{}, errUndefined
	}
	return st.decodeMem(in, size)
}

// mem16Forms lists the base/index pairs of 16-bit addressing, indexed by
// ModRM.rm.
var mem16Forms = [8][2]Reg{
	{RegBX, RegSI}, {RegBX, RegDI}, {RegBP, RegSI}, {RegBP, RegDI},
	{RegSI, RegNone}, {RegDI, RegNone}, {RegBP, RegNone}, {RegBX, RegNone},
}

// decodeMem decodes the memory form of ModRM: base/index/scale, the SIB
// byte when present, displacement, and the governing segment.
func (st *decodeState) decodeMem(
	in *Instruction,
	size uint16,
) (Operand, error) {
	mod := st.modrm >> 6
	rm := st.modrm & 7
	asize := st.addrSize()
	st.asUsed = true

	base, index := RegNone, RegNone
	var scale uint8
	dispBits := 0

	if asize == 16 {
		base, index = mem16Forms[rm][0], mem16Forms[rm][1]
		switch mod {
		case 0:
			if rm == 6 {
				base = RegNone
				dispBits = 16
			}
		case 1:
			dispBits = 8
		case 2:
			dispBits = 16
		}
	} else {
		switch {
		case rm == 4:
			sib, err := st.readByte()
			if err != nil {
				return Operand{}, err
			}
			idx := int((sib>>3)&7) | st.rexX()<<3
			if idx != 4 {
				// index=100 with no REX.X means no index; r12 is valid.
				index = gpr(asize, idx, true)
				scale = 1 << (sib >> 6)
			}
			if sib&7 == 5 && mod == 0 {
				dispBits = 32
			} else {
				base = gpr(asize, int(sib&7)|st.rexB()<<3, true)
			}
		case rm == 5 && mod == 0:
			dispBits = 32
			if st.mode == 64 {
				// RIP-relative: disp32 from the end of the instruction.
				if asize == 32 {
					base = RegEIP
				} else {
					base = RegRIP
				}
				in.Flags |= FlagRIPRelative
			}
		default:
			base = gpr(asize, int(rm)|st.rexB()<<3, true)
		}
		switch mod {
		case 1:
			dispBits = 8
		case 2:
			dispBits = 32
		}
	}

	if dispBits > 0 {
		v, err := st.readInt(dispBits / 8)
		if err != nil {
			return Operand{}, err
		}
		in.Disp = v
		in.DispSize = uint8(dispBits)
	}

	in.Base = base
	in.Index = index
	in.Scale = scale
	st.setSegment(in, defaultSegment(base))

	op := Operand{Size: size}
	switch {
	case index != RegNone:
		op.Type = OperandMem
	case base != RegNone:
		op.Type = OperandSMem
		op.Reg = base
	default:
		op.Type = OperandDisp
	}
	return op, nil
}

// defaultSegment returns the architectural default segment for a base
// register: ss for stack bases, ds otherwise.
func defaultSegment(base Reg) Reg {
	switch base {
	case RegBP, RegSP, RegEBP, RegESP, RegRBP, RegRSP:
		return RegSS
	}
	return RegDS
}

// setSegment records the governing segment of a memory operand: the
// override prefix when present, else the architectural default.
func (st *decodeState) setSegment(in *Instruction, def Reg) {
	if st.seg != RegNone {
		in.SegmentOverride = segment(st.seg, false)
		st.segUsed = true
		return
	}
	in.SegmentOverride = segment(def, true)
}

// immOperand decodes the immediate-family argument kinds. Immediates are
// sign-extended to 64 bits internally regardless of encoded width.
func (st *decodeState) immOperand(
	in *Instruction,
	a argKind,
	opsize int,
) (Operand, error) {
	switch a {
	case argIb:
		v, err := st.readInt(1)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: 8}
		return Operand{Type: OperandImm, Reg: RegNone, Size: 8}, nil
	case argIbs:
		st.touchOpsize()
		v, err := st.readInt(1)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: 8}
		in.Flags |= FlagImmSigned
		return Operand{Type: OperandImm, Reg: RegNone, Size: uint16(opsize)}, nil
	case argIw:
		v, err := st.readInt(2)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: 16}
		return Operand{Type: OperandImm, Reg: RegNone, Size: 16}, nil
	case argIz:
		st.touchOpsize()
		n := 4
		if opsize == 16 {
			n = 2
		}
		v, err := st.readInt(n)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: uint16(8 * n)}
		if opsize == 64 {
			in.Flags |= FlagImmSigned
		}
		return Operand{Type: OperandImm, Reg: RegNone, Size: uint16(opsize)}, nil
	case argIv:
		st.touchOpsize()
		v, err := st.readInt(opsize / 8)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: uint16(opsize)}
		return Operand{Type: OperandImm, Reg: RegNone, Size: uint16(opsize)}, nil
	case argI1:
		in.Imm = Immediate{Value: 1, Size: 8}
		return Operand{Type: OperandImm, Reg: RegNone, Size: 8}, nil
	case argIwD:
		v, err := st.readUint(2)
		if err != nil {
			return Operand{}, err
		}
		in.Imm.Pair[0] = uint32(v)
		in.Imm.Size = 16
		return Operand{Type: OperandImm1, Reg: RegNone, Size: 16}, nil
	case argIbD:
		v, err := st.readUint(1)
		if err != nil {
			return Operand{}, err
		}
		in.Imm.Pair[1] = uint32(v)
		return Operand{Type: OperandImm2, Reg: RegNone, Size: 8}, nil

	case argJb:
		v, err := st.readInt(1)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: 8}
		in.Flags |= FlagImmSigned
		return Operand{Type: OperandPC, Reg: RegNone, Size: 8}, nil
	case argJz:
		st.touchOpsize()
		n := 4
		if opsize == 16 {
			n = 2
		}
		v, err := st.readInt(n)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{Value: v, Size: uint16(8 * n)}
		in.Flags |= FlagImmSigned
		return Operand{Type: OperandPC, Reg: RegNone, Size: uint16(8 * n)}, nil
	case argAp:
		st.touchOpsize()
		n := 4
		if opsize == 16 {
			n = 2
		}
		off, err := st.readUint(n)
		if err != nil {
			return Operand{}, err
		}
		seg, err := st.readUint(2)
		if err != nil {
			return Operand{}, err
		}
		in.Imm = Immediate{
			Size: uint16(16 + 8*n),
			Ptr:  FarPointer{Segment: uint16(seg), Offset: uint32(off)},
		}
		return Operand{Type: OperandPtr, Reg: RegNone, Size: uint16(8 * n)}, nil

	case argOb, argOv:
		n := st.addrSize() / 8
		st.asUsed = true
		v, err := st.readUint(n)
		if err != nil {
			return Operand{}, err
		}
		in.Disp = int64(v)
		in.DispSize = uint8(8 * n)
		st.setSegment(in, RegDS)
		size := uint16(8)
		if a == argOv {
			st.touchOpsize()
			size = uint16(opsize)
		}
		return Operand{Type: OperandDisp, Reg: RegNone, Size: size}, nil
	}
	return Operand{}, errUndefined
}

// finishPrefixes marks the prefixes that had no effect on the decoded
// instruction in the unused mask.
func (st *decodeState) finishPrefixes() {
	if st.lockPos >= 0 && !st.lockUsed {
		st.markUnused(st.lockPos)
	}
	if st.repPos >= 0 && !st.repUsed {
		st.markUnused(st.repPos)
	}
	if st.segPos >= 0 && !st.segUsed {
		st.markUnused(st.segPos)
	}
	if st.osPos >= 0 && !st.osUsed {
		st.markUnused(st.osPos)
	}
	if st.asPos >= 0 && !st.asUsed {
		st.markUnused(st.asPos)
	}
}
