package insts

import (
	"errors"
	"fmt"
)

// Status reports the outcome of a Decode call.
type Status uint8

// Decode statuses.
const (
	// StatusSuccess means all available input was consumed or a stop
	// condition was hit cleanly.
	StatusSuccess Status = iota
	// StatusInputError means the call contract was violated (nil or
	// invalid config); no instructions are returned.
	StatusInputError
	// StatusCapacity means more instructions were decodable than the
	// capacity allowed. The returned instructions are valid; resume from
	// NextOffset.
	StatusCapacity
	// StatusFiltered means a feature flag excluded instructions from the
	// output although their bytes were consumed.
	StatusFiltered
)

var statusNames = [...]string{"Success", "InputError", "Capacity", "Filtered"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status?"
}

// Result carries the output of one Decode call.
type Result struct {
	// Status reports the overall outcome.
	Status Status
	// Instructions holds the decoded instructions in address order.
	Instructions []Instruction
	// NextOffset is the buffer offset immediately after the last byte
	// consumed, for chunked resumption.
	NextOffset int
}

// Decoder decodes x86/x64 machine code into Instruction records. It holds
// no state across calls; a single Decoder is safe for concurrent use.
type Decoder struct{}

// NewDecoder returns a ready Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode walks code instruction by instruction, honoring the configured
// mode and feature flags, and returns up to capacity decoded instructions.
// A capacity of zero or less means no limit. Undecodable bytes yield
// NOT_DECODABLE records and decoding continues; only a broken call
// contract fails the whole call.
func (d *Decoder) Decode(
	code []byte,
	cfg *Config,
	capacity int,
) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return &Result{Status: StatusInputError},
			fmt.Errorf("invalid decode config: %w", err)
	}

	res := &Result{Status: StatusSuccess}
	filtered := false
	offset := 0
	for offset < len(code) {
		if capacity > 0 && len(res.Instructions) >= capacity {
			res.Status = StatusCapacity
			break
		}

		in := decodeOne(code, offset, cfg)
		offset += in.Size

		if cfg.Features&FeatureFlowControlOnly != 0 &&
			(!in.IsDecodable() || in.FC == FCNone) {
			filtered = true
		} else {
			res.Instructions = append(res.Instructions, in)
		}

		if in.IsDecodable() && cfg.Features&stopFeature(in.FC) != 0 {
			break
		}
	}
	res.NextOffset = offset
	if filtered && res.Status == StatusSuccess {
		res.Status = StatusFiltered
	}
	return res, nil
}

// stopFeature maps a flow-control class to the feature flag that stops
// decoding after it.
func stopFeature(fc FlowControl) Feature {
	switch fc {
	case FCCall:
		return FeatureStopOnCall
	case FCReturn:
		return FeatureStopOnRet
	case FCSysCall:
		return FeatureStopOnSysCall
	case FCUncondBranch:
		return FeatureStopOnUncondBranch
	case FCCondBranch:
		return FeatureStopOnCondBranch
	case FCInterrupt:
		return FeatureStopOnInt
	}
	return 0
}

// In-band decode failures. They never escape decodeOne; each maps to a
// NOT_DECODABLE record with a forward-progress size.
var (
	errTruncated = errors.New("instruction truncated at end of buffer")
	errUndefined = errors.New("undefined opcode")
	errTooLong   = errors.New("instruction exceeds 15 bytes")
)

// decodeState is the scratch state of a single instruction decode. A fresh
// value lives on the stack of each decodeOne call, so decoding shares no
// mutable state between instructions or goroutines.
type decodeState struct {
	code  []byte
	start int
	pos   int
	limit int
	cfg   *Config
	mode  int

	lockPos int
	repPos  int
	segPos  int
	osPos   int
	asPos   int
	rexPos  int

	rep  byte
	seg  Reg
	os66 bool
	as67 bool
	rex  byte

	vex     bool
	vexL256 bool
	vexPP   byte
	vexMap  byte
	vexV    byte

	opByte byte

	modrm     byte
	modrmSeen bool

	unused uint16

	lockUsed    bool
	repUsed     bool
	segUsed     bool
	osUsed      bool
	osMandatory bool
	asUsed      bool
}

// decodeOne decodes the single instruction at code[offset:]. It always
// returns an instruction with Size >= 1.
func decodeOne(code []byte, offset int, cfg *Config) Instruction {
	st := decodeState{
		code:    code,
		start:   offset,
		pos:     offset,
		cfg:     cfg,
		mode:    cfg.Mode.Bits(),
		lockPos: -1,
		repPos:  -1,
		segPos:  -1,
		osPos:   -1,
		asPos:   -1,
		rexPos:  -1,
		seg:     RegNone,
	}
	st.limit = len(code)
	if max := offset + MaxInstructionLen; st.limit > max {
		st.limit = max
	}

	in := Instruction{
		Address:         cfg.BaseAddress + uint64(offset),
		SegmentOverride: SegmentNone,
		Base:            RegNone,
		Index:           RegNone,
	}
	if err := st.decode(&in); err != nil {
		return st.notDecodable(err)
	}
	in.Size = st.pos - st.start
	st.finishPrefixes()
	in.UnusedPrefixMask = st.unused
	return in
}

// notDecodable builds the failure record for an in-band decode error,
// consuming enough bytes to guarantee forward progress.
func (st *decodeState) notDecodable(err error) Instruction {
	size := 1
	if err == errTruncated {
		size = len(st.code) - st.start
		if size < 1 {
			size = 1
		}
	}
	return Instruction{
		Address: st.cfg.BaseAddress + uint64(st.start),
		Size:    size,
		Opcode:  OpInvalid,
		Flags:   FlagsNotDecodable,
	}
}

func (st *decodeState) readByte() (byte, error) {
	if st.pos >= st.limit {
		if st.pos >= len(st.code) {
			return 0, errTruncated
		}
		return 0, errTooLong
	}
	b := st.code[st.pos]
	st.pos++
	return b, nil
}

// readUint reads an n-byte little-endian value.
func (st *decodeState) readUint(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, err := st.readByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// readInt reads an n-byte little-endian value sign-extended to 64 bits.
func (st *decodeState) readInt(n int) (int64, error) {
	v, err := st.readUint(n)
	if err != nil {
		return 0, err
	}
	shift := 64 - 8*n
	return int64(v) << shift >> shift, nil
}

// readModRM consumes the ModRM byte once and caches it.
func (st *decodeState) readModRM() (byte, error) {
	if st.modrmSeen {
		return st.modrm, nil
	}
	b, err := st.readByte()
	if err != nil {
		return 0, err
	}
	st.modrm = b
	st.modrmSeen = true
	return b, nil
}

func (st *decodeState) rexW() int { return int(st.rex>>3) & 1 }
func (st *decodeState) rexR() int { return int(st.rex>>2) & 1 }
func (st *decodeState) rexX() int { return int(st.rex>>1) & 1 }
func (st *decodeState) rexB() int { return int(st.rex) & 1 }

// markUnused records the prefix byte at absolute position pos as
// superfluous.
func (st *decodeState) markUnused(pos int) {
	st.unused |= 1 << uint(pos-st.start)
}

// decode runs the full per-instruction pipeline: prefixes, opcode
// resolution, operands, immediates.
func (st *decodeState) decode(in *Instruction) error {
	if err := st.scanPrefixes(); err != nil {
		return err
	}

	b, err := st.readByte()
	if err != nil {
		return err
	}

	if b == 0xC4 || b == 0xC5 {
		isVEX, err := st.checkVEX()
		if err != nil {
			return err
		}
		if isVEX {
			return st.decodeVEX(in, b)
		}
	}

	st.opByte = b
	var entry opcodeEntry
	switch {
	case b == 0x0F:
		return st.decodeTwoByte(in)
	case b >= 0xD8 && b <= 0xDF:
		return st.decodeFPU(in, b)
	case b == 0x90 && st.rep == 0xF3 && st.rexB() == 0:
		// F3 90 is PAUSE, not rep nop.
		st.repUsed = true
		in.Opcode = OpPAUSE
		in.ISA = ISASSE2
		return nil
	default:
		entry = tableOneByte[b]
	}
	return st.decodeFromEntry(in, entry)
}

// scanPrefixes consumes legacy prefixes and, in 64-bit mode, a trailing
// REX byte. Duplicate prefixes within a category and a REX not directly
// preceding the opcode are recorded as unused.
func (st *decodeState) scanPrefixes() error {
	for {
		b, err := st.readByte()
		if err != nil {
			return err
		}
		p := st.pos - 1
		switch b {
		case 0xF0:
			if st.lockPos >= 0 {
				st.markUnused(st.lockPos)
			}
			st.lockPos = p
		case 0xF2, 0xF3:
			if st.repPos >= 0 {
				st.markUnused(st.repPos)
			}
			st.rep = b
			st.repPos = p
		case 0x26, 0x2E, 0x36, 0x3E, 0x64, 0x65:
			if st.segPos >= 0 {
				st.markUnused(st.segPos)
			}
			if st.mode == 64 && b != 0x64 && b != 0x65 {
				// cs/ds/es/ss overrides are ignored in long mode.
				st.markUnused(p)
				st.seg = RegNone
				st.segPos = -1
			} else {
				st.seg = segPrefixReg(b)
				st.segPos = p
			}
		case 0x66:
			if st.osPos >= 0 {
				st.markUnused(st.osPos)
			}
			st.os66 = true
			st.osPos = p
		case 0x67:
			if st.asPos >= 0 {
				st.markUnused(st.asPos)
			}
			st.as67 = true
			st.asPos = p
		default:
			if st.mode == 64 && b&0xF0 == 0x40 {
				if st.rexPos >= 0 {
					st.markUnused(st.rexPos)
				}
				st.rex = b
				st.rexPos = p
				continue
			}
			st.pos = p
			return nil
		}
		// A legacy prefix after REX voids the REX.
		if st.rexPos >= 0 && st.rexPos < p {
			st.markUnused(st.rexPos)
			st.rex = 0
			st.rexPos = -1
		}
	}
}

// segPrefixReg maps a segment-override prefix byte to its register.
func segPrefixReg(b byte) Reg {
	switch b {
	case 0x26:
		return RegES
	case 0x2E:
		return RegCS
	case 0x36:
		return RegSS
	case 0x3E:
		return RegDS
	case 0x64:
		return RegFS
	case 0x65:
		return RegGS
	}
	return RegNone
}

// decodeTwoByte resolves the 0F escape: the second opcode byte, the
// 38/3A three-byte escapes, the 0F0F 3DNow! escape, and the register
// forms of 0F01 and 0FAE that live outside the group tables.
func (st *decodeState) decodeTwoByte(in *Instruction) error {
	b2, err := st.readByte()
	if err != nil {
		return err
	}
	st.opByte = b2
	switch b2 {
	case 0x38:
		b3, err := st.readByte()
		if err != nil {
			return err
		}
		st.opByte = b3
		return st.decodeFromEntry(in, tableThreeByte38[b3])
	case 0x3A:
		b3, err := st.readByte()
		if err != nil {
			return err
		}
		st.opByte = b3
		return st.decodeFromEntry(in, tableThreeByte3A[b3])
	case 0x0F:
		return st.decode3DNow(in)
	case 0x01:
		m, err := st.readModRM()
		if err != nil {
			return err
		}
		if m >= 0xC0 {
			return st.decode0F01Reg(in, m)
		}
	case 0xAE:
		m, err := st.readModRM()
		if err != nil {
			return err
		}
		if m >= 0xC0 {
			return st.decodeFence(in, m)
		}
	}
	return st.decodeFromEntry(in, tableTwoByte[b2])
}

// decode0F01Reg handles the register forms of 0F 01: the VMX/SVM calls,
// monitor/mwait, swapgs, and rdtscp.
func (st *decodeState) decode0F01Reg(in *Instruction, m byte) error {
	type regForm struct {
		op  Opcode
		isa ISAClass
	}
	forms := map[byte]regForm{
		0xC1: {OpVMCALL, ISAVMX},
		0xC2: {OpVMLAUNCH, ISAVMX},
		0xC3: {OpVMRESUME, ISAVMX},
		0xC4: {OpVMXOFF, ISAVMX},
		0xC8: {OpMONITOR, ISASSE3},
		0xC9: {OpMWAIT, ISASSE3},
		0xD8: {OpVMRUN, ISASVM},
		0xD9: {OpVMMCALL, ISASVM},
		0xDA: {OpVMLOAD, ISASVM},
		0xDB: {OpVMSAVE, ISASVM},
		0xDC: {OpSTGI, ISASVM},
		0xDD: {OpCLGI, ISASVM},
		0xDE: {OpSKINIT, ISASVM},
		0xDF: {OpINVLPGA, ISASVM},
		0xF8: {OpSWAPGS, ISAInteger},
		0xF9: {OpRDTSCP, ISAInteger},
	}
	f, ok := forms[m]
	if !ok {
		return errUndefined
	}
	if f.op == OpSWAPGS && st.mode != 64 {
		return errUndefined
	}
	in.Opcode = f.op
	in.ISA = f.isa
	if f.op == OpVMCALL || f.op == OpVMMCALL {
		in.FC = FCSysCall
	}
	return nil
}

// decodeFence handles the register forms of 0F AE.
func (st *decodeState) decodeFence(in *Instruction, m byte) error {
	switch (m >> 3) & 7 {
	case 5:
		in.Opcode = OpLFENCE
		in.ISA = ISASSE2
	case 6:
		in.Opcode = OpMFENCE
		in.ISA = ISASSE2
	case 7:
		in.Opcode = OpSFENCE
		in.ISA = ISASSE
	default:
		return errUndefined
	}
	return nil
}

// decode3DNow handles the 0F 0F escape: the operands come first and the
// instruction-selecting suffix byte last.
func (st *decodeState) decode3DNow(in *Instruction) error {
	m, err := st.readModRM()
	if err != nil {
		return err
	}
	in.Operands[0] = Operand{
		Type: OperandReg,
		Reg:  RegMM0 + Reg((m>>3)&7),
		Size: 64,
	}
	src, err := st.rmOperand(in, argQ, 64)
	if err != nil {
		return err
	}
	in.Operands[1] = src

	suffix, err := st.readByte()
	if err != nil {
		return err
	}
	info, ok := table3DNow[suffix]
	if !ok {
		return errUndefined
	}
	in.Opcode = info.op
	in.ISA = info.isa
	in.Flags |= FlagDstWritable
	return nil
}

// decodeFPU handles the D8-DF escapes through the two-level x87 maps: the
// memory forms keyed by ModRM.reg, the register forms by the full ModRM
// byte.
func (st *decodeState) decodeFPU(in *Instruction, b byte) error {
	esc := int(b - 0xD8)
	m, err := st.readModRM()
	if err != nil {
		return err
	}
	in.ISA = ISAFPU

	if m < 0xC0 {
		fi := fpuMem[esc][(m>>3)&7]
		if fi.op == OpInvalid {
			return errUndefined
		}
		op, err := st.decodeMem(in, fi.bits)
		if err != nil {
			return err
		}
		in.Opcode = fi.op
		in.Operands[0] = op
		return nil
	}

	fi := fpuReg[esc][m-0xC0]
	if fi.op == OpInvalid {
		return errUndefined
	}
	in.Opcode = fi.op
	in.FC = fi.fc
	sti := Operand{Type: OperandReg, Reg: RegST0 + Reg(m&7), Size: 80}
	st0 := Operand{Type: OperandReg, Reg: RegST0, Size: 80}
	switch fi.form {
	case fpSTi:
		in.Operands[0] = sti
	case fpST0STi:
		in.Operands[0] = st0
		in.Operands[1] = sti
	case fpSTiST0:
		in.Operands[0] = sti
		in.Operands[1] = st0
	case fpAX:
		in.Operands[0] = Operand{Type: OperandReg, Reg: RegAX, Size: 16}
	}
	return nil
}

// checkVEX decides whether a C4/C5 byte opens a VEX prefix. In 64-bit
// mode it always does; in legacy modes only when the following byte's top
// two bits are set (otherwise the byte is LES/LDS with a ModRM).
func (st *decodeState) checkVEX() (bool, error) {
	if st.mode == 64 {
		return true, nil
	}
	if st.pos >= st.limit {
		// Let the table path report truncation.
		return false, nil
	}
	return st.code[st.pos]&0xC0 == 0xC0, nil
}

// decodeVEX parses a VEX2/VEX3 prefix, folds its REX-equivalent bits into
// the REX state, and dispatches into the escape map it selects.
func (st *decodeState) decodeVEX(in *Instruction, lead byte) error {
	// Legacy 66/F2/F3 and REX cannot combine with VEX.
	if st.osPos >= 0 {
		st.markUnused(st.osPos)
		st.os66 = false
	}
	if st.repPos >= 0 {
		st.markUnused(st.repPos)
		st.rep = 0
	}
	if st.rexPos >= 0 {
		st.markUnused(st.rexPos)
		st.rex = 0
	}

	st.vex = true
	if lead == 0xC5 {
		b1, err := st.readByte()
		if err != nil {
			return err
		}
		st.rex = 0x40 | byte(^b1>>5)&0x04
		st.vexV = (^b1 >> 3) & 0x0F
		st.vexL256 = b1&0x04 != 0
		st.vexPP = b1 & 3
		st.vexMap = 1
	} else {
		b1, err := st.readByte()
		if err != nil {
			return err
		}
		b2, err := st.readByte()
		if err != nil {
			return err
		}
		st.rex = 0x40 | byte(^b1>>5)&0x07 | (b2>>4)&0x08
		st.vexMap = b1 & 0x1F
		st.vexV = (^b2 >> 3) & 0x0F
		st.vexL256 = b2&0x04 != 0
		st.vexPP = b2 & 3
	}
	if st.mode != 64 {
		st.rex &= 0x48 // only W survives outside long mode
		st.vexV &= 7
	}

	b, err := st.readByte()
	if err != nil {
		return err
	}
	st.opByte = b

	var entry opcodeEntry
	switch st.vexMap {
	case 1:
		if b == 0x77 {
			if st.vexL256 {
				in.Opcode = OpVZEROALL
			} else {
				in.Opcode = OpVZEROUPPER
			}
			in.ISA = ISAAVX
			return nil
		}
		entry = tableTwoByte[b]
	case 2:
		entry = tableThreeByte38[b]
	case 3:
		entry = tableThreeByte3A[b]
	default:
		return errUndefined
	}
	return st.decodeFromEntry(in, entry)
}

// resolve walks an opcode table entry down to a concrete template,
// following group, mandatory-prefix, size, W, and mode discriminators.
func (st *decodeState) resolve(e opcodeEntry) (instInfo, error) {
	var inherited [MaxOperands]argKind
	for {
		switch e.kind {
		case entryInvalid:
			return instInfo{}, errUndefined
		case entryInst:
			info := e.inst
			if info.args[0] == argNone && inherited[0] != argNone {
				info.args = inherited
			}
			return info, nil
		case entryGroup:
			m, err := st.readModRM()
			if err != nil {
				return instInfo{}, err
			}
			if e.inst.args[0] != argNone {
				inherited = e.inst.args
			}
			e = opcodeGroups[e.group][(m>>3)&7]
		case entryPrefix:
			e = st.selectByPrefix(e.vars)
		case entryOpsize:
			switch st.operandSize(0) {
			case 16:
				e = e.vars[0]
			case 32:
				e = e.vars[1]
			default:
				e = e.vars[2]
			}
		case entryAddrsize:
			switch st.addrSize() {
			case 16:
				e = e.vars[0]
			case 32:
				e = e.vars[1]
			default:
				e = e.vars[2]
			}
			st.asUsed = true
		case entryW:
			e = e.vars[st.rexW()]
		case entryMode:
			if st.mode == 64 {
				e = e.vars[1]
			} else {
				e = e.vars[0]
			}
		default:
			return instInfo{}, errUndefined
		}
	}
}

// selectByPrefix picks the variant selected by the mandatory prefix.
// Repeat prefixes outrank 66; a prefix with no matching variant falls back
// to the plain form and keeps its ordinary meaning.
func (st *decodeState) selectByPrefix(vars *[4]opcodeEntry) opcodeEntry {
	if st.vex {
		return vars[st.vexPP]
	}
	if st.rep == 0xF3 && vars[2].kind != entryInvalid {
		st.repUsed = true
		return vars[2]
	}
	if st.rep == 0xF2 && vars[3].kind != entryInvalid {
		st.repUsed = true
		return vars[3]
	}
	if st.os66 && vars[1].kind != entryInvalid {
		st.osUsed = true
		st.osMandatory = true
		return vars[1]
	}
	return vars[0]
}

// decodeFromEntry resolves the table entry and applies the resulting
// template to the instruction.
func (st *decodeState) decodeFromEntry(in *Instruction, e opcodeEntry) error {
	info, err := st.resolve(e)
	if err != nil {
		return err
	}
	if info.flags&fI64 != 0 && st.mode == 64 {
		return errUndefined
	}
	if info.flags&fO64 != 0 && st.mode != 64 {
		return errUndefined
	}
	if st.vex && !vexLegal(&info) {
		return errUndefined
	}
	if !st.vex && (info.isa == ISAFMA || info.isa == ISAAVX) {
		return errUndefined
	}
	return st.applyTemplate(in, &info)
}

// vexLegal reports whether the template may carry a VEX prefix.
func vexLegal(info *instInfo) bool {
	switch info.isa {
	case ISASSE, ISASSE2, ISASSE3, ISASSSE3, ISASSE41, ISASSE42,
		ISAAVX, ISAFMA, ISAAES, ISACLMUL:
		return true
	}
	return false
}
