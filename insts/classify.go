package insts

// Per-opcode classification, derived from the opcode tables at package
// init so callers can query an instruction class without decoding.
var (
	opcodeFC  [opcodeCount]FlowControl
	opcodeISA [opcodeCount]ISAClass
)

func init() {
	buildFPURegTable()

	for _, e := range tableOneByte {
		walkEntry(e)
	}
	for _, e := range tableTwoByte {
		walkEntry(e)
	}
	for _, e := range tableThreeByte38 {
		walkEntry(e)
	}
	for _, e := range tableThreeByte3A {
		walkEntry(e)
	}
	for _, g := range opcodeGroups {
		for _, e := range g {
			walkEntry(e)
		}
	}
	for _, row := range fpuMem {
		for _, fi := range row {
			record(fi.op, FCNone, ISAFPU)
		}
	}
	for _, row := range fpuReg {
		for _, fi := range row {
			record(fi.op, fi.fc, ISAFPU)
		}
	}
	for _, info := range table3DNow {
		record(info.op, FCNone, info.isa)
	}

	// Forms the decoder resolves outside the tables.
	record(OpPAUSE, FCNone, ISASSE2)
	record(OpLFENCE, FCNone, ISASSE2)
	record(OpMFENCE, FCNone, ISASSE2)
	record(OpSFENCE, FCNone, ISASSE)
	record(OpVZEROUPPER, FCNone, ISAAVX)
	record(OpVZEROALL, FCNone, ISAAVX)
	record(OpVMCALL, FCSysCall, ISAVMX)
	record(OpVMLAUNCH, FCNone, ISAVMX)
	record(OpVMRESUME, FCNone, ISAVMX)
	record(OpVMXOFF, FCNone, ISAVMX)
	record(OpMONITOR, FCNone, ISASSE3)
	record(OpMWAIT, FCNone, ISASSE3)
	record(OpVMRUN, FCNone, ISASVM)
	record(OpVMMCALL, FCSysCall, ISASVM)
	record(OpVMLOAD, FCNone, ISASVM)
	record(OpVMSAVE, FCNone, ISASVM)
	record(OpSTGI, FCNone, ISASVM)
	record(OpCLGI, FCNone, ISASVM)
	record(OpSKINIT, FCNone, ISASVM)
	record(OpINVLPGA, FCNone, ISASVM)
	record(OpSWAPGS, FCNone, ISAInteger)
	record(OpRDTSCP, FCNone, ISAInteger)
}

func walkEntry(e opcodeEntry) {
	switch e.kind {
	case entryInst:
		record(e.inst.op, e.inst.fc, e.inst.isa)
	case entryPrefix, entryOpsize, entryAddrsize, entryW, entryMode:
		for _, v := range e.vars {
			walkEntry(v)
		}
	}
}

func record(op Opcode, fc FlowControl, isa ISAClass) {
	if op == OpInvalid {
		return
	}
	opcodeFC[op] = fc
	opcodeISA[op] = isa
}

// FlowControlOf returns the flow-control class of the opcode.
func FlowControlOf(op Opcode) FlowControl {
	if int(op) < len(opcodeFC) {
		return opcodeFC[op]
	}
	return FCNone
}

// ISAClassOf returns the instruction-set class of the opcode.
func ISAClassOf(op Opcode) ISAClass {
	if int(op) < len(opcodeISA) {
		return opcodeISA[op]
	}
	return ISAInteger
}
