package insts

// ssse3 builds the SSSE3 mm/xmm pairing selected by the 66 prefix.
func ssse3(op Opcode) opcodeEntry {
	return pfx(
		ins(op, argP, argQ).isa(ISASSSE3).w(),
		ins(op, argV, argW).isa(ISASSSE3).w(),
		invalid, invalid,
	)
}

// sse41 builds a 66-mandatory xmm,xmm/mem entry.
func sse41(op Opcode) opcodeEntry {
	return pfx(invalid, ins(op, argV, argW).isa(ISASSE41).w(), invalid, invalid)
}

// tableThreeByte38 is the 0F 38 opcode map. The FMA entries are gated on a
// VEX prefix by the decoder.
var tableThreeByte38 = [256]opcodeEntry{
	0x00: ssse3(OpPSHUFB),
	0x01: ssse3(OpPHADDW),
	0x02: ssse3(OpPHADDD),
	0x03: ssse3(OpPHADDSW),
	0x04: ssse3(OpPMADDUBSW),
	0x05: ssse3(OpPHSUBW),
	0x06: ssse3(OpPHSUBD),
	0x07: ssse3(OpPHSUBSW),
	0x08: ssse3(OpPSIGNB),
	0x09: ssse3(OpPSIGNW),
	0x0A: ssse3(OpPSIGND),
	0x0B: ssse3(OpPMULHRSW),

	0x10: sse41(OpPBLENDVB),
	0x14: sse41(OpBLENDVPS),
	0x15: sse41(OpBLENDVPD),
	0x17: sse41(OpPTEST),
	0x1C: ssse3(OpPABSB),
	0x1D: ssse3(OpPABSW),
	0x1E: ssse3(OpPABSD),

	0x20: sse41(OpPMOVSXBW),
	0x21: sse41(OpPMOVSXBD),
	0x22: sse41(OpPMOVSXBQ),
	0x23: sse41(OpPMOVSXWD),
	0x24: sse41(OpPMOVSXWQ),
	0x25: sse41(OpPMOVSXDQ),
	0x28: sse41(OpPMULDQ),
	0x29: sse41(OpPCMPEQQ),
	0x2A: pfx(invalid,
		ins(OpMOVNTDQA, argV, argM).isa(ISASSE41).w().memOnly(),
		invalid, invalid),
	0x2B: sse41(OpPACKUSDW),

	0x30: sse41(OpPMOVZXBW),
	0x31: sse41(OpPMOVZXBD),
	0x32: sse41(OpPMOVZXBQ),
	0x33: sse41(OpPMOVZXWD),
	0x34: sse41(OpPMOVZXWQ),
	0x35: sse41(OpPMOVZXDQ),
	0x37: pfx(invalid,
		ins(OpPCMPGTQ, argV, argW).isa(ISASSE42).w(),
		invalid, invalid),
	0x38: sse41(OpPMINSB),
	0x39: sse41(OpPMINSD),
	0x3A: sse41(OpPMINUW),
	0x3B: sse41(OpPMINUD),
	0x3C: sse41(OpPMAXSB),
	0x3D: sse41(OpPMAXSD),
	0x3E: sse41(OpPMAXUW),
	0x3F: sse41(OpPMAXUD),
	0x40: sse41(OpPMULLD),
	0x41: sse41(OpPHMINPOSUW),

	0x98: pfx(invalid, byW(
		ins(OpVFMADD132PS, argV, argH, argW).isa(ISAFMA).w(),
		ins(OpVFMADD132PD, argV, argH, argW).isa(ISAFMA).w()),
		invalid, invalid),
	0xA8: pfx(invalid, byW(
		ins(OpVFMADD213PS, argV, argH, argW).isa(ISAFMA).w(),
		ins(OpVFMADD213PD, argV, argH, argW).isa(ISAFMA).w()),
		invalid, invalid),
	0xB8: pfx(invalid, byW(
		ins(OpVFMADD231PS, argV, argH, argW).isa(ISAFMA).w(),
		ins(OpVFMADD231PD, argV, argH, argW).isa(ISAFMA).w()),
		invalid, invalid),

	0xDB: pfx(invalid,
		ins(OpAESIMC, argV, argW).isa(ISAAES).w(), invalid, invalid),
	0xDC: pfx(invalid,
		ins(OpAESENC, argV, argW).isa(ISAAES).w(), invalid, invalid),
	0xDD: pfx(invalid,
		ins(OpAESENCLAST, argV, argW).isa(ISAAES).w(), invalid, invalid),
	0xDE: pfx(invalid,
		ins(OpAESDEC, argV, argW).isa(ISAAES).w(), invalid, invalid),
	0xDF: pfx(invalid,
		ins(OpAESDECLAST, argV, argW).isa(ISAAES).w(), invalid, invalid),

	0xF0: pfx(
		ins(OpMOVBE, argGv, argM).isa(ISASSE42).w().memOnly(),
		invalid, invalid,
		ins(OpCRC32, argGd, argEb).isa(ISASSE42).w()),
	0xF1: pfx(
		ins(OpMOVBE, argM, argGv).isa(ISASSE42).w().memOnly(),
		invalid, invalid,
		ins(OpCRC32, argGd, argEv).isa(ISASSE42).w()),
}

// tableThreeByte3A is the 0F 3A opcode map. Every entry takes a trailing
// immediate byte.
var tableThreeByte3A = [256]opcodeEntry{
	0x08: pfx(invalid,
		ins(OpROUNDPS, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x09: pfx(invalid,
		ins(OpROUNDPD, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x0A: pfx(invalid,
		ins(OpROUNDSS, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x0B: pfx(invalid,
		ins(OpROUNDSD, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x0C: pfx(invalid,
		ins(OpBLENDPS, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x0D: pfx(invalid,
		ins(OpBLENDPD, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x0E: pfx(invalid,
		ins(OpPBLENDW, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x0F: pfx(
		ins(OpPALIGNR, argP, argQ, argIb).isa(ISASSSE3).w(),
		ins(OpPALIGNR, argV, argW, argIb).isa(ISASSSE3).w(),
		invalid, invalid),

	0x14: pfx(invalid,
		ins(OpPEXTRB, argEb, argV, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x15: pfx(invalid,
		ins(OpPEXTRW, argEw, argV, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x16: pfx(invalid, byW(
		ins(OpPEXTRD, argEd, argV, argIb).isa(ISASSE41).w(),
		ins(OpPEXTRQ, argEy, argV, argIb).isa(ISASSE41).w()),
		invalid, invalid),
	0x17: pfx(invalid,
		ins(OpEXTRACTPS, argEd, argV, argIb).isa(ISASSE41).w(),
		invalid, invalid),

	0x20: pfx(invalid,
		ins(OpPINSRB, argV, argEb, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x21: pfx(invalid,
		ins(OpINSERTPS, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x22: pfx(invalid, byW(
		ins(OpPINSRD, argV, argEd, argIb).isa(ISASSE41).w(),
		ins(OpPINSRQ, argV, argEy, argIb).isa(ISASSE41).w()),
		invalid, invalid),

	0x40: pfx(invalid,
		ins(OpDPPS, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x41: pfx(invalid,
		ins(OpDPPD, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x42: pfx(invalid,
		ins(OpMPSADBW, argV, argW, argIb).isa(ISASSE41).w(), invalid, invalid),
	0x44: pfx(invalid,
		ins(OpPCLMULQDQ, argV, argW, argIb).isa(ISACLMUL).w(),
		invalid, invalid),

	0x60: pfx(invalid,
		ins(OpPCMPESTRM, argV, argW, argIb).isa(ISASSE42).w(),
		invalid, invalid),
	0x61: pfx(invalid,
		ins(OpPCMPESTRI, argV, argW, argIb).isa(ISASSE42).w(),
		invalid, invalid),
	0x62: pfx(invalid,
		ins(OpPCMPISTRM, argV, argW, argIb).isa(ISASSE42).w(),
		invalid, invalid),
	0x63: pfx(invalid,
		ins(OpPCMPISTRI, argV, argW, argIb).isa(ISASSE42).w(),
		invalid, invalid),

	0xDF: pfx(invalid,
		ins(OpAESKEYGENASSIST, argV, argW, argIb).isa(ISAAES).w(),
		invalid, invalid),
}

// table3DNow maps the 0F 0F suffix byte, which follows the operands, to the
// 3DNow! instruction. All forms are mm, mm/m64.
var table3DNow = map[byte]instInfo{
	0x0C: {op: OpPI2FW, isa: ISA3DNowExt},
	0x0D: {op: OpPI2FD, isa: ISA3DNow},
	0x1C: {op: OpPF2IW, isa: ISA3DNowExt},
	0x1D: {op: OpPF2ID, isa: ISA3DNow},
	0x8A: {op: OpPFNACC, isa: ISA3DNowExt},
	0x8E: {op: OpPFPNACC, isa: ISA3DNowExt},
	0x90: {op: OpPFCMPGE, isa: ISA3DNow},
	0x94: {op: OpPFMIN, isa: ISA3DNow},
	0x96: {op: OpPFRCP, isa: ISA3DNow},
	0x97: {op: OpPFRSQRT, isa: ISA3DNow},
	0x9A: {op: OpPFSUB, isa: ISA3DNow},
	0x9E: {op: OpPFADD, isa: ISA3DNow},
	0xA0: {op: OpPFCMPGT, isa: ISA3DNow},
	0xA4: {op: OpPFMAX, isa: ISA3DNow},
	0xA6: {op: OpPFRCPIT1, isa: ISA3DNow},
	0xA7: {op: OpPFRSQIT1, isa: ISA3DNow},
	0xAA: {op: OpPFSUBR, isa: ISA3DNow},
	0xAE: {op: OpPFACC, isa: ISA3DNow},
	0xB0: {op: OpPFCMPEQ, isa: ISA3DNow},
	0xB4: {op: OpPFMUL, isa: ISA3DNow},
	0xB6: {op: OpPFRCPIT2, isa: ISA3DNow},
	0xB7: {op: OpPMULHRW, isa: ISA3DNow},
	0xBB: {op: OpPSWAPD, isa: ISA3DNowExt},
	0xBF: {op: OpPAVGUSB, isa: ISA3DNow},
}
