package insts

// mmxSSE2 builds the common MMX/SSE2 pairing: the bare form operates on mm
// registers, the 66-prefixed form on xmm registers.
func mmxSSE2(op Opcode) opcodeEntry {
	return pfx(
		ins(op, argP, argQ).isa(ISAMMX).w(),
		ins(op, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	)
}

// sseInt is like mmxSSE2 for the AMD integer extensions that predate SSE2:
// the mm form already belongs to SSE.
func sseInt(op Opcode) opcodeEntry {
	return pfx(
		ins(op, argP, argQ).isa(ISASSE).w(),
		ins(op, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	)
}

// ps4 builds the packed/scalar quad selected by mandatory prefix:
// ps (none), pd (66), ss (F3), sd (F2).
func ps4(opPS, opPD, opSS, opSD Opcode) opcodeEntry {
	return pfx(
		ins(opPS, argV, argW).isa(ISASSE).w(),
		ins(opPD, argV, argW).isa(ISASSE2).w(),
		ins(opSS, argV, argW).isa(ISASSE).w(),
		ins(opSD, argV, argW).isa(ISASSE2).w(),
	)
}

// tableTwoByte is the 0F-escaped opcode map. The 38/3A escapes, the 0F0F
// 3DNow! escape, and the register forms of 0F01/0FAE are resolved by the
// decoder.
var tableTwoByte = [256]opcodeEntry{
	0x00: grp(grpIdx6),
	0x01: grp(grpIdx7),
	0x02: ins(OpLAR, argGv, argEw).w(),
	0x03: ins(OpLSL, argGv, argEw).w(),
	0x05: ins(OpSYSCALL).fc(FCSysCall),
	0x06: ins(OpCLTS),
	0x07: ins(OpSYSRET).fc(FCSysCall),
	0x08: ins(OpINVD),
	0x09: ins(OpWBINVD),
	0x0B: ins(OpUD2),
	0x0D: ins(OpPREFETCHW, argM).isa(ISA3DNow).memOnly(),
	0x0E: ins(OpFEMMS).isa(ISA3DNow),

	0x10: ps4(OpMOVUPS, OpMOVUPD, OpMOVSS, OpMOVSD),
	0x11: pfx(
		ins(OpMOVUPS, argW, argV).isa(ISASSE).w(),
		ins(OpMOVUPD, argW, argV).isa(ISASSE2).w(),
		ins(OpMOVSS, argW, argV).isa(ISASSE).w(),
		ins(OpMOVSD, argW, argV).isa(ISASSE2).w(),
	),
	0x12: pfx(
		ins(OpMOVLPS, argV, argW).isa(ISASSE).w(),
		ins(OpMOVLPD, argV, argW).isa(ISASSE2).w(),
		ins(OpMOVSLDUP, argV, argW).isa(ISASSE3).w(),
		ins(OpMOVDDUP, argV, argW).isa(ISASSE3).w(),
	),
	0x13: pfx(
		ins(OpMOVLPS, argW, argV).isa(ISASSE).w().memOnly(),
		ins(OpMOVLPD, argW, argV).isa(ISASSE2).w().memOnly(),
		invalid, invalid,
	),
	0x14: pfx(
		ins(OpUNPCKLPS, argV, argW).isa(ISASSE).w(),
		ins(OpUNPCKLPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x15: pfx(
		ins(OpUNPCKHPS, argV, argW).isa(ISASSE).w(),
		ins(OpUNPCKHPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x16: pfx(
		ins(OpMOVHPS, argV, argW).isa(ISASSE).w(),
		ins(OpMOVHPD, argV, argW).isa(ISASSE2).w(),
		ins(OpMOVSHDUP, argV, argW).isa(ISASSE3).w(),
		invalid,
	),
	0x17: pfx(
		ins(OpMOVHPS, argW, argV).isa(ISASSE).w().memOnly(),
		ins(OpMOVHPD, argW, argV).isa(ISASSE2).w().memOnly(),
		invalid, invalid,
	),
	0x18: grp(grpIdx16),
	0x1F: ins(OpNOP, argEv),

	0x20: ins(OpMOV, argEy, argCr).w(),
	0x21: ins(OpMOV, argEy, argDr).w(),
	0x22: ins(OpMOV, argCr, argEy).w(),
	0x23: ins(OpMOV, argDr, argEy).w(),
	0x28: pfx(
		ins(OpMOVAPS, argV, argW).isa(ISASSE).w(),
		ins(OpMOVAPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x29: pfx(
		ins(OpMOVAPS, argW, argV).isa(ISASSE).w(),
		ins(OpMOVAPD, argW, argV).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x2A: pfx(
		ins(OpCVTPI2PS, argV, argQ).isa(ISASSE).w(),
		ins(OpCVTPI2PD, argV, argQ).isa(ISASSE2).w(),
		ins(OpCVTSI2SS, argV, argEy).isa(ISASSE).w(),
		ins(OpCVTSI2SD, argV, argEy).isa(ISASSE2).w(),
	),
	0x2B: pfx(
		ins(OpMOVNTPS, argW, argV).isa(ISASSE).w().memOnly(),
		ins(OpMOVNTPD, argW, argV).isa(ISASSE2).w().memOnly(),
		invalid, invalid,
	),
	0x2C: pfx(
		ins(OpCVTTPS2PI, argP, argW).isa(ISASSE).w(),
		ins(OpCVTTPD2PI, argP, argW).isa(ISASSE2).w(),
		ins(OpCVTTSS2SI, argGy, argW).isa(ISASSE).w(),
		ins(OpCVTTSD2SI, argGy, argW).isa(ISASSE2).w(),
	),
	0x2D: pfx(
		ins(OpCVTPS2PI, argP, argW).isa(ISASSE).w(),
		ins(OpCVTPD2PI, argP, argW).isa(ISASSE2).w(),
		ins(OpCVTSS2SI, argGy, argW).isa(ISASSE).w(),
		ins(OpCVTSD2SI, argGy, argW).isa(ISASSE2).w(),
	),
	0x2E: pfx(
		ins(OpUCOMISS, argV, argW).isa(ISASSE),
		ins(OpUCOMISD, argV, argW).isa(ISASSE2),
		invalid, invalid,
	),
	0x2F: pfx(
		ins(OpCOMISS, argV, argW).isa(ISASSE),
		ins(OpCOMISD, argV, argW).isa(ISASSE2),
		invalid, invalid,
	),

	0x30: ins(OpWRMSR),
	0x31: ins(OpRDTSC),
	0x32: ins(OpRDMSR),
	0x33: ins(OpRDPMC),
	0x34: ins(OpSYSENTER).fc(FCSysCall),
	0x35: ins(OpSYSEXIT).fc(FCSysCall),

	0x40: ins(OpCMOVO, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x41: ins(OpCMOVNO, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x42: ins(OpCMOVB, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x43: ins(OpCMOVAE, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x44: ins(OpCMOVZ, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x45: ins(OpCMOVNZ, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x46: ins(OpCMOVBE, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x47: ins(OpCMOVA, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x48: ins(OpCMOVS, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x49: ins(OpCMOVNS, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x4A: ins(OpCMOVP, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x4B: ins(OpCMOVNP, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x4C: ins(OpCMOVL, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x4D: ins(OpCMOVGE, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x4E: ins(OpCMOVLE, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),
	0x4F: ins(OpCMOVG, argGv, argEv).isa(ISAP6).fc(FCCondMove).w(),

	0x50: pfx(
		ins(OpMOVMSKPS, argGd, argU).isa(ISASSE).w(),
		ins(OpMOVMSKPD, argGd, argU).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x51: ps4(OpSQRTPS, OpSQRTPD, OpSQRTSS, OpSQRTSD),
	0x52: pfx(
		ins(OpRSQRTPS, argV, argW).isa(ISASSE).w(),
		invalid,
		ins(OpRSQRTSS, argV, argW).isa(ISASSE).w(),
		invalid,
	),
	0x53: pfx(
		ins(OpRCPPS, argV, argW).isa(ISASSE).w(),
		invalid,
		ins(OpRCPSS, argV, argW).isa(ISASSE).w(),
		invalid,
	),
	0x54: pfx(
		ins(OpANDPS, argV, argW).isa(ISASSE).w(),
		ins(OpANDPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x55: pfx(
		ins(OpANDNPS, argV, argW).isa(ISASSE).w(),
		ins(OpANDNPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x56: pfx(
		ins(OpORPS, argV, argW).isa(ISASSE).w(),
		ins(OpORPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x57: pfx(
		ins(OpXORPS, argV, argW).isa(ISASSE).w(),
		ins(OpXORPD, argV, argW).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0x58: ps4(OpADDPS, OpADDPD, OpADDSS, OpADDSD),
	0x59: ps4(OpMULPS, OpMULPD, OpMULSS, OpMULSD),
	0x5A: ps4(OpCVTPS2PD, OpCVTPD2PS, OpCVTSS2SD, OpCVTSD2SS),
	0x5B: pfx(
		ins(OpCVTDQ2PS, argV, argW).isa(ISASSE2).w(),
		ins(OpCVTPS2DQ, argV, argW).isa(ISASSE2).w(),
		ins(OpCVTTPS2DQ, argV, argW).isa(ISASSE2).w(),
		invalid,
	),
	0x5C: ps4(OpSUBPS, OpSUBPD, OpSUBSS, OpSUBSD),
	0x5D: ps4(OpMINPS, OpMINPD, OpMINSS, OpMINSD),
	0x5E: ps4(OpDIVPS, OpDIVPD, OpDIVSS, OpDIVSD),
	0x5F: ps4(OpMAXPS, OpMAXPD, OpMAXSS, OpMAXSD),

	0x60: mmxSSE2(OpPUNPCKLBW),
	0x61: mmxSSE2(OpPUNPCKLWD),
	0x62: mmxSSE2(OpPUNPCKLDQ),
	0x63: mmxSSE2(OpPACKSSWB),
	0x64: mmxSSE2(OpPCMPGTB),
	0x65: mmxSSE2(OpPCMPGTW),
	0x66: mmxSSE2(OpPCMPGTD),
	0x67: mmxSSE2(OpPACKUSWB),
	0x68: mmxSSE2(OpPUNPCKHBW),
	0x69: mmxSSE2(OpPUNPCKHWD),
	0x6A: mmxSSE2(OpPUNPCKHDQ),
	0x6B: mmxSSE2(OpPACKSSDW),
	0x6C: pfx(invalid,
		ins(OpPUNPCKLQDQ, argV, argW).isa(ISASSE2).w(), invalid, invalid),
	0x6D: pfx(invalid,
		ins(OpPUNPCKHQDQ, argV, argW).isa(ISASSE2).w(), invalid, invalid),
	0x6E: pfx(
		byW(ins(OpMOVD, argP, argEy).isa(ISAMMX).w(),
			ins(OpMOVQ, argP, argEy).isa(ISAMMX).w()),
		byW(ins(OpMOVD, argV, argEy).isa(ISASSE2).w(),
			ins(OpMOVQ, argV, argEy).isa(ISASSE2).w()),
		invalid, invalid,
	),
	0x6F: pfx(
		ins(OpMOVQ, argP, argQ).isa(ISAMMX).w(),
		ins(OpMOVDQA, argV, argW).isa(ISASSE2).w(),
		ins(OpMOVDQU, argV, argW).isa(ISASSE2).w(),
		invalid,
	),

	0x70: pfx(
		ins(OpPSHUFW, argP, argQ, argIb).isa(ISASSE).w(),
		ins(OpPSHUFD, argV, argW, argIb).isa(ISASSE2).w(),
		ins(OpPSHUFHW, argV, argW, argIb).isa(ISASSE2).w(),
		ins(OpPSHUFLW, argV, argW, argIb).isa(ISASSE2).w(),
	),
	0x71: grp(grpIdx12),
	0x72: grp(grpIdx13),
	0x73: grp(grpIdx14),
	0x74: mmxSSE2(OpPCMPEQB),
	0x75: mmxSSE2(OpPCMPEQW),
	0x76: mmxSSE2(OpPCMPEQD),
	0x77: ins(OpEMMS).isa(ISAMMX), // VEX form decodes as vzeroupper/vzeroall
	0x7E: pfx(
		byW(ins(OpMOVD, argEy, argP).isa(ISAMMX).w(),
			ins(OpMOVQ, argEy, argP).isa(ISAMMX).w()),
		byW(ins(OpMOVD, argEy, argV).isa(ISASSE2).w(),
			ins(OpMOVQ, argEy, argV).isa(ISASSE2).w()),
		ins(OpMOVQ, argV, argW).isa(ISASSE2).w(),
		invalid,
	),
	0x7F: pfx(
		ins(OpMOVQ, argQ, argP).isa(ISAMMX).w(),
		ins(OpMOVDQA, argW, argV).isa(ISASSE2).w(),
		ins(OpMOVDQU, argW, argV).isa(ISASSE2).w(),
		invalid,
	),

	0x80: ins(OpJO, argJz).fc(FCCondBranch).f64(),
	0x81: ins(OpJNO, argJz).fc(FCCondBranch).f64(),
	0x82: ins(OpJB, argJz).fc(FCCondBranch).f64(),
	0x83: ins(OpJAE, argJz).fc(FCCondBranch).f64(),
	0x84: ins(OpJZ, argJz).fc(FCCondBranch).f64(),
	0x85: ins(OpJNZ, argJz).fc(FCCondBranch).f64(),
	0x86: ins(OpJBE, argJz).fc(FCCondBranch).f64(),
	0x87: ins(OpJA, argJz).fc(FCCondBranch).f64(),
	0x88: ins(OpJS, argJz).fc(FCCondBranch).f64(),
	0x89: ins(OpJNS, argJz).fc(FCCondBranch).f64(),
	0x8A: ins(OpJP, argJz).fc(FCCondBranch).f64(),
	0x8B: ins(OpJNP, argJz).fc(FCCondBranch).f64(),
	0x8C: ins(OpJL, argJz).fc(FCCondBranch).f64(),
	0x8D: ins(OpJGE, argJz).fc(FCCondBranch).f64(),
	0x8E: ins(OpJLE, argJz).fc(FCCondBranch).f64(),
	0x8F: ins(OpJG, argJz).fc(FCCondBranch).f64(),

	0x90: ins(OpSETO, argEb).w(),
	0x91: ins(OpSETNO, argEb).w(),
	0x92: ins(OpSETB, argEb).w(),
	0x93: ins(OpSETAE, argEb).w(),
	0x94: ins(OpSETZ, argEb).w(),
	0x95: ins(OpSETNZ, argEb).w(),
	0x96: ins(OpSETBE, argEb).w(),
	0x97: ins(OpSETA, argEb).w(),
	0x98: ins(OpSETS, argEb).w(),
	0x99: ins(OpSETNS, argEb).w(),
	0x9A: ins(OpSETP, argEb).w(),
	0x9B: ins(OpSETNP, argEb).w(),
	0x9C: ins(OpSETL, argEb).w(),
	0x9D: ins(OpSETGE, argEb).w(),
	0x9E: ins(OpSETLE, argEb).w(),
	0x9F: ins(OpSETG, argEb).w(),

	0xA0: ins(OpPUSH, argFS).f64(),
	0xA1: ins(OpPOP, argFS).f64().w(),
	0xA2: ins(OpCPUID),
	0xA3: ins(OpBT, argEv, argGv),
	0xA4: ins(OpSHLD, argEv, argGv, argIb).w(),
	0xA5: ins(OpSHLD, argEv, argGv, argCL).w(),
	0xA8: ins(OpPUSH, argGS).f64(),
	0xA9: ins(OpPOP, argGS).f64().w(),
	0xAA: ins(OpRSM),
	0xAB: ins(OpBTS, argEv, argGv).w().lock(),
	0xAC: ins(OpSHRD, argEv, argGv, argIb).w(),
	0xAD: ins(OpSHRD, argEv, argGv, argCL).w(),
	0xAE: grp(grpIdx15),
	0xAF: ins(OpIMUL, argGv, argEv).w(),

	0xB0: ins(OpCMPXCHG, argEb, argGb).w().lock(),
	0xB1: ins(OpCMPXCHG, argEv, argGv).w().lock(),
	0xB2: ins(OpLSS, argGv, argMp).w().memOnly(),
	0xB3: ins(OpBTR, argEv, argGv).w().lock(),
	0xB4: ins(OpLFS, argGv, argMp).w().memOnly(),
	0xB5: ins(OpLGS, argGv, argMp).w().memOnly(),
	0xB6: ins(OpMOVZX, argGv, argEb).w(),
	0xB7: ins(OpMOVZX, argGv, argEw).w(),
	0xB8: pfx(invalid, invalid,
		ins(OpPOPCNT, argGv, argEv).isa(ISASSE42).w(), invalid),
	0xBA: grp(grpIdx8),
	0xBB: ins(OpBTC, argEv, argGv).w().lock(),
	0xBC: pfx(ins(OpBSF, argGv, argEv).w(), invalid,
		ins(OpTZCNT, argGv, argEv).w(), invalid),
	0xBD: pfx(ins(OpBSR, argGv, argEv).w(), invalid,
		ins(OpLZCNT, argGv, argEv).w(), invalid),
	0xBE: ins(OpMOVSX, argGv, argEb).w(),
	0xBF: ins(OpMOVSX, argGv, argEw).w(),

	0xC0: ins(OpXADD, argEb, argGb).w().lock(),
	0xC1: ins(OpXADD, argEv, argGv).w().lock(),
	0xC2: pfx(
		ins(OpCMPPS, argV, argW, argIb).isa(ISASSE).w(),
		ins(OpCMPPD, argV, argW, argIb).isa(ISASSE2).w(),
		ins(OpCMPSS, argV, argW, argIb).isa(ISASSE).w(),
		ins(OpCMPSD, argV, argW, argIb).isa(ISASSE2).w(),
	),
	0xC3: ins(OpMOVNTI, argM, argGy).isa(ISASSE2).w().memOnly(),
	0xC4: pfx(
		ins(OpPINSRW, argP, argEd, argIb).isa(ISASSE).w(),
		ins(OpPINSRW, argV, argEd, argIb).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0xC5: pfx(
		ins(OpPEXTRW, argGd, argN, argIb).isa(ISASSE).w(),
		ins(OpPEXTRW, argGd, argU, argIb).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0xC6: pfx(
		ins(OpSHUFPS, argV, argW, argIb).isa(ISASSE).w(),
		ins(OpSHUFPD, argV, argW, argIb).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0xC7: grp(grpIdx9),
	0xC8: ins(OpBSWAP, argZv).w(),
	0xC9: ins(OpBSWAP, argZv).w(),
	0xCA: ins(OpBSWAP, argZv).w(),
	0xCB: ins(OpBSWAP, argZv).w(),
	0xCC: ins(OpBSWAP, argZv).w(),
	0xCD: ins(OpBSWAP, argZv).w(),
	0xCE: ins(OpBSWAP, argZv).w(),
	0xCF: ins(OpBSWAP, argZv).w(),

	0xD0: pfx(invalid,
		ins(OpADDSUBPD, argV, argW).isa(ISASSE3).w(), invalid,
		ins(OpADDSUBPS, argV, argW).isa(ISASSE3).w(),
	),
	0xD1: mmxSSE2(OpPSRLW),
	0xD2: mmxSSE2(OpPSRLD),
	0xD3: mmxSSE2(OpPSRLQ),
	0xD4: mmxSSE2(OpPADDQ),
	0xD5: mmxSSE2(OpPMULLW),
	0xD6: pfx(invalid,
		ins(OpMOVQ, argW, argV).isa(ISASSE2).w(), invalid, invalid),
	0xD7: pfx(
		ins(OpPMOVMSKB, argGd, argN).isa(ISASSE).w(),
		ins(OpPMOVMSKB, argGd, argU).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0xD8: mmxSSE2(OpPSUBUSB),
	0xD9: mmxSSE2(OpPSUBUSW),
	0xDA: sseInt(OpPMINUB),
	0xDB: mmxSSE2(OpPAND),
	0xDC: mmxSSE2(OpPADDUSB),
	0xDD: mmxSSE2(OpPADDUSW),
	0xDE: sseInt(OpPMAXUB),
	0xDF: mmxSSE2(OpPANDN),

	0xE0: sseInt(OpPAVGB),
	0xE1: mmxSSE2(OpPSRAW),
	0xE2: mmxSSE2(OpPSRAD),
	0xE3: sseInt(OpPAVGW),
	0xE4: sseInt(OpPMULHUW),
	0xE5: mmxSSE2(OpPMULHW),
	0xE6: pfx(invalid,
		ins(OpCVTTPD2DQ, argV, argW).isa(ISASSE2).w(),
		ins(OpCVTDQ2PD, argV, argW).isa(ISASSE2).w(),
		ins(OpCVTPD2DQ, argV, argW).isa(ISASSE2).w(),
	),
	0xE7: pfx(
		ins(OpMOVNTQ, argQ, argP).isa(ISASSE).w().memOnly(),
		ins(OpMOVNTDQ, argW, argV).isa(ISASSE2).w().memOnly(),
		invalid, invalid,
	),
	0xE8: mmxSSE2(OpPSUBSB),
	0xE9: mmxSSE2(OpPSUBSW),
	0xEA: sseInt(OpPMINSW),
	0xEB: mmxSSE2(OpPOR),
	0xEC: mmxSSE2(OpPADDSB),
	0xED: mmxSSE2(OpPADDSW),
	0xEE: sseInt(OpPMAXSW),
	0xEF: mmxSSE2(OpPXOR),

	0xF0: pfx(invalid, invalid, invalid,
		ins(OpLDDQU, argV, argM).isa(ISASSE3).w().memOnly(),
	),
	0xF1: mmxSSE2(OpPSLLW),
	0xF2: mmxSSE2(OpPSLLD),
	0xF3: mmxSSE2(OpPSLLQ),
	0xF4: mmxSSE2(OpPMULUDQ),
	0xF5: mmxSSE2(OpPMADDWD),
	0xF6: sseInt(OpPSADBW),
	0xF7: pfx(
		ins(OpMASKMOVQ, argP, argN).isa(ISASSE).w(),
		ins(OpMASKMOVDQU, argV, argU).isa(ISASSE2).w(),
		invalid, invalid,
	),
	0xF8: mmxSSE2(OpPSUBB),
	0xF9: mmxSSE2(OpPSUBW),
	0xFA: mmxSSE2(OpPSUBD),
	0xFB: mmxSSE2(OpPSUBQ),
	0xFC: mmxSSE2(OpPADDB),
	0xFD: mmxSSE2(OpPADDW),
	0xFE: mmxSSE2(OpPADDD),
}
