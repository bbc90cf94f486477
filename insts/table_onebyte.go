package insts

// tableOneByte is the primary opcode map. Slots for prefix bytes (26, 2E,
// 36, 3E, 64-67, F0, F2, F3), the 0F escape, and the D8-DF x87 escapes are
// left invalid; the decoder consumes those bytes before table lookup.
var tableOneByte = [256]opcodeEntry{
	0x00: ins(OpADD, argEb, argGb).w().lock(),
	0x01: ins(OpADD, argEv, argGv).w().lock(),
	0x02: ins(OpADD, argGb, argEb).w(),
	0x03: ins(OpADD, argGv, argEv).w(),
	0x04: ins(OpADD, argAL, argIb).w(),
	0x05: ins(OpADD, argrAX, argIz).w(),
	0x06: ins(OpPUSH, argES).i64(),
	0x07: ins(OpPOP, argES).i64().w(),
	0x08: ins(OpOR, argEb, argGb).w().lock(),
	0x09: ins(OpOR, argEv, argGv).w().lock(),
	0x0A: ins(OpOR, argGb, argEb).w(),
	0x0B: ins(OpOR, argGv, argEv).w(),
	0x0C: ins(OpOR, argAL, argIb).w(),
	0x0D: ins(OpOR, argrAX, argIz).w(),
	0x0E: ins(OpPUSH, argCS).i64(),

	0x10: ins(OpADC, argEb, argGb).w().lock(),
	0x11: ins(OpADC, argEv, argGv).w().lock(),
	0x12: ins(OpADC, argGb, argEb).w(),
	0x13: ins(OpADC, argGv, argEv).w(),
	0x14: ins(OpADC, argAL, argIb).w(),
	0x15: ins(OpADC, argrAX, argIz).w(),
	0x16: ins(OpPUSH, argSS).i64(),
	0x17: ins(OpPOP, argSS).i64().w(),
	0x18: ins(OpSBB, argEb, argGb).w().lock(),
	0x19: ins(OpSBB, argEv, argGv).w().lock(),
	0x1A: ins(OpSBB, argGb, argEb).w(),
	0x1B: ins(OpSBB, argGv, argEv).w(),
	0x1C: ins(OpSBB, argAL, argIb).w(),
	0x1D: ins(OpSBB, argrAX, argIz).w(),
	0x1E: ins(OpPUSH, argDS).i64(),
	0x1F: ins(OpPOP, argDS).i64().w(),

	0x20: ins(OpAND, argEb, argGb).w().lock(),
	0x21: ins(OpAND, argEv, argGv).w().lock(),
	0x22: ins(OpAND, argGb, argEb).w(),
	0x23: ins(OpAND, argGv, argEv).w(),
	0x24: ins(OpAND, argAL, argIb).w(),
	0x25: ins(OpAND, argrAX, argIz).w(),
	0x27: ins(OpDAA).i64(),
	0x28: ins(OpSUB, argEb, argGb).w().lock(),
	0x29: ins(OpSUB, argEv, argGv).w().lock(),
	0x2A: ins(OpSUB, argGb, argEb).w(),
	0x2B: ins(OpSUB, argGv, argEv).w(),
	0x2C: ins(OpSUB, argAL, argIb).w(),
	0x2D: ins(OpSUB, argrAX, argIz).w(),
	0x2F: ins(OpDAS).i64(),

	0x30: ins(OpXOR, argEb, argGb).w().lock(),
	0x31: ins(OpXOR, argEv, argGv).w().lock(),
	0x32: ins(OpXOR, argGb, argEb).w(),
	0x33: ins(OpXOR, argGv, argEv).w(),
	0x34: ins(OpXOR, argAL, argIb).w(),
	0x35: ins(OpXOR, argrAX, argIz).w(),
	0x37: ins(OpAAA).i64(),
	0x38: ins(OpCMP, argEb, argGb),
	0x39: ins(OpCMP, argEv, argGv),
	0x3A: ins(OpCMP, argGb, argEb),
	0x3B: ins(OpCMP, argGv, argEv),
	0x3C: ins(OpCMP, argAL, argIb),
	0x3D: ins(OpCMP, argrAX, argIz),
	0x3F: ins(OpAAS).i64(),

	// 40-4F decode as REX prefixes in 64-bit mode; reached only in
	// 16/32-bit modes.
	0x40: ins(OpINC, argZv).w(),
	0x41: ins(OpINC, argZv).w(),
	0x42: ins(OpINC, argZv).w(),
	0x43: ins(OpINC, argZv).w(),
	0x44: ins(OpINC, argZv).w(),
	0x45: ins(OpINC, argZv).w(),
	0x46: ins(OpINC, argZv).w(),
	0x47: ins(OpINC, argZv).w(),
	0x48: ins(OpDEC, argZv).w(),
	0x49: ins(OpDEC, argZv).w(),
	0x4A: ins(OpDEC, argZv).w(),
	0x4B: ins(OpDEC, argZv).w(),
	0x4C: ins(OpDEC, argZv).w(),
	0x4D: ins(OpDEC, argZv).w(),
	0x4E: ins(OpDEC, argZv).w(),
	0x4F: ins(OpDEC, argZv).w(),

	0x50: ins(OpPUSH, argZv).f64(),
	0x51: ins(OpPUSH, argZv).f64(),
	0x52: ins(OpPUSH, argZv).f64(),
	0x53: ins(OpPUSH, argZv).f64(),
	0x54: ins(OpPUSH, argZv).f64(),
	0x55: ins(OpPUSH, argZv).f64(),
	0x56: ins(OpPUSH, argZv).f64(),
	0x57: ins(OpPUSH, argZv).f64(),
	0x58: ins(OpPOP, argZv).f64().w(),
	0x59: ins(OpPOP, argZv).f64().w(),
	0x5A: ins(OpPOP, argZv).f64().w(),
	0x5B: ins(OpPOP, argZv).f64().w(),
	0x5C: ins(OpPOP, argZv).f64().w(),
	0x5D: ins(OpPOP, argZv).f64().w(),
	0x5E: ins(OpPOP, argZv).f64().w(),
	0x5F: ins(OpPOP, argZv).f64().w(),

	0x60: ins(OpPUSHA).i64(),
	0x61: ins(OpPOPA).i64(),
	0x62: ins(OpBOUND, argGv, argMa).i64().memOnly(),
	0x63: byMode(
		ins(OpARPL, argEw, argGw).w(),
		ins(OpMOVSXD, argGv, argEd).w(),
	),
	0x68: ins(OpPUSH, argIz).f64(),
	0x69: ins(OpIMUL, argGv, argEv, argIz).w(),
	0x6A: ins(OpPUSH, argIbs).f64(),
	0x6B: ins(OpIMUL, argGv, argEv, argIbs).w(),
	0x6C: ins(OpINSB),
	0x6D: byOpsize(ins(OpINSW), ins(OpINSD), ins(OpINSD)),
	0x6E: ins(OpOUTSB),
	0x6F: byOpsize(ins(OpOUTSW), ins(OpOUTSD), ins(OpOUTSD)),

	0x70: ins(OpJO, argJb).fc(FCCondBranch).f64(),
	0x71: ins(OpJNO, argJb).fc(FCCondBranch).f64(),
	0x72: ins(OpJB, argJb).fc(FCCondBranch).f64(),
	0x73: ins(OpJAE, argJb).fc(FCCondBranch).f64(),
	0x74: ins(OpJZ, argJb).fc(FCCondBranch).f64(),
	0x75: ins(OpJNZ, argJb).fc(FCCondBranch).f64(),
	0x76: ins(OpJBE, argJb).fc(FCCondBranch).f64(),
	0x77: ins(OpJA, argJb).fc(FCCondBranch).f64(),
	0x78: ins(OpJS, argJb).fc(FCCondBranch).f64(),
	0x79: ins(OpJNS, argJb).fc(FCCondBranch).f64(),
	0x7A: ins(OpJP, argJb).fc(FCCondBranch).f64(),
	0x7B: ins(OpJNP, argJb).fc(FCCondBranch).f64(),
	0x7C: ins(OpJL, argJb).fc(FCCondBranch).f64(),
	0x7D: ins(OpJGE, argJb).fc(FCCondBranch).f64(),
	0x7E: ins(OpJLE, argJb).fc(FCCondBranch).f64(),
	0x7F: ins(OpJG, argJb).fc(FCCondBranch).f64(),

	0x80: grp(grpIdx1, argEb, argIb),
	0x81: grp(grpIdx1, argEv, argIz),
	0x82: grp(grpIdx1, argEb, argIb), // alias of 80, invalid in 64-bit
	0x83: grp(grpIdx1, argEv, argIbs),
	0x84: ins(OpTEST, argEb, argGb),
	0x85: ins(OpTEST, argEv, argGv),
	0x86: ins(OpXCHG, argEb, argGb).w().lock(),
	0x87: ins(OpXCHG, argEv, argGv).w().lock(),
	0x88: ins(OpMOV, argEb, argGb).w(),
	0x89: ins(OpMOV, argEv, argGv).w(),
	0x8A: ins(OpMOV, argGb, argEb).w(),
	0x8B: ins(OpMOV, argGv, argEv).w(),
	0x8C: ins(OpMOV, argEv, argSw).w(),
	0x8D: ins(OpLEA, argGv, argM).w().memOnly(),
	0x8E: ins(OpMOV, argSw, argEw).w(),
	0x8F: grp(grpIdx1A, argEv),

	0x90: ins(OpNOP), // F3 90 decodes as PAUSE
	0x91: ins(OpXCHG, argrAX, argZv).w(),
	0x92: ins(OpXCHG, argrAX, argZv).w(),
	0x93: ins(OpXCHG, argrAX, argZv).w(),
	0x94: ins(OpXCHG, argrAX, argZv).w(),
	0x95: ins(OpXCHG, argrAX, argZv).w(),
	0x96: ins(OpXCHG, argrAX, argZv).w(),
	0x97: ins(OpXCHG, argrAX, argZv).w(),
	0x98: byOpsize(ins(OpCBW), ins(OpCWDE), ins(OpCDQE)),
	0x99: byOpsize(ins(OpCWD), ins(OpCDQ), ins(OpCQO)),
	0x9A: ins(OpCALLFar, argAp).fc(FCCall).i64(),
	0x9B: ins(OpFWAIT),
	0x9C: ins(OpPUSHF).f64(),
	0x9D: ins(OpPOPF).f64(),
	0x9E: ins(OpSAHF),
	0x9F: ins(OpLAHF),

	0xA0: ins(OpMOV, argAL, argOb).w(),
	0xA1: ins(OpMOV, argrAX, argOv).w(),
	0xA2: ins(OpMOV, argOb, argAL).w(),
	0xA3: ins(OpMOV, argOv, argrAX).w(),
	0xA4: ins(OpMOVSB),
	0xA5: byOpsize(ins(OpMOVSW), ins(OpMOVSDStr), ins(OpMOVSQ)),
	0xA6: ins(OpCMPSB),
	0xA7: byOpsize(ins(OpCMPSW), ins(OpCMPSDStr), ins(OpCMPSQ)),
	0xA8: ins(OpTEST, argAL, argIb),
	0xA9: ins(OpTEST, argrAX, argIz),
	0xAA: ins(OpSTOSB),
	0xAB: byOpsize(ins(OpSTOSW), ins(OpSTOSD), ins(OpSTOSQ)),
	0xAC: ins(OpLODSB),
	0xAD: byOpsize(ins(OpLODSW), ins(OpLODSD), ins(OpLODSQ)),
	0xAE: ins(OpSCASB),
	0xAF: byOpsize(ins(OpSCASW), ins(OpSCASD), ins(OpSCASQ)),

	0xB0: ins(OpMOV, argZb, argIb).w(),
	0xB1: ins(OpMOV, argZb, argIb).w(),
	0xB2: ins(OpMOV, argZb, argIb).w(),
	0xB3: ins(OpMOV, argZb, argIb).w(),
	0xB4: ins(OpMOV, argZb, argIb).w(),
	0xB5: ins(OpMOV, argZb, argIb).w(),
	0xB6: ins(OpMOV, argZb, argIb).w(),
	0xB7: ins(OpMOV, argZb, argIb).w(),
	0xB8: ins(OpMOV, argZv, argIv).w(),
	0xB9: ins(OpMOV, argZv, argIv).w(),
	0xBA: ins(OpMOV, argZv, argIv).w(),
	0xBB: ins(OpMOV, argZv, argIv).w(),
	0xBC: ins(OpMOV, argZv, argIv).w(),
	0xBD: ins(OpMOV, argZv, argIv).w(),
	0xBE: ins(OpMOV, argZv, argIv).w(),
	0xBF: ins(OpMOV, argZv, argIv).w(),

	0xC0: grp(grpIdx2, argEb, argIb),
	0xC1: grp(grpIdx2, argEv, argIb),
	0xC2: ins(OpRET, argIw).fc(FCReturn).f64(),
	0xC3: ins(OpRET).fc(FCReturn).f64(),
	0xC4: ins(OpLES, argGv, argMp).w().i64().memOnly(), // VEX3 in 64-bit
	0xC5: ins(OpLDS, argGv, argMp).w().i64().memOnly(), // VEX2 in 64-bit
	0xC6: grp(grpIdx11B, argEb, argIb),
	0xC7: grp(grpIdx11V, argEv, argIz),
	0xC8: ins(OpENTER, argIwD, argIbD).f64(),
	0xC9: ins(OpLEAVE).f64(),
	0xCA: ins(OpRETF, argIw).fc(FCReturn),
	0xCB: ins(OpRETF).fc(FCReturn),
	0xCC: ins(OpINT3).fc(FCInterrupt),
	0xCD: ins(OpINT, argIb).fc(FCInterrupt),
	0xCE: ins(OpINTO).fc(FCInterrupt).i64(),
	0xCF: byOpsize(
		ins(OpIRET).fc(FCReturn),
		ins(OpIRETD).fc(FCReturn),
		ins(OpIRETQ).fc(FCReturn),
	),

	0xD0: grp(grpIdx2, argEb, argI1),
	0xD1: grp(grpIdx2, argEv, argI1),
	0xD2: grp(grpIdx2, argEb, argCL),
	0xD3: grp(grpIdx2, argEv, argCL),
	0xD4: ins(OpAAM, argIb).i64(),
	0xD5: ins(OpAAD, argIb).i64(),
	0xD6: ins(OpSALC).i64(),
	0xD7: ins(OpXLAT),

	0xE0: ins(OpLOOPNZ, argJb).fc(FCCondBranch).f64(),
	0xE1: ins(OpLOOPZ, argJb).fc(FCCondBranch).f64(),
	0xE2: ins(OpLOOP, argJb).fc(FCCondBranch).f64(),
	0xE3: byAddrsize(
		ins(OpJCXZ, argJb).fc(FCCondBranch).f64(),
		ins(OpJECXZ, argJb).fc(FCCondBranch).f64(),
		ins(OpJRCXZ, argJb).fc(FCCondBranch).f64(),
	),
	0xE4: ins(OpIN, argAL, argIb),
	0xE5: ins(OpIN, argeAX, argIb),
	0xE6: ins(OpOUT, argIb, argAL),
	0xE7: ins(OpOUT, argIb, argeAX),
	0xE8: ins(OpCALL, argJz).fc(FCCall).f64(),
	0xE9: ins(OpJMP, argJz).fc(FCUncondBranch).f64(),
	0xEA: ins(OpJMPFar, argAp).fc(FCUncondBranch).i64(),
	0xEB: ins(OpJMP, argJb).fc(FCUncondBranch).f64(),
	0xEC: ins(OpIN, argAL, argDX),
	0xED: ins(OpIN, argeAX, argDX),
	0xEE: ins(OpOUT, argDX, argAL),
	0xEF: ins(OpOUT, argDX, argeAX),

	0xF1: ins(OpINT1).fc(FCInterrupt),
	0xF4: ins(OpHLT),
	0xF5: ins(OpCMC),
	0xF6: grp(grpIdx3B, argEb),
	0xF7: grp(grpIdx3V, argEv),
	0xF8: ins(OpCLC),
	0xF9: ins(OpSTC),
	0xFA: ins(OpCLI),
	0xFB: ins(OpSTI),
	0xFC: ins(OpCLD),
	0xFD: ins(OpSTD),
	0xFE: grp(grpIdx4, argEb),
	0xFF: grp(grpIdx5),
}
