package insts

// fpuMemInfo describes a memory-form x87 instruction: the opcode and the
// width in bits of its memory operand.
type fpuMemInfo struct {
	op   Opcode
	bits uint16
}

// fpuMem holds the memory forms of escapes D8-DF, indexed by
// [escape-0xD8][modrm.reg].
var fpuMem = [8][8]fpuMemInfo{
	{ // D8: m32 real
		{OpFADD, 32}, {OpFMUL, 32}, {OpFCOM, 32}, {OpFCOMP, 32},
		{OpFSUB, 32}, {OpFSUBR, 32}, {OpFDIV, 32}, {OpFDIVR, 32},
	},
	{ // D9
		{OpFLD, 32}, {}, {OpFST, 32}, {OpFSTP, 32},
		{OpFLDENV, 0}, {OpFLDCW, 16}, {OpFNSTENV, 0}, {OpFNSTCW, 16},
	},
	{ // DA: m32 int
		{OpFIADD, 32}, {OpFIMUL, 32}, {OpFICOM, 32}, {OpFICOMP, 32},
		{OpFISUB, 32}, {OpFISUBR, 32}, {OpFIDIV, 32}, {OpFIDIVR, 32},
	},
	{ // DB
		{OpFILD, 32}, {OpFISTTP, 32}, {OpFIST, 32}, {OpFISTP, 32},
		{}, {OpFLD, 80}, {}, {OpFSTP, 80},
	},
	{ // DC: m64 real
		{OpFADD, 64}, {OpFMUL, 64}, {OpFCOM, 64}, {OpFCOMP, 64},
		{OpFSUB, 64}, {OpFSUBR, 64}, {OpFDIV, 64}, {OpFDIVR, 64},
	},
	{ // DD
		{OpFLD, 64}, {OpFISTTP, 64}, {OpFST, 64}, {OpFSTP, 64},
		{OpFRSTOR, 0}, {}, {OpFNSAVE, 0}, {OpFNSTSW, 16},
	},
	{ // DE: m16 int
		{OpFIADD, 16}, {OpFIMUL, 16}, {OpFICOM, 16}, {OpFICOMP, 16},
		{OpFISUB, 16}, {OpFISUBR, 16}, {OpFIDIV, 16}, {OpFIDIVR, 16},
	},
	{ // DF
		{OpFILD, 16}, {OpFISTTP, 16}, {OpFIST, 16}, {OpFISTP, 16},
		{OpFBLD, 80}, {OpFBSTP, 80}, {OpFILD, 64}, {OpFISTP, 64},
	},
}

// Register-form operand patterns.
const (
	fpNone   = iota // no operands
	fpSTi           // st(i)
	fpST0STi        // st, st(i)
	fpSTiST0        // st(i), st
	fpAX            // ax
)

// fpuRegInfo describes a register-form x87 instruction selected by the full
// ModRM byte.
type fpuRegInfo struct {
	op   Opcode
	form uint8
	fc   FlowControl
}

// fpuReg holds the register forms of escapes D8-DF, indexed by
// [escape-0xD8][modrm-0xC0].
var fpuReg [8][64]fpuRegInfo

// fpuRange fills the eight st(i) encodings starting at base.
func fpuRange(esc int, base byte, op Opcode, form uint8, fc FlowControl) {
	for i := byte(0); i < 8; i++ {
		fpuReg[esc][base-0xC0+i] = fpuRegInfo{op: op, form: form, fc: fc}
	}
}

// fpuOne fills a single encoding.
func fpuOne(esc int, b byte, op Opcode, form uint8) {
	fpuReg[esc][b-0xC0] = fpuRegInfo{op: op, form: form}
}

// buildFPURegTable fills fpuReg. Called once from the package init in
// classify.go before the classification walk.
func buildFPURegTable() {
	// D8
	fpuRange(0, 0xC0, OpFADD, fpST0STi, FCNone)
	fpuRange(0, 0xC8, OpFMUL, fpST0STi, FCNone)
	fpuRange(0, 0xD0, OpFCOM, fpSTi, FCNone)
	fpuRange(0, 0xD8, OpFCOMP, fpSTi, FCNone)
	fpuRange(0, 0xE0, OpFSUB, fpST0STi, FCNone)
	fpuRange(0, 0xE8, OpFSUBR, fpST0STi, FCNone)
	fpuRange(0, 0xF0, OpFDIV, fpST0STi, FCNone)
	fpuRange(0, 0xF8, OpFDIVR, fpST0STi, FCNone)

	// D9
	fpuRange(1, 0xC0, OpFLD, fpSTi, FCNone)
	fpuRange(1, 0xC8, OpFXCH, fpSTi, FCNone)
	fpuOne(1, 0xD0, OpFNOP, fpNone)
	fpuOne(1, 0xE0, OpFCHS, fpNone)
	fpuOne(1, 0xE1, OpFABS, fpNone)
	fpuOne(1, 0xE4, OpFTST, fpNone)
	fpuOne(1, 0xE5, OpFXAM, fpNone)
	fpuOne(1, 0xE8, OpFLD1, fpNone)
	fpuOne(1, 0xE9, OpFLDL2T, fpNone)
	fpuOne(1, 0xEA, OpFLDL2E, fpNone)
	fpuOne(1, 0xEB, OpFLDPI, fpNone)
	fpuOne(1, 0xEC, OpFLDLG2, fpNone)
	fpuOne(1, 0xED, OpFLDLN2, fpNone)
	fpuOne(1, 0xEE, OpFLDZ, fpNone)
	fpuOne(1, 0xF0, OpF2XM1, fpNone)
	fpuOne(1, 0xF1, OpFYL2X, fpNone)
	fpuOne(1, 0xF2, OpFPTAN, fpNone)
	fpuOne(1, 0xF3, OpFPATAN, fpNone)
	fpuOne(1, 0xF4, OpFXTRACT, fpNone)
	fpuOne(1, 0xF5, OpFPREM1, fpNone)
	fpuOne(1, 0xF6, OpFDECSTP, fpNone)
	fpuOne(1, 0xF7, OpFINCSTP, fpNone)
	fpuOne(1, 0xF8, OpFPREM, fpNone)
	fpuOne(1, 0xF9, OpFYL2XP1, fpNone)
	fpuOne(1, 0xFA, OpFSQRT, fpNone)
	fpuOne(1, 0xFB, OpFSINCOS, fpNone)
	fpuOne(1, 0xFC, OpFRNDINT, fpNone)
	fpuOne(1, 0xFD, OpFSCALE, fpNone)
	fpuOne(1, 0xFE, OpFSIN, fpNone)
	fpuOne(1, 0xFF, OpFCOS, fpNone)

	// DA
	fpuRange(2, 0xC0, OpFCMOVB, fpST0STi, FCCondMove)
	fpuRange(2, 0xC8, OpFCMOVE, fpST0STi, FCCondMove)
	fpuRange(2, 0xD0, OpFCMOVBE, fpST0STi, FCCondMove)
	fpuRange(2, 0xD8, OpFCMOVU, fpST0STi, FCCondMove)
	fpuOne(2, 0xE9, OpFUCOMPP, fpNone)

	// DB
	fpuRange(3, 0xC0, OpFCMOVNB, fpST0STi, FCCondMove)
	fpuRange(3, 0xC8, OpFCMOVNE, fpST0STi, FCCondMove)
	fpuRange(3, 0xD0, OpFCMOVNBE, fpST0STi, FCCondMove)
	fpuRange(3, 0xD8, OpFCMOVNU, fpST0STi, FCCondMove)
	fpuOne(3, 0xE2, OpFNCLEX, fpNone)
	fpuOne(3, 0xE3, OpFNINIT, fpNone)
	fpuRange(3, 0xE8, OpFUCOMI, fpST0STi, FCNone)
	fpuRange(3, 0xF0, OpFCOMI, fpST0STi, FCNone)

	// DC
	fpuRange(4, 0xC0, OpFADD, fpSTiST0, FCNone)
	fpuRange(4, 0xC8, OpFMUL, fpSTiST0, FCNone)
	fpuRange(4, 0xE0, OpFSUBR, fpSTiST0, FCNone)
	fpuRange(4, 0xE8, OpFSUB, fpSTiST0, FCNone)
	fpuRange(4, 0xF0, OpFDIVR, fpSTiST0, FCNone)
	fpuRange(4, 0xF8, OpFDIV, fpSTiST0, FCNone)

	// DD
	fpuRange(5, 0xC0, OpFFREE, fpSTi, FCNone)
	fpuRange(5, 0xD0, OpFST, fpSTi, FCNone)
	fpuRange(5, 0xD8, OpFSTP, fpSTi, FCNone)
	fpuRange(5, 0xE0, OpFUCOM, fpSTi, FCNone)
	fpuRange(5, 0xE8, OpFUCOMP, fpSTi, FCNone)

	// DE
	fpuRange(6, 0xC0, OpFADDP, fpSTiST0, FCNone)
	fpuRange(6, 0xC8, OpFMULP, fpSTiST0, FCNone)
	fpuOne(6, 0xD9, OpFCOMPP, fpNone)
	fpuRange(6, 0xE0, OpFSUBRP, fpSTiST0, FCNone)
	fpuRange(6, 0xE8, OpFSUBP, fpSTiST0, FCNone)
	fpuRange(6, 0xF0, OpFDIVRP, fpSTiST0, FCNone)
	fpuRange(6, 0xF8, OpFDIVP, fpSTiST0, FCNone)

	// DF
	fpuOne(7, 0xE0, OpFNSTSW, fpAX)
	fpuRange(7, 0xE8, OpFUCOMIP, fpST0STi, FCNone)
	fpuRange(7, 0xF0, OpFCOMIP, fpST0STi, FCNone)
}
