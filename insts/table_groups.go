package insts

// Group table indices. Group entries are selected by the ModRM reg field;
// elements without their own args inherit the template args of the outer
// table slot.
const (
	grpIdx1 = iota
	grpIdx1A
	grpIdx2
	grpIdx3B
	grpIdx3V
	grpIdx4
	grpIdx5
	grpIdx6
	grpIdx7
	grpIdx8
	grpIdx9
	grpIdx11B
	grpIdx11V
	grpIdx12
	grpIdx13
	grpIdx14
	grpIdx15
	grpIdx16
	grpCount
)

var opcodeGroups = [grpCount][8]opcodeEntry{
	grpIdx1: {
		ins(OpADD).w().lock(),
		ins(OpOR).w().lock(),
		ins(OpADC).w().lock(),
		ins(OpSBB).w().lock(),
		ins(OpAND).w().lock(),
		ins(OpSUB).w().lock(),
		ins(OpXOR).w().lock(),
		ins(OpCMP),
	},
	grpIdx1A: {
		ins(OpPOP).f64().w(),
	},
	grpIdx2: {
		ins(OpROL).w(),
		ins(OpROR).w(),
		ins(OpRCL).w(),
		ins(OpRCR).w(),
		ins(OpSHL).w(),
		ins(OpSHR).w(),
		ins(OpSAL).w(),
		ins(OpSAR).w(),
	},
	grpIdx3B: {
		ins(OpTEST, argEb, argIb),
		ins(OpTEST, argEb, argIb),
		ins(OpNOT).w().lock(),
		ins(OpNEG).w().lock(),
		ins(OpMUL),
		ins(OpIMUL),
		ins(OpDIV),
		ins(OpIDIV),
	},
	grpIdx3V: {
		ins(OpTEST, argEv, argIz),
		ins(OpTEST, argEv, argIz),
		ins(OpNOT).w().lock(),
		ins(OpNEG).w().lock(),
		ins(OpMUL),
		ins(OpIMUL),
		ins(OpDIV),
		ins(OpIDIV),
	},
	grpIdx4: {
		ins(OpINC).w().lock(),
		ins(OpDEC).w().lock(),
	},
	grpIdx5: {
		ins(OpINC, argEv).w().lock(),
		ins(OpDEC, argEv).w().lock(),
		ins(OpCALL, argEv).fc(FCCall).f64(),
		ins(OpCALLFar, argMp).fc(FCCall).memOnly(),
		ins(OpJMP, argEv).fc(FCUncondBranch).f64(),
		ins(OpJMPFar, argMp).fc(FCUncondBranch).memOnly(),
		ins(OpPUSH, argEv).f64(),
	},
	grpIdx6: {
		ins(OpSLDT, argEw).w(),
		ins(OpSTR, argEw).w(),
		ins(OpLLDT, argEw),
		ins(OpLTR, argEw),
		ins(OpVERR, argEw),
		ins(OpVERW, argEw),
	},
	grpIdx7: {
		ins(OpSGDT, argM).memOnly(),
		ins(OpSIDT, argM).memOnly(),
		ins(OpLGDT, argM).memOnly(),
		ins(OpLIDT, argM).memOnly(),
		ins(OpSMSW, argEw).w(),
		invalid,
		ins(OpLMSW, argEw),
		ins(OpINVLPG, argM).memOnly(),
	},
	grpIdx8: {
		invalid,
		invalid,
		invalid,
		invalid,
		ins(OpBT, argEv, argIb),
		ins(OpBTS, argEv, argIb).w().lock(),
		ins(OpBTR, argEv, argIb).w().lock(),
		ins(OpBTC, argEv, argIb).w().lock(),
	},
	grpIdx9: {
		invalid,
		byW(
			ins(OpCMPXCHG8B, argM).w().lock().memOnly(),
			ins(OpCMPXCHG16B, argM).w().lock().memOnly(),
		),
		invalid,
		invalid,
		invalid,
		invalid,
		pfx(
			ins(OpVMPTRLD, argM).isa(ISAVMX).memOnly(),
			ins(OpVMCLEAR, argM).isa(ISAVMX).memOnly(),
			ins(OpVMXON, argM).isa(ISAVMX).memOnly(),
			invalid,
		),
		ins(OpVMPTRST, argM).isa(ISAVMX).memOnly(),
	},
	grpIdx11B: {
		ins(OpMOV).w(),
	},
	grpIdx11V: {
		ins(OpMOV).w(),
	},
	grpIdx12: {
		invalid,
		invalid,
		pfx(ins(OpPSRLW, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSRLW, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		invalid,
		pfx(ins(OpPSRAW, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSRAW, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		invalid,
		pfx(ins(OpPSLLW, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSLLW, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
	},
	grpIdx13: {
		invalid,
		invalid,
		pfx(ins(OpPSRLD, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSRLD, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		invalid,
		pfx(ins(OpPSRAD, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSRAD, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		invalid,
		pfx(ins(OpPSLLD, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSLLD, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
	},
	grpIdx14: {
		invalid,
		invalid,
		pfx(ins(OpPSRLQ, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSRLQ, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		pfx(invalid,
			ins(OpPSRLDQ, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		invalid,
		invalid,
		pfx(ins(OpPSLLQ, argN, argIb).isa(ISAMMX).w(),
			ins(OpPSLLQ, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
		pfx(invalid,
			ins(OpPSLLDQ, argU, argIb).isa(ISASSE2).w(), invalid, invalid),
	},
	// Memory forms of group 15; the register forms (lfence/mfence/sfence)
	// are resolved by the decoder before the group lookup.
	grpIdx15: {
		ins(OpFXSAVE, argM).isa(ISASSE).memOnly(),
		ins(OpFXRSTOR, argM).isa(ISASSE).memOnly(),
		ins(OpLDMXCSR, argM).isa(ISASSE).memOnly(),
		ins(OpSTMXCSR, argM).isa(ISASSE).memOnly(),
		ins(OpXSAVE, argM).memOnly(),
		ins(OpXRSTOR, argM).memOnly(),
		invalid,
		ins(OpCLFLUSH, argM).isa(ISASSE2).memOnly(),
	},
	grpIdx16: {
		ins(OpPREFETCHNTA, argM).isa(ISASSE).memOnly(),
		ins(OpPREFETCHT0, argM).isa(ISASSE).memOnly(),
		ins(OpPREFETCHT1, argM).isa(ISASSE).memOnly(),
		ins(OpPREFETCHT2, argM).isa(ISASSE).memOnly(),
	},
}
