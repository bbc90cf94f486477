package insts

import "testing"

func TestFlowControlOf(t *testing.T) {
	cases := []struct {
		op   Opcode
		want FlowControl
	}{
		{OpADD, FCNone},
		{OpCALL, FCCall},
		{OpRET, FCReturn},
		{OpIRET, FCReturn},
		{OpSYSCALL, FCSysCall},
		{OpJMP, FCUncondBranch},
		{OpJZ, FCCondBranch},
		{OpINT, FCInterrupt},
		{OpCMOVZ, FCCondMove},
		{OpFCMOVB, FCCondMove},
	}
	for _, c := range cases {
		if got := FlowControlOf(c.op); got != c.want {
			t.Errorf("FlowControlOf(%v) = %v, want %v", c.op, got, c.want)
		}
	}
}

func TestISAClassOf(t *testing.T) {
	cases := []struct {
		op   Opcode
		want ISAClass
	}{
		{OpMOV, ISAInteger},
		{OpFADD, ISAFPU},
		{OpCMOVZ, ISAP6},
		{OpADDPS, ISASSE},
		{OpADDPD, ISASSE2},
		{OpLDDQU, ISASSE3},
		{OpPSHUFB, ISASSSE3},
		{OpPTEST, ISASSE41},
		{OpCRC32, ISASSE42},
		{OpPFADD, ISA3DNow},
		{OpPSWAPD, ISA3DNowExt},
		{OpVMXON, ISAVMX},
		{OpVMRUN, ISASVM},
		{OpVZEROUPPER, ISAAVX},
		{OpAESENC, ISAAES},
		{OpPCLMULQDQ, ISACLMUL},
	}
	for _, c := range cases {
		if got := ISAClassOf(c.op); got != c.want {
			t.Errorf("ISAClassOf(%v) = %v, want %v", c.op, got, c.want)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	if OpInvalid.String() != "undefined" {
		t.Errorf("OpInvalid.String() = %q, want %q",
			OpInvalid.String(), "undefined")
	}
	if OpMOVSXD.String() != "movsxd" {
		t.Errorf("OpMOVSXD.String() = %q", OpMOVSXD.String())
	}
	if OpMOVSDStr.String() != OpMOVSD.String() {
		t.Errorf("string movsd and SSE movsd should share a name")
	}
}

func TestRegNames(t *testing.T) {
	cases := []struct {
		r    Reg
		want string
	}{
		{RegRAX, "rax"},
		{RegEBP, "ebp"},
		{RegAX, "ax"},
		{RegSPL, "spl"},
		{RegAH, "ah"},
		{RegR13B, "r13b"},
		{RegGS, "gs"},
		{RegST3, "st3"},
		{RegXMM15, "xmm15"},
		{RegYMM8, "ymm8"},
		{RegCR8, "cr8"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("Reg(%d).String() = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestGPRSelection(t *testing.T) {
	if got := gpr(8, 4, false); got != RegAH {
		t.Errorf("gpr(8, 4, false) = %v, want ah", got)
	}
	if got := gpr(8, 4, true); got != RegSPL {
		t.Errorf("gpr(8, 4, true) = %v, want spl", got)
	}
	if got := gpr(64, 13, true); got != RegR13 {
		t.Errorf("gpr(64, 13, true) = %v, want r13", got)
	}
}

func TestSegmentTag(t *testing.T) {
	s := segment(RegFS, false)
	if s.IsDefault() {
		t.Error("override tagged as default")
	}
	if s.Reg() != RegFS {
		t.Errorf("Reg() = %v, want fs", s.Reg())
	}

	d := segment(RegSS, true)
	if !d.IsDefault() {
		t.Error("default not tagged as default")
	}
	if SegmentNone.Reg() != RegNone {
		t.Error("SegmentNone should map to RegNone")
	}
}

func TestGroupInheritance(t *testing.T) {
	// 83 /0 is add r/m, imm8: the group element carries no args and must
	// inherit the slot template.
	d := NewDecoder()
	cfg := &Config{Mode: Mode32}
	res, err := d.Decode([]byte{0x83, 0xC0, 0x05}, cfg, 1) // add eax, 5
	if err != nil {
		t.Fatal(err)
	}
	in := res.Instructions[0]
	if in.Opcode != OpADD {
		t.Fatalf("opcode = %v, want add", in.Opcode)
	}
	if in.Operands[0].Reg != RegEAX {
		t.Errorf("dst = %v, want eax", in.Operands[0].Reg)
	}
	if in.Imm.Value != 5 {
		t.Errorf("imm = %d, want 5", in.Imm.Value)
	}
	if in.Flags&FlagImmSigned == 0 {
		t.Error("imm8 extended to operand size should be tagged signed")
	}
}
