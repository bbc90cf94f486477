package insts

// Reg identifies a machine register. A single index space covers every
// register width; the width an operand uses is recorded on the operand
// itself, not on the register index.
type Reg uint8

// General purpose 64-bit registers.
const (
	RegRAX Reg = iota
	RegRCX
	RegRDX
	RegRBX
	RegRSP
	RegRBP
	RegRSI
	RegRDI
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15
)

// General purpose 32-bit registers.
const (
	RegEAX Reg = iota + 16
	RegECX
	RegEDX
	RegEBX
	RegESP
	RegEBP
	RegESI
	RegEDI
	RegR8D
	RegR9D
	RegR10D
	RegR11D
	RegR12D
	RegR13D
	RegR14D
	RegR15D
)

// General purpose 16-bit registers.
const (
	RegAX Reg = iota + 32
	RegCX
	RegDX
	RegBX
	RegSP
	RegBP
	RegSI
	RegDI
	RegR8W
	RegR9W
	RegR10W
	RegR11W
	RegR12W
	RegR13W
	RegR14W
	RegR15W
)

// General purpose 8-bit registers. The REX-only low-byte forms (spl..dil,
// r8b..r15b) follow the classic four, then the high-byte forms.
const (
	RegAL Reg = iota + 48
	RegCL
	RegDL
	RegBL
	RegSPL
	RegBPL
	RegSIL
	RegDIL
	RegR8B
	RegR9B
	RegR10B
	RegR11B
	RegR12B
	RegR13B
	RegR14B
	RegR15B
	RegAH
	RegCH
	RegDH
	RegBH
)

// Segment registers.
const (
	RegES Reg = iota + 68
	RegCS
	RegSS
	RegDS
	RegFS
	RegGS
)

// Instruction pointer forms used by RIP-relative addressing.
const (
	RegRIP Reg = iota + 74
	RegEIP
)

// x87 floating point stack registers.
const (
	RegST0 Reg = iota + 76
	RegST1
	RegST2
	RegST3
	RegST4
	RegST5
	RegST6
	RegST7
)

// MMX registers.
const (
	RegMM0 Reg = iota + 84
	RegMM1
	RegMM2
	RegMM3
	RegMM4
	RegMM5
	RegMM6
	RegMM7
)

// SSE registers.
const (
	RegXMM0 Reg = iota + 92
	RegXMM1
	RegXMM2
	RegXMM3
	RegXMM4
	RegXMM5
	RegXMM6
	RegXMM7
	RegXMM8
	RegXMM9
	RegXMM10
	RegXMM11
	RegXMM12
	RegXMM13
	RegXMM14
	RegXMM15
)

// AVX registers.
const (
	RegYMM0 Reg = iota + 108
	RegYMM1
	RegYMM2
	RegYMM3
	RegYMM4
	RegYMM5
	RegYMM6
	RegYMM7
	RegYMM8
	RegYMM9
	RegYMM10
	RegYMM11
	RegYMM12
	RegYMM13
	RegYMM14
	RegYMM15
)

// Control registers.
const (
	RegCR0 Reg = iota + 124
	RegCR1
	RegCR2
	RegCR3
	RegCR4
	RegCR5
	RegCR6
	RegCR7
	RegCR8
)

// Debug registers.
const (
	RegDR0 Reg = iota + 133
	RegDR1
	RegDR2
	RegDR3
	RegDR4
	RegDR5
	RegDR6
	RegDR7
)

// RegNone marks an unused register slot.
const RegNone Reg = 0xFF

// regCount is the size of the register index space.
const regCount = 141

// regNames maps register indices to their canonical lowercase names. The
// table is read-only after initialization and safe for concurrent use.
var regNames = [regCount]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
	"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
	"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
	"ah", "ch", "dh", "bh",
	"es", "cs", "ss", "ds", "fs", "gs",
	"rip", "eip",
	"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7",
	"mm0", "mm1", "mm2", "mm3", "mm4", "mm5", "mm6", "mm7",
	"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7",
	"xmm8", "xmm9", "xmm10", "xmm11", "xmm12", "xmm13", "xmm14", "xmm15",
	"ymm0", "ymm1", "ymm2", "ymm3", "ymm4", "ymm5", "ymm6", "ymm7",
	"ymm8", "ymm9", "ymm10", "ymm11", "ymm12", "ymm13", "ymm14", "ymm15",
	"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7", "cr8",
	"dr0", "dr1", "dr2", "dr3", "dr4", "dr5", "dr6", "dr7",
}

// String returns the canonical lowercase name of the register.
func (r Reg) String() string {
	if r == RegNone {
		return ""
	}
	if int(r) >= len(regNames) {
		return "reg?"
	}
	return regNames[r]
}

// gpr returns the general purpose register of the given width (in bits) at
// encoding index idx (0..15). When rex is true the REX low-byte forms
// (spl..dil) are selected for indices 4..7 of the 8-bit bank; otherwise the
// classic high-byte forms (ah..bh) are selected.
func gpr(bits int, idx int, rex bool) Reg {
	switch bits {
	case 64:
		return RegRAX + Reg(idx)
	case 32:
		return RegEAX + Reg(idx)
	case 16:
		return RegAX + Reg(idx)
	case 8:
		if !rex && idx >= 4 && idx < 8 {
			return RegAH + Reg(idx-4)
		}
		return RegAL + Reg(idx)
	}
	return RegNone
}

// xmmOrYMM picks the SSE or AVX register bank by vector width in bits.
func xmmOrYMM(bits int, idx int) Reg {
	if bits == 256 {
		return RegYMM0 + Reg(idx)
	}
	return RegXMM0 + Reg(idx)
}
