package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/x86dec/insts"
)

// prologue is a 32-bit function prologue/epilogue:
// push ebp; mov ebp, esp; mov eax, [ebp+0x8]; add eax, [ebp+0xc];
// leave; ret.
var prologue = []byte{
	0x55, 0x8B, 0xEC, 0x8B, 0x45, 0x08, 0x03, 0x45, 0x0C, 0xC9, 0xC3,
}

var _ = Describe("Decoder", func() {
	var (
		decoder *insts.Decoder
		cfg32   *insts.Config
		cfg64   *insts.Config
	)

	BeforeEach(func() {
		decoder = insts.NewDecoder()
		cfg32 = &insts.Config{Mode: insts.Mode32}
		cfg64 = &insts.Config{Mode: insts.Mode64}
	})

	Describe("32-bit integer code", func() {
		It("should decode a function prologue", func() {
			res, err := decoder.Decode(prologue, cfg32, 100)

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(insts.StatusSuccess))
			Expect(res.Instructions).To(HaveLen(6))
			Expect(res.NextOffset).To(Equal(len(prologue)))

			ops := []insts.Opcode{
				insts.OpPUSH, insts.OpMOV, insts.OpMOV,
				insts.OpADD, insts.OpLEAVE, insts.OpRET,
			}
			sizes := []int{1, 2, 3, 3, 1, 1}
			addr := uint64(0)
			for i, in := range res.Instructions {
				Expect(in.Opcode).To(Equal(ops[i]), "instruction %d", i)
				Expect(in.Size).To(Equal(sizes[i]), "instruction %d", i)
				Expect(in.Address).To(Equal(addr), "instruction %d", i)
				Expect(in.IsDecodable()).To(BeTrue())
				addr += uint64(in.Size)
			}
		})

		It("should decode push ebp operands", func() {
			res, _ := decoder.Decode(prologue, cfg32, 100)

			push := res.Instructions[0]
			Expect(push.Operands[0].Type).To(Equal(insts.OperandReg))
			Expect(push.Operands[0].Reg).To(Equal(insts.RegEBP))
			Expect(push.Operands[0].Size).To(Equal(uint16(32)))
			Expect(push.Operands[1].Type).To(Equal(insts.OperandNone))
		})

		It("should decode mov ebp, esp as a register pair", func() {
			res, _ := decoder.Decode(prologue, cfg32, 100)

			mov := res.Instructions[1]
			Expect(mov.Operands[0].Reg).To(Equal(insts.RegEBP))
			Expect(mov.Operands[1].Reg).To(Equal(insts.RegESP))
			Expect(mov.Flags & insts.FlagDstWritable).NotTo(BeZero())
		})

		It("should decode mov eax, [ebp+0x8] addressing", func() {
			res, _ := decoder.Decode(prologue, cfg32, 100)

			mov := res.Instructions[2]
			Expect(mov.Operands[0].Type).To(Equal(insts.OperandReg))
			Expect(mov.Operands[0].Reg).To(Equal(insts.RegEAX))
			Expect(mov.Operands[1].Type).To(Equal(insts.OperandSMem))
			Expect(mov.Operands[1].Reg).To(Equal(insts.RegEBP))
			Expect(mov.Base).To(Equal(insts.RegEBP))
			Expect(mov.Index).To(Equal(insts.RegNone))
			Expect(mov.Disp).To(Equal(int64(8)))
			Expect(mov.DispSize).To(Equal(uint8(8)))
			Expect(mov.SegmentOverride.IsDefault()).To(BeTrue())
			Expect(mov.SegmentOverride.Reg()).To(Equal(insts.RegSS))
		})

		It("should classify leave and ret", func() {
			res, _ := decoder.Decode(prologue, cfg32, 100)

			Expect(res.Instructions[4].FC).To(Equal(insts.FCNone))
			Expect(res.Instructions[5].FC).To(Equal(insts.FCReturn))
		})
	})

	Describe("truncated input", func() {
		It("should tag a cut trailing instruction as undecodable", func() {
			code := append([]byte{}, prologue[:10]...)
			code = append(code, 0x8B, 0x45) // mov eax, [ebp+??] cut short

			res, err := decoder.Decode(code, cfg32, 100)

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Instructions).To(HaveLen(6))

			last := res.Instructions[5]
			Expect(last.IsDecodable()).To(BeFalse())
			Expect(last.Opcode.String()).To(Equal("undefined"))
			Expect(last.Size).To(Equal(2))
			Expect(res.NextOffset).To(Equal(len(code)))
		})

		It("should never read past buffers of length 0 through 14", func() {
			// Exercise every opcode byte as the tail of a short buffer.
			for length := 0; length < 15; length++ {
				for b := 0; b < 256; b++ {
					code := make([]byte, length)
					for i := range code {
						code[i] = byte(b)
					}
					res, err := decoder.Decode(code, cfg64, 1000)
					Expect(err).NotTo(HaveOccurred())

					total := 0
					for _, in := range res.Instructions {
						Expect(in.Size).To(BeNumerically(">=", 1))
						total += in.Size
					}
					Expect(total).To(Equal(res.NextOffset))
					Expect(res.NextOffset).To(BeNumerically("<=", length))
				}
			}
		})

		It("should make forward progress on garbage", func() {
			code := []byte{0x0F, 0x0B, 0xFF, 0xFF, 0x90} // ud2, bad ff /7, nop
			res, _ := decoder.Decode(code, cfg32, 100)

			total := 0
			for _, in := range res.Instructions {
				total += in.Size
			}
			Expect(total).To(Equal(len(code)))
		})
	})

	Describe("64-bit mode", func() {
		It("should decode lea rdx, [rdi-0x18]", func() {
			code := []byte{0x48, 0x8D, 0x57, 0xE8}
			res, _ := decoder.Decode(code, cfg64, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpLEA))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegRDX))
			Expect(in.Operands[1].Type).To(Equal(insts.OperandSMem))
			Expect(in.Base).To(Equal(insts.RegRDI))
			Expect(in.Disp).To(Equal(int64(-0x18)))
			Expect(in.Size).To(Equal(4))
		})

		It("should treat 40-4F as REX prefixes", func() {
			code := []byte{0x41, 0x50} // push r8
			res, _ := decoder.Decode(code, cfg64, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpPUSH))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegR8))
			Expect(in.Operands[0].Size).To(Equal(uint16(64)))
		})

		It("should decode RIP-relative addressing", func() {
			code := []byte{0x48, 0x8B, 0x05, 0x10, 0x00, 0x00, 0x00}
			cfg := &insts.Config{Mode: insts.Mode64, BaseAddress: 0x1000}
			res, _ := decoder.Decode(code, cfg, 1)

			in := res.Instructions[0] // mov rax, [rip+0x10]
			Expect(in.Flags & insts.FlagRIPRelative).NotTo(BeZero())
			Expect(in.Base).To(Equal(insts.RegRIP))
			Expect(in.Disp).To(Equal(int64(0x10)))
			Expect(in.RIPTarget()).To(Equal(uint64(0x1000 + 7 + 0x10)))
		})

		It("should extend SIB indices with REX.X", func() {
			// mov rax, [r8+r9*4+0x10]
			code := []byte{0x4B, 0x8B, 0x44, 0x88, 0x10}
			res, _ := decoder.Decode(code, cfg64, 1)

			in := res.Instructions[0]
			Expect(in.Operands[1].Type).To(Equal(insts.OperandMem))
			Expect(in.Base).To(Equal(insts.RegR8))
			Expect(in.Index).To(Equal(insts.RegR9))
			Expect(in.Scale).To(Equal(uint8(4)))
		})

		It("should decode movsxd only in long mode", func() {
			code := []byte{0x48, 0x63, 0xC3} // movsxd rax, ebx
			res, _ := decoder.Decode(code, cfg64, 1)
			Expect(res.Instructions[0].Opcode).To(Equal(insts.OpMOVSXD))

			res, _ = decoder.Decode([]byte{0x63, 0xC3}, cfg32, 1)
			Expect(res.Instructions[0].Opcode).To(Equal(insts.OpARPL))
		})
	})

	Describe("prefixes", func() {
		It("should apply the operand-size prefix", func() {
			code := []byte{0x66, 0xB8, 0x34, 0x12} // mov ax, 0x1234
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpMOV))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegAX))
			Expect(in.Imm.Value).To(Equal(int64(0x1234)))
			Expect(in.UnusedPrefixMask).To(BeZero())
		})

		It("should record a lock prefix on a memory destination", func() {
			code := []byte{0xF0, 0x01, 0x03} // lock add [ebx], eax
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Flags & insts.FlagLock).NotTo(BeZero())
			Expect(in.UnusedPrefixMask).To(BeZero())
		})

		It("should mark a lock prefix on a register form unused", func() {
			code := []byte{0xF0, 0x01, 0xC3} // lock add ebx, eax
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Flags & insts.FlagLock).To(BeZero())
			Expect(in.UnusedPrefixMask).To(Equal(uint16(1)))
		})

		It("should record rep on string operations", func() {
			code := []byte{0xF3, 0xA4} // rep movsb
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpMOVSB))
			Expect(in.Flags & insts.FlagRep).NotTo(BeZero())
		})

		It("should decode F3 90 as pause", func() {
			res, _ := decoder.Decode([]byte{0xF3, 0x90}, cfg32, 1)
			Expect(res.Instructions[0].Opcode).To(Equal(insts.OpPAUSE))
		})

		It("should honor segment overrides", func() {
			code := []byte{0x64, 0x8B, 0x03} // mov eax, fs:[ebx]
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.SegmentOverride.IsDefault()).To(BeFalse())
			Expect(in.SegmentOverride.Reg()).To(Equal(insts.RegFS))
		})
	})

	Describe("SSE and mandatory prefixes", func() {
		It("should select the scalar variant with F3", func() {
			code := []byte{0xF3, 0x0F, 0x58, 0xC1} // addss xmm0, xmm1
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpADDSS))
			Expect(in.ISA).To(Equal(insts.ISASSE))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegXMM0))
			Expect(in.Operands[1].Reg).To(Equal(insts.RegXMM1))
		})

		It("should select the packed-double variant with 66", func() {
			code := []byte{0x66, 0x0F, 0x58, 0xC1} // addpd xmm0, xmm1
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpADDPD))
			Expect(in.ISA).To(Equal(insts.ISASSE2))
		})

		It("should keep 66 as an operand-size prefix when no variant exists", func() {
			code := []byte{0x66, 0x0F, 0xBC, 0xC3} // bsf ax, bx
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpBSF))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegAX))
		})

		It("should decode a three-byte-map instruction", func() {
			code := []byte{0x66, 0x0F, 0x38, 0x17, 0xC1} // ptest xmm0, xmm1
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpPTEST))
			Expect(in.ISA).To(Equal(insts.ISASSE41))
		})
	})

	Describe("VEX", func() {
		It("should decode a VEX2 three-operand form", func() {
			// vaddps xmm0, xmm1, xmm2
			code := []byte{0xC5, 0xF0, 0x58, 0xC2}
			res, _ := decoder.Decode(code, cfg64, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpADDPS))
			Expect(in.ISA).To(Equal(insts.ISAAVX))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegXMM0))
			Expect(in.Operands[1].Reg).To(Equal(insts.RegXMM1))
			Expect(in.Operands[2].Reg).To(Equal(insts.RegXMM2))
		})

		It("should select ymm registers with VEX.L", func() {
			// vaddps ymm0, ymm1, ymm2
			code := []byte{0xC5, 0xF4, 0x58, 0xC2}
			res, _ := decoder.Decode(code, cfg64, 1)

			in := res.Instructions[0]
			Expect(in.Operands[0].Reg).To(Equal(insts.RegYMM0))
			Expect(in.Operands[1].Reg).To(Equal(insts.RegYMM1))
			Expect(in.Operands[2].Reg).To(Equal(insts.RegYMM2))
			Expect(in.Operands[0].Size).To(Equal(uint16(256)))
		})

		It("should decode vzeroupper", func() {
			res, _ := decoder.Decode([]byte{0xC5, 0xF8, 0x77}, cfg64, 1)
			Expect(res.Instructions[0].Opcode).To(Equal(insts.OpVZEROUPPER))
			Expect(res.Instructions[0].ISA).To(Equal(insts.ISAAVX))
		})

		It("should keep C5 as lds in 32-bit mode", func() {
			// C5 with a memory-form ModRM is lds, not VEX.
			code := []byte{0xC5, 0x03} // lds eax, [ebx]
			res, _ := decoder.Decode(code, cfg32, 1)
			Expect(res.Instructions[0].Opcode).To(Equal(insts.OpLDS))
		})
	})

	Describe("x87", func() {
		It("should decode memory forms by the reg field", func() {
			code := []byte{0xD8, 0x03} // fadd dword [ebx]
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpFADD))
			Expect(in.ISA).To(Equal(insts.ISAFPU))
			Expect(in.Operands[0].Type).To(Equal(insts.OperandSMem))
			Expect(in.Operands[0].Size).To(Equal(uint16(32)))
		})

		It("should decode register forms by the full ModRM", func() {
			code := []byte{0xDE, 0xC1} // faddp st(1), st
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpFADDP))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegST1))
			Expect(in.Operands[1].Reg).To(Equal(insts.RegST0))
		})

		It("should decode fnstsw ax", func() {
			res, _ := decoder.Decode([]byte{0xDF, 0xE0}, cfg32, 1)
			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpFNSTSW))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegAX))
		})
	})

	Describe("3DNow", func() {
		It("should decode the trailing suffix byte", func() {
			code := []byte{0x0F, 0x0F, 0xC1, 0x9E} // pfadd mm0, mm1
			res, _ := decoder.Decode(code, cfg32, 1)

			in := res.Instructions[0]
			Expect(in.Opcode).To(Equal(insts.OpPFADD))
			Expect(in.ISA).To(Equal(insts.ISA3DNow))
			Expect(in.Operands[0].Reg).To(Equal(insts.RegMM0))
			Expect(in.Operands[1].Reg).To(Equal(insts.RegMM1))
			Expect(in.Size).To(Equal(4))
		})

		It("should reject an unknown suffix", func() {
			code := []byte{0x0F, 0x0F, 0xC1, 0x00}
			res, _ := decoder.Decode(code, cfg32, 100)
			Expect(res.Instructions[0].IsDecodable()).To(BeFalse())
			Expect(res.Instructions[0].Size).To(Equal(1))
		})
	})

	Describe("branch targets", func() {
		It("should compute target = address + size + immediate", func() {
			code := []byte{0xEB, 0x10, 0xE8, 0xFB, 0xFF, 0xFF, 0xFF}
			cfg := &insts.Config{Mode: insts.Mode32, BaseAddress: 0x400000}
			res, _ := decoder.Decode(code, cfg, 100)

			jmp := res.Instructions[0]
			Expect(jmp.FC).To(Equal(insts.FCUncondBranch))
			Expect(jmp.BranchTarget(cfg.AddressWidth())).
				To(Equal(uint64(0x400000 + 2 + 0x10)))

			call := res.Instructions[1]
			Expect(call.FC).To(Equal(insts.FCCall))
			Expect(call.BranchTarget(cfg.AddressWidth())).
				To(Equal(uint64(0x400000 + 7 - 5)))
		})

		It("should wrap targets to 16 bits when limited", func() {
			cfg := &insts.Config{
				Mode:        insts.Mode32,
				BaseAddress: 0xFFFF,
				Features:    insts.FeatureMaxAddr16,
			}
			res, _ := decoder.Decode([]byte{0xEB, 0x10}, cfg, 1)

			in := res.Instructions[0]
			Expect(in.BranchTarget(cfg.AddressWidth())).
				To(Equal(uint64((0xFFFF + 2 + 0x10) & 0xFFFF)))
		})
	})

	Describe("feature flags", func() {
		It("should stop after a return", func() {
			cfg := &insts.Config{
				Mode:     insts.Mode32,
				Features: insts.FeatureStopOnRet,
			}
			code := append([]byte{}, prologue...)
			code = append(code, 0x90, 0x90) // trailing nops

			res, _ := decoder.Decode(code, cfg, 100)

			Expect(res.Instructions).To(HaveLen(6))
			Expect(res.Instructions[5].Opcode).To(Equal(insts.OpRET))
			Expect(res.NextOffset).To(Equal(len(prologue)))
		})

		It("should filter to flow-control instructions only", func() {
			cfg := &insts.Config{
				Mode:     insts.Mode32,
				Features: insts.FeatureFlowControlOnly,
			}
			res, _ := decoder.Decode(prologue, cfg, 100)

			Expect(res.Status).To(Equal(insts.StatusFiltered))
			Expect(res.Instructions).To(HaveLen(1))
			Expect(res.Instructions[0].Opcode).To(Equal(insts.OpRET))
			Expect(res.NextOffset).To(Equal(len(prologue)))
		})
	})

	Describe("capacity", func() {
		It("should stop at capacity and resume from NextOffset", func() {
			res1, _ := decoder.Decode(prologue, cfg32, 3)
			Expect(res1.Status).To(Equal(insts.StatusCapacity))
			Expect(res1.Instructions).To(HaveLen(3))

			cfg := &insts.Config{
				Mode:        insts.Mode32,
				BaseAddress: uint64(res1.NextOffset),
			}
			res2, _ := decoder.Decode(prologue[res1.NextOffset:], cfg, 100)
			Expect(res2.Status).To(Equal(insts.StatusSuccess))

			full, _ := decoder.Decode(prologue, cfg32, 100)
			joined := append(res1.Instructions, res2.Instructions...)
			Expect(joined).To(Equal(full.Instructions))
		})
	})

	Describe("determinism", func() {
		It("should yield identical results across runs", func() {
			res1, _ := decoder.Decode(prologue, cfg32, 100)
			res2, _ := decoder.Decode(prologue, cfg32, 100)
			Expect(res1.Instructions).To(Equal(res2.Instructions))
			Expect(res1.NextOffset).To(Equal(res2.NextOffset))
		})
	})

	Describe("call contract", func() {
		It("should reject a nil config", func() {
			res, err := decoder.Decode(prologue, nil, 100)
			Expect(err).To(HaveOccurred())
			Expect(res.Status).To(Equal(insts.StatusInputError))
			Expect(res.Instructions).To(BeEmpty())
		})

		It("should accept an empty buffer", func() {
			res, err := decoder.Decode(nil, cfg32, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(insts.StatusSuccess))
			Expect(res.Instructions).To(BeEmpty())
		})
	})
})
