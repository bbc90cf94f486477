package format_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/x86dec/format"
	"github.com/sarchlab/x86dec/insts"
)

var _ = Describe("Format", func() {
	var (
		decoder *insts.Decoder
		cfg     *insts.Config
	)

	BeforeEach(func() {
		decoder = insts.NewDecoder()
		cfg = &insts.Config{Mode: insts.Mode32}
	})

	decode := func(code ...byte) []insts.Instruction {
		res, err := decoder.Decode(code, cfg, 0)
		Expect(err).To(BeNil())
		Expect(res.Status).To(Equal(insts.StatusSuccess))
		return res.Instructions
	}

	one := func(code ...byte) string {
		ins := decode(code...)
		Expect(ins).To(HaveLen(1))
		return format.String(&ins[0], cfg)
	}

	Context("32-bit integer code", func() {
		It("should render a function prologue", func() {
			ins := decode(
				0x55, 0x8B, 0xEC, 0x8B, 0x45, 0x08,
				0x03, 0x45, 0x0C, 0xC9, 0xC3)
			Expect(ins).To(HaveLen(6))

			var lines []string
			for i := range ins {
				lines = append(lines, format.String(&ins[i], cfg))
			}
			Expect(lines).To(Equal([]string{
				"push ebp",
				"mov ebp, esp",
				"mov eax, [ebp+0x8]",
				"add eax, [ebp+0xc]",
				"leave",
				"ret",
			}))
		})

		It("should render immediates in hex", func() {
			Expect(one(0x83, 0xC0, 0x05)).To(Equal("add eax, 0x5"))
			Expect(one(0xB8, 0x34, 0x12, 0x00, 0x00)).
				To(Equal("mov eax, 0x1234"))
		})

		It("should render a sign-extended immediate unsigned at its width", func() {
			// add eax, -1 encodes imm8 0xFF
			Expect(one(0x83, 0xC0, 0xFF)).To(Equal("add eax, 0xffffffff"))
		})

		It("should render scaled-index addressing", func() {
			// mov eax, [ebx+esi*4+0x10]
			Expect(one(0x8B, 0x44, 0xB3, 0x10)).
				To(Equal("mov eax, [ebx+esi*4+0x10]"))
		})

		It("should render a displacement-only operand", func() {
			// mov eax, [0x1234]
			Expect(one(0xA1, 0x34, 0x12, 0x00, 0x00)).
				To(Equal("mov eax, [0x1234]"))
		})

		It("should render a segment override", func() {
			Expect(one(0x64, 0x8B, 0x00)).To(Equal("mov eax, fs:[eax]"))
		})

		It("should not render the default segment", func() {
			Expect(one(0x8B, 0x45, 0x08)).To(Equal("mov eax, [ebp+0x8]"))
		})

		It("should render lock and rep prefixes", func() {
			Expect(one(0xF0, 0x01, 0x08)).To(Equal("lock add [eax], ecx"))
			Expect(one(0xF3, 0xA4)).To(Equal("rep movsb"))
		})

		It("should render a relative branch as its absolute target", func() {
			Expect(one(0xEB, 0x10)).To(Equal("jmp 0x12"))
		})

		It("should render a far pointer", func() {
			Expect(one(0xEA, 0x78, 0x56, 0x00, 0x00, 0x34, 0x12)).
				To(Equal("jmp far 0x1234:0x5678"))
		})

		It("should render the two immediates of enter", func() {
			Expect(one(0xC8, 0x20, 0x00, 0x01)).
				To(Equal("enter 0x20, 0x1"))
		})

		It("should not qualify a store whose sizes agree", func() {
			Expect(one(0xC6, 0x00, 0x07)).To(Equal("mov [eax], 0x7"))
		})
	})

	Context("64-bit code", func() {
		BeforeEach(func() {
			cfg = &insts.Config{Mode: insts.Mode64}
		})

		It("should render lea with a negative displacement", func() {
			Expect(one(0x48, 0x8D, 0x57, 0xE8)).
				To(Equal("lea rdx, [rdi-0x18]"))
		})

		It("should render extended registers", func() {
			Expect(one(0x41, 0x50)).To(Equal("push r8"))
		})

		It("should render rip-relative addressing", func() {
			Expect(one(0x48, 0x8B, 0x05, 0x10, 0x00, 0x00, 0x00)).
				To(Equal("mov rax, [rip+0x10]"))
		})
	})

	Context("vector code", func() {
		It("should render sse arithmetic", func() {
			Expect(one(0xF3, 0x0F, 0x58, 0xC1)).
				To(Equal("addss xmm0, xmm1"))
		})

		It("should render vex forms with a v prefix", func() {
			Expect(one(0xC5, 0xF0, 0x58, 0xC2)).
				To(Equal("vaddps xmm0, xmm1, xmm2"))
		})

		It("should render ymm operands under VEX.L", func() {
			Expect(one(0xC5, 0xF4, 0x58, 0xC2)).
				To(Equal("vaddps ymm0, ymm1, ymm2"))
		})
	})

	Context("x87 code", func() {
		It("should render register and memory forms", func() {
			Expect(one(0xD8, 0x03)).To(Equal("fadd [ebx]"))
			Expect(one(0xDE, 0xC1)).To(Equal("faddp st1, st0"))
			Expect(one(0xDF, 0xE0)).To(Equal("fnstsw ax"))
		})
	})

	Context("undecodable input", func() {
		It("should render the placeholder mnemonic with no operands", func() {
			res, err := decoder.Decode([]byte{0x0F, 0x3B}, cfg, 0)
			Expect(err).To(BeNil())
			in := &res.Instructions[0]
			Expect(in.IsDecodable()).To(BeFalse())
			mnemonic, operands := format.Format(in, cfg)
			Expect(mnemonic).To(Equal("undefined"))
			Expect(operands).To(Equal(""))
		})
	})

	It("should format deterministically", func() {
		ins := decode(0x8B, 0x45, 0x08)
		first := format.String(&ins[0], cfg)
		second := format.String(&ins[0], cfg)
		Expect(second).To(Equal(first))
	})
})
