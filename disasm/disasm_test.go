package disasm_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/x86dec/disasm"
	"github.com/sarchlab/x86dec/insts"
)

var prologue = []byte{
	0x55, 0x8B, 0xEC, 0x8B, 0x45, 0x08,
	0x03, 0x45, 0x0C, 0xC9, 0xC3,
}

var _ = Describe("Disassemble", func() {
	var cfg *insts.Config

	BeforeEach(func() {
		cfg = &insts.Config{Mode: insts.Mode32}
	})

	It("should list a function prologue", func() {
		lines, err := disasm.Disassemble(prologue, cfg)
		Expect(err).To(BeNil())

		var texts []string
		for _, l := range lines {
			texts = append(texts, l.Text)
		}
		Expect(texts).To(Equal([]string{
			"push ebp",
			"mov ebp, esp",
			"mov eax, [ebp+0x8]",
			"add eax, [ebp+0xc]",
			"leave",
			"ret",
		}))

		Expect(lines[0].Address).To(Equal(uint64(0)))
		Expect(lines[2].Address).To(Equal(uint64(3)))
		Expect(lines[2].Bytes).To(Equal([]byte{0x8B, 0x45, 0x08}))
	})

	It("should honor the base address", func() {
		cfg.BaseAddress = 0x401000
		lines, err := disasm.Disassemble(prologue, cfg)
		Expect(err).To(BeNil())
		Expect(lines[0].Address).To(Equal(uint64(0x401000)))
		Expect(lines[5].Address).To(Equal(uint64(0x40100A)))
	})

	It("should emit db lines for undecodable bytes", func() {
		code := append(append([]byte{}, prologue[:3]...), 0x0F, 0x3B)
		lines, err := disasm.Disassemble(code, cfg)
		Expect(err).To(BeNil())

		Expect(lines[2].Text).To(Equal("db 0x0f"))
		Expect(lines[3].Text).To(Equal("db 0x3b"))
		Expect(lines[2].Bytes).To(Equal([]byte{0x0F}))

		total := 0
		for _, l := range lines {
			total += len(l.Bytes)
		}
		Expect(total).To(Equal(len(code)))
	})

	It("should render one line per String call", func() {
		lines, err := disasm.Disassemble(prologue[:1], cfg)
		Expect(err).To(BeNil())
		Expect(lines[0].String()).To(Equal("0x0: 55  push ebp"))
	})
})

var _ = Describe("Stream", func() {
	var cfg *insts.Config

	BeforeEach(func() {
		cfg = &insts.Config{Mode: insts.Mode32}
	})

	It("should yield the same instructions as one unbounded decode", func() {
		full, err := insts.NewDecoder().Decode(prologue, cfg, 0)
		Expect(err).To(BeNil())

		stream := disasm.NewStream(prologue, cfg)
		var got []insts.Instruction
		for {
			batch, err := stream.Next(2)
			Expect(err).To(BeNil())
			if batch == nil {
				break
			}
			Expect(len(batch)).To(BeNumerically("<=", 2))
			got = append(got, batch...)
		}

		Expect(got).To(Equal(full.Instructions))
	})

	It("should stop once a stop feature fires", func() {
		cfg.Features = insts.FeatureStopOnRet
		stream := disasm.NewStream(prologue, cfg)

		var got []insts.Instruction
		for {
			batch, err := stream.Next(4)
			Expect(err).To(BeNil())
			if batch == nil {
				break
			}
			got = append(got, batch...)
		}
		Expect(got[len(got)-1].Opcode).To(Equal(insts.OpRET))
	})
})

var _ = Describe("Options", func() {
	It("should convert to a decode configuration", func() {
		opts := &disasm.Options{
			Bitness:         32,
			BaseAddress:     0x1000,
			MaxAddressBits:  16,
			FlowControlOnly: true,
			StopOnRet:       true,
		}
		Expect(opts.Validate()).To(BeNil())

		cfg := opts.Config()
		Expect(cfg.Mode).To(Equal(insts.Mode32))
		Expect(cfg.BaseAddress).To(Equal(uint64(0x1000)))
		Expect(cfg.Features & insts.FeatureMaxAddr16).NotTo(BeZero())
		Expect(cfg.Features & insts.FeatureFlowControlOnly).NotTo(BeZero())
		Expect(cfg.Features & insts.FeatureStopOnRet).NotTo(BeZero())
	})

	It("should reject a bad bitness", func() {
		opts := &disasm.Options{Bitness: 48}
		Expect(opts.Validate()).NotTo(BeNil())
	})

	It("should round trip through a file", func() {
		opts := disasm.DefaultOptions()
		opts.Bitness = 32
		opts.BaseAddress = 0x400000

		path := filepath.Join(GinkgoT().TempDir(), "options.json")
		Expect(opts.SaveOptions(path)).To(BeNil())

		loaded, err := disasm.LoadOptions(path)
		Expect(err).To(BeNil())
		Expect(loaded).To(Equal(opts))

		_, statErr := os.Stat(path)
		Expect(statErr).To(BeNil())
	})

	It("should keep defaults for fields absent from the file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "options.json")
		Expect(os.WriteFile(path, []byte(`{"bitness": 16}`), 0644)).
			To(BeNil())

		loaded, err := disasm.LoadOptions(path)
		Expect(err).To(BeNil())
		Expect(loaded.Bitness).To(Equal(16))
		Expect(loaded.BaseAddress).To(Equal(uint64(0)))
	})
})
