package loader_test

import (
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/x86dec/insts"
	"github.com/sarchlab/x86dec/loader"
)

var _ = Describe("Loader", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "image-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with a valid x64 ELF binary", func() {
			var elfPath string
			code := []byte{
				0x48, 0x8D, 0x57, 0xE8, // lea rdx, [rdi-0x18]
				0xC3, // ret
			}

			BeforeEach(func() {
				elfPath = filepath.Join(tempDir, "test.elf")
				createELF64(elfPath, 0x400000, 0x400080, code)
			})

			It("should load without error", func() {
				images, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images).To(HaveLen(1))
			})

			It("should pick the mode from the ELF class", func() {
				images, err := loader.Load(elfPath, insts.Mode16, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images[0].Mode).To(Equal(insts.Mode64))
			})

			It("should extract the entry point and base address", func() {
				images, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images[0].EntryPoint).To(Equal(uint64(0x400080)))
				Expect(images[0].BaseAddress).To(Equal(uint64(0x400000)))
			})

			It("should carry the executable bytes", func() {
				images, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images[0].Code).To(Equal(code))
			})

			It("should name the image after the file", func() {
				images, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images[0].Name).To(Equal("test.elf"))
			})
		})

		Context("with a 32-bit x86 ELF binary", func() {
			It("should select 32-bit mode", func() {
				elfPath := filepath.Join(tempDir, "test32.elf")
				createELF32(elfPath, 0x8048000, 0x8048000, []byte{0x55, 0xC3})

				images, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(images[0].Mode).To(Equal(insts.Mode32))
				Expect(images[0].Code).To(Equal([]byte{0x55, 0xC3}))
			})
		})

		Context("with a flat binary", func() {
			It("should load the whole file with the caller's defaults", func() {
				binPath := filepath.Join(tempDir, "boot.bin")
				raw := []byte{0x8B, 0xEC, 0xC3}
				Expect(os.WriteFile(binPath, raw, 0644)).To(Succeed())

				images, err := loader.Load(binPath, insts.Mode16, 0x7C00)
				Expect(err).NotTo(HaveOccurred())
				Expect(images).To(HaveLen(1))
				Expect(images[0].Mode).To(Equal(insts.Mode16))
				Expect(images[0].BaseAddress).To(Equal(uint64(0x7C00)))
				Expect(images[0].Code).To(Equal(raw))
				Expect(images[0].EntryPoint).To(Equal(uint64(0)))
			})
		})

		Context("with an invalid file", func() {
			It("should return error for non-existent file", func() {
				_, err := loader.Load("/nonexistent/file.elf", insts.Mode64, 0)
				Expect(err).To(HaveOccurred())
			})

			It("should return error for a non-x86 ELF", func() {
				elfPath := filepath.Join(tempDir, "arm64.elf")
				createELFOther(elfPath, 183) // AArch64

				_, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not an x86"))
			})

			It("should return error for an ELF with no executable segment", func() {
				elfPath := filepath.Join(tempDir, "data-only.elf")
				createDataOnlyELF64(elfPath, 0x600000, []byte{1, 2, 3, 4})

				_, err := loader.Load(elfPath, insts.Mode64, 0)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("no executable segment"))
			})
		})
	})

	Describe("Segments", func() {
		It("should list non-executable segments too", func() {
			elfPath := filepath.Join(tempDir, "data-only.elf")
			createDataOnlyELF64(elfPath, 0x600000, []byte{1, 2, 3, 4})

			segments, err := loader.Segments(elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(segments).To(HaveLen(1))
			Expect(segments[0].VirtAddr).To(Equal(uint64(0x600000)))
			Expect(segments[0].Data).To(Equal([]byte{1, 2, 3, 4}))
			Expect(segments[0].Flags & loader.SegmentFlagWrite).NotTo(BeZero())
			Expect(segments[0].Flags & loader.SegmentFlagExecute).To(BeZero())
		})
	})
})

// createELF64 creates a minimal x86-64 ELF64 binary with one executable
// PT_LOAD segment.
func createELF64(path string, loadAddr, entryPoint uint64, code []byte) {
	writeELF64(path, 62, loadAddr, entryPoint, code, 0x5)
}

// createDataOnlyELF64 creates an x86-64 ELF whose only segment is
// read-write data.
func createDataOnlyELF64(path string, loadAddr uint64, data []byte) {
	writeELF64(path, 62, loadAddr, loadAddr, data, 0x6)
}

// createELFOther creates a 64-bit ELF with an arbitrary machine type.
func createELFOther(path string, machine uint16) {
	writeELF64(path, machine, 0x400000, 0x400000, []byte{0}, 0x5)
}

func writeELF64(
	path string,
	machine uint16,
	loadAddr, entryPoint uint64,
	code []byte,
	segFlags uint32,
) {
	elfHeader := make([]byte, 64)

	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 2 // 64-bit
	elfHeader[5] = 1 // little endian
	elfHeader[6] = 1 // version
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2) // executable
	binary.LittleEndian.PutUint16(elfHeader[18:20], machine)
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)
	binary.LittleEndian.PutUint64(elfHeader[24:32], entryPoint)
	binary.LittleEndian.PutUint64(elfHeader[32:40], 64) // phoff
	binary.LittleEndian.PutUint16(elfHeader[52:54], 64) // ehsize
	binary.LittleEndian.PutUint16(elfHeader[54:56], 56) // phentsize
	binary.LittleEndian.PutUint16(elfHeader[56:58], 1)  // phnum

	progHeader := make([]byte, 56)
	binary.LittleEndian.PutUint32(progHeader[0:4], 1) // PT_LOAD
	binary.LittleEndian.PutUint32(progHeader[4:8], segFlags)
	binary.LittleEndian.PutUint64(progHeader[8:16], 120) // offset
	binary.LittleEndian.PutUint64(progHeader[16:24], loadAddr)
	binary.LittleEndian.PutUint64(progHeader[24:32], loadAddr)
	binary.LittleEndian.PutUint64(progHeader[32:40], uint64(len(code)))
	binary.LittleEndian.PutUint64(progHeader[40:48], uint64(len(code)))
	binary.LittleEndian.PutUint64(progHeader[48:56], 0x1000)

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()

	_, _ = file.Write(elfHeader)
	_, _ = file.Write(progHeader)
	_, _ = file.Write(code)
}

// createELF32 creates a minimal i386 ELF32 binary with one executable
// PT_LOAD segment.
func createELF32(path string, loadAddr, entryPoint uint32, code []byte) {
	elfHeader := make([]byte, 52)

	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 1 // 32-bit
	elfHeader[5] = 1 // little endian
	elfHeader[6] = 1 // version
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2) // executable
	binary.LittleEndian.PutUint16(elfHeader[18:20], 3) // EM_386
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)
	binary.LittleEndian.PutUint32(elfHeader[24:28], entryPoint)
	binary.LittleEndian.PutUint32(elfHeader[28:32], 52) // phoff
	binary.LittleEndian.PutUint16(elfHeader[40:42], 52) // ehsize
	binary.LittleEndian.PutUint16(elfHeader[42:44], 32) // phentsize
	binary.LittleEndian.PutUint16(elfHeader[44:46], 1)  // phnum

	progHeader := make([]byte, 32)
	binary.LittleEndian.PutUint32(progHeader[0:4], 1)    // PT_LOAD
	binary.LittleEndian.PutUint32(progHeader[4:8], 84)   // offset
	binary.LittleEndian.PutUint32(progHeader[8:12], loadAddr)
	binary.LittleEndian.PutUint32(progHeader[12:16], loadAddr)
	binary.LittleEndian.PutUint32(progHeader[16:20], uint32(len(code)))
	binary.LittleEndian.PutUint32(progHeader[20:24], uint32(len(code)))
	binary.LittleEndian.PutUint32(progHeader[24:28], 0x5) // PF_R|PF_X
	binary.LittleEndian.PutUint32(progHeader[28:32], 0x1000)

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()

	_, _ = file.Write(elfHeader)
	_, _ = file.Write(progHeader)
	_, _ = file.Write(code)
}
