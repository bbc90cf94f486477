// Package loader provides code loading for x86 and x64 binaries. ELF
// executables contribute their executable segments; anything else loads
// as a flat binary image.
package loader

import (
	"bytes"
	"debug/elf"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sarchlab/x86dec/insts"
)

var elfMagic = []byte{0x7F, 'E', 'L', 'F'}

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the virtual address where this segment is loaded.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Image is one unit of code ready for disassembly.
type Image struct {
	// Name identifies the image, usually the file base name.
	Name string
	// BaseAddress is the virtual address of the first code byte.
	BaseAddress uint64
	// Mode is the bit-width the code was assembled for.
	Mode insts.Mode
	// Code is the executable byte content.
	Code []byte
	// EntryPoint is the program entry address, 0 for flat images.
	EntryPoint uint64
}

// Load reads an executable file. ELF files must target x86 or x64; each
// executable PT_LOAD segment becomes one Image, with the decode mode taken
// from the ELF class. Any other file loads as a single flat image using
// the supplied defaults.
func Load(path string, defaultMode insts.Mode, defaultBase uint64) ([]Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}

	if !bytes.HasPrefix(raw, elfMagic) {
		return []Image{{
			Name:        filepath.Base(path),
			BaseAddress: defaultBase,
			Mode:        defaultMode,
			Code:        raw,
		}}, nil
	}

	f, err := elf.NewFile(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ELF file")
	}
	defer func() { _ = f.Close() }()

	var mode insts.Mode
	switch {
	case f.Class == elf.ELFCLASS64 && f.Machine == elf.EM_X86_64:
		mode = insts.Mode64
	case f.Class == elf.ELFCLASS32 && f.Machine == elf.EM_386:
		mode = insts.Mode32
	default:
		return nil, errors.Errorf(
			"not an x86 ELF file (class %v, machine %v)", f.Class, f.Machine)
	}

	var images []Image
	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD || phdr.Flags&elf.PF_X == 0 {
			continue
		}

		data, err := readSegment(phdr)
		if err != nil {
			return nil, err
		}

		images = append(images, Image{
			Name:        filepath.Base(path),
			BaseAddress: phdr.Vaddr,
			Mode:        mode,
			Code:        data,
			EntryPoint:  f.Entry,
		})
	}

	if len(images) == 0 {
		return nil, errors.Errorf("no executable segment in %s", path)
	}
	return images, nil
}

// Segments returns all PT_LOAD segments of an x86 ELF file, executable or
// not, for callers that need the full memory layout.
func Segments(path string) ([]Segment, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ELF file")
	}
	defer func() { _ = f.Close() }()

	if f.Machine != elf.EM_X86_64 && f.Machine != elf.EM_386 {
		return nil, errors.Errorf(
			"not an x86 ELF file (machine type: %v)", f.Machine)
	}

	var segments []Segment
	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data, err := readSegment(phdr)
		if err != nil {
			return nil, err
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		segments = append(segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    flags,
		})
	}

	return segments, nil
}

func readSegment(phdr *elf.Prog) ([]byte, error) {
	data := make([]byte, phdr.Filesz)
	if phdr.Filesz == 0 {
		return data, nil
	}

	n, err := phdr.ReadAt(data, 0)
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "failed to read segment at 0x%x", phdr.Vaddr)
	}
	if uint64(n) != phdr.Filesz {
		return nil, errors.Errorf(
			"short read for segment at 0x%x: got %d bytes, expected %d",
			phdr.Vaddr, n, phdr.Filesz)
	}
	return data, nil
}
