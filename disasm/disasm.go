// Package disasm turns byte buffers into printable disassembly listings,
// composing the insts decoder with the format renderer.
package disasm

import (
	"fmt"

	"github.com/sarchlab/x86dec/format"
	"github.com/sarchlab/x86dec/insts"
)

// Line is one listing line: the instruction's address, the raw bytes it
// occupies, and its rendered text.
type Line struct {
	Address uint64
	Bytes   []byte
	Text    string
}

func (l Line) String() string {
	return fmt.Sprintf("%#x: % x  %s", l.Address, l.Bytes, l.Text)
}

// Disassemble decodes and renders the whole buffer. Bytes that do not
// decode are emitted as one "db 0x??" line per byte so the listing still
// accounts for every input byte.
func Disassemble(code []byte, cfg *insts.Config) ([]Line, error) {
	decoder := insts.NewDecoder()

	res, err := decoder.Decode(code, cfg, 0)
	if err != nil {
		return nil, err
	}

	var lines []Line
	for i := range res.Instructions {
		in := &res.Instructions[i]
		offset := in.Address - cfg.BaseAddress
		raw := code[offset : offset+uint64(in.Size)]

		if !in.IsDecodable() {
			for j, b := range raw {
				lines = append(lines, Line{
					Address: in.Address + uint64(j),
					Bytes:   raw[j : j+1],
					Text:    fmt.Sprintf("db 0x%02x", b),
				})
			}
			continue
		}

		lines = append(lines, Line{
			Address: in.Address,
			Bytes:   raw,
			Text:    format.String(in, cfg),
		})
	}

	return lines, nil
}

// Stream decodes a buffer in capacity-bounded batches, resuming from
// Result.NextOffset between calls. It yields the same instruction
// sequence as a single unbounded decode.
type Stream struct {
	decoder *insts.Decoder
	code    []byte
	cfg     *insts.Config
	offset  int
}

// NewStream returns a Stream over the buffer.
func NewStream(code []byte, cfg *insts.Config) *Stream {
	return &Stream{
		decoder: insts.NewDecoder(),
		code:    code,
		cfg:     cfg.Clone(),
	}
}

// Next decodes up to capacity further instructions. It returns nil once
// the buffer is exhausted or a stop feature ended the walk.
func (s *Stream) Next(capacity int) ([]insts.Instruction, error) {
	if s.offset >= len(s.code) {
		return nil, nil
	}

	cfg := s.cfg.Clone()
	cfg.BaseAddress += uint64(s.offset)

	res, err := s.decoder.Decode(s.code[s.offset:], cfg, capacity)
	if err != nil {
		return nil, err
	}

	s.offset += res.NextOffset
	if res.Status != insts.StatusCapacity {
		s.offset = len(s.code)
	}

	return res.Instructions, nil
}
