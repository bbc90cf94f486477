// Package insts provides x86 and x64 instruction definitions and decoding.
//
// This package implements decoding of x86 machine code into structured
// instruction representations. It supports:
//   - 16-bit, 32-bit, and 64-bit decoding modes
//   - Legacy, REX, and VEX prefixes
//   - One-byte, two-byte (0F), and three-byte (0F38/0F3A) opcode maps
//   - ModRM/SIB addressing, displacements, and immediates
//   - Flow-control and instruction-set classification per opcode
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	cfg := &insts.Config{Mode: insts.Mode32}
//	res, err := decoder.Decode([]byte{0x55, 0x8B, 0xEC}, cfg, 16)
//	for _, inst := range res.Instructions {
//		fmt.Printf("%#x: %v\n", inst.Address, inst.Opcode)
//	}
package insts
