// Package main provides the entry point for x86dec.
// x86dec is an x86/x64 machine-code decoder and disassembler.
//
// For the full CLI, use: go run ./cmd/x86dec
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("x86dec - x86/x64 Machine Code Disassembler")
	fmt.Println("")
	fmt.Println("Usage: x86dec [options] <program>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -b         Bitness for flat binaries: 16, 32, or 64")
	fmt.Println("  -addr      Base address for flat binaries")
	fmt.Println("  -config    Path to options JSON file")
	fmt.Println("  -fc        List flow-control instructions only")
	fmt.Println("  -dump      Dump decoded instruction structures")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/x86dec' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/x86dec' instead.")
	}
}
