// Package main provides the entry point for x86dec.
// x86dec disassembles x86 and x64 machine code from ELF executables or
// flat binary files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/x86dec/disasm"
	"github.com/sarchlab/x86dec/insts"
	"github.com/sarchlab/x86dec/loader"
)

var (
	bitness    = flag.Int("b", 64, "Bitness for flat binaries: 16, 32, or 64")
	baseAddr   = flag.Uint64("addr", 0, "Base address for flat binaries")
	configPath = flag.String("config", "", "Path to options JSON file")
	fcOnly     = flag.Bool("fc", false, "List flow-control instructions only")
	dump       = flag.Bool("dump", false, "Dump decoded instruction structures")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: x86dec [options] <program>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	programPath := flag.Arg(0)
	defCfg := opts.Config()
	images, err := loader.Load(programPath, defCfg.Mode, opts.BaseAddress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", programPath)
		fmt.Printf("Images: %d\n", len(images))
	}

	for _, img := range images {
		if err := listImage(&img, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error disassembling %s: %v\n", img.Name, err)
			os.Exit(1)
		}
	}
}

// buildOptions merges the options file, if given, with the command-line
// flags. Flags win.
func buildOptions() (*disasm.Options, error) {
	opts := disasm.DefaultOptions()
	if *configPath != "" {
		var err error
		opts, err = disasm.LoadOptions(*configPath)
		if err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			opts.Bitness = *bitness
		case "addr":
			opts.BaseAddress = *baseAddr
		case "fc":
			opts.FlowControlOnly = *fcOnly
		}
	})

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// listImage prints the disassembly of one loaded image.
func listImage(img *loader.Image, opts *disasm.Options) error {
	cfg := opts.Config()
	cfg.Mode = img.Mode
	cfg.BaseAddress = img.BaseAddress

	if *verbose {
		fmt.Printf("\n%s: %d bytes at 0x%x, %s\n",
			img.Name, len(img.Code), img.BaseAddress, img.Mode)
	}

	if *dump {
		return dumpImage(img, cfg)
	}

	lines, err := disasm.Disassemble(img.Code, cfg)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// dumpImage prints the raw decoded structures instead of assembly text.
func dumpImage(img *loader.Image, cfg *insts.Config) error {
	decoder := insts.NewDecoder()
	res, err := decoder.Decode(img.Code, cfg, 0)
	if err != nil {
		return err
	}
	for i := range res.Instructions {
		spew.Dump(res.Instructions[i])
	}
	return nil
}
