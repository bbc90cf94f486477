package disasm

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/x86dec/insts"
)

// Options holds the user-facing disassembly settings. It maps onto an
// insts.Config but is friendlier to serialize and flag-fill.
type Options struct {
	// Bitness is the target width the code was assembled for: 16, 32,
	// or 64. Default: 64.
	Bitness int `json:"bitness"`

	// BaseAddress is the virtual address of the first code byte.
	// Default: 0.
	BaseAddress uint64 `json:"base_address"`

	// MaxAddressBits limits branch-target arithmetic to 16 or 32 bits.
	// 0 leaves targets at the natural width of the mode.
	MaxAddressBits int `json:"max_address_bits"`

	// FlowControlOnly keeps only flow-control instructions in the
	// output. Other instructions still consume bytes.
	FlowControlOnly bool `json:"flow_control_only"`

	// StopOnFlowControl stops disassembly after the first flow-control
	// instruction of any kind.
	StopOnFlowControl bool `json:"stop_on_flow_control"`

	// StopOnRet stops disassembly after the first return.
	StopOnRet bool `json:"stop_on_ret"`
}

// DefaultOptions returns an Options with default values.
func DefaultOptions() *Options {
	return &Options{
		Bitness: 64,
	}
}

// LoadOptions loads an Options from a JSON file. Fields absent from the
// file keep their defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	opts := DefaultOptions()
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return opts, nil
}

// SaveOptions writes an Options to a JSON file.
func (o *Options) SaveOptions(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize options: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}

	return nil
}

// Validate checks that the options are consistent.
func (o *Options) Validate() error {
	switch o.Bitness {
	case 16, 32, 64:
	default:
		return fmt.Errorf("bitness must be 16, 32, or 64, got %d", o.Bitness)
	}
	switch o.MaxAddressBits {
	case 0, 16, 32:
	default:
		return fmt.Errorf(
			"max_address_bits must be 0, 16, or 32, got %d", o.MaxAddressBits)
	}
	return nil
}

// Clone returns a copy of the Options.
func (o *Options) Clone() *Options {
	cp := *o
	return &cp
}

// Config converts the Options into a decode configuration.
func (o *Options) Config() *insts.Config {
	cfg := &insts.Config{
		BaseAddress: o.BaseAddress,
	}

	switch o.Bitness {
	case 16:
		cfg.Mode = insts.Mode16
	case 32:
		cfg.Mode = insts.Mode32
	default:
		cfg.Mode = insts.Mode64
	}

	switch o.MaxAddressBits {
	case 16:
		cfg.Features |= insts.FeatureMaxAddr16
	case 32:
		cfg.Features |= insts.FeatureMaxAddr32
	}

	if o.FlowControlOnly {
		cfg.Features |= insts.FeatureFlowControlOnly
	}
	if o.StopOnFlowControl {
		cfg.Features |= insts.FeatureStopOnFlowControl
	}
	if o.StopOnRet {
		cfg.Features |= insts.FeatureStopOnRet
	}

	return cfg
}
