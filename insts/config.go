package insts

import "fmt"

// Mode selects the target bit-width the bytes were assembled for.
type Mode uint8

// Decoding modes.
const (
	Mode16 Mode = iota
	Mode32
	Mode64
)

// Bits returns the mode's address and default operand width in bits.
func (m Mode) Bits() int {
	switch m {
	case Mode16:
		return 16
	case Mode32:
		return 32
	case Mode64:
		return 64
	}
	return 0
}

func (m Mode) String() string {
	if b := m.Bits(); b != 0 {
		return fmt.Sprintf("%d-bit", b)
	}
	return "Mode?"
}

// Feature is a bitmask of decode feature flags.
type Feature uint32

// Decode features.
const (
	// FeatureMaxAddr16 wraps branch-target arithmetic to 16 bits.
	FeatureMaxAddr16 Feature = 1 << iota
	// FeatureMaxAddr32 wraps branch-target arithmetic to 32 bits.
	FeatureMaxAddr32
	// FeatureStopOnCall stops decoding after the first call.
	FeatureStopOnCall
	// FeatureStopOnRet stops decoding after the first return.
	FeatureStopOnRet
	// FeatureStopOnSysCall stops decoding after the first syscall-class
	// instruction.
	FeatureStopOnSysCall
	// FeatureStopOnUncondBranch stops decoding after the first
	// unconditional branch.
	FeatureStopOnUncondBranch
	// FeatureStopOnCondBranch stops decoding after the first conditional
	// branch.
	FeatureStopOnCondBranch
	// FeatureStopOnInt stops decoding after the first interrupt
	// instruction.
	FeatureStopOnInt
	// FeatureFlowControlOnly filters the output down to flow-control
	// instructions; other instructions still consume bytes.
	FeatureFlowControlOnly
)

// FeatureStopOnFlowControl stops decoding after any flow-control
// instruction.
const FeatureStopOnFlowControl = FeatureStopOnCall | FeatureStopOnRet |
	FeatureStopOnSysCall | FeatureStopOnUncondBranch |
	FeatureStopOnCondBranch | FeatureStopOnInt

// Config is the caller-supplied decode configuration. It is treated as
// immutable for the duration of a decode call.
type Config struct {
	// Mode is the target bit-width.
	Mode Mode
	// BaseAddress is the virtual address of the first buffer byte.
	BaseAddress uint64
	// Features is the decode feature bitmask.
	Features Feature
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config must not be nil")
	}
	if c.Mode != Mode16 && c.Mode != Mode32 && c.Mode != Mode64 {
		return fmt.Errorf("invalid decode mode %d", c.Mode)
	}
	if c.Features&FeatureMaxAddr16 != 0 && c.Features&FeatureMaxAddr32 != 0 {
		return fmt.Errorf("at most one address-width limit feature may be set")
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// AddressWidth returns the address width in bits used for branch-target
// wrapping, honoring the address-width limit features.
func (c *Config) AddressWidth() int {
	switch {
	case c.Features&FeatureMaxAddr16 != 0:
		return 16
	case c.Features&FeatureMaxAddr32 != 0:
		return 32
	}
	return c.Mode.Bits()
}
