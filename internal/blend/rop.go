// Package blend implements the raster operation (ROP) codes used by the
// canvas.
//
// A ROP combines a source pixel with a destination pixel bit by bit on the
// raw stored value. The sixteen codes cover every boolean function of two
// inputs, in the order the remote display protocol numbers them.
package blend

// ROP represents a bitwise raster operation.
type ROP uint8

const (
	ROPClear        ROP = iota // Result: 0
	ROPAnd                     // Result: S & D
	ROPAndReverse              // Result: S & ^D
	ROPCopy                    // Result: S
	ROPAndInverted             // Result: ^S & D
	ROPNoop                    // Result: D
	ROPXor                     // Result: S ^ D
	ROPOr                      // Result: S | D
	ROPNor                     // Result: ^(S | D)
	ROPEquiv                   // Result: ^(S ^ D)
	ROPInvert                  // Result: ^D
	ROPOrReverse               // Result: S | ^D
	ROPCopyInverted            // Result: ^S
	ROPOrInverted              // Result: ^S | D
	ROPNand                    // Result: ^(S & D)
	ROPSet                     // Result: all ones

	ropCount
)

// ROPFunc combines a source and a destination pixel.
type ROPFunc func(src, dst uint32) uint32

var ropTable = [ropCount]ROPFunc{
	ROPClear:        func(_, _ uint32) uint32 { return 0 },
	ROPAnd:          func(s, d uint32) uint32 { return s & d },
	ROPAndReverse:   func(s, d uint32) uint32 { return s &^ d },
	ROPCopy:         func(s, _ uint32) uint32 { return s },
	ROPAndInverted:  func(s, d uint32) uint32 { return d &^ s },
	ROPNoop:         func(_, d uint32) uint32 { return d },
	ROPXor:          func(s, d uint32) uint32 { return s ^ d },
	ROPOr:           func(s, d uint32) uint32 { return s | d },
	ROPNor:          func(s, d uint32) uint32 { return ^(s | d) },
	ROPEquiv:        func(s, d uint32) uint32 { return ^(s ^ d) },
	ROPInvert:       func(_, d uint32) uint32 { return ^d },
	ROPOrReverse:    func(s, d uint32) uint32 { return s | ^d },
	ROPCopyInverted: func(s, _ uint32) uint32 { return ^s },
	ROPOrInverted:   func(s, d uint32) uint32 { return ^s | d },
	ROPNand:         func(s, d uint32) uint32 { return ^(s & d) },
	ROPSet:          func(_, _ uint32) uint32 { return 0xffffffff },
}

// GetROPFunc returns the function for rop.
// Returns the copy function for unknown codes.
func GetROPFunc(rop ROP) ROPFunc {
	if rop >= ropCount {
		return ropTable[ROPCopy]
	}
	return ropTable[rop]
}

// Apply combines src and dst with rop.
func Apply(rop ROP, src, dst uint32) uint32 {
	return GetROPFunc(rop)(src, dst)
}

// IsValid reports whether rop is one of the sixteen known codes.
func (rop ROP) IsValid() bool {
	return rop < ropCount
}

// UsesSource reports whether the result depends on the source pixel.
func (rop ROP) UsesSource() bool {
	switch rop {
	case ROPClear, ROPNoop, ROPInvert, ROPSet:
		return false
	}
	return true
}

var ropNames = [ropCount]string{
	"Clear", "And", "AndReverse", "Copy", "AndInverted", "Noop", "Xor", "Or",
	"Nor", "Equiv", "Invert", "OrReverse", "CopyInverted", "OrInverted",
	"Nand", "Set",
}

// String returns the name of the operation.
func (rop ROP) String() string {
	if rop >= ropCount {
		return "Unknown"
	}
	return ropNames[rop]
}
