package machine

// NumRegisters is the size of the CPU register file. It is fixed at
// construction and never resized.
const NumRegisters = 3

// Register names a slot in the register file. The set is closed: every
// enumerated name maps to an in-bounds slot index, so register addressing
// cannot fail at runtime.
type Register uint8

const (
	RegA Register = iota // slot 0
	RegB                 // slot 1
	RegC                 // slot 2
)

// Index returns the zero-based slot index for the register.
func (r Register) Index() int {
	return int(r)
}

// String returns the register name.
func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegC:
		return "C"
	default:
		return "UNKNOWN"
	}
}
