package flagkit

import "strconv"

// Flags is a word of independent boolean attributes, one bit each.
type Flags uint32

func Set(f, mask Flags) Flags    { return f | mask }
func Clear(f, mask Flags) Flags  { return f &^ mask }
func Toggle(f, mask Flags) Flags { return f ^ mask }
func Has(f, mask Flags) bool     { return f&mask != 0 }

// SetAttribute sets attr when value is true and clears it otherwise.
// Bits outside attr are left untouched.
func SetAttribute(f, attr Flags, value bool) Flags {
	if value {
		return Set(f, attr)
	}
	return Clear(f, attr)
}

func QueryAttribute(f, attr Flags) bool { return Has(f, attr) }

// AllComplete reports whether every bit of required is set in f.
// Extra bits in f are ignored.
func AllComplete(f, required Flags) bool { return f&required == required }

func (f Flags) String() string {
	return "0b" + strconv.FormatUint(uint64(f), 2)
}

// UI component state word.
const (
	Visible Flags = 1 << iota
	Enabled
	Selected
)

func SetVisibility(f Flags, visible bool) Flags { return SetAttribute(f, Visible, visible) }
func SetEnabled(f Flags, enabled bool) Flags    { return SetAttribute(f, Enabled, enabled) }
func SetSelected(f Flags, selected bool) Flags  { return SetAttribute(f, Selected, selected) }

func IsVisible(f Flags) bool  { return Has(f, Visible) }
func IsEnabled(f Flags) bool  { return Has(f, Enabled) }
func IsSelected(f Flags) bool { return Has(f, Selected) }

// Operation completion word, one bit per background operation.
const (
	Operation1 Flags = 1 << iota
	Operation2
	Operation3

	AllOperations = Operation1 | Operation2 | Operation3
)

func AllOperationsComplete(f Flags) bool { return AllComplete(f, AllOperations) }
