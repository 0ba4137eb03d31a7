package canmsg

import "fmt"

// Identifier limits.
const (
	MaxShortID    = 0x7FF
	MaxExtendedID = 0x1FFFFFFF
)

// ID is a CAN arbitration identifier, either short (11-bit) or extended
// (29-bit).
//
// Identifiers compare by their widened value regardless of width, so
// ShortID(5) and ExtendedID(5) are Equal. The built-in == operator also
// compares the width and should not be used for arbitration equality.
//
// Constructing an ID never fails; an out-of-range value is only rejected
// when it is used to build a Message.
type ID struct {
	value    uint32
	extended bool
}

// ShortID returns a short identifier.
func ShortID(v uint16) ID {
	return ID{value: uint32(v)}
}

// ExtendedID returns an extended identifier.
func ExtendedID(v uint32) ID {
	return ID{value: v, extended: true}
}

// Widen returns the identifier as a uint32. Short values are zero-extended.
func (id ID) Widen() uint32 {
	return id.value
}

// IsExtended reports whether id is the extended variant.
func (id ID) IsExtended() bool {
	return id.extended
}

// IsValid reports whether the value fits in 11 bits (short) or 29 bits
// (extended).
func (id ID) IsValid() bool {
	if id.extended {
		return id.value&^MaxExtendedID == 0
	}
	return id.value&^MaxShortID == 0
}

// Equal reports whether both identifiers have the same widened value.
func (id ID) Equal(other ID) bool {
	return id.Widen() == other.Widen()
}

// Compare returns -1, 0 or +1 ordering by widened value.
func (id ID) Compare(other ID) int {
	a, b := id.Widen(), other.Widen()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the value as hex, three digits for short identifiers and
// eight for extended ones.
func (id ID) String() string {
	if id.extended {
		return fmt.Sprintf("%08X", id.value)
	}
	return fmt.Sprintf("%03X", id.value)
}
