package dboard

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a daughterboard hardware identifier.
type ID uint16

// IDNone marks an empty slot (erased EEPROM).
const IDNone ID = 0xffff

// String returns the ID as "0x%04x", or "none" for IDNone.
func (id ID) String() string {
	if id == IDNone {
		return "none"
	}
	return fmt.Sprintf("0x%04x", uint16(id))
}

// ParseID parses a decimal or 0x-prefixed hexadecimal ID. "none" yields
// IDNone.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return IDNone, nil
	}

	var (
		v   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 16)
	} else {
		v, err = strconv.ParseUint(s, 10, 16)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid dboard ID %q: %w", s, err)
	}
	return ID(v), nil
}

// Unit selects the receive or transmit side of a slot.
type Unit uint8

const (
	// UnitRX is the receive path.
	UnitRX Unit = 1
	// UnitTX is the transmit path.
	UnitTX Unit = 2
)

// String returns "rx" or "tx".
func (u Unit) String() string {
	switch u {
	case UnitRX:
		return "rx"
	case UnitTX:
		return "tx"
	default:
		return "unknown"
	}
}

// IsValid returns true for UnitRX and UnitTX.
func (u Unit) IsValid() bool {
	return u == UnitRX || u == UnitTX
}

// ParseUnit parses "rx" or "tx" (case-insensitive).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rx":
		return UnitRX, nil
	case "tx":
		return UnitTX, nil
	default:
		return 0, fmt.Errorf("unknown unit %q (use rx or tx)", s)
	}
}
