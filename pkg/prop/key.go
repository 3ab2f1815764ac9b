package prop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Property errors.
var (
	ErrInvalidValue        = errors.New("invalid property value")
	ErrReadOnlyProperty    = errors.New("property is read-only")
	ErrUnsupportedProperty = errors.New("unsupported property")
	ErrUnknownKey          = errors.New("unknown property key")
)

// Key identifies a sub-device property.
type Key uint8

const (
	// KeyInvalid is the zero value and never answered by a driver.
	KeyInvalid Key = iota

	// KeyName is the human-readable sub-device name.
	KeyName

	// KeyOthers lists driver-specific extension properties.
	KeyOthers

	// KeyGain is the overall gain in dB.
	KeyGain

	// KeyGainRange is the settable gain range.
	KeyGainRange

	// KeyGainNames lists the named gain stages.
	KeyGainNames

	// KeyFreq is the local oscillator frequency in Hz.
	KeyFreq

	// KeyFreqRange is the tunable frequency range in Hz.
	KeyFreqRange

	// KeyAntenna is the selected antenna.
	KeyAntenna

	// KeyAntennaNames lists the selectable antennas.
	KeyAntennaNames

	// KeyQuadrature reports whether the sub-device produces I/Q samples.
	KeyQuadrature

	// KeyIQSwapped reports whether I and Q are swapped.
	KeyIQSwapped

	// KeySpectrumInverted reports whether the spectrum is inverted.
	KeySpectrumInverted

	// KeyUseLOOffset reports whether the host should tune with an LO offset.
	KeyUseLOOffset

	keyCount
)

var keyNames = [keyCount]string{
	KeyInvalid:          "invalid",
	KeyName:             "name",
	KeyOthers:           "others",
	KeyGain:             "gain",
	KeyGainRange:        "gain-range",
	KeyGainNames:        "gain-names",
	KeyFreq:             "frequency",
	KeyFreqRange:        "frequency-range",
	KeyAntenna:          "antenna",
	KeyAntennaNames:     "antenna-names",
	KeyQuadrature:       "quadrature",
	KeyIQSwapped:        "iq-swapped",
	KeySpectrumInverted: "spectrum-inverted",
	KeyUseLOOffset:      "use-lo-offset",
}

// aliases accepted by ParseKey in addition to the canonical names.
var keyAliases = map[string]Key{
	"freq":       KeyFreq,
	"freq-range": KeyFreqRange,
	"ant":        KeyAntenna,
	"ant-names":  KeyAntennaNames,
	"quad":       KeyQuadrature,
	"lo-offset":  KeyUseLOOffset,
}

// Keys returns every defined key in enumeration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyName; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// IsValid returns true if the key is a member of the enumeration.
func (k Key) IsValid() bool {
	return k > KeyInvalid && k < keyCount
}

// String returns the canonical kebab-case name of the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey resolves a key name (case-insensitive, '_' and '-' equivalent)
// or a decimal key number.
func ParseKey(s string) (Key, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for k := KeyName; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	if k, ok := keyAliases[name]; ok {
		return k, nil
	}
	if n, err := strconv.ParseUint(name, 10, 8); err == nil && Key(n).IsValid() {
		return Key(n), nil
	}
	return KeyInvalid, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// NamedKey pairs a key with an optional name that disambiguates logical
// sub-devices sharing one board.
type NamedKey struct {
	Key  Key
	Name string
}

// Named returns a NamedKey for the key.
func (k Key) Named(name string) NamedKey {
	return NamedKey{Key: k, Name: name}
}

// String returns "key" or "key[name]".
func (nk NamedKey) String() string {
	if nk.Name == "" {
		return nk.Key.String()
	}
	return nk.Key.String() + "[" + nk.Name + "]"
}
