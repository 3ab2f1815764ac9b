// Package inspect provides daughterboard inspection and property
// manipulation utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "A/rx/AB/frequency-range")
//   - Resolving key names
//   - Reading and writing properties through a slot manager
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
	ErrUnknownKey  = errors.New("unknown property key in path")
)

// Path represents a parsed inspection path.
// Format: [slot/]unit[/subdev][/key]
type Path struct {
	// Slot is the slot name (empty for the default slot).
	Slot string

	// Unit is rx or tx. Zero when the path names only a slot.
	Unit dboard.Unit

	// Subdev is the sub-device name. The transmit side of the Basic and LF
	// boards uses "".
	Subdev string

	// HasSubdev is true when the path names a sub-device, including "".
	HasSubdev bool

	// Key is the property key when IsPartial is false.
	Key prop.Key

	// IsPartial indicates the path doesn't include a key
	// (used for inspect operations that show all properties).
	IsPartial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "rx" - every sub-device of a unit
//   - "rx/AB" - every property of a sub-device
//   - "rx/AB/frequency-range" - one property
//   - "tx/name" - one property of the unnamed sub-device
//   - "A/rx/AB/gain" - any of the above, prefixed with a slot name
//   - "A" - every unit of a slot
//
// With two segments after the unit the second is the key. With one, it is
// taken as a key if it parses as one and as a sub-device otherwise.
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	if strings.HasPrefix(input, "/") || strings.HasSuffix(input, "/") || strings.Contains(input, "//") {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(input, "/")
	p := &Path{Raw: input}

	unit, err := dboard.ParseUnit(parts[0])
	if err != nil {
		p.Slot = parts[0]
		parts = parts[1:]
		if len(parts) == 0 {
			p.IsPartial = true
			return p, nil
		}
		if unit, err = dboard.ParseUnit(parts[0]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
	}
	p.Unit = unit
	rest := parts[1:]

	switch len(rest) {
	case 0:
		p.IsPartial = true

	case 1:
		if key, err := prop.ParseKey(rest[0]); err == nil {
			p.Key = key
			p.HasSubdev = true
		} else {
			p.Subdev = rest[0]
			p.HasSubdev = true
			p.IsPartial = true
		}

	case 2:
		key, err := prop.ParseKey(rest[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, rest[1])
		}
		p.Subdev = rest[0]
		p.HasSubdev = true
		p.Key = key

	default:
		return nil, fmt.Errorf("%w: too many segments", ErrInvalidPath)
	}

	return p, nil
}

// String returns the path in canonical form.
func (p *Path) String() string {
	var segs []string

	if p.Slot != "" {
		segs = append(segs, p.Slot)
	}
	if p.Unit == 0 {
		return strings.Join(segs, "/")
	}
	segs = append(segs, p.Unit.String())

	if p.HasSubdev && p.Subdev != "" {
		segs = append(segs, p.Subdev)
	}
	if !p.IsPartial {
		segs = append(segs, p.Key.String())
	}
	return strings.Join(segs, "/")
}

// NamedKey returns the key paired with the sub-device name, as handed to a
// provider.
func (p *Path) NamedKey() prop.NamedKey {
	return p.Key.Named(p.Subdev)
}
