// Package basic implements the Basic and LF daughterboards.
//
// Both boards are passive: no gain control, no antenna switch, no LO. They
// share one driver and differ only in the frequency ceiling reported by
// frequency-range.
package basic

import (
	"fmt"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Frequency ceilings in Hz.
const (
	// CeilingWide is used by the Basic boards; it is far above anything the
	// host can sample and stands in for "unbounded".
	CeilingWide = 90e9

	// CeilingLF is used by the LF boards.
	CeilingLF = 32e6
)

// Hardware IDs.
const (
	IDBasicTX dboard.ID = 0x0000
	IDBasicRX dboard.ID = 0x0001
	IDLFTX    dboard.ID = 0x000e
	IDLFRX    dboard.ID = 0x000f
)

// RXSubdevNames are the logical sub-devices of the receive boards.
var RXSubdevNames = []string{"AB", "A", "B"}

// Register adds the four Basic/LF boards to reg.
func Register(reg *dboard.Registry) error {
	regs := []struct {
		id      dboard.ID
		factory dboard.Factory
		name    string
		subdevs []string
	}{
		{IDBasicTX, NewBasicTX, "Basic TX", nil},
		{IDBasicRX, NewBasicRX, "Basic RX", RXSubdevNames},
		{IDLFTX, NewLFTX, "LF TX", nil},
		{IDLFRX, NewLFRX, "LF RX", RXSubdevNames},
	}
	for _, r := range regs {
		if err := reg.Register(r.id, r.factory, r.name, r.subdevs...); err != nil {
			return fmt.Errorf("register %s: %w", r.name, err)
		}
	}
	return nil
}

// NewBasicRX is the factory for the Basic RX board.
func NewBasicRX(args dboard.CtorArgs) dboard.Provider { return NewRX(args, CeilingWide) }

// NewBasicTX is the factory for the Basic TX board.
func NewBasicTX(args dboard.CtorArgs) dboard.Provider { return NewTX(args, CeilingWide) }

// NewLFRX is the factory for the LF RX board.
func NewLFRX(args dboard.CtorArgs) dboard.Provider { return NewRX(args, CeilingLF) }

// NewLFTX is the factory for the LF TX board.
func NewLFTX(args dboard.CtorArgs) dboard.Provider { return NewTX(args, CeilingLF) }

// fixed holds what the RX and TX sides have in common: a ceiling that never
// changes after construction.
type fixed struct {
	maxFreq float64
}

// get answers every key whose value does not depend on the unit.
func (f fixed) get(key prop.Key) (prop.Value, error) {
	switch key {
	case prop.KeyOthers:
		return prop.Names(), nil
	case prop.KeyGain:
		return prop.Float32(0), nil
	case prop.KeyGainRange:
		return prop.RangeOf(prop.NewRange(0, 0, 0)), nil
	case prop.KeyGainNames:
		return prop.Names(), nil
	case prop.KeyFreq:
		return prop.Float64(0), nil
	case prop.KeyFreqRange:
		// Endpoints are deliberately (+max, -max).
		return prop.RangeOf(prop.NewRange(+f.maxFreq, -f.maxFreq, 0)), nil
	case prop.KeyAntenna:
		return prop.String(""), nil
	case prop.KeyAntennaNames:
		return prop.Names(""), nil
	case prop.KeyIQSwapped, prop.KeySpectrumInverted, prop.KeyUseLOOffset:
		return prop.Bool(false), nil
	default:
		return prop.Value{}, fmt.Errorf("%w: %s", prop.ErrUnsupportedProperty, key)
	}
}

// set applies the shared write rules. who names the board in errors.
func (f fixed) set(key prop.Key, val prop.Value, who string) error {
	switch key {
	case prop.KeyGain:
		if g := val.F32(); g != 0 {
			return fmt.Errorf("%w: gain %g on %s subdev, only 0 is accepted", prop.ErrInvalidValue, g, who)
		}
		return nil

	case prop.KeyAntenna:
		if a := val.Str(); a != "" {
			return fmt.Errorf("%w: antenna %q on %s subdev, only \"\" is accepted", prop.ErrInvalidValue, a, who)
		}
		return nil

	case prop.KeyFreq:
		// Accepted and ignored; there is no LO to tune.
		return nil
	}

	if !key.IsValid() {
		return fmt.Errorf("%w: %s on %s subdev", prop.ErrUnsupportedProperty, key, who)
	}
	return fmt.Errorf("%w: trying to set %s on %s subdev", prop.ErrReadOnlyProperty, key, who)
}
