package basic

import (
	"fmt"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// RX is the receive side of a Basic or LF board.
type RX struct {
	dboard.Base
	fixed
}

// NewRX creates a receive provider reporting a symmetric frequency range
// of +/- maxFreq.
func NewRX(args dboard.CtorArgs, maxFreq float64) *RX {
	return &RX{
		Base:  dboard.NewBase(args),
		fixed: fixed{maxFreq: maxFreq},
	}
}

// MaxFreq returns the frequency ceiling.
func (rx *RX) MaxFreq() float64 { return rx.maxFreq }

// Get returns the value of a receive property.
func (rx *RX) Get(key prop.NamedKey) (prop.Value, error) {
	switch key.Key {
	case prop.KeyName:
		return prop.String(fmt.Sprintf("%s - %s", rx.IDString(rx.RXID()), rx.SubdevName())), nil

	case prop.KeyQuadrature:
		// Only the combined AB pair delivers I and Q.
		return prop.Bool(rx.SubdevName() == "AB"), nil

	default:
		return rx.get(key.Key)
	}
}

// Set accepts gain 0, antenna "" and any frequency; everything else is
// rejected.
func (rx *RX) Set(key prop.NamedKey, val prop.Value) error {
	return rx.set(key.Key, val, rx.IDString(rx.RXID()))
}

var _ dboard.Provider = (*RX)(nil)
