package basic

import (
	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// TX is the transmit side of a Basic or LF board.
type TX struct {
	dboard.Base
	fixed
}

// NewTX creates a transmit provider reporting a symmetric frequency range
// of +/- maxFreq.
func NewTX(args dboard.CtorArgs, maxFreq float64) *TX {
	return &TX{
		Base:  dboard.NewBase(args),
		fixed: fixed{maxFreq: maxFreq},
	}
}

// MaxFreq returns the frequency ceiling.
func (tx *TX) MaxFreq() float64 { return tx.maxFreq }

// Get returns the value of a transmit property.
func (tx *TX) Get(key prop.NamedKey) (prop.Value, error) {
	switch key.Key {
	case prop.KeyName:
		return prop.String(tx.IDString(tx.TXID())), nil

	case prop.KeyQuadrature:
		return prop.Bool(true), nil

	default:
		return tx.get(key.Key)
	}
}

// Set accepts gain 0, antenna "" and any frequency; everything else is
// rejected.
func (tx *TX) Set(key prop.NamedKey, val prop.Value) error {
	return tx.set(key.Key, val, tx.IDString(tx.TXID()))
}

var _ dboard.Provider = (*TX)(nil)
