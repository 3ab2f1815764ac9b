package dboard

import (
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Provider answers property queries for one sub-device of one unit.
//
// Get is total over the prop.Key enumeration and returns
// prop.ErrUnsupportedProperty for anything else. Set returns an error
// wrapping prop.ErrInvalidValue, prop.ErrReadOnlyProperty or
// prop.ErrUnsupportedProperty when it rejects the request.
type Provider interface {
	Get(key prop.NamedKey) (prop.Value, error)
	Set(key prop.NamedKey, val prop.Value) error
}

// Namer translates a hardware ID into a display string.
type Namer interface {
	IDString(id ID) string
}

// CtorArgs are handed to a Factory when the host instantiates a sub-device.
type CtorArgs struct {
	// SubdevName is the logical sub-device this instance serves.
	SubdevName string

	// RXID and TXID are the IDs read from the slot's two EEPROMs.
	RXID ID
	TXID ID

	// Namer resolves IDs to display strings. Nil falls back to ID.String.
	Namer Namer
}

// Base gives drivers access to their construction arguments. Embed it.
type Base struct {
	args CtorArgs
}

// NewBase captures the construction arguments.
func NewBase(args CtorArgs) Base {
	return Base{args: args}
}

// SubdevName returns the sub-device name.
func (b Base) SubdevName() string { return b.args.SubdevName }

// RXID returns the receive board ID.
func (b Base) RXID() ID { return b.args.RXID }

// TXID returns the transmit board ID.
func (b Base) TXID() ID { return b.args.TXID }

// IDString renders an ID through the host's namer.
func (b Base) IDString(id ID) string {
	if b.args.Namer == nil {
		return id.String()
	}
	return b.args.Namer.IDString(id)
}

// Factory constructs a Provider.
type Factory func(args CtorArgs) Provider
