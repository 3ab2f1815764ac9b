package trace

import (
	"time"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

// Event is one property operation as seen by the host.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the manager instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Slot is the host's name for the daughterboard slot.
	Slot string `cbor:"3,keyasint,omitempty"`

	// Unit is rx or tx.
	Unit dboard.Unit `cbor:"4,keyasint"`

	// BoardID is the hardware ID of the board that answered.
	BoardID dboard.ID `cbor:"5,keyasint"`

	// Subdev is the sub-device name.
	Subdev string `cbor:"6,keyasint,omitempty"`

	// Operation is Get or Set.
	Operation wire.Operation `cbor:"7,keyasint"`

	// Key is the property key.
	Key prop.Key `cbor:"8,keyasint"`

	// Value is the value returned by a Get or offered to a Set.
	Value *prop.Value `cbor:"9,keyasint,omitempty"`

	// Status is the outcome.
	Status wire.Status `cbor:"10,keyasint"`

	// Error is the error text for failed operations.
	Error string `cbor:"11,keyasint,omitempty"`
}

// Failed returns true if the operation did not succeed.
func (e Event) Failed() bool {
	return e.Status.IsError()
}
