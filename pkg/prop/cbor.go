package prop

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	valueEncMode cbor.EncMode
	valueDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	valueEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create value CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	valueDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create value CBOR decoder mode: %v", err))
	}
}

// valueWire is the CBOR form of a Value: the kind plus exactly one payload.
type valueWire struct {
	Kind  Kind     `cbor:"1,keyasint"`
	S     *string  `cbor:"2,keyasint,omitempty"`
	F     *float64 `cbor:"3,keyasint,omitempty"`
	B     *bool    `cbor:"4,keyasint,omitempty"`
	R     *Range   `cbor:"5,keyasint,omitempty"`
	Names []string `cbor:"6,keyasint,omitempty"`
}

// MarshalCBOR implements cbor.Marshaler.
func (v Value) MarshalCBOR() ([]byte, error) {
	w := valueWire{Kind: v.kind}
	switch v.kind {
	case KindString:
		w.S = &v.s
	case KindFloat32, KindFloat64:
		w.F = &v.f
	case KindBool:
		w.B = &v.b
	case KindRange:
		w.R = &v.r
	case KindNames:
		w.Names = v.names
	default:
		return nil, fmt.Errorf("%w: cannot encode invalid value", ErrInvalidValue)
	}
	return valueEncMode.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var w valueWire
	if err := valueDecMode.Unmarshal(data, &w); err != nil {
		return err
	}

	missing := fmt.Errorf("%w: %s value without payload", ErrInvalidValue, w.Kind)
	switch w.Kind {
	case KindString:
		if w.S == nil {
			return missing
		}
		*v = String(*w.S)
	case KindFloat32:
		if w.F == nil {
			return missing
		}
		*v = Float32(float32(*w.F))
	case KindFloat64:
		if w.F == nil {
			return missing
		}
		*v = Float64(*w.F)
	case KindBool:
		if w.B == nil {
			return missing
		}
		*v = Bool(*w.B)
	case KindRange:
		if w.R == nil {
			return missing
		}
		*v = RangeOf(*w.R)
	case KindNames:
		*v = Names(w.Names...)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidValue, w.Kind)
	}
	return nil
}
