package prop

// Access flags for properties.
type Access uint8

const (
	// AccessRead allows reading the property.
	AccessRead Access = 1 << iota

	// AccessWrite allows the host to attempt a write. The driver still
	// decides which values it accepts.
	AccessWrite

	// AccessReadOnly is read only.
	AccessReadOnly = AccessRead

	// AccessReadWrite is read and write.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Meta describes a property key.
type Meta struct {
	// Key is the property key.
	Key Key

	// Kind is the shape of the value travelling with the key.
	Kind Kind

	// Access lists the operations the host framework may issue.
	Access Access

	// Unit is the unit of measurement, if any.
	Unit string

	// Description is a human-readable description.
	Description string
}

var metas = [keyCount]Meta{
	KeyName:             {KeyName, KindString, AccessReadOnly, "", "Sub-device display name"},
	KeyOthers:           {KeyOthers, KindNames, AccessReadOnly, "", "Driver extension properties"},
	KeyGain:             {KeyGain, KindFloat32, AccessReadWrite, "dB", "Overall gain"},
	KeyGainRange:        {KeyGainRange, KindRange, AccessReadOnly, "dB", "Settable gain range"},
	KeyGainNames:        {KeyGainNames, KindNames, AccessReadOnly, "", "Named gain stages"},
	KeyFreq:             {KeyFreq, KindFloat64, AccessReadWrite, "Hz", "LO frequency"},
	KeyFreqRange:        {KeyFreqRange, KindRange, AccessReadOnly, "Hz", "Tunable frequency range"},
	KeyAntenna:          {KeyAntenna, KindString, AccessReadWrite, "", "Selected antenna"},
	KeyAntennaNames:     {KeyAntennaNames, KindNames, AccessReadOnly, "", "Selectable antennas"},
	KeyQuadrature:       {KeyQuadrature, KindBool, AccessReadOnly, "", "Produces I/Q samples"},
	KeyIQSwapped:        {KeyIQSwapped, KindBool, AccessReadOnly, "", "I and Q swapped"},
	KeySpectrumInverted: {KeySpectrumInverted, KindBool, AccessReadOnly, "", "Spectrum inverted"},
	KeyUseLOOffset:      {KeyUseLOOffset, KindBool, AccessReadOnly, "", "Tune with LO offset"},
}

// Describe returns the metadata for a key. The second result is false for
// keys outside the enumeration.
func Describe(k Key) (Meta, bool) {
	if !k.IsValid() {
		return Meta{Key: k}, false
	}
	return metas[k], true
}

// CheckKind returns ErrInvalidValue if v does not have the shape declared
// for k. Keys outside the enumeration are not checked.
func CheckKind(k Key, v Value) error {
	meta, ok := Describe(k)
	if !ok {
		return nil
	}
	if v.Kind() != meta.Kind {
		return &KindError{Key: k, Want: meta.Kind, Got: v.Kind()}
	}
	return nil
}

// KindError reports a value of the wrong shape for its key.
type KindError struct {
	Key  Key
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return "property " + e.Key.String() + " expects " + e.Want.String() + ", got " + e.Got.String()
}

// Unwrap makes KindError match ErrInvalidValue.
func (e *KindError) Unwrap() error { return ErrInvalidValue }
