// Package prop defines the sub-device property vocabulary shared by the
// host framework and daughterboard drivers.
//
// # Keys
//
// A property is addressed by a Key drawn from a closed enumeration
// (name, gain, frequency-range, quadrature, ...). The host may pair the key
// with a name in a NamedKey when several logical sub-devices share one
// physical board.
//
// # Values
//
// Property values are carried in Value, a small sum type over the shapes
// the drivers use:
//
//	KindString   "Basic RX (0x0001) - AB"
//	KindFloat32  gain
//	KindFloat64  frequency
//	KindBool     quadrature, iq-swapped, ...
//	KindRange    gain-range, frequency-range
//	KindNames    antenna-names, gain-names, others
//
// Reading a Value as the wrong shape panics. The host guarantees that each
// key travels with the shape Describe reports for it; use the As* accessors
// where input is not trusted.
//
// # Errors
//
// Drivers report rejected operations with the sentinels ErrInvalidValue,
// ErrReadOnlyProperty and ErrUnsupportedProperty, wrapped with context.
// Test with errors.Is.
package prop
