// Package dboard defines the daughterboard driver contract consumed by the
// host framework.
//
// # Model
//
// A physical daughterboard is identified by a 16-bit hardware ID read from
// its EEPROM. Drivers register a Factory for each ID they support in a
// Registry, together with a display name and the logical sub-devices the
// board exposes:
//
//	Slot
//	├── RX board (ID 0x0001, "Basic RX")
//	│   ├── sub-device "AB"  (quadrature pair)
//	│   ├── sub-device "A"
//	│   └── sub-device "B"
//	└── TX board (ID 0x0000, "Basic TX")
//	    └── sub-device ""
//
// The host instantiates one Provider per (unit, sub-device) and talks to it
// only through Get and Set keyed by prop.NamedKey.
//
// # Registration
//
// Registration is explicit: the host creates a Registry during bring-up and
// passes it to each driver package's Register function. Nothing is
// registered from init.
package dboard
