// Package manager instantiates the daughterboard providers of one slot and
// routes property calls to them.
//
// A slot carries one receive and one transmit EEPROM. The manager reads the
// two IDs, asks the registry for the sub-device names each board declares,
// and builds one provider per (unit, sub-device). Every Get and Set that
// passes through the manager is recorded as a trace.Event.
package manager

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/trace"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

// Config configures a Manager. The zero value is usable.
type Config struct {
	// Slot is the host's name for the slot, carried in trace events.
	Slot string

	// Trace receives one event per dispatched Get/Set. Nil disables tracing.
	Trace trace.Logger

	// Logger receives operational messages. Nil discards them.
	Logger *slog.Logger
}

// unitSet holds the providers of one unit in declaration order.
type unitSet struct {
	id        dboard.ID
	names     []string
	providers map[string]dboard.Provider
}

func (u *unitSet) lookup(unit dboard.Unit, subdev string) (dboard.Provider, error) {
	p, ok := u.providers[subdev]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", dboard.ErrUnknownSubdev, unit, subdev)
	}
	return p, nil
}

// Manager owns the providers for one slot.
// It is safe for concurrent use.
type Manager struct {
	slot      string
	sessionID string
	rx        unitSet
	tx        unitSet
	namer     dboard.Namer
	logger    *slog.Logger

	mu    sync.RWMutex
	trace trace.Logger
}

// New builds the providers for a slot whose EEPROMs report rxID and txID.
// A unit whose ID is dboard.IDNone has no sub-devices. An ID missing from
// reg fails with dboard.ErrUnknownID.
func New(reg *dboard.Registry, rxID, txID dboard.ID, config Config) (*Manager, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Manager{
		slot:      config.Slot,
		sessionID: uuid.New().String(),
		namer:     reg,
		logger:    logger,
		trace:     config.Trace,
	}

	var err error
	if m.rx, err = buildUnit(reg, rxID, rxID, txID); err != nil {
		return nil, fmt.Errorf("rx: %w", err)
	}
	if m.tx, err = buildUnit(reg, txID, rxID, txID); err != nil {
		return nil, fmt.Errorf("tx: %w", err)
	}

	logger.Info("dboard slot ready",
		"slot", m.slot,
		"session", m.sessionID,
		"rx", reg.IDString(rxID),
		"rxSubdevs", len(m.rx.names),
		"tx", reg.IDString(txID),
		"txSubdevs", len(m.tx.names))

	return m, nil
}

func buildUnit(reg *dboard.Registry, id, rxID, txID dboard.ID) (unitSet, error) {
	u := unitSet{id: id, providers: make(map[string]dboard.Provider)}
	if id == dboard.IDNone {
		return u, nil
	}

	names, err := reg.SubdevNames(id)
	if err != nil {
		return unitSet{}, err
	}
	for _, name := range names {
		p, err := reg.Make(id, dboard.CtorArgs{SubdevName: name, RXID: rxID, TXID: txID})
		if err != nil {
			return unitSet{}, err
		}
		u.providers[name] = p
	}
	u.names = names
	return u, nil
}

// SetTraceLogger replaces the trace logger. Nil disables tracing.
func (m *Manager) SetTraceLogger(logger trace.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trace = logger
}

// Slot returns the slot name.
func (m *Manager) Slot() string { return m.slot }

// SessionID returns the UUID identifying this manager in trace events.
func (m *Manager) SessionID() string { return m.sessionID }

// RXID returns the receive board ID.
func (m *Manager) RXID() dboard.ID { return m.rx.id }

// TXID returns the transmit board ID.
func (m *Manager) TXID() dboard.ID { return m.tx.id }

// ID returns the board ID of a unit.
func (m *Manager) ID(unit dboard.Unit) dboard.ID {
	if unit == dboard.UnitTX {
		return m.tx.id
	}
	return m.rx.id
}

// BoardName returns the display string of a unit's board, such as
// "LF RX (0x000f)".
func (m *Manager) BoardName(unit dboard.Unit) string {
	return m.namer.IDString(m.ID(unit))
}

// RXSubdevNames returns the receive sub-device names in declaration order.
func (m *Manager) RXSubdevNames() []string { return slices.Clone(m.rx.names) }

// TXSubdevNames returns the transmit sub-device names in declaration order.
func (m *Manager) TXSubdevNames() []string { return slices.Clone(m.tx.names) }

// SubdevNames returns the sub-device names of a unit.
func (m *Manager) SubdevNames(unit dboard.Unit) []string {
	switch unit {
	case dboard.UnitRX:
		return m.RXSubdevNames()
	case dboard.UnitTX:
		return m.TXSubdevNames()
	default:
		return nil
	}
}

// Provider returns the provider for a sub-device.
func (m *Manager) Provider(unit dboard.Unit, subdev string) (dboard.Provider, error) {
	switch unit {
	case dboard.UnitRX:
		return m.rx.lookup(unit, subdev)
	case dboard.UnitTX:
		return m.tx.lookup(unit, subdev)
	default:
		return nil, fmt.Errorf("%w: unit %s", dboard.ErrUnknownSubdev, unit)
	}
}

// Get reads a property from a sub-device.
func (m *Manager) Get(unit dboard.Unit, subdev string, key prop.Key) (prop.Value, error) {
	val, err := m.get(unit, subdev, key)
	if err != nil {
		m.record(unit, subdev, wire.OpGet, key, nil, err)
		return prop.Value{}, err
	}
	m.record(unit, subdev, wire.OpGet, key, &val, nil)
	return val, nil
}

func (m *Manager) get(unit dboard.Unit, subdev string, key prop.Key) (prop.Value, error) {
	p, err := m.Provider(unit, subdev)
	if err != nil {
		return prop.Value{}, err
	}
	return p.Get(key.Named(subdev))
}

// Set writes a property on a sub-device. A value whose kind does not match
// the key is rejected with prop.ErrInvalidValue before reaching the board.
func (m *Manager) Set(unit dboard.Unit, subdev string, key prop.Key, val prop.Value) error {
	err := m.set(unit, subdev, key, val)
	m.record(unit, subdev, wire.OpSet, key, &val, err)
	return err
}

func (m *Manager) set(unit dboard.Unit, subdev string, key prop.Key, val prop.Value) error {
	p, err := m.Provider(unit, subdev)
	if err != nil {
		return err
	}
	if err := prop.CheckKind(key, val); err != nil {
		return err
	}
	return p.Set(key.Named(subdev), val)
}

// Snapshot reads every key in enumeration order. Keys the board rejects
// are left out of the map.
func (m *Manager) Snapshot(unit dboard.Unit, subdev string) (map[prop.Key]prop.Value, error) {
	if _, err := m.Provider(unit, subdev); err != nil {
		return nil, err
	}

	out := make(map[prop.Key]prop.Value)
	for _, key := range prop.Keys() {
		val, err := m.Get(unit, subdev, key)
		if err != nil {
			m.logger.Debug("snapshot: key skipped",
				"slot", m.slot, "unit", unit, "subdev", subdev, "key", key, "error", err)
			continue
		}
		out[key] = val
	}
	return out, nil
}

func (m *Manager) record(unit dboard.Unit, subdev string, op wire.Operation, key prop.Key, val *prop.Value, err error) {
	m.mu.RLock()
	logger := m.trace
	m.mu.RUnlock()

	if logger == nil {
		return
	}

	event := trace.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Slot:      m.slot,
		Unit:      unit,
		BoardID:   m.ID(unit),
		Subdev:    subdev,
		Operation: op,
		Key:       key,
		Value:     val,
		Status:    wire.StatusFromError(err),
	}
	if err != nil {
		event.Error = err.Error()
	}
	logger.Log(event)
}

var _ wire.Handler = (*Manager)(nil)
