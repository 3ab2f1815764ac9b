package dboard

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Registry errors.
var (
	ErrUnknownID     = errors.New("unknown dboard ID")
	ErrDuplicateID   = errors.New("duplicate dboard ID")
	ErrNilFactory    = errors.New("nil dboard factory")
	ErrReservedID    = errors.New("reserved dboard ID")
	ErrUnknownSubdev = errors.New("unknown sub-device")
)

// Entry is one registered board.
type Entry struct {
	// ID is the hardware ID.
	ID ID

	// Name is the display name, e.g. "Basic RX".
	Name string

	// SubdevNames lists the logical sub-devices, in declaration order.
	SubdevNames []string

	factory Factory
}

// Registry maps hardware IDs to driver factories.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[ID]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]*Entry)}
}

// Register adds a board. With no sub-device names the board exposes a
// single sub-device named "".
func (r *Registry) Register(id ID, factory Factory, name string, subdevNames ...string) error {
	if factory == nil {
		return fmt.Errorf("%w for %s", ErrNilFactory, id)
	}
	if id == IDNone {
		return fmt.Errorf("%w: %s", ErrReservedID, id)
	}
	if len(subdevNames) == 0 {
		subdevNames = []string{""}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.entries[id]; exists {
		return fmt.Errorf("%w: %s already registered as %q", ErrDuplicateID, id, existing.Name)
	}

	r.entries[id] = &Entry{
		ID:          id,
		Name:        name,
		SubdevNames: slices.Clone(subdevNames),
		factory:     factory,
	}
	return nil
}

// Lookup returns the entry for an ID.
func (r *Registry) Lookup(id ID) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownID, id)
	}
	return entry, nil
}

// Has returns true if the ID is registered.
func (r *Registry) Has(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.entries[id]
	return exists
}

// Make instantiates the board registered for id. The sub-device name in
// args must be one the board declared.
func (r *Registry) Make(id ID, args CtorArgs) (Provider, error) {
	entry, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(entry.SubdevNames, args.SubdevName) {
		return nil, fmt.Errorf("%w: %q on %s", ErrUnknownSubdev, args.SubdevName, r.IDString(id))
	}
	if args.Namer == nil {
		args.Namer = r
	}
	return entry.factory(args), nil
}

// SubdevNames returns the sub-device names declared for id.
func (r *Registry) SubdevNames(id ID) ([]string, error) {
	entry, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(entry.SubdevNames), nil
}

// IDs returns all registered IDs in ascending order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Name returns the display name for id, or "" if unregistered.
func (r *Registry) Name(id ID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, exists := r.entries[id]; exists {
		return entry.Name
	}
	return ""
}

// IDString renders id as "<Name> (0x%04x)" when registered, otherwise as
// ID.String.
func (r *Registry) IDString(id ID) string {
	if name := r.Name(id); name != "" {
		return fmt.Sprintf("%s (%s)", name, id)
	}
	return id.String()
}

var _ Namer = (*Registry)(nil)
