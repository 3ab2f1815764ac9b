package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/manager"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Inspector errors.
var (
	ErrNoSlots      = errors.New("no slots")
	ErrSlotNotFound = errors.New("slot not found")
	ErrPartialPath  = errors.New("path does not name a property")
)

// Inspector provides inspection and mutation capabilities for the slots
// of a local host.
type Inspector struct {
	slots []*manager.Manager
}

// NewInspector creates a new Inspector over the given slot managers. The
// first one is the default slot for paths without a slot prefix.
func NewInspector(slots ...*manager.Manager) *Inspector {
	return &Inspector{slots: slots}
}

// Slots returns the slot names in order.
func (i *Inspector) Slots() []string {
	names := make([]string, len(i.slots))
	for n, m := range i.slots {
		names[n] = m.Slot()
	}
	return names
}

// Manager returns the manager for a slot. An empty name selects the
// default slot.
func (i *Inspector) Manager(slot string) (*manager.Manager, error) {
	if len(i.slots) == 0 {
		return nil, ErrNoSlots
	}
	if slot == "" {
		return i.slots[0], nil
	}
	for _, m := range i.slots {
		if m.Slot() == slot {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
}

// SlotTree represents one slot for display.
type SlotTree struct {
	Name      string
	SessionID string
	Units     []UnitInfo
}

// UnitInfo represents one side of a slot for display.
type UnitInfo struct {
	Unit    dboard.Unit
	ID      dboard.ID
	Board   string
	Subdevs []SubdevInfo
}

// SubdevInfo represents one sub-device for display.
type SubdevInfo struct {
	Name       string
	Properties []PropertyInfo
}

// PropertyInfo represents one property for display. Err is set when the
// board refused the read.
type PropertyInfo struct {
	Key   prop.Key
	Value prop.Value
	Meta  prop.Meta
	Err   error
}

// InspectSlot returns the complete tree of a slot.
func (i *Inspector) InspectSlot(slot string) (*SlotTree, error) {
	m, err := i.Manager(slot)
	if err != nil {
		return nil, err
	}

	tree := &SlotTree{
		Name:      m.Slot(),
		SessionID: m.SessionID(),
	}
	for _, unit := range []dboard.Unit{dboard.UnitRX, dboard.UnitTX} {
		tree.Units = append(tree.Units, inspectUnit(m, unit))
	}
	return tree, nil
}

// InspectUnit returns every sub-device of one unit.
func (i *Inspector) InspectUnit(slot string, unit dboard.Unit) (*UnitInfo, error) {
	m, err := i.Manager(slot)
	if err != nil {
		return nil, err
	}
	info := inspectUnit(m, unit)
	return &info, nil
}

func inspectUnit(m *manager.Manager, unit dboard.Unit) UnitInfo {
	info := UnitInfo{
		Unit:  unit,
		ID:    m.ID(unit),
		Board: m.BoardName(unit),
	}
	for _, name := range m.SubdevNames(unit) {
		info.Subdevs = append(info.Subdevs, inspectSubdev(m, unit, name))
	}
	return info
}

// InspectSubdev returns every property of one sub-device.
func (i *Inspector) InspectSubdev(slot string, unit dboard.Unit, subdev string) (*SubdevInfo, error) {
	m, err := i.Manager(slot)
	if err != nil {
		return nil, err
	}
	if _, err := m.Provider(unit, subdev); err != nil {
		return nil, err
	}
	info := inspectSubdev(m, unit, subdev)
	return &info, nil
}

func inspectSubdev(m *manager.Manager, unit dboard.Unit, subdev string) SubdevInfo {
	info := SubdevInfo{Name: subdev}
	for _, key := range prop.Keys() {
		meta, _ := prop.Describe(key)
		val, err := m.Get(unit, subdev, key)
		info.Properties = append(info.Properties, PropertyInfo{
			Key:   key,
			Value: val,
			Meta:  meta,
			Err:   err,
		})
	}
	return info
}

// ReadProperty reads a property value using a path.
func (i *Inspector) ReadProperty(path *Path) (prop.Value, prop.Meta, error) {
	if path.IsPartial {
		return prop.Value{}, prop.Meta{}, fmt.Errorf("%w: %s", ErrPartialPath, path.Raw)
	}
	m, err := i.Manager(path.Slot)
	if err != nil {
		return prop.Value{}, prop.Meta{}, err
	}

	meta, _ := prop.Describe(path.Key)
	val, err := m.Get(path.Unit, path.Subdev, path.Key)
	if err != nil {
		return prop.Value{}, meta, err
	}
	return val, meta, nil
}

// WriteProperty writes a property value using a path. The board decides
// whether to accept it.
func (i *Inspector) WriteProperty(path *Path, value prop.Value) error {
	if path.IsPartial {
		return fmt.Errorf("%w: %s", ErrPartialPath, path.Raw)
	}
	m, err := i.Manager(path.Slot)
	if err != nil {
		return err
	}
	return m.Set(path.Unit, path.Subdev, path.Key, value)
}

// WritePropertyText parses text into the kind the key carries and writes it.
func (i *Inspector) WritePropertyText(path *Path, text string) (prop.Value, error) {
	if path.IsPartial {
		return prop.Value{}, fmt.Errorf("%w: %s", ErrPartialPath, path.Raw)
	}
	meta, ok := prop.Describe(path.Key)
	if !ok {
		return prop.Value{}, fmt.Errorf("%w: %s", prop.ErrUnsupportedProperty, path.Key)
	}
	val, err := prop.ParseValue(meta.Kind, text)
	if err != nil {
		return prop.Value{}, err
	}
	return val, i.WriteProperty(path, val)
}

// FormatSlotTree formats the slot tree for display.
func (i *Inspector) FormatSlotTree(tree *SlotTree, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("Slot: %s\n", tree.Name))
	sb.WriteString(fmt.Sprintf("Session: %s\n", tree.SessionID))
	sb.WriteString("---\n")

	for _, u := range tree.Units {
		sb.WriteString(i.formatUnit(&u, formatter, 0))
	}

	return sb.String()
}

// FormatUnit formats a unit for display.
func (i *Inspector) FormatUnit(u *UnitInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return i.formatUnit(u, formatter, 0)
}

func (i *Inspector) formatUnit(u *UnitInfo, f *Formatter, depth int) string {
	var sb strings.Builder

	sb.WriteString(f.Indent(depth, fmt.Sprintf("%s: %s", u.Unit, u.Board)) + "\n")
	if len(u.Subdevs) == 0 {
		sb.WriteString(f.Indent(depth+1, "(no sub-devices)") + "\n")
	}
	for _, s := range u.Subdevs {
		sb.WriteString(i.formatSubdev(&s, f, depth+1))
	}

	return sb.String()
}

// FormatSubdev formats a sub-device for display.
func (i *Inspector) FormatSubdev(s *SubdevInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return i.formatSubdev(s, formatter, 0)
}

func (i *Inspector) formatSubdev(s *SubdevInfo, f *Formatter, depth int) string {
	var sb strings.Builder

	sb.WriteString(f.Indent(depth, fmt.Sprintf("subdev %q", s.Name)) + "\n")
	for _, p := range s.Properties {
		sb.WriteString(f.Indent(depth+1, i.formatPropertyInfo(&p, f)) + "\n")
	}

	return sb.String()
}

func (i *Inspector) formatPropertyInfo(p *PropertyInfo, f *Formatter) string {
	name := GetKeyName(p.Key)
	if name == "" {
		name = fmt.Sprintf("key_%d", p.Key)
	}

	var valueStr string
	if p.Err != nil {
		valueStr = "<error: " + p.Err.Error() + ">"
	} else {
		valueStr = f.FormatValue(p.Value, p.Meta.Unit)
	}

	var s string
	if f.ShowIDs {
		s = fmt.Sprintf("[%d] %s = %s", p.Key, name, valueStr)
	} else {
		s = fmt.Sprintf("%s = %s", name, valueStr)
	}
	if f.ShowMetadata {
		s += fmt.Sprintf(" (%s, %s)", FormatKind(p.Meta.Kind), FormatAccess(p.Meta.Access))
	}
	return s
}

// PropertyRows converts a sub-device into table rows.
func PropertyRows(s *SubdevInfo, f *Formatter) []PropertyRow {
	rows := make([]PropertyRow, 0, len(s.Properties))
	for _, p := range s.Properties {
		value := f.FormatValue(p.Value, p.Meta.Unit)
		if p.Err != nil {
			value = "<error: " + p.Err.Error() + ">"
		}
		rows = append(rows, PropertyRow{
			Key:    p.Key,
			Name:   GetKeyName(p.Key),
			Value:  value,
			Kind:   FormatKind(p.Meta.Kind),
			Access: FormatAccess(p.Meta.Access),
		})
	}
	return rows
}
