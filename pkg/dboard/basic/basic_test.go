package basic

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

func newRegistry(t *testing.T) *dboard.Registry {
	t.Helper()
	reg := dboard.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return reg
}

// makeAll instantiates every (id, sub-device) pair the registry declares.
func makeAll(t *testing.T, reg *dboard.Registry) map[dboard.ID][]dboard.Provider {
	t.Helper()
	out := make(map[dboard.ID][]dboard.Provider)
	for _, id := range reg.IDs() {
		names, err := reg.SubdevNames(id)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range names {
			p, err := reg.Make(id, dboard.CtorArgs{SubdevName: name, RXID: id, TXID: id})
			if err != nil {
				t.Fatalf("Make(%s, %q): %v", id, name, err)
			}
			out[id] = append(out[id], p)
		}
	}
	return out
}

func mustGet(t *testing.T, p dboard.Provider, key prop.Key) prop.Value {
	t.Helper()
	v, err := p.Get(key.Named(""))
	if err != nil {
		t.Fatalf("Get(%s): %v", key, err)
	}
	return v
}

func TestRegister(t *testing.T) {
	reg := newRegistry(t)

	tests := []struct {
		id      dboard.ID
		name    string
		subdevs []string
	}{
		{0x0000, "Basic TX", []string{""}},
		{0x0001, "Basic RX", []string{"AB", "A", "B"}},
		{0x000e, "LF TX", []string{""}},
		{0x000f, "LF RX", []string{"AB", "A", "B"}},
	}

	for _, tt := range tests {
		entry, err := reg.Lookup(tt.id)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tt.id, err)
		}
		if entry.Name != tt.name {
			t.Errorf("%s: expected name %q, got %q", tt.id, tt.name, entry.Name)
		}
		if strings.Join(entry.SubdevNames, ",") != strings.Join(tt.subdevs, ",") {
			t.Errorf("%s: expected sub-devices %q, got %q", tt.id, tt.subdevs, entry.SubdevNames)
		}
	}

	if err := Register(reg); !errors.Is(err, dboard.ErrDuplicateID) {
		t.Errorf("second Register: expected ErrDuplicateID, got %v", err)
	}
}

func TestFrequencyRangeAllBoards(t *testing.T) {
	reg := newRegistry(t)
	ceilings := map[dboard.ID]float64{
		IDBasicTX: CeilingWide,
		IDBasicRX: CeilingWide,
		IDLFTX:    CeilingLF,
		IDLFRX:    CeilingLF,
	}

	for id, providers := range makeAll(t, reg) {
		for _, p := range providers {
			r := mustGet(t, p, prop.KeyFreqRange).Range()
			want := ceilings[id]
			if r.Min != +want || r.Max != -want {
				t.Errorf("%s: expected (+%g, -%g), got (%g, %g)", id, want, want, r.Min, r.Max)
			}
		}
	}
}

func TestRXQuadrature(t *testing.T) {
	reg := newRegistry(t)
	for _, id := range []dboard.ID{IDBasicRX, IDLFRX} {
		for _, name := range RXSubdevNames {
			p, err := reg.Make(id, dboard.CtorArgs{SubdevName: name, RXID: id})
			if err != nil {
				t.Fatal(err)
			}
			got := mustGet(t, p, prop.KeyQuadrature).Truth()
			if want := name == "AB"; got != want {
				t.Errorf("%s/%s: quadrature = %v, want %v", id, name, got, want)
			}
		}
	}
}

func TestTXQuadratureAlwaysTrue(t *testing.T) {
	for _, name := range []string{"", "AB", "A", "B", "anything"} {
		tx := NewTX(dboard.CtorArgs{SubdevName: name, TXID: IDBasicTX}, CeilingWide)
		if !mustGet(t, tx, prop.KeyQuadrature).Truth() {
			t.Errorf("sub-device %q: expected quadrature", name)
		}
	}
}

func TestFixedProperties(t *testing.T) {
	reg := newRegistry(t)

	for id, providers := range makeAll(t, reg) {
		for _, p := range providers {
			checks := []struct {
				key  prop.Key
				want prop.Value
			}{
				{prop.KeyOthers, prop.Names()},
				{prop.KeyGain, prop.Float32(0)},
				{prop.KeyGainRange, prop.RangeOf(prop.NewRange(0, 0, 0))},
				{prop.KeyGainNames, prop.Names()},
				{prop.KeyFreq, prop.Float64(0)},
				{prop.KeyAntenna, prop.String("")},
				{prop.KeyAntennaNames, prop.Names("")},
				{prop.KeyIQSwapped, prop.Bool(false)},
				{prop.KeySpectrumInverted, prop.Bool(false)},
				{prop.KeyUseLOOffset, prop.Bool(false)},
			}
			for _, c := range checks {
				got := mustGet(t, p, c.key)
				if !got.Equal(c.want) {
					t.Errorf("%s %s: got %v, want %v", id, c.key, got, c.want)
				}
			}
		}
	}
}

func TestGetMatchesDeclaredKinds(t *testing.T) {
	reg := newRegistry(t)
	for id, providers := range makeAll(t, reg) {
		for _, p := range providers {
			for _, k := range prop.Keys() {
				v := mustGet(t, p, k)
				if err := prop.CheckKind(k, v); err != nil {
					t.Errorf("%s: %v", id, err)
				}
			}
		}
	}
}

func TestGetUnsupported(t *testing.T) {
	rx := NewRX(dboard.CtorArgs{SubdevName: "AB"}, CeilingWide)
	tx := NewTX(dboard.CtorArgs{}, CeilingWide)

	for _, p := range []dboard.Provider{rx, tx} {
		for _, k := range []prop.Key{prop.KeyInvalid, prop.Key(77)} {
			if _, err := p.Get(k.Named("")); !errors.Is(err, prop.ErrUnsupportedProperty) {
				t.Errorf("Get(%s): expected ErrUnsupportedProperty, got %v", k, err)
			}
		}
	}
}

func TestSetGain(t *testing.T) {
	reg := newRegistry(t)
	for id, providers := range makeAll(t, reg) {
		for _, p := range providers {
			if err := p.Set(prop.KeyGain.Named(""), prop.Float32(0)); err != nil {
				t.Errorf("%s: Set(gain, 0) failed: %v", id, err)
			}
			for _, g := range []float32{1, -1, 0.001, float32(math.Inf(1))} {
				err := p.Set(prop.KeyGain.Named(""), prop.Float32(g))
				if !errors.Is(err, prop.ErrInvalidValue) {
					t.Errorf("%s: Set(gain, %g): expected ErrInvalidValue, got %v", id, g, err)
				}
			}
		}
	}
}

func TestSetAntenna(t *testing.T) {
	reg := newRegistry(t)
	for id, providers := range makeAll(t, reg) {
		for _, p := range providers {
			if err := p.Set(prop.KeyAntenna.Named(""), prop.String("")); err != nil {
				t.Errorf("%s: Set(antenna, \"\") failed: %v", id, err)
			}
			for _, a := range []string{"TX/RX", "RX2", " "} {
				err := p.Set(prop.KeyAntenna.Named(""), prop.String(a))
				if !errors.Is(err, prop.ErrInvalidValue) {
					t.Errorf("%s: Set(antenna, %q): expected ErrInvalidValue, got %v", id, a, err)
				}
			}
		}
	}
}

func TestSetFrequencyIsInert(t *testing.T) {
	reg := newRegistry(t)
	for id, providers := range makeAll(t, reg) {
		for _, p := range providers {
			for _, f := range []float64{0, 1e6, -2.4e9, 1e12} {
				if err := p.Set(prop.KeyFreq.Named(""), prop.Float64(f)); err != nil {
					t.Errorf("%s: Set(frequency, %g) failed: %v", id, f, err)
				}
				if got := mustGet(t, p, prop.KeyFreq).F64(); got != 0 {
					t.Errorf("%s: frequency changed to %g after Set(%g)", id, got, f)
				}
			}
		}
	}
}

func TestSetReadOnly(t *testing.T) {
	reg := newRegistry(t)

	readOnly := []prop.Key{
		prop.KeyName, prop.KeyOthers, prop.KeyGainRange, prop.KeyGainNames,
		prop.KeyFreqRange, prop.KeyAntennaNames, prop.KeyQuadrature,
		prop.KeyIQSwapped, prop.KeySpectrumInverted, prop.KeyUseLOOffset,
	}

	for id, providers := range makeAll(t, reg) {
		idString := reg.IDString(id)
		for _, p := range providers {
			for _, k := range readOnly {
				err := p.Set(k.Named(""), prop.Bool(true))
				if !errors.Is(err, prop.ErrReadOnlyProperty) {
					t.Errorf("%s: Set(%s): expected ErrReadOnlyProperty, got %v", id, k, err)
					continue
				}
				if !strings.Contains(err.Error(), idString) {
					t.Errorf("%s: error %q does not name %q", id, err, idString)
				}
			}
		}
	}
}

func TestSetUnsupported(t *testing.T) {
	rx := NewRX(dboard.CtorArgs{SubdevName: "A"}, CeilingLF)
	err := rx.Set(prop.Key(99).Named(""), prop.Bool(true))
	if !errors.Is(err, prop.ErrUnsupportedProperty) {
		t.Errorf("expected ErrUnsupportedProperty, got %v", err)
	}
}

func TestIQSwappedReadOnlyNamesBoard(t *testing.T) {
	reg := newRegistry(t)
	p, err := reg.Make(IDLFRX, dboard.CtorArgs{SubdevName: "B", RXID: IDLFRX})
	if err != nil {
		t.Fatal(err)
	}
	err = p.Set(prop.KeyIQSwapped.Named("B"), prop.Bool(true))
	if !errors.Is(err, prop.ErrReadOnlyProperty) {
		t.Fatalf("expected ErrReadOnlyProperty, got %v", err)
	}
	if !strings.Contains(err.Error(), "LF RX (0x000f)") {
		t.Errorf("error should carry the board identity, got %q", err)
	}
}

func TestScenarioLFReceiveAB(t *testing.T) {
	reg := newRegistry(t)
	p, err := reg.Make(IDLFRX, dboard.CtorArgs{SubdevName: "AB", RXID: IDLFRX, TXID: IDLFTX})
	if err != nil {
		t.Fatal(err)
	}

	if got := mustGet(t, p, prop.KeyName).Str(); got != "LF RX (0x000f) - AB" {
		t.Errorf("name = %q", got)
	}
	r := mustGet(t, p, prop.KeyFreqRange).Range()
	if r.Min != 3.2e7 || r.Max != -3.2e7 {
		t.Errorf("frequency-range = %v", r)
	}
	if !mustGet(t, p, prop.KeyQuadrature).Truth() {
		t.Error("expected quadrature on AB")
	}
}

func TestScenarioBasicTransmit(t *testing.T) {
	reg := newRegistry(t)
	p, err := reg.Make(IDBasicTX, dboard.CtorArgs{RXID: IDBasicRX, TXID: IDBasicTX})
	if err != nil {
		t.Fatal(err)
	}

	if got := mustGet(t, p, prop.KeyName).Str(); got != "Basic TX (0x0000)" {
		t.Errorf("name = %q", got)
	}
	if got := mustGet(t, p, prop.KeyGainRange).Range(); got != prop.NewRange(0, 0, 0) {
		t.Errorf("gain-range = %v", got)
	}
}

func TestNameWithoutNamer(t *testing.T) {
	rx := NewRX(dboard.CtorArgs{SubdevName: "A", RXID: IDBasicRX}, CeilingWide)
	if got := mustGet(t, rx, prop.KeyName).Str(); got != "0x0001 - A" {
		t.Errorf("name = %q", got)
	}
	tx := NewTX(dboard.CtorArgs{TXID: IDLFTX}, CeilingLF)
	if got := mustGet(t, tx, prop.KeyName).Str(); got != "0x000e" {
		t.Errorf("name = %q", got)
	}
}

func TestMaxFreqImmutable(t *testing.T) {
	rx := NewRX(dboard.CtorArgs{SubdevName: "AB"}, CeilingLF)
	_ = rx.Set(prop.KeyFreq.Named(""), prop.Float64(1e9))
	_ = rx.Set(prop.KeyFreqRange.Named(""), prop.RangeOf(prop.NewRange(0, 1, 0)))
	if rx.MaxFreq() != CeilingLF {
		t.Errorf("ceiling changed to %g", rx.MaxFreq())
	}
	tx := NewTX(dboard.CtorArgs{}, CeilingWide)
	if tx.MaxFreq() != CeilingWide {
		t.Errorf("unexpected ceiling %g", tx.MaxFreq())
	}
}
