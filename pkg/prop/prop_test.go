package prop

import (
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyName, "name"},
		{KeyGainRange, "gain-range"},
		{KeyFreq, "frequency"},
		{KeyFreqRange, "frequency-range"},
		{KeyUseLOOffset, "use-lo-offset"},
		{KeyInvalid, "invalid"},
		{Key(200), "key(200)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"name", KeyName, false},
		{"FREQUENCY-RANGE", KeyFreqRange, false},
		{"iq_swapped", KeyIQSwapped, false},
		{" quad ", KeyQuadrature, false},
		{"3", KeyGain, false},
		{"0", KeyInvalid, true},
		{"99", KeyInvalid, true},
		{"bandwidth", KeyInvalid, true},
		{"", KeyInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKey) {
					t.Fatalf("expected ErrUnknownKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestKeysCoverEnumeration(t *testing.T) {
	keys := Keys()
	if len(keys) != 13 {
		t.Fatalf("expected 13 keys, got %d", len(keys))
	}
	for _, k := range keys {
		if !k.IsValid() {
			t.Errorf("key %d reported invalid", k)
		}
		meta, ok := Describe(k)
		if !ok {
			t.Errorf("no metadata for %s", k)
		}
		if meta.Key != k {
			t.Errorf("metadata for %s names key %s", k, meta.Key)
		}
		if meta.Kind == KindInvalid {
			t.Errorf("metadata for %s has no kind", k)
		}
	}
	if KeyInvalid.IsValid() || Key(42).IsValid() {
		t.Error("keys outside the enumeration must be invalid")
	}
}

func TestNamedKeyString(t *testing.T) {
	if got := KeyGain.Named("").String(); got != "gain" {
		t.Errorf("unexpected %q", got)
	}
	if got := KeyGain.Named("AB").String(); got != "gain[AB]" {
		t.Errorf("unexpected %q", got)
	}
}

func TestRange(t *testing.T) {
	t.Run("Descending", func(t *testing.T) {
		r := NewRange(+32e6, -32e6, 0)
		if r.Min != 32e6 || r.Max != -32e6 {
			t.Fatalf("endpoints not stored as constructed: %v", r)
		}
		if r.Lower() != -32e6 || r.Upper() != 32e6 {
			t.Errorf("expected ordered bounds, got %g..%g", r.Lower(), r.Upper())
		}
		if !r.Contains(0) || !r.Contains(-32e6) || r.Contains(33e6) {
			t.Error("Contains mismatch on descending range")
		}
		if got := r.Clip(1e9); got != 32e6 {
			t.Errorf("Clip(1e9) = %g", got)
		}
		if got := r.Span(); got != 64e6 {
			t.Errorf("Span() = %g", got)
		}
	})

	t.Run("Degenerate", func(t *testing.T) {
		r := NewRange(0, 0, 0)
		if !r.IsDegenerate() {
			t.Error("expected degenerate range")
		}
		if got := r.Clip(12.5); got != 0 {
			t.Errorf("Clip(12.5) = %g", got)
		}
	})

	t.Run("Step", func(t *testing.T) {
		r := NewRange(0, 31.5, 0.5)
		if got := r.Clip(10.3); got != 10.5 {
			t.Errorf("Clip(10.3) = %g", got)
		}
		if got := r.Clip(40); got != 31.5 {
			t.Errorf("Clip(40) = %g", got)
		}
	})
}

func TestValueAccessors(t *testing.T) {
	if String("x").Str() != "x" {
		t.Error("Str mismatch")
	}
	if Float32(1.5).F32() != 1.5 {
		t.Error("F32 mismatch")
	}
	if Float64(2.5).F64() != 2.5 {
		t.Error("F64 mismatch")
	}
	if !Bool(true).Truth() {
		t.Error("Truth mismatch")
	}
	if Names("a", "b").NameList()[1] != "b" {
		t.Error("NameList mismatch")
	}
	if (Value{}).IsValid() {
		t.Error("zero value must be invalid")
	}

	if _, ok := Float64(1).AsFloat32(); ok {
		t.Error("AsFloat32 accepted a float64")
	}
	if s, ok := String("").AsString(); !ok || s != "" {
		t.Error("AsString rejected an empty string")
	}
}

func TestValueWrongKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic reading float64 as float32")
		}
	}()
	_ = Float64(0).F32()
}

func TestNamesIsCopied(t *testing.T) {
	src := []string{"a"}
	v := Names(src...)
	src[0] = "changed"
	list := v.NameList()
	list[0] = "mutated"
	if v.NameList()[0] != "a" {
		t.Error("Value shares its name list")
	}
	if Names().NameList() == nil {
		t.Error("empty Names must be non-nil")
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{Float32(0), Float32(0), true},
		{Float32(0), Float64(0), false},
		{Names(""), Names(""), true},
		{Names(""), Names(), false},
		{RangeOf(NewRange(1, 2, 0)), RangeOf(NewRange(1, 2, 0)), true},
		{RangeOf(NewRange(1, 2, 0)), RangeOf(NewRange(2, 1, 0)), false},
		{String("a"), String("b"), false},
	}
	for i, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("case %d: %v.Equal(%v) = %v", i, tt.a, tt.b, got)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String(""), `""`},
		{Float32(0), "0"},
		{Float64(3.2e7), "3.2e+07"},
		{Bool(false), "false"},
		{RangeOf(NewRange(0, 0, 0)), "[0, 0, 0]"},
		{Names(""), `[""]`},
		{Names(), "[]"},
		{Value{}, "<invalid>"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	t.Run("Float32", func(t *testing.T) {
		v, err := ParseValue(KindFloat32, "0")
		if err != nil || !v.Equal(Float32(0)) {
			t.Fatalf("got %v, %v", v, err)
		}
	})

	t.Run("QuotedEmptyString", func(t *testing.T) {
		v, err := ParseValue(KindString, `""`)
		if err != nil || v.Str() != "" {
			t.Fatalf("got %v, %v", v, err)
		}
	})

	t.Run("BareString", func(t *testing.T) {
		v, err := ParseValue(KindString, "RX2")
		if err != nil || v.Str() != "RX2" {
			t.Fatalf("got %v, %v", v, err)
		}
	})

	t.Run("Range", func(t *testing.T) {
		v, err := ParseValue(KindRange, "-1e6:1e6:100")
		if err != nil {
			t.Fatal(err)
		}
		if v.Range() != NewRange(-1e6, 1e6, 100) {
			t.Errorf("unexpected range %v", v.Range())
		}
	})

	t.Run("Names", func(t *testing.T) {
		v, err := ParseValue(KindNames, "TX/RX, RX2")
		if err != nil || !v.Equal(Names("TX/RX", "RX2")) {
			t.Fatalf("got %v, %v", v, err)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		bad := []struct {
			kind Kind
			text string
		}{
			{KindFloat32, "abc"},
			{KindFloat64, ""},
			{KindBool, "maybe"},
			{KindRange, "1"},
			{KindRange, "1:x"},
			{KindInvalid, "1"},
		}
		for _, b := range bad {
			if _, err := ParseValue(b.kind, b.text); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("ParseValue(%s, %q): expected ErrInvalidValue, got %v", b.kind, b.text, err)
			}
		}
	})
}

func TestCheckKind(t *testing.T) {
	if err := CheckKind(KeyGain, Float32(0)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := CheckKind(KeyGain, Float64(0))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	var ke *KindError
	if !errors.As(err, &ke) || ke.Want != KindFloat32 || ke.Got != KindFloat64 {
		t.Errorf("unexpected KindError: %v", err)
	}

	if err := CheckKind(Key(99), Bool(true)); err != nil {
		t.Errorf("keys outside the enumeration are not checked, got %v", err)
	}
}

func TestAccessString(t *testing.T) {
	if AccessReadOnly.String() != "R" || AccessReadWrite.String() != "RW" || Access(0).String() != "-" {
		t.Error("unexpected access rendering")
	}
	meta, _ := Describe(KeyAntenna)
	if !meta.Access.CanWrite() {
		t.Error("antenna should be host-writable")
	}
	meta, _ = Describe(KeyIQSwapped)
	if meta.Access.CanWrite() {
		t.Error("iq-swapped should be read-only")
	}
}

func TestValueCBOR(t *testing.T) {
	values := []Value{
		String("Basic RX (0x0001) - AB"),
		String(""),
		Float32(0),
		Float64(-3.2e7),
		Bool(true),
		RangeOf(NewRange(90e9, -90e9, 0)),
		Names(""),
		Names(),
	}

	for _, v := range values {
		data, err := cbor.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v, err)
		}
		var got Value
		if err := cbor.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %v: %v", v, err)
		}
		if !got.Equal(v) {
			t.Errorf("round trip changed %v into %v", v, got)
		}
	}
}

func TestValueCBORRejectsInvalid(t *testing.T) {
	if _, err := cbor.Marshal(Value{}); err == nil {
		t.Error("expected error encoding invalid value")
	}

	data, err := cbor.Marshal(map[int]any{1: uint8(KindString)})
	if err != nil {
		t.Fatal(err)
	}
	var v Value
	if err := cbor.Unmarshal(data, &v); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for missing payload, got %v", err)
	}
}
