package prop

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind is the shape of a property value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindFloat32
	KindFloat64
	KindBool
	KindRange
	KindNames
)

// String returns the kind name.
func (k Kind) String() string {
	names := []string{"invalid", "string", "float32", "float64", "bool", "range", "names"}
	if int(k) < len(names) {
		return names[k]
	}
	return "invalid"
}

// Value is a property value of one Kind. The zero Value is invalid.
type Value struct {
	kind  Kind
	s     string
	f     float64
	b     bool
	r     Range
	names []string
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Float32 returns a single-precision value.
func Float32(f float32) Value { return Value{kind: KindFloat32, f: float64(f)} }

// Float64 returns a double-precision value.
func Float64(f float64) Value { return Value{kind: KindFloat64, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// RangeOf returns a range value.
func RangeOf(r Range) Value { return Value{kind: KindRange, r: r} }

// Names returns an ordered name list value. Calling Names() with no
// arguments yields an empty, non-nil list.
func Names(names ...string) Value {
	list := make([]string, len(names))
	copy(list, names)
	return Value{kind: KindNames, names: list}
}

// Kind returns the value's shape.
func (v Value) Kind() Kind { return v.kind }

// IsValid returns true for any value built by a constructor.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) must(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("prop: value is %s, not %s", v.kind, k))
	}
}

// Str returns the string payload. It panics if the value is not a string.
func (v Value) Str() string { v.must(KindString); return v.s }

// F32 returns the float32 payload. It panics on any other kind.
func (v Value) F32() float32 { v.must(KindFloat32); return float32(v.f) }

// F64 returns the float64 payload. It panics on any other kind.
func (v Value) F64() float64 { v.must(KindFloat64); return v.f }

// Truth returns the bool payload. It panics on any other kind.
func (v Value) Truth() bool { v.must(KindBool); return v.b }

// Range returns the range payload. It panics on any other kind.
func (v Value) Range() Range { v.must(KindRange); return v.r }

// NameList returns a copy of the name list. It panics on any other kind.
func (v Value) NameList() []string {
	v.must(KindNames)
	return slices.Clone(v.names)
}

// AsString returns the string payload and whether the value is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsFloat32 returns the float32 payload and whether the value is a float32.
func (v Value) AsFloat32() (float32, bool) { return float32(v.f), v.kind == KindFloat32 }

// AsFloat64 returns the float64 payload and whether the value is a float64.
func (v Value) AsFloat64() (float64, bool) { return v.f, v.kind == KindFloat64 }

// AsBool returns the bool payload and whether the value is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsRange returns the range payload and whether the value is a range.
func (v Value) AsRange() (Range, bool) { return v.r, v.kind == KindRange }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindFloat32, KindFloat64:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindRange:
		return v.r == o.r
	case KindNames:
		return slices.Equal(v.names, o.names)
	default:
		return true
	}
}

// String renders the value for logs and diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindRange:
		return v.r.String()
	case KindNames:
		quoted := make([]string, len(v.names))
		for i, n := range v.names {
			quoted[i] = strconv.Quote(n)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// ParseValue converts text into a value of the given kind.
//
// Ranges are written "min:max" or "min:max:step"; name lists are comma
// separated. A string is taken verbatim, with surrounding double quotes
// removed so that "" denotes the empty string.
func ParseValue(kind Kind, text string) (Value, error) {
	text = strings.TrimSpace(text)
	switch kind {
	case KindString:
		if unq, err := strconv.Unquote(text); err == nil {
			return String(unq), nil
		}
		return String(text), nil
	case KindFloat32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return Float32(float32(f)), nil
	case KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return Float64(f), nil
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return Bool(b), nil
	case KindRange:
		parts := strings.Split(text, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return Value{}, fmt.Errorf("%w: range must be min:max[:step]", ErrInvalidValue)
		}
		nums := make([]float64, 3)
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			nums[i] = f
		}
		return RangeOf(NewRange(nums[0], nums[1], nums[2])), nil
	case KindNames:
		if text == "" {
			return Names(), nil
		}
		parts := strings.Split(text, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return Names(parts...), nil
	default:
		return Value{}, fmt.Errorf("%w: cannot parse kind %s", ErrInvalidValue, kind)
	}
}
