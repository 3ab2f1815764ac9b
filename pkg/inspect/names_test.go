package inspect

import (
	"slices"
	"testing"

	"github.com/sdrhost/dboard-go/pkg/prop"
)

func TestResolveKeyName(t *testing.T) {
	tests := []struct {
		name   string
		want   prop.Key
		wantOK bool
	}{
		{"gain", prop.KeyGain, true},
		{"GAIN", prop.KeyGain, true},
		{"frequency-range", prop.KeyFreqRange, true},
		{"use_lo_offset", prop.KeyUseLOOffset, true},
		{"lo-offset", prop.KeyUseLOOffset, true},
		{"1", prop.KeyName, true},
		{"volume", prop.KeyInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveKeyName(tt.name)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ResolveKeyName(%q) = %s, %v; want %s, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGetKeyName(t *testing.T) {
	if got := GetKeyName(prop.KeyIQSwapped); got != "iq-swapped" {
		t.Errorf("GetKeyName(iq-swapped) = %q", got)
	}
	if got := GetKeyName(prop.Key(200)); got != "" {
		t.Errorf("GetKeyName(200) = %q, want empty", got)
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(prop.Keys()) {
		t.Fatalf("expected %d names, got %d", len(prop.Keys()), len(names))
	}
	if names[0] != "name" {
		t.Errorf("first name = %q, want name", names[0])
	}
}

func TestWritableKeyNames(t *testing.T) {
	want := []string{"gain", "frequency", "antenna"}
	if got := WritableKeyNames(); !slices.Equal(got, want) {
		t.Errorf("WritableKeyNames() = %v, want %v", got, want)
	}
}

func TestCompleteKey(t *testing.T) {
	got := CompleteKey("GAIN")
	want := []string{"gain", "gain-range", "gain-names"}
	if !slices.Equal(got, want) {
		t.Errorf("CompleteKey(GAIN) = %v, want %v", got, want)
	}
	if got := CompleteKey("zzz"); len(got) != 0 {
		t.Errorf("CompleteKey(zzz) = %v", got)
	}
}
