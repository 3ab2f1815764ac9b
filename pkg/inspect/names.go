package inspect

import (
	"strings"

	"github.com/sdrhost/dboard-go/pkg/prop"
)

// ResolveKeyName resolves a key name, alias or number (case-insensitive).
func ResolveKeyName(name string) (prop.Key, bool) {
	k, err := prop.ParseKey(name)
	return k, err == nil
}

// GetKeyName returns the canonical name for a key, or "" if it is outside
// the enumeration.
func GetKeyName(k prop.Key) string {
	if !k.IsValid() {
		return ""
	}
	return k.String()
}

// KeyNames returns the canonical key names in enumeration order.
func KeyNames() []string {
	keys := prop.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

// WritableKeyNames returns the names of keys a host may Set.
func WritableKeyNames() []string {
	var names []string
	for _, k := range prop.Keys() {
		if meta, _ := prop.Describe(k); meta.Access.CanWrite() {
			names = append(names, k.String())
		}
	}
	return names
}

// CompleteKey returns the canonical key names that start with prefix.
func CompleteKey(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, name := range KeyNames() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
