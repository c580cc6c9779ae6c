package localizable

import (
	"sort"

	"github.com/napalu/l10n-migrate/util"
)

// DefaultNamespace is the name of the enum SwiftGen generates for string tables
const DefaultNamespace = "L10n"

// KeyMap maps resource keys to the reference expression replacing them, e.g.
// "welcome_title" -> "L10n.welcomeTitle". A KeyMap is not modified after
// construction and may be shared between goroutines.
type KeyMap struct {
	refs map[string]string
}

// BuildKeyMap derives the reference expression of every key. When a key occurs more
// than once the last occurrence wins.
func BuildKeyMap(keys []string, namespace string, naming util.NamingFunc) *KeyMap {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if naming == nil {
		naming = util.KeyToIdentifier
	}

	refs := make(map[string]string, len(keys))
	for _, key := range keys {
		refs[key] = namespace + "." + naming(key)
	}

	return &KeyMap{refs: refs}
}

// Lookup returns the reference expression for key
func (m *KeyMap) Lookup(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	ref, ok := m.refs[key]
	return ref, ok
}

// Len returns the number of distinct keys
func (m *KeyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.refs)
}

// Keys returns all keys in sorted order
func (m *KeyMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.refs))
	for key := range m.refs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
