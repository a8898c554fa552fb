package enum

import (
	"sync"

	"github.com/warpfork/go-errcat"

	"github.com/patrickhuber/go-types/variant"
)

// Process-wide registry of declared enum types, keyed by type name.
// Declaration is expected at init time; lookups may run concurrently with
// each other afterwards.
var (
	registryMutex  sync.RWMutex
	registryByName = make(map[string]*Type)
)

func register(t *Type) error {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if _, exists := registryByName[t.name]; exists {
		return errcat.Errorf(variant.ErrDuplicateCase, "enum type %q already registered", t.name)
	}
	registryByName[t.name] = t
	return nil
}

// Lookup returns the registered enum type with the given name.
func Lookup(typeName string) (*Type, bool) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	t, ok := registryByName[typeName]
	return t, ok
}

// RegisteredNames returns the names of all registered enum types.
func RegisteredNames() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	names := make([]string, 0, len(registryByName))
	for name := range registryByName {
		names = append(names, name)
	}
	return names
}

// ClearRegistry removes every registered type.  Intended for tests.
func ClearRegistry() {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registryByName = make(map[string]*Type)
}
