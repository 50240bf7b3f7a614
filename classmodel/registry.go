package classmodel

import (
	"fmt"
	"sync"

	"github.com/zoobzio/fieldlens"
)

var (
	registry   = make(map[string]*Class)
	registryMu sync.RWMutex
)

// Register associates c with its name for later lookup. Re-registering the
// same class is a no-op; registering a different class under an existing
// name is an error.
func Register(c *Class) error {
	if c == nil {
		return fmt.Errorf("%w: class must not be nil", fieldlens.ErrInvalidArgument)
	}
	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := registry[c.name]; ok {
		if existing == c {
			return nil
		}
		return fmt.Errorf("classmodel: a different class is already registered as %q", c.name)
	}
	registry[c.name] = c
	return nil
}

// Lookup returns the class registered under name.
func Lookup(name string) (*Class, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// Reset clears the class registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Class)
}
