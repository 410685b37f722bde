package surface

import (
	"errors"
	"sort"
	"sync"
)

// DriverFactory creates a new Driver with its backend's default
// configuration. Backends needing configuration also export a direct
// constructor; the factory exists for name-based selection.
type DriverFactory func() (Driver, error)

// RegistryEntry represents a registered driver backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: hardware-backed drivers (Ebitengine)
	//   - 10: diagnostic drivers (recording, console)
	Priority int

	// Factory creates driver instances.
	Factory DriverFactory

	// Available reports if the backend is usable on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered driver backends.
//
// The registry lets backends register themselves from their init functions,
// so programs can select a driver by name after a blank import without the
// core depending on any backend.
//
// Example registration:
//
//	func init() {
//	    surface.Register("ebitengine", 100, factory, nil)
//	}
//
// Example usage:
//
//	drv, err := surface.NewDriverByName("ebitengine")
//	// or auto-select the best available:
//	drv, err := surface.NewDriver()
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewDriver.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory DriverFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewDriver creates a driver using the best available backend.
// Returns an error if no backends are available.
func NewDriver() (Driver, error) {
	return globalRegistry.NewDriver()
}

// NewDriverByName creates a driver using a specific named backend.
func NewDriverByName(name string) (Driver, error) {
	return globalRegistry.NewDriverByName(name)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory DriverFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewDriver creates a driver using the best available backend.
func (r *Registry) NewDriver() (Driver, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDriverAvailable
	}

	// Try each available backend in priority order
	var lastErr error
	for _, name := range available {
		d, err := r.NewDriverByName(name)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoDriverAvailable
}

// NewDriverByName creates a driver using a specific backend.
func (r *Registry) NewDriverByName(name string) (Driver, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &DriverUnavailableError{Name: name}
	}

	return entry.Factory()
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoDriverAvailable is returned when no driver backends are
	// registered or available on the current system.
	ErrNoDriverAvailable = errors.New("surface: no driver available")
)

// DriverNotFoundError indicates a named backend is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "surface: driver not found: " + e.Name
}

// DriverUnavailableError indicates a backend exists but is not available.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "surface: driver unavailable: " + e.Name
}
