package conf

import (
	"fmt"
	"sort"
	"sync"
)

// registry is the process-wide table of declared entries. Registration
// happens through the builder terminals during bootstrap; the table is
// append-only after that. The mutex covers the check-then-insert sequence so
// racing initializers cannot both observe an absent key.
type registry struct {
	mu      sync.RWMutex
	entries map[string]Descriptor
}

var global = &registry{entries: make(map[string]Descriptor)}

func (r *registry) register(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.Key()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, d.Key())
	}
	r.entries[d.Key()] = d
	return nil
}

func (r *registry) lookup(key string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[key]
	return d, ok
}

// Lookup returns the registered descriptor for key.
func Lookup(key string) (Descriptor, bool) {
	return global.lookup(key)
}

// EntryInfo is one row of the public introspection surface.
type EntryInfo struct {
	Key     string `json:"key" toml:"key"`
	Default string `json:"default" toml:"default"`
	Doc     string `json:"doc" toml:"doc"`
}

// PublicEntries returns (key, default, doc) for every non-internal entry,
// sorted by key. Optional entries report Undefined as their default.
func PublicEntries() []EntryInfo {
	global.mu.RLock()
	defer global.mu.RUnlock()

	infos := make([]EntryInfo, 0, len(global.entries))
	for _, d := range global.entries {
		if d.IsInternal() {
			continue
		}
		infos = append(infos, EntryInfo{
			Key:     d.Key(),
			Default: d.DefaultString(),
			Doc:     d.Doc(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// TestingReset empties the global registry and returns a function restoring
// the previous contents. Tests that declare scratch entries use it to avoid
// leaking registrations into other tests.
func TestingReset() func() {
	global.mu.Lock()
	defer global.mu.Unlock()

	saved := global.entries
	global.entries = make(map[string]Descriptor)
	return func() {
		global.mu.Lock()
		defer global.mu.Unlock()
		global.entries = saved
	}
}
