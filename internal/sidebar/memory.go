package sidebar

import (
	"fmt"
	"path/filepath"
	"sync"
)

// MemoryStore is an in-memory stand-in for the OS sidebar store. It
// implements ListService, Mounter and Preferences.
//
// Like the real store, mutations are only visible to Snapshot after the
// preferences domain has been synchronized. Handles are never reused, so a
// handle for a removed item stays invalid.
type MemoryStore struct {
	mu      sync.Mutex
	live    []memoryItem
	visible []memoryItem
	nextID  Handle
	seed    uint32
	closed  bool

	// Mounts maps share URLs to the mount point Mount reports. Unknown
	// URLs fail with a MountError.
	Mounts map[string]string

	MountCalls  []string
	SyncDomains []string
	InsertCalls []string
	MoveCalls   int
	RemoveCalls int
}

type memoryItem struct {
	id   Handle
	name string
	path string
}

// NewMemoryStore creates a store holding favorites in order. A favorite
// with an empty path cannot be resolved.
func NewMemoryStore(favorites ...Favorite) *MemoryStore {
	m := &MemoryStore{
		nextID: 1,
		Mounts: make(map[string]string),
	}
	for _, f := range favorites {
		m.live = append(m.live, m.newItem(f.Name, f.Path))
	}
	m.visible = append([]memoryItem(nil), m.live...)
	return m
}

// Services exposes the store as a full service set.
func (m *MemoryStore) Services() Services {
	return Services{List: m, Mounter: m, Prefs: m}
}

func (m *MemoryStore) newItem(name, path string) memoryItem {
	it := memoryItem{id: m.nextID, name: name, path: path}
	m.nextID++
	return it
}

func (m *MemoryStore) index(h Handle) int {
	for i, it := range m.live {
		if it.id == h {
			return i
		}
	}
	return -1
}

// Names returns the live item names in order, including unsynchronized
// changes.
func (m *MemoryStore) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.live))
	for _, it := range m.live {
		names = append(names, it.name)
	}
	return names
}

// Snapshot implements ListService.
func (m *MemoryStore) Snapshot() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Snapshot{}, fmt.Errorf("shared file list is closed")
	}

	items := make([]Item, 0, len(m.visible))
	for _, it := range m.visible {
		items = append(items, Item{Handle: it.id, Name: it.name})
	}
	return Snapshot{Seed: m.seed, Items: items}, nil
}

// Resolve implements ListService.
func (m *MemoryStore) Resolve(item Handle) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(item)
	if i < 0 {
		return "", fmt.Errorf("stale item reference %d", item)
	}
	if m.live[i].path == "" {
		return "", fmt.Errorf("item %q has no location", m.live[i].name)
	}
	return m.live[i].path, nil
}

// Move implements ListService.
func (m *MemoryStore) Move(item, after Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MoveCalls++

	from := m.index(item)
	if from < 0 || m.index(after) < 0 {
		return fmt.Errorf("stale item reference")
	}
	moved := m.live[from]
	m.live = append(m.live[:from], m.live[from+1:]...)

	to := m.index(after) + 1
	m.live = append(m.live, memoryItem{})
	copy(m.live[to+1:], m.live[to:])
	m.live[to] = moved
	m.seed++
	return nil
}

// Remove implements ListService.
func (m *MemoryStore) Remove(item Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls++

	i := m.index(item)
	if i < 0 {
		return fmt.Errorf("stale item reference %d", item)
	}
	m.live = append(m.live[:i], m.live[i+1:]...)
	m.seed++
	return nil
}

// InsertFirst implements ListService. Adding a path that is already
// present leaves the list unchanged.
func (m *MemoryStore) InsertFirst(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls = append(m.InsertCalls, path)

	for _, it := range m.live {
		if it.path == path {
			return nil
		}
	}
	m.live = append([]memoryItem{m.newItem(filepath.Base(path), path)}, m.live...)
	m.seed++
	return nil
}

// Close implements ListService.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Mount implements Mounter.
func (m *MemoryStore) Mount(shareURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MountCalls = append(m.MountCalls, shareURL)

	mountPoint, ok := m.Mounts[shareURL]
	if !ok {
		return "", &MountError{URL: shareURL, Status: 2, Message: "share not found"}
	}
	return mountPoint, nil
}

// Synchronize implements Preferences.
func (m *MemoryStore) Synchronize(domain string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SyncDomains = append(m.SyncDomains, domain)
	if domain == PreferencesDomain {
		m.visible = append([]memoryItem(nil), m.live...)
	}
	return nil
}
