// Package sidebar reads and edits the macOS Finder sidebar favorites list.
//
// The list lives in an OS-maintained shared file list. Item references
// handed out by the OS are invalidated by every mutation, so the Sidebar
// never keeps one across a mutating call: it rescans a fresh snapshot by
// display name whenever it needs to locate an item, and it rebuilds its
// name-to-path view after synchronizing the preferences store.
//
// The Sidebar itself is not safe for concurrent use. The store it edits is
// shared with Finder and any other process editing the sidebar; ordering
// between those writers is left to the OS.
package sidebar

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultURI is the add URI meaning "a local path".
	DefaultURI = "file://localhost"

	// PreferencesDomain holds the sidebar lists on disk.
	PreferencesDomain = "com.apple.sidebarlists"
)

// virtualItems cannot be resolved to a filesystem location.
var virtualItems = map[string]bool{
	"AirDrop":      true,
	"All My Files": true,
	"iCloud":       true,
}

// IsVirtual reports whether name is a built-in entry with no path.
func IsVirtual(name string) bool {
	return virtualItems[name]
}

// IsShareURI reports whether uri names a network share that must be
// mounted before it can be added.
func IsShareURI(uri string) bool {
	return strings.HasPrefix(uri, "afp") || strings.HasPrefix(uri, "smb")
}

// Favorite is one name/path pair of the sidebar.
type Favorite struct {
	Name string
	Path string
}

// Favorites maps display names to resolved paths, in snapshot order.
// Duplicate display names collapse into one entry that keeps the position
// of the first item and the path of the last.
type Favorites struct {
	order []string
	paths map[string]string
}

func newFavorites() *Favorites {
	return &Favorites{paths: make(map[string]string)}
}

func (f *Favorites) set(name, path string) {
	if _, ok := f.paths[name]; !ok {
		f.order = append(f.order, name)
	}
	f.paths[name] = path
}

// Has reports whether name is a key, case-sensitively.
func (f *Favorites) Has(name string) bool {
	_, ok := f.paths[name]
	return ok
}

// Path returns the resolved path for name.
func (f *Favorites) Path(name string) (string, bool) {
	p, ok := f.paths[name]
	return p, ok
}

// Len returns the number of distinct names.
func (f *Favorites) Len() int {
	return len(f.order)
}

// Entries returns the favorites in snapshot order.
func (f *Favorites) Entries() []Favorite {
	entries := make([]Favorite, 0, len(f.order))
	for _, name := range f.order {
		entries = append(entries, Favorite{Name: name, Path: f.paths[name]})
	}
	return entries
}

// Map returns a copy of the name to path mapping.
func (f *Favorites) Map() map[string]string {
	result := make(map[string]string, len(f.paths))
	for k, v := range f.paths {
		result[k] = v
	}
	return result
}

// Sidebar is the facade over the favorites list, the share mounter and
// the preferences store.
type Sidebar struct {
	list      ListService
	mounter   Mounter
	prefs     Preferences
	snapshot  Snapshot
	favorites *Favorites
}

// New creates a Sidebar over svc and takes the first snapshot.
func New(svc Services) (*Sidebar, error) {
	if err := svc.validate(); err != nil {
		return nil, fmt.Errorf("invalid sidebar services: %w", err)
	}

	s := &Sidebar{
		list:      svc.List,
		mounter:   svc.Mounter,
		prefs:     svc.Prefs,
		favorites: newFavorites(),
	}
	if err := s.Update(); err != nil {
		return nil, err
	}
	return s, nil
}

// Update re-fetches the snapshot and rebuilds the favorites view.
// Items that cannot be resolved get an empty path.
func (s *Sidebar) Update() error {
	snap, err := s.list.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to copy sidebar snapshot: %w", err)
	}

	favorites := newFavorites()
	for _, item := range snap.Items {
		favorites.set(item.Name, s.resolve(item))
	}

	s.snapshot = snap
	s.favorites = favorites
	return nil
}

func (s *Sidebar) resolve(item Item) string {
	if IsVirtual(item.Name) {
		return ""
	}
	path, err := s.list.Resolve(item.Handle)
	if err != nil {
		return ""
	}
	return path
}

// Snapshot returns the most recent snapshot.
func (s *Sidebar) Snapshot() Snapshot {
	items := make([]Item, len(s.snapshot.Items))
	copy(items, s.snapshot.Items)
	return Snapshot{Seed: s.snapshot.Seed, Items: items}
}

// Favorites returns the view built by the last Update.
func (s *Sidebar) Favorites() *Favorites {
	return s.favorites
}

// Exists reports whether name is a favorite, case-sensitively.
func (s *Sidebar) Exists(name string) bool {
	return s.favorites.Has(name)
}

// HasPath reports whether any favorite resolves to path.
func (s *Sidebar) HasPath(path string) bool {
	want := filepath.Clean(path)
	for _, p := range s.favorites.paths {
		if p != "" && filepath.Clean(p) == want {
			return true
		}
	}
	return false
}

// Synchronize flushes the sidebar preferences domain so the next snapshot
// reflects pending changes.
func (s *Sidebar) Synchronize() error {
	if err := s.prefs.Synchronize(PreferencesDomain); err != nil {
		return fmt.Errorf("failed to synchronize %s: %w", PreferencesDomain, err)
	}
	return nil
}

// commit must follow every mutation.
func (s *Sidebar) commit() error {
	if err := s.Synchronize(); err != nil {
		return err
	}
	return s.Update()
}

// Move places toMove immediately after the favorite named after. It does
// nothing when either name is unknown or both are the same.
func (s *Sidebar) Move(toMove, after string) error {
	if toMove == after || !s.Exists(toMove) || !s.Exists(after) {
		return nil
	}

	// With duplicate display names the first item of each name is used.
	var item, target Handle
	var foundItem, foundTarget bool
	for _, it := range s.snapshot.Items {
		switch {
		case !foundTarget && it.Name == after:
			target, foundTarget = it.Handle, true
		case !foundItem && it.Name == toMove:
			item, foundItem = it.Handle, true
		}
		if foundItem && foundTarget {
			break
		}
	}
	if !foundItem || !foundTarget {
		return nil
	}

	if err := s.list.Move(item, target); err != nil {
		return fmt.Errorf("failed to move %q after %q: %w", toMove, after, err)
	}
	return s.commit()
}

// Remove deletes every favorite whose display name matches name
// case-insensitively and returns how many were removed. No match is not
// an error.
func (s *Sidebar) Remove(name string) (int, error) {
	return s.removeWhere(func(it Item) bool {
		return strings.EqualFold(it.Name, name)
	})
}

// RemoveByPath deletes every favorite resolving exactly to path (after
// cleaning both sides) and returns how many were removed.
func (s *Sidebar) RemoveByPath(path string) (int, error) {
	want := filepath.Clean(path)
	return s.removeWhere(func(it Item) bool {
		resolved := s.resolve(it)
		return resolved != "" && filepath.Clean(resolved) == want
	})
}

func (s *Sidebar) removeWhere(match func(Item) bool) (int, error) {
	removed := 0
	for _, it := range s.snapshot.Items {
		if !match(it) {
			continue
		}
		if err := s.list.Remove(it.Handle); err != nil {
			return removed, fmt.Errorf("failed to remove %q: %w", it.Name, err)
		}
		removed++
	}
	return removed, s.commit()
}

// Add inserts path at the top of the sidebar. When uri names an afp or smb
// share, uri+path is mounted first and the mount point is added instead.
func (s *Sidebar) Add(path, uri string) error {
	target := path
	if IsShareURI(uri) {
		mountPoint, err := s.mounter.Mount(uri + path)
		if err != nil {
			return err
		}
		target = mountPoint
	}

	if err := s.list.InsertFirst(target); err != nil {
		return fmt.Errorf("failed to add %s: %w", target, err)
	}
	return s.commit()
}
