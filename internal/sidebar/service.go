package sidebar

import (
	"errors"
	"fmt"
)

// Handle is an opaque reference to one item of a snapshot. It is only
// meaningful to the ListService that produced it, and only until the list
// is mutated or a new snapshot is taken.
type Handle uintptr

// Item is one entry of a snapshot.
type Item struct {
	Handle Handle
	Name   string
}

// Snapshot is a point-in-time ordered view of the favorites list.
type Snapshot struct {
	Seed  uint32
	Items []Item
}

// ListService is the shared file list holding the Finder sidebar favorites.
type ListService interface {
	// Snapshot copies the current ordered items. Handles from earlier
	// snapshots are invalid afterwards.
	Snapshot() (Snapshot, error)
	// Resolve returns the POSIX path an item points at.
	Resolve(item Handle) (string, error)
	// Move places item immediately after the item "after".
	Move(item, after Handle) error
	// Remove deletes item from the list.
	Remove(item Handle) error
	// InsertFirst adds a file URL for path before the first item.
	InsertFirst(path string) error
	// Close releases the list handle.
	Close() error
}

// Mounter mounts network shares and reports the local mount point.
type Mounter interface {
	Mount(shareURL string) (string, error)
}

// Preferences flushes a preferences domain to disk.
type Preferences interface {
	Synchronize(domain string) error
}

// Services is the set of OS entry points the Sidebar talks to.
type Services struct {
	List    ListService
	Mounter Mounter
	Prefs   Preferences
}

// Close releases the list handle, if any.
func (s Services) Close() error {
	if s.List == nil {
		return nil
	}
	return s.List.Close()
}

func (s Services) validate() error {
	var errs []error
	if s.List == nil {
		errs = append(errs, fmt.Errorf("shared file list service is required"))
	}
	if s.Mounter == nil {
		errs = append(errs, fmt.Errorf("mounter is required"))
	}
	if s.Prefs == nil {
		errs = append(errs, fmt.Errorf("preferences service is required"))
	}
	return errors.Join(errs...)
}
