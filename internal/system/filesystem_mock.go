package system

import (
	"path"
	"sync"
)

// MockFileSystem is an in-memory PathChecker for tests.
// Paths are treated as existing only when registered with AddPath or AddDir.
type MockFileSystem struct {
	mu      sync.Mutex
	paths   map[string]bool // path -> is directory
	Checked []string
	WorkDir string
}

// NewMockFileSystem creates a new MockFileSystem rooted at "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		paths:   make(map[string]bool),
		WorkDir: "/",
	}
}

// AddPath registers a regular file.
func (m *MockFileSystem) AddPath(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths[path.Clean(p)] = false
}

// AddDir registers a directory.
func (m *MockFileSystem) AddDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths[path.Clean(p)] = true
}

// PathExists implements PathChecker.
func (m *MockFileSystem) PathExists(p string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checked = append(m.Checked, p)
	_, ok := m.paths[path.Clean(p)]
	return ok, nil
}

// DirectoryExists implements PathChecker.
func (m *MockFileSystem) DirectoryExists(p string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checked = append(m.Checked, p)
	return m.paths[path.Clean(p)], nil
}

// Abs implements PathChecker relative to WorkDir.
func (m *MockFileSystem) Abs(p string) (string, error) {
	if path.IsAbs(p) {
		return path.Clean(p), nil
	}
	return path.Join(m.WorkDir, p), nil
}
