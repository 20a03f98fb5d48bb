package sidebar

import (
	"testing"

	"github.com/zoro11031/finder-sidebar/internal/system"
)

func TestBundleForVersion(t *testing.T) {
	tests := []struct {
		name    string
		version system.MacOSVersion
		want    string
	}{
		{"mavericks", system.MacOSVersion{Major: 10, Minor: 9}, CoreServicesBundle},
		{"yosemite", system.MacOSVersion{Major: 10, Minor: 10, Patch: 5}, CoreServicesBundle},
		{"el capitan", system.MacOSVersion{Major: 10, Minor: 11}, SharedFileListBundle},
		{"catalina", system.MacOSVersion{Major: 10, Minor: 15, Patch: 7}, SharedFileListBundle},
		{"big sur", system.MacOSVersion{Major: 11, Minor: 2}, SharedFileListBundle},
		{"sonoma", system.MacOSVersion{Major: 14}, SharedFileListBundle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BundleForVersion(tt.version); got != tt.want {
				t.Errorf("BundleForVersion(%s) = %s, want %s", tt.version, got, tt.want)
			}
		})
	}
}
