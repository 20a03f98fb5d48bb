package sidebar

import (
	"fmt"

	"github.com/zoro11031/finder-sidebar/internal/system"
)

// Bundles exporting the shared file list entry points.
const (
	SharedFileListBundle = "com.apple.coreservices.SharedFileList"
	CoreServicesBundle   = "com.apple.CoreServices"
)

// BundleForVersion picks the bundle that exports the shared file list API
// on macOS v. From 10.11 on the API lives in its own framework.
func BundleForVersion(v system.MacOSVersion) string {
	if v.NewerThan(10, 10) {
		return SharedFileListBundle
	}
	return CoreServicesBundle
}

// Open binds the native sidebar services for the running OS. It is meant
// to run once per process; nothing else branches on the OS version.
func Open(runner system.CommandRunner) (Services, error) {
	if !nativeAvailable {
		return Services{}, ErrUnsupported
	}

	v, err := system.ProductVersion(runner)
	if err != nil {
		return Services{}, fmt.Errorf("failed to detect macOS version: %w", err)
	}

	svc, err := newNativeServices(BundleForVersion(v))
	if err != nil {
		return Services{}, fmt.Errorf("failed to open sidebar on macOS %s: %w", v, err)
	}
	return svc, nil
}
