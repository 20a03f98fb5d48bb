//go:build !darwin || !cgo

package sidebar

// nativeAvailable reports whether this build links the macOS frameworks.
const nativeAvailable = false

func newNativeServices(bundleID string) (Services, error) {
	return Services{}, ErrUnsupported
}
