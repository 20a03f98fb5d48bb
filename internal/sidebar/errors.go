package sidebar

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when the native sidebar services are not
// available in this build or on this operating system.
var ErrUnsupported = errors.New("editing the Finder sidebar requires macOS and a cgo-enabled build")

// ValidationError reports malformed user input or a missing prerequisite.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a favorite that is not in the sidebar.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Name)
}

// MountError reports a non-zero status from the network share mounter.
type MountError struct {
	URL     string
	Status  int
	Message string
}

func (e *MountError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("error mounting url %q: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("error mounting url %q: status %d: %s", e.URL, e.Status, e.Message)
}

// UnimplementedError reports a feature that deliberately fails fast.
type UnimplementedError struct {
	Feature string
	Reason  string
}

func (e *UnimplementedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not yet implemented", e.Feature)
	}
	return fmt.Sprintf("%s is not yet implemented: %s", e.Feature, e.Reason)
}
