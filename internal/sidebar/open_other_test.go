//go:build !darwin || !cgo

package sidebar

import (
	"errors"
	"testing"
)

type panicRunner struct{}

func (panicRunner) Run(name string, args ...string) (string, error) {
	panic("sw_vers must not run without native support")
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(panicRunner{})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Open() error = %v, want ErrUnsupported", err)
	}
}
