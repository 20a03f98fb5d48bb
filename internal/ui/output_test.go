package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMessagesGoToWriter(t *testing.T) {
	DisableColor()

	tests := []struct {
		name  string
		print func(u *UI)
		want  string
	}{
		{"info", func(u *UI) { u.Infof("listing %d items", 3) }, "[INFO] listing 3 items\n"},
		{"warning", func(u *UI) { u.Warningf("order %d ignored", 2) }, "[WARNING] order 2 ignored\n"},
		{"error", func(u *UI) { u.Error(`"Foo" not found`) }, "[ERROR] \"Foo\" not found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewWithWriter(&buf))
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestDebugfRequiresVerbose(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	u := NewWithWriter(&buf)
	u.Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debugf() wrote %q with verbose off", buf.String())
	}

	u.SetVerbose(true)
	u.Debugf("snapshot has %d items", 4)
	if !strings.Contains(buf.String(), "[DEBUG] snapshot has 4 items") {
		t.Errorf("Debugf() output = %q", buf.String())
	}
}

func TestPromptsRefusedWhenNonInteractive(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)

	if _, err := u.PromptYesNo("Remove?", false); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("PromptYesNo() error = %v, want ErrNonInteractive", err)
	}
	if _, err := u.PromptSelect("Pick", []string{"a"}); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("PromptSelect() error = %v, want ErrNonInteractive", err)
	}
}

func TestModeAccessors(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	if u.IsVerbose() || u.IsNonInteractive() {
		t.Fatal("new UI should start quiet and interactive")
	}

	u.SetVerbose(true)
	u.SetNonInteractive(true)
	if !u.IsVerbose() {
		t.Error("IsVerbose() = false, want true")
	}
	if !u.IsNonInteractive() {
		t.Error("IsNonInteractive() = false, want true")
	}
}
