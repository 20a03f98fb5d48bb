package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// UI writes diagnostics for the user. Command results go to standard
// output elsewhere; everything printed here goes to standard error.
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, prompts fail instead of asking
	verbose        bool // If true, Debug messages are printed
	// Color functions
	colorInfo    *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorDebug   *color.Color
}

// New creates a new UI instance
func New() *UI {
	return &UI{
		output:       os.Stderr,
		colorInfo:    color.New(color.FgBlue),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorDebug:   color.New(color.FgCyan),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// SetVerbose enables or disables debug output
func (u *UI) SetVerbose(enabled bool) {
	u.verbose = enabled
}

// IsVerbose returns true if debug output is enabled
func (u *UI) IsVerbose() bool {
	return u.verbose
}

// DisableColor turns off ANSI colors for every UI
func DisableColor() {
	color.NoColor = true
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "[ERROR] %s\n", msg)
}

// Debugf prints a formatted debug message when verbose output is enabled
func (u *UI) Debugf(format string, args ...interface{}) {
	if !u.verbose {
		return
	}
	u.colorDebug.Fprintf(u.output, "[DEBUG] %s\n", fmt.Sprintf(format, args...))
}
