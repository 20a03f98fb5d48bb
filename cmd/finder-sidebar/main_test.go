package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/zoro11031/finder-sidebar/internal/cli"
	"github.com/zoro11031/finder-sidebar/internal/config"
	"github.com/zoro11031/finder-sidebar/internal/sidebar"
	"github.com/zoro11031/finder-sidebar/internal/system"
	"github.com/zoro11031/finder-sidebar/internal/ui"
)

// resetFlags restores every flag to its default between runs of rootCmd
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

// run executes args against an in-memory sidebar holding the usual
// favorites, with /Users/me/Projects present on the filesystem
func run(t *testing.T, args ...string) (runResult, *sidebar.MemoryStore) {
	t.Helper()
	ui.DisableColor()

	store := sidebar.NewMemoryStore(
		sidebar.Favorite{Name: "AirDrop"},
		sidebar.Favorite{Name: "Applications", Path: "/Applications"},
		sidebar.Favorite{Name: "Desktop", Path: "/Users/me/Desktop"},
		sidebar.Favorite{Name: "Library", Path: "/Library"},
	)
	fs := system.NewMockFileSystem()
	fs.AddDir("/Users/me/Projects")

	previous := openSidebar
	openSidebar = func(c *config.Config, u *ui.UI, w io.Writer) (*cli.SidebarContext, error) {
		return cli.NewSidebarContextWithServices(c, u, store.Services(), fs, w)
	}
	t.Cleanup(func() {
		openSidebar = previous
		resetFlags(rootCmd)
	})
	resetFlags(rootCmd)

	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	var stdout, stderr bytes.Buffer
	code := execute(append([]string{"--config", cfgFile}, args...), &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}, store
}

func TestCommandFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"rm unknown name", []string{"rm", "nonexistent-name"}, `[ERROR] "nonexistent-name" not found`},
		{"rm blank name", []string{"rm", "   "}, "[ERROR] name or path is empty or whitespace only"},
		{"rm without argument", []string{"rm"}, "[ERROR] name or path is empty or whitespace only"},
		{"rm unknown path", []string{"rm", "--by-path", "/nowhere"}, `[ERROR] "/nowhere" not found`},
		{"add missing path", []string{"add", "/tmp/missing-dir"}, `[ERROR] "/tmp/missing-dir" not found`},
		{"add bad order", []string{"add", "/Users/me/Projects", "file://localhost", "top"}, "[ERROR] invalid order: top"},
		{"ls json", []string{"ls", "--output-format=json"}, "[ERROR] json output is not yet implemented"},
		{"ls unknown format", []string{"ls", "--output-format", "xml"}, `[ERROR] invalid output format "xml"`},
		{"rename", []string{"rename", "Desktop", "Library"}, "[ERROR] rename is not yet implemented"},
		{"rename unknown", []string{"rename", "Desktop", "Nope"}, `[ERROR] "Nope" not found`},
		{"mv missing argument", []string{"mv", "Desktop"}, "[ERROR] accepts 2 arg(s), received 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, store := run(t, tt.args...)

			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout)
			assert.True(t, strings.HasPrefix(res.stderr, tt.wantErr), "stderr = %q", res.stderr)
			assert.Equal(t, 1, strings.Count(res.stderr, "\n"), "stderr = %q", res.stderr)
			assert.Zero(t, store.RemoveCalls)
			assert.Empty(t, store.InsertCalls)
			assert.Empty(t, store.SyncDomains)
		})
	}
}

func TestCommandSuccess(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantNames  []string
	}{
		{
			name:       "ls",
			args:       []string{"ls"},
			wantStdout: "AirDrop\t\nApplications\t/Applications\nDesktop\t/Users/me/Desktop\nLibrary\t/Library\n",
			wantNames:  []string{"AirDrop", "Applications", "Desktop", "Library"},
		},
		{
			name:       "ls csv",
			args:       []string{"ls", "--output-format=csv"},
			wantStdout: "\"AirDrop\",\"\"\n\"Applications\",\"/Applications\"\n\"Desktop\",\"/Users/me/Desktop\"\n\"Library\",\"/Library\"\n",
			wantNames:  []string{"AirDrop", "Applications", "Desktop", "Library"},
		},
		{
			name:      "rm ignores case",
			args:      []string{"rm", "--force", "desktop"},
			wantNames: []string{"AirDrop", "Applications", "Library"},
		},
		{
			name:      "rm by path",
			args:      []string{"rm", "--by-path", "/Library/"},
			wantNames: []string{"AirDrop", "Applications", "Desktop"},
		},
		{
			name:      "add",
			args:      []string{"add", "/Users/me/Projects"},
			wantNames: []string{"Projects", "AirDrop", "Applications", "Desktop", "Library"},
		},
		{
			name:      "add force",
			args:      []string{"add", "-f", "/tmp/missing-dir", "whatever"},
			wantNames: []string{"missing-dir", "AirDrop", "Applications", "Desktop", "Library"},
		},
		{
			name:       "add verbose",
			args:       []string{"--verbose", "add", "/Users/me/Projects"},
			wantStdout: "adding \"/Users/me/Projects\" as file://localhost\n",
			wantNames:  []string{"Projects", "AirDrop", "Applications", "Desktop", "Library"},
		},
		{
			name:      "mv",
			args:      []string{"mv", "AirDrop", "Library"},
			wantNames: []string{"Applications", "Desktop", "Library", "AirDrop"},
		},
		{
			name:      "mv unknown is a no-op",
			args:      []string{"mv", "Nope", "Library"},
			wantNames: []string{"AirDrop", "Applications", "Desktop", "Library"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, store := run(t, tt.args...)

			assert.Equal(t, 0, res.code, "stderr = %q", res.stderr)
			assert.Equal(t, tt.wantStdout, res.stdout)
			assert.NotContains(t, res.stderr, "[ERROR]")
			assert.Equal(t, tt.wantNames, store.Names())
		})
	}
}

func TestOrderWarning(t *testing.T) {
	res, store := run(t, "add", "/Users/me/Projects", "file://localhost", "2")

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "[WARNING] order 2 is not yet implemented")
	assert.Equal(t, "Projects", store.Names()[0])
}

func TestVersionCommand(t *testing.T) {
	res, _ := run(t, "version")

	assert.Equal(t, 0, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "finder-sidebar "), res.stdout)
	assert.Empty(t, res.stderr)
}
