package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestConfigDefaults(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "missing.yaml"))

	// Should not error when loading non-existent file
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() on non-existent file error = %v, want nil", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{KeyOutputFormat, "txt"},
		{KeyDefaultURI, "file://localhost"},
		{KeyNoColor, "false"},
		{KeyVerbose, "false"},
		{KeyNonInteractive, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%s) error = %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Get(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "output_format: csv\nno_color: true\n")
	cfg := New(path)

	if val := cfg.GetOrDefault(KeyOutputFormat, ""); val != "csv" {
		t.Errorf("GetOrDefault(output_format) = %v, want csv", val)
	}
	if !cfg.Bool(KeyNoColor) {
		t.Error("Bool(no_color) = false, want true")
	}
	if cfg.Bool(KeyVerbose) {
		t.Error("Bool(verbose) = true, want false")
	}
}

func TestConfigInvalidFile(t *testing.T) {
	path := writeConfig(t, "output_format: [unterminated\n")
	cfg := New(path)

	if err := cfg.Load(); err == nil {
		t.Error("Load() error = nil, want error for malformed YAML")
	}
	if val := cfg.GetOrDefault(KeyOutputFormat, "fallback"); val != "fallback" {
		t.Errorf("GetOrDefault() = %v, want fallback", val)
	}
}

func TestConfigGet(t *testing.T) {
	cfg := New(writeConfig(t, "default_uri: smb://nas.local\n"))

	val, err := cfg.Get(KeyDefaultURI)
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if val != "smb://nas.local" {
		t.Errorf("Get() = %v, want %v", val, "smb://nas.local")
	}

	// Test Get for non-existing key
	if _, err := cfg.Get("NONEXISTENT"); err == nil {
		t.Error("Get() error = nil, want error for non-existent key")
	}
}

func TestConfigBindFlags(t *testing.T) {
	cfg := New(writeConfig(t, "output_format: csv\nverbose: true\n"))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output-format", "txt", "")
	flags.Bool("verbose", false, "")
	flags.Bool("force", false, "")
	if err := flags.Parse([]string{"--output-format=quoted-txt", "--force"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if err := cfg.BindFlags(flags); err != nil {
		t.Fatalf("BindFlags() error = %v", err)
	}

	if val := cfg.GetOrDefault(KeyOutputFormat, ""); val != "quoted-txt" {
		t.Errorf("output_format = %v, want quoted-txt (flag wins)", val)
	}
	// Unset flag must not clobber the file value.
	if !cfg.Bool(KeyVerbose) {
		t.Error("verbose = false, want true from file")
	}
	// Flags that are not configuration keys are ignored.
	if _, err := cfg.Get("force"); err == nil {
		t.Error("Get(force) error = nil, want error for a non-config flag")
	}
}

func TestConfigGetAll(t *testing.T) {
	cfg := New(writeConfig(t, "output_format: json\n"))

	all := cfg.GetAll()
	if len(all) != len(Defaults) {
		t.Errorf("GetAll() returned %d keys, want %d", len(all), len(Defaults))
	}
	if all[KeyOutputFormat] != "json" {
		t.Errorf("GetAll()[output_format] = %v, want json", all[KeyOutputFormat])
	}
}

func TestConfigFilePath(t *testing.T) {
	expectedPath := "/tmp/test.yaml"
	cfg := New(expectedPath)

	if cfg.FilePath() != expectedPath {
		t.Errorf("FilePath() = %v, want %v", cfg.FilePath(), expectedPath)
	}

	if New("").FilePath() != DefaultPath() {
		t.Errorf("New(\"\").FilePath() = %v, want %v", New("").FilePath(), DefaultPath())
	}
}
