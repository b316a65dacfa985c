package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dashdoc/dash/pkg/errors"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(envStore, "")
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `store = "redis://localhost:6379/0"
indent = false

[defaults]
url = "https://example.com/board"
time_on_each_page = 2.5
animation_duration = 0.5

[server]
addr = "127.0.0.1:9000"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(envStore, "")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store != "redis://localhost:6379/0" || cfg.Indent || cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("loadConfig() = %+v", cfg)
	}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	opts := reg.Options()
	if opts.URL != "https://example.com/board" {
		t.Errorf("URL = %s, want https://example.com/board", opts.URL)
	}
	if opts.TimeOnEachPage != 2500*time.Millisecond || opts.AnimationDuration != 500*time.Millisecond {
		t.Errorf("durations = %v, %v, want 2.5s, 500ms", opts.TimeOnEachPage, opts.AnimationDuration)
	}

	t.Setenv(envStore, "memory://")
	cfg, _ = loadConfig(path)
	if cfg.Store != "memory://" {
		t.Errorf("Store = %s, want %s override", cfg.Store, envStore)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "store = \n", "parse"},
		{"unknown key", "stor = \"memory://\"\n[server]\nport = 1\n", "server.port, stor"},
		{"wrong type", "indent = \"yes\"\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := loadConfig(path)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("loadConfig() error = %v, want INVALID_INPUT", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestConfigRegistryErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"bad url", func(c *Config) { c.Defaults.URL = "not a url" }, "defaults.url"},
		{"negative dwell", func(c *Config) { c.Defaults.TimeOnEachPage = -1 }, "defaults.time_on_each_page"},
		{"negative animation", func(c *Config) { c.Defaults.AnimationDuration = -0.5 }, "defaults.animation_duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			_, err := cfg.Registry()
			if err == nil || !strings.Contains(err.Error(), tt.key) {
				t.Errorf("Registry() error = %v, want it to name %s", err, tt.key)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := configPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "dash", "config.toml"); got != want {
		t.Errorf("configPath() = %s, want %s", got, want)
	}
}
