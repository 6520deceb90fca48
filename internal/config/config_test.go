package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	if err := os.Setenv("LUTRIS_DB", "/tmp/pga.db"); err != nil {
		t.Fatalf("Failed to set env: %v", err)
	}
	defer func() {
		if err := os.Unsetenv("LUTRIS_DB"); err != nil {
			t.Logf("Failed to unset env: %v", err)
		}
	}()

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if cfg.LutrisDB != "/tmp/pga.db" {
		t.Errorf("Expected LUTRIS_DB '/tmp/pga.db', got '%s'", cfg.LutrisDB)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}
	want := filepath.Join(home, ".config/heroic/sideload_apps/library.json")
	if cfg.HeroicLibrary != want {
		t.Errorf("Expected default library '%s', got '%s'", want, cfg.HeroicLibrary)
	}
}

func TestExpandHome(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"~/.config/heroic", "/home/u/.config/heroic"},
		{"~", "/home/u"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ExpandHome(c.in, "/home/u"); got != c.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
