package config

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"linepick/internal/filter"
	"linepick/internal/ingest"
)

func parse(t *testing.T, args ...string) (*Config, *pflag.FlagSet) {
	t.Helper()
	c := &Config{}
	fs := pflag.NewFlagSet("linepick", pflag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return c, fs
}

func TestDefaults(t *testing.T) {
	t.Setenv("LINEPICK_MODE", "")
	t.Setenv("LINEPICK_THEME", "")
	t.Setenv("LINEPICK_TTY", "")
	c, fs := parse(t)
	if err := c.Validate(fs.Args(), false); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Mode != filter.Fuzzy || c.Theme != ThemeDark || c.Source != ingest.SourceStdin {
		t.Fatalf("defaults: %s", c)
	}
	if c.TTYPath != "/dev/tty" {
		t.Fatalf("tty default: %q", c.TTYPath)
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("LINEPICK_MODE", "regex")
	t.Setenv("LINEPICK_THEME", "light")
	c, fs := parse(t)
	if err := c.Validate(fs.Args(), false); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Mode != filter.Regex || c.Theme != ThemeLight {
		t.Fatalf("env defaults ignored: %s", c)
	}
}

func TestPositionalFile(t *testing.T) {
	c, fs := parse(t, "-m", "substring", "list.txt")
	if err := c.Validate(fs.Args(), true); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Source != ingest.SourceFile || c.FilePath != "list.txt" || c.Mode != filter.Substring {
		t.Fatalf("resolved: %s", c)
	}
}

func TestNoInputOnTerminal(t *testing.T) {
	c, fs := parse(t)
	if err := c.Validate(fs.Args(), true); !errors.Is(err, ingest.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := [][]string{
		{"--mode", "glob"},
		{"--exit-after-exec"},
		{"a.txt", "b.txt"},
		{"-f", "a.txt", "b.txt"},
	}
	for _, args := range cases {
		c, fs := parse(t, args...)
		if err := c.Validate(fs.Args(), false); err == nil {
			t.Fatalf("args %v: expected error", args)
		}
	}
}

func TestThemeFlagRejectsUnknown(t *testing.T) {
	c := &Config{}
	fs := pflag.NewFlagSet("linepick", pflag.ContinueOnError)
	fs.SetOutput(discard{})
	c.Bind(fs)
	if err := fs.Parse([]string{"--theme", "neon"}); err == nil {
		t.Fatalf("expected theme parse error")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
