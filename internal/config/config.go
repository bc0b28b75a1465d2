package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"linepick/internal/console"
	"linepick/internal/filter"
	"linepick/internal/ingest"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	FilePath      string
	Execute       string
	ExitAfterExec bool
	ModeName      string
	Align         bool
	AlignGap      int
	Theme         Theme
	TTYPath       string
	ShowVersion   bool

	// Resolved by Validate
	Mode   filter.Mode
	Source ingest.SourceKind
}

// Bind registers the flags on fs with environment-backed defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.FilePath, "file", "f", "", "read lines from this file instead of stdin")
	fs.StringVarP(&c.Execute, "execute", "e", "", "run `TEMPLATE` in the background on enter; {} is replaced by the selected line")
	fs.BoolVar(&c.ExitAfterExec, "exit-after-exec", false, "with --execute, quit after the first command instead of staying open")
	fs.StringVarP(&c.ModeName, "mode", "m", getenvDefault("LINEPICK_MODE", filter.Fuzzy.String()), "initial search mode: fuzzy|substring|regex")
	fs.BoolVar(&c.Align, "align", false, "align tab-separated fields into columns")
	fs.IntVar(&c.AlignGap, "align-gap", 2, "spaces between aligned columns")
	theme := getenvDefault("LINEPICK_THEME", string(ThemeDark))
	fs.Var(newThemeValue(theme, &c.Theme), "theme", "color theme: dark|light")
	fs.StringVar(&c.TTYPath, "tty", getenvDefault("LINEPICK_TTY", console.DefaultPath), "terminal device to draw on")
	fs.BoolVar(&c.ShowVersion, "version", false, "print version and exit")
}

// Validate resolves the input source and search mode. args are the
// positional arguments; stdinIsTTY reports whether stdin is a terminal.
func (c *Config) Validate(args []string, stdinIsTTY bool) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
	if len(args) == 1 {
		if c.FilePath != "" && c.FilePath != args[0] {
			return errors.New("file given both as --file and as an argument")
		}
		c.FilePath = args[0]
	}
	m, err := filter.ParseMode(c.ModeName)
	if err != nil {
		return err
	}
	c.Mode = m
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if c.ExitAfterExec && c.Execute == "" {
		return errors.New("--exit-after-exec requires --execute")
	}
	if c.AlignGap < 1 {
		c.AlignGap = 1
	}

	switch {
	case c.FilePath != "":
		c.Source = ingest.SourceFile
	case !stdinIsTTY:
		c.Source = ingest.SourceStdin
	default:
		return ingest.ErrNoInput
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("source=%s file=%s mode=%s execute=%q align=%v theme=%s tty=%s",
		c.Source, c.FilePath, c.Mode, c.Execute, c.Align, c.Theme, c.TTYPath)
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

type themeValue struct{ t *Theme }

func newThemeValue(def string, t *Theme) *themeValue {
	*t = Theme(strings.ToLower(def))
	return &themeValue{t: t}
}

func (v *themeValue) String() string {
	if v.t == nil {
		return ""
	}
	return string(*v.t)
}

func (v *themeValue) Set(s string) error {
	switch th := Theme(strings.ToLower(strings.TrimSpace(s))); th {
	case ThemeDark, ThemeLight:
		*v.t = th
		return nil
	}
	return fmt.Errorf("want dark|light, got %q", s)
}

func (v *themeValue) Type() string { return "theme" }
