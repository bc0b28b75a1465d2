package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"linepick/internal/config"
	"linepick/internal/console"
	"linepick/internal/execute"
	"linepick/internal/ingest"
	"linepick/internal/keys"
	"linepick/internal/picker"
	"linepick/internal/ui"
	"linepick/internal/util/logx"
	"linepick/internal/version"
)

// session acquires the terminal and runs the picker; swapped out in tests.
var session = runSession

// terminal is what a session draws on and must release.
type terminal interface {
	picker.Terminal
	io.Closer
}

var openConsole = func(path string) (terminal, error) {
	c, err := console.Open(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newRootCmd(stdin *os.File, stdout io.Writer) *cobra.Command {
	cfg := &config.Config{}
	cmd := &cobra.Command{
		Use:   "linepick [file]",
		Short: "Pick a line from a list interactively",
		Long: "linepick shows lines from a file or stdin full-screen, narrows them as you type\n" +
			"and prints the line you confirm with enter. ctrl-t cycles fuzzy, substring and\n" +
			"regex search; ctrl-c quits without output.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ShowVersion {
				fmt.Fprintln(stdout, "linepick", version.String())
				return nil
			}
			if err := cfg.Validate(args, isTerminal(stdin)); err != nil {
				return err
			}
			logx.Infof("starting linepick %s: %s", version.String(), cfg.String())
			var in io.Reader
			if stdin != nil {
				in = stdin
			}
			return run(cmd.Context(), cfg, in, stdout)
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	lines, err := ingest.Load(ctx, ingest.Options{Source: cfg.Source, Path: cfg.FilePath, Stdin: stdin})
	if err != nil {
		return err
	}

	styles := ui.NewStyles(cfg.Theme == config.ThemeDark)
	km := keys.DefaultKeyMap()
	opts := picker.Options{
		Mode:          cfg.Mode,
		ExitAfterExec: cfg.ExitAfterExec,
		Styles:        &styles,
		KeyMap:        &km,
	}
	if cfg.Align {
		opts.Display = ingest.AlignColumns(lines, cfg.AlignGap)
	}
	if cfg.Execute != "" {
		ex, err := execute.New(cfg.Execute)
		if err != nil {
			return err
		}
		opts.Exec = ex
	}

	res, err := session(cfg.TTYPath, lines, opts)
	if err != nil {
		return err
	}
	if !res.Confirmed {
		logx.Infof("no selection")
		return nil
	}
	_, err = fmt.Fprintln(stdout, res.Line)
	return err
}

// runSession is the single place the terminal is restored: the deferred
// Close runs on every return and while unwinding a panic.
func runSession(ttyPath string, lines []string, opts picker.Options) (res picker.Result, err error) {
	con, err := openConsole(ttyPath)
	if err != nil {
		return picker.Result{Index: -1}, err
	}
	defer func() {
		if cerr := con.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return picker.New(lines, con, opts).Run()
}
