package console

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"linepick/internal/util/logx"
)

const DefaultPath = "/dev/tty"

var ErrNotTerminal = errors.New("not a terminal")

// Console owns the controlling terminal while the picker runs: raw input,
// hidden cursor and the alternate screen. Close undoes all of it and is
// safe to call more than once.
type Console struct {
	f     *os.File
	out   *termenv.Output
	state *term.State
	once  sync.Once
	err   error
}

// Open acquires the terminal at path. Nothing needs restoring when it
// returns an error.
func Open(path string) (*Console, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal %s: %w", path, err)
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("raw mode on %s: %w", path, err)
	}
	c := &Console{
		f:     f,
		out:   termenv.NewOutput(f, termenv.WithProfile(termenv.ANSI)),
		state: state,
	}
	c.out.HideCursor()
	c.out.AltScreen()
	logx.Debugf("console: acquired %s", path)
	return c, nil
}

func (c *Console) Read(p []byte) (int, error)  { return c.f.Read(p) }
func (c *Console) Write(p []byte) (int, error) { return c.f.Write(p) }

// Size reports the current terminal dimensions in cells.
func (c *Console) Size() (width, height int, err error) {
	return term.GetSize(int(c.f.Fd()))
}

// Close shows the cursor, leaves the alternate screen, restores the saved
// terminal attributes and releases the device.
func (c *Console) Close() error {
	c.once.Do(func() {
		c.out.ShowCursor()
		c.out.ExitAltScreen()
		c.out.Reset()
		var errs []error
		if err := term.Restore(int(c.f.Fd()), c.state); err != nil {
			errs = append(errs, fmt.Errorf("restore terminal: %w", err))
		}
		if err := c.f.Close(); err != nil {
			errs = append(errs, err)
		}
		c.err = errors.Join(errs...)
		logx.Debugf("console: released (err=%v)", c.err)
	})
	return c.err
}
