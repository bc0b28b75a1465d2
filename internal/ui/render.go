package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"linepick/internal/keys"
)

const tabWidth = 4

// Frame is everything needed to draw one full screen.
type Frame struct {
	Lines  []string // narrowed list
	Focus  int      // index into Lines, -1 when nothing is focused
	Width  int
	Height int
	Status string
}

type Renderer struct {
	styles Styles
	header string
}

func NewRenderer(styles Styles, km keys.KeyMap) *Renderer {
	return &Renderer{styles: styles, header: styles.Help.ShortHelpView(km.ShortHelp())}
}

// VisibleRows is the number of list rows between header and status line.
func VisibleRows(height int) int {
	return max(0, height-2)
}

// Window returns the half-open range [lower, upper) of an n-item list
// shown in rows rows. The focus sits on the first row unless it is
// within rows of the end, in which case the window is pinned to the
// bottom of the list.
func Window(n, rows, focus int) (lower, upper int) {
	if n <= 0 || rows <= 0 {
		return 0, 0
	}
	focus = min(max(focus, 0), n-1)
	if focus+rows > n {
		lower = max(0, n-rows)
	} else {
		lower = focus
	}
	return lower, min(n, lower+rows)
}

// Render draws f into one buffer with absolute cursor addressing per row
// and hands it to w in a single write.
func (r *Renderer) Render(w io.Writer, f Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	var b bytes.Buffer
	out := termenv.NewOutput(&b, termenv.WithProfile(termenv.ANSI))

	out.MoveCursor(1, 1)
	b.WriteString(r.styles.Frame.Render(fit(r.header, f.Width)))

	rows := VisibleRows(f.Height)
	lower, upper := Window(len(f.Lines), rows, f.Focus)
	for i := 0; i < rows; i++ {
		out.MoveCursor(i+2, 1)
		idx := lower + i
		if idx >= upper {
			b.WriteString(fit("", f.Width))
			continue
		}
		line := fit(f.Lines[idx], f.Width)
		if idx == f.Focus {
			line = r.styles.Highlight.Render(line)
		}
		b.WriteString(line)
	}

	if f.Height >= 2 {
		out.MoveCursor(f.Height, 1)
		b.WriteString(r.styles.Frame.Render(fit(f.Status, f.Width)))
	}

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}

// fit truncates s to width display cells and pads it with spaces to
// exactly width.
func fit(s string, width int) string {
	s = sanitize(s)
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// sanitize expands tabs and drops other control characters so a line
// can never move the cursor on its own.
func sanitize(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	for _, c := range s {
		switch {
		case c == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case isControl(c):
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func isControl(c rune) bool {
	return unicode.IsControl(c)
}
