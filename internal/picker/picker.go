package picker

import (
	"errors"
	"fmt"
	"io"

	"linepick/internal/filter"
	"linepick/internal/keys"
	"linepick/internal/ui"
	"linepick/internal/util/logx"
)

// Terminal is the device the picker draws on and reads keys from.
type Terminal interface {
	io.Reader
	io.Writer
	Size() (width, height int, err error)
}

// Executor runs the chosen line through an external command.
type Executor interface {
	Execute(line string) error
}

type Options struct {
	Mode filter.Mode
	// Exec, when set, receives the focused line on Enter instead of
	// ending the session.
	Exec Executor
	// ExitAfterExec ends the session after the first successful Exec.
	ExitAfterExec bool
	// Display, when it has one entry per line, is what gets drawn and
	// searched; results still carry the original line.
	Display []string
	// Styles and KeyMap fall back to the dark theme and default bindings.
	Styles *ui.Styles
	KeyMap *keys.KeyMap
}

// Result is the outcome of a session. Index refers to the original list
// and is -1 when nothing was confirmed.
type Result struct {
	Line      string
	Index     int
	Confirmed bool
}

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type Picker struct {
	lines []string
	shown []string
	term  Terminal
	opts  Options
	dec   *keys.Decoder
	rend  *ui.Renderer
	memo  *filter.Memo

	// live state, owned by the loop
	search []rune
	mode   filter.Mode
	focus  int
	narrow []int    // original indices of matching lines
	view   []string // narrow projected onto shown
	ferr   error
	width  int
	height int
	result Result
}

func New(lines []string, term Terminal, opts Options) *Picker {
	if opts.KeyMap == nil {
		km := keys.DefaultKeyMap()
		opts.KeyMap = &km
	}
	if opts.Styles == nil {
		st := ui.NewStyles(true)
		opts.Styles = &st
	}
	shown := lines
	if len(opts.Display) == len(lines) {
		shown = opts.Display
	}
	p := &Picker{
		lines:  lines,
		shown:  shown,
		term:   term,
		opts:   opts,
		dec:    keys.NewDecoder(term),
		rend:   ui.NewRenderer(*opts.Styles, *opts.KeyMap),
		memo:   filter.NewMemo(shown),
		mode:   opts.Mode,
		width:  fallbackWidth,
		height: fallbackHeight,
		result: Result{Index: -1},
	}
	p.refilter()
	return p
}

// Run drives the decode/update/render cycle until the user confirms or
// cancels. End of input counts as a cancel. The caller owns the terminal
// and must restore it however Run returns.
func (p *Picker) Run() (Result, error) {
	for {
		p.measure()
		p.refilter()
		if err := p.rend.Render(p.term, p.frame()); err != nil {
			return Result{Index: -1}, err
		}
		k, err := p.dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				logx.Infof("picker: input closed, cancelling")
				return Result{Index: -1}, nil
			}
			return Result{Index: -1}, fmt.Errorf("read key: %w", err)
		}
		if p.Apply(k) {
			return p.result, nil
		}
	}
}

func (p *Picker) measure() {
	w, h, err := p.term.Size()
	if err != nil || w <= 0 || h <= 0 {
		if err != nil {
			logx.Debugf("picker: terminal size: %v", err)
		}
		w, h = fallbackWidth, fallbackHeight
	}
	p.width, p.height = w, h
}

// refilter recomputes the narrowed list when the term or mode changed and
// keeps the focus inside it.
func (p *Picker) refilter() {
	idx, changed, err := p.memo.Filter(string(p.search), p.mode)
	if !changed {
		return
	}
	p.narrow, p.ferr = idx, err
	p.view = filter.Apply(p.shown, idx)
	if err != nil {
		logx.Debugf("picker: %v", err)
	}
	p.clampFocus()
}

func (p *Picker) clampFocus() {
	n := len(p.narrow)
	switch {
	case n == 0:
		p.focus = -1
	case p.focus >= n:
		p.focus = n - 1
	case p.focus < 0:
		p.focus = 0
	}
}

func (p *Picker) frame() ui.Frame {
	return ui.Frame{
		Lines:  p.view,
		Focus:  p.focus,
		Width:  p.width,
		Height: p.height,
		Status: ui.StatusLine(p.mode, string(p.search), len(p.narrow), len(p.lines), p.ferr),
	}
}
