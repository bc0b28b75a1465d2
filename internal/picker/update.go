package picker

import (
	"linepick/internal/keys"
	"linepick/internal/ui"
	"linepick/internal/util/logx"
)

// Apply performs the state transition for one key and reports whether
// the session has reached a final result.
func (p *Picker) Apply(k keys.Key) bool {
	km := p.opts.KeyMap
	switch {
	case k.Matches(km.Quit):
		p.search = p.search[:0]
		p.result = Result{Index: -1}
		return true
	case k.Matches(km.Up):
		p.move(-1)
	case k.Matches(km.Down):
		p.move(1)
	case k.Matches(km.PageUp):
		p.move(-max(1, ui.VisibleRows(p.height)))
	case k.Matches(km.PageDown):
		p.move(max(1, ui.VisibleRows(p.height)))
	case k.Matches(km.Select):
		return p.choose()
	case k.Matches(km.Backspace):
		if n := len(p.search); n > 0 {
			p.search = p.search[:n-1]
		}
	case k.Matches(km.Mode):
		p.mode = p.mode.Next()
		p.memo.Invalidate()
		logx.Debugf("picker: search mode %s", p.mode)
	case k.Kind == keys.Rune:
		p.search = append(p.search, k.Rune)
	}
	return false
}

// move shifts the focus by delta without wrapping around.
func (p *Picker) move(delta int) {
	n := len(p.narrow)
	if n == 0 {
		return
	}
	p.focus = min(max(p.focus+delta, 0), n-1)
}

func (p *Picker) choose() bool {
	if p.focus < 0 || p.focus >= len(p.narrow) {
		return false
	}
	idx := p.narrow[p.focus]
	line := p.lines[idx]
	if p.opts.Exec != nil {
		if err := p.opts.Exec.Execute(line); err != nil {
			logx.Errorf("picker: %v", err)
			return false
		}
		if !p.opts.ExitAfterExec {
			return false
		}
	}
	p.result = Result{Line: line, Index: idx, Confirmed: true}
	return true
}
