package filter

import "linepick/internal/util/logx"

// Memo caches the result of the last Filter call and recomputes only
// when the (term, mode) pair changes.
type Memo struct {
	lines []string
	valid bool
	last  Criteria
	idx   []int
	err   error
	runs  int
}

func NewMemo(lines []string) *Memo {
	return &Memo{lines: lines}
}

// Filter returns the narrowed indices for term and mode and whether a
// recomputation took place.
func (m *Memo) Filter(term string, mode Mode) (idx []int, changed bool, err error) {
	c := Criteria{Term: term, Mode: mode}
	if m.valid && c == m.last {
		return m.idx, false, m.err
	}
	m.idx, m.err = Filter(m.lines, term, mode)
	m.last, m.valid = c, true
	m.runs++
	logx.Debugf("filter: %s %q -> %d/%d", mode, term, len(m.idx), len(m.lines))
	return m.idx, true, m.err
}

// Invalidate forces the next Filter call to recompute.
func (m *Memo) Invalidate() { m.valid = false }

// Runs counts recomputations since creation.
func (m *Memo) Runs() int { return m.runs }
