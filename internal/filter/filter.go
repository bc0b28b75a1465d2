package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how a search term is turned into a matcher.
type Mode int

const (
	Fuzzy Mode = iota
	Substring
	Regex
)

var modeNames = [...]string{"fuzzy", "substring", "regex"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode { return (m + 1) % Mode(len(modeNames)) }

func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return Mode(i), nil
		}
	}
	return Fuzzy, fmt.Errorf("unknown search mode %q (want fuzzy|substring|regex)", s)
}

// PatternError reports a term that does not compile in regex mode.
type PatternError struct {
	Term string
	Err  error
}

func (e *PatternError) Error() string { return fmt.Sprintf("invalid pattern %q: %v", e.Term, e.Err) }
func (e *PatternError) Unwrap() error { return e.Err }

type Criteria struct {
	Term string
	Mode Mode
}

type Evaluator struct {
	re *regexp.Regexp // nil matches everything
}

// NewEvaluator compiles the criteria into a case-insensitive matcher.
func NewEvaluator(c Criteria) (*Evaluator, error) {
	if c.Term == "" {
		return &Evaluator{}, nil
	}
	var pattern string
	switch c.Mode {
	case Fuzzy:
		parts := make([]string, 0, len(c.Term))
		for _, r := range c.Term {
			parts = append(parts, regexp.QuoteMeta(string(r)))
		}
		pattern = strings.Join(parts, ".*")
	case Substring:
		pattern = regexp.QuoteMeta(c.Term)
	case Regex:
		pattern = c.Term
	default:
		return nil, fmt.Errorf("unknown search mode %d", int(c.Mode))
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, &PatternError{Term: c.Term, Err: err}
	}
	return &Evaluator{re: re}, nil
}

func (e *Evaluator) Match(line string) bool {
	if e.re == nil {
		return true
	}
	return e.re.MatchString(line)
}

// Filter returns the indices of lines matching term under mode, in
// their original order. An invalid regex yields no indices and a
// *PatternError.
func Filter(lines []string, term string, mode Mode) ([]int, error) {
	ev, err := NewEvaluator(Criteria{Term: term, Mode: mode})
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		if ev.Match(l) {
			out = append(out, i)
		}
	}
	return out, nil
}

// Apply projects indices returned by Filter back onto lines.
func Apply(lines []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = lines[j]
	}
	return out
}
