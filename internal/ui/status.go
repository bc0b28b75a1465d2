package ui

import (
	"errors"
	"fmt"

	"linepick/internal/filter"
)

const idleHint = "Start typing to search, ctrl-t switches search mode"

// StatusLine describes the active search for the bottom row.
func StatusLine(mode filter.Mode, term string, matches, total int, err error) string {
	if term == "" {
		return idleHint
	}
	var pe *filter.PatternError
	if errors.As(err, &pe) {
		return fmt.Sprintf("(%s) invalid pattern: %s", mode, term)
	}
	return fmt.Sprintf("(%s) Searching for: %s  [%d/%d]", mode, term, matches, total)
}
