package util

import "regexp"

var (
	reToken    = regexp.MustCompile(`(?i)((?:api|secret|token|key|password|passwd)[_-]?\w*[=:]\s*)([^\s'"]{6,})`)
	reURLCreds = regexp.MustCompile(`(://[^/\s:@]+):[^/\s@]+@`)
)

// Redact masks credentials that commonly show up in picked lines
// (connection strings, KEY=value pairs) before they reach the log.
func Redact(s string) string {
	s = reURLCreds.ReplaceAllString(s, "$1:[redacted]@")
	s = reToken.ReplaceAllString(s, "${1}[redacted]")
	return s
}
