package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	default:
		return "ERROR"
	}
}

var (
	mu       sync.Mutex
	level    = Info
	buf      = make([]string, 0, 500)
	maxLines = 500
	// stderr shares the terminal with the picker; keep it off unless LINEPICK_LOG_STDERR=1
	toStderr = false
	sink     io.Writer
)

func SetLevel(l Level) { mu.Lock(); level = l; mu.Unlock() }

// Enabled reports whether lines at l are currently recorded.
func Enabled(l Level) bool { mu.Lock(); defer mu.Unlock(); return l >= level }

// OnStderr reports whether lines are already mirrored to stderr.
func OnStderr() bool { mu.Lock(); defer mu.Unlock(); return toStderr }

// SetOutput mirrors every accepted line to w (nil disables mirroring).
func SetOutput(w io.Writer) { mu.Lock(); sink = w; mu.Unlock() }

func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warn", "warning":
		return Warn, true
	case "error":
		return Error, true
	}
	return Info, false
}

// SetLevelFromEnv reads LINEPICK_LOG_LEVEL, LINEPICK_LOG_STDERR and
// LINEPICK_LOG_FILE. The returned closer releases the log file, if any.
func SetLevelFromEnv() io.Closer {
	if l, ok := ParseLevel(os.Getenv("LINEPICK_LOG_LEVEL")); ok {
		SetLevel(l)
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("LINEPICK_LOG_STDERR"))); v != "" {
		mu.Lock()
		toStderr = v != "0" && v != "false" && v != "no"
		mu.Unlock()
	}
	if p := strings.TrimSpace(os.Getenv("LINEPICK_LOG_FILE")); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			Warnf("log file %s: %v", p, err)
			return nopCloser{}
		}
		SetOutput(f)
		return f
	}
	return nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func Debugf(format string, a ...any) { logf(Debug, format, a...) }
func Infof(format string, a ...any)  { logf(Info, format, a...) }
func Warnf(format string, a ...any)  { logf(Warn, format, a...) }
func Errorf(format string, a ...any) { logf(Error, format, a...) }

func logf(l Level, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	line := fmt.Sprintf("%s %-5s %s", ts, l, fmt.Sprintf(format, a...))
	if len(buf) >= maxLines {
		// drop oldest
		copy(buf[0:], buf[1:])
		buf = buf[:len(buf)-1]
	}
	buf = append(buf, line)
	if toStderr {
		fmt.Fprintln(os.Stderr, line)
	}
	if sink != nil {
		fmt.Fprintln(sink, line)
	}
}

// Dump returns the buffered lines joined by newlines.
func Dump() string {
	mu.Lock()
	defer mu.Unlock()
	return strings.Join(buf, "\n")
}

